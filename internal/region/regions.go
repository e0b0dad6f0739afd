package region

// Region 一个国家内用于邻近匹配的城市簇。
// Cities 里存的是归一化后的变体；参考表保证同一国家内城市不跨区
// （数据约定，不在代码里强制）。
type Region struct {
	Name        string
	CountryCode string
	Cities      []string
}

// 市场只覆盖法国 ↔ 阿尔及利亚这一对国家
var regionTables = map[string][]Region{
	"FR": {
		{
			Name:        "Île-de-France",
			CountryCode: "FR",
			Cities: []string{
				"paris", "boulogne billancourt", "saint denis", "versailles",
				"creteil", "nanterre", "argenteuil", "montreuil", "vitry sur seine",
			},
		},
		{
			Name:        "Provence-Alpes-Côte d'Azur",
			CountryCode: "FR",
			Cities: []string{
				"marseille", "nice", "toulon", "aix en provence", "avignon",
				"cannes", "antibes",
			},
		},
		{
			Name:        "Auvergne-Rhône-Alpes",
			CountryCode: "FR",
			Cities: []string{
				"lyon", "grenoble", "saint etienne", "villeurbanne",
				"clermont ferrand", "annecy", "chambery",
			},
		},
		{
			Name:        "Occitanie",
			CountryCode: "FR",
			Cities: []string{
				"toulouse", "montpellier", "nimes", "perpignan", "beziers",
			},
		},
		{
			Name:        "Hauts-de-France",
			CountryCode: "FR",
			Cities: []string{
				"lille", "amiens", "roubaix", "tourcoing", "dunkerque",
			},
		},
		{
			Name:        "Grand Est",
			CountryCode: "FR",
			Cities: []string{
				"strasbourg", "reims", "metz", "nancy", "mulhouse",
			},
		},
		{
			Name:        "Nouvelle-Aquitaine",
			CountryCode: "FR",
			Cities: []string{
				"bordeaux", "limoges", "poitiers", "pau", "la rochelle",
			},
		},
		{
			Name:        "Pays de la Loire",
			CountryCode: "FR",
			Cities: []string{
				"nantes", "angers", "le mans", "saint nazaire",
			},
		},
		{
			Name:        "Bretagne",
			CountryCode: "FR",
			Cities: []string{
				"rennes", "brest", "quimper", "lorient", "saint malo",
			},
		},
		{
			Name:        "Normandie",
			CountryCode: "FR",
			Cities: []string{
				"rouen", "caen", "le havre", "cherbourg", "evreux",
			},
		},
	},
	"DZ": {
		{
			Name:        "Algérois",
			CountryCode: "DZ",
			Cities: []string{
				"alger", "algiers", "blida", "boumerdes", "tipaza", "medea",
			},
		},
		{
			Name:        "Oranie",
			CountryCode: "DZ",
			Cities: []string{
				"oran", "sidi bel abbes", "tlemcen", "mostaganem", "mascara",
			},
		},
		{
			Name:        "Constantinois",
			CountryCode: "DZ",
			Cities: []string{
				"constantine", "annaba", "skikda", "setif", "batna", "guelma",
			},
		},
		{
			Name:        "Kabylie",
			CountryCode: "DZ",
			Cities: []string{
				"tizi ouzou", "bejaia", "bouira",
			},
		},
		{
			Name:        "Sud",
			CountryCode: "DZ",
			Cities: []string{
				"ouargla", "ghardaia", "bechar", "tamanrasset", "adrar", "laghouat",
			},
		},
	},
}
