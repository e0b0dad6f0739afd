package region

// 国家名 → ISO 代码的静态同义词表，覆盖法语和英语拼写。
// 未知国家解析失败，调用方必须视为不兼容（fail closed）。
var countrySynonyms = map[string]string{
	"fr":              "FR",
	"france":          "FR",
	"republique francaise": "FR",

	"dz":         "DZ",
	"algerie":    "DZ",
	"algeria":    "DZ",
	"el djazair": "DZ",
}

// ResolveCountry 把国家名或代码解析为 ISO 代码
func ResolveCountry(name string) (string, bool) {
	code, ok := countrySynonyms[Normalize(name)]
	return code, ok
}

// SameCountry 两个国家名解析到同一 ISO 代码
func SameCountry(a, b string) bool {
	ca, okA := ResolveCountry(a)
	cb, okB := ResolveCountry(b)
	return okA && okB && ca == cb
}
