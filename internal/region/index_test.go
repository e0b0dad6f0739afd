package region

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paris", "paris"},
		{"  ALGER  ", "alger"},
		{"Aix-en-Provence", "aix en provence"},
		{"Béjaïa", "bejaia"},
		{"Saint-Étienne", "saint etienne"},
		{"Côte   d'Azur", "cote d azur"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveCountry(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		found bool
	}{
		{"France", "FR", true},
		{"FR", "FR", true},
		{"Algérie", "DZ", true},
		{"algerie", "DZ", true},
		{"Algeria", "DZ", true},
		{"dz", "DZ", true},
		{"Spain", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ResolveCountry(tt.in)
		if ok != tt.found || got != tt.want {
			t.Errorf("ResolveCountry(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.found)
		}
	}
}

func TestFindRegion(t *testing.T) {
	tests := []struct {
		city    string
		country string
		want    string
		found   bool
	}{
		{"Paris", "France", "Île-de-France", true},
		{"Paris 15e", "FR", "Île-de-France", true},
		{"Alger", "Algérie", "Algérois", true},
		{"Algiers", "Algeria", "Algérois", true},
		{"Tizi Ouzou", "DZ", "Kabylie", true},
		{"Marseille", "France", "Provence-Alpes-Côte d'Azur", true},
		// fail closed
		{"Paris", "Spain", "", false},
		{"Atlantis", "France", "", false},
		{"", "France", "", false},
	}

	for _, tt := range tests {
		r, ok := FindRegion(tt.city, tt.country)
		if ok != tt.found {
			t.Errorf("FindRegion(%q, %q) found = %v, want %v", tt.city, tt.country, ok, tt.found)
			continue
		}
		if ok && r.Name != tt.want {
			t.Errorf("FindRegion(%q, %q) = %q, want %q", tt.city, tt.country, r.Name, tt.want)
		}
	}
}

func TestSameRegion(t *testing.T) {
	tests := []struct {
		name     string
		cityA    string
		countryA string
		cityB    string
		countryB string
		want     bool
	}{
		{"same region FR", "Paris", "France", "Versailles", "FR", true},
		{"same region DZ", "Alger", "Algérie", "Blida", "Algeria", true},
		{"different regions", "Paris", "France", "Marseille", "France", false},
		{"different countries", "Paris", "France", "Alger", "Algérie", false},
		{"unknown country fails closed", "Paris", "Spain", "Paris", "Spain", false},
		{"unknown city fails closed", "Atlantis", "France", "Paris", "France", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameRegion(tt.cityA, tt.countryA, tt.cityB, tt.countryB); got != tt.want {
				t.Errorf("SameRegion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLooseContains(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Paris", "Paris 15e", true},
		{"Paris 15e", "Paris", true},
		{"Alger", "Alger Centre", true},
		{"Lyon", "Marseille", false},
		{"", "Paris", false},
	}

	for _, tt := range tests {
		if got := LooseContains(tt.a, tt.b); got != tt.want {
			t.Errorf("LooseContains(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
