package region

import "strings"

// FindRegion 把 (城市, 国家) 解析到一个区。
// 有意用宽松包含来容忍 "Paris" / "Paris 15e" 这类缩写差异。
// 未知国家或城市一律解析失败，绝不默默判为兼容。
func FindRegion(city, country string) (*Region, bool) {
	code, ok := ResolveCountry(country)
	if !ok {
		return nil, false
	}

	query := Normalize(city)
	if query == "" {
		return nil, false
	}

	for i := range regionTables[code] {
		r := &regionTables[code][i]
		for _, variant := range r.Cities {
			if strings.Contains(query, variant) || strings.Contains(variant, query) {
				return r, true
			}
		}
	}

	return nil, false
}

// SameRegion 两个城市解析到同一个国家的同一个区
func SameRegion(cityA, countryA, cityB, countryB string) bool {
	if !SameCountry(countryA, countryB) {
		return false
	}

	ra, okA := FindRegion(cityA, countryA)
	rb, okB := FindRegion(cityB, countryB)

	return okA && okB && ra.Name == rb.Name
}
