package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips diacritics so "Neufchâteau" and "neufchateau"
// compare equal.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName lowercases a display name and strips accents for lookups.
func NormalizeName(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// ProvinceByName finds a province by Dutch name, accent- and case-insensitive.
func ProvinceByName(name string) (Area, bool) { return areaByName(provinces, name) }

// RegionByName finds a region by Dutch name, accent- and case-insensitive.
func RegionByName(name string) (Area, bool) { return areaByName(regions, name) }

// ArrondissementByName finds an arrondissement by Dutch name.
func ArrondissementByName(name string) (Area, bool) { return areaByName(arrondissements, name) }

func areaByName(areas []Area, name string) (Area, bool) {
	want := NormalizeName(name)
	if want == "" {
		return Area{}, false
	}
	for _, a := range areas {
		if NormalizeName(a.Name) == want {
			return a, true
		}
	}
	return Area{}, false
}
