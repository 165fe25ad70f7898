// Package geo holds the Belgian administrative geography catalog used by the
// filter subsystem: NIS codes for regions, provinces, and arrondissements,
// plus parent lookups for municipality codes.
//
// The tables are compiled in on purpose. They change once in a blue moon
// (municipal mergers) and every validator depends on them, so they are plain
// data instead of a loaded resource.
package geo

// Area is a single catalog entry: a NIS code and its Dutch display name.
type Area struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Level names the administrative level a filter operates on.
type Level string

// Supported geography levels, from coarse to fine.
const (
	LevelRegion         Level = "region"
	LevelProvince       Level = "province"
	LevelArrondissement Level = "arrondissement"
	LevelMunicipality   Level = "municipality"
)

// ParseLevel returns the Level for raw, reporting whether it is known.
func ParseLevel(raw string) (Level, bool) {
	switch Level(raw) {
	case LevelRegion, LevelProvince, LevelArrondissement, LevelMunicipality:
		return Level(raw), true
	}
	return "", false
}

// regions are the three Belgian regions by REFNIS code.
var regions = []Area{
	{Code: "02000", Name: "Vlaams Gewest"},
	{Code: "03000", Name: "Waals Gewest"},
	{Code: "04000", Name: "Brussels Hoofdstedelijk Gewest"},
}

// provinces are the ten provinces by REFNIS code. Brussels is not a province.
var provinces = []Area{
	{Code: "10000", Name: "Antwerpen"},
	{Code: "20001", Name: "Vlaams-Brabant"},
	{Code: "20002", Name: "Waals-Brabant"},
	{Code: "30000", Name: "West-Vlaanderen"},
	{Code: "40000", Name: "Oost-Vlaanderen"},
	{Code: "50000", Name: "Henegouwen"},
	{Code: "60000", Name: "Luik"},
	{Code: "70000", Name: "Limburg"},
	{Code: "80000", Name: "Luxemburg"},
	{Code: "90000", Name: "Namen"},
}

// arrondissements are the administrative arrondissements by REFNIS code.
var arrondissements = []Area{
	{Code: "11000", Name: "Antwerpen"},
	{Code: "12000", Name: "Mechelen"},
	{Code: "13000", Name: "Turnhout"},
	{Code: "21000", Name: "Brussel-Hoofdstad"},
	{Code: "23000", Name: "Halle-Vilvoorde"},
	{Code: "24000", Name: "Leuven"},
	{Code: "25000", Name: "Nijvel"},
	{Code: "31000", Name: "Brugge"},
	{Code: "32000", Name: "Diksmuide"},
	{Code: "33000", Name: "Ieper"},
	{Code: "34000", Name: "Kortrijk"},
	{Code: "35000", Name: "Oostende"},
	{Code: "36000", Name: "Roeselare"},
	{Code: "37000", Name: "Tielt"},
	{Code: "38000", Name: "Veurne"},
	{Code: "41000", Name: "Aalst"},
	{Code: "42000", Name: "Dendermonde"},
	{Code: "43000", Name: "Eeklo"},
	{Code: "44000", Name: "Gent"},
	{Code: "45000", Name: "Oudenaarde"},
	{Code: "46000", Name: "Sint-Niklaas"},
	{Code: "51000", Name: "Aat"},
	{Code: "52000", Name: "Charleroi"},
	{Code: "53000", Name: "Bergen"},
	{Code: "55000", Name: "Zinnik"},
	{Code: "56000", Name: "Thuin"},
	{Code: "57000", Name: "Doornik"},
	{Code: "58000", Name: "La Louvière"},
	{Code: "61000", Name: "Hoei"},
	{Code: "62000", Name: "Luik"},
	{Code: "63000", Name: "Verviers"},
	{Code: "64000", Name: "Borgworm"},
	{Code: "71000", Name: "Hasselt"},
	{Code: "72000", Name: "Maaseik"},
	{Code: "73000", Name: "Tongeren"},
	{Code: "81000", Name: "Aarlen"},
	{Code: "82000", Name: "Bastenaken"},
	{Code: "83000", Name: "Marche-en-Famenne"},
	{Code: "84000", Name: "Neufchâteau"},
	{Code: "85000", Name: "Virton"},
	{Code: "91000", Name: "Dinant"},
	{Code: "92000", Name: "Namen"},
	{Code: "93000", Name: "Philippeville"},
}

var (
	regionByCode         = indexByCode(regions)
	provinceByCode       = indexByCode(provinces)
	arrondissementByCode = indexByCode(arrondissements)
)

func indexByCode(areas []Area) map[string]Area {
	m := make(map[string]Area, len(areas))
	for _, a := range areas {
		m[a.Code] = a
	}
	return m
}

// Regions returns the region catalog in canonical order.
func Regions() []Area { return append([]Area(nil), regions...) }

// Provinces returns the province catalog in canonical order.
func Provinces() []Area { return append([]Area(nil), provinces...) }

// Arrondissements returns the arrondissement catalog in canonical order.
func Arrondissements() []Area { return append([]Area(nil), arrondissements...) }

// IsRegionCode reports whether code is a known region NIS code.
func IsRegionCode(code string) bool { _, ok := regionByCode[code]; return ok }

// IsProvinceCode reports whether code is a known province NIS code.
func IsProvinceCode(code string) bool { _, ok := provinceByCode[code]; return ok }

// IsArrondissementCode reports whether code is a known arrondissement NIS code.
func IsArrondissementCode(code string) bool { _, ok := arrondissementByCode[code]; return ok }

// IsMunicipalityCode reports whether code has the shape of a Belgian
// municipality NIS code: five digits, not an aggregate (xx000), and belonging
// to a known arrondissement.
func IsMunicipalityCode(code string) bool {
	if len(code) != 5 || !allDigits(code) || code[2:] == "000" {
		return false
	}
	_, ok := MunicipalityArrondissement(code)
	return ok
}

// RegionName returns the Dutch name for a region code.
func RegionName(code string) (string, bool) {
	a, ok := regionByCode[code]
	return a.Name, ok
}

// ProvinceName returns the Dutch name for a province code.
func ProvinceName(code string) (string, bool) {
	a, ok := provinceByCode[code]
	return a.Name, ok
}

// ArrondissementName returns the Dutch name for an arrondissement code.
func ArrondissementName(code string) (string, bool) {
	a, ok := arrondissementByCode[code]
	return a.Name, ok
}

// MunicipalityArrondissement resolves the arrondissement a municipality NIS
// code belongs to. The parent code is the leading two digits padded with
// zeros (44021 Gent -> 44000).
func MunicipalityArrondissement(nis string) (string, bool) {
	if len(nis) != 5 || !allDigits(nis) {
		return "", false
	}
	parent := nis[:2] + "000"
	if _, ok := arrondissementByCode[parent]; !ok {
		return "", false
	}
	return parent, true
}

// MunicipalityProvince resolves the province a municipality NIS code belongs
// to. Municipalities in Brussel-Hoofdstad (21xxx) have no province and
// report ok=false.
func MunicipalityProvince(nis string) (string, bool) {
	arr, ok := MunicipalityArrondissement(nis)
	if !ok {
		return "", false
	}
	switch arr[:2] {
	case "21":
		return "", false
	case "23", "24":
		return "20001", true
	case "25":
		return "20002", true
	}
	code := arr[:1] + "0000"
	if _, ok := provinceByCode[code]; !ok {
		return "", false
	}
	return code, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
