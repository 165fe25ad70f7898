// Package registry is the static per-analysis configuration table: default
// filter values, embeddable sections, and sector catalogs, keyed by analysis
// slug.
//
// The table is defined once at startup and never mutated, so every consumer
// (dashboard, embed, share link) resolves the same defaults for the same
// slug. That single-source property is what keeps the three presentations in
// agreement.
package registry

import (
	"strings"

	perr "analyses/internal/platform/errors"
)

// Defaults holds the sparse default filter values for one analysis. A field
// left as the zero Field means the analysis does not use that filter.
type Defaults struct {
	TimeRange       Field[string]
	SelectedYear    Field[int]
	SelectedQuarter Field[int]
	SelectedMonth   Field[int]
	StartYear       Field[int]
	EndYear         Field[int]

	SelectedRegion         Field[string]
	SelectedProvince       Field[string]
	SelectedArrondissement Field[string]
	SelectedMunicipality   Field[string]
	GeoLevel               Field[string]

	SelectedSector      Field[string]
	SelectedCategory    Field[string]
	SelectedSubcategory Field[string]

	CurrentView    Field[string]
	ChartType      Field[string]
	MovingAverage  Field[bool]
	ShowBoundaries Field[bool]

	// analysis specific
	Duration       Field[string]
	Workers        Field[string]
	TypeFilter     Field[string]
	StopHorizon    Field[int]
	Measure        Field[string]
	Perspective    Field[string]
	SelectedField  Field[string]
	ReportYear     Field[int]
	BudgetRange    Field[string]
	ProjectType    Field[string]
	SortKey        Field[string]
	IncomeQuintile Field[string]
	TenureStatus   Field[string]
}

// Section is one embeddable chart section of an analysis.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// entry couples a slug with everything registered for it.
type entry struct {
	slug     string
	defaults Defaults
	sections []Section
	sectors  []string
}

// analyses is the registry table. Order is meaningful: ListAnalyses and the
// analyses index endpoint preserve it.
var analyses = []entry{
	{
		slug: "faillissementen",
		defaults: Defaults{
			TimeRange:        Value("yearly"),
			SelectedSector:   Value("ALL"),
			SelectedProvince: Null[string](),
			CurrentView:      Value("chart"),
		},
		sections: []Section{
			{ID: "evolutie", Title: "Evolutie van de faillissementen"},
			{ID: "sectoren", Title: "Faillissementen per sector"},
			{ID: "provincies", Title: "Faillissementen per provincie"},
			{ID: "kaart", Title: "Kaart"},
		},
		sectors: []string{"ALL", "F", "F41", "F42", "F43"},
	},
	{
		slug: "vergunningen-goedkeuringen",
		defaults: Defaults{
			TimeRange:      Value("monthly"),
			SelectedRegion: Null[string](),
			CurrentView:    Value("chart"),
			ChartType:      Value("composed"),
			MovingAverage:  Value(true),
		},
		sections: []Section{
			{ID: "evolutie", Title: "Evolutie van de goedgekeurde vergunningen"},
			{ID: "gewesten", Title: "Goedkeuringen per gewest"},
			{ID: "kaart", Title: "Kaart"},
		},
	},
	{
		slug: "vergunningen-aanvragen",
		defaults: Defaults{
			TimeRange:     Value("monthly"),
			TypeFilter:    Value("ALL"),
			CurrentView:   Value("chart"),
			MovingAverage: Value(false),
		},
		sections: []Section{
			{ID: "evolutie", Title: "Evolutie van de vergunningsaanvragen"},
			{ID: "types", Title: "Aanvragen per type"},
			{ID: "kaart", Title: "Kaart"},
		},
	},
	{
		slug: "arbeiders-bedienden",
		defaults: Defaults{
			TimeRange:        Value("quarterly"),
			Workers:          Null[string](),
			Measure:          Value("aantal"),
			SelectedProvince: Null[string](),
			CurrentView:      Value("chart"),
		},
		sections: []Section{
			{ID: "evolutie", Title: "Evolutie arbeiders en bedienden"},
			{ID: "verhouding", Title: "Verhouding arbeiders/bedienden"},
			{ID: "provincies", Title: "Per provincie"},
		},
	},
	{
		slug: "bouwprojecten-gemeenten",
		defaults: Defaults{
			SelectedMunicipality: Null[string](),
			BudgetRange:          Null[string](),
			ProjectType:          Value("ALL"),
			SortKey:              Value("budget"),
			CurrentView:          Value("table"),
		},
		sections: []Section{
			{ID: "projecten", Title: "Bouwprojecten per gemeente"},
			{ID: "budget", Title: "Budgetverdeling"},
			{ID: "kaart", Title: "Kaart"},
		},
	},
	{
		slug: "epc-labelverdeling",
		defaults: Defaults{
			SelectedRegion: Value("02000"),
			GeoLevel:       Value("province"),
			SelectedField:  Value("label"),
			CurrentView:    Value("chart"),
			ChartType:      Value("bar"),
		},
		sections: []Section{
			{ID: "labelverdeling", Title: "Verdeling van de EPC-labels"},
			{ID: "evolutie", Title: "Evolutie per label"},
			{ID: "kaart", Title: "Kaart"},
		},
	},
	{
		slug: "silc-energie-2023",
		defaults: Defaults{
			IncomeQuintile: Value("ALL"),
			TenureStatus:   Null[string](),
			CurrentView:    Value("chart"),
			ChartType:      Value("bar"),
		},
		sections: []Section{
			{ID: "kwintielen", Title: "Energie-uitgaven per inkomenskwintiel"},
			{ID: "woonstatuut", Title: "Naar woonstatuut"},
		},
	},
	{
		slug: "bedrijventerreinen-vlaanderen",
		defaults: Defaults{
			SelectedProvince: Null[string](),
			GeoLevel:         Value("province"),
			Measure:          Value("oppervlakte"),
			CurrentView:      Value("map"),
			ShowBoundaries:   Value(true),
		},
		sections: []Section{
			{ID: "voorraad", Title: "Voorraad bedrijventerreinen"},
			{ID: "evolutie", Title: "Evolutie van het aanbod"},
			{ID: "kaart", Title: "Kaart"},
		},
	},
	{
		slug: "starters-bouw",
		defaults: Defaults{
			TimeRange:      Value("yearly"),
			SelectedSector: Value("ALL"),
			StopHorizon:    Value(3),
			CurrentView:    Value("chart"),
		},
		sections: []Section{
			{ID: "evolutie", Title: "Evolutie van de starters"},
			{ID: "overleving", Title: "Overleving na opstart"},
			{ID: "sectoren", Title: "Per sector"},
		},
		sectors: []string{"ALL", "F41", "F42", "F43"},
	},
	{
		slug: "investeringen-lokale-besturen",
		defaults: Defaults{
			Perspective:    Value("BV"),
			ReportYear:     Value(2020),
			Measure:        Value("per-inwoner"),
			SelectedSector: Null[string](),
			CurrentView:    Value("chart"),
			ChartType:      Value("bar"),
		},
		sections: []Section{
			{ID: "evolutie", Title: "Evolutie van de investeringen"},
			{ID: "rapportjaren", Title: "Vergelijking rapportjaren"},
			{ID: "kaart", Title: "Kaart"},
		},
	},
}

var bySlug = func() map[string]*entry {
	m := make(map[string]*entry, len(analyses))
	for i := range analyses {
		m[analyses[i].slug] = &analyses[i]
	}
	return m
}()

// GetDefaults returns the registered defaults for slug. Unknown slugs are a
// configuration error: the message enumerates the known slugs so a typo in a
// caller is immediately visible in logs.
func GetDefaults(slug string) (Defaults, error) {
	e, ok := bySlug[slug]
	if !ok {
		return Defaults{}, unknownAnalysis(slug)
	}
	return e.defaults, nil
}

// ListAnalyses returns all registered slugs in registration order.
func ListAnalyses() []string {
	out := make([]string, 0, len(analyses))
	for _, e := range analyses {
		out = append(out, e.slug)
	}
	return out
}

// HasDefaults reports whether slug is registered. Total, never fails.
func HasDefaults(slug string) bool {
	_, ok := bySlug[slug]
	return ok
}

// Sections returns the embeddable sections registered for slug.
func Sections(slug string) ([]Section, error) {
	e, ok := bySlug[slug]
	if !ok {
		return nil, unknownAnalysis(slug)
	}
	return append([]Section(nil), e.sections...), nil
}

// ResolveSection resolves a (slug, section id) pair. A known slug with an
// unknown section fails with a message listing the analysis's sections.
func ResolveSection(slug, sectionID string) (Section, error) {
	e, ok := bySlug[slug]
	if !ok {
		return Section{}, unknownAnalysis(slug)
	}
	for _, s := range e.sections {
		if s.ID == sectionID {
			return s, nil
		}
	}
	ids := make([]string, 0, len(e.sections))
	for _, s := range e.sections {
		ids = append(ids, s.ID)
	}
	return Section{}, perr.NotFoundf(
		"Onbekende sectie %q voor analyse %q. Beschikbare secties: %s",
		sectionID, slug, strings.Join(ids, ", "),
	)
}

// SectorCatalog returns the sector codes an analysis filters on, empty when
// the analysis has no sector dimension.
func SectorCatalog(slug string) []string {
	e, ok := bySlug[slug]
	if !ok {
		return nil
	}
	return append([]string(nil), e.sectors...)
}

func unknownAnalysis(slug string) error {
	return perr.NotFoundf(
		"Onbekende analyse %q. Bekende analyses: %s",
		slug, strings.Join(ListAnalyses(), ", "),
	)
}
