// Package filters implements the URL-synchronized filter state for one
// analysis: a full state record, a bidirectional field/query-parameter
// mapping, and a store that merges URL values over registry defaults over
// neutral defaults.
//
// The same encode/decode tables drive the dashboard URL, the shareable link,
// and the embed query string, which is what guarantees that all three
// converge on the same view for the same parameters.
package filters

import (
	"time"

	"analyses/internal/core/geo"
)

// View selects the presentation of a section.
type View string

// Supported views.
const (
	ViewChart View = "chart"
	ViewTable View = "table"
	ViewMap   View = "map"
)

// ParseView returns the View for raw, reporting whether it is known.
func ParseView(raw string) (View, bool) {
	switch View(raw) {
	case ViewChart, ViewTable, ViewMap:
		return View(raw), true
	}
	return "", false
}

// TimeRange selects the time granularity of a series.
type TimeRange string

// Supported time ranges.
const (
	RangeYearly    TimeRange = "yearly"
	RangeMonthly   TimeRange = "monthly"
	RangeQuarterly TimeRange = "quarterly"
)

// ParseTimeRange returns the TimeRange for raw, reporting whether it is known.
func ParseTimeRange(raw string) (TimeRange, bool) {
	switch TimeRange(raw) {
	case RangeYearly, RangeMonthly, RangeQuarterly:
		return TimeRange(raw), true
	}
	return "", false
}

// ChartType selects the chart rendering for the chart view.
type ChartType string

// Supported chart types.
const (
	ChartComposed ChartType = "composed"
	ChartLine     ChartType = "line"
	ChartBar      ChartType = "bar"
	ChartArea     ChartType = "area"
)

// ParseChartType returns the ChartType for raw, reporting whether it is known.
func ParseChartType(raw string) (ChartType, bool) {
	switch ChartType(raw) {
	case ChartComposed, ChartLine, ChartBar, ChartArea:
		return ChartType(raw), true
	}
	return "", false
}

// State is the full, non-sparse filter state for the active analysis. Fields
// an analysis does not use stay at their neutral value (nil for pointers).
// Pointer fields are nullable: nil means the aggregate / all-inclusive
// selection and is omitted from URLs.
type State struct {
	AnalysisSlug string `json:"analysisSlug"`

	TimeRange       TimeRange `json:"timeRange"`
	SelectedYear    *int      `json:"selectedYear,omitempty"`
	SelectedQuarter *int      `json:"selectedQuarter,omitempty"`
	SelectedMonth   *int      `json:"selectedMonth,omitempty"`
	StartYear       *int      `json:"startYear,omitempty"`
	EndYear         *int      `json:"endYear,omitempty"`

	SelectedRegion         *string    `json:"selectedRegion,omitempty"`
	SelectedProvince       *string    `json:"selectedProvince,omitempty"`
	SelectedArrondissement *string    `json:"selectedArrondissement,omitempty"`
	SelectedMunicipality   *string    `json:"selectedMunicipality,omitempty"`
	GeoLevel               *geo.Level `json:"geoLevel,omitempty"`

	SelectedSector      *string `json:"selectedSector,omitempty"`
	SelectedCategory    *string `json:"selectedCategory,omitempty"`
	SelectedSubcategory *string `json:"selectedSubcategory,omitempty"`

	CurrentView    View      `json:"currentView"`
	ChartType      ChartType `json:"chartType"`
	MovingAverage  *bool     `json:"movingAverage,omitempty"`
	ShowBoundaries *bool     `json:"showBoundaries,omitempty"`

	Duration       *string `json:"duration,omitempty"`
	Workers        *string `json:"workers,omitempty"`
	TypeFilter     *string `json:"type,omitempty"`
	StopHorizon    *int    `json:"stopHorizon,omitempty"`
	Measure        *string `json:"measure,omitempty"`
	Perspective    *string `json:"perspective,omitempty"`
	SelectedField  *string `json:"field,omitempty"`
	ReportYear     *int    `json:"reportYear,omitempty"`
	BudgetRange    *string `json:"budgetRange,omitempty"`
	ProjectType    *string `json:"projectType,omitempty"`
	SortKey        *string `json:"sortKey,omitempty"`
	IncomeQuintile *string `json:"incomeQuintile,omitempty"`
	TenureStatus   *string `json:"tenureStatus,omitempty"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// Neutral returns the global neutral state for slug: yearly range, chart
// view, composed chart, every selection nil.
func Neutral(slug string) State {
	return State{
		AnalysisSlug: slug,
		TimeRange:    RangeYearly,
		CurrentView:  ViewChart,
		ChartType:    ChartComposed,
	}
}
