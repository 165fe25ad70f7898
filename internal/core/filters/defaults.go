package filters

import (
	"analyses/internal/core/geo"
	"analyses/internal/core/registry"
)

// applyDefaults overlays the registry defaults for an analysis onto a
// neutral state. Null defaults clear the field to the aggregate selection;
// unset defaults leave the neutral value. Enum-typed fields only accept
// defaults that parse, so a typo in the registry degrades to neutral instead
// of producing an impossible state.
func applyDefaults(s *State, d registry.Defaults) {
	if v, ok := d.TimeRange.Get(); ok {
		if tr, valid := ParseTimeRange(v); valid {
			s.TimeRange = tr
		}
	}
	if v, ok := d.CurrentView.Get(); ok {
		if view, valid := ParseView(v); valid {
			s.CurrentView = view
		}
	}
	if v, ok := d.ChartType.Get(); ok {
		if ct, valid := ParseChartType(v); valid {
			s.ChartType = ct
		}
	}
	if d.GeoLevel.IsSet() {
		s.GeoLevel = nil
		if v, ok := d.GeoLevel.Get(); ok {
			if lvl, valid := geo.ParseLevel(v); valid {
				s.GeoLevel = &lvl
			}
		}
	}

	applyString(d.SelectedRegion, &s.SelectedRegion)
	applyString(d.SelectedProvince, &s.SelectedProvince)
	applyString(d.SelectedArrondissement, &s.SelectedArrondissement)
	applyString(d.SelectedMunicipality, &s.SelectedMunicipality)
	applyString(d.SelectedSector, &s.SelectedSector)
	applyString(d.SelectedCategory, &s.SelectedCategory)
	applyString(d.SelectedSubcategory, &s.SelectedSubcategory)

	applyInt(d.SelectedYear, &s.SelectedYear)
	applyInt(d.SelectedQuarter, &s.SelectedQuarter)
	applyInt(d.SelectedMonth, &s.SelectedMonth)
	applyInt(d.StartYear, &s.StartYear)
	applyInt(d.EndYear, &s.EndYear)

	applyBool(d.MovingAverage, &s.MovingAverage)
	applyBool(d.ShowBoundaries, &s.ShowBoundaries)

	applyString(d.Duration, &s.Duration)
	applyString(d.Workers, &s.Workers)
	applyString(d.TypeFilter, &s.TypeFilter)
	applyInt(d.StopHorizon, &s.StopHorizon)
	applyString(d.Measure, &s.Measure)
	applyString(d.Perspective, &s.Perspective)
	applyString(d.SelectedField, &s.SelectedField)
	applyInt(d.ReportYear, &s.ReportYear)
	applyString(d.BudgetRange, &s.BudgetRange)
	applyString(d.ProjectType, &s.ProjectType)
	applyString(d.SortKey, &s.SortKey)
	applyString(d.IncomeQuintile, &s.IncomeQuintile)
	applyString(d.TenureStatus, &s.TenureStatus)
}

func applyString(f registry.Field[string], dst **string) {
	if !f.IsSet() {
		return
	}
	if v, ok := f.Get(); ok {
		*dst = &v
		return
	}
	*dst = nil
}

func applyInt(f registry.Field[int], dst **int) {
	if !f.IsSet() {
		return
	}
	if v, ok := f.Get(); ok {
		*dst = &v
		return
	}
	*dst = nil
}

func applyBool(f registry.Field[bool], dst **bool) {
	if !f.IsSet() {
		return
	}
	if v, ok := f.Get(); ok {
		*dst = &v
		return
	}
	*dst = nil
}
