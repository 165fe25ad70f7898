package registry

// Map renders the sparse defaults as a JSON-ready map. Unset fields are
// absent; null fields are present with a nil value, mirroring the
// used-but-aggregate semantics consumers rely on.
func (d Defaults) Map() map[string]any {
	out := map[string]any{}
	putString(out, "timeRange", d.TimeRange)
	putInt(out, "selectedYear", d.SelectedYear)
	putInt(out, "selectedQuarter", d.SelectedQuarter)
	putInt(out, "selectedMonth", d.SelectedMonth)
	putInt(out, "startYear", d.StartYear)
	putInt(out, "endYear", d.EndYear)
	putString(out, "selectedRegion", d.SelectedRegion)
	putString(out, "selectedProvince", d.SelectedProvince)
	putString(out, "selectedArrondissement", d.SelectedArrondissement)
	putString(out, "selectedMunicipality", d.SelectedMunicipality)
	putString(out, "geoLevel", d.GeoLevel)
	putString(out, "selectedSector", d.SelectedSector)
	putString(out, "selectedCategory", d.SelectedCategory)
	putString(out, "selectedSubcategory", d.SelectedSubcategory)
	putString(out, "currentView", d.CurrentView)
	putString(out, "chartType", d.ChartType)
	putBool(out, "movingAverage", d.MovingAverage)
	putBool(out, "showBoundaries", d.ShowBoundaries)
	putString(out, "duration", d.Duration)
	putString(out, "workers", d.Workers)
	putString(out, "type", d.TypeFilter)
	putInt(out, "stopHorizon", d.StopHorizon)
	putString(out, "measure", d.Measure)
	putString(out, "perspective", d.Perspective)
	putString(out, "field", d.SelectedField)
	putInt(out, "reportYear", d.ReportYear)
	putString(out, "budgetRange", d.BudgetRange)
	putString(out, "projectType", d.ProjectType)
	putString(out, "sortKey", d.SortKey)
	putString(out, "incomeQuintile", d.IncomeQuintile)
	putString(out, "tenureStatus", d.TenureStatus)
	return out
}

func putString(m map[string]any, key string, f Field[string]) {
	if !f.IsSet() {
		return
	}
	if v, ok := f.Get(); ok {
		m[key] = v
		return
	}
	m[key] = nil
}

func putInt(m map[string]any, key string, f Field[int]) {
	if !f.IsSet() {
		return
	}
	if v, ok := f.Get(); ok {
		m[key] = v
		return
	}
	m[key] = nil
}

func putBool(m map[string]any, key string, f Field[bool]) {
	if !f.IsSet() {
		return
	}
	if v, ok := f.Get(); ok {
		m[key] = v
		return
	}
	m[key] = nil
}
