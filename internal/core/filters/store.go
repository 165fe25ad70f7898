package filters

import (
	"net/url"
	"sync"
	"time"

	"analyses/internal/core/geo"
	"analyses/internal/core/registry"
)

// URLSink receives the full serialized state after every mutation. The
// browser shell binds this to history.replaceState; embeds and tests bind a
// recorder. Replace semantics are deliberate: filter clicks must not pile up
// history entries.
type URLSink interface {
	Replace(url.Values)
}

// Options configures a Store instance.
type Options struct {
	// Sink receives every full-state serialization; nil disables write-back.
	Sink URLSink
	// Namespace prefixes all written keys with "<slug>." so multiple embeds
	// can share one page without key collisions.
	Namespace bool
	// Now is a clock seam for tests; defaults to time.Now.
	Now func() time.Time
}

// Store holds the filter state for one analysis context. One instance per
// context: there is no process-global current slug, so independently
// configured embeds on one page cannot trample each other.
type Store struct {
	mu          sync.Mutex
	opt         Options
	state       State
	initialized bool
}

// NewStore returns a store holding the global neutral state.
func NewStore(opts ...Options) *Store {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return &Store{opt: o, state: Neutral("")}
}

// SetAnalysisContext records the active slug. Idempotent for an unchanged
// slug. Field values are left untouched: defaults are applied on the next
// load so the view never flashes another analysis's defaults while the URL
// is still being parsed.
func (st *Store) SetAnalysisContext(slug string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.state.AnalysisSlug == slug {
		return
	}
	st.state.AnalysisSlug = slug
	st.initialized = false
}

// LoadFromURLWithDefaults is the mount-time entry point. Per field it picks
// URL value > registry default > neutral default, commits the merge in one
// update, and writes it back to the sink. A second call for the same slug is
// a no-op so a remount cannot clobber in-progress edits. Unknown slugs fail;
// malformed URL values fall through to the defaults tier silently.
func (st *Store) LoadFromURLWithDefaults(slug string, params url.Values) (State, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.initialized && st.state.AnalysisSlug == slug {
		return st.state, nil
	}

	defaults, err := registry.GetDefaults(slug)
	if err != nil {
		return State{}, err
	}

	s := Neutral(slug)
	applyDefaults(&s, defaults)
	Decode(params, slug, &s)
	s.LastUpdated = st.opt.Now()

	st.state = s
	st.initialized = true
	st.syncLocked()
	return st.state, nil
}

// State returns a copy of the current state.
func (st *Store) State() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}

// update runs one mutation, stamps LastUpdated, and synchronously
// re-serializes the whole state to the sink.
func (st *Store) update(fn func(*State)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(&st.state)
	st.state.LastUpdated = st.opt.Now()
	st.syncLocked()
}

// SetTimeRange sets the time granularity.
func (st *Store) SetTimeRange(v TimeRange) { st.update(func(s *State) { s.TimeRange = v }) }

// SetView sets the presentation.
func (st *Store) SetView(v View) { st.update(func(s *State) { s.CurrentView = v }) }

// SetChartType sets the chart rendering.
func (st *Store) SetChartType(v ChartType) { st.update(func(s *State) { s.ChartType = v }) }

// SetGeoLevel sets the geography level; nil clears it.
func (st *Store) SetGeoLevel(v *geo.Level) { st.update(func(s *State) { s.GeoLevel = v }) }

// SetSelectedYear sets the selected year; nil clears it.
func (st *Store) SetSelectedYear(v *int) { st.update(func(s *State) { s.SelectedYear = v }) }

// SetSelectedQuarter sets the selected quarter; nil clears it.
func (st *Store) SetSelectedQuarter(v *int) { st.update(func(s *State) { s.SelectedQuarter = v }) }

// SetSelectedMonth sets the selected month; nil clears it.
func (st *Store) SetSelectedMonth(v *int) { st.update(func(s *State) { s.SelectedMonth = v }) }

// SetYearSpan sets the start/end year window; nil clears either bound.
func (st *Store) SetYearSpan(start, end *int) {
	st.update(func(s *State) { s.StartYear, s.EndYear = start, end })
}

// SetSelectedRegion sets the region code; nil means all regions.
func (st *Store) SetSelectedRegion(v *string) { st.update(func(s *State) { s.SelectedRegion = v }) }

// SetSelectedProvince sets the province code; nil means all provinces.
func (st *Store) SetSelectedProvince(v *string) {
	st.update(func(s *State) { s.SelectedProvince = v })
}

// SetSelectedArrondissement sets the arrondissement code; nil means all.
func (st *Store) SetSelectedArrondissement(v *string) {
	st.update(func(s *State) { s.SelectedArrondissement = v })
}

// SetSelectedMunicipality sets the municipality NIS code; nil means all.
func (st *Store) SetSelectedMunicipality(v *string) {
	st.update(func(s *State) { s.SelectedMunicipality = v })
}

// SetSelectedSector sets the sector code; nil means all sectors.
func (st *Store) SetSelectedSector(v *string) { st.update(func(s *State) { s.SelectedSector = v }) }

// SetSelectedCategory sets the category; nil means all categories.
func (st *Store) SetSelectedCategory(v *string) {
	st.update(func(s *State) { s.SelectedCategory = v })
}

// SetSelectedSubcategory sets the subcategory; nil means all.
func (st *Store) SetSelectedSubcategory(v *string) {
	st.update(func(s *State) { s.SelectedSubcategory = v })
}

// SetMovingAverage toggles the moving-average overlay; nil clears it.
func (st *Store) SetMovingAverage(v *bool) { st.update(func(s *State) { s.MovingAverage = v }) }

// SetShowBoundaries toggles map boundaries; nil clears it.
func (st *Store) SetShowBoundaries(v *bool) { st.update(func(s *State) { s.ShowBoundaries = v }) }

// SetDuration sets the duration filter; nil clears it.
func (st *Store) SetDuration(v *string) { st.update(func(s *State) { s.Duration = v }) }

// SetWorkers sets the workers filter; nil clears it.
func (st *Store) SetWorkers(v *string) { st.update(func(s *State) { s.Workers = v }) }

// SetTypeFilter sets the type filter; nil clears it.
func (st *Store) SetTypeFilter(v *string) { st.update(func(s *State) { s.TypeFilter = v }) }

// SetStopHorizon sets the stop horizon; nil clears it.
func (st *Store) SetStopHorizon(v *int) { st.update(func(s *State) { s.StopHorizon = v }) }

// SetMeasure sets the measure; nil clears it.
func (st *Store) SetMeasure(v *string) { st.update(func(s *State) { s.Measure = v }) }

// SetPerspective sets the budget perspective; nil clears it.
func (st *Store) SetPerspective(v *string) { st.update(func(s *State) { s.Perspective = v }) }

// SetSelectedField sets the data field; nil clears it.
func (st *Store) SetSelectedField(v *string) { st.update(func(s *State) { s.SelectedField = v }) }

// SetReportYear sets the report year; nil clears it.
func (st *Store) SetReportYear(v *int) { st.update(func(s *State) { s.ReportYear = v }) }

// SetBudgetRange sets the budget range; nil clears it.
func (st *Store) SetBudgetRange(v *string) { st.update(func(s *State) { s.BudgetRange = v }) }

// SetProjectType sets the project type; nil clears it.
func (st *Store) SetProjectType(v *string) { st.update(func(s *State) { s.ProjectType = v }) }

// SetSortKey sets the sort key; nil clears it.
func (st *Store) SetSortKey(v *string) { st.update(func(s *State) { s.SortKey = v }) }

// SetIncomeQuintile sets the income quintile; nil clears it.
func (st *Store) SetIncomeQuintile(v *string) { st.update(func(s *State) { s.IncomeQuintile = v }) }

// SetTenureStatus sets the tenure status; nil clears it.
func (st *Store) SetTenureStatus(v *string) { st.update(func(s *State) { s.TenureStatus = v }) }

// Reset restores the global neutral defaults except for the query keys in
// preserve, then re-syncs. Note: neutral, not the analysis's registry
// defaults; the asymmetry is inherited behavior and covered by a test.
func (st *Store) Reset(preserve ...string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	keep := Encode(&st.state, "")
	s := Neutral(st.state.AnalysisSlug)
	for _, key := range preserve {
		raw := keep.Get(key)
		if raw == "" {
			continue
		}
		for _, c := range codecs {
			if c.key == key {
				c.set(&s, raw)
				break
			}
		}
	}
	s.LastUpdated = st.opt.Now()
	st.state = s
	st.syncLocked()
}

// ToEmbedParams serializes the state to the exact key set syncLocked writes,
// so an embed link loaded fresh reproduces this state byte for byte.
func (st *Store) ToEmbedParams() url.Values {
	st.mu.Lock()
	defer st.mu.Unlock()
	return Encode(&st.state, st.namespaceLocked())
}

// ToQueryString renders ToEmbedParams as a query string (keys sorted).
func (st *Store) ToQueryString() string {
	return st.ToEmbedParams().Encode()
}

func (st *Store) namespaceLocked() string {
	if st.opt.Namespace {
		return st.state.AnalysisSlug
	}
	return ""
}

func (st *Store) syncLocked() {
	if st.opt.Sink == nil {
		return
	}
	st.opt.Sink.Replace(Encode(&st.state, st.namespaceLocked()))
}
