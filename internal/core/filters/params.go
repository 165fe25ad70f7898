package filters

import (
	"net/url"
	"strconv"

	"analyses/internal/core/geo"
)

// codec binds one state field to its query-parameter key. get reports the
// serialized value and whether the field is present; set parses a raw value
// into the field and reports success. A failed set leaves the field alone,
// which is what makes the load path fall through to the defaults tier.
type codec struct {
	key string
	get func(*State) (string, bool)
	set func(*State, string) bool
}

// codecs is the fixed bidirectional field <-> parameter table. Every field
// of State except AnalysisSlug and LastUpdated has exactly one entry.
var codecs = []codec{
	{"view", func(s *State) (string, bool) { return string(s.CurrentView), s.CurrentView != "" },
		func(s *State, raw string) bool {
			v, ok := ParseView(raw)
			if ok {
				s.CurrentView = v
			}
			return ok
		}},
	{"range", func(s *State) (string, bool) { return string(s.TimeRange), s.TimeRange != "" },
		func(s *State, raw string) bool {
			v, ok := ParseTimeRange(raw)
			if ok {
				s.TimeRange = v
			}
			return ok
		}},
	{"chartType", func(s *State) (string, bool) { return string(s.ChartType), s.ChartType != "" },
		func(s *State, raw string) bool {
			v, ok := ParseChartType(raw)
			if ok {
				s.ChartType = v
			}
			return ok
		}},
	{"geoLevel", func(s *State) (string, bool) {
		if s.GeoLevel == nil {
			return "", false
		}
		return string(*s.GeoLevel), true
	},
		func(s *State, raw string) bool {
			v, ok := geo.ParseLevel(raw)
			if ok {
				s.GeoLevel = &v
			}
			return ok
		}},

	intCodec("year", func(s *State) **int { return &s.SelectedYear }),
	intCodec("q", func(s *State) **int { return &s.SelectedQuarter }),
	intCodec("month", func(s *State) **int { return &s.SelectedMonth }),
	intCodec("start", func(s *State) **int { return &s.StartYear }),
	intCodec("end", func(s *State) **int { return &s.EndYear }),

	strCodec("region", func(s *State) **string { return &s.SelectedRegion }),
	strCodec("province", func(s *State) **string { return &s.SelectedProvince }),
	strCodec("arr", func(s *State) **string { return &s.SelectedArrondissement }),
	strCodec("municipality", func(s *State) **string { return &s.SelectedMunicipality }),

	strCodec("sector", func(s *State) **string { return &s.SelectedSector }),
	strCodec("category", func(s *State) **string { return &s.SelectedCategory }),
	strCodec("subcategory", func(s *State) **string { return &s.SelectedSubcategory }),

	boolCodec("ma", func(s *State) **bool { return &s.MovingAverage }),
	boolCodec("boundaries", func(s *State) **bool { return &s.ShowBoundaries }),

	strCodec("duration", func(s *State) **string { return &s.Duration }),
	strCodec("workers", func(s *State) **string { return &s.Workers }),
	strCodec("type", func(s *State) **string { return &s.TypeFilter }),
	intCodec("horizon", func(s *State) **int { return &s.StopHorizon }),
	strCodec("measure", func(s *State) **string { return &s.Measure }),
	strCodec("perspective", func(s *State) **string { return &s.Perspective }),
	strCodec("field", func(s *State) **string { return &s.SelectedField }),
	intCodec("reportYear", func(s *State) **int { return &s.ReportYear }),
	strCodec("budget", func(s *State) **string { return &s.BudgetRange }),
	strCodec("projectType", func(s *State) **string { return &s.ProjectType }),
	strCodec("sort", func(s *State) **string { return &s.SortKey }),
	strCodec("income", func(s *State) **string { return &s.IncomeQuintile }),
	strCodec("tenure", func(s *State) **string { return &s.TenureStatus }),
}

// aliases maps alternate incoming keys to canonical ones. Encode always
// writes the canonical key.
var aliases = map[string]string{
	"municipality": "muni",
}

func strCodec(key string, sel func(*State) **string) codec {
	return codec{
		key: key,
		get: func(s *State) (string, bool) {
			p := *sel(s)
			if p == nil {
				return "", false
			}
			return *p, true
		},
		set: func(s *State, raw string) bool {
			v := raw
			*sel(s) = &v
			return true
		},
	}
}

func intCodec(key string, sel func(*State) **int) codec {
	return codec{
		key: key,
		get: func(s *State) (string, bool) {
			p := *sel(s)
			if p == nil {
				return "", false
			}
			return strconv.Itoa(*p), true
		},
		set: func(s *State, raw string) bool {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return false
			}
			*sel(s) = &n
			return true
		},
	}
}

func boolCodec(key string, sel func(*State) **bool) codec {
	return codec{
		key: key,
		get: func(s *State) (string, bool) {
			p := *sel(s)
			if p == nil {
				return "", false
			}
			if *p {
				return "1", true
			}
			return "0", true
		},
		// "0" and "false" are a present false, distinct from absence
		set: func(s *State, raw string) bool {
			var v bool
			switch raw {
			case "1", "true":
				v = true
			case "0", "false":
				v = false
			default:
				return false
			}
			*sel(s) = &v
			return true
		},
	}
}

// ParamValue looks up key for slug in params: the namespaced "<slug>.<key>"
// wins, the bare key is the fallback so un-namespaced links keep working.
// Empty values count as absent.
func ParamValue(params url.Values, key, slug string) (string, bool) {
	if slug != "" {
		if v := params.Get(slug + "." + key); v != "" {
			return v, true
		}
	}
	if v := params.Get(key); v != "" {
		return v, true
	}
	return "", false
}

// Encode serializes the state to query parameters. Nil fields are omitted,
// booleans become "1"/"0". A non-empty namespace prefixes every key with
// "<namespace>.".
func Encode(s *State, namespace string) url.Values {
	out := url.Values{}
	prefix := ""
	if namespace != "" {
		prefix = namespace + "."
	}
	for _, c := range codecs {
		if v, ok := c.get(s); ok {
			out.Set(prefix+c.key, v)
		}
	}
	return out
}

// Decode applies every parameter present in params onto s, namespaced keys
// first. Values that fail to parse are ignored so the field keeps whatever
// the defaults tiers put there; explicit validation is the validator's job,
// not the store's.
func Decode(params url.Values, slug string, s *State) {
	for _, c := range codecs {
		raw, ok := ParamValue(params, c.key, slug)
		if !ok {
			if alias, has := aliases[c.key]; has {
				raw, ok = ParamValue(params, alias, slug)
			}
			if !ok {
				continue
			}
		}
		c.set(s, raw)
	}
}
