// Package validate holds the pure per-dimension filter validators. Each
// function turns a raw, possibly absent value into a validated value or a
// Dutch error message that always carries the offending input, so a bad
// share link produces a debuggable error panel instead of a blank chart.
//
// Reference data (sector and category catalogs) is passed in by the caller;
// only the small fixed geography catalogs are compiled in via the geo
// package. Nothing here touches the store: validation is a judgment the
// consumer applies before committing a value.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"analyses/internal/core/filters"
	"analyses/internal/core/geo"
)

// Result is the transient judgment for one raw input. Value is nil when the
// input was absent-and-allowed or invalid.
type Result[T any] struct {
	Valid bool   `json:"valid"`
	Value *T     `json:"value"`
	Err   string `json:"error,omitempty"`
}

// Ok returns a valid Result carrying v.
func Ok[T any](v T) Result[T] { return Result[T]{Valid: true, Value: &v} }

// OkNull returns a valid Result carrying no value (absent input allowed).
func OkNull[T any]() Result[T] { return Result[T]{Valid: true} }

// Fail returns an invalid Result with a formatted Dutch message.
func Fail[T any](format string, a ...any) Result[T] {
	return Result[T]{Err: fmt.Sprintf(format, a...)}
}

// Judgment is the type-erased view Combine operates on.
type Judgment interface {
	Ok() bool
	Message() string
}

// Ok reports whether the result is valid.
func (r Result[T]) Ok() bool { return r.Valid }

// Message returns the error message, empty when valid.
func (r Result[T]) Message() string { return r.Err }

// Combine gates a set of results: it short-circuits to the first invalid
// result in input order and carries its message. All valid (or no input)
// yields a valid, value-less result.
func Combine(results ...Judgment) Result[struct{}] {
	for _, r := range results {
		if !r.Ok() {
			return Result[struct{}]{Err: r.Message()}
		}
	}
	return Result[struct{}]{Valid: true}
}

// required formats the shared absent-but-mandatory message.
func required[T any](dimension string) Result[T] {
	return Fail[T]("%s is verplicht", dimension)
}

// Region validates a region NIS code against the compiled catalog.
func Region(raw *string, allowNull bool) Result[string] {
	if raw == nil {
		if allowNull {
			return OkNull[string]()
		}
		return required[string]("Gewest")
	}
	if !geo.IsRegionCode(*raw) {
		return Fail[string]("Ongeldige gewestcode: %s", *raw)
	}
	return Ok(*raw)
}

// Province validates a province NIS code against the compiled catalog.
func Province(raw *string, allowNull bool) Result[string] {
	if raw == nil {
		if allowNull {
			return OkNull[string]()
		}
		return required[string]("Provincie")
	}
	if !geo.IsProvinceCode(*raw) {
		return Fail[string]("Ongeldige provinciecode: %s", *raw)
	}
	return Ok(*raw)
}

// Arrondissement validates an arrondissement NIS code.
func Arrondissement(raw *string, allowNull bool) Result[string] {
	if raw == nil {
		if allowNull {
			return OkNull[string]()
		}
		return required[string]("Arrondissement")
	}
	if !geo.IsArrondissementCode(*raw) {
		return Fail[string]("Ongeldige arrondissementscode: %s", *raw)
	}
	return Ok(*raw)
}

// Municipality validates the shape of a municipality NIS code.
func Municipality(raw *string, allowNull bool) Result[string] {
	if raw == nil {
		if allowNull {
			return OkNull[string]()
		}
		return required[string]("Gemeente")
	}
	if !geo.IsMunicipalityCode(*raw) {
		return Fail[string]("Ongeldige gemeentecode: %s", *raw)
	}
	return Ok(*raw)
}

// Sector validates a sector code against the analysis's catalog. The error
// enumerates the valid options so the caller can render a hint.
func Sector(raw *string, valid []string, allowNull bool) Result[string] {
	return catalogValue(raw, valid, allowNull, "Sector", "Ongeldige sector")
}

// Category validates a category against the analysis's catalog.
func Category(raw *string, valid []string, allowNull bool) Result[string] {
	return catalogValue(raw, valid, allowNull, "Categorie", "Ongeldige categorie")
}

func catalogValue(raw *string, valid []string, allowNull bool, dimension, invalid string) Result[string] {
	if raw == nil {
		if allowNull {
			return OkNull[string]()
		}
		return required[string](dimension)
	}
	for _, v := range valid {
		if v == *raw {
			return Ok(*raw)
		}
	}
	return Fail[string]("%s: %s. Geldige opties: %s", invalid, *raw, strings.Join(valid, ", "))
}

// TimeRange validates the time-range literal.
func TimeRange(raw *string, allowNull bool) Result[filters.TimeRange] {
	if raw == nil {
		if allowNull {
			return OkNull[filters.TimeRange]()
		}
		return required[filters.TimeRange]("Periode")
	}
	v, ok := filters.ParseTimeRange(*raw)
	if !ok {
		return Fail[filters.TimeRange]("Ongeldige periode: %s", *raw)
	}
	return Ok(v)
}

// View validates the view literal.
func View(raw *string, allowNull bool) Result[filters.View] {
	if raw == nil {
		if allowNull {
			return OkNull[filters.View]()
		}
		return required[filters.View]("Weergave")
	}
	v, ok := filters.ParseView(*raw)
	if !ok {
		return Fail[filters.View]("Ongeldige weergave: %s", *raw)
	}
	return Ok(v)
}

// ChartType validates the chart-type literal.
func ChartType(raw *string, allowNull bool) Result[filters.ChartType] {
	if raw == nil {
		if allowNull {
			return OkNull[filters.ChartType]()
		}
		return required[filters.ChartType]("Grafiektype")
	}
	v, ok := filters.ParseChartType(*raw)
	if !ok {
		return Fail[filters.ChartType]("Ongeldig grafiektype: %s", *raw)
	}
	return Ok(v)
}

// GeoLevel validates the geography-level literal.
func GeoLevel(raw *string, allowNull bool) Result[geo.Level] {
	if raw == nil {
		if allowNull {
			return OkNull[geo.Level]()
		}
		return required[geo.Level]("Geografisch niveau")
	}
	v, ok := geo.ParseLevel(*raw)
	if !ok {
		return Fail[geo.Level]("Ongeldig geografisch niveau: %s", *raw)
	}
	return Ok(v)
}

// intInRange coerces a numeric string and checks bounds. Non-numeric input
// and out-of-range numbers are distinct failures; both carry the offending
// value, the range error also carries both bounds.
func intInRange(raw *string, minVal, maxVal int, allowNull bool, dimension string) Result[int] {
	if raw == nil {
		if allowNull {
			return OkNull[int]()
		}
		return required[int](dimension)
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return Fail[int]("Ongeldig %s: %s", strings.ToLower(dimension), *raw)
	}
	if n < minVal || n > maxVal {
		return Fail[int]("Ongeldig %s %d: moet tussen %d en %d liggen", strings.ToLower(dimension), n, minVal, maxVal)
	}
	return Ok(n)
}

// Year validates a year within [minYear, maxYear].
func Year(raw *string, minYear, maxYear int, allowNull bool) Result[int] {
	return intInRange(raw, minYear, maxYear, allowNull, "Jaar")
}

// Quarter validates a quarter in [1, 4].
func Quarter(raw *string, allowNull bool) Result[int] {
	return intInRange(raw, 1, 4, allowNull, "Kwartaal")
}

// Month validates a month in [1, 12].
func Month(raw *string, allowNull bool) Result[int] {
	return intInRange(raw, 1, 12, allowNull, "Maand")
}

// StopHorizon validates the stop horizon in [1, 5].
func StopHorizon(raw *string, allowNull bool) Result[int] {
	return intInRange(raw, 1, 5, allowNull, "Horizon")
}

// perspectives and report years are tiny closed sets owned by the budget
// analysis; enumerated here like the chart literals.
var (
	perspectives = []string{"BV", "REK"}
	reportYears  = []int{2014, 2020, 2026}
)

// Perspective validates the budget perspective (BV or REK).
func Perspective(raw *string, allowNull bool) Result[string] {
	if raw == nil {
		if allowNull {
			return OkNull[string]()
		}
		return required[string]("Perspectief")
	}
	for _, p := range perspectives {
		if p == *raw {
			return Ok(*raw)
		}
	}
	return Fail[string]("Ongeldig perspectief: %s. Geldige opties: %s", *raw, strings.Join(perspectives, ", "))
}

// ReportYear validates the report year against the known reporting rounds.
func ReportYear(raw *string, allowNull bool) Result[int] {
	if raw == nil {
		if allowNull {
			return OkNull[int]()
		}
		return required[int]("Rapportjaar")
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return Fail[int]("Ongeldig rapportjaar: %s", *raw)
	}
	for _, y := range reportYears {
		if y == n {
			return Ok(n)
		}
	}
	opts := make([]string, len(reportYears))
	for i, y := range reportYears {
		opts[i] = strconv.Itoa(y)
	}
	return Fail[int]("Ongeldig rapportjaar: %d. Geldige opties: %s", n, strings.Join(opts, ", "))
}
