package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidRuleKind  = errors.New("invalid rule kind")
	ErrEmptyAdjustment  = errors.New("rule has no adjustment")
	ErrMissingDateRange = errors.New("rule requires a date range")
	ErrMissingEventDate = errors.New("event rule requires a date")
	ErrInvalidDateRange = errors.New("rule date range is inverted")
)

type RuleKind string

const (
	KindSeason      RuleKind = "season"
	KindWeekday     RuleKind = "weekday"
	KindWeekend     RuleKind = "weekend"
	KindEvent       RuleKind = "event"
	KindLongWeekend RuleKind = "long_weekend"
)

// ApplyOrder is the precedence in which rule kinds stack onto a night.
// It is fixed: the order rules appear in a room's configuration never
// changes the outcome.
var ApplyOrder = []RuleKind{
	KindSeason,
	KindWeekday,
	KindWeekend,
	KindEvent,
	KindLongWeekend,
}

func (k RuleKind) String() string {
	return string(k)
}

func (k RuleKind) IsValid() bool {
	switch k {
	case KindSeason, KindWeekday, KindWeekend, KindEvent, KindLongWeekend:
		return true
	default:
		return false
	}
}

// DisplayName is the label prefix shown in a quote breakdown.
func (k RuleKind) DisplayName() string {
	switch k {
	case KindSeason:
		return "Season"
	case KindWeekday:
		return "Weekday"
	case KindWeekend:
		return "Weekend"
	case KindEvent:
		return "Event"
	case KindLongWeekend:
		return "Long weekend"
	default:
		return string(k)
	}
}

// Adjustment is either a percentage of the base nightly rate or a fixed
// amount, never both. Exclusivity is enforced here so a rule cannot
// carry two competing increments.
type Adjustment struct {
	percent *float64
	fixed   *float64
}

func NewPercentAdjustment(percent float64) Adjustment {
	return Adjustment{percent: &percent}
}

func NewFixedAdjustment(amount float64) Adjustment {
	return Adjustment{fixed: &amount}
}

func (a Adjustment) IsZero() bool {
	return a.percent == nil && a.fixed == nil
}

func (a Adjustment) IsPercent() bool {
	return a.percent != nil
}

func (a Adjustment) Percent() float64 {
	if a.percent == nil {
		return 0
	}
	return *a.percent
}

func (a Adjustment) Fixed() float64 {
	if a.fixed == nil {
		return 0
	}
	return *a.fixed
}

// AmountOn is the signed delta this adjustment contributes for one
// night. Percentages are always taken against the original base rate,
// not the running adjusted price: stacking is additive, not compounding.
func (a Adjustment) AmountOn(baseRate float64) float64 {
	if a.fixed != nil {
		return *a.fixed
	}
	if a.percent != nil {
		return baseRate * *a.percent / 100
	}
	return 0
}

func (a Adjustment) describe() string {
	if a.fixed != nil {
		return signedAmount(*a.fixed)
	}
	if a.percent != nil {
		return signedPercent(*a.percent)
	}
	return ""
}

func signedPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if p >= 0 {
		return "+" + s + "%"
	}
	return s + "%"
}

func signedAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v >= 0 {
		return "+$" + s
	}
	return "-$" + strconv.FormatFloat(-v, 'f', -1, 64)
}

// Rule is one configured price adjustment attached to a room. Rules are
// immutable inputs to the calculator; only inactive rules escape it.
type Rule struct {
	kind       RuleKind
	active     bool
	adjustment Adjustment
	dateFrom   *time.Time
	dateTo     *time.Time
}

// NewRule validates kind-specific date requirements at configuration
// time so the calculator never has to guard against malformed rules.
func NewRule(kind RuleKind, active bool, adjustment Adjustment, dateFrom, dateTo *time.Time) (Rule, error) {
	if !kind.IsValid() {
		return Rule{}, ErrInvalidRuleKind
	}
	if adjustment.IsZero() {
		return Rule{}, ErrEmptyAdjustment
	}

	var from, to *time.Time
	if dateFrom != nil {
		d := DateOf(*dateFrom)
		from = &d
	}
	if dateTo != nil {
		d := DateOf(*dateTo)
		to = &d
	}

	switch kind {
	case KindSeason, KindLongWeekend:
		if from == nil || to == nil {
			return Rule{}, ErrMissingDateRange
		}
		if to.Before(*from) {
			return Rule{}, ErrInvalidDateRange
		}
	case KindEvent:
		if from == nil {
			return Rule{}, ErrMissingEventDate
		}
		to = nil
	case KindWeekday, KindWeekend:
		// Recurring kinds carry no dates.
		from, to = nil, nil
	}

	return Rule{
		kind:       kind,
		active:     active,
		adjustment: adjustment,
		dateFrom:   from,
		dateTo:     to,
	}, nil
}

func (r Rule) Kind() RuleKind         { return r.kind }
func (r Rule) Active() bool           { return r.active }
func (r Rule) Adjustment() Adjustment { return r.adjustment }
func (r Rule) DateFrom() *time.Time   { return r.dateFrom }
func (r Rule) DateTo() *time.Time     { return r.dateTo }

// AppliesTo reports whether this rule fires for the given night.
// Weekend nights run Friday through Sunday; weekday nights Monday
// through Thursday.
func (r Rule) AppliesTo(date time.Time) bool {
	if !r.active {
		return false
	}
	d := DateOf(date)

	switch r.kind {
	case KindSeason, KindLongWeekend:
		return !d.Before(*r.dateFrom) && !d.After(*r.dateTo)
	case KindEvent:
		return d.Equal(*r.dateFrom)
	case KindWeekend:
		wd := d.Weekday()
		return wd == time.Friday || wd == time.Saturday || wd == time.Sunday
	case KindWeekday:
		wd := d.Weekday()
		return wd >= time.Monday && wd <= time.Thursday
	default:
		return false
	}
}

// Label is the human-readable entry recorded in a night's breakdown,
// e.g. "Season: +20%" or "Event: +$500".
func (r Rule) Label() string {
	return fmt.Sprintf("%s: %s", r.kind.DisplayName(), r.adjustment.describe())
}

// OverlapsDates reports whether two date-ranged rules of the same kind
// cover at least one common day. Used by configuration validation;
// recurring kinds never report overlap through dates.
func (r Rule) OverlapsDates(other Rule) bool {
	if r.kind != other.kind {
		return false
	}
	if r.dateFrom == nil || other.dateFrom == nil {
		return false
	}
	rTo := r.dateFrom
	if r.dateTo != nil {
		rTo = r.dateTo
	}
	oTo := other.dateFrom
	if other.dateTo != nil {
		oTo = other.dateTo
	}
	return !r.dateFrom.After(*oTo) && !other.dateFrom.After(*rTo)
}
