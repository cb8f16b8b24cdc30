package pricing

import (
	"math"
	"time"
)

// minNightlyPrice is the floor for a priced night. Discounts can never
// drive a night to zero or below.
const minNightlyPrice int64 = 1

// NightPrice is one night of a quote: the final integral price and the
// labels of every rule that fired, in application order.
type NightPrice struct {
	Date               time.Time
	Price              int64
	AppliedAdjustments []string
}

// Quote is the result of pricing a stay: one entry per night in
// chronological order plus the pre-tax total.
type Quote struct {
	TotalPrice int64
	Breakdown  []NightPrice
}

// Calculate prices a stay night by night.
//
// Each night starts at baseRate. Rule kinds stack in ApplyOrder, never
// in input order; within a kind, matching rules apply in list order
// without deduplication. Percent increments are computed against
// baseRate itself, so stacked rules add rather than compound. The
// running nightly price is clamped to a minimum of one unit and rounded
// to the nearest whole unit.
//
// The function is pure: no clock, no randomness, no retained state.
// A degenerate range produces an empty quote rather than an error.
func Calculate(stay StayRange, baseRate float64, rules []Rule) Quote {
	nights := stay.Nights()
	if nights == 0 {
		return Quote{}
	}

	quote := Quote{Breakdown: make([]NightPrice, 0, nights)}

	for date := stay.CheckIn(); date.Before(stay.CheckOut()); date = date.AddDate(0, 0, 1) {
		night := priceNight(date, baseRate, rules)
		quote.Breakdown = append(quote.Breakdown, night)
		quote.TotalPrice += night.Price
	}

	return quote
}

func priceNight(date time.Time, baseRate float64, rules []Rule) NightPrice {
	price := baseRate
	var applied []string

	for _, kind := range ApplyOrder {
		for _, rule := range rules {
			if rule.Kind() != kind || !rule.AppliesTo(date) {
				continue
			}
			price += rule.Adjustment().AmountOn(baseRate)
			applied = append(applied, rule.Label())
		}
	}

	rounded := int64(math.Round(price))
	if rounded < minNightlyPrice {
		rounded = minNightlyPrice
	}

	return NightPrice{
		Date:               date,
		Price:              rounded,
		AppliedAdjustments: applied,
	}
}

// Calculator is the injectable form of Calculate for collaborators that
// take pricing as a dependency.
type Calculator interface {
	Calculate(stay StayRange, baseRate float64, rules []Rule) Quote
}

type StandardCalculator struct{}

func NewStandardCalculator() *StandardCalculator {
	return &StandardCalculator{}
}

func (StandardCalculator) Calculate(stay StayRange, baseRate float64, rules []Rule) Quote {
	return Calculate(stay, baseRate, rules)
}
