package services

import "math"

// All money is integer cents. Tax and tip are each rounded once from
// the exact subtotal; nothing is re-rounded after summation.

// TipPercents is the fixed set of named tip choices, in order.
var TipPercents = []int{15, 18, 20, 22}

// TipSelection is either a named percentage of the subtotal or a fixed
// custom amount in cents. Custom wins when set.
type TipSelection struct {
	Percent     int
	Custom      bool
	CustomCents float64 // raw user entry; rounded when resolved
}

// Subtotal is Σ price×quantity over the cart lines. 0 for an empty cart.
func Subtotal(lines []CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.Price * int64(l.Quantity)
	}
	return sum
}

// Tax rounds subtotal×rate. rateFraction is a decimal fraction: the
// backend serves a percentage (2 for 2%) which callers divide by 100.
func Tax(subtotal int64, rateFraction float64) int64 {
	return int64(math.Round(float64(subtotal) * rateFraction))
}

// Tip resolves a tip selection against the subtotal. A custom tip is
// taken as entered and rounded to whole cents; it may come back
// negative, which checkout rejects rather than clamping away silently.
func Tip(subtotal int64, sel TipSelection) int64 {
	if sel.Custom {
		return int64(math.Round(sel.CustomCents))
	}
	return int64(math.Round(float64(subtotal) * float64(sel.Percent) / 100))
}

// Total is the plain sum of the already-rounded parts.
func Total(subtotal, tax, tip int64) int64 {
	return subtotal + tax + tip
}
