package services

import (
	"sort"
	"time"

	"wolfcafe-telegram/models"
)

// Order lifecycle: pending → fulfilled → picked up, or pending →
// canceled. Canceled and picked up are terminal. The bot never renders
// a button for anything else, and the callback path re-checks here so
// a stale button cannot smuggle in an illegal move.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusFulfilled || to == models.OrderStatusCanceled
	case models.OrderStatusFulfilled:
		return to == models.OrderStatusPickedUp
	default:
		return false
	}
}

// ParseCreated reads the backend's created stamp as café wall-clock
// time.
func ParseCreated(s string) (time.Time, error) {
	return time.ParseInLocation(createdLayout, s, newYork)
}

// ParseDay reads a YYYY-MM-DD string as a café calendar day. Parsing in
// any other zone would shift the day once FilterByDate formats it back
// in café time.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, newYork)
}

func sameCafeDay(a, b time.Time) bool {
	a, b = a.In(newYork), b.In(newYork)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FilterForViewer scopes the order list to what the viewer may see.
// An authenticated session sees its own orders, any day. A guest (nil
// session) sees only today's walk-in orders (ones with no customer id),
// so guests never see each other's history, let alone customers'.
func FilterForViewer(orders []models.Order, sess *Session, now time.Time) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if sess != nil {
			if o.CustomerID != nil && *o.CustomerID == sess.UserID {
				out = append(out, o)
			}
			continue
		}
		if o.CustomerID != nil {
			continue
		}
		created, err := ParseCreated(o.Created)
		if err != nil {
			continue
		}
		if sameCafeDay(created, now) {
			out = append(out, o)
		}
	}
	return out
}

// FilterByDate keeps orders created on the given calendar day,
// regardless of customer. The comparison is on the date prefix of the
// created string, same as the staff screen always did.
func FilterByDate(orders []models.Order, date time.Time) []models.Order {
	day := date.In(newYork).Format("2006-01-02")
	var out []models.Order
	for _, o := range orders {
		if len(o.Created) >= 10 && o.Created[:10] == day {
			out = append(out, o)
		}
	}
	return out
}

// SortByCreatedDescending returns a newest-first copy. The sort is
// stable, so same-second orders keep their server order.
func SortByCreatedDescending(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := ParseCreated(out[i].Created)
		tj, _ := ParseCreated(out[j].Created)
		return ti.After(tj)
	})
	return out
}

// DailyRevenue sums order totals for a day's order set, skipping
// canceled orders.
func DailyRevenue(orders []models.Order) int64 {
	var sum int64
	for _, o := range orders {
		if o.Status == models.OrderStatusCanceled {
			continue
		}
		sum += o.FullTotal()
	}
	return sum
}
