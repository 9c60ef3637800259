package models

// Order statuses as the backend spells them.
const (
	OrderStatusPending   = "pending"
	OrderStatusFulfilled = "fulfilled"
	OrderStatusPickedUp  = "picked up"
	OrderStatusCanceled  = "canceled"
)

// Order is an /api/orders row. CustomerID is nil for guest (walk-in)
// orders. Created is a local America/New_York wall-clock timestamp in
// "2006-01-02T15:04:05" form, no UTC offset. Items are snapshots taken
// at submission time, so later catalog edits never change old orders.
//
// The backend does not echo a total; displays recompute it as
// subtotal + tax + tip. Total is still sent on create, matching the
// original client payload.
type Order struct {
	ID         int64       `json:"id,omitempty"`
	CustomerID *int64      `json:"customerId"`
	Items      []OrderItem `json:"items"`
	Subtotal   int64       `json:"subtotal"`
	Tax        int64       `json:"tax"`
	Tip        int64       `json:"tip"`
	Total      int64       `json:"total,omitempty"`
	Created    string      `json:"created"`
	Status     string      `json:"status"`
	ItemStr    string      `json:"itemStr,omitempty"`
}

// OrderItem is one (name, price, quantity) snapshot inside an order.
// Price may be absent on reads from older backends; list screens use
// ItemStr for contents and the stored totals for money.
type OrderItem struct {
	ID       int64  `json:"id,omitempty"`
	OrderID  int64  `json:"orderId,omitempty"`
	ItemName string `json:"itemName"`
	Price    int64  `json:"price,omitempty"`
	Quantity int    `json:"quantity"`
}

// FullTotal recomputes the order total from its stored parts.
func (o Order) FullTotal() int64 {
	return o.Subtotal + o.Tax + o.Tip
}
