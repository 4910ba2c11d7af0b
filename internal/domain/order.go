package domain

import "time"

// Order statuses. The flow only ever produces completed orders today;
// the pending/cancelled values exist for imported or failed references.
const (
	OrderStatusCompleted = "completed"
	OrderStatusPending   = "pending"
	OrderStatusCancelled = "cancelled"
)

// Order is a completed purchase snapshot. ID is the payment reference
// returned by the payment provider; history is append-only, newest first.
type Order struct {
	ID         string     `json:"id"`
	Items      []CartItem `json:"items"`
	Total      int64      `json:"total"` // CLP, minor unit
	ItemsCount int        `json:"itemsCount"`
	Date       time.Time  `json:"date"`
	Status     string     `json:"status"`
}
