package model

import "time"

// Invoice statuses accepted by the dashboard.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice represents a billing record tied to exactly one customer.
// This is a pure domain model with no database-specific dependencies or tags.
// AmountCents is the integer minor-unit amount; conversion from decimal
// dollars happens at the validation boundary, never here.
type Invoice struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	AmountCents int64     `json:"amount"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

// InvoiceWithCustomer is the joined listing row: invoice fields alongside
// the owning customer's display data.
type InvoiceWithCustomer struct {
	Invoice
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerImage string `json:"customer_image_url"`
}
