package validation

import (
	"math"
	"net/mail"
	"strconv"
	"strings"

	"dashboard/internal/model"
)

// Length limits from the items schema.
const (
	ItemNameMaxLen        = 100
	ItemDescriptionMaxLen = 300
	ItemUnitMaxLen        = 20
)

// InvoiceInput is a validated invoice mutation payload. AmountCents is the
// dollar amount from the form converted to integer cents.
type InvoiceInput struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// CustomerInput is a validated customer mutation payload.
type CustomerInput struct {
	Name  string
	Email string
}

// ItemInput is a validated item mutation payload.
type ItemInput struct {
	Name        string
	Description string
	Price       float64
	Unit        string
}

// ParseInvoiceForm validates invoice form fields.
// Fields: customer_id (required), amount (decimal dollars, > 0),
// status (pending|paid).
func ParseInvoiceForm(form map[string]string) (*InvoiceInput, FieldErrors) {
	fe := FieldErrors{}

	customerID := strings.TrimSpace(form["customer_id"])
	if customerID == "" {
		fe.Add("customer_id", "Please select a customer.")
	}

	amountCents, ok := parseAmountCents(form["amount"])
	if !ok {
		fe.Add("amount", "Please enter an amount greater than $0.")
	}

	status := strings.TrimSpace(form["status"])
	if status != model.InvoiceStatusPending && status != model.InvoiceStatusPaid {
		fe.Add("status", "Please select an invoice status.")
	}

	if !fe.Empty() {
		return nil, fe
	}
	return &InvoiceInput{
		CustomerID:  customerID,
		AmountCents: amountCents,
		Status:      status,
	}, nil
}

// ParseCustomerForm validates customer form fields.
// Fields: name (required), email (valid address). The photo field is binary
// and handled by the mutation pipeline, not here.
func ParseCustomerForm(form map[string]string) (*CustomerInput, FieldErrors) {
	fe := FieldErrors{}

	name := strings.TrimSpace(form["name"])
	if name == "" {
		fe.Add("name", "Name is required.")
	}

	email := strings.TrimSpace(form["email"])
	if email == "" {
		fe.Add("email", "Invalid email address.")
	} else if _, err := mail.ParseAddress(email); err != nil {
		fe.Add("email", "Invalid email address.")
	}

	if !fe.Empty() {
		return nil, fe
	}
	return &CustomerInput{Name: name, Email: email}, nil
}

// ParseItemForm validates item form fields.
// Fields: name (required, <=100), description (optional, <=300),
// price (decimal, > 0), unit (optional, <=20).
func ParseItemForm(form map[string]string) (*ItemInput, FieldErrors) {
	fe := FieldErrors{}

	name := strings.TrimSpace(form["name"])
	if name == "" {
		fe.Add("name", "Name is required.")
	} else if len(name) > ItemNameMaxLen {
		fe.Add("name", "Name must be at most 100 characters.")
	}

	description := strings.TrimSpace(form["description"])
	if len(description) > ItemDescriptionMaxLen {
		fe.Add("description", "Description must be at most 300 characters.")
	}

	price, ok := parsePositiveDecimal(form["price"])
	if !ok {
		fe.Add("price", "Price must be greater than 0.")
	}

	unit := strings.TrimSpace(form["unit"])
	if len(unit) > ItemUnitMaxLen {
		fe.Add("unit", "Unit must be at most 20 characters.")
	}

	if !fe.Empty() {
		return nil, fe
	}
	return &ItemInput{
		Name:        name,
		Description: description,
		Price:       price,
		Unit:        unit,
	}, nil
}

// parseAmountCents coerces a decimal dollar string into integer cents.
// Returns false when the value is not coercible or not strictly positive.
func parseAmountCents(raw string) (int64, bool) {
	v, ok := parsePositiveDecimal(raw)
	if !ok {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}

func parsePositiveDecimal(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
