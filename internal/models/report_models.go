package models

import "time"

// PaymentMethod is how a closed table was settled.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// Valid reports whether the payment method is one of the accepted kinds.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentCard
}

// Settlement records one closed table.
type Settlement struct {
	ID            string        `json:"id"`
	TableName     string        `json:"table_name"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	ClosedAt      time.Time     `json:"closed_at"`
}

// DailyReport is the running cash/card totals of the current session.
type DailyReport struct {
	CashTotal  float64 `json:"cash_total"`
	CardTotal  float64 `json:"card_total"`
	GrandTotal float64 `json:"grand_total"`
}

// TableSummary is one row of the table-grid view.
type TableSummary struct {
	Name       string  `json:"name"`
	IsVIP      bool    `json:"is_vip"`
	Occupied   bool    `json:"occupied"`
	OrderCount int     `json:"order_count"`
	Total      float64 `json:"total"`
}
