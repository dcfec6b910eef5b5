package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the durable result of a successful submission. It snapshots the
// orderable cart items and the chosen proxy buyer at submission time.
type Order struct {
	OrderID         string          `json:"orderId"`
	Items           []CartItem      `json:"items"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	SelectedProxy   ProxyBuyer      `json:"selectedProxy"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

// OrderStage is one step of the confirmation timeline.
type OrderStage struct {
	Key         string     `json:"key"`
	Label       string     `json:"label"`
	Done        bool       `json:"done"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Note        string     `json:"note,omitempty"`
}

// Timeline renders the fixed four-stage progress view. Only the first stage
// is ever complete from persisted data; there is no live status channel, the
// remaining stages are static placeholders.
func (o Order) Timeline() []OrderStage {
	submitted := o.Timestamp
	return []OrderStage{
		{Key: "submitted", Label: "Order submitted", Done: true, CompletedAt: &submitted},
		{Key: "awaiting_confirmation", Label: "Awaiting proxy confirmation", Note: "usually within 5-10 minutes"},
		{Key: "purchasing", Label: "Purchasing", Note: "starts once the proxy accepts"},
		{Key: "delivered", Label: "Delivered", Note: "estimated 1-2 hours"},
	}
}
