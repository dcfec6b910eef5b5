// Package pricing computes the order cost breakdown: item subtotal, a fixed
// delivery fee, and a percentage service fee with a minimum charge.
package pricing

import (
	"github.com/shopspring/decimal"

	"nowbuy/internal/domain"
)

const (
	// DeliveryFee is charged per order, in whole currency units.
	DeliveryFee = 30
	// ServiceFeeMinimum is the floor of the proxy service fee.
	ServiceFeeMinimum = 20
)

// ServiceFeeRate is the percentage of the subtotal charged as service fee.
var ServiceFeeRate = decimal.NewFromFloat(0.05)

// Quote is the derived cost breakdown for a set of cart items.
type Quote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	ServiceFee  decimal.Decimal `json:"serviceFee"`
	Total       decimal.Decimal `json:"total"`
}

// QuoteItems prices the given items. Availability filtering is the caller's
// concern; every item passed in is counted. The service fee is
// max(subtotal*rate, minimum) - a zero subtotal still charges the floor.
func QuoteItems(items []domain.CartItem) Quote {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromInt(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	delivery := decimal.NewFromInt(DeliveryFee)
	service := subtotal.Mul(ServiceFeeRate)
	if minimum := decimal.NewFromInt(ServiceFeeMinimum); service.LessThan(minimum) {
		service = minimum
	}

	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: delivery,
		ServiceFee:  service,
		Total:       subtotal.Add(delivery).Add(service),
	}
}
