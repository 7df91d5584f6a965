package payments

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wanderplan/travel-planner-api/internal/domain"
)

// Payment type tags. The registry is built from this fixed set at startup.
const (
	TypeGateway = "gateway"
	TypeCrypto  = "crypto"
)

// Request is one payment attempt as submitted by a client.
type Request struct {
	// Amount is a positive decimal in major units (e.g. 49.99). Nil means
	// absent, which validation rejects.
	Amount *decimal.Decimal `json:"amount"`

	Currency        string `json:"currency"`
	PaymentMethodID string `json:"paymentMethodId"`

	// PaymentType selects the strategy: "gateway" or "crypto".
	PaymentType string `json:"paymentType"`

	Description string `json:"description,omitempty"`

	UserID      *domain.UserID      `json:"userId,omitempty"`
	ItineraryID *domain.ItineraryID `json:"itineraryId,omitempty"`

	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
}

// Response is the single normalized outcome shape for every payment attempt.
// Success is the only discriminant; it is never inferred from other fields.
// A Response is created once per attempt and never mutated afterwards.
type Response struct {
	PaymentID     string           `json:"paymentId,omitempty"`
	Status        string           `json:"status"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Currency      string           `json:"currency,omitempty"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Description   string           `json:"description,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	ClientSecret  string           `json:"clientSecret,omitempty"`
	ReceiptURL    string           `json:"receiptUrl,omitempty"`
	Success       bool             `json:"success"`
	ErrorMessage  string           `json:"errorMessage,omitempty"`
}

// Failed builds the failure shape of Response.
func Failed(errorMessage string) Response {
	return Response{
		Status:       "failed",
		ErrorMessage: errorMessage,
		CreatedAt:    time.Now().UTC(),
		Success:      false,
	}
}
