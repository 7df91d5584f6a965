package payments

// ValidationError names the offending field and the reason a request was
// rejected. Its message is surfaced verbatim to the caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ValidateRequest performs the structural and semantic checks that must pass
// before any strategy is invoked. It is pure: no external calls, no mutation.
func ValidateRequest(req *Request) *ValidationError {
	if req == nil {
		return &ValidationError{Field: "request", Reason: "Payment request cannot be null"}
	}
	if req.Amount == nil || !req.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "Payment amount must be greater than zero"}
	}
	if req.Currency == "" {
		return &ValidationError{Field: "currency", Reason: "Currency is required"}
	}
	if req.PaymentMethodID == "" {
		return &ValidationError{Field: "paymentMethodId", Reason: "Payment method is required"}
	}
	if req.PaymentType == "" {
		return &ValidationError{Field: "paymentType", Reason: "Payment type is required"}
	}
	return nil
}
