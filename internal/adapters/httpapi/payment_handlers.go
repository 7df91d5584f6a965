package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/wanderplan/travel-planner-api/internal/app/payments"
)

// handleProcessPayment runs one payment attempt. The response body is always
// the normalized payment outcome shape; the HTTP status mirrors its Success
// flag (200 on success, 400 on failure).
func (s *Server) handleProcessPayment(w http.ResponseWriter, r *http.Request) {
	var req *payments.Request
	body, err := io.ReadAll(r.Body)
	if err == nil && len(body) > 0 {
		req = &payments.Request{}
		if jsonErr := json.Unmarshal(body, req); jsonErr != nil {
			writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
			return
		}
	}

	// A payment may be attached to a user only when the caller owns that
	// user. The attempt itself does not require a user id.
	if req != nil && req.UserID != nil {
		if !s.callerOwns(w, r, *req.UserID) {
			return
		}
	}

	resp := s.payments.Process(r.Context(), req)
	if req != nil {
		s.metrics.ObservePayment(req.PaymentType, resp.Success)
	}

	status := http.StatusOK
	if !resp.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, resp)
}

func (s *Server) handlePaymentConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"publishableKey": s.publishableKey,
	})
}

func (s *Server) handlePaymentHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "UP",
		"service": "payment",
	})
}
