package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/oapi-codegen/runtime/types"

	"github.com/wanderplan/travel-planner-api/internal/ports/out/mailer"
)

type mailRequest struct {
	To      types.Email `json:"to" validate:"required"`
	Subject string      `json:"subject" validate:"required"`
	Body    string      `json:"body" validate:"required"`
	CC      string      `json:"cc,omitempty"`
	BCC     string      `json:"bcc,omitempty"`
}

func (s *Server) handleSendMail(w http.ResponseWriter, r *http.Request) {
	var req mailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid mail request", validationDetails(err))
		return
	}

	err := s.mail.Send(r.Context(), mailer.Message{
		To:      string(req.To),
		Subject: req.Subject,
		Body:    req.Body,
		CC:      req.CC,
		BCC:     req.BCC,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("mail send failed")
		writeError(w, r, http.StatusBadGateway, "MAIL_DELIVERY_FAILED", "mail delivery failed", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Mail sent successfully"})
}
