package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nghuy/gameledger/internal/api/request"
	"github.com/nghuy/gameledger/internal/api/response"
	"github.com/nghuy/gameledger/internal/mail"
)

// EmailHandler handles the outbound email side endpoint
type EmailHandler struct {
	sender *mail.Sender
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(sender *mail.Sender) *EmailHandler {
	return &EmailHandler{
		sender: sender,
	}
}

// Send handles POST /api/v1/email/send
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if strings.TrimSpace(req.To) == "" {
		WriteError(w, NewInvalidRequestError("to is required"))
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		WriteError(w, NewInvalidRequestError("subject is required"))
		return
	}

	if err := h.sender.Send(r.Context(), req.To, req.Subject, req.Body); err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Email sent"})
}
