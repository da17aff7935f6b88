package contact

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/zboobraids/booking-api/internal/notify"
	"github.com/zboobraids/booking-api/internal/observability/metrics"
	"github.com/zboobraids/booking-api/pkg/logging"
)

// Payload is a contact form submission.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// Handler relays contact form submissions to the salon inbox.
type Handler struct {
	sender    notify.EmailSender
	recipient string
	env       string
	logger    *logging.Logger
	metrics   *metrics.AvailabilityMetrics
}

// NewHandler creates a new contact handler.
func NewHandler(sender notify.EmailSender, recipient, env string, logger *logging.Logger, m *metrics.AvailabilityMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		sender:    sender,
		recipient: recipient,
		env:       env,
		logger:    logger,
		metrics:   m,
	}
}

// Submit handles POST /api/contact requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON payload."})
		return
	}

	if strings.TrimSpace(payload.Name) == "" ||
		strings.TrimSpace(payload.Email) == "" ||
		strings.TrimSpace(payload.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Name, email, and message are required."})
		return
	}

	if err := h.sender.Send(r.Context(), buildMessage(payload, h.recipient)); err != nil {
		h.metrics.IncContact("failed")
		h.logger.Error("failed to send contact email", "error", err)

		// Outside development the upstream error stays out of the response.
		msg := "Failed to send message. Please try again later."
		if h.env == "development" {
			msg = fmt.Sprintf("Failed to send message: %s", err.Error())
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
		return
	}

	h.metrics.IncContact("sent")
	h.logger.Info("contact message relayed", "from", payload.Email)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func buildMessage(payload Payload, recipient string) notify.EmailMessage {
	var text strings.Builder
	fmt.Fprintf(&text, "Name: %s\nEmail: %s", payload.Name, payload.Email)
	if payload.Phone != "" {
		fmt.Fprintf(&text, "\nPhone: %s", payload.Phone)
	}
	fmt.Fprintf(&text, "\n\n%s", payload.Message)

	name := html.EscapeString(payload.Name)
	email := html.EscapeString(payload.Email)
	message := html.EscapeString(payload.Message)

	var phoneLine string
	if payload.Phone != "" {
		phoneLine = fmt.Sprintf("<p><strong>Phone:</strong> %s</p>", html.EscapeString(payload.Phone))
	}

	htmlBody := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #4a5568;">New Contact Form Submission</h2>
    <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <p><strong>From:</strong> %s &lt;%s&gt;</p>
        %s
        <p><strong>Date:</strong> %s</p>
    </div>
    <div style="background-color: #ffffff; border: 1px solid #e2e8f0; padding: 20px; border-radius: 8px;">
        <h3 style="color: #4a5568; margin-top: 0;">Message:</h3>
        <p style="white-space: pre-line; line-height: 1.6;">%s</p>
    </div>
    <p style="color: #718096; font-size: 14px; margin-top: 20px;">
        This email was sent from the contact form on ZBoo Braids.
    </p>
</div>`, name, email, phoneLine, time.Now().Format("Jan 2, 2006 3:04 PM"), message)

	return notify.EmailMessage{
		To:      recipient,
		ReplyTo: payload.Email,
		Subject: fmt.Sprintf("New message from %s", payload.Name),
		Body:    text.String(),
		HTML:    htmlBody,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
