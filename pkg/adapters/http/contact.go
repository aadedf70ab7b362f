package http

import (
	"encoding/json"
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/kyriakid1s/portfolio/pkg/domain"
)

// MaxContactBodySize caps the POST /api/send-email payload.
const MaxContactBodySize = 64 << 10

// ContactResponse is the body of every POST /api/send-email reply.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendEmail handles the POST /api/send-email request.
func (s *Server) SendEmail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxContactBodySize)

	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		s.Logger.Warn("SendEmail: Invalid request body", "error", err)
		s.reply(w, http.StatusBadRequest, "invalid", "Invalid request body")
		return
	}
	msg = msg.Normalize()
	if err := msg.Validate(); err != nil {
		s.Logger.Debug("SendEmail: rejected", "error", err)
		s.reply(w, http.StatusBadRequest, "invalid", validationMessage(err))
		return
	}

	if s.Limiter != nil {
		ok, retryAfter, err := s.Limiter.Allow(r.Context(), clientIP(r))
		switch {
		case err != nil:
			s.Logger.Error("SendEmail: rate limiter unavailable, allowing", "error", err)
		case !ok:
			if retryAfter > 0 {
				secs := int(math.Ceil(retryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
			}
			s.reply(w, http.StatusTooManyRequests, "rate_limited", "Too many requests")
			return
		}
	}

	if s.Mailer == nil {
		s.Logger.Error("SendEmail: no mailer configured")
		s.reply(w, http.StatusInternalServerError, "failed", "Failed to send message")
		return
	}
	if err := s.Mailer.Send(r.Context(), msg); err != nil {
		s.reply(w, http.StatusInternalServerError, "failed", "Failed to send message")
		return
	}

	s.reply(w, http.StatusOK, "sent", "Message sent successfully")
}

func (s *Server) reply(w http.ResponseWriter, status int, outcome, message string) {
	if s.Metrics != nil {
		s.Metrics.ContactMessages.WithLabelValues(outcome).Inc()
	}
	writeJSON(w, status, ContactResponse{Success: status == http.StatusOK, Message: message})
}

// validationMessage drops the sentinel prefix so visitors see only the reason.
func validationMessage(err error) string {
	if !errors.Is(err, domain.ErrInvalidContact) {
		return err.Error()
	}
	return strings.TrimPrefix(err.Error(), domain.ErrInvalidContact.Error()+": ")
}

// clientIP relies on middleware.RealIP having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
