package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tripdesk/internal/adapters/observability"
	"tripdesk/internal/app"
	"tripdesk/internal/domain"
	"tripdesk/internal/search"
)

const sessionCookie = "td_session"

type Handlers struct {
	Reg      *app.Registry
	Checkout *app.CheckoutService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Home   string `json:"home,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/api/{vertical}/search", h.searchVertical)
	s.mux.Get("/api/{vertical}/{id}", h.detail)

	s.mux.Post("/api/create-payment-intent", h.createPaymentIntent)
	s.mux.Post("/api/checkout/confirm", h.confirmCheckout)
	s.mux.Get("/api/booking/confirmation", h.confirmation)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- search & detail ----

func (h *Handlers) searchVertical(w http.ResponseWriter, r *http.Request) {
	v, ok := domain.ParseVertical(chi.URLParam(r, "vertical"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown travel category")
		return
	}

	q := r.URL.Query()
	criteria := search.ResolveCriteria(v, q, time.Now())
	filter := search.ResolveFilter(q)

	view, err := h.Reg.Search(r.Context(), v, criteria, filter)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Search Failed", "internal error")
		return
	}

	switch {
	case view.Status == domain.FetchFailed:
		observability.ObserveSearch(string(v), "failed")
	case view.Total == 0:
		observability.ObserveSearch(string(v), "empty")
	default:
		observability.ObserveSearch(string(v), "succeeded")
	}

	// failures and empty lists both render a recoverable state; the status
	// and message live in the body
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) detail(w http.ResponseWriter, r *http.Request) {
	v, ok := domain.ParseVertical(chi.URLParam(r, "vertical"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown travel category")
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id is required")
		return
	}

	item, err := h.Reg.Detail(r.Context(), v, id)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", string(v)+" not found")
		return
	}

	resp := map[string]any{"data": item}
	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write detail body")
	}
}

// ---- checkout ----

type createIntentRequest struct {
	Amount      float64        `json:"amount"`
	BookingType string         `json:"bookingType"`
	Details     map[string]any `json:"details,omitempty"`
}

func (h *Handlers) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	v, ok := domain.ParseVertical(req.BookingType)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "unknown booking type")
		return
	}

	// a new checkout supersedes any previous confirmation for this session
	if err := h.Checkout.Reset(r.Context(), sessionID(w, r)); err != nil {
		log.Warn().Err(err).Msg("clear stale booking record failed")
	}

	sess, err := h.Checkout.Initialize(r.Context(), domain.BookingDraft{
		Type:    v,
		Amount:  req.Amount,
		Details: req.Details,
	})
	if err != nil {
		status := http.StatusBadGateway
		if sess.Message == "invalid booking amount" {
			status = http.StatusBadRequest
		}
		writeProblem(w, status, "Payment Initialization Failed", sess.Message)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"clientSecret": sess.ClientSecret,
		"state":        sess.State,
	})
}

type confirmRequest struct {
	ClientSecret string         `json:"clientSecret"`
	BookingType  string         `json:"bookingType"`
	Amount       float64        `json:"amount"`
	Details      map[string]any `json:"details,omitempty"`
}

func (h *Handlers) confirmCheckout(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body")
		return
	}
	v, ok := domain.ParseVertical(req.BookingType)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "unknown booking type")
		return
	}

	sid := sessionID(w, r)
	booking, err := h.Checkout.Submit(r.Context(), sid, req.ClientSecret, domain.BookingDraft{
		Type:    v,
		Amount:  req.Amount,
		Details: req.Details,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPaymentDeclined) {
			// provider message verbatim; the user may resubmit
			detail := strings.TrimPrefix(err.Error(), domain.ErrPaymentDeclined.Error()+": ")
			writeProblem(w, http.StatusPaymentRequired, "Payment Failed", detail)
			return
		}
		writeProblem(w, http.StatusBadGateway, "Payment Failed", "unable to confirm payment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"state":   domain.CheckoutSucceeded,
		"booking": booking,
	})
}

func (h *Handlers) confirmation(w http.ResponseWriter, r *http.Request) {
	sid := readSessionID(r)
	booking, err := h.Checkout.Confirmation(r.Context(), sid)
	if err != nil {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(problem{
			Type:   "about:blank",
			Title:  "Booking information not found",
			Status: http.StatusNotFound,
			Home:   "/",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"booking": booking})
}

// sessionID returns the request's session id, minting a cookie when absent.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if sid := readSessionID(r); sid != "" {
		return sid
	}
	sid := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

func readSessionID(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	// fallback for clients that can't carry cookies
	return strings.TrimSpace(r.URL.Query().Get("session"))
}
