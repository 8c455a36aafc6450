package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/pkarczmarek/catering-wizard/internal/catalog"
	"github.com/pkarczmarek/catering-wizard/internal/order"
	"github.com/pkarczmarek/catering-wizard/internal/pricing"
	"github.com/pkarczmarek/catering-wizard/internal/wizard"
)

// SessionHandler exposes the wizard command and query surface over HTTP. It
// stays thin: decode, call the session, encode the refreshed view.
type SessionHandler struct {
	store *wizard.Store
}

func NewSessionHandler(store *wizard.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*wizard.Session, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return nil, false
	}
	s, ok := h.store.Get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("handler: failed to encode response")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// CreateSession starts a new ordering session.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Create()
	if err != nil {
		log.Error().Err(err).Msg("handler: failed to create session")
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, s.View())
}

// GetSession returns the full session view.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.View())
}

type eventRequest struct {
	GuestCount *int    `json:"guest_count"`
	EventType  *string `json:"event_type"`
	EventDate  *string `json:"event_date"`
	EventTime  *string `json:"event_time"`
}

// UpdateEvent applies the provided event-detail fields.
func (h *SessionHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req eventRequest
	if !decode(w, r, &req) {
		return
	}
	if req.GuestCount != nil {
		s.SetGuestCount(*req.GuestCount)
	}
	if req.EventType != nil {
		s.SetEventType(*req.EventType)
	}
	if req.EventDate != nil {
		s.SetEventDate(*req.EventDate)
	}
	if req.EventTime != nil {
		s.SetEventTime(*req.EventTime)
	}
	writeJSON(w, http.StatusOK, s.View())
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetSimpleQuantity sets the quantity of a simple product.
func (h *SessionHandler) SetSimpleQuantity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req quantityRequest
	if !decode(w, r, &req) {
		return
	}
	s.SetSimpleQuantity(chi.URLParam(r, "productID"), req.Quantity)
	writeJSON(w, http.StatusOK, s.View())
}

// SetExpandableVariantQuantity sets the quantity of one variant.
func (h *SessionHandler) SetExpandableVariantQuantity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req quantityRequest
	if !decode(w, r, &req) {
		return
	}
	s.SetExpandableVariantQuantity(chi.URLParam(r, "productID"), chi.URLParam(r, "variantID"), req.Quantity)
	writeJSON(w, http.StatusOK, s.View())
}

type configurableRequest struct {
	Quantity  int      `json:"quantity"`
	GroupID   string   `json:"group_id,omitempty"`
	OptionIDs []string `json:"option_ids,omitempty"`
}

// SetConfigurableSelection updates a configurable product's person count and
// optionally replaces one group's options wholesale.
func (h *SessionHandler) SetConfigurableSelection(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req configurableRequest
	if !decode(w, r, &req) {
		return
	}
	s.SetConfigurableSelection(chi.URLParam(r, "productID"), req.Quantity, req.GroupID, req.OptionIDs)
	writeJSON(w, http.StatusOK, s.View())
}

type toggleOptionRequest struct {
	OptionID string `json:"option_id"`
}

// ToggleGroupOption toggles one option inside a configurable product group.
func (h *SessionHandler) ToggleGroupOption(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req toggleOptionRequest
	if !decode(w, r, &req) {
		return
	}
	s.ToggleGroupOption(chi.URLParam(r, "productID"), chi.URLParam(r, "groupID"), req.OptionID)
	writeJSON(w, http.StatusOK, s.View())
}

// SetExtraQuantity sets the quantity of an add-on extra.
func (h *SessionHandler) SetExtraQuantity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req quantityRequest
	if !decode(w, r, &req) {
		return
	}
	s.SetExtraQuantity(chi.URLParam(r, "extraID"), req.Quantity)
	writeJSON(w, http.StatusOK, s.View())
}

type packagingRequest struct {
	PackagingID string `json:"packaging_id"`
	PersonCount int    `json:"person_count"`
}

// SetPackaging replaces the packaging choice.
func (h *SessionHandler) SetPackaging(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req packagingRequest
	if !decode(w, r, &req) {
		return
	}
	s.SetPackaging(req.PackagingID, req.PersonCount)
	writeJSON(w, http.StatusOK, s.View())
}

type waiterServiceRequest struct {
	ServiceID string `json:"service_id"`
	Count     int    `json:"count"`
}

// SetWaiterService replaces the waiter-service choice.
func (h *SessionHandler) SetWaiterService(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req waiterServiceRequest
	if !decode(w, r, &req) {
		return
	}
	s.SetWaiterService(req.ServiceID, req.Count)
	writeJSON(w, http.StatusOK, s.View())
}

type contactRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	City            *string `json:"city"`
	Street          *string `json:"street"`
	BuildingNumber  *string `json:"building_number"`
	ApartmentNumber *string `json:"apartment_number"`
	Notes           *string `json:"notes"`
}

// UpdateContact applies the provided contact and delivery fields.
func (h *SessionHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req contactRequest
	if !decode(w, r, &req) {
		return
	}
	fields := map[string]*string{
		order.FieldName:            req.Name,
		order.FieldEmail:           req.Email,
		order.FieldPhone:           req.Phone,
		order.FieldCity:            req.City,
		order.FieldStreet:          req.Street,
		order.FieldBuildingNumber:  req.BuildingNumber,
		order.FieldApartmentNumber: req.ApartmentNumber,
	}
	for field, value := range fields {
		if value != nil {
			s.SetContactField(field, *value)
		}
	}
	if req.Notes != nil {
		s.SetNotes(*req.Notes)
	}
	writeJSON(w, http.StatusOK, s.View())
}

type paymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// SetPaymentMethod records the chosen payment method.
func (h *SessionHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req paymentRequest
	if !decode(w, r, &req) {
		return
	}
	s.SetPaymentMethod(req.PaymentMethod)
	writeJSON(w, http.StatusOK, s.View())
}

// NextStep advances the wizard cursor.
func (h *SessionHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Next()
	writeJSON(w, http.StatusOK, s.View())
}

// PrevStep moves the wizard cursor back.
func (h *SessionHandler) PrevStep(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Prev()
	writeJSON(w, http.StatusOK, s.View())
}

type goToRequest struct {
	Step int `json:"step"`
}

// GoToStep jumps to a step.
func (h *SessionHandler) GoToStep(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req goToRequest
	if !decode(w, r, &req) {
		return
	}
	s.GoTo(req.Step)
	writeJSON(w, http.StatusOK, s.View())
}

// ResetSession restores the order defaults and the step cursor.
func (h *SessionHandler) ResetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Reset()
	writeJSON(w, http.StatusOK, s.View())
}

// SubmitOrder sends the inquiry to the submission backend.
func (h *SessionHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	receipt, err := s.Submit(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSubmitInFlight):
			http.Error(w, "a submission is already in flight", http.StatusConflict)
		case errors.Is(err, wizard.ErrAlreadySubmitted):
			http.Error(w, "order has already been submitted", http.StatusConflict)
		case errors.Is(err, wizard.ErrNoPaymentMethod):
			http.Error(w, "payment method is required", http.StatusUnprocessableEntity)
		default:
			log.Error().Err(err).Msg("handler: failed to submit order")
			http.Error(w, "failed to submit order", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

type summaryResponse struct {
	Products []pricing.CategoryLines `json:"products"`
	Extras   []pricing.Line          `json:"extras"`
	Total    string                  `json:"total"`
}

// GetSummary returns the priced line items of the order.
func (h *SessionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	o := s.Order()
	writeJSON(w, http.StatusOK, summaryResponse{
		Products: pricing.ProductLinesByCategory(o),
		Extras:   pricing.ExtrasLines(o),
		Total:    pricing.TotalPrice(o).String(),
	})
}

// GetSuggestions returns the advisory initial quantity per catalog product
// for the session's current guest count.
func (h *SessionHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	o := s.Order()
	suggestions := make(map[string]int, len(catalog.Products))
	for _, p := range catalog.Products {
		suggestions[p.ProductID()] = pricing.SuggestedQuantity(o, p)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"guest_count": o.GuestCount,
		"suggestions": suggestions,
	})
}
