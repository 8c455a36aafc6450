// Package wizard drives one ordering session: the fixed step sequence, a
// clamped step cursor, the order aggregate behind it and the submit
// lifecycle. Handlers talk to a Session; the order and pricing packages
// never know about HTTP.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/pkarczmarek/catering-wizard/internal/catalog"
	"github.com/pkarczmarek/catering-wizard/internal/order"
	"github.com/pkarczmarek/catering-wizard/internal/pricing"
)

var (
	ErrSubmitInFlight   = errors.New("a submission is already in flight")
	ErrAlreadySubmitted = errors.New("order has already been submitted")
	ErrNoPaymentMethod  = errors.New("payment method is required before submitting")
)

// Session owns one order aggregate and its wizard position. All access goes
// through its methods; the mutex makes each command atomic under concurrent
// HTTP requests.
type Session struct {
	ID uuid.UUID

	mu         sync.Mutex
	order      *order.Order
	step       int
	submitting bool
	submitted  bool
	receipt    *Receipt
	submitter  Submitter
}

// NewSession creates a session with a fresh order at step zero.
func NewSession(submitter Submitter) (*Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("wizard: failed to generate session id: %w", err)
	}
	return &Session{
		ID:        id,
		order:     order.New(),
		submitter: submitter,
	}, nil
}

// Subtotals carries the independently computed per-concern subtotals; their
// sum is always the total price.
type Subtotals struct {
	Simple       decimal.Decimal `json:"simple"`
	Expandable   decimal.Decimal `json:"expandable"`
	Configurable decimal.Decimal `json:"configurable"`
	Extras       decimal.Decimal `json:"extras"`
	Packaging    decimal.Decimal `json:"packaging"`
	Waiter       decimal.Decimal `json:"waiter"`
}

// View is a consistent snapshot of the session for rendering: the order, the
// wizard position and everything the pricing engine derives from them.
type View struct {
	SessionID  uuid.UUID       `json:"session_id"`
	Order      *order.Order    `json:"order"`
	StepIndex  int             `json:"step_index"`
	Steps      []Step          `json:"steps"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Subtotals  Subtotals       `json:"subtotals"`
	CanAdvance bool            `json:"can_advance"`
	Submitted  bool            `json:"submitted"`
	Receipt    *Receipt        `json:"receipt,omitempty"`
}

// View derives a snapshot of the current session state.
func (s *Session) View() *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.order.Clone()
	return &View{
		SessionID:  s.ID,
		Order:      o,
		StepIndex:  s.step,
		Steps:      Steps(),
		TotalPrice: pricing.TotalPrice(o),
		Subtotals: Subtotals{
			Simple:       pricing.SimpleSubtotal(o),
			Expandable:   pricing.ExpandableSubtotal(o),
			Configurable: pricing.ConfigurableSubtotal(o),
			Extras:       pricing.ExtrasSubtotal(o),
			Packaging:    pricing.PackagingSubtotal(o),
			Waiter:       pricing.WaiterSubtotal(o),
		},
		CanAdvance: CanAdvanceFromStep(o, s.step),
		Submitted:  s.submitted,
		Receipt:    s.receipt,
	}
}

// Order returns a snapshot of the aggregate.
func (s *Session) Order() *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Clone()
}

// StepIndex returns the current wizard position.
func (s *Session) StepIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Next moves one step forward, clamped to the last step. Completion
// predicates are not enforced here: gating the "next" affordance is the
// caller's job.
func (s *Session) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step < len(steps)-1 {
		s.step++
	}
	return s.step
}

// Prev moves one step back, clamped to the first step.
func (s *Session) Prev() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step > 0 {
		s.step--
	}
	return s.step
}

// GoTo jumps to a step, clamping out-of-range targets.
func (s *Session) GoTo(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 {
		i = 0
	}
	if i > len(steps)-1 {
		i = len(steps) - 1
	}
	s.step = i
	return s.step
}

// Reset restores the order defaults and the step cursor together. This is
// the only operation that touches both.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.Reset()
	s.step = 0
	s.submitted = false
	s.receipt = nil
}

func (s *Session) SetGuestCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetGuestCount(n)
}

func (s *Session) SetEventType(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetEventType(id)
}

func (s *Session) SetEventDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetEventDate(date)
}

func (s *Session) SetEventTime(hhmm string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetEventTime(hhmm)
}

func (s *Session) SetSimpleQuantity(productID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetSimpleQuantity(productID, qty)
}

func (s *Session) SetExpandableVariantQuantity(productID, variantID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetExpandableVariantQuantity(productID, variantID, qty)
}

// SetConfigurableSelection updates a configurable product. A non-zero person
// count below the product's floor collapses to zero: the only way down from
// the minimum is clearing the selection.
func (s *Session) SetConfigurableSelection(productID string, qty int, groupID string, optionIDs []string) {
	if p, ok := catalog.FindProduct(productID); ok {
		if cp, ok := p.(*catalog.ConfigurableProduct); ok && qty > 0 && qty < cp.MinPersons {
			qty = 0
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetConfigurableSelection(productID, qty, groupID, optionIDs)
}

// ToggleGroupOption toggles one option of a configurable product's group,
// evicting the oldest selection when the group is full. Unknown ids are
// ignored.
func (s *Session) ToggleGroupOption(productID, groupID, optionID string) {
	p, ok := catalog.FindProduct(productID)
	if !ok {
		return
	}
	cp, ok := p.(*catalog.ConfigurableProduct)
	if !ok {
		return
	}
	group, ok := cp.Group(groupID)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.order.ConfigurableData[productID]
	next := pricing.NextGroupSelection(sel.Options[groupID], optionID, group.MaxSelections)
	s.order.SetConfigurableSelection(productID, sel.Quantity, groupID, next)
}

func (s *Session) SetExtraQuantity(extraID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetExtraQuantity(extraID, qty)
}

// SetPackaging chooses a packaging option. For person-scaled tiers a missing
// person count defaults to the guest count; for flat tiers it is forced to
// zero.
func (s *Session) SetPackaging(packagingID string, personCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pack, ok := catalog.FindPackaging(packagingID); ok {
		if !pack.RequiresPersonCount {
			personCount = 0
		} else if personCount <= 0 {
			personCount = s.order.GuestCount
		}
	}
	s.order.SetPackaging(packagingID, personCount)
}

func (s *Session) SetWaiterService(serviceID string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetWaiterService(serviceID, count)
}

func (s *Session) SetContactField(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetContactField(field, value)
}

func (s *Session) SetNotes(notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetNotes(notes)
}

func (s *Session) SetPaymentMethod(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order.SetPaymentMethod(id)
}

// Submit sends a snapshot of the order and its computed total to the
// submission backend. A second call while one is in flight is rejected, not
// queued; a call after success is rejected as already submitted. Submitting
// without a payment method is an error.
func (s *Session) Submit(ctx context.Context) (*Receipt, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if s.submitted {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	if s.order.PaymentMethod == "" {
		s.mu.Unlock()
		return nil, ErrNoPaymentMethod
	}
	s.submitting = true
	snapshot := s.order.Clone()
	s.mu.Unlock()

	inquiry := &Inquiry{
		SessionID:  s.ID,
		Order:      snapshot,
		TotalPrice: pricing.TotalPrice(snapshot),
	}

	receipt, err := s.submitter.Submit(ctx, inquiry)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		log.Error().Err(err).Stringer("session_id", s.ID).Msg("wizard: submission failed")
		return nil, fmt.Errorf("wizard: failed to submit inquiry: %w", err)
	}
	s.submitted = true
	s.receipt = receipt
	log.Info().Stringer("session_id", s.ID).Stringer("receipt_id", receipt.ID).Msg("wizard: inquiry submitted")
	return receipt, nil
}
