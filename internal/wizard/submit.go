package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/pkarczmarek/catering-wizard/internal/order"
)

// Inquiry is the serialized snapshot handed to the submission backend: the
// full order plus the total computed for it.
type Inquiry struct {
	SessionID  uuid.UUID       `json:"session_id"`
	Order      *order.Order    `json:"order"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Receipt confirms an accepted inquiry.
type Receipt struct {
	ID          uuid.UUID `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Submitter accepts an order inquiry. The real backend is out of scope; the
// contract is that it eventually returns either a receipt or an error the
// caller can show a retry affordance for.
type Submitter interface {
	Submit(ctx context.Context, inquiry *Inquiry) (*Receipt, error)
}

// DelaySubmitter simulates the submission backend: it waits for a fixed
// delay and accepts every inquiry. A genuine network submitter replacing it
// must add retry and timeout policies.
type DelaySubmitter struct {
	Delay time.Duration
}

func (d *DelaySubmitter) Submit(ctx context.Context, inquiry *Inquiry) (*Receipt, error) {
	select {
	case <-time.After(d.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("wizard: failed to generate receipt id: %w", err)
	}

	log.Info().
		Stringer("session_id", inquiry.SessionID).
		Str("total_price", inquiry.TotalPrice.String()).
		Msg("wizard: simulated backend accepted inquiry")

	return &Receipt{ID: id, SubmittedAt: time.Now().UTC()}, nil
}
