package output

import (
	"context"

	"portfolio/internal/domain/entity"
)

// Mailer delivers a validated contact submission: one notification to the
// site owner and one confirmation to the sender.
type Mailer interface {
	Send(ctx context.Context, form entity.ContactForm) error
}
