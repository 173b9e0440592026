package contact

import (
	"context"
	"time"

	"github.com/Zachkp/portfolio/internal/textutil"
	"go.uber.org/zap"
)

const previewWords = 20

// Service accepts contact submissions.
type Service struct {
	validator *Validator
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		validator: NewValidator(),
		logger:    logger.Named("contact"),
		now:       time.Now,
	}
}

// Submit validates s and logs it. visitor is an opaque, already hashed
// client identifier.
func (svc *Service) Submit(ctx context.Context, s Submission, visitor string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := svc.validator.Validate(s); err != nil {
		return err
	}

	svc.logger.Info("New contact message",
		zap.String("from", s.Email),
		zap.String("name", s.Name),
		zap.String("subject", s.Subject),
		zap.String("preview", textutil.Truncate(s.Message, previewWords)),
		zap.Int("message_length", len(s.Message)),
		zap.String("visitor", visitor),
		zap.Time("timestamp", svc.now().UTC()),
	)
	return nil
}
