package service

import (
	"context"

	"atelier/internal/domain/entity"
)

// Mailer defines the interface for outbound transactional mail.
type Mailer interface {
	// SendPasswordReset mails a reset link containing the raw recovery token
	// to the given address.
	SendPasswordReset(ctx context.Context, to string, resetURL string) error

	// SendInquiryNotification forwards a newly submitted inquiry to the
	// configured notification inbox.
	SendInquiryNotification(ctx context.Context, inquiry *entity.Inquiry) error
}
