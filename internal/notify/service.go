package notify

import (
	"context"
	"fmt"

	"github.com/signflow/leadgen-platform/internal/leads"
	"github.com/signflow/leadgen-platform/pkg/logging"
)

// Service emails site operators when a new lead is accepted. Notification
// failures never fail the submission; the caller logs and moves on.
type Service struct {
	email      EmailSender
	recipients []string
	siteName   string
	logger     *logging.Logger
}

// NewService creates a lead notification service.
func NewService(email EmailSender, recipients []string, siteName string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if siteName == "" {
		siteName = "SignFlow"
	}
	return &Service{
		email:      email,
		recipients: recipients,
		siteName:   siteName,
		logger:     logger,
	}
}

// NotifyNewLead sends an email to every configured recipient.
func (s *Service) NotifyNewLead(ctx context.Context, lead *leads.SubmitLeadRequest) error {
	if s.email == nil || len(s.recipients) == 0 {
		return nil
	}

	name := lead.DisplayName()
	if name == "" {
		name = "A visitor"
	}

	subject := fmt.Sprintf("New Lead - %s", name)
	body := fmt.Sprintf(`A new lead came in through the website.

Name: %s
Email: %s
Phone: %s
Source: %s
Comment: %s

-- %s`, name, lead.Email, lead.Phone, sourceLabel(lead.Source), lead.Comment, s.siteName)

	var errs []error
	for _, recipient := range s.recipients {
		msg := EmailMessage{
			To:      recipient,
			Subject: subject,
			Body:    body,
		}
		if err := s.email.Send(ctx, msg); err != nil {
			s.logger.Error("notify: failed to send lead email", "error", err, "to", recipient)
			errs = append(errs, err)
		} else {
			s.logger.Info("notify: lead email sent", "to", recipient, "source", lead.Source)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notify: %d notification(s) failed", len(errs))
	}
	return nil
}

func sourceLabel(source string) string {
	if source == "" {
		return "website"
	}
	return source
}

var _ leads.LeadNotifier = (*Service)(nil)
