package service

import (
	"context"
	"fmt"

	"vidly-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
}

// NewEmailService builds the operator-alert mailer. With an empty API key it
// logs alerts instead of sending them, so local setups need no SendGrid
// account.
func NewEmailService(apiKey, fromEmail, fromName, adminEmail string) EmailService {
	return &emailService{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

func (s *emailService) SendStockDriftAlert(ctx context.Context, movieTitle string, movieID, rentalID int32) error {
	subject := fmt.Sprintf("Stock drift recorded for movie %q", movieTitle)
	body := fmt.Sprintf(
		"A processed return could not put a copy back in stock.\n\nMovie: %s (id %d)\nRental: %d\n\nA pending stock adjustment was recorded and will be applied by the reconciliation job.",
		movieTitle, movieID, rentalID)
	return s.send(subject, body)
}

func (s *emailService) SendReconciliationSummary(ctx context.Context, applied, failed int) error {
	subject := "Stock reconciliation sweep summary"
	body := fmt.Sprintf("Applied adjustments: %d\nFailed adjustments: %d\n", applied, failed)
	return s.send(subject, body)
}

func (s *emailService) send(subject, body string) error {
	if s.apiKey == "" {
		logger.Info("email alerts disabled, logging instead", "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("Operator", s.adminEmail)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
