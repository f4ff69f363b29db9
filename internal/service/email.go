package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentline-backend/internal/logger"
	"rentline-backend/internal/utils"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	enabled   bool
}

// NewEmailService builds the SendGrid-backed email service. With an empty
// API key the service logs instead of sending, which keeps local
// development working without credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   apiKey != "",
	}
}

func (s *sendgridEmailService) SendExtensionConfirmation(ctx context.Context, email, name string, rentalID int32, newEndDate time.Time, amountCents int32) error {
	subject := fmt.Sprintf("Rental #%d extended", rentalID)
	endDate := utils.FormatDate(newEndDate)
	plainText := fmt.Sprintf("Hi %s,\n\nYour rental #%d has been extended. The new return date is %s. The extension charge is $%.2f.\n\nThank you.",
		name, rentalID, endDate, float64(amountCents)/100)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Extended</h2>
				<p>Hi %s,</p>
				<p>Your rental <strong>#%d</strong> has been extended. The new return date is <strong>%s</strong>.</p>
				<p>Extension charge: <strong>$%.2f</strong></p>
			</body>
		</html>
	`, name, rentalID, endDate, float64(amountCents)/100)

	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendgridEmailService) SendReturnReminder(ctx context.Context, email, name string, rentalID int32, endDate time.Time) error {
	subject := fmt.Sprintf("Rental #%d is due back tomorrow", rentalID)
	due := utils.FormatDate(endDate)
	plainText := fmt.Sprintf("Hi %s,\n\nThis is a reminder that your rental #%d is due back on %s.\n\nThank you.",
		name, rentalID, due)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Return Reminder</h2>
				<p>Hi %s,</p>
				<p>Your rental <strong>#%d</strong> is due back on <strong>%s</strong>.</p>
			</body>
		</html>
	`, name, rentalID, due)

	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendgridEmailService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	if !s.enabled {
		logger.InfoContext(ctx, "Email sending disabled, skipping", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

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
