package service

import (
	"context"
	"fmt"
	"time"

	"declarations-backend/internal/domain"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

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

func (s *sendGridEmailService) SendStatusNotification(ctx context.Context, email, name, declarationType string, status domain.RequestStatus) error {
	var subject, outcome string
	switch status {
	case domain.RequestStatusCompleted:
		subject = "Your declaration is ready"
		outcome = "has been completed and is available for download"
	case domain.RequestStatusRejected:
		subject = "Your declaration request was rejected"
		outcome = "has been rejected; please contact the administration for details"
	default:
		subject = "Your declaration request was updated"
		outcome = fmt.Sprintf("is now %s", status)
	}

	body := fmt.Sprintf("Hello %s,\n\nYour request for the declaration %q %s.\n\nBest regards,\nAdministration", name, declarationType, outcome)
	return s.send(email, name, subject, body)
}

func (s *sendGridEmailService) SendOpsReport(ctx context.Context, email, name string, month time.Month, year int, overview *domain.RequestOverview) error {
	subject := fmt.Sprintf("Declaration requests report - %s %d", month, year)
	body := fmt.Sprintf(
		"Hello %s,\n\nDeclaration request activity for %s %d:\n\n"+
			"Total requests: %d\nPending requests: %d\nApproval rate: %.1f%%\nAverage completion time: %.0f seconds\n\n"+
			"Best regards,\nAdministration",
		name, month, year,
		overview.TotalRequests, overview.PendingRequests, overview.ApprovalRate, overview.AverageCompletionTime,
	)
	return s.send(email, name, subject, body)
}
