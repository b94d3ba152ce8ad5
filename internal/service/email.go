package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"ukm-registry-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *emailService) SendRegistrationApproved(ctx context.Context, email, name, orgName string) error {
	subject := fmt.Sprintf("Pendaftaran UKM %s Diterima", orgName)
	body := fmt.Sprintf("Halo %s,\n\nSelamat! Pendaftaran Anda di UKM %s telah diterima.\n\nSalam,\nTim UKM", name, orgName)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendRegistrationRejected(ctx context.Context, email, name, orgName, reason string) error {
	subject := fmt.Sprintf("Pendaftaran UKM %s Ditolak", orgName)
	body := fmt.Sprintf("Halo %s,\n\nMaaf, pendaftaran Anda di UKM %s ditolak.\n\nAlasan: %s\n\nSalam,\nTim UKM", name, orgName, reason)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendPendingReminder(ctx context.Context, adminEmail, orgName string, count int32, oldest time.Time) error {
	subject := fmt.Sprintf("Pendaftaran Menunggu Validasi - %s", orgName)
	body := fmt.Sprintf(
		"Terdapat %d pendaftaran UKM %s yang menunggu validasi. Pendaftaran tertua diajukan pada %s.\n\nMohon segera diproses.",
		count, orgName, oldest.Format("2006-01-02"),
	)
	return s.send(adminEmail, orgName, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil, "to", to)
	return nil
}
