package service

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"ukm-registry-backend/internal/domain"
	"ukm-registry-backend/internal/logger"
)

type pushService struct {
	client *messaging.Client
}

// NewPushService builds a Firebase Cloud Messaging sender from a service
// account credentials file.
func NewPushService(ctx context.Context, credentialsFile string) (PushService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase messaging: %w", err)
	}
	return &pushService{client: client}, nil
}

func (s *pushService) SendNotification(ctx context.Context, deviceToken string, n *domain.Notification) error {
	if deviceToken == "" {
		return nil
	}

	logger.ExternalServiceCall("fcm", "send", "kind", n.Kind)
	msg := &messaging.Message{
		Token: deviceToken,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Message,
		},
		Data: n.Payload,
	}
	_, err := s.client.Send(ctx, msg)
	logger.ExternalServiceResult("fcm", "send", err, "kind", n.Kind)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	return nil
}
