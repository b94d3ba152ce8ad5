package service

import (
	"context"

	"ukm-registry-backend/internal/repository"
)

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) UserFeed(ctx context.Context, userID, page, pageSize int32) (*NotificationFeed, error) {
	limit, offset := pageWindow(page, pageSize)
	notes, total, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.UnreadCountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &NotificationFeed{Notifications: notes, Total: total, UnreadCount: unread}, nil
}

func (s *notificationService) OrgFeed(ctx context.Context, orgID, page, pageSize int32) (*NotificationFeed, error) {
	limit, offset := pageWindow(page, pageSize)
	notes, total, err := s.repo.ListByOrg(ctx, orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.UnreadCountByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return &NotificationFeed{Notifications: notes, Total: total, UnreadCount: unread}, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id int32) error {
	return s.repo.MarkAsRead(ctx, id)
}

func pageWindow(page, pageSize int32) (limit, offset int32) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}
