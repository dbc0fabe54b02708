package service

import (
	"context"

	"github.com/xxxsen/taskradar/internal/model"
	"github.com/xxxsen/taskradar/internal/repo"
)

type NotificationService struct {
	notifications *repo.NotificationRepo
}

func NewNotificationService(notifications *repo.NotificationRepo) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]*model.Notification, error) {
	return s.notifications.ListForUser(ctx, userID)
}

func (s *NotificationService) Dismiss(ctx context.Context, userID, notificationID string) error {
	return s.notifications.Delete(ctx, userID, notificationID)
}
