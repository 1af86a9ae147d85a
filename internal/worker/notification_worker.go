package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/fitness-tracker/internal/service"
)

// StartNotificationWorker hooks the notification service into the event
// stream. Handlers run synchronously with the publishing request; a queued
// backend would slot in here without touching the services.
func StartNotificationWorker(logger *zap.Logger, notifications *service.NotificationService) {
	if notifications == nil {
		return
	}
	notifications.RegisterHandlers()
	logger.Info("notification worker listening",
		zap.Strings("events", []string{"user_registered", "workout_logged"}))
}
