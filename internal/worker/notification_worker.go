package worker

import (
	"go.uber.org/zap"

	"github.com/vgu-mess/mess-portal/internal/config"
	"github.com/vgu-mess/mess-portal/internal/events"
	"github.com/vgu-mess/mess-portal/internal/service"
)

// StartNotificationWorker subscribes the announcement sinks to dispatcher.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *service.NotificationService {
	if dispatcher == nil {
		return nil
	}
	notifications := service.NewNotificationService(dispatcher, logger.Named("notifications"), cfg)
	notifications.RegisterHandlers()
	logger.Debug("notification worker started", zap.Int("event_types", len(events.AllEventTypes)))
	return notifications
}
