package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vgu-mess/mess-portal/internal/config"
	"github.com/vgu-mess/mess-portal/internal/events"
)

func TestWorkerLogsEveryAnnouncement(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher(nil)

	n := StartNotificationWorker(dispatcher, zap.New(core), config.NotificationConfig{WebhookURL: "http://hooks.local/mess"})
	require.NotNil(t, n)

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:         events.EventUserLoggedIn,
		UserEmail:    "a@vgu.ac.in",
		Announcement: "Login successful. Welcome to the mess portal",
	}))

	announced := logs.FilterMessage(string(events.EventUserLoggedIn)).All()
	require.Len(t, announced, 1)
	assert.Equal(t, "Login successful. Welcome to the mess portal", announced[0].ContextMap()["announcement"])
	assert.Equal(t, 1, logs.FilterMessage("sendWebhookNotificationStub").Len())
}

func TestWorkerWithoutWebhookOnlyLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	dispatcher := events.NewInMemoryDispatcher(nil)
	StartNotificationWorker(dispatcher, zap.New(core), config.NotificationConfig{})

	for _, eventType := range events.AllEventTypes {
		require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: eventType}))
	}

	assert.Equal(t, 0, logs.FilterMessage("sendWebhookNotificationStub").Len())
	for _, eventType := range events.AllEventTypes {
		assert.Equal(t, 1, logs.FilterMessage(string(eventType)).Len(), eventType)
	}
}

func TestWorkerNilDispatcher(t *testing.T) {
	assert.Nil(t, StartNotificationWorker(nil, zap.NewNop(), config.NotificationConfig{}))
}
