package notify

import (
	"context"

	"weather-dashboard/pkg/observe"
)

type LogNotifier struct {
	l *observe.Logger
}

func NewLogNotifier(l *observe.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(_ context.Context, notification Notification) error {
	fields := map[string]any{
		"id":          notification.ID,
		"kind":        notification.Kind,
		"title":       notification.Title,
		"description": notification.Description,
		"city":        notification.City,
	}

	if notification.Kind == KindError {
		n.l.Warning("search notification", fields)
		return nil
	}

	n.l.Info("search notification", fields)
	return nil
}
