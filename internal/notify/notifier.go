// Package notify hands booking reminders to a delivery channel.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Notifier interface {
	SendReminder(ctx context.Context, b models.Booking) error
}

// LogNotifier writes reminders to the log instead of delivering them.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) SendReminder(_ context.Context, b models.Booking) error {
	n.log.Info("booking reminder",
		zap.Uint("booking_id", b.ID),
		zap.String("client_email", b.ClientEmail),
		zap.String("service", b.Service.Name),
		zap.String("date", b.AppointmentDate.String()),
		zap.String("time", b.AppointmentTime),
	)
	return nil
}
