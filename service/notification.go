package service

import (
	"go.uber.org/zap"

	"github.com/JAYASASIREKHA/fooddelivery/models"
	"github.com/JAYASASIREKHA/fooddelivery/store"
)

// Notifier is the append-only notification sink. Emitted records are never
// mutated; the only delivery guarantee is the in-memory append plus a log echo.
type Notifier struct {
	store *store.Store
	log   *zap.Logger
}

func NewNotifier(st *store.Store, log *zap.Logger) *Notifier {
	return &Notifier{store: st, log: log}
}

// Emit appends a notification and echoes it to the operational log.
func (n *Notifier) Emit(userID, typ, title, message, orderID, status string) models.Notification {
	notif := n.store.AddNotification(models.Notification{
		UserID:  userID,
		Type:    typ,
		Title:   title,
		Message: message,
		OrderID: orderID,
		Status:  status,
	})
	n.log.Info("notification",
		zap.String("type", typ),
		zap.String("title", title),
		zap.String("message", message),
	)
	return notif
}

func (n *Notifier) All() []models.Notification {
	return n.store.Notifications()
}

func (n *Notifier) ByUser(userID string) []models.Notification {
	return n.store.NotificationsByUser(userID)
}
