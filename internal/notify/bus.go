package notify

import (
	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// TopicToast is the event bus topic toasts are published on
const TopicToast = "backoffice:toast"

// Notifier publishes toasts to every subscriber of TopicToast
type Notifier struct {
	bus   EventBus.Bus
	store *Store
}

// NewNotifier creates a bus with the store and the log sink subscribed
func NewNotifier(store *Store) *Notifier {
	n := &Notifier{bus: EventBus.New(), store: store}
	if err := n.bus.Subscribe(TopicToast, store.Add); err != nil {
		zap.L().Error("subscribe toast store", zap.Error(err))
	}
	if err := n.bus.Subscribe(TopicToast, logToast); err != nil {
		zap.L().Error("subscribe toast logger", zap.Error(err))
	}
	return n
}

// Publish dispatches t synchronously to every subscriber
func (n *Notifier) Publish(t Toast) {
	n.bus.Publish(TopicToast, t)
}

func (n *Notifier) Store() *Store {
	return n.store
}

func logToast(t Toast) {
	fields := []zap.Field{
		zap.String("namespace", "notify"),
		zap.String("id", t.ID),
		zap.String("entity", t.Entity),
		zap.String("title", t.Title),
	}
	switch t.Level {
	case LevelError:
		zap.L().Warn(t.Message, fields...)
	default:
		zap.L().Info(t.Title, fields...)
	}
}
