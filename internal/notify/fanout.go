package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Listener receives a synchronous signal that the notification list changed.
// Listeners re-read the list themselves; no payload is delivered.
type Listener interface {
	NotificationsChanged()
}

// Fanout broadcasts list changes to registered listeners in registration
// order. A panicking listener must not block delivery to the rest.
type Fanout struct {
	mu        sync.Mutex
	listeners []Listener
	logger    *zap.Logger
}

func NewFanout(logger *zap.Logger) *Fanout {
	return &Fanout{logger: logger}
}

// Subscribe registers a listener. Registering the same listener twice
// results in two deliveries; callers pair Subscribe/Unsubscribe with
// their own lifecycle.
func (f *Fanout) Subscribe(l Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, l)
}

// Unsubscribe removes every registration of l (identity equality).
func (f *Fanout) Unsubscribe(l Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.listeners[:0]
	for _, registered := range f.listeners {
		if registered != l {
			kept = append(kept, registered)
		}
	}
	// clear the tail so removed listeners are collectable
	for i := len(kept); i < len(f.listeners); i++ {
		f.listeners[i] = nil
	}
	f.listeners = kept
}

// NotifyAll invokes every listener synchronously, in registration order.
// The listener slice is snapshotted first so a listener that mutates the
// store (and re-enters NotifyAll) does not deadlock.
func (f *Fanout) NotifyAll() {
	f.mu.Lock()
	snapshot := make([]Listener, len(f.listeners))
	copy(snapshot, f.listeners)
	f.mu.Unlock()

	for _, l := range snapshot {
		f.dispatch(l)
	}
}

func (f *Fanout) dispatch(l Listener) {
	defer func() {
		if r := recover(); r != nil {
			if f.logger != nil {
				f.logger.Warn("Notification listener panicked", zap.Any("panic", r))
			}
		}
	}()
	l.NotificationsChanged()
}
