// Package alerts is the time ordered, self expiring notice queue every
// async operation reports through.
package alerts

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 5 * time.Second

// Variants and icons for the convenience wrappers
const (
	VariantSuccess = "success"
	VariantDanger  = "danger"

	iconSuccess = "check-circle"
	iconError   = "exclamation-circle"
)

// Update is a notification request. Timeout of zero means the default
// display time.
type Update struct {
	Icon    string
	Message string
	Variant string
	Timeout time.Duration
}

// Alert is a queued notice. Timeout is the absolute expiry instant and
// ID gives close-by-identity semantics.
type Alert struct {
	ID        uuid.UUID
	Icon      string
	Message   string
	Variant   string
	Timestamp time.Time
	Timeout   time.Time
}

// Queue keeps alerts in notification order. Entries expire oldest
// first: Sweep arms one timer for the head entry only.
type Queue struct {
	mu     sync.Mutex
	alerts []Alert
	timer  *time.Timer

	now func() time.Time
}

func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Notify appends an alert with a computed absolute timeout.
func (q *Queue) Notify(update Update) {
	timeout := update.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	now := q.now()

	q.mu.Lock()
	defer q.mu.Unlock()
	q.alerts = append(q.alerts, Alert{
		ID:        uuid.New(),
		Icon:      update.Icon,
		Message:   update.Message,
		Variant:   update.Variant,
		Timestamp: now,
		Timeout:   now.Add(timeout),
	})
}

func (q *Queue) Success(message string) {
	q.Notify(Update{Icon: iconSuccess, Variant: VariantSuccess, Message: message})
}

func (q *Queue) Error(message string) {
	q.Notify(Update{Icon: iconError, Variant: VariantDanger, Message: message})
}

// Close removes an alert by identity. Unknown alerts are ignored.
func (q *Queue) Close(alert Alert) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, a := range q.alerts {
		if a.ID == alert.ID {
			q.alerts = append(q.alerts[:i], q.alerts[i+1:]...)
			break
		}
	}
}

// Alerts returns a snapshot of the queue in notification order.
func (q *Queue) Alerts() []Alert {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Alert, len(q.alerts))
	copy(out, q.alerts)
	return out
}

// Sweep arms a single deferred removal for the head (oldest) entry,
// replacing any previously armed timer, and re-arms itself once the
// head expires. At most one timer is outstanding at any moment.
func (q *Queue) Sweep() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}

	if len(q.alerts) == 0 {
		return
	}

	head := q.alerts[0]
	q.timer = time.AfterFunc(time.Until(head.Timeout), func() {
		q.Close(head)
		q.Sweep()
	})
}

// Stop cancels any armed sweep timer.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}
