// Package notify implements the deadline sweep: a periodic check that raises
// approaching and overdue alerts for incomplete tasks, deduplicated so one
// logical event alerts once.
package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"flowtask/internal/domain"
)

// Severity classifies an alert for the display surface.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Alerter displays a transient alert to the user.
type Alerter interface {
	Notify(message string, severity Severity)
}

// Pusher raises a platform-level alert. Tag is the dedup key, so the platform
// can collapse repeats on its side too.
type Pusher interface {
	PushAlert(title, body, tag string)
}

// TaskLister supplies the collection snapshot each sweep reads.
type TaskLister interface {
	List(ctx context.Context) ([]*domain.Task, error)
}

// overdueWindow bounds how long after a deadline the overdue alert still
// fires. A task that went overdue while the process was down does not alert
// hours later.
const overdueWindow = time.Hour

// Notifier runs the deadline sweep. The seen set is scoped to the Notifier's
// lifetime; entries are evicted once their task is gone or no longer pending.
type Notifier struct {
	tasks    TaskLister
	alerter  Alerter
	pusher   Pusher
	logger   *zap.Logger
	advance  time.Duration
	seen     map[string]bool
	badge    int
	lastSeen map[int64]bool
}

// New creates a Notifier. pusher may be nil when no platform surface is
// available. advanceNotice is how far ahead of a deadline the approaching
// alert starts firing.
func New(tasks TaskLister, alerter Alerter, pusher Pusher, advanceNotice time.Duration, logger *zap.Logger) *Notifier {
	return &Notifier{
		tasks:    tasks,
		alerter:  alerter,
		pusher:   pusher,
		logger:   logger,
		advance:  advanceNotice,
		seen:     make(map[string]bool),
		lastSeen: make(map[int64]bool),
	}
}

// Badge reports the count of incomplete overdue tasks as of the last sweep.
func (n *Notifier) Badge() int {
	return n.badge
}

// Sweep checks every incomplete task with a deadline against now, raising at
// most one approaching alert per (task, minute-remaining) bucket and one
// overdue alert per task. It returns the number of alerts raised.
func (n *Notifier) Sweep(ctx context.Context, now time.Time) (int, error) {
	tasks, err := n.tasks.List(ctx)
	if err != nil {
		return 0, err
	}

	alerts := 0
	badge := 0
	pending := make(map[int64]bool)
	for _, task := range tasks {
		if task.Completed || task.Deadline == nil {
			continue
		}
		remaining := task.Deadline.Sub(now)

		if remaining <= 0 {
			badge++
			if -remaining <= overdueWindow {
				pending[task.ID] = true
				if n.alert(overdueKey(task.ID),
					fmt.Sprintf("Task overdue: %s", task.Title),
					"Task overdue", task.Title, SeverityError) {
					alerts++
				}
			}
			continue
		}

		if remaining <= n.advance {
			pending[task.ID] = true
			minutes := int(remaining.Minutes())
			if n.alert(approachingKey(task.ID, minutes),
				fmt.Sprintf("Deadline approaching: %s (%d min)", task.Title, minutes),
				"Deadline approaching", task.Title, SeverityWarning) {
				alerts++
			}
		}
	}

	n.badge = badge
	n.evict(pending)
	n.lastSeen = pending

	n.logger.Debug("deadline sweep complete",
		zap.Int("alerts", alerts),
		zap.Int("badge", badge),
		zap.Int("dedup_entries", len(n.seen)))
	return alerts, nil
}

// Run sweeps immediately, then once per interval until the context is
// cancelled.
func (n *Notifier) Run(ctx context.Context, interval time.Duration) error {
	if _, err := n.Sweep(ctx, time.Now()); err != nil {
		n.logger.Warn("deadline sweep failed", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if _, err := n.Sweep(ctx, now); err != nil {
				n.logger.Warn("deadline sweep failed", zap.Error(err))
			}
		}
	}
}

// alert raises the alert unless its key has already fired. Reports whether an
// alert went out.
func (n *Notifier) alert(key, message, title, body string, severity Severity) bool {
	if n.seen[key] {
		return false
	}
	n.seen[key] = true

	n.alerter.Notify(message, severity)
	if n.pusher != nil {
		n.pusher.PushAlert(title, body, key)
	}
	return true
}

// evict drops dedup entries for tasks that stopped being pending since the
// previous sweep (completed, deleted, or deadline long past), keeping the set
// bounded by the live collection.
func (n *Notifier) evict(pending map[int64]bool) {
	for id := range n.lastSeen {
		if pending[id] {
			continue
		}
		prefix := fmt.Sprintf("%d_", id)
		for key := range n.seen {
			if key == overdueKey(id) || len(key) > len(prefix) && key[:len(prefix)] == prefix {
				delete(n.seen, key)
			}
		}
	}
}

func approachingKey(id int64, minutes int) string {
	return fmt.Sprintf("%d_%d", id, minutes)
}

func overdueKey(id int64) string {
	return fmt.Sprintf("overdue_%d", id)
}
