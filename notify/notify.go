// Package notify abstracts the dashboard's toast notifications so that the
// client and page controllers can report outcomes without knowing how they
// are rendered.
package notify

import (
	"sync"

	"github.com/cleanduds/admin-dashboard/utils/logger"
	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notifier interface {
	Notify(level Level, title, description string)
}

// Success is shorthand for a success notification.
func Success(n Notifier, title, description string) {
	n.Notify(LevelSuccess, title, description)
}

// Failure is shorthand for a destructive/error notification.
func Failure(n Notifier, title, description string) {
	n.Notify(LevelError, title, description)
}

// LogNotifier writes notifications to the global logger. The CLI front end
// uses it in place of rendered toasts.
type LogNotifier struct{}

func (LogNotifier) Notify(level Level, title, description string) {
	fields := []zap.Field{
		zap.String("title", title),
		zap.String("description", description),
	}
	if level == LevelError {
		logger.Warn("notification", fields...)
		return
	}
	logger.Info("notification", fields...)
}

// Notification is one recorded toast.
type Notification struct {
	Level       Level
	Title       string
	Description string
}

// Recorder collects notifications for inspection in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Notification
}

func (r *Recorder) Notify(level Level, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Notification{Level: level, Title: title, Description: description})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.entries))
	copy(out, r.entries)
	return out
}

// Reset discards recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
