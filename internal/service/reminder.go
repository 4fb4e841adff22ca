package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/gen2brain/beeep"

	"weightless/internal/store"
)

// recentEntrySuppression skips the reminder when the user logged a weight
// within the last hour; they are clearly already using the app.
const recentEntrySuppression = time.Hour

var reminderMessages = []string{
	"Time to check your weight!",
	"Keep up with your weight goals!",
	"Don't forget to log your progress!",
	"Quick weight check?",
}

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier sends notifications through the OS notification daemon.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// ReminderService nudges the user to log a weight at a fixed interval,
// suppressing the nudge when a recent entry shows the app is in use.
type ReminderService struct {
	store    *store.Store
	notifier Notifier
	interval time.Duration
	pick     func(n int) int
}

// NewReminderService creates the reminder service. A zero interval
// disables reminders entirely.
func NewReminderService(s *store.Store, notifier Notifier, interval time.Duration) *ReminderService {
	return &ReminderService{
		store:    s,
		notifier: notifier,
		interval: interval,
		pick:     rand.Intn,
	}
}

// Check sends a reminder if one is due at now. Returns true when a
// notification was delivered. The last-notification time is persisted so
// restarts don't re-notify early.
func (r *ReminderService) Check(now time.Time) (bool, error) {
	if r.interval <= 0 {
		return false, nil
	}

	last, err := r.store.LastNotificationTime()
	if err != nil {
		return false, err
	}
	if !last.IsZero() && now.Sub(last) < r.interval {
		return false, nil
	}

	latest, err := r.store.LatestWeightEntry()
	if err != nil && !errors.Is(err, store.ErrEntryNotFound) {
		return false, err
	}
	if latest != nil && now.Sub(latest.RecordedAt) <= recentEntrySuppression {
		return false, nil
	}

	message := reminderMessages[r.pick(len(reminderMessages))]
	if err := r.notifier.Notify("WeightLess", message); err != nil {
		return false, err
	}

	if err := r.store.SetLastNotificationTime(now); err != nil {
		return true, err
	}
	return true, nil
}

// Run checks on the reminder interval until stop is closed. The first
// check happens after one interval, matching the persisted cadence.
func (r *ReminderService) Run(stop <-chan struct{}) {
	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			// Best effort; a failed notification retries next tick
			_, _ = r.Check(now)
		}
	}
}
