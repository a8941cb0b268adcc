// Package scheduler runs the hourly reminder sweep: users whose preferred
// notification hour has arrived get a ping when they have reviews due.
package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/wordrecall/internal/database"
)

// Quiet-hours defaults; reminders stay inside this window.
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Notifier delivers a reminder about due reviews.
type Notifier interface {
	SendReviewReminder(userID int64, dueCount int) error
}

// Scheduler manages the recurring jobs of the application.
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
	users     *database.UserRepository
	progress  *database.ProgressRepository
}

// New creates a scheduler delivering through the given notifier.
func New(notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		notifier:  notifier,
		users:     database.NewUserRepository(),
		progress:  database.NewWordProgressRepository(),
	}
}

// Start begins running all scheduled tasks in the background.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) checkAndSendReminders() {
	now := time.Now()
	currentHour := now.Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)
	if currentHour < startHour || currentHour > endHour {
		return
	}

	ctx := context.Background()
	users, err := s.users.GetUsersForNotification(ctx, currentHour)
	if err != nil {
		log.Printf("Error getting users for notification: %v", err)
		return
	}

	for _, user := range users {
		due, err := s.progress.CountDueForUser(ctx, user.ID, now)
		if err != nil {
			log.Printf("Error counting due reviews for user %d: %v", user.ID, err)
			continue
		}
		if due == 0 {
			continue
		}
		if due > user.WordsPerDay {
			due = user.WordsPerDay
		}
		if err := s.notifier.SendReviewReminder(user.ID, due); err != nil {
			log.Printf("Error sending reminder to user %d: %v", user.ID, err)
		}
	}
}

// RunManualCheck forces a due-review check for one user.
func (s *Scheduler) RunManualCheck(ctx context.Context, userID int64) error {
	due, err := s.progress.CountDueForUser(ctx, userID, time.Now())
	if err != nil {
		return err
	}
	if due > 0 {
		return s.notifier.SendReviewReminder(userID, due)
	}
	return nil
}

func envHour(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
