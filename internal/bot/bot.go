// Package bot is the Telegram surface of the trainer: it walks users
// through quiz sessions, shows their statistics, and gives admins an
// import path for wordbook content.
package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/wordrecall/internal/ai"
	"github.com/example/wordrecall/internal/database"
	"github.com/example/wordrecall/internal/mastery"
	"github.com/example/wordrecall/internal/quiz"
	"github.com/example/wordrecall/internal/scheduler"
	"github.com/example/wordrecall/internal/stats"
	"github.com/example/wordrecall/internal/study"
	"github.com/example/wordrecall/pkg/models"
)

// session is one user's in-flight quiz run.
type session struct {
	Questions  []quiz.Question
	Index      int
	Correct    int
	Mode       models.StudyMode
	WordbookID *int64
	StartedAt  time.Time
}

// Bot wires the Telegram API to the study components.
type Bot struct {
	api      *tgbotapi.BotAPI
	trainer  *study.Trainer
	gen      *quiz.Generator
	summary  *stats.Aggregator
	examples *ai.Client // nil when OPENAI_API_KEY is absent

	users    *database.UserRepository
	books    *database.WordbookRepository
	words    *database.WordRepository
	meanings *database.MeaningRepository
	progress *database.ProgressRepository
	starred  *database.StarredRepository
	history  *database.SessionRepository

	reminders *scheduler.Scheduler // attached after construction

	mu          sync.Mutex
	sessions    map[int64]*session
	awaitingXLS map[int64]bool

	adminIDs map[int64]bool
}

// New creates the bot from the environment. TELEGRAM_BOT_TOKEN is
// required; ADMIN_USER_IDS is a comma-separated ID list.
func New() (*Bot, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	if database.DB == nil {
		return nil, fmt.Errorf("database connection is not established")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %v", err)
	}

	wordProgress := database.NewWordProgressRepository()
	daily := database.NewDailyStatsRepository()
	words := database.NewWordRepository()
	sessions := database.NewSessionRepository()

	b := &Bot{
		api:         api,
		trainer:     study.NewTrainer(mastery.New(), words, wordProgress, daily),
		gen:         quiz.NewGenerator(time.Now().UnixNano(), sessions),
		summary:     stats.New(wordProgress, daily),
		users:       database.NewUserRepository(),
		books:       database.NewWordbookRepository(),
		words:       words,
		meanings:    database.NewMeaningRepository(),
		progress:    wordProgress,
		starred:     database.NewStarredRepository(),
		history:     sessions,
		sessions:    make(map[int64]*session),
		awaitingXLS: make(map[int64]bool),
		adminIDs:    parseAdminIDs(os.Getenv("ADMIN_USER_IDS")),
	}

	if os.Getenv("OPENAI_API_KEY") != "" {
		client, err := ai.New()
		if err != nil {
			log.Printf("Warning: unable to initialize example generator: %v", err)
		} else {
			b.examples = client
		}
	}
	return b, nil
}

// Start consumes Telegram updates until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// AttachScheduler lets /due trigger a reminder check on demand.
func (b *Bot) AttachScheduler(s *scheduler.Scheduler) {
	b.reminders = s
}

// Stop shuts down the update channel.
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

// SendReviewReminder implements scheduler.Notifier.
func (b *Bot) SendReviewReminder(userID int64, dueCount int) error {
	text := fmt.Sprintf("⏰ You have %d words due for review. Send /review to keep your streak going!", dueCount)
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %v", err)
	}
	return nil
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.adminIDs[userID]
}

func (b *Bot) session(userID int64) *session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[userID]
}

func (b *Bot) setSession(userID int64, s *session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if s == nil {
		delete(b.sessions, userID)
	} else {
		b.sessions[userID] = s
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message to %d: %v", chatID, err)
	}
}

func parseAdminIDs(raw string) map[int64]bool {
	out := make(map[int64]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			out[id] = true
		}
	}
	return out
}
