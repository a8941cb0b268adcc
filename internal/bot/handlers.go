package bot

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/wordrecall/internal/excel"
	"github.com/example/wordrecall/internal/quiz"
	"github.com/example/wordrecall/internal/study"
	"github.com/example/wordrecall/pkg/models"
)

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	from := message.From
	if from == nil {
		return
	}
	user, err := b.users.GetOrCreate(ctx, &models.User{
		ID:        from.ID,
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
	})
	if err != nil {
		log.Printf("Error registering user %d: %v", from.ID, err)
		b.send(message.Chat.ID, "Something went wrong, please try again.")
		return
	}

	if message.Document != nil {
		b.handleDocument(ctx, message)
		return
	}

	if !message.IsCommand() {
		b.handleSpellingAnswer(ctx, message)
		return
	}

	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "books":
		b.handleBooks(ctx, message)
	case "study":
		b.startSession(ctx, message.Chat.ID, from.ID, 0, models.ModeWordMeaning, false, user.WordsPerDay)
	case "review":
		b.startSession(ctx, message.Chat.ID, from.ID, 0, models.ModeWordMeaning, true, user.WordsPerDay)
	case "stats":
		b.handleStats(ctx, message)
	case "word":
		b.handleWordLookup(ctx, message)
	case "exam":
		b.handleExamFocus(ctx, message)
	case "due":
		b.handleDue(ctx, message)
	case "starred":
		b.handleStarred(ctx, message)
	case "settings":
		b.handleSettings(ctx, message, user)
	case "import":
		b.handleImport(message)
	case "delete":
		b.handleDelete(ctx, message)
	case "enrich":
		b.handleEnrich(ctx, message)
	case "cancel":
		b.setSession(from.ID, nil)
		b.send(message.Chat.ID, "Session cancelled. Your answered words are already saved.")
	default:
		b.send(message.Chat.ID, "Unknown command. Try /study, /review, /books or /stats.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	b.send(message.Chat.ID, strings.Join([]string{
		"👋 Welcome to Word Recall!",
		"",
		"/books — browse wordbooks and your progress",
		"/study — start a smart study session",
		"/review — drill only the words due for review",
		"/stats — your streak and weekly activity",
		"/word cat — look up a word and its senses",
		"/exam — senses that show up in exams",
		"/due — check how many words are waiting",
		"/starred — words you pinned",
		"/settings — reminders and daily goal",
	}, "\n"))
}

func (b *Bot) handleBooks(ctx context.Context, message *tgbotapi.Message) {
	summaries, err := b.books.GetSummariesForUser(ctx, message.From.ID)
	if err != nil {
		log.Printf("Error loading wordbooks: %v", err)
		b.send(message.Chat.ID, "Could not load wordbooks, please try again.")
		return
	}
	if len(summaries) == 0 {
		b.send(message.Chat.ID, "No wordbooks yet. Ask an admin to /import some content.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	var lines []string
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf("*%s* — %d words, %d mastered, %d learning",
			s.Name, s.WordCount, s.MasteredCount, s.LearningCount))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Study "+s.Name, fmt.Sprintf("book:%d", s.ID)),
		))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, strings.Join(lines, "\n"))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending wordbook list: %v", err)
	}
}

func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	defer func() {
		if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
			log.Printf("Error acknowledging callback: %v", err)
		}
	}()

	userID := callback.From.ID
	chatID := callback.Message.Chat.ID
	parts := strings.Split(callback.Data, ":")
	if len(parts) < 2 {
		return
	}

	switch parts[0] {
	case "book":
		bookID, _ := strconv.ParseInt(parts[1], 10, 64)
		b.sendModeKeyboard(chatID, bookID)
	case "mode":
		if len(parts) < 3 {
			return
		}
		bookID, _ := strconv.ParseInt(parts[2], 10, 64)
		user, err := b.users.GetByTelegramID(ctx, userID)
		if err != nil || user == nil {
			b.send(chatID, "Please /start first.")
			return
		}
		b.startSession(ctx, chatID, userID, bookID, models.StudyMode(parts[1]), false, user.WordsPerDay)
	case "ans":
		if len(parts) < 3 {
			return
		}
		qIdx, _ := strconv.Atoi(parts[1])
		optIdx, _ := strconv.Atoi(parts[2])
		b.handleChoiceAnswer(ctx, chatID, userID, qIdx, optIdx)
	case "flip":
		qIdx, _ := strconv.Atoi(parts[1])
		b.handleFlashcardFlip(chatID, userID, qIdx)
	case "self":
		if len(parts) < 3 {
			return
		}
		qIdx, _ := strconv.Atoi(parts[1])
		b.handleFlashcardGrade(ctx, chatID, userID, qIdx, parts[2] == "1")
	case "star":
		wordID, _ := strconv.ParseInt(parts[1], 10, 64)
		if err := b.starred.Star(ctx, userID, wordID); err != nil {
			log.Printf("Error starring word %d: %v", wordID, err)
			return
		}
		b.send(chatID, "⭐ Added to your starred words.")
	case "unstar":
		wordID, _ := strconv.ParseInt(parts[1], 10, 64)
		if err := b.starred.Unstar(ctx, userID, wordID); err != nil {
			log.Printf("Error unstarring word %d: %v", wordID, err)
			return
		}
		b.send(chatID, "Removed from your starred words.")
	}
}

func (b *Bot) sendModeKeyboard(chatID, bookID int64) {
	msg := tgbotapi.NewMessage(chatID, "Pick a drill mode:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Word → meaning", fmt.Sprintf("mode:%s:%d", models.ModeWordMeaning, bookID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Meaning → word", fmt.Sprintf("mode:%s:%d", models.ModeMeaningWord, bookID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Spelling", fmt.Sprintf("mode:%s:%d", models.ModeSpelling, bookID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Flashcards", fmt.Sprintf("mode:%s:%d", models.ModeFlashcard, bookID)),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending mode keyboard: %v", err)
	}
}

// startSession builds the queue, generates questions and asks the first one.
func (b *Bot) startSession(ctx context.Context, chatID, userID, bookID int64, mode models.StudyMode, reviewOnly bool, limit int) {
	now := time.Now()
	opts := study.DefaultQueueOptions()
	if limit > 0 {
		opts.Limit = limit
	}

	var queue []models.Word
	var err error
	if reviewOnly {
		queue, err = b.dueWords(ctx, userID, now, opts.Limit)
	} else {
		queue, err = b.trainer.BuildQueue(ctx, userID, bookID, opts, now)
	}
	if err != nil {
		log.Printf("Error building queue for user %d: %v", userID, err)
		b.send(chatID, "Could not build a study queue, please try again.")
		return
	}
	if len(queue) == 0 {
		if reviewOnly {
			b.send(chatID, "🎉 Nothing due for review. Come back later or /study new words.")
		} else {
			b.send(chatID, "No words found. Browse /books or ask an admin to /import content.")
		}
		return
	}

	pool, err := b.words.ListItems(ctx, bookID)
	if err != nil {
		log.Printf("Error loading distractor pool: %v", err)
		pool = queue
	}

	var wordbookID *int64
	if bookID != 0 {
		wordbookID = &bookID
	}
	s := &session{
		Questions:  b.gen.Build(queue, pool, mode),
		Mode:       mode,
		WordbookID: wordbookID,
		StartedAt:  now,
	}
	b.setSession(userID, s)
	b.askNext(ctx, chatID, userID)
}

// dueWords resolves the user's due progress records to words, most overdue
// first.
func (b *Bot) dueWords(ctx context.Context, userID int64, now time.Time, limit int) ([]models.Word, error) {
	due, err := b.progress.GetDueForUser(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if len(due) > limit {
		due = due[:limit]
	}
	ids := make([]int64, len(due))
	for i, rec := range due {
		ids[i] = rec.ItemID
	}
	byID, err := b.words.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	words := make([]models.Word, 0, len(due))
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			words = append(words, w)
		}
	}
	return words, nil
}

func (b *Bot) askNext(ctx context.Context, chatID, userID int64) {
	s := b.session(userID)
	if s == nil {
		return
	}
	if s.Index >= len(s.Questions) {
		b.finishSession(ctx, chatID, userID, s)
		return
	}

	q := s.Questions[s.Index]
	header := fmt.Sprintf("Question %d/%d\n\n", s.Index+1, len(s.Questions))

	if s.Mode == models.ModeSpelling {
		b.send(chatID, header+fmt.Sprintf("✍️ Type the word for: *%s*", q.Prompt))
		return
	}

	if s.Mode == models.ModeFlashcard {
		prompt := q.Prompt
		if q.Word.Phonetic != "" {
			prompt += " " + q.Word.Phonetic
		}
		msg := tgbotapi.NewMessage(chatID, header+fmt.Sprintf("*%s*", prompt))
		msg.ParseMode = tgbotapi.ModeMarkdown
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Show answer", fmt.Sprintf("flip:%d", s.Index)),
			),
		)
		if _, err := b.api.Send(msg); err != nil {
			log.Printf("Error sending flashcard: %v", err)
		}
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range q.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, fmt.Sprintf("ans:%d:%d", s.Index, i)),
		))
	}
	msg := tgbotapi.NewMessage(chatID, header+fmt.Sprintf("*%s*", q.Prompt))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending question: %v", err)
	}
}

func (b *Bot) handleChoiceAnswer(ctx context.Context, chatID, userID int64, qIdx, optIdx int) {
	s := b.session(userID)
	if s == nil || qIdx != s.Index || qIdx >= len(s.Questions) {
		return // stale tap on an old question
	}
	q := s.Questions[qIdx]
	correct := optIdx == q.CorrectIndex
	b.applyAnswer(ctx, chatID, userID, s, q, correct)
}

// handleFlashcardFlip reveals the answer side and asks for a self-grade.
func (b *Bot) handleFlashcardFlip(chatID, userID int64, qIdx int) {
	s := b.session(userID)
	if s == nil || s.Mode != models.ModeFlashcard || qIdx != s.Index || qIdx >= len(s.Questions) {
		return
	}
	q := s.Questions[qIdx]

	text := fmt.Sprintf("*%s* — %s", q.Word.Word, q.Word.Meaning)
	if q.Word.Example != "" {
		text += fmt.Sprintf("\n_%s_", q.Word.Example)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ I knew it", fmt.Sprintf("self:%d:1", qIdx)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Again", fmt.Sprintf("self:%d:0", qIdx)),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending flashcard answer: %v", err)
	}
}

func (b *Bot) handleFlashcardGrade(ctx context.Context, chatID, userID int64, qIdx int, knew bool) {
	s := b.session(userID)
	if s == nil || s.Mode != models.ModeFlashcard || qIdx != s.Index || qIdx >= len(s.Questions) {
		return
	}
	b.applyAnswer(ctx, chatID, userID, s, s.Questions[qIdx], knew)
}

func (b *Bot) handleSpellingAnswer(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	s := b.session(userID)
	if s == nil || s.Mode != models.ModeSpelling || s.Index >= len(s.Questions) {
		return
	}
	q := s.Questions[s.Index]
	correct := quiz.CheckSpelling(message.Text, q.Word)
	b.applyAnswer(ctx, message.Chat.ID, userID, s, q, correct)
}

// applyAnswer persists one outcome and moves the session forward.
func (b *Bot) applyAnswer(ctx context.Context, chatID, userID int64, s *session, q quiz.Question, correct bool) {
	rec, err := b.trainer.SubmitAnswer(ctx, userID, q.Word.ID, correct, time.Now())
	if err != nil {
		log.Printf("Error saving answer for user %d word %d: %v", userID, q.Word.ID, err)
		b.send(chatID, "Could not save that answer — it won't count. Please try again.")
		return
	}

	if correct {
		s.Correct++
	}
	s.Index++

	var feedback string
	if correct {
		feedback = fmt.Sprintf("✅ Correct! *%s* — %s\nMastery: %d%%", q.Word.Word, q.Word.Meaning, rec.Mastery)
	} else {
		feedback = fmt.Sprintf("❌ Not quite. *%s* — %s\nMastery: %d%%", q.Word.Word, q.Word.Meaning, rec.Mastery)
	}
	if q.Word.Example != "" {
		feedback += fmt.Sprintf("\n_%s_", q.Word.Example)
	}
	if rec.NextReview != nil {
		feedback += fmt.Sprintf("\nNext review: %s", rec.NextReview.Format("Jan 2"))
	}

	msg := tgbotapi.NewMessage(chatID, feedback)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Star word", fmt.Sprintf("star:%d", q.Word.ID)),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending feedback: %v", err)
	}

	b.askNext(ctx, chatID, userID)
}

func (b *Bot) finishSession(ctx context.Context, chatID, userID int64, s *session) {
	b.setSession(userID, nil)

	duration := time.Since(s.StartedAt)
	if err := b.gen.RecordSession(ctx, userID, s.WordbookID, s.Mode, len(s.Questions), s.Correct, duration); err != nil {
		log.Printf("Error recording session for user %d: %v", userID, err)
	}
	if err := b.trainer.RecordStudyTime(ctx, userID, time.Now(), duration); err != nil {
		log.Printf("Error recording study time for user %d: %v", userID, err)
	}

	b.send(chatID, fmt.Sprintf(
		"🏁 Session done: %d/%d correct in %d min.\nCheck /stats or go again with /study.",
		s.Correct, len(s.Questions), int(duration.Minutes())))
}

func (b *Bot) handleStats(ctx context.Context, message *tgbotapi.Message) {
	summary, err := b.summary.Summary(ctx, message.From.ID, time.Now())
	if err != nil {
		log.Printf("Error building stats for user %d: %v", message.From.ID, err)
		b.send(message.Chat.ID, "Could not load your statistics, please try again.")
		return
	}

	week := make([]string, len(summary.WeeklyProgress))
	for i, n := range summary.WeeklyProgress {
		week[i] = strconv.Itoa(n)
	}
	lines := []string{
		"📊 *Your progress*",
		fmt.Sprintf("Words touched: %d (✅ %d mastered, 📖 %d learning)",
			summary.TotalWords, summary.MasteredWords, summary.LearningWords),
		fmt.Sprintf("Streak: %d days (total study days: %d)", summary.Streak, summary.TotalStudyDays),
		fmt.Sprintf("Today: %d new, %d reviews, %d min",
			summary.TodayNewWords, summary.TodayReviews, summary.TodayMinutes),
		fmt.Sprintf("Last 7 days: %s", strings.Join(week, " ")),
	}

	recent, err := b.history.GetRecentForUser(ctx, message.From.ID, 3)
	if err != nil {
		log.Printf("Error loading recent sessions for user %d: %v", message.From.ID, err)
	}
	if len(recent) > 0 {
		lines = append(lines, "", "*Recent sessions*")
		for _, s := range recent {
			lines = append(lines, fmt.Sprintf("%s — %d/%d correct, %d min (%s)",
				s.CreatedAt.Format("Jan 2"), s.CorrectCount, s.WordsStudied, s.DurationMinutes, s.Mode))
		}
	}
	b.send(message.Chat.ID, strings.Join(lines, "\n"))
}

// handleWordLookup shows a dictionary card: phonetic, every sense, example
// and the star toggle.
func (b *Bot) handleWordLookup(ctx context.Context, message *tgbotapi.Message) {
	text := strings.TrimSpace(message.CommandArguments())
	if text == "" {
		b.send(message.Chat.ID, "Usage: `/word <text>`")
		return
	}

	matches, err := b.words.Search(ctx, text)
	if err != nil {
		log.Printf("Error searching for %q: %v", text, err)
		b.send(message.Chat.ID, "Search failed, please try again.")
		return
	}
	if len(matches) == 0 {
		b.send(message.Chat.ID, fmt.Sprintf("No entry for *%s*.", text))
		return
	}

	w := matches[0]
	lines := []string{fmt.Sprintf("*%s* %s", w.Word, w.Phonetic), w.Meaning}

	senses, err := b.meanings.GetByWord(ctx, w.ID)
	if err != nil {
		log.Printf("Error loading meanings for word %d: %v", w.ID, err)
	}
	for _, m := range senses {
		line := fmt.Sprintf("• _%s_ %s", m.PartOfSpeech, m.Meaning)
		if m.IsExamFocus {
			line += " 🎯"
		}
		lines = append(lines, line)
	}
	if w.Example != "" {
		lines = append(lines, fmt.Sprintf("_%s_", w.Example))
	}

	starred, err := b.starred.IsStarred(ctx, message.From.ID, w.ID)
	if err != nil {
		log.Printf("Error checking star for word %d: %v", w.ID, err)
	}
	button := tgbotapi.NewInlineKeyboardButtonData("⭐ Star word", fmt.Sprintf("star:%d", w.ID))
	if starred {
		button = tgbotapi.NewInlineKeyboardButtonData("Unstar word", fmt.Sprintf("unstar:%d", w.ID))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, strings.Join(lines, "\n"))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(button))
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending word card: %v", err)
	}
}

// handleExamFocus lists senses flagged for exams, the "familiar word,
// unfamiliar meaning" traps.
func (b *Bot) handleExamFocus(ctx context.Context, message *tgbotapi.Message) {
	senses, err := b.meanings.GetExamFocus(ctx, 0)
	if err != nil {
		log.Printf("Error loading exam-focus senses: %v", err)
		b.send(message.Chat.ID, "Could not load exam-focus senses.")
		return
	}
	if len(senses) == 0 {
		b.send(message.Chat.ID, "No exam-focus senses in your wordbooks yet.")
		return
	}
	if len(senses) > 10 {
		senses = senses[:10]
	}

	ids := make([]int64, len(senses))
	for i, m := range senses {
		ids[i] = m.WordID
	}
	byID, err := b.words.GetByIDs(ctx, ids)
	if err != nil {
		log.Printf("Error resolving exam-focus words: %v", err)
		b.send(message.Chat.ID, "Could not load exam-focus senses.")
		return
	}

	lines := []string{"🎯 *Exam-focus senses*"}
	for _, m := range senses {
		w, ok := byID[m.WordID]
		if !ok {
			continue
		}
		line := fmt.Sprintf("*%s* — _%s_ %s", w.Word, m.PartOfSpeech, m.Meaning)
		if m.UsageNote != "" {
			line += fmt.Sprintf(" (%s)", m.UsageNote)
		}
		lines = append(lines, line)
	}
	b.send(message.Chat.ID, strings.Join(lines, "\n"))
}

func (b *Bot) handleDue(ctx context.Context, message *tgbotapi.Message) {
	due, err := b.progress.CountDueForUser(ctx, message.From.ID, time.Now())
	if err != nil {
		log.Printf("Error counting due words for user %d: %v", message.From.ID, err)
		b.send(message.Chat.ID, "Could not check your review queue.")
		return
	}
	if due == 0 {
		b.send(message.Chat.ID, "🎉 Nothing due right now.")
		return
	}
	if b.reminders != nil {
		if err := b.reminders.RunManualCheck(ctx, message.From.ID); err != nil {
			log.Printf("Error running manual due check: %v", err)
		}
		return
	}
	b.send(message.Chat.ID, fmt.Sprintf("You have %d words due. Send /review to clear them.", due))
}

// handleDelete removes a word and is admin-only.
func (b *Bot) handleDelete(ctx context.Context, message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		b.send(message.Chat.ID, "Deleting content requires admin access.")
		return
	}
	id, err := strconv.ParseInt(strings.TrimSpace(message.CommandArguments()), 10, 64)
	if err != nil {
		b.send(message.Chat.ID, "Usage: `/delete <word id>`")
		return
	}
	w, err := b.words.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error loading word %d: %v", id, err)
		b.send(message.Chat.ID, "Could not load that word.")
		return
	}
	if w == nil {
		b.send(message.Chat.ID, fmt.Sprintf("No word with id %d.", id))
		return
	}
	if err := b.words.Delete(ctx, id); err != nil {
		log.Printf("Error deleting word %d: %v", id, err)
		b.send(message.Chat.ID, "Delete failed, please try again.")
		return
	}
	b.send(message.Chat.ID, fmt.Sprintf("Deleted *%s* (id %d).", w.Word, id))
}

func (b *Bot) handleStarred(ctx context.Context, message *tgbotapi.Message) {
	words, err := b.starred.ListForUser(ctx, message.From.ID)
	if err != nil {
		log.Printf("Error loading starred words: %v", err)
		b.send(message.Chat.ID, "Could not load your starred words.")
		return
	}
	if len(words) == 0 {
		b.send(message.Chat.ID, "No starred words yet. Star words from quiz feedback to pin them here.")
		return
	}
	lines := make([]string, 0, len(words)+1)
	lines = append(lines, "⭐ *Starred words*")
	for _, w := range words {
		lines = append(lines, fmt.Sprintf("*%s* — %s", w.Word, w.Meaning))
	}
	b.send(message.Chat.ID, strings.Join(lines, "\n"))
}

func (b *Bot) handleSettings(ctx context.Context, message *tgbotapi.Message, user *models.User) {
	args := strings.Fields(message.CommandArguments())
	if len(args) != 2 {
		b.send(message.Chat.ID, strings.Join([]string{
			"⚙️ *Settings*",
			fmt.Sprintf("Reminder hour: %d:00 (UTC)", user.NotificationHour),
			fmt.Sprintf("Words per session: %d", user.WordsPerDay),
			"",
			"`/settings hour 9` — set reminder hour (0-23)",
			"`/settings words 20` — set session size",
			"`/settings reminders off` — disable reminders",
		}, "\n"))
		return
	}

	switch args[0] {
	case "hour":
		hour, err := strconv.Atoi(args[1])
		if err != nil || hour < 0 || hour > 23 {
			b.send(message.Chat.ID, "Hour must be between 0 and 23.")
			return
		}
		user.NotificationHour = hour
		user.NotificationEnabled = true
	case "words":
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 || n > 100 {
			b.send(message.Chat.ID, "Session size must be between 1 and 100.")
			return
		}
		user.WordsPerDay = n
	case "reminders":
		user.NotificationEnabled = args[1] == "on"
	default:
		b.send(message.Chat.ID, "Unknown setting. Use hour, words or reminders.")
		return
	}

	if err := b.users.UpdateSettings(ctx, user); err != nil {
		log.Printf("Error updating settings for user %d: %v", user.ID, err)
		b.send(message.Chat.ID, "Could not save settings, please try again.")
		return
	}
	b.send(message.Chat.ID, "Saved. ✅")
}

func (b *Bot) handleImport(message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		b.send(message.Chat.ID, "Importing content requires admin access.")
		return
	}
	b.mu.Lock()
	b.awaitingXLS[message.From.ID] = true
	b.mu.Unlock()
	b.send(message.Chat.ID, "Send me an .xlsx file: word, phonetic, meaning, example, translation, wordbook, exam priority, frequency rank.")
}

func (b *Bot) handleDocument(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	b.mu.Lock()
	expecting := b.awaitingXLS[userID]
	delete(b.awaitingXLS, userID)
	b.mu.Unlock()

	if !expecting || !b.isAdmin(userID) {
		return
	}

	path, err := b.downloadDocument(message.Document)
	if err != nil {
		log.Printf("Error downloading import file: %v", err)
		b.send(message.Chat.ID, "Could not download the file, please try again.")
		return
	}
	defer os.Remove(path)

	config := excel.DefaultImportConfig()
	config.FilePath = path
	result, err := excel.ImportWords(ctx, config)
	if err != nil {
		log.Printf("Error importing words: %v", err)
		b.send(message.Chat.ID, fmt.Sprintf("Import failed: %v", err))
		return
	}

	report := fmt.Sprintf(
		"Import finished: %d rows, %d created, %d updated, %d skipped, %d new wordbooks.",
		result.TotalProcessed, result.Created, result.Updated, result.Skipped, result.WordbooksCreated)
	if len(result.Errors) > 0 {
		report += fmt.Sprintf("\n%d rows had errors; first: %s", len(result.Errors), result.Errors[0])
	}
	b.send(message.Chat.ID, report)
}

func (b *Bot) downloadDocument(doc *tgbotapi.Document) (string, error) {
	url, err := b.api.GetFileDirectURL(doc.FileID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve file URL: %v", err)
	}
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch file: %v", err)
	}
	defer resp.Body.Close()

	f, err := os.CreateTemp("", "import-*"+filepath.Ext(doc.FileName))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to save file: %v", err)
	}
	return f.Name(), nil
}

// handleEnrich fills in missing example sentences for up to 20 words.
func (b *Bot) handleEnrich(ctx context.Context, message *tgbotapi.Message) {
	if !b.isAdmin(message.From.ID) {
		b.send(message.Chat.ID, "Enriching content requires admin access.")
		return
	}
	if b.examples == nil {
		b.send(message.Chat.ID, "Example generation is not configured (OPENAI_API_KEY missing).")
		return
	}

	words, err := b.words.WordsMissingExamples(ctx, 20)
	if err != nil {
		log.Printf("Error listing words missing examples: %v", err)
		b.send(message.Chat.ID, "Could not list words, please try again.")
		return
	}
	if len(words) == 0 {
		b.send(message.Chat.ID, "Every word already has an example sentence.")
		return
	}

	generated := 0
	for i := range words {
		example, err := b.examples.GenerateExample(ctx, &words[i])
		if err != nil {
			log.Printf("Error generating example for %q: %v", words[i].Word, err)
			continue
		}
		words[i].Example = example
		if err := b.words.Update(ctx, &words[i]); err != nil {
			log.Printf("Error saving example for %q: %v", words[i].Word, err)
			continue
		}
		generated++
	}
	b.send(message.Chat.ID, fmt.Sprintf("Generated examples for %d of %d words.", generated, len(words)))
}
