package notify

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/model"
)

// Derived notifications: each is a thin wrapper over Add with fixed
// type and copy templates.

// StudyReminder announces an upcoming study session.
func (s *Store) StudyReminder(ctx context.Context, subject, at string) {
	s.Add(ctx,
		fmt.Sprintf("📚 Study Reminder: %s", subject),
		fmt.Sprintf("Time to study %s! Scheduled for %s", subject, at),
		model.TypeInfo, "", nil)
}

// QuizCompleted formats the completion message by score tier:
// ≥90 outstanding, ≥70 great, ≥50 good effort, else don't give up.
func (s *Store) QuizCompleted(ctx context.Context, score, total int) {
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	var message string
	switch {
	case percentage >= 90:
		message = fmt.Sprintf("Outstanding! You scored %d/%d (%d%%). Keep up the excellent work! 🌟", score, total, percentage)
	case percentage >= 70:
		message = fmt.Sprintf("Great job! You scored %d/%d (%d%%). You're doing well! 👏", score, total, percentage)
	case percentage >= 50:
		message = fmt.Sprintf("Good effort! You scored %d/%d (%d%%). Keep practicing! 💪", score, total, percentage)
	default:
		message = fmt.Sprintf("You scored %d/%d (%d%%). Don't give up, practice makes perfect! 🎯", score, total, percentage)
	}

	s.Add(ctx, "✅ Quiz Completed!", message, model.TypeSuccess, "", nil)
}

// Streak celebrates a study streak; the emoji escalates at 14 and 30 days.
func (s *Store) Streak(ctx context.Context, days int) {
	emoji := "⭐"
	switch {
	case days >= 30:
		emoji = "🏆"
	case days >= 14:
		emoji = "🔥"
	}
	s.Add(ctx,
		fmt.Sprintf("%s %d-Day Streak!", emoji, days),
		fmt.Sprintf("Congratulations on maintaining your study streak for %d days! Keep it up!", days),
		model.TypeSuccess, "", nil)
}

// Achievement announces an unlocked achievement.
func (s *Store) Achievement(ctx context.Context, name, description string) {
	s.Add(ctx,
		fmt.Sprintf("🏅 Achievement Unlocked: %s", name),
		description,
		model.TypeSuccess, "", nil)
}

// ScheduleChanged covers created/updated/deleted schedules.
func (s *Store) ScheduleChanged(ctx context.Context, action, scheduleName string) {
	messages := map[string]string{
		"created": fmt.Sprintf("Your schedule %q has been created successfully!", scheduleName),
		"updated": fmt.Sprintf("Your schedule %q has been updated.", scheduleName),
		"deleted": fmt.Sprintf("Your schedule %q has been deleted.", scheduleName),
	}
	message, ok := messages[action]
	if !ok {
		message = fmt.Sprintf("Schedule %s", action)
	}
	s.Add(ctx,
		fmt.Sprintf("📅 Schedule %s", titleCase(action)),
		message,
		model.TypeSuccess, "/my-schedules", nil)
}

// QuizEvent covers available/started/reminder quiz notifications.
func (s *Store) QuizEvent(ctx context.Context, action, quizName, route string) {
	if route == "" {
		route = "/quizzes"
	}
	messages := map[string]string{
		"available": fmt.Sprintf("New quiz %q is now available!", quizName),
		"started":   fmt.Sprintf("You've started %q. Good luck!", quizName),
		"reminder":  fmt.Sprintf("Don't forget to complete %q!", quizName),
	}
	message, ok := messages[action]
	if !ok {
		message = fmt.Sprintf("Quiz %s", action)
	}
	s.Add(ctx,
		fmt.Sprintf("📝 Quiz %s", titleCase(action)),
		message,
		model.TypeInfo, route, nil)
}

// ProfileUpdated confirms a profile save.
func (s *Store) ProfileUpdated(ctx context.Context) {
	s.Add(ctx,
		"✅ Profile Updated Successfully",
		"Your profile has been updated! Your personalized experience is now even better.",
		model.TypeSuccess, "/profile", nil)
}

// FeatureAnnouncement announces a new feature.
func (s *Store) FeatureAnnouncement(ctx context.Context, featureName, description, route string) {
	s.Add(ctx,
		fmt.Sprintf("🎊 New Feature: %s", featureName),
		description,
		model.TypeInfo, route, nil)
}

// EventAnnouncement announces an event, optionally dated.
func (s *Store) EventAnnouncement(ctx context.Context, eventName, description, route, date string) {
	message := description
	if date != "" {
		message = fmt.Sprintf("%s - Scheduled for %s", description, date)
	}
	s.Add(ctx,
		fmt.Sprintf("📢 Event: %s", eventName),
		message,
		model.TypeInfo, route, nil)
}

// SystemUpdate announces a system change.
func (s *Store) SystemUpdate(ctx context.Context, title, description string) {
	s.Add(ctx, fmt.Sprintf("🔄 %s", title), description, model.TypeInfo, "", nil)
}

// NewContent announces newly available content.
func (s *Store) NewContent(ctx context.Context, contentType, contentName string) {
	s.Add(ctx,
		fmt.Sprintf("📚 New %s Available", contentType),
		fmt.Sprintf("%s has been added to your library", contentName),
		model.TypeInfo, "", nil)
}

// AIResponse tells the user their AI tutor replied.
func (s *Store) AIResponse(ctx context.Context) {
	s.Add(ctx,
		"🤖 AI Tutor Response",
		"Your AI tutor has responded to your question",
		model.TypeInfo, "", nil)
}

// Deadline warns about an approaching due date.
func (s *Store) Deadline(ctx context.Context, taskName, timeLeft string) {
	s.Add(ctx,
		"⏰ Deadline Reminder",
		fmt.Sprintf("%s is due in %s", taskName, timeLeft),
		model.TypeWarning, "", nil)
}

// GoalAchieved celebrates a reached goal.
func (s *Store) GoalAchieved(ctx context.Context, goalName string) {
	s.Add(ctx,
		"🎯 Goal Achieved!",
		fmt.Sprintf("Congratulations! You've achieved your goal: %s", goalName),
		model.TypeSuccess, "", nil)
}

// DailyStudyTime summarizes today's study time.
func (s *Store) DailyStudyTime(ctx context.Context, minutes int) {
	hours := minutes / 60
	mins := minutes % 60
	timeStr := fmt.Sprintf("%dm", mins)
	if hours > 0 {
		timeStr = fmt.Sprintf("%dh %dm", hours, mins)
	}
	s.Add(ctx,
		"⏱️ Study Time Today",
		fmt.Sprintf("You've studied for %s today. Keep it up!", timeStr),
		model.TypeInfo, "", nil)
}

// BadgeEarned announces an earned badge.
func (s *Store) BadgeEarned(ctx context.Context, badgeName, badgeDescription string) {
	s.Add(ctx,
		fmt.Sprintf("🏅 Badge Earned: %s", badgeName),
		badgeDescription,
		model.TypeSuccess, "", nil)
}

// LevelUp announces a new level.
func (s *Store) LevelUp(ctx context.Context, newLevel int) {
	s.Add(ctx,
		"🎊 Level Up!",
		fmt.Sprintf("Congratulations! You've reached Level %d!", newLevel),
		model.TypeSuccess, "", nil)
}

// FriendActivity announces a friend's activity.
func (s *Store) FriendActivity(ctx context.Context, friendName, activity string) {
	s.Add(ctx,
		"👥 Friend Activity",
		fmt.Sprintf("%s %s", friendName, activity),
		model.TypeInfo, "", nil)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
