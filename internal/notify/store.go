// Package notify owns the per-user notification list: durable persistence,
// ordering and cap guarantees, listener fan-out, and the one-shot
// onboarding journeys layered on top.
package notify

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tech-T1tans/StudyBuddy-version-control/contracts/mq"
	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/kv"
	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/model"
	"github.com/Tech-T1tans/StudyBuddy-version-control/pkg/metrics"
)

// Marker keys in kv.NamespaceMarkers.
const (
	lastMotivationalKey = "last_motivational"
	currentUserKey      = "current_user"
	profileUserKey      = "user"
)

func welcomeShownKey(userID string) string {
	return "welcome_shown:" + userID
}

func profileNudgeKey(userID string) string {
	return "profile_completion_notified:" + userID
}

// EventPublisher mirrors mq.Publisher. Optional; a nil publisher disables
// the notification.created event stream.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// Archiver persists another user's list before a cleanup sweep deletes it.
// Optional; without one the sweep deletes outright.
type Archiver interface {
	ArchiveList(ctx context.Context, userID string, notifications []model.Notification) error
}

// Options carries the optional collaborators and the hooks tests override.
type Options struct {
	Publisher EventPublisher
	Archiver  Archiver
	Now       func() time.Time
	RandIntn  func(n int) int
	StepDelay time.Duration // delay between welcome journey steps
}

// Store is the single source of truth for one user's notifications.
// Construct one per process and inject it; there is no package singleton.
type Store struct {
	mu            sync.Mutex
	markerMu      sync.Mutex
	kv            kv.Store
	sound         *SoundService
	fanout        *Fanout
	logger        *zap.Logger
	publisher     EventPublisher
	archiver      Archiver
	now           func() time.Time
	randIntn      func(n int) int
	stepDelay     time.Duration
	userID        string
	notifications []model.Notification
}

func NewStore(kvs kv.Store, sound *SoundService, logger *zap.Logger, opts Options) *Store {
	s := &Store{
		kv:        kvs,
		sound:     sound,
		fanout:    NewFanout(logger),
		logger:    logger,
		publisher: opts.Publisher,
		archiver:  opts.Archiver,
		now:       opts.Now,
		randIntn:  opts.RandIntn,
		stepDelay: opts.StepDelay,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.randIntn == nil {
		s.randIntn = rand.Intn
	}
	if s.stepDelay == 0 {
		s.stepDelay = 2 * time.Second
	}

	ctx := context.Background()
	s.mu.Lock()
	s.switchUserLocked(ctx)
	s.mu.Unlock()

	s.initDailyMotivation(ctx)
	return s
}

// Fanout exposes the listener registry for UI surfaces.
func (s *Store) Fanout() *Fanout {
	return s.fanout
}

// Subscribe registers a listener for list changes.
func (s *Store) Subscribe(l Listener) {
	s.fanout.Subscribe(l)
}

// Unsubscribe removes a listener.
func (s *Store) Unsubscribe(l Listener) {
	s.fanout.Unsubscribe(l)
}

// UserID returns the identity whose list is currently loaded.
func (s *Store) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// currentUser reads the persisted current-user object. Any storage or
// parse failure degrades to the guest user.
func (s *Store) currentUser(ctx context.Context) model.User {
	var user model.User
	raw, err := s.kv.Get(ctx, kv.NamespaceProfile, profileUserKey)
	if err != nil {
		return user
	}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("Malformed stored user object, treating as guest", zap.Error(err))
		return model.User{}
	}
	return user
}

// switchUserLocked re-derives the active identity and loads its list.
func (s *Store) switchUserLocked(ctx context.Context) {
	user := s.currentUser(ctx)
	id := user.Identity()
	if id != model.GuestUserID {
		if err := s.kv.Set(ctx, kv.NamespaceMarkers, currentUserKey, id); err != nil {
			s.logger.Warn("Failed to record current user", zap.Error(err))
		}
	}
	s.userID = id
	s.loadLocked(ctx)
}

// loadLocked reloads the in-memory list from storage. Missing or
// malformed data is treated as an empty list.
func (s *Store) loadLocked(ctx context.Context) {
	s.notifications = nil
	raw, err := s.kv.Get(ctx, kv.NamespaceNotifications, s.userID)
	if err != nil {
		return
	}
	var list []model.Notification
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		s.logger.Warn("Malformed stored notifications, treating as empty",
			zap.String("user_id", s.userID), zap.Error(err))
		return
	}
	s.notifications = list
}

// persistLocked writes the full list snapshot. Returns false when the
// write failed; failures are logged and never surfaced to callers.
func (s *Store) persistLocked(ctx context.Context) bool {
	data, err := json.Marshal(s.notifications)
	if err != nil {
		s.logger.Warn("Failed to encode notifications", zap.Error(err))
		return false
	}
	if err := s.kv.Set(ctx, kv.NamespaceNotifications, s.userID, string(data)); err != nil {
		s.logger.Warn("Failed to persist notifications",
			zap.String("user_id", s.userID), zap.Error(err))
		return false
	}
	return true
}

// Add constructs and prepends a notification, enforcing the list cap,
// then persists and notifies listeners. The created record is returned.
func (s *Store) Add(ctx context.Context, title, message, notificationType, route string, action map[string]any) model.Notification {
	if !model.ValidType(notificationType) {
		notificationType = model.TypeInfo
	}

	n := model.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      notificationType,
		Timestamp: s.now().UTC(),
		Route:     route,
		Action:    action,
	}.Clone()

	s.sound.Cue(notificationType)

	s.mu.Lock()
	s.notifications = append([]model.Notification{n}, s.notifications...)
	if len(s.notifications) > model.MaxNotifications {
		s.notifications = s.notifications[:model.MaxNotifications]
	}
	persisted := s.persistLocked(ctx)
	userID := s.userID
	s.mu.Unlock()

	metrics.IncrementNotificationAdded(notificationType)
	s.publishCreated(userID, n)
	if persisted {
		s.fanout.NotifyAll()
	}
	return n
}

// publishCreated mirrors the add to the event exchange, best-effort.
func (s *Store) publishCreated(userID string, n model.Notification) {
	if s.publisher == nil {
		return
	}
	payload := mq.NotificationCreatedPayload{
		NotificationID: n.ID,
		UserID:         userID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		Route:          n.Route,
		CreatedAt:      n.Timestamp,
	}
	if err := s.publisher.Publish(mq.NotificationCreatedKey, payload); err != nil {
		s.logger.Debug("Failed to publish notification.created", zap.Error(err))
	}
}

// All returns the full list, newest first. Entries are cloned, so
// mutating a returned notification never touches store state.
func (s *Store) All() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.notifications))
	for i, n := range s.notifications {
		out[i] = n.Clone()
	}
	return out
}

// Unread returns the unread sublist, newest first.
func (s *Store) Unread() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Notification
	for _, n := range s.notifications {
		if !n.Read {
			out = append(out, n.Clone())
		}
	}
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead marks one notification read. Unknown ids are a no-op.
func (s *Store) MarkRead(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			changed = true
			break
		}
	}
	persisted := changed && s.persistLocked(ctx)
	s.mu.Unlock()

	if persisted {
		s.fanout.NotifyAll()
	}
}

// MarkAllRead marks every notification read.
func (s *Store) MarkAllRead(ctx context.Context) {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	persisted := s.persistLocked(ctx)
	s.mu.Unlock()

	if persisted {
		s.fanout.NotifyAll()
	}
}

// Delete removes one notification. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	changed := false
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			changed = true
			break
		}
	}
	persisted := changed && s.persistLocked(ctx)
	s.mu.Unlock()

	if persisted {
		s.fanout.NotifyAll()
	}
}

// ClearAll empties the current user's list.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	s.notifications = []model.Notification{}
	persisted := s.persistLocked(ctx)
	s.mu.Unlock()

	if persisted {
		s.fanout.NotifyAll()
	}
}

// Sync reloads the list from storage, picking up writes made by another
// process. Last write wins; there is no merge.
func (s *Store) Sync(ctx context.Context) {
	s.mu.Lock()
	s.loadLocked(ctx)
	s.mu.Unlock()

	s.fanout.NotifyAll()
}

// SwitchUser re-derives the active identity and loads that user's list.
// The previous user's stored list is left untouched.
func (s *Store) SwitchUser(ctx context.Context) {
	s.mu.Lock()
	s.switchUserLocked(ctx)
	s.mu.Unlock()

	s.fanout.NotifyAll()
}

// CleanupOtherUsers deletes every stored list belonging to an identity
// other than the current user and guest, archiving each list first when
// an archiver is configured. Returns the number of lists removed.
func (s *Store) CleanupOtherUsers(ctx context.Context) int {
	s.mu.Lock()
	current := s.userID
	s.mu.Unlock()

	userIDs, err := s.kv.Keys(ctx, kv.NamespaceNotifications)
	if err != nil {
		s.logger.Warn("Failed to enumerate stored notification lists", zap.Error(err))
		return 0
	}

	removed := 0
	for _, userID := range userIDs {
		if userID == current || userID == model.GuestUserID {
			continue
		}
		if s.archiver != nil {
			list := s.loadUserList(ctx, userID)
			if err := s.archiver.ArchiveList(ctx, userID, list); err != nil {
				// keep data we could not archive
				s.logger.Warn("Failed to archive notifications, skipping delete",
					zap.String("user_id", userID), zap.Error(err))
				continue
			}
		}
		if err := s.kv.Delete(ctx, kv.NamespaceNotifications, userID); err != nil {
			s.logger.Warn("Failed to delete notifications",
				zap.String("user_id", userID), zap.Error(err))
			continue
		}
		removed++
	}
	return removed
}

// ClearUserNotifications removes one user's stored list outright.
func (s *Store) ClearUserNotifications(ctx context.Context, userID string) {
	if err := s.kv.Delete(ctx, kv.NamespaceNotifications, userID); err != nil {
		s.logger.Warn("Failed to delete notifications",
			zap.String("user_id", userID), zap.Error(err))
	}
}

// TotalCount sums the stored notification counts across all users.
func (s *Store) TotalCount(ctx context.Context) int {
	userIDs, err := s.kv.Keys(ctx, kv.NamespaceNotifications)
	if err != nil {
		return 0
	}
	total := 0
	for _, userID := range userIDs {
		total += len(s.loadUserList(ctx, userID))
	}
	return total
}

func (s *Store) loadUserList(ctx context.Context, userID string) []model.Notification {
	raw, err := s.kv.Get(ctx, kv.NamespaceNotifications, userID)
	if err != nil {
		return nil
	}
	var list []model.Notification
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}

// initDailyMotivation adds one motivational quote per calendar day,
// regardless of how many times the store is constructed that day.
func (s *Store) initDailyMotivation(ctx context.Context) {
	today := s.now().Format("2006-01-02")
	last, err := s.kv.Get(ctx, kv.NamespaceMarkers, lastMotivationalKey)
	if err == nil && last == today {
		return
	}

	q := motivationalQuotes[s.randIntn(len(motivationalQuotes))]
	s.Add(ctx, q.Title, q.Message, model.TypeMotivational, "", nil)

	if err := s.kv.Set(ctx, kv.NamespaceMarkers, lastMotivationalKey, today); err != nil {
		s.logger.Warn("Failed to record motivational marker", zap.Error(err))
	}
}

// claimMarker atomically records a one-shot marker: checks and writes
// under markerMu so concurrent callers claim it at most once in this
// process. A failed write is logged and still counts as claimed.
// Cross-process claims remain last-write-wins.
func (s *Store) claimMarker(ctx context.Context, key string) bool {
	s.markerMu.Lock()
	defer s.markerMu.Unlock()

	if _, err := s.kv.Get(ctx, kv.NamespaceMarkers, key); err == nil {
		return false
	}
	if err := s.kv.Set(ctx, kv.NamespaceMarkers, key, "true"); err != nil {
		s.logger.Warn("Failed to record marker", zap.String("key", key), zap.Error(err))
	}
	return true
}

// welcomeStep is one scheduled onboarding notification.
type welcomeStep struct {
	Title   string
	Message string
	Route   string
}

var welcomeSteps = []welcomeStep{
	{
		Title:   "📝 Step 1: Complete Your Profile",
		Message: "Add your details, subjects, and goals to personalize your experience. Click here to get started!",
		Route:   "/profile",
	},
	{
		Title:   "🧠 Step 2: Take the CPAT Test",
		Message: "Discover your learning style and get personalized recommendations. Click to begin!",
		Route:   "/cpat",
	},
	{
		Title:   "📅 Step 3: Create Your Study Schedule",
		Message: "Plan your study sessions and stay organized. Click to create your first schedule!",
		Route:   "/schedule",
	},
	{
		Title:   "🤖 Step 4: Meet Your AI Tutor",
		Message: "Get instant help with any subject! Click to start chatting with your AI tutor.",
		Route:   "/ai-tutor",
	},
}

// WelcomeJourney emits the one-time onboarding sequence for a new user:
// an immediate welcome plus four delayed steps. The per-user marker is
// claimed up front, so concurrent calls emit a single sequence and an
// interrupted sequence is never resumed.
func (s *Store) WelcomeJourney(ctx context.Context) {
	user := s.currentUser(ctx)
	if user.IsGuest() {
		return
	}

	if !s.claimMarker(ctx, welcomeShownKey(user.Identity())) {
		return
	}

	s.Add(ctx,
		"🎉 Welcome to StudyBuddy!",
		"We're excited to help you on your learning journey! Let's get started by completing your profile.",
		model.TypeMotivational, "/profile", nil)

	go func() {
		for _, step := range welcomeSteps {
			time.Sleep(s.stepDelay)
			s.Add(context.Background(), step.Title, step.Message, model.TypeInfo, step.Route, nil)
		}
	}()
}

// IsNewUser reports whether the welcome journey has not yet run for the
// current user.
func (s *Store) IsNewUser(ctx context.Context) bool {
	user := s.currentUser(ctx)
	if user.IsGuest() {
		return false
	}
	_, err := s.kv.Get(ctx, kv.NamespaceMarkers, welcomeShownKey(user.Identity()))
	return err != nil
}

// ResetWelcomeJourney clears the welcome marker for re-onboarding.
func (s *Store) ResetWelcomeJourney(ctx context.Context) {
	user := s.currentUser(ctx)
	if err := s.kv.Delete(ctx, kv.NamespaceMarkers, welcomeShownKey(user.Identity())); err != nil {
		s.logger.Warn("Failed to reset welcome marker", zap.Error(err))
	}
}

// CheckProfileCompletion nudges the user once about missing profile
// fields. Callers invoke this after their own delay.
func (s *Store) CheckProfileCompletion(ctx context.Context) {
	user := s.currentUser(ctx)
	if user.IsGuest() {
		return
	}
	if user.ProfileComplete() {
		return
	}

	if !s.claimMarker(ctx, profileNudgeKey(user.Identity())) {
		return
	}

	s.Add(ctx,
		"⚠️ Complete Your Profile",
		"Your profile is incomplete! Add your details to unlock personalized features and recommendations.",
		model.TypeWarning, "/profile", nil)
}

// ResetProfileNudge clears the profile-completion marker.
func (s *Store) ResetProfileNudge(ctx context.Context) {
	user := s.currentUser(ctx)
	if err := s.kv.Delete(ctx, kv.NamespaceMarkers, profileNudgeKey(user.Identity())); err != nil {
		s.logger.Warn("Failed to reset profile nudge marker", zap.Error(err))
	}
}
