package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/kv"
	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/model"
)

// laggyStore adds fixed latency to reads and writes, standing in for a
// networked backend where check-then-act windows are wide.
type laggyStore struct {
	kv.Store
	delay time.Duration
}

func (s *laggyStore) Get(ctx context.Context, namespace, key string) (string, error) {
	time.Sleep(s.delay)
	return s.Store.Get(ctx, namespace, key)
}

func (s *laggyStore) Set(ctx context.Context, namespace, key, value string) error {
	time.Sleep(s.delay)
	return s.Store.Set(ctx, namespace, key, value)
}

func TestWelcomeJourney_EmitsFiveNotificationsWithRoutes(t *testing.T) {
	ctx := context.Background()
	kvs := kv.NewMemory()
	seedMotivationMarker(t, kvs, testDay)
	setCurrentUser(t, kvs, model.User{Email: "newbie@example.com"})
	store := newTestStore(t, kvs, Options{})

	store.WelcomeJourney(ctx)

	// the welcome itself is immediate
	list := store.All()
	require.NotEmpty(t, list)
	assert.Equal(t, "🎉 Welcome to StudyBuddy!", list[0].Title)
	assert.Equal(t, "/profile", list[0].Route)
	assert.Equal(t, model.TypeMotivational, list[0].Type)

	// the four steps follow on their delays
	require.Eventually(t, func() bool {
		return len(store.All()) == 5
	}, 2*time.Second, 5*time.Millisecond)

	list = store.All()
	routes := make([]string, 0, len(list))
	for _, n := range list {
		routes = append(routes, n.Route)
	}
	// newest first: step 4 down to the welcome
	assert.Equal(t, []string{"/ai-tutor", "/schedule", "/cpat", "/profile", "/profile"}, routes)
}

func TestWelcomeJourney_RunsOncePerUser(t *testing.T) {
	ctx := context.Background()
	kvs := kv.NewMemory()
	seedMotivationMarker(t, kvs, testDay)
	setCurrentUser(t, kvs, model.User{Email: "newbie@example.com"})
	store := newTestStore(t, kvs, Options{})

	assert.True(t, store.IsNewUser(ctx))

	store.WelcomeJourney(ctx)
	require.Eventually(t, func() bool {
		return len(store.All()) == 5
	}, 2*time.Second, 5*time.Millisecond)

	assert.False(t, store.IsNewUser(ctx))

	// second invocation adds nothing
	store.WelcomeJourney(ctx)
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, store.All(), 5)
}

func TestWelcomeJourney_ConcurrentCallsEmitOneSequence(t *testing.T) {
	mem := kv.NewMemory()
	seedMotivationMarker(t, mem, testDay)
	setCurrentUser(t, mem, model.User{Email: "newbie@example.com"})
	kvs := &laggyStore{Store: mem, delay: 2 * time.Millisecond}
	store := newTestStore(t, kvs, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.WelcomeJourney(context.Background())
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return len(store.All()) == 5
	}, 2*time.Second, 5*time.Millisecond)

	// no straggler steps from a second sequence
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, store.All(), 5)
}

func TestWelcomeJourney_SkippedForGuest(t *testing.T) {
	ctx := context.Background()
	kvs := kv.NewMemory()
	seedMotivationMarker(t, kvs, testDay)
	store := newTestStore(t, kvs, Options{})

	store.WelcomeJourney(ctx)
	time.Sleep(20 * time.Millisecond)

	assert.Empty(t, store.All())
	assert.False(t, store.IsNewUser(ctx))
}

func TestWelcomeJourney_ResetAllowsReonboarding(t *testing.T) {
	ctx := context.Background()
	kvs := kv.NewMemory()
	seedMotivationMarker(t, kvs, testDay)
	setCurrentUser(t, kvs, model.User{Email: "newbie@example.com"})
	store := newTestStore(t, kvs, Options{})

	store.WelcomeJourney(ctx)
	require.Eventually(t, func() bool {
		return len(store.All()) == 5
	}, 2*time.Second, 5*time.Millisecond)

	store.ResetWelcomeJourney(ctx)
	assert.True(t, store.IsNewUser(ctx))
}

func TestCheckProfileCompletion_NudgesOnce(t *testing.T) {
	ctx := context.Background()
	kvs := kv.NewMemory()
	seedMotivationMarker(t, kvs, testDay)
	setCurrentUser(t, kvs, model.User{Email: "incomplete@example.com"})
	store := newTestStore(t, kvs, Options{})

	store.CheckProfileCompletion(ctx)

	list := store.All()
	require.Len(t, list, 1)
	assert.Equal(t, model.TypeWarning, list[0].Type)
	assert.Equal(t, "/profile", list[0].Route)

	// marker prevents a repeat
	store.CheckProfileCompletion(ctx)
	assert.Len(t, store.All(), 1)
}

func TestCheckProfileCompletion_ConcurrentCallsNudgeOnce(t *testing.T) {
	mem := kv.NewMemory()
	seedMotivationMarker(t, mem, testDay)
	setCurrentUser(t, mem, model.User{Email: "incomplete@example.com"})
	kvs := &laggyStore{Store: mem, delay: 2 * time.Millisecond}
	store := newTestStore(t, kvs, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.CheckProfileCompletion(context.Background())
		}()
	}
	wg.Wait()

	assert.Len(t, store.All(), 1)
}

func TestCheckProfileCompletion_SkipsCompleteProfile(t *testing.T) {
	ctx := context.Background()
	kvs := kv.NewMemory()
	seedMotivationMarker(t, kvs, testDay)
	setCurrentUser(t, kvs, model.User{
		Email:    "done@example.com",
		Phone:    "+1234567890",
		Subjects: []string{"physics"},
		Goals:    []string{"JEE"},
	})
	store := newTestStore(t, kvs, Options{})

	store.CheckProfileCompletion(ctx)
	assert.Empty(t, store.All())
}

func TestCheckProfileCompletion_SkipsGuest(t *testing.T) {
	ctx := context.Background()
	kvs := kv.NewMemory()
	seedMotivationMarker(t, kvs, testDay)
	store := newTestStore(t, kvs, Options{})

	store.CheckProfileCompletion(ctx)
	assert.Empty(t, store.All())
}
