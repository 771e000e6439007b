package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tech-T1tans/StudyBuddy-version-control/internal/notify"
)

// NotificationHandler exposes the notification store over HTTP.
type NotificationHandler struct {
	store  *notify.Store
	sound  *notify.SoundService
	logger *zap.Logger
}

func NewNotificationHandler(store *notify.Store, sound *notify.SoundService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		store:  store,
		sound:  sound,
		logger: logger,
	}
}

// List returns the full list plus the unread count.
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.store.All(),
		"unread_count":  h.store.UnreadCount(),
	})
}

// Unread returns the unread sublist.
func (h *NotificationHandler) Unread(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.store.Unread()})
}

// UnreadCount returns only the count.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.store.UnreadCount()})
}

type createNotificationRequest struct {
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Route   string         `json:"route"`
	Action  map[string]any `json:"action"`
}

// Create adds a notification for the current user.
func (h *NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Title == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and message are required"})
		return
	}

	n := h.store.Add(c.Request.Context(), req.Title, req.Message, req.Type, req.Route, req.Action)
	c.JSON(http.StatusCreated, n)
}

// MarkRead marks one notification read. Unknown ids succeed silently.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.store.MarkRead(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MarkAllRead marks the whole list read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	h.store.MarkAllRead(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Delete removes one notification. Unknown ids succeed silently.
func (h *NotificationHandler) Delete(c *gin.Context) {
	h.store.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Clear empties the current user's list.
func (h *NotificationHandler) Clear(c *gin.Context) {
	h.store.ClearAll(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Sync reloads from storage to pick up another writer's changes.
func (h *NotificationHandler) Sync(c *gin.Context) {
	h.store.Sync(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.store.All(),
		"unread_count":  h.store.UnreadCount(),
	})
}

// Welcome triggers the one-time onboarding journey.
func (h *NotificationHandler) Welcome(c *gin.Context) {
	h.store.WelcomeJourney(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ProfileCheck runs the one-time profile-completion nudge.
func (h *NotificationHandler) ProfileCheck(c *gin.Context) {
	h.store.CheckProfileCompletion(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Cleanup deletes other users' stored lists and reports the count.
func (h *NotificationHandler) Cleanup(c *gin.Context) {
	removed := h.store.CleanupOtherUsers(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// ToggleSound flips the notification sound preference.
func (h *NotificationHandler) ToggleSound(c *gin.Context) {
	enabled := h.sound.Toggle(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"enabled": enabled})
}
