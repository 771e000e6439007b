package model

import "time"

// Notification types.
const (
	TypeInfo         = "info"
	TypeSuccess      = "success"
	TypeWarning      = "warning"
	TypeMotivational = "motivational"
)

// MaxNotifications 每个用户最多保留的通知数
const MaxNotifications = 50

type Notification struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"` // info / success / warning / motivational
	Timestamp time.Time      `json:"timestamp"`
	Read      bool           `json:"read"`
	Route     string         `json:"route,omitempty"`  // 点击时跳转的路由
	Action    map[string]any `json:"action,omitempty"` // 可选附加数据
}

// Clone returns a copy whose Action map does not alias the receiver's,
// so callers can mutate either side freely.
func (n Notification) Clone() Notification {
	if n.Action != nil {
		action := make(map[string]any, len(n.Action))
		for k, v := range n.Action {
			action[k] = v
		}
		n.Action = action
	}
	return n
}

// ValidType reports whether t is a known notification type.
func ValidType(t string) bool {
	switch t {
	case TypeInfo, TypeSuccess, TypeWarning, TypeMotivational:
		return true
	}
	return false
}
