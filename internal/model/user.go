package model

// GuestUserID 未登录时使用的用户标识
const GuestUserID = "guest"

// User is the current-user object the rest of the app persists.
// The notification store only cares about identity and the profile
// fields the completion nudge checks.
type User struct {
	Email    string   `json:"email,omitempty"`
	Username string   `json:"username,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Subjects []string `json:"subjects,omitempty"`
	Goals    []string `json:"goals,omitempty"`
}

// Identity returns the string used to namespace persisted state:
// email, else username, else "guest".
func (u User) Identity() string {
	if u.Email != "" {
		return u.Email
	}
	if u.Username != "" {
		return u.Username
	}
	return GuestUserID
}

// IsGuest reports whether the user has no real identity.
func (u User) IsGuest() bool {
	return u.Identity() == GuestUserID
}

// ProfileComplete reports whether the required profile fields are filled in.
func (u User) ProfileComplete() bool {
	return u.Email != "" && u.Phone != "" && len(u.Subjects) > 0 && len(u.Goals) > 0
}
