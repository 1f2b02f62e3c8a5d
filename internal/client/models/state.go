package models

// AuthStatus is the coarse state the UI gate switches on.
type AuthStatus int

const (
	// StatusUnknown holds until the first auth check finishes.
	StatusUnknown AuthStatus = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s AuthStatus) String() string {
	switch s {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// AuthState is the snapshot of the current authentication status.
//
// After every completed transition IsAuthenticated is true exactly when both
// User and Session are set. An empty Error means no error.
type AuthState struct {
	User            *User
	Session         *Session
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// Clone returns a deep copy so callers cannot mutate store internals.
func (s AuthState) Clone() AuthState {
	s.User = s.User.Clone()
	s.Session = s.Session.Clone()
	return s
}
