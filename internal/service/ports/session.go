package ports

// SessionStore is the single source of truth for "is this client
// authenticated". Implementations persist the token pair across runs.
type SessionStore interface {
	SetTokens(access, refresh string) error
	Clear() error
	AccessToken() string
	RefreshToken() string
	IsAuthenticated() bool
}
