package domain

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Tokens is the credential pair returned by a successful login. The refresh
// token is stored alongside the access token but is otherwise inert here.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
