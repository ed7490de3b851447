package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       int64  `json:"-" db:"id"`
	Login    string `json:"login" db:"login"`
	Password string `json:"password,omitempty" db:"password_hash"`
	Role     string `json:"role" db:"role"`
}

// Actor is the authenticated (userID, role) pair supplied by the session
// layer. Services check capabilities against it, they never re-authenticate.
type Actor struct {
	ID   int64
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
