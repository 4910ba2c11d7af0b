package domain

// User is the authenticated profile returned by the auth provider.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Image     string `json:"image"`
}

// FullName joins first and last name for checkout auto-fill.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Credentials is the login payload for the auth provider.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
