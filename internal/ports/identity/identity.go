package identity

// Identity is the resolved caller, taken from a verified provider session.
// A nil *Identity means the request is unauthenticated; operations that
// mutate state fail closed on nil.
type Identity struct {
	UserID       string
	Email        string
	FirstName    string
	LastName     string
	ProfileImage string
}
