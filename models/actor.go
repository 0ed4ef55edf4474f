package models

// Actor identifies who is performing an operation. Every lifecycle and
// reconciliation call receives one explicitly; nothing reads identity from
// ambient state.
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
