package model

// User represents a registered account. Accounts are only ever appended to
// the account set and never removed; the token balance is the single
// mutable field and changes through top-ups and order placement.
//
// Fields:
//  ID           – numeric identifier of the user.
//  Email        – unique email address (matched case-sensitively).
//  Name         – display name shown on the profile screen.
//  PasswordHash – bcrypt hashed password.
//  Tokens       – in-app currency balance; never negative after checkout.
type User struct {
	ID           uint64 `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Tokens       int    `json:"tokens"`
}

// StartingBalance is granted to every freshly registered account.
const StartingBalance = 100
