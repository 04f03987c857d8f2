package store

import (
	"sync"

	"github.com/onlinedrinkshop/backend/internal/model"
	"github.com/onlinedrinkshop/backend/internal/utils"
)

// AccountStore owns the registered accounts and the current session user.
// At most one session exists at a time; a later register or login simply
// replaces it. All mutation goes through the exported methods, guarded by
// the store's own lock.
type AccountStore struct {
	mu         sync.RWMutex
	users      []model.User
	current    uint64 // id of the session user, 0 when nobody is logged in
	nextID     uint64
	bcryptCost int
}

// NewAccountStore returns an empty account set. bcryptCost is the cost
// factor used when hashing passwords at register and password change.
func NewAccountStore(bcryptCost int) *AccountStore {
	return &AccountStore{nextID: 1, bcryptCost: bcryptCost}
}

// Register creates a new account with the starting balance and makes it
// the session user. Emails are compared with a case-sensitive exact match;
// a duplicate fails with ErrDuplicateEmail and leaves the set unchanged.
func (s *AccountStore) Register(email, password, name string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return model.User{}, ErrDuplicateEmail
		}
	}
	hash, err := utils.HashPassword(password, s.bcryptCost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		ID:           s.nextID,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Tokens:       model.StartingBalance,
	}
	s.nextID++
	s.users = append(s.users, u)
	s.current = u.ID
	return u, nil
}

// Login verifies the credentials and makes the account the session user.
// Both an unknown email and a wrong password fail with
// ErrInvalidCredentials.
func (s *AccountStore) Login(email, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			if !utils.VerifyPassword(u.PasswordHash, password) {
				return model.User{}, ErrInvalidCredentials
			}
			s.current = u.ID
			return u, nil
		}
	}
	return model.User{}, ErrInvalidCredentials
}

// Logout clears the session user. The cart is session-scoped too, but it
// lives in its own store; the facade clears it alongside this call.
func (s *AccountStore) Logout() {
	s.mu.Lock()
	s.current = 0
	s.mu.Unlock()
}

// Current returns the session user, if any.
func (s *AccountStore) Current() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == 0 {
		return model.User{}, false
	}
	for _, u := range s.users {
		if u.ID == s.current {
			return u, true
		}
	}
	return model.User{}, false
}

// ChangePassword verifies the old password of the session user and swaps
// in a hash of the new one.
func (s *AccountStore) ChangePassword(oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == 0 {
		return ErrNoActiveSession
	}
	for n := range s.users {
		if s.users[n].ID == s.current {
			if !utils.VerifyPassword(s.users[n].PasswordHash, oldPassword) {
				return ErrInvalidCredentials
			}
			hash, err := utils.HashPassword(newPassword, s.bcryptCost)
			if err != nil {
				return err
			}
			s.users[n].PasswordHash = hash
			return nil
		}
	}
	return ErrNoActiveSession
}

// TopUp adds amount to the session user's balance and returns the updated
// user. Amounts are not validated; the shop accepts any integer, which
// mirrors the product behavior.
func (s *AccountStore) TopUp(amount int) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == 0 {
		return model.User{}, ErrNoActiveSession
	}
	for n := range s.users {
		if s.users[n].ID == s.current {
			s.users[n].Tokens += amount
			return s.users[n], nil
		}
	}
	return model.User{}, ErrNoActiveSession
}

// Debit subtracts amount from a user's balance. It refuses to let the
// balance go negative so checkout can never overdraw even if a caller
// skipped the pre-check.
func (s *AccountStore) Debit(userID uint64, amount int) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n := range s.users {
		if s.users[n].ID == userID {
			if s.users[n].Tokens < amount {
				return model.User{}, ErrInsufficientFunds
			}
			s.users[n].Tokens -= amount
			return s.users[n], nil
		}
	}
	return model.User{}, ErrNoActiveSession
}

// Count reports how many accounts exist. Used by tests to assert that a
// rejected register left the set unchanged.
func (s *AccountStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
