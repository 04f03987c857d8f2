package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlinedrinkshop/backend/internal/model"
)

// testBcryptCost keeps hashing cheap in tests.
const testBcryptCost = 4

func TestRegister(t *testing.T) {
	accounts := NewAccountStore(testBcryptCost)

	u, err := accounts.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)
	assert.Equal(t, model.StartingBalance, u.Tokens)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEmpty(t, u.ID)

	current, ok := accounts.Current()
	assert.True(t, ok, "register opens a session")
	assert.Equal(t, u.ID, current.ID)
}

func TestRegisterDuplicateEmailLeavesSetUnchanged(t *testing.T) {
	accounts := NewAccountStore(testBcryptCost)
	first, err := accounts.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)

	_, err = accounts.Register("a@x.com", "other", "Impostor")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, accounts.Count())

	current, ok := accounts.Current()
	assert.True(t, ok)
	assert.Equal(t, first.ID, current.ID, "failed register must not touch the session")
}

func TestRegisterEmailMatchIsCaseSensitive(t *testing.T) {
	accounts := NewAccountStore(testBcryptCost)
	_, err := accounts.Register("A@x.com", "p", "Ann")
	require.NoError(t, err)

	// Differs only in case, so it is a different account.
	_, err = accounts.Register("a@x.com", "p", "Andy")
	assert.NoError(t, err)
	assert.Equal(t, 2, accounts.Count())
}

func TestLogin(t *testing.T) {
	accounts := NewAccountStore(testBcryptCost)
	registered, err := accounts.Register("a@x.com", "secret", "Ann")
	require.NoError(t, err)
	accounts.Logout()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "unknown email", email: "b@x.com", password: "secret", wantErr: ErrInvalidCredentials},
		{name: "wrong password", email: "a@x.com", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "valid credentials", email: "a@x.com", password: "secret"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			u, err := accounts.Login(testCase.email, testCase.password)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				_, ok := accounts.Current()
				assert.False(t, ok, "failed login must not open a session")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.ID, u.ID)
			current, ok := accounts.Current()
			assert.True(t, ok)
			assert.Equal(t, registered.ID, current.ID)
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	accounts := NewAccountStore(testBcryptCost)
	_, err := accounts.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)

	accounts.Logout()
	_, ok := accounts.Current()
	assert.False(t, ok)
}

func TestTopUp(t *testing.T) {
	accounts := NewAccountStore(testBcryptCost)

	_, err := accounts.TopUp(50)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = accounts.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)

	u, err := accounts.TopUp(50)
	require.NoError(t, err)
	assert.Equal(t, 150, u.Tokens)

	// Negative amounts are accepted; the shop never validates top-up
	// amounts.
	u, err = accounts.TopUp(-30)
	require.NoError(t, err)
	assert.Equal(t, 120, u.Tokens)
}

func TestChangePassword(t *testing.T) {
	accounts := NewAccountStore(testBcryptCost)

	err := accounts.ChangePassword("old", "new")
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = accounts.Register("a@x.com", "old", "Ann")
	require.NoError(t, err)

	err = accounts.ChangePassword("wrong", "new")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = accounts.ChangePassword("old", "new")
	require.NoError(t, err)

	accounts.Logout()
	_, err = accounts.Login("a@x.com", "old")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = accounts.Login("a@x.com", "new")
	assert.NoError(t, err)
}

func TestDebitNeverOverdraws(t *testing.T) {
	accounts := NewAccountStore(testBcryptCost)
	u, err := accounts.Register("a@x.com", "p", "Ann")
	require.NoError(t, err)

	_, err = accounts.Debit(u.ID, model.StartingBalance+1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	got, err := accounts.Debit(u.ID, model.StartingBalance)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Tokens)
}
