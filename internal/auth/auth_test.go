package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goat-dashboard/internal/auth"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	provider, err := auth.NewStaticProvider(auth.DashboardUsers())
	require.NoError(t, err)
	return auth.NewService(provider)
}

func TestAuthenticate_Success(t *testing.T) {
	svc := newService(t)

	identity, err := svc.Authenticate("alex.employee@goat.media", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user_1", identity.ID)
	assert.Equal(t, "Alex Johnson", identity.Name)
	assert.Equal(t, "employee", identity.Role)
	assert.Equal(t, "Content Creator", identity.Designation)
}

func TestAuthenticate_ExecutiveRole(t *testing.T) {
	svc := newService(t)

	identity, err := svc.Authenticate("mia.exec@goat.media", "password123")

	require.NoError(t, err)
	assert.Equal(t, "user_2", identity.ID)
	assert.Equal(t, "executive", identity.Role)
}

func TestAuthenticate_Failures(t *testing.T) {
	type testCase struct {
		name     string
		email    string
		password string
	}

	// Unknown email and wrong password must be indistinguishable.
	tests := []testCase{
		{name: "UnknownEmail", email: "nobody@goat.media", password: "password123"},
		{name: "WrongPassword", email: "alex.employee@goat.media", password: "hunter2"},
		{name: "EmptyPassword", email: "alex.employee@goat.media", password: ""},
		{name: "EmptyEmail", email: "", password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)

			identity, err := svc.Authenticate(tt.email, tt.password)

			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			assert.Nil(t, identity)
		})
	}
}
