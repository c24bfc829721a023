package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so callers cannot tell registered addresses apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the reduced user identity handed out after authentication.
// It never carries the password.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Designation string `json:"designation"`
}

// Credential pairs an identity with its password digest
type Credential struct {
	Identity
	passwordHash []byte
}

// CredentialProvider resolves an email address to a stored credential.
// The static fixture table implements it today; a real identity backend can
// be substituted without touching call sites.
type CredentialProvider interface {
	Lookup(email string) (*Credential, bool)
}

// StaticProvider is a fixed in-memory credential table
type StaticProvider struct {
	creds map[string]*Credential
}

// SeedUser is a provider seed entry
type SeedUser struct {
	Identity
	Password string
}

// NewStaticProvider builds a provider from the given users. Plaintext
// passwords are hashed at construction and discarded.
func NewStaticProvider(users []SeedUser) (*StaticProvider, error) {
	creds := make(map[string]*Credential, len(users))
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		creds[u.Email] = &Credential{Identity: u.Identity, passwordHash: hash}
	}
	return &StaticProvider{creds: creds}, nil
}

// Lookup implements CredentialProvider
func (p *StaticProvider) Lookup(email string) (*Credential, bool) {
	c, ok := p.creds[email]
	return c, ok
}

// DashboardUsers returns the fixture credential table for the two dashboard
// accounts.
func DashboardUsers() []SeedUser {
	return []SeedUser{
		{
			Identity: Identity{
				ID:          "user_1",
				Email:       "alex.employee@goat.media",
				Name:        "Alex Johnson",
				Role:        "employee",
				Designation: "Content Creator",
			},
			Password: "password123",
		},
		{
			Identity: Identity{
				ID:          "user_2",
				Email:       "mia.exec@goat.media",
				Name:        "Mia Rodriguez",
				Role:        "executive",
				Designation: "Executive Director",
			},
			Password: "password123",
		},
	}
}

// Service authenticates users against a credential provider
type Service struct {
	provider CredentialProvider
}

// NewService creates an authentication service
func NewService(provider CredentialProvider) *Service {
	return &Service{provider: provider}
}

// Authenticate verifies the email/password pair and returns the matching
// identity. Every failure cause collapses into ErrInvalidCredentials.
func (s *Service) Authenticate(email, password string) (*Identity, error) {
	cred, ok := s.provider.Lookup(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	identity := cred.Identity
	return &identity, nil
}
