package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username, password, confirm string) (int64, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Register validates the credential form and stores a salted hash. The new
// user is not logged in; the caller still has to go through Authenticate.
func (s *Service) Register(ctx context.Context, username, password, confirm string) (int64, error) {
	switch {
	case username == "":
		return 0, ErrUsernameRequired
	case password == "":
		return 0, ErrPasswordRequired
	case confirm == "":
		return 0, ErrConfirmRequired
	case confirm != password:
		return 0, ErrPasswordMismatch
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("lookup username: %w", err)
	}
	if len(existing) > 0 {
		return 0, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, username, string(hash))
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", slog.String("username", username))
	return id, nil
}

// Authenticate returns ErrInvalidAuth for an unknown username, an ambiguous
// username and a wrong password alike; the message never tells which.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if username == "" {
		return User{}, ErrUsernameRequired
	}
	if password == "" {
		return User{}, ErrPasswordRequired
	}

	rows, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return User{}, fmt.Errorf("lookup username: %w", err)
	}
	if len(rows) != 1 {
		s.log.Debug("login rejected", slog.String("username", username), slog.Int("matches", len(rows)))
		return User{}, ErrInvalidAuth
	}

	u := rows[0]
	if err := bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}
