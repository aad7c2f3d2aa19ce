package quest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Save(ctx context.Context, userID int64, in SaveInput) (created bool, err error)
	List(ctx context.Context, userID int64) ([]Summary, error)
	Find(ctx context.Context, userID int64, id int64) (*Map, error)
	Delete(ctx context.Context, userID int64, id int64) error
	Cards(ctx context.Context, userID, mapID int64) ([]string, error)
	AttachCard(ctx context.Context, userID, mapID int64, cardID string) error
	DetachCard(ctx context.Context, userID, mapID int64, cardID string) error
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

// Save upserts on the (user, title, author) triple: a known triple gets its
// content overwritten in place, a novel one becomes a new row. The returned
// flag tells the caller which happened.
func (s *Service) Save(ctx context.Context, userID int64, in SaveInput) (bool, error) {
	if in.Title == "" || in.Author == "" {
		return false, ErrMissingTitle
	}

	date := time.Now()

	id, err := s.repo.FindByKey(ctx, userID, in.Title, in.Author)
	switch {
	case err == nil:
		if err := s.repo.UpdateContent(ctx, id, in, date); err != nil {
			return false, fmt.Errorf("update map: %w", err)
		}
		s.log.Info("map updated", slog.Int64("id", id), slog.String("title", in.Title))
		return false, nil
	case errors.Is(err, ErrNotFound):
		id, err := s.repo.Insert(ctx, userID, in, date)
		if err != nil {
			return false, fmt.Errorf("insert map: %w", err)
		}
		s.log.Info("map created", slog.Int64("id", id), slog.String("title", in.Title))
		return true, nil
	default:
		return false, fmt.Errorf("lookup map: %w", err)
	}
}

func (s *Service) List(ctx context.Context, userID int64) ([]Summary, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) Find(ctx context.Context, userID int64, id int64) (*Map, error) {
	return s.repo.Find(ctx, userID, id)
}

// Delete is owner-scoped; deleting someone else's (or no) map is a no-op.
func (s *Service) Delete(ctx context.Context, userID int64, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) Cards(ctx context.Context, userID, mapID int64) ([]string, error) {
	if _, err := s.repo.Find(ctx, userID, mapID); err != nil {
		return nil, err
	}
	return s.repo.ListCards(ctx, userID, mapID)
}

func (s *Service) AttachCard(ctx context.Context, userID, mapID int64, cardID string) error {
	if _, err := s.repo.Find(ctx, userID, mapID); err != nil {
		return err
	}
	return s.repo.AttachCard(ctx, userID, mapID, cardID, time.Now().UnixMilli())
}

func (s *Service) DetachCard(ctx context.Context, userID, mapID int64, cardID string) error {
	if _, err := s.repo.Find(ctx, userID, mapID); err != nil {
		return err
	}
	return s.repo.DetachCard(ctx, userID, mapID, cardID)
}
