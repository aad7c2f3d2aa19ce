package asset

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/slog"
	"questbuilder/internal/utils/ident"
)

type Servicer interface {
	List(ctx context.Context, userID int64) ([]Asset, error)
	Find(ctx context.Context, userID int64, id string) (*Asset, error)
	Blob(ctx context.Context, userID int64, id string) (*Blob, error)
	Store(ctx context.Context, userID int64, up Upload) (*Asset, error)
	DeleteMany(ctx context.Context, userID int64, ids []string) (int64, error)
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

func (s *Service) List(ctx context.Context, userID int64) ([]Asset, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) Find(ctx context.Context, userID int64, id string) (*Asset, error) {
	return s.repo.Find(ctx, userID, id)
}

// Blob returns the stored bytes with a download name: the stored display
// name when there is one, "<id>.bin" otherwise.
func (s *Service) Blob(ctx context.Context, userID int64, id string) (*Blob, error) {
	b, err := s.repo.FindBlob(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if b.Name == "" {
		b.Name = id + ".bin"
	}
	return b, nil
}

// Store validates and persists one upload. Like card creation this is an
// upsert on the client-chosen id.
func (s *Service) Store(ctx context.Context, userID int64, up Upload) (*Asset, error) {
	if up.Data == nil {
		return nil, ErrMissingFile
	}

	id := up.ID
	if id == "" {
		id = ident.New()
	}
	name := up.Name
	if name == "" {
		name = up.Filename
	}
	mimeType := up.MimeType
	if mimeType == "" {
		mimeType = up.FileMime
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	if name == "" || up.Width == "" || up.Height == "" {
		return nil, ErrMissingMetadata
	}

	width, werr := strconv.ParseInt(up.Width, 10, 64)
	height, herr := strconv.ParseInt(up.Height, 10, 64)
	if werr != nil || herr != nil {
		return nil, ErrInvalidDimensions
	}

	a := &Asset{
		ID:        id,
		Name:      name,
		MimeType:  mimeType,
		Width:     width,
		Height:    height,
		CreatedAt: time.Now().UnixMilli(),
	}
	if err := s.repo.Upsert(ctx, userID, a, up.Data); err != nil {
		return nil, fmt.Errorf("upsert asset: %w", err)
	}

	s.log.Debug("asset stored", slog.String("id", id), slog.Int("bytes", len(up.Data)))
	return s.repo.Find(ctx, userID, id)
}

func (s *Service) DeleteMany(ctx context.Context, userID int64, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.repo.DeleteMany(ctx, userID, ids)
}
