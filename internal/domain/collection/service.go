package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
	"questbuilder/internal/utils/ident"
)

// fieldColumns is the wire-to-storage name table for writable collection
// fields. cardIds is JSON-encoded before it reaches the column.
var fieldColumns = map[string]string{
	"name":          "name",
	"description":   "description",
	"cardIds":       "card_ids",
	"schemaVersion": "schema_version",
	"createdAt":     "created_at",
}

type Servicer interface {
	List(ctx context.Context, userID int64) ([]Collection, error)
	Find(ctx context.Context, userID int64, id string) (*Collection, error)
	Create(ctx context.Context, userID int64, payload map[string]any) (*Collection, error)
	Update(ctx context.Context, userID int64, id string, payload map[string]any) (*Collection, error)
	Delete(ctx context.Context, userID int64, id string) error
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

func (s *Service) List(ctx context.Context, userID int64) ([]Collection, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) Find(ctx context.Context, userID int64, id string) (*Collection, error) {
	return s.repo.Find(ctx, userID, id)
}

// Create upserts a collection; same retry-safe overwrite semantics as cards.
func (s *Service) Create(ctx context.Context, userID int64, payload map[string]any) (*Collection, error) {
	name, _ := payload["name"].(string)
	if name == "" {
		return nil, ErrMissingName
	}

	id, _ := payload["id"].(string)
	if id == "" {
		id = ident.New()
	}

	now := time.Now().UnixMilli()
	c := &Collection{
		ID:            id,
		Name:          name,
		CardIDs:       toStringList(payload["cardIds"]),
		CreatedAt:     defaultInt(payload["createdAt"], now),
		UpdatedAt:     defaultInt(payload["updatedAt"], now),
		SchemaVersion: defaultInt(payload["schemaVersion"], 1),
	}
	if d, ok := payload["description"].(string); ok {
		c.Description = &d
	}

	if err := s.repo.Upsert(ctx, userID, c); err != nil {
		return nil, fmt.Errorf("upsert collection: %w", err)
	}

	return s.repo.Find(ctx, userID, id)
}

// Update applies a key-presence partial update and refreshes updated_at.
func (s *Service) Update(ctx context.Context, userID int64, id string, payload map[string]any) (*Collection, error) {
	if _, err := s.repo.Find(ctx, userID, id); err != nil {
		return nil, err
	}

	cols := make(map[string]any, len(payload))
	for key, col := range fieldColumns {
		v, ok := payload[key]
		if !ok {
			continue
		}
		if key == "cardIds" {
			encoded, err := json.Marshal(toStringList(v))
			if err != nil {
				return nil, fmt.Errorf("encode card ids: %w", err)
			}
			v = string(encoded)
		}
		cols[col] = v
	}

	if err := s.repo.UpdateFields(ctx, userID, id, cols, time.Now().UnixMilli()); err != nil {
		return nil, fmt.Errorf("update collection: %w", err)
	}

	return s.repo.Find(ctx, userID, id)
}

// Delete is idempotent; removing an absent collection still succeeds.
func (s *Service) Delete(ctx context.Context, userID int64, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func toStringList(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func defaultInt(v any, def int64) int64 {
	if f, ok := v.(float64); ok && f != 0 {
		return int64(f)
	}
	return def
}
