package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
	"questbuilder/internal/utils/ident"
)

type Servicer interface {
	List(ctx context.Context, userID int64, f Filter) ([]Card, error)
	Find(ctx context.Context, userID int64, id string) (*Card, error)
	Create(ctx context.Context, userID int64, payload map[string]any) (*Card, error)
	Update(ctx context.Context, userID int64, id string, payload map[string]any) (*Card, error)
	Delete(ctx context.Context, userID int64, id string) error
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

func (s *Service) List(ctx context.Context, userID int64, f Filter) ([]Card, error) {
	return s.repo.List(ctx, userID, f)
}

func (s *Service) Find(ctx context.Context, userID int64, id string) (*Card, error) {
	return s.repo.Find(ctx, userID, id)
}

// Create saves a card from a client payload. The write is an upsert:
// resubmitting the same client-chosen id replaces the previous row, which
// keeps retries safe for the offline-first client.
func (s *Service) Create(ctx context.Context, userID int64, payload map[string]any) (*Card, error) {
	name := strField(payload, "name")
	templateID := strField(payload, "templateId")
	status := strField(payload, "status")
	if name == "" || templateID == "" || status == "" {
		return nil, ErrMissingFields
	}

	id := strField(payload, "id")
	if id == "" {
		id = ident.New()
	}

	now := time.Now().UnixMilli()
	c := &Card{
		ID:            id,
		TemplateID:    templateID,
		Status:        status,
		Name:          name,
		NameLower:     strField(payload, "nameLower"),
		CreatedAt:     intField(payload, "createdAt", now),
		UpdatedAt:     intField(payload, "updatedAt", now),
		SchemaVersion: intField(payload, "schemaVersion", 1),

		Title:       optStr(payload, "title"),
		Description: optStr(payload, "description"),

		ImageAssetID:        optStr(payload, "imageAssetId"),
		ImageAssetName:      optStr(payload, "imageAssetName"),
		ImageScale:          optFloat(payload, "imageScale"),
		ImageOffsetX:        optFloat(payload, "imageOffsetX"),
		ImageOffsetY:        optFloat(payload, "imageOffsetY"),
		ImageOriginalWidth:  optFloat(payload, "imageOriginalWidth"),
		ImageOriginalHeight: optFloat(payload, "imageOriginalHeight"),

		HeroAttackDice: optInt(payload, "heroAttackDice"),
		HeroDefendDice: optInt(payload, "heroDefendDice"),
		HeroBodyPoints: optInt(payload, "heroBodyPoints"),
		HeroMindPoints: optInt(payload, "heroMindPoints"),

		MonsterMovementSquares: optInt(payload, "monsterMovementSquares"),
		MonsterAttackDice:      optInt(payload, "monsterAttackDice"),
		MonsterDefendDice:      optInt(payload, "monsterDefendDice"),
		MonsterBodyPoints:      optInt(payload, "monsterBodyPoints"),
		MonsterMindPoints:      optInt(payload, "monsterMindPoints"),
		MonsterIconAssetID:     optStr(payload, "monsterIconAssetId"),
		MonsterIconAssetName:   optStr(payload, "monsterIconAssetName"),

		ThumbnailDataURL: optStr(payload, "thumbnailDataUrl"),
	}
	if c.NameLower == "" {
		c.NameLower = strings.ToLower(name)
	}

	if err := s.repo.Upsert(ctx, userID, c); err != nil {
		return nil, fmt.Errorf("upsert card: %w", err)
	}

	return s.repo.Find(ctx, userID, c.ID)
}

// Update applies a partial update: only keys present in the payload are
// written. updated_at always advances, even for an empty delta.
func (s *Service) Update(ctx context.Context, userID int64, id string, payload map[string]any) (*Card, error) {
	if _, err := s.repo.Find(ctx, userID, id); err != nil {
		return nil, err
	}

	if _, ok := payload["name"]; ok {
		if _, ok := payload["nameLower"]; !ok {
			payload["nameLower"] = strings.ToLower(strField(payload, "name"))
		}
	}

	cols := make(map[string]any, len(payload))
	for key, col := range fieldColumns {
		if v, ok := payload[key]; ok {
			cols[col] = v
		}
	}

	if err := s.repo.UpdateFields(ctx, userID, id, cols, time.Now().UnixMilli()); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}

	return s.repo.Find(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID int64, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// DeleteMany removes the caller's cards among ids and reports how many rows
// actually went away; ids that do not exist (or belong to someone else) are
// skipped silently.
func (s *Service) DeleteMany(ctx context.Context, userID int64, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.repo.DeleteMany(ctx, userID, ids)
}
