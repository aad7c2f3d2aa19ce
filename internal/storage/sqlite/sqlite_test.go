package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"questbuilder/internal/domain/asset"
	"questbuilder/internal/domain/card"
	"questbuilder/internal/domain/collection"
	"questbuilder/internal/domain/quest"
	"questbuilder/internal/domain/session"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	storage, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	return storage
}

func seedUser(t *testing.T, storage *Storage, username string) int64 {
	t.Helper()

	repo := NewUserRepository(storage, slog.Default())
	id, err := repo.Create(context.Background(), username, "x")
	require.NoError(t, err)

	return id
}

func TestUserRepository(t *testing.T) {
	storage := newTestStorage(t)
	repo := NewUserRepository(storage, slog.Default())
	ctx := context.Background()

	id, err := repo.Create(ctx, "zargon", "hash")
	require.NoError(t, err)
	assert.NotZero(t, id)

	found, err := repo.FindByUsername(ctx, "zargon")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].ID)
	assert.Equal(t, "hash", found[0].Hash)

	// username is unique
	_, err = repo.Create(ctx, "zargon", "other")
	assert.Error(t, err)

	missing, err := repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestSessionRepository(t *testing.T) {
	storage := newTestStorage(t)
	repo := NewSessionRepository(storage, slog.Default())
	ctx := context.Background()
	userID := seedUser(t, storage, "mentor")

	err := repo.Create(ctx, userID, "hash-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	got, err := repo.Validate(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	t.Run("expired", func(t *testing.T) {
		err := repo.Create(ctx, userID, "hash-old", time.Now().Add(-time.Hour))
		require.NoError(t, err)

		_, err = repo.Validate(ctx, "hash-old")
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})

	t.Run("deleted", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "hash-1"))

		_, err := repo.Validate(ctx, "hash-1")
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})
}

func TestCardRepository(t *testing.T) {
	storage := newTestStorage(t)
	repo := NewCardRepository(storage, slog.Default())
	ctx := context.Background()
	userID := seedUser(t, storage, "owner")
	otherID := seedUser(t, storage, "other")

	title := "Skeleton"
	c := &card.Card{
		ID:            "c1",
		TemplateID:    "monster",
		Status:        "draft",
		Name:          "Skeleton",
		NameLower:     "skeleton",
		CreatedAt:     100,
		UpdatedAt:     100,
		SchemaVersion: 1,
		Title:         &title,
	}
	require.NoError(t, repo.Upsert(ctx, userID, c))

	t.Run("find", func(t *testing.T) {
		got, err := repo.Find(ctx, userID, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Skeleton", got.Name)
		require.NotNil(t, got.Title)
		assert.Equal(t, "Skeleton", *got.Title)
		assert.Nil(t, got.Description)
	})

	t.Run("scoped to owner", func(t *testing.T) {
		_, err := repo.Find(ctx, otherID, "c1")
		assert.ErrorIs(t, err, card.ErrNotFound)

		cards, err := repo.List(ctx, otherID, card.Filter{})
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		c2 := *c
		c2.Name = "Skeleton King"
		c2.NameLower = "skeleton king"
		c2.Title = nil
		require.NoError(t, repo.Upsert(ctx, userID, &c2))

		got, err := repo.Find(ctx, userID, "c1")
		require.NoError(t, err)
		assert.Equal(t, "Skeleton King", got.Name)
		assert.Nil(t, got.Title)

		cards, err := repo.List(ctx, userID, card.Filter{})
		require.NoError(t, err)
		assert.Len(t, cards, 1)
	})

	t.Run("partial update", func(t *testing.T) {
		err := repo.UpdateFields(ctx, userID, "c1",
			map[string]any{"status": "final", "hero_body_points": float64(6)}, 200)
		require.NoError(t, err)

		got, err := repo.Find(ctx, userID, "c1")
		require.NoError(t, err)
		assert.Equal(t, "final", got.Status)
		require.NotNil(t, got.HeroBodyPoints)
		assert.Equal(t, int64(6), *got.HeroBodyPoints)
		assert.Equal(t, int64(200), got.UpdatedAt)
		// untouched column keeps its value
		assert.Equal(t, "Skeleton King", got.Name)
	})

	t.Run("list filters", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, userID, &card.Card{
			ID: "c2", TemplateID: "hero", Status: "draft",
			Name: "Barbarian", NameLower: "barbarian",
			CreatedAt: 150, UpdatedAt: 300, SchemaVersion: 1,
		}))

		cards, err := repo.List(ctx, userID, card.Filter{TemplateID: "hero"})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "c2", cards[0].ID)

		cards, err = repo.List(ctx, userID, card.Filter{Search: "BARB"})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "c2", cards[0].ID)

		// newest updated_at first
		cards, err = repo.List(ctx, userID, card.Filter{})
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, "c2", cards[0].ID)
	})

	t.Run("bulk delete reports actual count", func(t *testing.T) {
		n, err := repo.DeleteMany(ctx, userID, []string{"c1", "c2", "ghost"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, userID, "ghost"))
	})
}

func TestAssetRepository(t *testing.T) {
	storage := newTestStorage(t)
	repo := NewAssetRepository(storage, slog.Default())
	ctx := context.Background()
	userID := seedUser(t, storage, "owner")
	otherID := seedUser(t, storage, "other")

	a := &asset.Asset{ID: "a1", Name: "gargoyle.png", MimeType: "image/png", Width: 64, Height: 64, CreatedAt: 100}
	require.NoError(t, repo.Upsert(ctx, userID, a, []byte{0x89, 0x50, 0x4e, 0x47}))

	t.Run("blob round trip", func(t *testing.T) {
		blob, err := repo.FindBlob(ctx, userID, "a1")
		require.NoError(t, err)
		assert.Equal(t, "gargoyle.png", blob.Name)
		assert.Equal(t, "image/png", blob.MimeType)
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, blob.Data)
	})

	t.Run("scoped to owner", func(t *testing.T) {
		_, err := repo.FindBlob(ctx, otherID, "a1")
		assert.ErrorIs(t, err, asset.ErrNotFound)
	})

	t.Run("list without blob bytes", func(t *testing.T) {
		assets, err := repo.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, int64(64), assets[0].Width)
	})

	t.Run("bulk delete", func(t *testing.T) {
		n, err := repo.DeleteMany(ctx, userID, []string{"a1", "ghost"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestCollectionRepository(t *testing.T) {
	storage := newTestStorage(t)
	repo := NewCollectionRepository(storage, slog.Default())
	ctx := context.Background()
	userID := seedUser(t, storage, "owner")

	require.NoError(t, repo.Upsert(ctx, userID, &collection.Collection{
		ID: "col1", Name: "beta", CardIDs: []string{"c1", "c2"},
		CreatedAt: 1, UpdatedAt: 1, SchemaVersion: 1,
	}))
	require.NoError(t, repo.Upsert(ctx, userID, &collection.Collection{
		ID: "col2", Name: "Alpha", CardIDs: []string{},
		CreatedAt: 2, UpdatedAt: 2, SchemaVersion: 1,
	}))

	t.Run("card ids round trip", func(t *testing.T) {
		got, err := repo.Find(ctx, userID, "col1")
		require.NoError(t, err)
		assert.Equal(t, []string{"c1", "c2"}, got.CardIDs)

		empty, err := repo.Find(ctx, userID, "col2")
		require.NoError(t, err)
		assert.Equal(t, []string{}, empty.CardIDs)
	})

	t.Run("list is case-insensitive by name", func(t *testing.T) {
		collections, err := repo.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, collections, 2)
		assert.Equal(t, "Alpha", collections[0].Name)
		assert.Equal(t, "beta", collections[1].Name)
	})

	t.Run("partial update of card ids", func(t *testing.T) {
		err := repo.UpdateFields(ctx, userID, "col1",
			map[string]any{"card_ids": `["c9"]`}, 50)
		require.NoError(t, err)

		got, err := repo.Find(ctx, userID, "col1")
		require.NoError(t, err)
		assert.Equal(t, []string{"c9"}, got.CardIDs)
		assert.Equal(t, int64(50), got.UpdatedAt)
		assert.Equal(t, "beta", got.Name)
	})
}

func TestQuestRepository(t *testing.T) {
	storage := newTestStorage(t)
	repo := NewQuestRepository(storage, slog.Default())
	ctx := context.Background()
	userID := seedUser(t, storage, "owner")
	otherID := seedUser(t, storage, "other")

	in := quest.SaveInput{
		Title: "The Trial", Author: "Morcar",
		Story: "once", Notes: "none", WMonster: "gargoyle", Cells: "[[]]",
	}
	id, err := repo.Insert(ctx, userID, in, time.Now())
	require.NoError(t, err)

	t.Run("find by key", func(t *testing.T) {
		got, err := repo.FindByKey(ctx, userID, "The Trial", "Morcar")
		require.NoError(t, err)
		assert.Equal(t, id, got)

		_, err = repo.FindByKey(ctx, userID, "The Trial", "Someone Else")
		assert.ErrorIs(t, err, quest.ErrNotFound)

		_, err = repo.FindByKey(ctx, otherID, "The Trial", "Morcar")
		assert.ErrorIs(t, err, quest.ErrNotFound)
	})

	t.Run("update content keeps key", func(t *testing.T) {
		in2 := in
		in2.Story = "rewritten"
		require.NoError(t, repo.UpdateContent(ctx, id, in2, time.Now()))

		got, err := repo.Find(ctx, userID, id)
		require.NoError(t, err)
		assert.Equal(t, "rewritten", got.Story)
		assert.Equal(t, "The Trial", got.Title)
	})

	t.Run("quest cards", func(t *testing.T) {
		cardRepo := NewCardRepository(storage, slog.Default())
		require.NoError(t, cardRepo.Upsert(ctx, userID, &card.Card{
			ID: "c1", TemplateID: "monster", Status: "draft",
			Name: "Mummy", NameLower: "mummy",
			CreatedAt: 1, UpdatedAt: 1, SchemaVersion: 1,
		}))

		require.NoError(t, repo.AttachCard(ctx, userID, id, "c1", 10))
		// re-attach does not duplicate
		require.NoError(t, repo.AttachCard(ctx, userID, id, "c1", 20))

		ids, err := repo.ListCards(ctx, userID, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"c1"}, ids)

		require.NoError(t, repo.DetachCard(ctx, userID, id, "c1"))

		ids, err = repo.ListCards(ctx, userID, id)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("attach unknown card", func(t *testing.T) {
		err := repo.AttachCard(ctx, userID, id, "no-such-card", 30)
		assert.ErrorIs(t, err, quest.ErrUnknownCard)
	})

	t.Run("delete scoped to owner", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, otherID, id))

		_, err := repo.Find(ctx, userID, id)
		assert.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, userID, id))

		_, err = repo.Find(ctx, userID, id)
		assert.ErrorIs(t, err, quest.ErrNotFound)
	})
}
