package collection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, userID int64) ([]Collection, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Collection), args.Error(1)
}

func (m *MockRepository) Find(ctx context.Context, userID int64, id string) (*Collection, error) {
	args := m.Called(ctx, userID, id)
	if c := args.Get(0); c != nil {
		return c.(*Collection), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Upsert(ctx context.Context, userID int64, c *Collection) error {
	args := m.Called(ctx, userID, c)
	return args.Error(0)
}

func (m *MockRepository) UpdateFields(ctx context.Context, userID int64, id string, cols map[string]any, updatedAt int64) error {
	args := m.Called(ctx, userID, id, cols, updatedAt)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID int64, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func TestService_Create_Defaults(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	var saved *Collection
	mockRepo.On("Upsert", mock.Anything, int64(1), mock.AnythingOfType("*collection.Collection")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*Collection) }).
		Return(nil)
	mockRepo.On("Find", mock.Anything, int64(1), mock.AnythingOfType("string")).Return(&Collection{}, nil)

	_, err := service.Create(context.Background(), 1, map[string]any{"name": "Undead"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Len(t, saved.ID, 32)
	assert.Equal(t, []string{}, saved.CardIDs, "absent cardIds becomes an empty list")
	assert.Equal(t, int64(1), saved.SchemaVersion)
	assert.Nil(t, saved.Description)
}

func TestService_Create_MissingName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Create(context.Background(), 1, map[string]any{"description": "no name"})
	assert.ErrorIs(t, err, ErrMissingName)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_EncodesCardIDs(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Find", mock.Anything, int64(1), "col1").Return(&Collection{ID: "col1"}, nil)
	mockRepo.On("UpdateFields", mock.Anything, int64(1), "col1",
		map[string]any{"card_ids": `["a","b"]`},
		mock.AnythingOfType("int64")).Return(nil)

	_, err := service.Update(context.Background(), 1, "col1", map[string]any{
		"cardIds": []any{"a", "b"},
	})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_NullCardIDsBecomesEmptyList(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Find", mock.Anything, int64(1), "col1").Return(&Collection{ID: "col1"}, nil)
	mockRepo.On("UpdateFields", mock.Anything, int64(1), "col1",
		map[string]any{"card_ids": `[]`},
		mock.AnythingOfType("int64")).Return(nil)

	_, err := service.Update(context.Background(), 1, "col1", map[string]any{"cardIds": nil})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Find", mock.Anything, int64(1), "missing").Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), 1, "missing", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
