package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int64, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func TestService_CreateAndValidate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, 24*time.Hour, slog.Default())

	var storedHash string
	mockRepo.On("Create", mock.Anything, int64(7), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)

	token, err := service.Create(context.Background(), 7)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	// the raw token must never be what gets persisted
	assert.NotEqual(t, token, storedHash)
	assert.Len(t, storedHash, 64)

	mockRepo.On("Validate", mock.Anything, storedHash).Return(int64(7), nil)
	userID, err := service.Validate(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestService_Validate_EmptyToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, 24*time.Hour, slog.Default())

	_, err := service.Validate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidSession)
	mockRepo.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestService_Destroy(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, 24*time.Hour, slog.Default())

	mockRepo.On("Delete", mock.Anything, hashToken("some-token")).Return(nil)
	assert.NoError(t, service.Destroy(context.Background(), "some-token"))

	// destroying nothing is fine
	assert.NoError(t, service.Destroy(context.Background(), ""))
	mockRepo.AssertExpectations(t)
}

func TestService_TokensAreUnique(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, time.Hour, slog.Default())

	mockRepo.On("Create", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(nil)

	t1, err := service.Create(context.Background(), 1)
	assert.NoError(t, err)
	t2, err := service.Create(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}
