package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
	"questbuilder/internal/app/server/api/http/middleware/auth"
	"questbuilder/internal/domain/quest"
	"questbuilder/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username, password, confirm string) (int64, error) {
	args := m.Called(ctx, username, password, confirm)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (user.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionService) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) Save(ctx context.Context, userID int64, in quest.SaveInput) (bool, error) {
	args := m.Called(ctx, userID, in)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestService) List(ctx context.Context, userID int64) ([]quest.Summary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]quest.Summary), args.Error(1)
}

func (m *MockQuestService) Find(ctx context.Context, userID int64, id int64) (*quest.Map, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.Map), args.Error(1)
}

func (m *MockQuestService) Delete(ctx context.Context, userID int64, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockQuestService) Cards(ctx context.Context, userID, mapID int64) ([]string, error) {
	args := m.Called(ctx, userID, mapID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuestService) AttachCard(ctx context.Context, userID, mapID int64, cardID string) error {
	args := m.Called(ctx, userID, mapID, cardID)
	return args.Error(0)
}

func (m *MockQuestService) DetachCard(ctx context.Context, userID, mapID int64, cardID string) error {
	args := m.Called(ctx, userID, mapID, cardID)
	return args.Error(0)
}

func newTestHandler(users *MockUserService, sessions *MockSessionService, quests *MockQuestService) *Handler {
	return NewHandler(users, sessions, quests, "testdata/missing", time.Hour, slog.Default())
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLogin(t *testing.T) {
	t.Run("sets cookie and redirects", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := newTestHandler(users, sessions, nil)

		users.On("Authenticate", mock.Anything, "zargon", "secret").
			Return(user.User{ID: 5, Username: "zargon"}, nil)
		sessions.On("Create", mock.Anything, int64(5)).Return("tok123", nil)

		rec := httptest.NewRecorder()
		h.login(rec, postForm("/login", url.Values{"username": {"zargon"}, "password": {"secret"}}))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		var found bool
		for _, c := range rec.Result().Cookies() {
			if c.Name == auth.CookieName && c.Value == "tok123" {
				found = true
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, found, "session cookie must be set")
	})

	t.Run("bad credentials render 400 message", func(t *testing.T) {
		users := new(MockUserService)
		h := newTestHandler(users, new(MockSessionService), nil)

		users.On("Authenticate", mock.Anything, "zargon", "wrong").
			Return(user.User{}, user.ErrInvalidAuth)

		rec := httptest.NewRecorder()
		h.login(rec, postForm("/login", url.Values{"username": {"zargon"}, "password": {"wrong"}}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid username and/or password")
	})

	t.Run("revokes the presented session first", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := newTestHandler(users, sessions, nil)

		sessions.On("Destroy", mock.Anything, "stale").Return(nil)
		users.On("Authenticate", mock.Anything, "zargon", "secret").
			Return(user.User{ID: 5}, nil)
		sessions.On("Create", mock.Anything, int64(5)).Return("fresh", nil)

		req := postForm("/login", url.Values{"username": {"zargon"}, "password": {"secret"}})
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "stale"})

		rec := httptest.NewRecorder()
		h.login(rec, req)

		sessions.AssertCalled(t, "Destroy", mock.Anything, "stale")
	})
}

func TestRegister(t *testing.T) {
	t.Run("success renders confirmation", func(t *testing.T) {
		users := new(MockUserService)
		h := newTestHandler(users, new(MockSessionService), nil)

		users.On("Register", mock.Anything, "morcar", "pw", "pw").Return(int64(1), nil)

		rec := httptest.NewRecorder()
		h.register(rec, postForm("/register", url.Values{
			"username": {"morcar"}, "password": {"pw"}, "confirmpassword": {"pw"},
		}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Registration successful")
	})

	t.Run("duplicate username", func(t *testing.T) {
		users := new(MockUserService)
		h := newTestHandler(users, new(MockSessionService), nil)

		users.On("Register", mock.Anything, "morcar", "pw", "pw").
			Return(int64(0), user.ErrUsernameTaken)

		rec := httptest.NewRecorder()
		h.register(rec, postForm("/register", url.Values{
			"username": {"morcar"}, "password": {"pw"}, "confirmpassword": {"pw"},
		}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "username already exists")
	})
}

func TestIndex(t *testing.T) {
	t.Run("embeds the board layout", func(t *testing.T) {
		h := newTestHandler(new(MockUserService), new(MockSessionService), new(MockQuestService))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(auth.WithUserID(req.Context(), 5))

		rec := httptest.NewRecorder()
		h.index(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"t":"corridor"`)
	})

	t.Run("loads an owned map on post", func(t *testing.T) {
		quests := new(MockQuestService)
		h := newTestHandler(new(MockUserService), new(MockSessionService), quests)

		quests.On("Find", mock.Anything, int64(5), int64(9)).
			Return(&quest.Map{ID: 9, Title: "The Trial", Author: "Morcar"}, nil)

		req := postForm("/", url.Values{"id": {"9"}})
		req = req.WithContext(auth.WithUserID(req.Context(), 5))

		rec := httptest.NewRecorder()
		h.index(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "The Trial")
	})

	t.Run("missing map renders 404", func(t *testing.T) {
		quests := new(MockQuestService)
		h := newTestHandler(new(MockUserService), new(MockSessionService), quests)

		quests.On("Find", mock.Anything, int64(5), int64(9)).Return(nil, quest.ErrNotFound)

		req := postForm("/", url.Values{"id": {"9"}})
		req = req.WithContext(auth.WithUserID(req.Context(), 5))

		rec := httptest.NewRecorder()
		h.index(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteMap(t *testing.T) {
	quests := new(MockQuestService)
	h := newTestHandler(new(MockUserService), new(MockSessionService), quests)

	quests.On("Delete", mock.Anything, int64(5), int64(3)).Return(nil)

	req := postForm("/delete", url.Values{"id": {"3"}})
	req = req.WithContext(auth.WithUserID(req.Context(), 5))

	rec := httptest.NewRecorder()
	h.deleteMap(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/loadmap", rec.Header().Get("Location"))
}

func TestCardApp_NotBuilt(t *testing.T) {
	h := newTestHandler(new(MockUserService), new(MockSessionService), new(MockQuestService))

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), 5))

	rec := httptest.NewRecorder()
	h.cardApp(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Card builder not built")
}
