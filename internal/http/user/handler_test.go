package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foundx/foundx/internal/auth"
	userhandler "github.com/foundx/foundx/internal/http/user"
	"github.com/foundx/foundx/internal/user"
)

func registerServer(t *testing.T, repo *user.MockRepository) *httptest.Server {
	t.Helper()

	svc := user.NewService(repo, auth.NewTokenIssuer("test-secret", time.Hour))

	router := chi.NewRouter()
	router.Route("/users", userhandler.NewHandler(svc).Routes)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func TestHandler_Register_WithStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)
	startupID := uuid.New()

	repo.EXPECT().
		ExistsByEmailOrUsername(gomock.Any(), "ada@example.com", "ada").
		Return(false, nil)

	var created *user.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = uuid.New()
			u.CreatedAt = time.Now()
			created = u
			return nil
		})

	srv := registerServer(t, repo)

	body := `{
		"fullName": "Ada Lovelace",
		"email": "ada@example.com",
		"username": "ada",
		"password": "pw1",
		"startUpId": "` + startupID.String() + `"
	}`
	resp, err := http.Post(srv.URL+"/users/register", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created)
	require.NotNil(t, created.StartupID)
	assert.Equal(t, startupID, *created.StartupID)
}

func TestHandler_Register_WithoutStartup(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := user.NewMockRepository(ctrl)

	repo.EXPECT().
		ExistsByEmailOrUsername(gomock.Any(), "ada@example.com", "ada").
		Return(false, nil)

	var created *user.User
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = uuid.New()
			created = u
			return nil
		})

	srv := registerServer(t, repo)

	body := `{"fullName": "Ada Lovelace", "email": "ada@example.com", "username": "ada", "password": "pw1"}`
	resp, err := http.Post(srv.URL+"/users/register", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created)
	assert.Nil(t, created.StartupID)
}
