package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foundx/foundx/internal/auth"
	"github.com/foundx/foundx/internal/user"
)

func testIssuer() *auth.TokenIssuer {
	return auth.NewTokenIssuer("test-secret", time.Hour)
}

func TestService_Register(t *testing.T) {
	type testCase struct {
		name      string
		params    user.RegisterParams
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: user.RegisterParams{
				FullName: "Ada Lovelace",
				Email:    "Ada@Example.com",
				Username: "Ada",
				Password: "pw1",
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					ExistsByEmailOrUsername(gomock.Any(), "ada@example.com", "ada").
					Return(false, nil)
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = uuid.New()
						u.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "MissingFields",
			params: user.RegisterParams{
				FullName: "Ada Lovelace",
				Email:    "",
				Username: "ada",
				Password: "pw1",
			},
			wantErr: user.ErrMissingFields,
		},
		{
			name: "Duplicate",
			params: user.RegisterParams{
				FullName: "Ada Lovelace",
				Email:    "ada@example.com",
				Username: "ada",
				Password: "pw1",
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					ExistsByEmailOrUsername(gomock.Any(), "ada@example.com", "ada").
					Return(true, nil)
			},
			wantErr: user.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := user.NewService(repo, testIssuer())
			got, err := svc.Register(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "ada@example.com", got.Email)
			assert.Equal(t, "ada", got.Username)
			assert.Equal(t, user.RoleTeamMember, got.Role)
			assert.NotEqual(t, "pw1", got.PasswordHash)
		})
	}
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)

	stored := &user.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: hash,
	}

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(stored, nil).Times(2)
	repo.EXPECT().SetRefreshToken(gomock.Any(), stored.ID, gomock.Any()).Return(nil)

	issuer := testIssuer()
	svc := user.NewService(repo, issuer)

	got, token, err := svc.Login(context.Background(), "ada@example.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	require.NotNil(t, got.RefreshToken)

	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, subject)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, user.ErrBadCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, user.ErrNotFound)

	svc := user.NewService(repo, testIssuer())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pw1")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().SetRefreshToken(gomock.Any(), id, gomock.Nil()).Return(nil)

	svc := user.NewService(repo, testIssuer())
	assert.NoError(t, svc.Logout(context.Background(), id))
}
