package startup_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foundx/foundx/internal/auth"
	"github.com/foundx/foundx/internal/startup"
	"github.com/foundx/foundx/internal/user"
)

func hashed(t *testing.T, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	return hash
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name        string
		companyName string
		password    string
		setupMock   func(m *startup.MockRepository)
		wantErr     error
	}

	tests := []testCase{
		{
			name:        "Success",
			companyName: "Acme",
			password:    "pw1",
			setupMock: func(m *startup.MockRepository) {
				m.EXPECT().
					GetByCompanyName(gomock.Any(), "Acme").
					Return(nil, startup.ErrNotFound)
				m.EXPECT().
					CreateStartup(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, st *startup.Startup) error {
						st.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:        "DuplicateCompanyName",
			companyName: "Acme",
			password:    "pw1",
			setupMock: func(m *startup.MockRepository) {
				m.EXPECT().
					GetByCompanyName(gomock.Any(), "Acme").
					Return(&startup.Startup{ID: uuid.New(), CompanyName: "Acme"}, nil)
			},
			wantErr: startup.ErrConflict,
		},
		{
			name:        "MissingFields",
			companyName: "",
			password:    "pw1",
			wantErr:     startup.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := startup.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := startup.NewService(repo)
			got, err := svc.Create(context.Background(), tt.companyName, tt.password, uuid.New())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.True(t, auth.CheckPassword(got.PasswordHash, tt.password))
		})
	}
}

func TestService_Access(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := &startup.Startup{
		ID:           uuid.New(),
		CompanyName:  "Acme",
		PasswordHash: hashed(t, "pw1"),
	}

	repo := startup.NewMockRepository(ctrl)
	repo.EXPECT().GetByCompanyName(gomock.Any(), "Acme").Return(st, nil).Times(2)
	repo.EXPECT().GetByCompanyName(gomock.Any(), "Ghost").Return(nil, startup.ErrNotFound)

	svc := startup.NewService(repo)

	got, err := svc.Access(context.Background(), "Acme", "pw1")
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)

	_, err = svc.Access(context.Background(), "Acme", "wrong")
	assert.ErrorIs(t, err, startup.ErrBadCredentials)

	_, err = svc.Access(context.Background(), "Ghost", "pw1")
	assert.ErrorIs(t, err, startup.ErrNotFound)
}

func TestService_Join_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := &startup.Startup{
		ID:           uuid.New(),
		CompanyName:  "Acme",
		PasswordHash: hashed(t, "pw1"),
	}
	userID := uuid.New()

	repo := startup.NewMockRepository(ctrl)
	repo.EXPECT().GetByCompanyName(gomock.Any(), "Acme").Return(st, nil).Times(2)

	// First join: user has no startup yet, membership is written once.
	repo.EXPECT().GetEmployee(gomock.Any(), userID).
		Return(&startup.Employee{ID: userID}, nil)
	repo.EXPECT().SetMembership(gomock.Any(), userID, &st.ID).Return(nil)

	// Second join: already a member, no write happens.
	repo.EXPECT().GetEmployee(gomock.Any(), userID).
		Return(&startup.Employee{ID: userID, StartupID: &st.ID}, nil)

	svc := startup.NewService(repo)

	got, err := svc.Join(context.Background(), "Acme", "pw1", userID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)

	got, err = svc.Join(context.Background(), "Acme", "pw1", userID)
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)
}

func TestService_AddEmployeeByEmail(t *testing.T) {
	startupID := uuid.New()
	callerID := uuid.New()
	targetID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *startup.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *startup.MockRepository) {
				m.EXPECT().GetEmployee(gomock.Any(), callerID).
					Return(&startup.Employee{ID: callerID, StartupID: &startupID}, nil)
				m.EXPECT().GetEmployeeByEmail(gomock.Any(), "new@example.com").
					Return(&startup.Employee{ID: targetID, Email: "new@example.com"}, nil)
				m.EXPECT().SetMembership(gomock.Any(), targetID, &startupID).Return(nil)
			},
		},
		{
			name: "AlreadyEmployee",
			setupMock: func(m *startup.MockRepository) {
				m.EXPECT().GetEmployee(gomock.Any(), callerID).
					Return(&startup.Employee{ID: callerID, StartupID: &startupID}, nil)
				m.EXPECT().GetEmployeeByEmail(gomock.Any(), "new@example.com").
					Return(&startup.Employee{ID: targetID, StartupID: &startupID}, nil)
			},
			wantErr: startup.ErrAlreadyEmployee,
		},
		{
			name: "CallerHasNoStartup",
			setupMock: func(m *startup.MockRepository) {
				m.EXPECT().GetEmployee(gomock.Any(), callerID).
					Return(&startup.Employee{ID: callerID}, nil)
			},
			wantErr: startup.ErrNotEmployee,
		},
		{
			name: "TargetMissing",
			setupMock: func(m *startup.MockRepository) {
				m.EXPECT().GetEmployee(gomock.Any(), callerID).
					Return(&startup.Employee{ID: callerID, StartupID: &startupID}, nil)
				m.EXPECT().GetEmployeeByEmail(gomock.Any(), "new@example.com").
					Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := startup.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := startup.NewService(repo)
			got, err := svc.AddEmployeeByEmail(context.Background(), callerID, "new@example.com")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got.StartupID)
			assert.Equal(t, startupID, *got.StartupID)
		})
	}
}

func TestService_RemoveEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startupID := uuid.New()
	employeeID := uuid.New()

	repo := startup.NewMockRepository(ctrl)
	repo.EXPECT().GetEmployee(gomock.Any(), employeeID).
		Return(&startup.Employee{ID: employeeID, StartupID: &startupID}, nil)
	repo.EXPECT().SetMembership(gomock.Any(), employeeID, gomock.Nil()).Return(nil)

	svc := startup.NewService(repo)
	require.NoError(t, svc.RemoveEmployee(context.Background(), employeeID))

	// Not an employee anymore.
	repo.EXPECT().GetEmployee(gomock.Any(), employeeID).
		Return(&startup.Employee{ID: employeeID}, nil)
	assert.ErrorIs(t, svc.RemoveEmployee(context.Background(), employeeID), startup.ErrNotEmployee)
}

func TestService_Employees_ExcludesRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := &startup.Startup{ID: uuid.New(), CompanyName: "Acme"}
	kept := &startup.Employee{ID: uuid.New(), StartupID: &st.ID}

	repo := startup.NewMockRepository(ctrl)
	repo.EXPECT().GetByCompanyName(gomock.Any(), "Acme").Return(st, nil)
	repo.EXPECT().ListEmployees(gomock.Any(), st.ID).Return([]*startup.Employee{kept}, nil)

	svc := startup.NewService(repo)

	employees, err := svc.Employees(context.Background(), "Acme")
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, kept.ID, employees[0].ID)
}
