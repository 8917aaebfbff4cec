package project_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foundx/foundx/internal/project"
	"github.com/foundx/foundx/internal/user"
)

func TestService_Create_InitialMembersIsOwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	startupID := uuid.New()

	repo := project.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateProject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *project.Project) error {
			// The store seeds membership from OwnerID alone; the params
			// carry no member list the caller could tamper with.
			assert.Equal(t, ownerID, p.OwnerID)
			p.ID = uuid.New()
			p.CreatedAt = time.Now()
			return nil
		})

	svc := project.NewService(repo)

	got, err := svc.Create(context.Background(), project.CreateParams{
		Name:        "Launch",
		Description: "Initial launch plan",
		OwnerID:     ownerID,
		StartupID:   startupID,
	})
	require.NoError(t, err)
	assert.Equal(t, project.StatusNotStarted, got.Status)
	assert.False(t, got.StartDate.IsZero())
	assert.Nil(t, got.EndDate)
}

func TestService_Create_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := project.NewService(project.NewMockRepository(ctrl))

	_, err := svc.Create(context.Background(), project.CreateParams{Name: "Launch"})
	assert.ErrorIs(t, err, project.ErrMissingFields)

	_, err = svc.Create(context.Background(), project.CreateParams{Description: "no name"})
	assert.ErrorIs(t, err, project.ErrMissingFields)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	existing := &project.Project{
		ID:          id,
		Name:        "Old",
		Description: "old",
		Status:      project.StatusInProgress,
	}

	repo := project.NewMockRepository(ctrl)
	repo.EXPECT().GetProject(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().UpdateProject(gomock.Any(), gomock.Any()).Return(nil)

	svc := project.NewService(repo)

	got, err := svc.Update(context.Background(), id, project.UpdateParams{
		Name:        "New",
		Description: "new",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	// Full-overwrite semantics: omitted status resets to the default.
	assert.Equal(t, project.StatusNotStarted, got.Status)
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := project.NewMockRepository(ctrl)
	repo.EXPECT().GetProject(gomock.Any(), id).Return(nil, project.ErrNotFound)

	svc := project.NewService(repo)

	_, err := svc.Update(context.Background(), id, project.UpdateParams{Name: "a", Description: "b"})
	assert.ErrorIs(t, err, project.ErrNotFound)
}

func TestService_AddMember(t *testing.T) {
	projectID := uuid.New()
	memberID := uuid.New()

	type testCase struct {
		name      string
		setupMock func(m *project.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *project.MockRepository) {
				m.EXPECT().GetProject(gomock.Any(), projectID).
					Return(&project.Project{ID: projectID}, nil)
				m.EXPECT().GetMember(gomock.Any(), memberID).
					Return(&project.Member{ID: memberID}, nil)
				m.EXPECT().AddMember(gomock.Any(), projectID, memberID).Return(nil)
			},
		},
		{
			name: "UnknownUser",
			setupMock: func(m *project.MockRepository) {
				m.EXPECT().GetProject(gomock.Any(), projectID).
					Return(&project.Project{ID: projectID}, nil)
				m.EXPECT().GetMember(gomock.Any(), memberID).
					Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrNotFound,
		},
		{
			name: "Duplicate",
			setupMock: func(m *project.MockRepository) {
				m.EXPECT().GetProject(gomock.Any(), projectID).
					Return(&project.Project{ID: projectID}, nil)
				m.EXPECT().GetMember(gomock.Any(), memberID).
					Return(&project.Member{ID: memberID}, nil)
				m.EXPECT().AddMember(gomock.Any(), projectID, memberID).
					Return(project.ErrMemberExists)
			},
			wantErr: project.ErrMemberExists,
		},
		{
			name: "ProjectMissing",
			setupMock: func(m *project.MockRepository) {
				m.EXPECT().GetProject(gomock.Any(), projectID).
					Return(nil, project.ErrNotFound)
			},
			wantErr: project.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := project.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := project.NewService(repo)
			_, err := svc.AddMember(context.Background(), projectID, memberID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_RemoveMember_NotPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projectID := uuid.New()
	memberID := uuid.New()

	repo := project.NewMockRepository(ctrl)
	repo.EXPECT().GetProject(gomock.Any(), projectID).
		Return(&project.Project{ID: projectID}, nil)
	repo.EXPECT().RemoveMember(gomock.Any(), projectID, memberID).
		Return(project.ErrMemberNotFound)

	svc := project.NewService(repo)

	_, err := svc.RemoveMember(context.Background(), projectID, memberID)
	assert.ErrorIs(t, err, project.ErrMemberNotFound)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	p := &project.Project{ID: uuid.New(), OwnerID: ownerID}
	owner := &project.Member{ID: ownerID, FullName: "Ada Lovelace"}

	repo := project.NewMockRepository(ctrl)
	repo.EXPECT().GetProject(gomock.Any(), p.ID).Return(p, nil)
	repo.EXPECT().GetMember(gomock.Any(), ownerID).Return(owner, nil)
	repo.EXPECT().ListMembers(gomock.Any(), p.ID).Return([]*project.Member{owner}, nil)

	svc := project.NewService(repo)

	detail, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, detail.Owner)
	assert.Len(t, detail.Members, 1)
}
