package task_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foundx/foundx/internal/task"
	"github.com/foundx/foundx/internal/user"
)

func TestService_Create(t *testing.T) {
	projectID := uuid.New()

	type testCase struct {
		name      string
		params    task.CreateParams
		setupMock func(m *task.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: task.CreateParams{
				Title:       "Write pitch deck",
				Description: "Ten slides max",
				ProjectID:   projectID,
			},
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().ProjectExists(gomock.Any(), projectID).Return(true, nil)
				m.EXPECT().
					CreateTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tk *task.Task) error {
						tk.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "MissingTitle",
			params: task.CreateParams{
				Description: "Ten slides max",
				ProjectID:   projectID,
			},
			wantErr: task.ErrMissingFields,
		},
		{
			name: "MissingProject",
			params: task.CreateParams{
				Title:       "Write pitch deck",
				Description: "Ten slides max",
			},
			wantErr: task.ErrMissingFields,
		},
		{
			name: "ProjectDoesNotExist",
			params: task.CreateParams{
				Title:       "Write pitch deck",
				Description: "Ten slides max",
				ProjectID:   projectID,
			},
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().ProjectExists(gomock.Any(), projectID).Return(false, nil)
			},
			wantErr: task.ErrProjectNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := task.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := task.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, task.StatusNotStarted, got.Status)
			assert.NotEmpty(t, got.ID)
		})
	}
}

func TestService_Update_SameStatusRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &task.Task{
		ID:          uuid.New(),
		Title:       "Write pitch deck",
		Description: "Ten slides max",
		Status:      task.StatusInProgress,
	}

	repo := task.NewMockRepository(ctrl)
	repo.EXPECT().GetTask(gomock.Any(), existing.ID).Return(existing, nil)

	svc := task.NewService(repo)

	_, err := svc.Update(context.Background(), existing.ID, task.UpdateParams{
		Status:      task.StatusInProgress,
		Title:       "Changed",
		Description: "Changed",
	})
	assert.ErrorIs(t, err, task.ErrSameStatus)

	// The task was not modified: UpdateTask was never expected and the
	// in-memory record still holds its original fields.
	assert.Equal(t, "Write pitch deck", existing.Title)
	assert.Equal(t, task.StatusInProgress, existing.Status)
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &task.Task{
		ID:     uuid.New(),
		Status: task.StatusNotStarted,
	}

	repo := task.NewMockRepository(ctrl)
	repo.EXPECT().GetTask(gomock.Any(), existing.ID).Return(existing, nil)
	repo.EXPECT().UpdateTask(gomock.Any(), gomock.Any()).Return(nil)

	svc := task.NewService(repo)

	got, err := svc.Update(context.Background(), existing.ID, task.UpdateParams{
		Status:      task.StatusCompleted,
		Title:       "Done",
		Description: "All slides written",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)
	assert.Equal(t, "Done", got.Title)
}

func TestService_Assign(t *testing.T) {
	taskID := uuid.New()
	member := &task.Member{ID: uuid.New(), Email: "ada@example.com"}

	type testCase struct {
		name      string
		setupMock func(m *task.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().GetTask(gomock.Any(), taskID).Return(&task.Task{ID: taskID}, nil)
				m.EXPECT().GetMemberByEmail(gomock.Any(), "ada@example.com").Return(member, nil)
				m.EXPECT().AssignMember(gomock.Any(), taskID, member.ID).Return(nil)
			},
		},
		{
			name: "AlreadyAssigned",
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().GetTask(gomock.Any(), taskID).
					Return(&task.Task{ID: taskID, Members: []*task.Member{member}}, nil)
				m.EXPECT().GetMemberByEmail(gomock.Any(), "ada@example.com").Return(member, nil)
			},
			wantErr: task.ErrAlreadyAssigned,
		},
		{
			name: "UnknownMember",
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().GetTask(gomock.Any(), taskID).Return(&task.Task{ID: taskID}, nil)
				m.EXPECT().GetMemberByEmail(gomock.Any(), "ada@example.com").
					Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrNotFound,
		},
		{
			name: "UnknownTask",
			setupMock: func(m *task.MockRepository) {
				m.EXPECT().GetTask(gomock.Any(), taskID).Return(nil, task.ErrNotFound)
			},
			wantErr: task.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := task.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := task.NewService(repo)
			got, err := svc.Assign(context.Background(), taskID, "ada@example.com")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, got.Members, 1)
			assert.Equal(t, member.ID, got.Members[0].ID)
		})
	}
}

func TestService_Unassign_AbsentIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	taskID := uuid.New()
	member := &task.Member{ID: uuid.New(), Email: "ada@example.com"}

	repo := task.NewMockRepository(ctrl)
	repo.EXPECT().GetTask(gomock.Any(), taskID).Return(&task.Task{ID: taskID}, nil)
	repo.EXPECT().GetMemberByEmail(gomock.Any(), "ada@example.com").Return(member, nil)
	repo.EXPECT().UnassignMember(gomock.Any(), taskID, member.ID).Return(nil)

	svc := task.NewService(repo)

	got, err := svc.Unassign(context.Background(), taskID, "ada@example.com")
	require.NoError(t, err)
	assert.Empty(t, got.Members)
}
