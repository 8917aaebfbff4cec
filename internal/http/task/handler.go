package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/http/middleware"
	"github.com/foundx/foundx/internal/http/respond"
	"github.com/foundx/foundx/internal/task"
	"github.com/foundx/foundx/internal/user"
)

type Handler struct {
	svc *task.Service
}

func NewHandler(svc *task.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts under /projects/{projectID}/tasks.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/create", h.create)
	r.Get("/", h.list)
	r.Post("/{taskID}/assignMember", h.assign)
	r.Post("/{taskID}/deAssignMember", h.unassign)
	r.Put("/{taskID}", h.update)
}

// StartupRoutes mounts under /tasks and serves the cross-project task
// board for the caller's startup.
func (h *Handler) StartupRoutes(r chi.Router) {
	r.Get("/", h.listByStartup)
	r.Get("/{taskID}", h.get)
}

type memberResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
}

type taskResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      task.Status      `json:"status"`
	ProjectID   uuid.UUID        `json:"projectId"`
	Members     []memberResponse `json:"members"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   *time.Time       `json:"updatedAt,omitempty"`
}

func toResponse(t *task.Task) taskResponse {
	resp := taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		ProjectID:   t.ProjectID,
		Members:     make([]memberResponse, 0, len(t.Members)),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	for _, m := range t.Members {
		resp.Members = append(resp.Members, memberResponse{
			ID:       m.ID,
			FullName: m.FullName,
			Email:    m.Email,
			Username: m.Username,
			Role:     m.Role,
		})
	}

	return resp
}

func projectID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "projectID"))
}

type createRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      task.Status `json:"status,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	pid, err := projectID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Create(r.Context(), task.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		ProjectID:   pid,
	})
	if err != nil {
		switch {
		case errors.Is(err, task.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "title and description are required")
		case errors.Is(err, task.ErrProjectNotFound):
			respond.Error(w, http.StatusNotFound, "project not found")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to create task")
		}

		return
	}

	respond.Data(w, http.StatusCreated, toResponse(t), "task created")
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	pid, err := projectID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	tasks, err := h.svc.ListByProject(r.Context(), pid)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toResponse(t))
	}

	respond.Data(w, http.StatusOK, resp, "tasks")
}

type assignRequest struct {
	Email string `json:"email"`
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Assign(r.Context(), taskID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "task not found")
		case errors.Is(err, user.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "user not found")
		case errors.Is(err, task.ErrAlreadyAssigned):
			respond.Error(w, http.StatusConflict, "member is already assigned")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to assign member")
		}

		return
	}

	respond.Data(w, http.StatusOK, toResponse(t), "member assigned")
}

func (h *Handler) unassign(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Unassign(r.Context(), taskID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "task not found")
		case errors.Is(err, user.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "user not found")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to unassign member")
		}

		return
	}

	respond.Data(w, http.StatusOK, toResponse(t), "member unassigned")
}

type updateRequest struct {
	Status      task.Status `json:"updateStatus"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.Update(r.Context(), taskID, task.UpdateParams{
		Status:      req.Status,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, task.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "updateStatus is required")
		case errors.Is(err, task.ErrSameStatus):
			respond.Error(w, http.StatusBadRequest, "task already has this status")
		case errors.Is(err, task.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "task not found")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to update task")
		}

		return
	}

	respond.Data(w, http.StatusOK, toResponse(t), "task updated")
}

func (h *Handler) listByStartup(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}
	if u.StartupID == nil {
		respond.Error(w, http.StatusBadRequest, "you must belong to a startup to view its tasks")
		return
	}

	tasks, err := h.svc.ListByStartup(r.Context(), *u.StartupID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to fetch tasks")
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toResponse(t))
	}
	respond.Data(w, http.StatusOK, resp, "tasks fetched successfully")
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	taskID, err := uuid.Parse(chi.URLParam(r, "taskID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid task id")
		return
	}

	t, err := h.svc.Get(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "task not found")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "failed to fetch task")
		return
	}

	respond.Data(w, http.StatusOK, toResponse(t), "task fetched successfully")
}
