package project

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/http/middleware"
	"github.com/foundx/foundx/internal/http/respond"
	"github.com/foundx/foundx/internal/project"
	"github.com/foundx/foundx/internal/user"
)

type Handler struct {
	svc *project.Service
}

func NewHandler(svc *project.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/create", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/update/{id}", h.update)
	r.Delete("/delete/{id}", h.delete)
	r.Post("/addMembers", h.addMember)
	r.Post("/removeMembers", h.removeMember)
}

type projectResponse struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Status      project.Status `json:"status"`
	OwnerID     uuid.UUID      `json:"ownerId"`
	StartupID   uuid.UUID      `json:"startupId"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type memberResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
}

type detailResponse struct {
	projectResponse
	Owner   memberResponse   `json:"owner"`
	Members []memberResponse `json:"members"`
}

func toResponse(p *project.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      p.Status,
		OwnerID:     p.OwnerID,
		StartupID:   p.StartupID,
		CreatedAt:   p.CreatedAt,
	}
}

func toMemberResponse(m *project.Member) memberResponse {
	return memberResponse{
		ID:       m.ID,
		FullName: m.FullName,
		Email:    m.Email,
		Username: m.Username,
		Role:     m.Role,
	}
}

type createRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Status      project.Status `json:"status,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok || u.StartupID == nil {
		respond.Error(w, http.StatusBadRequest, "you must belong to a startup to create projects")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateParams{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		OwnerID:     u.ID,
		StartupID:   *u.StartupID,
	})
	if err != nil {
		if errors.Is(err, project.ErrMissingFields) {
			respond.Error(w, http.StatusBadRequest, "name and description are required")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "failed to create project")

		return
	}

	respond.Data(w, http.StatusCreated, toResponse(p), "project created")
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok || u.StartupID == nil {
		respond.Error(w, http.StatusBadRequest, "you must belong to a startup to list projects")
		return
	}

	projects, err := h.svc.List(r.Context(), *u.StartupID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to list projects")
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toResponse(p))
	}

	respond.Data(w, http.StatusOK, resp, "projects")
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "project not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "failed to load project")

		return
	}

	resp := detailResponse{
		projectResponse: toResponse(detail.Project),
		Owner:           toMemberResponse(detail.Owner),
		Members:         make([]memberResponse, 0, len(detail.Members)),
	}
	for _, m := range detail.Members {
		resp.Members = append(resp.Members, toMemberResponse(m))
	}

	respond.Data(w, http.StatusOK, resp, "project")
}

type updateRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	StartDate   *time.Time     `json:"startDate,omitempty"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Status      project.Status `json:"status,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), id, project.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, project.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "name and description are required")
		case errors.Is(err, project.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "project not found")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to update project")
		}

		return
	}

	respond.Data(w, http.StatusOK, toResponse(p), "project updated")
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, project.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "project not found")
			return
		}

		respond.Error(w, http.StatusInternalServerError, "failed to delete project")

		return
	}

	respond.Data(w, http.StatusOK, nil, "project deleted")
}

type memberRequest struct {
	ProjectID uuid.UUID `json:"projectId"`
	MemberID  uuid.UUID `json:"memberId"`
}

func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.AddMember(r.Context(), req.ProjectID, req.MemberID)
	if err != nil {
		switch {
		case errors.Is(err, project.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "project not found")
		case errors.Is(err, user.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "user not found")
		case errors.Is(err, project.ErrMemberExists):
			respond.Error(w, http.StatusConflict, "user is already a project member")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to add member")
		}

		return
	}

	respond.Data(w, http.StatusOK, toResponse(p), "member added")
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.RemoveMember(r.Context(), req.ProjectID, req.MemberID)
	if err != nil {
		switch {
		case errors.Is(err, project.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "project not found")
		case errors.Is(err, project.ErrMemberNotFound):
			respond.Error(w, http.StatusNotFound, "user is not a project member")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to remove member")
		}

		return
	}

	respond.Data(w, http.StatusOK, toResponse(p), "member removed")
}
