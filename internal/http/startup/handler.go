package startup

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/foundx/foundx/internal/http/middleware"
	"github.com/foundx/foundx/internal/http/respond"
	"github.com/foundx/foundx/internal/startup"
	"github.com/foundx/foundx/internal/user"
)

type Handler struct {
	svc *startup.Service
}

func NewHandler(svc *startup.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes registers the routes that work without a logged-in user:
// accessing a startup by company credentials and listing employees.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/access", h.access)
	r.Post("/getEmployees", h.employees)
}

func (h *Handler) AuthRoutes(r chi.Router) {
	r.Post("/create", h.create)
	r.Post("/join", h.join)
	r.Post("/addEmployee", h.addEmployee)
	r.Post("/removeEmployee", h.removeEmployee)
	r.Get("/owned", h.owned)
	r.Get("/{startupID}", h.get)
}

// startupResponse deliberately omits the password hash.
type startupResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(s *startup.Startup) startupResponse {
	return startupResponse{
		ID:          s.ID,
		CompanyName: s.CompanyName,
		OwnerID:     s.OwnerID,
		CreatedAt:   s.CreatedAt,
	}
}

type employeeResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	Role     user.Role `json:"role"`
}

func toEmployeeResponse(e *startup.Employee) employeeResponse {
	return employeeResponse{
		ID:       e.ID,
		FullName: e.FullName,
		Email:    e.Email,
		Username: e.Username,
		Role:     e.Role,
	}
}

type createRequest struct {
	CompanyName string `json:"companyName"`
	Password    string `json:"password"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.Create(r.Context(), req.CompanyName, req.Password, u.ID)
	if err != nil {
		switch {
		case errors.Is(err, startup.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "companyName and password are required")
		case errors.Is(err, startup.ErrConflict):
			respond.Error(w, http.StatusConflict, "company name already taken")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to create startup")
		}

		return
	}

	respond.Data(w, http.StatusCreated, toResponse(s), "startup created")
}

type accessRequest struct {
	CompanyName string `json:"companyName"`
	Password    string `json:"password"`
}

func (h *Handler) access(w http.ResponseWriter, r *http.Request) {
	var req accessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.Access(r.Context(), req.CompanyName, req.Password)
	if err != nil {
		respondAccessError(w, err)
		return
	}

	respond.Data(w, http.StatusOK, toResponse(s), "startup access granted")
}

type joinRequest struct {
	CompanyName string `json:"companyName"`
	Password    string `json:"password"`
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := h.svc.Join(r.Context(), req.CompanyName, req.Password, u.ID)
	if err != nil {
		respondAccessError(w, err)
		return
	}

	respond.Data(w, http.StatusOK, toResponse(s), "joined startup")
}

func respondAccessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, startup.ErrMissingFields):
		respond.Error(w, http.StatusBadRequest, "companyName and password are required")
	case errors.Is(err, startup.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "startup not found")
	case errors.Is(err, startup.ErrBadCredentials):
		respond.Error(w, http.StatusUnauthorized, "invalid startup credentials")
	default:
		respond.Error(w, http.StatusInternalServerError, "failed to access startup")
	}
}

type addEmployeeRequest struct {
	Email string `json:"email"`
}

func (h *Handler) addEmployee(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	var req addEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := h.svc.AddEmployeeByEmail(r.Context(), u.ID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, startup.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "email is required")
		case errors.Is(err, startup.ErrNotEmployee):
			respond.Error(w, http.StatusNotFound, "you are not part of a startup")
		case errors.Is(err, user.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "user not found")
		case errors.Is(err, startup.ErrAlreadyEmployee):
			respond.Error(w, http.StatusConflict, "user is already an employee")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to add employee")
		}

		return
	}

	respond.Data(w, http.StatusOK, toEmployeeResponse(employee), "employee added")
}

type removeEmployeeRequest struct {
	EmployeeID uuid.UUID `json:"employeeId"`
}

func (h *Handler) removeEmployee(w http.ResponseWriter, r *http.Request) {
	var req removeEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.RemoveEmployee(r.Context(), req.EmployeeID); err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound), errors.Is(err, startup.ErrNotEmployee):
			respond.Error(w, http.StatusNotFound, "employee not found")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to remove employee")
		}

		return
	}

	respond.Data(w, http.StatusOK, nil, "employee removed")
}

type employeesRequest struct {
	CompanyName string `json:"companyName"`
}

func (h *Handler) employees(w http.ResponseWriter, r *http.Request) {
	var req employeesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employees, err := h.svc.Employees(r.Context(), req.CompanyName)
	if err != nil {
		switch {
		case errors.Is(err, startup.ErrMissingFields):
			respond.Error(w, http.StatusBadRequest, "companyName is required")
		case errors.Is(err, startup.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "startup not found")
		default:
			respond.Error(w, http.StatusInternalServerError, "failed to list employees")
		}

		return
	}

	resp := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, toEmployeeResponse(e))
	}

	respond.Data(w, http.StatusOK, resp, "employees")
}

func (h *Handler) owned(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.CurrentUser(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing access token")
		return
	}

	startups, err := h.svc.Owned(r.Context(), u.ID)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, "failed to list startups")
		return
	}

	resp := make([]startupResponse, 0, len(startups))
	for _, s := range startups {
		resp = append(resp, toResponse(s))
	}

	respond.Data(w, http.StatusOK, resp, "owned startups")
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "startupID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid startup id")
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, startup.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "startup not found")
			return
		}
		respond.Error(w, http.StatusInternalServerError, "failed to fetch startup")
		return
	}

	respond.Data(w, http.StatusOK, toResponse(s), "startup fetched successfully")
}
