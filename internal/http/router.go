package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	fundhandler "github.com/foundx/foundx/internal/http/fund"
	projecthandler "github.com/foundx/foundx/internal/http/project"
	startuphandler "github.com/foundx/foundx/internal/http/startup"
	taskhandler "github.com/foundx/foundx/internal/http/task"
	userhandler "github.com/foundx/foundx/internal/http/user"
)

// New assembles the API surface. The authenticate middleware guards
// every route except registration, login, and the two startup lookups
// the onboarding flow needs before a token exists.
func New(
	corsOrigin string,
	authenticate func(http.Handler) http.Handler,
	usersV1 *userhandler.Handler,
	startupsV1 *startuphandler.Handler,
	projectsV1 *projecthandler.Handler,
	tasksV1 *taskhandler.Handler,
	fundsV1 *fundhandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			usersV1.Routes(r)
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				usersV1.AuthRoutes(r)
			})
		})

		r.Route("/startups", func(r chi.Router) {
			startupsV1.Routes(r)
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				startupsV1.AuthRoutes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Route("/projects", func(r chi.Router) {
				projectsV1.Routes(r)
				r.Route("/{projectID}/tasks", tasksV1.Routes)
			})

			r.Route("/tasks", tasksV1.StartupRoutes)

			r.Route("/funds/startup/{startupID}", fundsV1.Routes)
		})
	})

	return router
}
