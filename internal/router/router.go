// Package router sets up all HTTP routes and middleware chains for the
// content API. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pressfolio/internal/handlers"
	"pressfolio/internal/middleware"
	"pressfolio/internal/token"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(tokens *token.Manager, loginLimiter *middleware.RateLimiter, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, dashboard *handlers.Dashboard) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Authenticate(tokens))

	// Health check, no auth.
	r.Get("/health", healthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		// Auth. Login is rate limited per client IP to slow down
		// credential stuffing.
		r.With(loginLimiter.Middleware).Post("/auth/login", auth.Login)
		r.With(middleware.RequireAuth).Get("/auth/me", auth.Me)

		// Public content, visible items only.
		r.Get("/blog", public.ListBlogPosts)
		r.Get("/blog/{slug}", public.GetBlogPost)
		r.Get("/courses", public.ListCourses)
		r.Get("/courses/{slug}", public.GetCourse)
		r.Get("/news", public.ListNews)
		r.Get("/news/{slug}", public.GetNewsItem)
		r.Get("/projects", public.ListProjects)
		r.Get("/projects/{slug}", public.GetProject)
		r.Get("/pages/menu", public.Menu)
		r.Get("/pages/homepage", public.Homepage)
		r.Get("/pages/{slug}", public.GetPage)
		r.Get("/taxonomy", public.Taxonomy)

		// Admin area: token required, admin role required.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.RequireAdmin)

			r.Get("/dashboard", dashboard.Overview)
			r.Get("/dashboard/sync-status", dashboard.SyncStatus)

			// Media uploads go straight to the bucket via presigned URLs;
			// the server never proxies file bytes.
			r.Post("/media/upload-url", admin.MediaUploadURL)
			r.Delete("/media/*", admin.DeleteMedia)

			r.Route("/blog-posts", func(r chi.Router) {
				r.Get("/", admin.ListBlogPosts)
				r.Post("/", admin.CreateBlogPost)
				r.Post("/preview", admin.PreviewBlogPost)
				r.Get("/{id}", admin.GetBlogPost)
				r.Put("/{id}", admin.UpdateBlogPost)
				r.Delete("/{id}", admin.DeleteBlogPost)
				r.Post("/{id}/restore", admin.RestoreBlogPost)
				r.Post("/{id}/transition", admin.TransitionBlogPost)
				r.Post("/{id}/feature", admin.FeatureBlogPost)
			})

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", admin.ListCourses)
				r.Post("/", admin.CreateCourse)
				r.Post("/preview", admin.PreviewCourse)
				r.Get("/{id}", admin.GetCourse)
				r.Put("/{id}", admin.UpdateCourse)
				r.Delete("/{id}", admin.DeleteCourse)
				r.Post("/{id}/restore", admin.RestoreCourse)
				r.Post("/{id}/transition", admin.TransitionCourse)
			})

			r.Route("/news-items", func(r chi.Router) {
				r.Get("/", admin.ListNewsItems)
				r.Post("/", admin.CreateNewsItem)
				r.Post("/preview", admin.PreviewNewsItem)
				r.Get("/{id}", admin.GetNewsItem)
				r.Put("/{id}", admin.UpdateNewsItem)
				r.Delete("/{id}", admin.DeleteNewsItem)
				r.Post("/{id}/restore", admin.RestoreNewsItem)
				r.Post("/{id}/transition", admin.TransitionNewsItem)
				r.Post("/{id}/feature", admin.FeatureNewsItem)
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", admin.ListPages)
				r.Post("/", admin.CreatePage)
				r.Post("/preview", admin.PreviewPage)
				r.Get("/{id}", admin.GetPage)
				r.Put("/{id}", admin.UpdatePage)
				r.Delete("/{id}", admin.DeletePage)
				r.Post("/{id}/restore", admin.RestorePage)
				r.Post("/{id}/transition", admin.TransitionPage)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", admin.ListProjects)
				r.Post("/", admin.CreateProject)
				r.Post("/preview", admin.PreviewProject)
				r.Get("/{id}", admin.GetProject)
				r.Put("/{id}", admin.UpdateProject)
				r.Delete("/{id}", admin.DeleteProject)
				r.Post("/{id}/restore", admin.RestoreProject)
				r.Post("/{id}/transition", admin.TransitionProject)
				r.Post("/{id}/feature", admin.FeatureProject)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
