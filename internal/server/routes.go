// Package server wires the application together.
//
// The routes.go file builds the route tree. Credential endpoints are
// rate limited; everything under the authenticated group requires a
// valid session cookie.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gsvlabs/storefront-backend/internal/auth"
	"github.com/gsvlabs/storefront-backend/internal/constants"
	"github.com/gsvlabs/storefront-backend/internal/middleware"
	"github.com/gsvlabs/storefront-backend/internal/utils"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(s.corsMiddleware)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		utils.NotFound(w, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		utils.MethodNotAllowed(w, nil)
	})

	r.Get(constants.HealthPath, s.systemHandler.Health)
	r.Get(constants.VersionPath, s.systemHandler.Version)

	// Credential endpoints: no session required, rate limited.
	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(middleware.RateLimit(s.limiter))
		}
		r.Post(constants.UserRegisterPath, s.userHandler.Register)
		r.Post(constants.UserLoginPath, s.userHandler.Login)
		r.Post(constants.UserForgotPasswordPath, s.resetHandler.ForgotPassword)
		r.Put(constants.UserResetPasswordPath, s.resetHandler.ResetPassword)
	})

	// Session-aware but never failing.
	r.Get(constants.UserLogoutPath, s.userHandler.Logout)
	r.Get(constants.UserLoginStatusPath, s.userHandler.LoginStatus)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(s.jwtService))

		r.Get(constants.UserGetPath, s.userHandler.GetCurrentUser)
		r.Patch(constants.UserUpdatePath, s.userHandler.UpdateProfile)
		r.Patch(constants.UserChangePasswordPath, s.userHandler.ChangePassword)

		r.Route(constants.ProductsBasePath, func(r chi.Router) {
			r.Post("/", s.productHandler.Create)
			r.Get("/", s.productHandler.List)
			r.Get("/{productID}", s.productHandler.Get)
			r.Patch("/{productID}", s.productHandler.Update)
			r.Delete("/{productID}", s.productHandler.Delete)
		})

		r.Post(constants.ContactUsPath, s.contactHandler.Send)
	})

	return r
}

// corsMiddleware allows the configured frontend origins with
// credentials, since the session travels in a cookie.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.cfg.CORS.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
