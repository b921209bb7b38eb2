package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"profile_validator/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/api", handler(s.getAPI))
	r.Get("/ai-status", handler(s.getAIStatus))

	r.Post("/check-password", handler(s.postCheckPassword))

	r.Post("/validate-name", handler(s.postValidateName))
	r.Post("/validate-email", handler(s.postValidateEmail))
	r.Post("/validate-phone", handler(s.postValidatePhone))
	r.Post("/validate-bio", handler(s.postValidateBio))
	r.Post("/validate-bio-ai", handler(s.postValidateBioAI))
	r.Post("/validate-skills", handler(s.postValidateSkills))
	r.Post("/validate-all", handler(s.postValidateAll))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
