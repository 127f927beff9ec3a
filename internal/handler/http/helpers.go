package http

import (
	"net/http"

	"github.com/cmlabs-hris/staff-leave-backend/internal/handler/http/response"
	"github.com/cmlabs-hris/staff-leave-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// adminIDFromRequest returns the admin_id claim put in context by jwtauth.Verifier.
func adminIDFromRequest(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	adminID, _ := claims["admin_id"].(string)
	return adminID
}

// uuidParam reads the {id} URL parameter. A malformed id cannot match any
// row, so it is answered with notFound.
func uuidParam(w http.ResponseWriter, r *http.Request, notFound error) (string, bool) {
	return uuidParamNamed(w, r, "id", notFound)
}

func uuidParamNamed(w http.ResponseWriter, r *http.Request, name string, notFound error) (string, bool) {
	id := chi.URLParam(r, name)
	if !validator.IsValidUUID(id) {
		response.HandleError(w, notFound)
		return "", false
	}
	return id, true
}
