package middleware

import (
	"net/http"

	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/handler/http/response"
	"github.com/Anuragdrocks/Mini-Leave-Management-System-Anurag-Dubey/internal/pkg/jwt"
)

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.HandleError(w, response.ErrInvalidToken)
			return
		}

		if claims.Role != jwt.RoleManager {
			response.HandleError(w, response.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
