package app

import (
	"errors"
	"net/http"

	"github.com/centsible/centsible/internal/config"
	"github.com/centsible/centsible/internal/rest"
	"github.com/centsible/centsible/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Resolve the X-User-Id header into a full user (including its role) and
	// propagate it through the request context for downstream services.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			userIdHeader := req.Header.Get("X-User-Id")
			ctx := req.Context()

			if userIdHeader != "" {
				u, err := deps.UserService.GetUserByUid(ctx, userIdHeader)
				if err != nil {
					if errors.Is(err, user.ErrUserNotFound) {
						log.Debugf("user not found: %s", userIdHeader)
						rest.WriteError(w, http.StatusForbidden, "forbidden", "user not found", "")
						return
					}
					log.Errorf("failed to get user: %v", err)
					rest.WriteDomainError(w, err)
					return
				}
				log.Debugf("user found: %s", u.Uid)
				ctx = user.WithUser(ctx, u)
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
