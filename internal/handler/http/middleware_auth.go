package http

import (
	"context"
	"net/http"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/utils"
	"github.com/fairshare/fairshare/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the token's
// account, and on success stores the authenticated user in the request
// context under [utils.AuthUserCtxKey] before delegating to the next handler.
//
// Every rejection produces the same generic 401 body so that the response
// never echoes header contents or reveals whether the token was malformed,
// expired, or referenced a deleted account. The specific cause is logged
// using the context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("rejected authorization header")
			h.unauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("rejected bearer token")
			h.unauthorized(w)
			return
		}

		user, err := h.services.AuthService.ResolveUser(ctx, token)
		if err != nil {
			log.Debug().Err(err).Int64("userid", token.UserID).Msg("rejected token user")
			h.unauthorized(w)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.AuthUserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) unauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgUnauthorized}, http.StatusUnauthorized)
}
