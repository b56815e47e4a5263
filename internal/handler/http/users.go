package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/utils"
	"github.com/fairshare/fairshare/internal/validators"
	"github.com/fairshare/fairshare/models"
)

var userSchema = validators.Schema{
	Required:  []string{"username", "password"},
	Updatable: []string{"username", "userhousehold"},
}

// registerUser creates a new account from a username and password. It is the
// only unauthenticated write in the API. On success it responds with 201,
// a Location header pointing at the new resource, and the public user body.
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := decodeJSONBody(r)
	if err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := userSchema.ValidateCreate(body); err != nil {
		h.writeError(w, r, err)
		return
	}

	username, usernameOK := body["username"].(string)
	password, passwordOK := body["password"].(string)
	if !usernameOK || !passwordOK {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidData}, http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.Register(ctx, username, password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", locationOf(r, created.UserID))
	utils.WriteJSON(w, models.SerializeUser(created), http.StatusCreated)
}

// getAllUsers lists every registered account in its public form.
func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, models.SerializeUser(user))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// userCtx loads the user addressed by the {userid} URL parameter and stores
// it in the request context, rejecting the request with 404 when the id is
// not numeric or no such user exists.
func (h *Handler) userCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "userid"), 10, 64)
		if err != nil {
			utils.WriteJSON(w, models.ErrorResponse{Error: msgUserNotFound}, http.StatusNotFound)
			return
		}

		user, err := h.services.UserService.GetUser(r.Context(), userID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.EntityCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, _ := r.Context().Value(utils.EntityCtxKey).(models.User)

	utils.WriteJSON(w, models.SerializeUser(user), http.StatusOK)
}

// updateUser applies a partial update to the addressed user. Only the
// username and userhousehold fields are updatable.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := r.Context().Value(utils.EntityCtxKey).(models.User)

	body, err := decodeJSONBody(r)
	if err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	updates, err := userSchema.ValidateUpdate(body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	intifyUpdates(updates, "userhousehold")

	if err := h.services.UserService.UpdateUser(r.Context(), user.UserID, updates); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, _ := r.Context().Value(utils.EntityCtxKey).(models.User)

	if err := h.services.UserService.DeleteUser(r.Context(), user.UserID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// locationOf builds the Location header value for a freshly created
// resource under the current collection URL.
func locationOf(r *http.Request, id int64) string {
	return fmt.Sprintf("%s/%d", strings.TrimRight(r.URL.Path, "/"), id)
}
