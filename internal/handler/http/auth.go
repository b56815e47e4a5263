package http

import (
	"encoding/json"
	"net/http"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/utils"
	"github.com/fairshare/fairshare/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login authenticates a user by username and password and returns a signed
// bearer token together with the public subset of the account.
//
// Missing credentials and wrong credentials produce the same 400 response so
// the endpoint does not reveal which part was rejected.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials loginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgIncorrectCredentials}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("userid", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		User: models.LoginUser{
			UserID:    user.UserID,
			Username:  user.Username,
			Household: user.Household,
		},
		AuthToken: token.SignedString,
	}, http.StatusOK)
}
