package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fairshare/fairshare/internal/logger"
	"github.com/fairshare/fairshare/internal/utils"
	"github.com/fairshare/fairshare/internal/validators"
	"github.com/fairshare/fairshare/models"
)

var householdSchema = validators.Schema{
	Required:  []string{"householdname"},
	Updatable: []string{"householdname"},
}

// createHousehold inserts a new household from a householdname. On success
// it responds with 201, a Location header pointing at the new resource, and
// the public household body.
func (h *Handler) createHousehold(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := decodeJSONBody(r)
	if err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := householdSchema.ValidateCreate(body); err != nil {
		h.writeError(w, r, err)
		return
	}

	name, ok := body["householdname"].(string)
	if !ok {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidData}, http.StatusBadRequest)
		return
	}

	created, err := h.services.HouseholdService.CreateHousehold(ctx, models.Household{Name: name})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", locationOf(r, created.HouseholdID))
	utils.WriteJSON(w, models.SerializeHousehold(created), http.StatusCreated)
}

// getAllHouseholds lists every household in its public form.
func (h *Handler) getAllHouseholds(w http.ResponseWriter, r *http.Request) {
	households, err := h.services.HouseholdService.GetAllHouseholds(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response := make([]models.HouseholdResponse, 0, len(households))
	for _, household := range households {
		response = append(response, models.SerializeHousehold(household))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// householdCtx loads the household addressed by the {householdid} URL
// parameter and stores it in the request context, rejecting the request with
// 404 when the id is not numeric or no such household exists.
func (h *Handler) householdCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		householdID, err := strconv.ParseInt(chi.URLParam(r, "householdid"), 10, 64)
		if err != nil {
			utils.WriteJSON(w, models.ErrorResponse{Error: msgHouseholdNotFound}, http.StatusNotFound)
			return
		}

		household, err := h.services.HouseholdService.GetHousehold(r.Context(), householdID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.EntityCtxKey, household)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) getHousehold(w http.ResponseWriter, r *http.Request) {
	household, _ := r.Context().Value(utils.EntityCtxKey).(models.Household)

	utils.WriteJSON(w, models.SerializeHousehold(household), http.StatusOK)
}

// updateHousehold applies a partial update to the addressed household. The
// householdname field is the only updatable one.
func (h *Handler) updateHousehold(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	household, _ := r.Context().Value(utils.EntityCtxKey).(models.Household)

	body, err := decodeJSONBody(r)
	if err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	updates, err := householdSchema.ValidateUpdate(body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.HouseholdService.UpdateHousehold(r.Context(), household.HouseholdID, updates); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteHousehold removes the addressed household. The schema's referential
// actions delete its chores and detach its members.
func (h *Handler) deleteHousehold(w http.ResponseWriter, r *http.Request) {
	household, _ := r.Context().Value(utils.EntityCtxKey).(models.Household)

	if err := h.services.HouseholdService.DeleteHousehold(r.Context(), household.HouseholdID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getHouseholdUsers lists the members of the addressed household.
func (h *Handler) getHouseholdUsers(w http.ResponseWriter, r *http.Request) {
	household, _ := r.Context().Value(utils.EntityCtxKey).(models.Household)

	users, err := h.services.HouseholdService.GetHouseholdUsers(r.Context(), household.HouseholdID)
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

// getHouseholdChores lists the chores of the addressed household.
func (h *Handler) getHouseholdChores(w http.ResponseWriter, r *http.Request) {
	household, _ := r.Context().Value(utils.EntityCtxKey).(models.Household)

	chores, err := h.services.HouseholdService.GetHouseholdChores(r.Context(), household.HouseholdID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response := make([]models.ChoreResponse, 0, len(chores))
	for _, chore := range chores {
		response = append(response, models.SerializeChore(chore))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
