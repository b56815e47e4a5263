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

var choreSchema = validators.Schema{
	Required:  []string{"chorename", "chorehousehold"},
	Updatable: []string{"chorename", "chorehousehold", "choreuser"},
}

// createChore inserts a new chore into a household. An assignee is optional
// at creation time; it can be set later through a partial update. A reference
// to a missing household responds with 400.
func (h *Handler) createChore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := decodeJSONBody(r)
	if err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	if err := choreSchema.ValidateCreate(body); err != nil {
		h.writeError(w, r, err)
		return
	}

	name, nameOK := body["chorename"].(string)
	household, householdOK := body["chorehousehold"].(float64)
	if !nameOK || !householdOK {
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidData}, http.StatusBadRequest)
		return
	}

	chore := models.Chore{Name: name, Household: int64(household)}
	if assignee, ok := body["choreuser"].(float64); ok {
		assigneeID := int64(assignee)
		chore.AssignedUser = &assigneeID
	}

	created, err := h.services.ChoreService.CreateChore(ctx, chore)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", locationOf(r, created.ChoreID))
	utils.WriteJSON(w, models.SerializeChore(created), http.StatusCreated)
}

// getAllChores lists every chore across all households.
func (h *Handler) getAllChores(w http.ResponseWriter, r *http.Request) {
	chores, err := h.services.ChoreService.GetAllChores(r.Context())
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

// choreCtx loads the chore addressed by the {choreid} URL parameter and
// stores it in the request context, rejecting the request with 404 when the
// id is not numeric or no such chore exists.
func (h *Handler) choreCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		choreID, err := strconv.ParseInt(chi.URLParam(r, "choreid"), 10, 64)
		if err != nil {
			utils.WriteJSON(w, models.ErrorResponse{Error: msgChoreNotFound}, http.StatusNotFound)
			return
		}

		chore, err := h.services.ChoreService.GetChore(r.Context(), choreID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.EntityCtxKey, chore)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) getChore(w http.ResponseWriter, r *http.Request) {
	chore, _ := r.Context().Value(utils.EntityCtxKey).(models.Chore)

	utils.WriteJSON(w, models.SerializeChore(chore), http.StatusOK)
}

// updateChore applies a partial update to the addressed chore: its name, the
// household it belongs to, or the user it is assigned to.
func (h *Handler) updateChore(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	chore, _ := r.Context().Value(utils.EntityCtxKey).(models.Chore)

	body, err := decodeJSONBody(r)
	if err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgInvalidJSON}, http.StatusBadRequest)
		return
	}

	updates, err := choreSchema.ValidateUpdate(body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	intifyUpdates(updates, "chorehousehold", "choreuser")

	if err := h.services.ChoreService.UpdateChore(r.Context(), chore.ChoreID, updates); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteChore(w http.ResponseWriter, r *http.Request) {
	chore, _ := r.Context().Value(utils.EntityCtxKey).(models.Chore)

	if err := h.services.ChoreService.DeleteChore(r.Context(), chore.ChoreID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
