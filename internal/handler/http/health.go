package http

import (
	"net/http"

	"github.com/fairshare/fairshare/internal/utils"
)

// health reports process liveness. It carries no authentication so that
// load balancers and orchestrators can probe it.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
