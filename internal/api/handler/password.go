package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/passgate/passgate/internal/api/request"
	"github.com/passgate/passgate/internal/api/response"
	"github.com/passgate/passgate/internal/services/denylist"
	"github.com/passgate/passgate/internal/services/strength"
)

// PasswordHandler handles password evaluation endpoints
type PasswordHandler struct {
	strengthService *strength.Service
	denylistService *denylist.Service
}

// NewPasswordHandler creates a new password handler
func NewPasswordHandler(strengthService *strength.Service, denylistService *denylist.Service) *PasswordHandler {
	return &PasswordHandler{
		strengthService: strengthService,
		denylistService: denylistService,
	}
}

// maxBodyBytes bounds the request body; candidate passwords are capped
// well below this by the engine's length rule.
const maxBodyBytes = 64 * 1024

// Check handles POST /api/v1/passwords/check
func (h *PasswordHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req request.CheckPasswordRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		// An empty body means no password was supplied; the engine
		// treats that as the empty string.
		if !errors.Is(err, io.EOF) {
			WriteError(w, NewInvalidRequestError("invalid request body"))
			return
		}
	}

	verdict := h.strengthService.Evaluate(req.Password)
	response.JSON(w, http.StatusOK, response.VerdictFromModel(verdict))
}

// Policy handles GET /api/v1/policy
func (h *PasswordHandler) Policy(w http.ResponseWriter, r *http.Request) {
	policy := h.strengthService.Policy()

	response.JSON(w, http.StatusOK, response.Policy{
		MinLength:       policy.MinLength,
		MaxLength:       policy.MaxLength,
		CommonPasswords: h.denylistService.PasswordCount(),
		KeyboardWalks:   h.denylistService.WalkCount(),
	})
}
