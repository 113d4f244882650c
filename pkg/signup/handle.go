package signup

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// Handle adapts the Controller to chi. It only deals with transport
// concerns: decoding the JSON body and serializing the Response.
type Handle struct {
	controller *Controller
}

// NewHandle creates the HTTP handler for the signup endpoint.
func NewHandle(controller *Controller) *Handle {
	return &Handle{controller: controller}
}

// RegisterRoutes registers the signup routes.
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Signup)
}

// Signup handles user registration requests. An empty body is handled like
// an empty request so the controller reports the first missing field.
func (h *Handle) Signup(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Failed to decode signup request", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, NewInvalidParamError("body"))
		return
	}

	resp := h.controller.Handle(r.Context(), req)
	render.Status(r, resp.StatusCode)
	render.JSON(w, r, resp.Body)
}
