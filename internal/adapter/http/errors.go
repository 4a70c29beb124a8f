package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Entity string   `json:"entity,omitempty"`
	Name   string   `json:"name,omitempty"`
	Fields []string `json:"fields,omitempty"`
}

// writeError maps editor errors to HTTP statuses. Backend failures are
// reported as 502 with the entity that failed, so the client can tell the
// user which node was not saved.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		verr   *domain.ValidationError
		sierr  *domain.StructuralIntegrityError
		svcErr *domain.ServiceError
	)
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, port.ErrUnknownCommand):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrStaleForm):
		status = http.StatusConflict
	case errors.Is(err, ErrTooManySessions):
		status = http.StatusServiceUnavailable
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		resp.Entity, resp.Name, resp.Fields = string(verr.Entity), verr.Name, verr.Fields
	case errors.As(err, &sierr):
		status = http.StatusUnprocessableEntity
		resp.Entity = string(sierr.Selection.Kind)
	case errors.As(err, &svcErr):
		status = http.StatusBadGateway
		resp.Entity, resp.Name = string(svcErr.Entity), svcErr.Name
	case errors.Is(err, port.ErrInvalidArguments):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("editor request error", slog.Any("error", err))
		resp.Error = "internal error"
	}
	h.writeJSON(w, status, resp)
}
