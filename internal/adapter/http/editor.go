package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campaign-editor/internal/core/domain"
	"campaign-editor/internal/core/port"
)

const maxBodyBytes = 1 << 20

type createSessionRequest struct {
	CampaignID string `json:"campaign_id"`
}

type sessionResponse struct {
	ID string `json:"id"`
	port.View
}

type saveInProgressResponse struct {
	ID             string `json:"id"`
	SaveInProgress bool   `json:"save_in_progress"`
}

// handleCreateSession opens a session on the campaign named in the body, or
// on a new campaign when the body is empty or carries no campaign_id.
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var sess port.EditorSession
	if req.CampaignID == "" {
		sess, err = h.uc.NewCampaign(r.Context())
	} else {
		sess, err = h.uc.OpenCampaign(r.Context(), req.CampaignID)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err = h.sessions.Put(sess); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeView(w, http.StatusCreated, sess)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeView(w, http.StatusOK, sess)
}

// handleDeleteSession discards the session and its unsaved edits.
func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleChanges returns the unsaved changes as an RFC 7386 merge patch.
func (h *Handler) handleChanges(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	patch, err := sess.Changes()
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/merge-patch+json")
	if _, err = w.Write(patch); err != nil {
		h.logger.Error("write response error", slog.Any("error", err))
	}
}

// handleSetForm records the state of the panel displayed by the client. The
// form must carry the target it was rendered for; a form for another node
// is answered with 409.
func (h *Handler) handleSetForm(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	var form domain.Form
	if err = json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&form); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err = sess.SetForm(form); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeView(w, http.StatusOK, sess)
}

// handleCommand dispatches {name} with the raw request body as arguments.
// A save requested while another one runs is ignored and answered with 202;
// the view is not rendered since the running save holds the session.
func (h *Handler) handleCommand(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	args, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	err = sess.Dispatch(r.Context(), chi.URLParam(r, "name"), args)
	if errors.Is(err, domain.ErrSaveInProgress) {
		h.logger.Info("command ignored, save in progress",
			slog.String("session_id", sess.ID()),
			slog.String("command", chi.URLParam(r, "name")),
		)
		h.writeJSON(w, http.StatusAccepted, saveInProgressResponse{ID: sess.ID(), SaveInProgress: true})
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeView(w, http.StatusOK, sess)
}

func (h *Handler) writeView(w http.ResponseWriter, status int, sess port.EditorSession) {
	h.writeJSON(w, status, sessionResponse{ID: sess.ID(), View: sess.View()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
