package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/gorilla/mux"
)

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  *bool  `json:"is_admin"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type noteRequest struct {
	Description *string `json:"description"`
}

type deleteResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation),
		errors.Is(err, common.ErrorDuplicateUsername):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrMissingToken),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrorAccessDenied):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a service error to its fixed status code. Unexpected
// errors get a generic message so no storage detail crosses the boundary.
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = common.ErrorInternal.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	// admin flag honored only when explicitly supplied
	isAdmin := req.IsAdmin != nil && *req.IsAdmin

	view, err := s.users.Register(r.Context(), req.Name, req.Username, req.Password, isAdmin)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "username", view.Username)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	// token travels both in the header and in the body
	w.Header().Set(common.AuthTokenHeaderName, token)
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	note, err := s.notes.Create(r.Context(), claimsFromContext(r.Context()), req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func noteID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["noteId"], 10, 64)
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {

	id, err := noteID(r)
	if err != nil {
		writeError(w, common.ErrorNotFound)
		return
	}

	note, err := s.notes.Get(r.Context(), claimsFromContext(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {

	id, err := noteID(r)
	if err != nil {
		writeError(w, common.ErrorNotFound)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	note, err := s.notes.Update(r.Context(), claimsFromContext(r.Context()), id, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {

	id, err := noteID(r)
	if err != nil {
		writeError(w, common.ErrorNotFound)
		return
	}

	if err := s.notes.Delete(r.Context(), claimsFromContext(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{ID: id, Status: "deleted"})
}
