package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/uithings/pkg/errors"
)

type errorResponse struct {
	Error     bool   `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError maps err to a status and a coded JSON body. Internal failures
// are logged and reported without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "path", r.URL.Path, "error", err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{
		Error:     true,
		Code:      string(code),
		Message:   msg,
		RequestID: RequestID(r.Context()),
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
		Error:     true,
		Code:      string(errors.ErrCodeInvalidInput),
		Message:   r.Method + " is not allowed on " + r.URL.Path,
		RequestID: RequestID(r.Context()),
	})
}
