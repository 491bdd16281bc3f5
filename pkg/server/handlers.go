package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rashika27/frameview/pkg/errors"
	"github.com/rashika27/frameview/pkg/pipeline"
	"github.com/rashika27/frameview/pkg/viewer"
)

// stateResponse is the JSON shape of /api/state and /api/upload.
type stateResponse struct {
	ID       string      `json:"id"`
	Source   string      `json:"source,omitempty"`
	Message  string      `json:"message"`
	Error    string      `json:"error,omitempty"`
	Code     errors.Code `json:"code,omitempty"`
	Members  int         `json:"members"`
	Nodes    int         `json:"nodes"`
	Skipped  int         `json:"skipped"`
	LoadedAt *time.Time  `json:"loaded_at,omitempty"`
}

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func newStateResponse(st *viewer.State) stateResponse {
	resp := stateResponse{
		ID:      st.ID,
		Source:  st.Source,
		Message: st.Message,
		Code:    st.Code(),
		Members: st.Frame.MemberCount(),
		Nodes:   st.Frame.NodeCount(),
		Skipped: len(st.Scene.Skipped),
	}
	if st.Err != nil {
		resp.Error = errors.UserMessage(st.Err)
	}
	if !st.LoadedAt.IsZero() {
		t := st.LoadedAt
		resp.LoadedAt = &t
	}
	return resp
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newStateResponse(s.store.Current()))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooBig *http.MaxBytesError
		if stderrors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidInput, "upload exceeds the size limit")
			return
		}
		writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "expected a multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, `missing form field "file"`)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrCodeFileRead, "could not read upload")
		return
	}

	st, err := s.store.Upload(r.Context(), header.Filename, data)
	if wantsHTML(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		status := http.StatusInternalServerError
		if errors.IsLoadFailure(err) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, st.Code(), st.Message)
		return
	}
	writeJSON(w, http.StatusOK, newStateResponse(st))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newStateResponse(s.store.Reset()))
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatJSON, "application/json")
}

func (s *Server) handleTopology(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatSVG, "image/svg+xml")
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	s.serveArtifact(w, r, pipeline.FormatHTML, "text/html; charset=utf-8")
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, format, contentType string) {
	data, err := s.store.Render(r.Context(), format)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errors.ErrCodeNotFound) {
			status = http.StatusNotFound
		} else {
			s.logger.Error("render failed", "format", format, "err", err)
		}
		writeError(w, status, errors.GetCode(err), errors.UserMessage(err))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// wantsHTML reports whether the request came from the index page form
// rather than an API client.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errors.Code, msg string) {
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Error: msg})
}
