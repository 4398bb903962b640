package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/kolamstudio/kolam/pkg/buildinfo"
	kerrors "github.com/kolamstudio/kolam/pkg/errors"
	"github.com/kolamstudio/kolam/pkg/guidance"
	kolamio "github.com/kolamstudio/kolam/pkg/io"
	"github.com/kolamstudio/kolam/pkg/kolam"
	"github.com/kolamstudio/kolam/pkg/pipeline"
	"github.com/kolamstudio/kolam/pkg/render"
	"github.com/kolamstudio/kolam/pkg/render/drawing"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code    kerrors.Code `json:"code"`
	Message string       `json:"message"`
}

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type archetypesResponse struct {
	Archetypes []kolam.Archetype `json:"archetypes"`
	Symmetries []kolam.Symmetry  `json:"symmetries"`
	Styles     []string          `json:"styles"`
	Formats    []string          `json:"formats"`
	VizTypes   []string          `json:"viz_types"`
}

// patternResponse wraps the exported pattern document.
type patternResponse struct {
	ID          string              `json:"id"`
	Pattern     json.RawMessage     `json:"pattern"`
	Request     kolam.Request       `json:"request"`
	Stats       kolam.Stats         `json:"stats"`
	Hash        string              `json:"hash"`
	Cached      bool                `json:"cached"`
	Guidance    *guidance.Guidance  `json:"guidance,omitempty"`
	Coerced     []guidance.Coercion `json:"coerced"`
	Fallback    bool                `json:"fallback"`
	Description string              `json:"description"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleArchetypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, archetypesResponse{
		Archetypes: kolam.Archetypes(),
		Symmetries: kolam.Symmetries(),
		Styles:     drawing.Styles(),
		Formats:    render.Formats(),
		VizTypes:   pipeline.VizTypes(),
	})
}

// handlePatterns synthesizes a pattern. The body is a pipeline.Options
// object; render options in it are ignored.
func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decodeBody(w, r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{render.FormatJSON}
	opts.VizType = ""
	opts.Style = ""
	opts.Logger = s.logger

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	id := uuid.NewString()
	w.Header().Set("X-Pattern-ID", id)
	coerced := res.Coerced
	if coerced == nil {
		coerced = []guidance.Coercion{}
	}
	writeJSON(w, http.StatusOK, patternResponse{
		ID:          id,
		Pattern:     json.RawMessage(res.Artifacts[render.FormatJSON]),
		Request:     res.Request,
		Stats:       res.Pattern.Stats(),
		Hash:        res.PatternHash,
		Cached:      res.CacheInfo.PatternHit,
		Guidance:    res.Guidance,
		Coerced:     coerced,
		Fallback:    res.Pattern.Fallback,
		Description: res.Pattern.Description,
	})
}

// handleRender renders a pattern document from the body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := pipeline.Options{
		VizType: q.Get("viz"),
		Style:   q.Get("style"),
		Lattice: q.Get("lattice") == "true",
		Labels:  q.Get("labels") == "true",
		Logger:  s.logger,
	}
	format := q.Get("format")
	if format == "" {
		format = render.FormatSVG
	}
	opts.Formats = []string{format}
	if v := q.Get("scale"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, r, kerrors.New(kerrors.ErrCodeInvalidInput, "scale must be an integer, got %q", v))
			return
		}
		opts.Scale = n
	}
	if err := opts.ValidateForRender(); err != nil {
		s.writeError(w, r, err)
		return
	}

	p, dropped, err := kolamio.ReadJSON(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts, hash, hit, err := s.runner.RenderWithCacheInfo(r.Context(), p, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", render.ContentType(format))
	h.Set("X-Pattern-Hash", hash)
	h.Set("X-Cache", cacheStatus(hit))
	if dropped.Any() {
		h.Set("X-Dropped-Dots", strconv.Itoa(dropped.Dots))
		h.Set("X-Dropped-Connections", strconv.Itoa(dropped.Connections))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, kerrors.New(kerrors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path))
}

// decodeBody strictly decodes a JSON body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return kerrors.Wrap(kerrors.ErrCodeInvalidInput, err, "decode request body: %v", err)
	}
	return nil
}

// writeError maps err to a status and JSON body. Internal errors are logged
// and their details withheld.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := kerrors.HTTPStatus(err)
	resp := errorResponse{Code: kerrors.GetCode(err), Message: kerrors.UserMessage(err)}

	if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		status = http.StatusGatewayTimeout
		resp = errorResponse{Code: kerrors.ErrCodeTimeout, Message: "request timed out"}
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		if resp.Code == "" {
			resp = errorResponse{Code: kerrors.ErrCodeInternal, Message: "internal error"}
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
