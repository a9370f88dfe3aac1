package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/buildinfo"
	"github.com/matzehuels/uithings/pkg/demo"
	"github.com/matzehuels/uithings/pkg/errors"
	"github.com/matzehuels/uithings/pkg/geom"
	"github.com/matzehuels/uithings/pkg/pipeline"
	"github.com/matzehuels/uithings/pkg/render"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// =============================================================================
// Demos
// =============================================================================

type demoResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Variants    []string `json:"variants,omitempty"`
	RenderURL   string   `json:"render_url"`
}

func toDemoResponse(d demo.Demo) demoResponse {
	return demoResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Category:    string(d.Category),
		Variants:    d.Variants,
		RenderURL:   "/api/v1/demos/" + d.ID + "/render",
	}
}

func (s *Server) handleListDemos(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && !knownCategory(category) {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "unknown category: %q", category))
		return
	}

	out := []demoResponse{}
	for _, d := range demo.All() {
		if category == "" || strings.EqualFold(string(d.Category), category) {
			out = append(out, toDemoResponse(d))
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func knownCategory(name string) bool {
	for _, c := range demo.Categories {
		if strings.EqualFold(string(c), name) {
			return true
		}
	}
	return false
}

func (s *Server) handleGetDemo(w http.ResponseWriter, r *http.Request) {
	d, err := demo.Lookup(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDemoResponse(d))
}

// =============================================================================
// Rendering
// =============================================================================

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("X-Scene-Hash", res.SceneHash)
	w.Header().Set("X-Cache", cacheStatus(res.CacheInfo.RenderHit))
	_, _ = w.Write(res.Artifacts[format])
}

// renderOptions reads the query string of a render request. Missing canvas
// and offset values fall back to the server defaults.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		DemoID:  chi.URLParam(r, "id"),
		Variant: q.Get("variant"),
		Text:    q.Get("text"),
		Width:   s.width,
		Height:  s.height,
		Offset:  s.offset,
	}

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = render.FormatSVG
	}
	opts.Formats = []string{format}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"offset", &opts.Offset},
		{"scale", &opts.Scale},
	}
	for _, f := range floats {
		if err := floatParam(q.Get(f.name), f.name, f.dst); err != nil {
			return opts, err
		}
	}

	var grid = true
	bools := []struct {
		name string
		dst  *bool
	}{
		{"title", &opts.Title},
		{"grid", &grid},
		{"refresh", &opts.Refresh},
	}
	for _, b := range bools {
		if err := boolParam(q.Get(b.name), b.name, b.dst); err != nil {
			return opts, err
		}
	}
	opts.NoGrid = !grid
	return opts, nil
}

func floatParam(raw, name string, dst *float64) error {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s must be a number, got %q", name, raw)
	}
	*dst = v
	return nil
}

func boolParam(raw, name string, dst *bool) error {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "%s must be a boolean, got %q", name, raw)
	}
	*dst = v
	return nil
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// =============================================================================
// Catalog
// =============================================================================

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	var detailed bool
	if err := boolParam(r.URL.Query().Get("detailed"), "detailed", &detailed); err != nil {
		s.writeError(w, r, err)
		return
	}

	data, hit, err := s.runner.Catalog(r.Context(), format, detailed, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	contentType := render.ContentType(format)
	if format == pipeline.CatalogFormatDOT {
		contentType = "text/vnd.graphviz; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Cache", cacheStatus(hit))
	_, _ = w.Write(data)
}

// =============================================================================
// Placement
// =============================================================================

type rectJSON struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r rectJSON) rect() geom.Rect { return geom.R(r.X, r.Y, r.Width, r.Height) }

func toRectJSON(r geom.Rect) rectJSON {
	return rectJSON{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

type sizeJSON struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// placeRequest mirrors the arguments of annotate.Place. Either label or
// text must be given; text is measured the way demo labels are. A missing
// offset means the server's configured offset, and a missing position means
// automatic.
type placeRequest struct {
	Subject   rectJSON          `json:"subject"`
	Label     *sizeJSON         `json:"label,omitempty"`
	Text      string            `json:"text,omitempty"`
	Container rectJSON          `json:"container"`
	Position  annotate.Position `json:"position"`
	Offset    *float64          `json:"offset,omitempty"`
}

type placeResponse struct {
	Frame     rectJSON          `json:"frame"`
	Label     sizeJSON          `json:"label"`
	Requested annotate.Position `json:"requested"`
	Position  annotate.Position `json:"position"`
	Fits      bool              `json:"fits"`
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
		}
		s.writeError(w, r, err)
		return
	}

	var label geom.Size
	switch {
	case req.Label != nil:
		label = geom.Sz(req.Label.Width, req.Label.Height)
	case req.Text != "":
		label = annotate.MeasureLabel(req.Text, nil)
	default:
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "either label or text is required"))
		return
	}
	offset := s.offset
	if req.Offset != nil {
		offset = *req.Offset
	}

	subject, container := req.Subject.rect(), req.Container.rect()
	frame, err := annotate.PlaceChecked(subject, label, container, req.Position, offset)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, placeResponse{
		Frame:     toRectJSON(frame),
		Label:     sizeJSON{Width: label.W, Height: label.H},
		Requested: req.Position,
		Position:  annotate.Resolve(subject, label, container, req.Position, offset),
		Fits:      container.Standardized().ContainsRect(frame),
	})
}
