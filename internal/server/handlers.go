package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"overlayd/internal/fetch"
	"overlayd/internal/imaging"
)

// errEncode marks a failure to serialize the composited image.
var errEncode = errors.New("encode failed")

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// imageParams holds the validated parameters of a /image request.
type imageParams struct {
	url     string
	variant imaging.Variant
	user    *imaging.RGBColor
	fade    float64
}

// parseImageParams validates the /image query before any I/O happens.
// Every failure wraps imaging.ErrInvalidParameter.
func parseImageParams(q url.Values) (*imageParams, error) {
	rawURL, err := parseSourceURL(q)
	if err != nil {
		return nil, err
	}

	variant, err := imaging.ParseVariant(q.Get("gradient_variant"))
	if err != nil {
		return nil, err
	}

	var user *imaging.RGBColor
	if variant == imaging.VariantUserDefined {
		raw := q.Get("rgb")
		if raw == "" {
			return nil, fmt.Errorf("%w: rgb is required when gradient_variant=%s",
				imaging.ErrInvalidParameter, imaging.VariantUserDefined)
		}
		c, err := imaging.ParseRGB(raw)
		if err != nil {
			return nil, err
		}
		user = &c
	}

	fade := 0.0
	if raw := q.Get("fade"); raw != "" {
		fade, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: fade %q is not a decimal", imaging.ErrInvalidParameter, raw)
		}
		if math.IsNaN(fade) || fade < 0.0 || fade > 1.0 {
			return nil, fmt.Errorf("%w: fade %g outside [0.0, 1.0]", imaging.ErrInvalidParameter, fade)
		}
	}

	return &imageParams{url: rawURL, variant: variant, user: user, fade: fade}, nil
}

// parseSourceURL validates the mandatory url parameter: it must be an
// absolute http(s) URL.
func parseSourceURL(q url.Values) (string, error) {
	raw := q.Get("url")
	if raw == "" {
		return "", fmt.Errorf("%w: missing url", imaging.ErrInvalidParameter)
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return "", fmt.Errorf("%w: url must be an absolute http(s) URL", imaging.ErrInvalidParameter)
	}
	return raw, nil
}

// handleImage runs the full overlay pipeline for one request.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	params, err := parseImageParams(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	src, err := s.fetcher.Fetch(r.Context(), params.url)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	buf, err := imaging.NewPixelBuffer(src)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	base, err := imaging.Extract(buf, params.variant, params.user)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	overlay, err := imaging.BuildVerticalOverlay(
		imaging.OverlaySpec{Base: base, Fade: params.fade},
		buf.Width(), buf.Height(),
	)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := imaging.Composite(buf, overlay)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Output is always PNG, whatever the source container was.
	var body bytes.Buffer
	if err := png.Encode(&body, out.Image()); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %v", errEncode, err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body.Bytes()); err != nil {
		s.log.Warn("writing response", "err", err)
	}
}

// handlePalette returns the dominant colors of a remote image as JSON.
func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rawURL, err := parseSourceURL(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	count := 5
	if raw := q.Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 1 {
			s.writeError(w, r, fmt.Errorf("%w: count %q must be a positive integer",
				imaging.ErrInvalidParameter, raw))
			return
		}
		if count > 64 {
			count = 64
		}
	}

	src, err := s.fetcher.Fetch(r.Context(), rawURL)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	buf, err := imaging.NewPixelBuffer(src)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := imaging.DominantPalette(buf, count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeError classifies err into an error kind and HTTP status and writes
// the JSON error body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := classifyError(err)
	if status >= 500 {
		s.log.Error("request failed", "path", r.URL.Path, "kind", kind, "err", err)
	} else {
		s.log.Warn("request rejected", "path", r.URL.Path, "kind", kind, "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: kind, Message: err.Error()})
}

// classifyError maps pipeline errors to an error kind and HTTP status.
func classifyError(err error) (string, int) {
	switch {
	case errors.Is(err, imaging.ErrInvalidParameter):
		return "invalid_parameter", http.StatusBadRequest
	case errors.Is(err, imaging.ErrInvalidImage):
		return "invalid_image", http.StatusUnprocessableEntity
	case errors.Is(err, fetch.ErrFetch):
		return "fetch_failure", http.StatusBadGateway
	case errors.Is(err, fetch.ErrDecode):
		return "decode_failure", http.StatusBadGateway
	case errors.Is(err, imaging.ErrDimensionMismatch):
		return "dimension_mismatch", http.StatusInternalServerError
	case errors.Is(err, errEncode):
		return "encode_failure", http.StatusInternalServerError
	default:
		return "internal", http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encoding response", "err", err)
	}
}
