package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"sourcescore/internal/csl"
	"sourcescore/internal/domain"
	"sourcescore/internal/services/reliability"
)

type scoreRequest struct {
	Domain  string          `json:"domain"`
	URL     string          `json:"url"`
	CSLJSON json.RawMessage `json:"csl_json"`
	Context string          `json:"context"`
}

type scoreResponse struct {
	SourceQuality      int              `json:"source_quality"`
	RSPLabel           string           `json:"rsp_label"`
	RSPNotes           *string          `json:"rsp_notes"`
	ReliabilityFactors domain.FactorSet `json:"reliability_factors"`
	Recommendations    []string         `json:"recommendations"`
}

type lookupResponse struct {
	Domain        string  `json:"domain"`
	RSPLabel      string  `json:"rsp_label"`
	RSPNotes      *string `json:"rsp_notes"`
	BaseScore     int     `json:"base_score"`
	Match         string  `json:"match"`
	MatchedDomain string  `json:"matched_domain,omitempty"`
}

func (s *Server) postScore(w http.ResponseWriter, r *http.Request) {
	var body scoreRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&body); err != nil {
		s.metrics.ObserveRejected("bad_json")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req := domain.ScoreRequest{Domain: body.Domain, URL: body.URL, Context: body.Context}
	if len(body.CSLJSON) > 0 && string(body.CSLJSON) != "null" {
		md, problems, err := csl.Decode(body.CSLJSON)
		if err != nil {
			s.metrics.ObserveRejected("bad_csl")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		for _, p := range problems {
			s.logger.Debug("citation field ignored", "error", p)
		}
		req.Metadata = &md
	}

	res, err := s.scorer.Score(req)
	if errors.Is(err, domain.ErrMissingDomain) {
		s.metrics.ObserveRejected("missing_domain")
		writeError(w, http.StatusBadRequest, "No domain provided or extractable")
		return
	}
	if err != nil {
		s.logger.Error("source scoring error", "error", err)
		writeError(w, http.StatusInternalServerError, "Source scoring failed")
		return
	}
	s.metrics.ObserveScore(string(res.Match), res.Quality)

	writeJSON(w, http.StatusOK, scoreResponse{
		SourceQuality:      res.Quality,
		RSPLabel:           res.Label,
		RSPNotes:           optional(res.Notes),
		ReliabilityFactors: res.Factors,
		Recommendations:    res.Recommendations,
	})
}

// hostParam is the {domain} path parameter. Binding unescapes it and rejects
// anything that is not a host name.
type hostParam string

func (h *hostParam) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if !reliability.IsHostName(reliability.NormalizeDomain(raw)) {
		return fmt.Errorf("%q is not a host name", raw)
	}
	*h = hostParam(raw)
	return nil
}

func (s *Server) getRSP(w http.ResponseWriter, r *http.Request) {
	var host hostParam
	err := runtime.BindStyledParameterWithOptions("simple", "domain", chi.URLParam(r, "domain"), &host,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		s.metrics.ObserveRejected("bad_domain")
		writeError(w, http.StatusBadRequest, "Invalid format for parameter domain: "+err.Error())
		return
	}
	name := string(host)

	info := s.scorer.Lookup(name)
	s.metrics.ObserveLookup(string(info.Match))
	writeJSON(w, http.StatusOK, lookupResponse{
		Domain:        name,
		RSPLabel:      info.Label,
		RSPNotes:      optional(info.Notes),
		BaseScore:     info.BaseScore,
		Match:         string(info.Match),
		MatchedDomain: info.MatchedDomain,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
