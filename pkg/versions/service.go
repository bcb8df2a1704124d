package versions

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pyver/pyver/pkg/serializer"
	"github.com/pyver/pyver/pkg/version"
)

const defaultMaxBulkVersions = 1000

// Service handles version API requests.
type Service struct {
	// MaxBulkVersions caps the number of versions accepted by sort requests.
	MaxBulkVersions int
}

// NewService creates a Service with default limits.
func NewService() *Service {
	return &Service{
		MaxBulkVersions: defaultMaxBulkVersions,
	}
}

// HandleParse processes GET /v1/version/parse requests.
// Query parameters:
//   - v: the version string to parse (required)
func (s *Service) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := r.URL.Query().Get("v")
	if raw == "" {
		http.Error(w, "Bad Request: missing required parameter 'v'", http.StatusBadRequest)
		return
	}

	v, err := version.ParseVersion(raw)
	if err != nil {
		slog.Debug("failed to parse version", "input", raw, "error", err)
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	resp := ParseResponse{
		Version:  NewParsedVersion(raw, v),
		ParsedAt: time.Now().UTC(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleCheck processes GET /v1/version/check requests.
// Query parameters:
//   - v: the version string to check (required)
//   - require: comma-separated version specifiers (required)
//   - excludePrereleases: "true" to reject prerelease versions unless the
//     specifiers mention one explicitly
func (s *Service) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()

	raw := q.Get("v")
	if raw == "" {
		http.Error(w, "Bad Request: missing required parameter 'v'", http.StatusBadRequest)
		return
	}
	rawRequire := q.Get("require")
	if rawRequire == "" {
		http.Error(w, "Bad Request: missing required parameter 'require'", http.StatusBadRequest)
		return
	}

	v, err := version.ParseVersion(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	specs, err := version.ParseSpecifiers(rawRequire)
	if err != nil {
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	excludePre := q.Get("excludePrereleases") == "true"

	resp := CheckResponse{
		Version:            v.String(),
		Require:            specs.String(),
		Compatible:         specs.ContainsWith(v, version.MatchOptions{ExcludePrereleases: excludePre}),
		ExcludePrereleases: excludePre,
		CheckedAt:          time.Now().UTC(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleSort processes POST /v1/version/sort requests.
// The body is a SortRequest JSON document; the response lists the versions
// in canonical form, sorted ascending (or descending with reverse).
func (s *Service) HandleSort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Error("method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
		return
	}

	if len(req.Versions) == 0 {
		http.Error(w, "Bad Request: no versions provided", http.StatusBadRequest)
		return
	}

	maxBulk := s.MaxBulkVersions
	if maxBulk <= 0 {
		maxBulk = defaultMaxBulkVersions
	}
	if len(req.Versions) > maxBulk {
		http.Error(w, fmt.Sprintf("Bad Request: too many versions (max %d)", maxBulk),
			http.StatusBadRequest)
		return
	}

	parsed := make([]version.Version, 0, len(req.Versions))
	var skipped []string
	for _, raw := range req.Versions {
		v, err := version.ParseVersion(raw)
		if err != nil {
			if req.SkipInvalid {
				skipped = append(skipped, raw)
				continue
			}
			http.Error(w, fmt.Sprintf("Bad Request: %v", err), http.StatusBadRequest)
			return
		}
		parsed = append(parsed, v)
	}

	version.Sort(parsed)

	out := make([]string, len(parsed))
	for i, v := range parsed {
		if req.Reverse {
			out[len(parsed)-1-i] = v.String()
		} else {
			out[i] = v.String()
		}
	}

	resp := SortResponse{
		Versions: out,
		Skipped:  skipped,
		Count:    len(out),
		SortedAt: time.Now().UTC(),
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
