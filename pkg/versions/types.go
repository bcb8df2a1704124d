package versions

import (
	"time"

	"github.com/pyver/pyver/pkg/version"
)

const (
	// APIVersion is the current API version for version operations
	APIVersion = "v1"
)

// ParsedVersion is the wire representation of a parsed version.
type ParsedVersion struct {
	Input     string      `json:"input"`
	Canonical string      `json:"canonical"`
	Epoch     int         `json:"epoch"`
	Release   []int       `json:"release"`
	Pre       *PreSegment `json:"pre,omitempty"`
	Post      *int        `json:"post,omitempty"`
	Dev       *int        `json:"dev,omitempty"`
	Local     string      `json:"local,omitempty"`

	IsPrerelease bool `json:"isPrerelease"`
	IsPostVer    bool `json:"isPostrelease"`
	IsDevVer     bool `json:"isDevrelease"`
	IsLocalVer   bool `json:"isLocal"`
}

// PreSegment is the wire representation of a prerelease segment.
type PreSegment struct {
	Kind   string `json:"kind"`
	Number int    `json:"number"`
}

// NewParsedVersion builds the wire representation for v as parsed from input.
func NewParsedVersion(input string, v version.Version) ParsedVersion {
	p := ParsedVersion{
		Input:        input,
		Canonical:    v.String(),
		Epoch:        v.Epoch,
		Release:      v.Release,
		Post:         v.Post,
		Dev:          v.Dev,
		IsPrerelease: v.IsPre(),
		IsPostVer:    v.IsPost(),
		IsDevVer:     v.IsDev(),
		IsLocalVer:   v.IsLocal(),
	}
	if v.Pre != nil {
		p.Pre = &PreSegment{
			Kind:   string(v.Pre.Kind),
			Number: v.Pre.Number,
		}
	}
	if v.IsLocal() {
		p.Local = v.LocalString()
	}
	return p
}

// ParseResponse is the response payload for parse requests.
type ParseResponse struct {
	Version  ParsedVersion `json:"version"`
	ParsedAt time.Time     `json:"parsedAt"`
}

// CheckResponse is the response payload for check requests.
type CheckResponse struct {
	Version            string    `json:"version"`
	Require            string    `json:"require"`
	Compatible         bool      `json:"compatible"`
	ExcludePrereleases bool      `json:"excludePrereleases"`
	CheckedAt          time.Time `json:"checkedAt"`
}

// SortRequest is the request payload for sort requests.
type SortRequest struct {
	Versions []string `json:"versions"`
	Reverse  bool     `json:"reverse,omitempty"`

	// SkipInvalid drops unparseable entries instead of failing the request.
	SkipInvalid bool `json:"skipInvalid,omitempty"`
}

// SortResponse is the response payload for sort requests.
type SortResponse struct {
	Versions []string  `json:"versions"`
	Skipped  []string  `json:"skipped,omitempty"`
	Count    int       `json:"count"`
	SortedAt time.Time `json:"sortedAt"`
}
