// Package resolver derives object-store download URLs for city datasets.
package resolver

import (
	"fmt"
	"net/url"

	"github.com/rotisserie/eris"

	"github.com/peopleforbikes/bna-cli/internal/dataset"
	"github.com/peopleforbikes/bna-cli/internal/model"
)

// DefaultBaseURL is the object-store results prefix every per-city archive is
// published under. It is a fixed contract with the store; changing it
// requires a matching change on the store side.
const DefaultBaseURL = "https://s3.amazonaws.com/production-pfb-storage-us-east-1/results"

var (
	// ErrInvalidURL is returned when a composed dataset URL is not a valid
	// absolute URL.
	ErrInvalidURL = eris.New("resolver: invalid dataset url")

	// ErrUnsupportedDataset is returned when a kind outside the closed
	// enumeration reaches the resolver. Unreachable for defined kinds.
	ErrUnsupportedDataset = eris.New("resolver: unsupported dataset kind")
)

// Resolver builds dataset URLs under a configurable store prefix.
// It holds no mutable state; a single Resolver is safe for unbounded
// concurrent use.
type Resolver struct {
	baseURL string
}

// New returns a Resolver rooted at baseURL, or at DefaultBaseURL when
// baseURL is empty.
func New(baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Resolver{baseURL: baseURL}
}

// URL returns the download location of the given dataset for city, formatted
// {base}/{uuid}/{dataset}.zip. The city is not mutated and no network access
// happens; resolution is pure string composition plus validation.
func (r *Resolver) URL(city model.City, kind dataset.Kind) (*url.URL, error) {
	name := kind.String()
	if name == "" {
		return nil, eris.Wrapf(ErrUnsupportedDataset, "kind %d", int(kind))
	}

	// The identifier becomes a path segment verbatim, so any character that
	// would need percent-encoding breaks URL syntax.
	if url.PathEscape(city.UUID) != city.UUID {
		return nil, eris.Wrapf(ErrInvalidURL, "uuid %q is not a valid path segment", city.UUID)
	}

	raw := fmt.Sprintf("%s/%s/%s.zip", r.baseURL, city.UUID, name)
	u, err := url.Parse(raw)
	if err != nil {
		return nil, eris.Wrapf(ErrInvalidURL, "parse %s: %v", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, eris.Wrapf(ErrInvalidURL, "%s is not absolute", raw)
	}

	return u, nil
}
