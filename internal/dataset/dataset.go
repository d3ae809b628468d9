// Package dataset defines the closed set of dataset kinds published per city.
package dataset

import "github.com/rotisserie/eris"

// Kind identifies one variety of downloadable city dataset.
type Kind int

const (
	// NeighborhoodWays is the neighborhood street/way geometry dataset.
	NeighborhoodWays Kind = iota
)

// nameNeighborhoodWays is the canonical object-store name of the dataset.
const nameNeighborhoodWays = "neighborhood_ways"

// ErrUnknownDataset is returned when a name outside the enumeration is parsed.
var ErrUnknownDataset = eris.New("dataset: unknown dataset name")

// Parse maps a canonical name back to its Kind. Unknown names are never
// defaulted; they fail with ErrUnknownDataset.
func Parse(name string) (Kind, error) {
	switch name {
	case nameNeighborhoodWays:
		return NeighborhoodWays, nil
	default:
		return 0, eris.Wrapf(ErrUnknownDataset, "parse %q", name)
	}
}

// String returns the canonical lowercase name used in URLs and CLI input.
// The switch must stay exhaustive over every Kind; the round-trip test over
// All catches a variant added without a name.
func (k Kind) String() string {
	switch k {
	case NeighborhoodWays:
		return nameNeighborhoodWays
	}
	return ""
}

// All returns every defined kind, in declaration order.
func All() []Kind {
	return []Kind{NeighborhoodWays}
}

// Names returns the canonical names of every defined kind, in declaration
// order.
func Names() []string {
	kinds := All()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
