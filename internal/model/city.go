package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// City represents one entry from the city input table.
type City struct {
	// Name of the city, as given in the input.
	Name string `json:"name" yaml:"name"`
	// Country where the city is located.
	Country string `json:"country" yaml:"country"`
	// State where the city is located. Never empty: construction back-fills
	// it from Country when the input names no subdivision.
	State string `json:"state" yaml:"state"`
	// UUID identifies the analysis run that produced the city's datasets.
	// Each run assigns a fresh one, so it behaves like a version number.
	UUID string `json:"uuid" yaml:"uuid"`
}

// NewCity builds a City. An empty state falls back to the country name,
// since many countries have no subdivisions worth naming.
func NewCity(name, country, state, runID string) City {
	if state == "" {
		state = country
	}
	return City{Name: name, Country: country, State: state, UUID: runID}
}

// FullName returns the city's full name, formatted {COUNTRY}-{STATE}-{CITY}.
func (c City) FullName() string {
	return fmt.Sprintf("%s-%s-%s", c.Country, c.State, c.Name)
}

// ArchiveName returns the full name with the ".zip" extension.
func (c City) ArchiveName() string {
	return c.FullName() + ".zip"
}

// ValidateUUID checks that the run identifier is a well-formed UUID.
// The loader treats identifiers as opaque; this is an opt-in strictness
// check for callers that want it.
func (c City) ValidateUUID() error {
	if _, err := uuid.Parse(c.UUID); err != nil {
		return eris.Wrapf(err, "city %s: bad run identifier %q", c.FullName(), c.UUID)
	}
	return nil
}
