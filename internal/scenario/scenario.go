package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"asteroid-sim/internal/impact"
)

// ErrEmpty is returned for scenarios without asteroids.
var ErrEmpty = errors.New("scenario has no asteroids")

// Scenario is a named, ordered set of asteroids to analyse in one batch.
type Scenario struct {
	Name        string     `yaml:"name,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Asteroids   []Asteroid `yaml:"asteroids"`
}

// Asteroid is one batch entry. Note is free text carried for display only.
type Asteroid struct {
	Name     string             `yaml:"name"`
	Diameter float64            `yaml:"diameter"`
	Velocity float64            `yaml:"velocity"`
	Distance float64            `yaml:"distance"`
	Type     impact.AsteroidType `yaml:"type"`
	Note     string             `yaml:"note,omitempty"`
}

// Load reads a YAML scenario definition from disk.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML scenario definition.
func Parse(b []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Asteroids) == 0 {
		return nil, ErrEmpty
	}
	return &s, nil
}

// Inputs converts the entries to engine inputs, preserving order.
func (s *Scenario) Inputs() []impact.AsteroidInput {
	out := make([]impact.AsteroidInput, len(s.Asteroids))
	for i, a := range s.Asteroids {
		out[i] = impact.AsteroidInput{
			Name:     a.Name,
			Diameter: a.Diameter,
			Velocity: a.Velocity,
			Distance: a.Distance,
			Type:     a.Type,
		}
	}
	return out
}

// UnknownTypes lists entry names whose type is not a recognised class.
// Such entries still analyse, using the default density and no composition.
func (s *Scenario) UnknownTypes() []string {
	var names []string
	for _, a := range s.Asteroids {
		if !a.Type.Known() {
			names = append(names, a.Name)
		}
	}
	return names
}
