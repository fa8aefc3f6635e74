// Package model defines the shared domain types for the orrery.
package model

import "fmt"

// BodyKind distinguishes the central star from orbiting planets.
type BodyKind string

const (
	KindStar   BodyKind = "star"
	KindPlanet BodyKind = "planet"
)

// LocalizedText holds a string in both supported locales.
type LocalizedText struct {
	Default   string `yaml:"default" json:"default"`
	Alternate string `yaml:"alternate" json:"alternate"`
}

// LocalizedList holds a list of strings in both supported locales.
type LocalizedList struct {
	Default   []string `yaml:"default" json:"default"`
	Alternate []string `yaml:"alternate" json:"alternate"`
}

// Body is the static configuration of a celestial body. Instances are
// immutable after catalog load; per-frame state lives in Transform.
type Body struct {
	ID          string        `yaml:"id" json:"id"`
	Kind        BodyKind      `yaml:"kind" json:"kind"`
	Name        LocalizedText `yaml:"name" json:"name"`
	Description LocalizedText `yaml:"description" json:"description"`
	Facts       LocalizedList `yaml:"facts" json:"facts"`

	// Visual hints for the renderer.
	Color   string `yaml:"color" json:"color"`
	Texture string `yaml:"texture" json:"texture"`

	// Kinematic constants. Distance is the orbital radius in scene units;
	// 0 marks the non-orbiting star.
	Scale         float64 `yaml:"scale" json:"scale"`
	OrbitSpeed    float64 `yaml:"orbit_speed" json:"orbit_speed"`
	RotationSpeed float64 `yaml:"rotation_speed" json:"rotation_speed"`
	Distance      float64 `yaml:"distance" json:"distance"`
}

// Validate checks the body's internal invariants.
func (b *Body) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("body has empty id")
	}
	switch b.Kind {
	case KindStar:
		if b.Distance != 0 {
			return fmt.Errorf("star %q must have distance 0, got %g", b.ID, b.Distance)
		}
	case KindPlanet:
		if b.Distance <= 0 {
			return fmt.Errorf("planet %q must have distance > 0, got %g", b.ID, b.Distance)
		}
	default:
		return fmt.Errorf("body %q has unknown kind %q", b.ID, b.Kind)
	}
	if b.Name.Default == "" {
		return fmt.Errorf("body %q has no default name", b.ID)
	}
	return nil
}

// Vec3 is a position in scene space. The orbital plane is Y=0.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Transform is the per-frame derived state of a body. It is recomputed
// every tick and never persisted.
type Transform struct {
	BodyID   string  `json:"body_id"`
	Rotation float64 `json:"rotation"`
	Position Vec3    `json:"position"`
}
