// internal/config/settings.go
package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type Settings struct {
	Cluster   ClusterSettings   `yaml:"cluster"`
	Animation AnimationSettings `yaml:"animation"`
}

type ClusterSettings struct {
	MaxIterations     int     `yaml:"max_iterations"`
	AcceptProbability float64 `yaml:"accept_probability"`
}

type AnimationSettings struct {
	Duration   float64 `yaml:"duration"`
	Arc        float64 `yaml:"arc"`
	StartScale float64 `yaml:"start_scale"`
	Easing     string  `yaml:"easing"`
}

// Defaults decodes the settings compiled into the binary.
func Defaults() (Settings, error) {
	return Parse(defaultsYAML)
}

// Parse decodes and validates a settings document.
func Parse(raw []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("defaults.yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Cluster.MaxIterations <= 0 {
		return fmt.Errorf("cluster.max_iterations must be positive, got %d", s.Cluster.MaxIterations)
	}
	if p := s.Cluster.AcceptProbability; p < 0 || p > 1 {
		return fmt.Errorf("cluster.accept_probability must be in [0,1], got %v", p)
	}
	if s.Animation.Duration <= 0 {
		return fmt.Errorf("animation.duration must be positive, got %v", s.Animation.Duration)
	}
	if s.Animation.StartScale <= 0 {
		return fmt.Errorf("animation.start_scale must be positive, got %v", s.Animation.StartScale)
	}
	if s.Animation.Easing == "" {
		return fmt.Errorf("animation.easing is empty")
	}
	return nil
}
