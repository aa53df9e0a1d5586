package suite

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a suite manifest.
func Load(name string) (*Suite, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var s Suite
	if err := yaml.UnmarshalWithOptions(b, &s, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s.applyDefaults()
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &s, nil
}
