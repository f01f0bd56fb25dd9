package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing JezzballConfig, indented for display.
// Editors can use it to validate YAML config files.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
	}
	s := r.Reflect(&JezzballConfig{})
	s.Title = "JezzBall configuration"
	s.Description = "Field, ball, barrier and difficulty settings for the JezzBall engine."

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("config: encode schema: %w", err)
	}
	return out, nil
}
