package quantity

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Both quantity types serialize as their text form ("250m", "1.125Gi") in
// JSON and YAML, and parse back through the full validation pipeline.

// MarshalJSON renders the quantity as a JSON string.
func (c CPU) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a JSON string into a CPU quantity.
func (c *CPU) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("CPU quantity must be a JSON string: %w", err)
	}
	parsed, err := ParseCPU(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML renders the quantity as a YAML string.
func (c CPU) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML parses a YAML scalar into a CPU quantity. Unquoted scalars
// are accepted, so `cpu: 250m` and `cpu: "1"` both work.
func (c *CPU) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("CPU quantity must be a YAML scalar, got %v", value.Kind)
	}
	parsed, err := ParseCPU(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON renders the quantity as a JSON string.
func (m Memory) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON parses a JSON string into a memory quantity.
func (m *Memory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("memory quantity must be a JSON string: %w", err)
	}
	parsed, err := ParseMemory(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML renders the quantity as a YAML string.
func (m Memory) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML parses a YAML scalar into a memory quantity. Unquoted
// scalars are accepted, so `memory: 128Mi` works without quoting.
func (m *Memory) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("memory quantity must be a YAML scalar, got %v", value.Kind)
	}
	parsed, err := ParseMemory(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
