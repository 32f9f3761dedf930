package gomud

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseItem parses a gomud item YAML file.
// Unknown fields in the source are silently ignored.
//
// Precondition: data must be valid YAML.
// Postcondition: returns a non-nil GomudItem or a non-nil error.
func ParseItem(data []byte) (*GomudItem, error) {
	var it GomudItem
	if err := yaml.Unmarshal(data, &it); err != nil {
		return nil, fmt.Errorf("parsing gomud item: %w", err)
	}
	return &it, nil
}
