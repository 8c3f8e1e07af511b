// Package config loads named CPU/memory resource specifications from
// ConfigMap data and from config files. Entries are plain strings in the
// quantity text form ("500m", "128Mi") and resolve into the typed
// quantities, so every value in a loaded config has passed full validation.
package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/llm-d-incubation/resource-quantities/internal/logging"
	"github.com/llm-d-incubation/resource-quantities/pkg/kube"
	"github.com/llm-d-incubation/resource-quantities/pkg/quantity"
)

const (
	// DefaultResourceConfigMapName is the default name of the ConfigMap that
	// stores per-component resource specifications.
	DefaultResourceConfigMapName = "resource-spec-config"

	// GlobalDefaultsKey is the ConfigMap key holding defaults inherited by
	// every component entry.
	GlobalDefaultsKey = "default"
)

// ResourceEntry is one resource specification as written in a ConfigMap or
// config file: textual quantities plus the component they apply to.
type ResourceEntry struct {
	// Component is the component identifier (only used in override entries).
	Component string `yaml:"component,omitempty" json:"component,omitempty"`

	// CPU is the CPU quantity in text form, e.g. "500m" or "2".
	CPU string `yaml:"cpu,omitempty" json:"cpu,omitempty"`

	// Memory is the memory quantity in text form, e.g. "128Mi" or "1Gi".
	Memory string `yaml:"memory,omitempty" json:"memory,omitempty"`
}

// Validate parses both quantity strings, surfacing the quantity error kinds
// for malformed, negative, or fractional values. Empty strings are allowed
// and mean "inherit or zero".
func (e *ResourceEntry) Validate() error {
	if e.CPU != "" {
		if _, err := quantity.ParseCPU(e.CPU); err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
	}
	if e.Memory != "" {
		if _, err := quantity.ParseMemory(e.Memory); err != nil {
			return fmt.Errorf("memory: %w", err)
		}
	}
	return nil
}

// ResourceEntryData holds loaded resource entries keyed by component, plus
// the GlobalDefaultsKey entry when present.
type ResourceEntryData map[string]ResourceEntry

// ParseResourceConfigMap parses per-component resource entries from a
// ConfigMap's data. The ConfigMap format:
//   - "default": quantities inherited by all components
//   - "<override-name>": per-component entry with a component field
//
// Invalid entries are logged and skipped rather than failing the whole load,
// matching how a controller consumes user-editable ConfigMaps.
func ParseResourceConfigMap(data map[string]string) ResourceEntryData {
	if data == nil {
		return make(ResourceEntryData)
	}

	out := make(ResourceEntryData)
	componentToKeys := make(map[string][]string)

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entryStr := data[key]

		var entry ResourceEntry
		if err := yaml.Unmarshal([]byte(entryStr), &entry); err != nil {
			ctrl.Log.Info("Failed to parse resource entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if err := entry.Validate(); err != nil {
			ctrl.Log.Info("Invalid resource entry, skipping",
				"key", key,
				"error", err)
			continue
		}

		if key == GlobalDefaultsKey {
			out[GlobalDefaultsKey] = entry
			continue
		}

		if entry.Component == "" {
			ctrl.Log.Info("Skipping resource entry without component field",
				"key", key)
			continue
		}

		if existingKeys, exists := componentToKeys[entry.Component]; exists {
			ctrl.Log.Info("Duplicate component found in resource ConfigMap - first key wins",
				"component", entry.Component,
				"winningKey", existingKeys[0],
				"duplicateKey", key)
			continue
		}
		componentToKeys[entry.Component] = append(componentToKeys[entry.Component], key)

		out[entry.Component] = entry
	}

	ctrl.Log.V(logging.DEBUG).Info("Parsed resource config",
		"componentCount", len(out))

	return out
}

// GetComponentEntry returns the effective entry for a component, merging the
// component-specific entry with global defaults. Unset fields inherit.
func (data ResourceEntryData) GetComponentEntry(component string) ResourceEntry {
	defaults := data[GlobalDefaultsKey]
	entry, hasEntry := data[component]

	if !hasEntry {
		return defaults
	}

	result := defaults
	if entry.Component != "" {
		result.Component = entry.Component
	}
	if entry.CPU != "" {
		result.CPU = entry.CPU
	}
	if entry.Memory != "" {
		result.Memory = entry.Memory
	}
	return result
}

// ResolveComponent returns the typed resource pair for a component. Fields
// left empty after defaulting resolve to zero quantities.
func (data ResourceEntryData) ResolveComponent(component string) (kube.Resources, error) {
	entry := data.GetComponentEntry(component)

	var out kube.Resources
	if entry.CPU != "" {
		cpu, err := quantity.ParseCPU(entry.CPU)
		if err != nil {
			return kube.Resources{}, fmt.Errorf("component %q cpu: %w", component, err)
		}
		out.CPU = cpu
	}
	if entry.Memory != "" {
		mem, err := quantity.ParseMemory(entry.Memory)
		if err != nil {
			return kube.Resources{}, fmt.Errorf("component %q memory: %w", component, err)
		}
		out.Memory = mem
	}
	return out, nil
}

// Components returns the component names with explicit entries, sorted.
// The defaults entry is not a component.
func (data ResourceEntryData) Components() []string {
	names := make([]string, 0, len(data))
	for name := range data {
		if name == GlobalDefaultsKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
