package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadResourceFile loads resource entries from a config file (yaml, json, or
// anything else viper reads). The file maps entry names to resource entries:
//
//	default:
//	  cpu: 500m
//	  memory: 128Mi
//	frontend:
//	  cpu: "1"
//	  memory: 1Gi
//
// Unlike ConfigMap parsing, file loading is strict: any invalid entry fails
// the load. Entries without an explicit component field take their map key
// as the component name.
func LoadResourceFile(path string) (ResourceEntryData, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading resource config %s: %w", path, err)
	}

	var raw map[string]ResourceEntry
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decoding resource config %s: %w", path, err)
	}

	out := make(ResourceEntryData, len(raw))
	for key, entry := range raw {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("resource config %s entry %q: %w", path, key, err)
		}
		if key == GlobalDefaultsKey {
			out[GlobalDefaultsKey] = entry
			continue
		}
		if entry.Component == "" {
			entry.Component = key
		}
		out[entry.Component] = entry
	}
	return out, nil
}
