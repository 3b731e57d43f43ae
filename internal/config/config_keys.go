// config_keys.go provides key-value access to configuration settings for the
// "config" command, where settings are addressed by dotted keys such as
// "extensions.root".
//
// The interactions list is structured data; it is readable by key but only
// editable in the YAML file.

package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{"author.name", "extensions.root", "interactions"}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "extensions.root":
		return c.Extensions.Root, nil
	case "interactions":
		return joinIDs(c.AllowedInteractions()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "extensions.root":
		c.Extensions.Root = strings.TrimSpace(value)
	case "interactions":
		return fmt.Errorf("%w: interactions is edited in the config file", ErrInvalidValue)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":     c.Author.Name,
		"extensions.root": c.Extensions.Root,
		"interactions":    joinIDs(c.AllowedInteractions()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "extensions.root":
		return c.Extensions.Root != ""
	case "interactions":
		return len(c.Interactions) > 0
	default:
		return false
	}
}

func joinIDs(allowed []Allowed) string {
	ids := make([]string, 0, len(allowed))
	for _, a := range allowed {
		ids = append(ids, a.ID)
	}
	return strings.Join(ids, ",")
}
