// Package secrets resolves credential values for the assistant backends.
// The Gemini API key is the only consumer today.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source names a secret and says where it lives. A File wins over an inline
// Value so keys can stay out of config files and flags.
type Source struct {
	// Name appears in error messages.
	Name string
	// Value is an inline secret from configuration.
	Value string
	// File points to a file holding the secret.
	File string
}

// Load resolves the secret, trimmed of surrounding whitespace. It fails when
// the chosen source is missing, unreadable or blank.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	secret := strings.TrimSpace(src.Value)
	if secret == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}
	return secret, nil
}
