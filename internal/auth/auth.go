// Package auth resolves and guards the Etherscan API credential.
package auth

import (
	"errors"
	"os"
	"strings"
)

// EnvAPIKey is the environment variable consulted when no key is passed
// on the command line.
const EnvAPIKey = "ETHERSCAN_API_KEY"

// ErrMissingKey reports that no credential was found in any source.
var ErrMissingKey = errors.New("no API key provided")

// ResolveKey picks the API key from the available sources, highest
// precedence first: the explicit command-line value, the EnvAPIKey
// environment variable, then the configured value. Blank sources fall
// through to the next one.
func ResolveKey(explicit, configured string) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(configured); key != "" {
		return key, nil
	}
	return "", ErrMissingKey
}

// MaskKey renders a key safe for log output. Short keys mask entirely;
// longer ones keep the first and last four characters.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + "..." + key[len(key)-4:]
}
