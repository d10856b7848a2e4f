package flags

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ResolveAPIKey returns the configured OpenAI API key, asking for it on
// the terminal when nothing is configured and stdin is interactive.
func ResolveAPIKey(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errors.New("OpenAI API key is not configured (set HARX_OPENAI_API_KEY)")
	}
	key, err := askAPIKey()
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", errors.New("OpenAI API key is required")
	}
	return key, nil
}
