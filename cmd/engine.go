package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/rollcall/config"
	"github.com/grovetools/rollcall/internal/extract"
	"github.com/grovetools/rollcall/internal/extract/tesseract"
	"github.com/grovetools/rollcall/internal/roster"
)

// buildEngine constructs the extraction engine selected by configuration.
func buildEngine(cfg config.Config) (extract.Engine, error) {
	switch cfg.Extract.Engine {
	case "openai":
		apiKey := os.Getenv(cfg.Extract.APIKeyEnv)
		if apiKey == "" {
			return nil, fmt.Errorf("environment variable %s is not set; export your API key or switch the engine to tesseract", cfg.Extract.APIKeyEnv)
		}
		return extract.NewOpenAIEngine(apiKey, cfg.Extract.Model, cfg.Extract.BaseURL, cfg.Extract.Timeout()), nil
	case "tesseract":
		return tesseract.NewEngine(), nil
	default:
		return nil, fmt.Errorf("unknown extraction engine %q (expected 'openai' or 'tesseract')", cfg.Extract.Engine)
	}
}

func normalizeOptions(cfg config.Config) roster.NormalizeOptions {
	return roster.NormalizeOptions{
		MinLength:        cfg.Roster.MinNameLength,
		KeepRoleSuffixes: cfg.Roster.KeepRoleSuffixes,
	}
}

// maskedCredential describes the configured credential without revealing it.
func maskedCredential(cfg config.Config) string {
	key := os.Getenv(cfg.Extract.APIKeyEnv)
	if key == "" {
		return fmt.Sprintf("%s: unset", cfg.Extract.APIKeyEnv)
	}
	return fmt.Sprintf("%s: %s", cfg.Extract.APIKeyEnv, extract.MaskKey(key))
}
