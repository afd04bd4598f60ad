// SPDX-License-Identifier: MIT

package cli

import (
	"log/slog"
	"strings"

	"golang.org/x/text/language"
)

// Environment variables read by LoadConfig.
const (
	// EnvLang selects the message language explicitly (e.g. "en", "ru_RU.UTF-8").
	EnvLang = "SOLVECUBIC_LANG"

	// EnvLog enables diagnostics on stderr at the given slog level
	// ("debug", "info", "warn", "error"). Unset means no diagnostics.
	EnvLog = "SOLVECUBIC_LOG"
)

// localeEnv is searched in order; the first non-empty variable wins, as in
// POSIX locale resolution.
var localeEnv = []string{EnvLang, "LC_ALL", "LC_MESSAGES", "LANG"}

// Config is the resolved runtime configuration of the command.
type Config struct {
	Lang     language.Tag // message language, one of the catalog languages
	Logging  bool         // whether diagnostics are written at all
	LogLevel slog.Level   // minimum level when Logging is true
}

// DefaultConfig returns the configuration used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		Lang:     DefaultLanguage,
		Logging:  false,
		LogLevel: slog.LevelInfo,
	}
}

// LoadConfig resolves Config from getenv (typically os.Getenv). Unknown or
// malformed values fall back to the defaults; a nil getenv yields
// DefaultConfig.
func LoadConfig(getenv func(string) string) Config {
	cfg := DefaultConfig()
	if getenv == nil {
		return cfg
	}

	for _, key := range localeEnv {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			continue
		}
		if tag, ok := parseLocale(v); ok {
			cfg.Lang = tag
		}
		break
	}

	if v := strings.TrimSpace(getenv(EnvLog)); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.Logging = true
			cfg.LogLevel = lvl
		}
	}

	return cfg
}

// parseLocale accepts BCP 47 tags ("en-US") and POSIX locale names
// ("en_US.UTF-8", "ru_RU@euro") and maps them onto a catalog language.
// "C" and "POSIX" name no language.
func parseLocale(v string) (language.Tag, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	v = strings.ReplaceAll(v, "_", "-")
	if v == "" || v == "C" || v == "POSIX" {
		return DefaultLanguage, false
	}

	tag, err := language.Parse(v)
	if err != nil {
		return DefaultLanguage, false
	}

	return matchLanguage(tag)
}
