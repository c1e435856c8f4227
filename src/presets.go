package fichegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/opd-ai/fichegen/fichecompiler"
)

// Style presets are flat JSON copies of a RenderConfig, one file per name,
// kept in a templates directory.

// SanitizePresetName keeps letters, digits, spaces, underscores and hyphens
// and trims the rest. An empty result means the name is unusable.
func SanitizePresetName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// SavePreset serializes cfg under the sanitized name and returns the file
// path written.
func SavePreset(dir, name string, cfg fichecompiler.RenderConfig) (string, error) {
	safe := SanitizePresetName(name)
	if safe == "" {
		return "", fmt.Errorf("invalid preset name %q", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating templates directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding preset: %w", err)
	}
	path := filepath.Join(dir, safe+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("saving preset: %w", err)
	}
	return path, nil
}

// LoadPreset reads a previously saved preset back into a RenderConfig.
func LoadPreset(dir, name string) (fichecompiler.RenderConfig, error) {
	var cfg fichecompiler.RenderConfig
	safe := SanitizePresetName(name)
	if safe == "" {
		return cfg, fmt.Errorf("invalid preset name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, safe+".json"))
	if err != nil {
		return cfg, fmt.Errorf("loading preset: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding preset: %w", err)
	}
	return cfg, nil
}

// ListPresets returns the sorted preset names available in dir. A missing
// directory is an empty list, not an error.
func ListPresets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// DeletePreset removes a saved preset.
func DeletePreset(dir, name string) error {
	safe := SanitizePresetName(name)
	if safe == "" {
		return fmt.Errorf("invalid preset name %q", name)
	}
	if err := os.Remove(filepath.Join(dir, safe+".json")); err != nil {
		return fmt.Errorf("deleting preset: %w", err)
	}
	return nil
}
