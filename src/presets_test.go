package fichegen

import (
	"reflect"
	"testing"

	"github.com/opd-ai/fichegen/fichecompiler"
)

func TestSanitizePresetName(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"plain", "Mon style", "Mon style"},
		{"accents kept", "Préféré", "Préféré"},
		{"separators kept", "style_v2-final", "style_v2-final"},
		{"path traversal stripped", "../../etc/passwd", "etcpasswd"},
		{"symbols stripped", "a/b\\c:d*e", "abcde"},
		{"only symbols", "///", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePresetName(tt.arg); got != tt.want {
				t.Errorf("SanitizePresetName(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestPresetRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := fichecompiler.DefaultRenderConfig()
	cfg.Theme = "pro"
	cfg.Orientation = "L"
	cfg.Margins = fichecompiler.Margins{Left: 10, Right: 12, Top: 25}
	cfg.BaseFontSize = 14
	cfg.ShowCover = true
	cfg.WatermarkText = "Créé avec FicheGen"

	if _, err := SavePreset(dir, "Mon style préféré", cfg); err != nil {
		t.Fatalf("SavePreset: %v", err)
	}

	loaded, err := LoadPreset(dir, "Mon style préféré")
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	// FontDir and CreationDate are process-local and not serialized.
	cfg.FontDir = ""
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestPresetListAndDelete(t *testing.T) {
	dir := t.TempDir()
	cfg := fichecompiler.DefaultRenderConfig()

	for _, name := range []string{"beta", "alpha"} {
		if _, err := SavePreset(dir, name, cfg); err != nil {
			t.Fatalf("SavePreset(%q): %v", name, err)
		}
	}

	names, err := ListPresets(dir)
	if err != nil {
		t.Fatalf("ListPresets: %v", err)
	}
	if want := []string{"alpha", "beta"}; !reflect.DeepEqual(names, want) {
		t.Errorf("ListPresets = %v, want %v", names, want)
	}

	if err := DeletePreset(dir, "alpha"); err != nil {
		t.Fatalf("DeletePreset: %v", err)
	}
	names, err = ListPresets(dir)
	if err != nil {
		t.Fatalf("ListPresets after delete: %v", err)
	}
	if want := []string{"beta"}; !reflect.DeepEqual(names, want) {
		t.Errorf("ListPresets after delete = %v, want %v", names, want)
	}
}

func TestListPresetsMissingDir(t *testing.T) {
	names, err := ListPresets(t.TempDir() + "/nope")
	if err != nil {
		t.Fatalf("ListPresets on missing dir: %v", err)
	}
	if names != nil {
		t.Errorf("ListPresets on missing dir = %v, want nil", names)
	}
}

func TestSavePresetRejectsBadName(t *testing.T) {
	if _, err := SavePreset(t.TempDir(), "///", fichecompiler.DefaultRenderConfig()); err == nil {
		t.Error("SavePreset accepted an unusable name")
	}
}
