package fichecompiler

import (
	"reflect"
	"testing"
)

func TestThemeByNameFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{"teal", "teal", "teal"},
		{"pro", "pro", "pro"},
		{"study", "study", "study"},
		{"unknown falls back", "neon", DefaultTheme},
		{"empty falls back", "", DefaultTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ThemeByName(tt.arg).Name(); got != tt.want {
				t.Errorf("ThemeByName(%q).Name() = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestGutterCapability(t *testing.T) {
	// Only teal reserves the duration gutter; the other themes render
	// durations inline and must not satisfy the capability interface.
	if _, ok := ThemeByName("teal").(GutterTheme); !ok {
		t.Error("teal should implement GutterTheme")
	}
	for _, name := range []string{"pro", "study"} {
		if _, ok := ThemeByName(name).(GutterTheme); ok {
			t.Errorf("%s should not implement GutterTheme", name)
		}
	}
}

func TestThemeNames(t *testing.T) {
	want := []string{"pro", "study", "teal"}
	if got := ThemeNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ThemeNames() = %v, want %v", got, want)
	}
}
