package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func restoreConfig(t *testing.T) {
	saved := Current()
	t.Cleanup(saved.Apply)
}

func TestDefaults(t *testing.T) {
	if C.Width != 468 || C.Height != 60 {
		t.Errorf("window = %dx%d, expected 468x60", C.Width, C.Height)
	}
	if C.TPS != 60 {
		t.Errorf("tps = %d, expected 60", C.TPS)
	}
	if Chimp.StartX != 10 || Chimp.StartY != 10 || Chimp.Speed != 9 {
		t.Errorf("unexpected chimp defaults: %+v", Chimp)
	}
	if Chimp.SpinStep != 12 {
		t.Errorf("spin step = %d, expected 12", Chimp.SpinStep)
	}
	if err := Current().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParseOverridesOnlyPresentKeys(t *testing.T) {
	data := []byte(`
chimp:
  speed: 4
banner:
  text: hello
`)
	got, err := Parse(data, Current())
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got.Chimp.Speed != 4 {
		t.Errorf("speed = %d, expected 4", got.Chimp.Speed)
	}
	if got.Banner.Text != "hello" {
		t.Errorf("banner text = %q, expected hello", got.Banner.Text)
	}
	if got.Chimp.SpinStep != Chimp.SpinStep {
		t.Errorf("spinStep changed to %d", got.Chimp.SpinStep)
	}
	if got.Window.Width != C.Width {
		t.Errorf("window width changed to %d", got.Window.Width)
	}
	if got.Banner.TextColor != Banner.TextColor {
		t.Errorf("banner color should not come from yaml")
	}
}

func TestParseRejectsInvalidTuning(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero spin step", "chimp:\n  spinStep: 0\n", "spinStep"},
		{"negative window", "window:\n  width: -1\n", "window size"},
		{"loud audio", "audio:\n  sfxVolume: 2\n", "sfxVolume"},
		{"zero tps", "window:\n  tps: 0\n", "tps"},
		{"zero sample rate", "audio:\n  sampleRate: 0\n", "sampleRate"},
		{"negative sample rate", "audio:\n  sampleRate: -44100\n", "sampleRate"},
		{"zero font size", "banner:\n  fontSize: 0\n", "fontSize"},
		{"negative slide", "banner:\n  slideSeconds: -1\n", "slideSeconds"},
		{"zero flash intensity", "effects:\n  hitFlashIntensity: 0\n", "hitFlashIntensity"},
		{"negative flash time", "effects:\n  hitFlashSeconds: -0.5\n", "hitFlashSeconds"},
		{"not yaml", "chimp: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := Current()
			got, err := Parse([]byte(tc.yaml), base)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
			if got != base {
				t.Errorf("a rejected file must return the base tuning")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	restoreConfig(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("chimp:\n  speed: 3\nwindow:\n  scale: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if Chimp.Speed != 3 || C.Scale != 1 {
		t.Errorf("overrides not applied: speed=%d scale=%v", Chimp.Speed, C.Scale)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	restoreConfig(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
}

func TestLoadSearchPathWarnsAndSkipsBrokenFiles(t *testing.T) {
	restoreConfig(t)

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "monkeyfever.yaml"), []byte("chimp:\n  spinStep: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var warned []string
	src, err := Load("", func(path string, err error) {
		warned = append(warned, path)
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if src != "" {
		t.Errorf("source = %q, expected defaults", src)
	}
	if len(warned) != 1 {
		t.Errorf("expected one warning, got %v", warned)
	}
	if Chimp.SpinStep != 12 {
		t.Errorf("broken file must not be applied, spinStep=%d", Chimp.SpinStep)
	}
}

func TestCheckChimpFits(t *testing.T) {
	const w, h = 66, 48

	tests := []struct {
		name   string
		yaml   string
		wantOK bool
	}{
		{"defaults", "", true},
		{"flush bottom right", "window:\n  width: 100\n  height: 58\nchimp:\n  startX: 34\n  startY: 10\n  speed: 17\n", true},
		{"window too short", "window:\n  height: 40\n", false},
		{"start below window", "chimp:\n  startY: 13\n", false},
		{"start past right edge", "chimp:\n  startX: 403\n", false},
		{"negative start", "chimp:\n  startX: -1\n", false},
		{"too fast to turn", "window:\n  width: 100\nchimp:\n  startX: 10\n  speed: 18\n", false},
		{"too fast walking left", "chimp:\n  speed: -202\n", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tun, err := Parse([]byte(tc.yaml), Current())
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			err = tun.CheckChimpFits(w, h)
			if tc.wantOK && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Error("expected the chimp to be rejected")
			}
		})
	}
}
