package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// TestDataFileMatchesDefaults 确保 data/game.yaml 与 DefaultGameConfig 保持一致
func TestDataFileMatchesDefaults(t *testing.T) {
	cfg, err := LoadGameConfig(filepath.Join("..", "..", "data", "game.yaml"))
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}

	want := DefaultGameConfig()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("data/game.yaml differs from DefaultGameConfig()\n got: %+v\nwant: %+v", cfg, want)
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name:        "empty document keeps defaults",
			yamlContent: "{}",
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Spawn.InitialIntervalMs != 2000 {
					t.Errorf("expected initial interval 2000, got %.1f", cfg.Spawn.InitialIntervalMs)
				}
				if len(cfg.Enemies) != 3 {
					t.Errorf("expected 3 enemy types, got %d", len(cfg.Enemies))
				}
			},
		},
		{
			name: "override variant and window",
			yamlContent: `
variant: enhanced
window:
  width: 800
  height: 600
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Variant != VariantEnhanced {
					t.Errorf("expected enhanced variant, got %q", cfg.Variant)
				}
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
		},
		{
			name:        "unknown variant",
			yamlContent: "variant: arcade\n",
			wantErr:     true,
			errContains: "unknown variant",
		},
		{
			name: "min interval above initial",
			yamlContent: `
spawn:
  initialIntervalMs: 1000
  minIntervalMs: 2000
`,
			wantErr:     true,
			errContains: "min interval",
		},
		{
			name: "unknown behavior",
			yamlContent: `
enemies:
  - kind: ghost
    behavior: ghost
    frameWidth: 10
    frameHeight: 10
    frameCount: 1
    sizeFactor: 1
`,
			wantErr:     true,
			errContains: "unknown behavior",
		},
		{
			name: "duplicate kind",
			yamlContent: `
enemies:
  - {kind: bat, behavior: bat, frameWidth: 1, frameHeight: 1, frameCount: 1, sizeFactor: 1}
  - {kind: bat, behavior: bee, frameWidth: 1, frameHeight: 1, frameCount: 1, sizeFactor: 1}
`,
			wantErr:     true,
			errContains: "duplicate kind",
		},
		{
			name: "negative layer speed",
			yamlContent: `
background:
  layers:
    - {image: a.png, width: 100, speed: -1}
`,
			wantErr:     true,
			errContains: "speed must not be negative",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfigMissingFile(t *testing.T) {
	_, err := LoadGameConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestFindEnemy(t *testing.T) {
	cfg := DefaultGameConfig()

	bee, ok := cfg.FindEnemy("bee")
	if !ok {
		t.Fatal("bee should be found")
	}
	if bee.FrameCount != 13 {
		t.Errorf("expected bee frame count 13, got %d", bee.FrameCount)
	}

	if _, ok := cfg.FindEnemy("ghost"); ok {
		t.Error("ghost should not be found")
	}
}
