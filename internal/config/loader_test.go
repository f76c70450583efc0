package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

// quietLogger discards log output during tests.
func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func readRaw(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) failed: %v", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("store is not valid YAML: %v", err)
	}
	return raw
}

func TestLoadSettingsMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "shooter.yaml")

	got := LoadSettings(path, quietLogger())

	if got != DefaultSettings() {
		t.Errorf("LoadSettings() = %+v, expected defaults %+v", got, DefaultSettings())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("defaults were not written: %v", err)
	}
	if !bytes.Equal(data, DefaultYAML()) {
		t.Errorf("written store should match the default document verbatim, got:\n%s", data)
	}
}

func TestLoadSettingsMalformedRestoresDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "player_speed: [1, 2\n"},
		{"sequence document", "- 1\n- 2\n"},
		{"non numeric value", "player_speed: fast\nplayer_lives: 3\n"},
		{"boolean value", "enemy_speed: true\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "shooter.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			got := LoadSettings(path, quietLogger())
			if got != DefaultSettings() {
				t.Errorf("LoadSettings() = %+v, expected defaults", got)
			}

			data, _ := os.ReadFile(path)
			if !bytes.Equal(data, DefaultYAML()) {
				t.Errorf("malformed store should be replaced by defaults, got:\n%s", data)
			}
		})
	}
}

func TestLoadSettingsFillsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	content := "player_speed: 7\nenemy_spawn_rate: 2.5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LoadSettings(path, quietLogger())

	if got.PlayerSpeed != 7 {
		t.Errorf("PlayerSpeed = %v, expected 7", got.PlayerSpeed)
	}
	if got.EnemySpawnRate != 2.5 {
		t.Errorf("EnemySpawnRate = %v, expected 2.5", got.EnemySpawnRate)
	}
	if got.PlayerLives != 3 || got.PowerUpDuration != 300 || got.PowerUpChance != 15 {
		t.Errorf("missing keys should take defaults, got %+v", got)
	}

	raw := readRaw(t, path)
	for _, key := range Keys() {
		if _, ok := raw[key]; !ok {
			t.Errorf("rewritten store is missing %q", key)
		}
	}
}

func TestLoadSettingsCompleteStoreUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	content := "# mine\nplayer_speed: 6\nplayer_lives: 5\nenemy_speed: 3\nenemy_spawn_rate: 0.5\n" +
		"bullet_speed: 12\npowerup_chance: 0\npowerup_duration: 120\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LoadSettings(path, quietLogger())

	want := Settings{
		PlayerSpeed:     6,
		PlayerLives:     5,
		EnemySpeed:      3,
		EnemySpawnRate:  0.5,
		BulletSpeed:     12,
		PowerUpChance:   0,
		PowerUpDuration: 120,
	}
	if got != want {
		t.Errorf("LoadSettings() = %+v, expected %+v", got, want)
	}

	data, _ := os.ReadFile(path)
	if string(data) != content {
		t.Error("a complete store should not be rewritten")
	}
}

func TestLoadSettingsOutOfRangeUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	content := "player_speed: -4\nplayer_lives: 0\nenemy_speed: 2\nenemy_spawn_rate: 1\n" +
		"bullet_speed: 10\npowerup_chance: 250\npowerup_duration: 300\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got := LoadSettings(path, quietLogger())

	if got.PlayerSpeed != 5 || got.PlayerLives != 3 || got.PowerUpChance != 15 {
		t.Errorf("out-of-range values should take defaults, got %+v", got)
	}

	raw := readRaw(t, path)
	if raw[KeyPlayerSpeed] != 5 {
		t.Errorf("rewritten player_speed = %v, expected 5", raw[KeyPlayerSpeed])
	}
}

// For every subset of keys present in the store, loading yields all seven keys,
// keeps the present values, defaults the rest, and rewrites the store.
func TestLoadSettingsFillProperty(t *testing.T) {
	dir := t.TempDir()
	run := 0

	rapid.Check(t, func(rt *rapid.T) {
		run++
		path := filepath.Join(dir, fmt.Sprintf("shooter-%d.yaml", run))

		present := rapid.SliceOfDistinct(rapid.SampledFrom(keys), rapid.ID[string]).Draw(rt, "present")
		values := make(map[string]float64, len(present))
		doc := make(map[string]float64, len(present))
		for _, key := range present {
			v := rapid.Float64Range(1, 100).Draw(rt, key)
			values[key] = v
			doc[key] = v
		}

		data, err := yaml.Marshal(doc)
		if err != nil {
			rt.Fatalf("marshal: %v", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			rt.Fatalf("write: %v", err)
		}

		got := LoadSettings(path, quietLogger())
		defaults := DefaultSettings()

		for _, key := range keys {
			v, ok := got.Get(key)
			if !ok {
				rt.Fatalf("Get(%q) not found", key)
			}
			want, isPresent := values[key]
			if !isPresent {
				want, _ = defaults.Get(key)
			}
			if v != want {
				rt.Errorf("%s = %v, expected %v", key, v, want)
			}
		}

		written, err := os.ReadFile(path)
		if err != nil {
			rt.Fatalf("read back: %v", err)
		}
		var raw map[string]any
		if err := yaml.Unmarshal(written, &raw); err != nil {
			rt.Fatalf("store not valid YAML after load: %v", err)
		}
		for _, key := range keys {
			if _, ok := raw[key]; !ok {
				rt.Errorf("store is missing %q after load", key)
			}
		}
	})
}

func TestSettingsGetSet(t *testing.T) {
	s := DefaultSettings()

	if v, ok := s.Get(KeyBulletSpeed); !ok || v != 10 {
		t.Errorf("Get(bullet_speed) = %v, %v; expected 10, true", v, ok)
	}
	if _, ok := s.Get("gravity"); ok {
		t.Error("Get of unknown key should report false")
	}

	if err := s.Set(KeyEnemySpawnRate, 1.75); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if s.EnemySpawnRate != 1.75 {
		t.Errorf("EnemySpawnRate = %v, expected 1.75", s.EnemySpawnRate)
	}

	if err := s.Set(KeyPowerUpChance, 0); err != nil {
		t.Errorf("powerup_chance 0 should be accepted: %v", err)
	}

	invalid := []struct {
		key   string
		value float64
	}{
		{"gravity", 1},
		{KeyPlayerSpeed, 0},
		{KeyPlayerLives, -1},
		{KeyPowerUpChance, 101},
	}
	for _, tc := range invalid {
		if err := s.Set(tc.key, tc.value); err == nil {
			t.Errorf("Set(%q, %v) should fail", tc.key, tc.value)
		}
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")

	s := DefaultSettings()
	s.PlayerSpeed = 8
	s.PowerUpChance = 0
	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got := LoadSettings(path, quietLogger())
	if got != s {
		t.Errorf("LoadSettings() = %+v, expected %+v", got, s)
	}
}

func TestResetSettingsRestoresDefaultDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")

	s := DefaultSettings()
	s.BulletSpeed = 20
	if err := SaveSettings(path, s); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	if err := ResetSettings(path); err != nil {
		t.Fatalf("ResetSettings() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, DefaultYAML()) {
		t.Error("reset file should match the embedded default document")
	}
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ResolvePath(""); got != filepath.Join(home, ".arcade", "shooter.yaml") {
		t.Errorf("ResolvePath(\"\") = %q", got)
	}
	if got := ResolvePath("./local.yaml"); got != "./local.yaml" {
		t.Errorf("relative path should be unchanged, got %q", got)
	}
}
