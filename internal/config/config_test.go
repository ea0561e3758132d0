package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "duel_config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

const validConfig = `{
  "server": {"address": ":9090"},
  "turn_timeout_seconds": 45,
  "challenge_window_seconds": 90,
  "eligibility_health_floor": 15,
  "class_list": [
    {
      "id": "warrior",
      "name": "Warrior",
      "skills": [
        {"id": "slash", "name": "Slash", "emoji": "X", "mana_cost": 10, "stamina_cost": 10, "damage_multiplier": 1.5}
      ]
    }
  ],
  "player_list": [
    {"player_id": "p1", "name": "One", "level": 1, "max_health": 50, "max_mana": 20, "max_stamina": 20, "attack": 5, "defense": 2, "crit_chance": 5, "class_id": "warrior", "money": 100}
  ]
}`

func TestLoadConfig_Valid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("unexpected address %q", cfg.ServerAddress)
	}
	if cfg.TurnTimeout != 45*time.Second || cfg.ChallengeWindow != 90*time.Second {
		t.Fatalf("timing overrides not applied: %v / %v", cfg.TurnTimeout, cfg.ChallengeWindow)
	}
	if cfg.EligibilityFloor != 15 {
		t.Fatalf("unexpected floor %d", cfg.EligibilityFloor)
	}
	skills := cfg.Classes["warrior"]
	if len(skills) != 1 || skills[0].Name != "Slash" {
		t.Fatalf("class table not loaded: %v", skills)
	}
	if len(cfg.SeedPlayers) != 1 || cfg.SeedPlayers[0].Health != 50 {
		t.Fatalf("seed players not loaded: %v", cfg.SeedPlayers)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{"class_list":[{"id":"c","skills":[{"name":"Hit","damage_multiplier":1}]}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address, got %q", cfg.ServerAddress)
	}
	if cfg.TurnTimeout != 30*time.Second || cfg.ChallengeWindow != 2*time.Minute {
		t.Fatalf("expected default timings, got %v / %v", cfg.TurnTimeout, cfg.ChallengeWindow)
	}
}

func TestLoadConfig_Rejections(t *testing.T) {
	cases := map[string]string{
		"empty class list":     `{"class_list": []}`,
		"missing class id":     `{"class_list":[{"skills":[{"name":"A","damage_multiplier":1}]}]}`,
		"duplicate class id":   `{"class_list":[{"id":"c","skills":[{"name":"A","damage_multiplier":1}]},{"id":"c","skills":[{"name":"B","damage_multiplier":1}]}]}`,
		"class without skills": `{"class_list":[{"id":"c","skills":[]}]}`,
		"duplicate skill name": `{"class_list":[{"id":"c","skills":[{"name":"A","damage_multiplier":1},{"name":"a","damage_multiplier":1}]}]}`,
		"bad multiplier":       `{"class_list":[{"id":"c","skills":[{"name":"A","damage_multiplier":0}]}]}`,
		"negative cost":        `{"class_list":[{"id":"c","skills":[{"name":"A","mana_cost":-1,"damage_multiplier":1}]}]}`,
		"unknown player class": `{"class_list":[{"id":"c","skills":[{"name":"A","damage_multiplier":1}]}],"player_list":[{"player_id":"p","class_id":"nope"}]}`,
	}
	for name, body := range cases {
		if _, err := LoadConfig(writeConfig(t, body)); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}
