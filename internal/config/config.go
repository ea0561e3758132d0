package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cyal-dev3/cyalbot-sub000/internal/game"
)

type skillEntry struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Emoji            string  `json:"emoji"`
	ManaCost         int     `json:"mana_cost"`
	StaminaCost      int     `json:"stamina_cost"`
	DamageMultiplier float64 `json:"damage_multiplier"`
}

type classEntry struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Skills []skillEntry `json:"skills"`
}

type playerEntry struct {
	PlayerID   string  `json:"player_id"`
	Name       string  `json:"name"`
	Level      int     `json:"level"`
	MaxHealth  int     `json:"max_health"`
	MaxMana    int     `json:"max_mana"`
	MaxStamina int     `json:"max_stamina"`
	Attack     int     `json:"attack"`
	Defense    int     `json:"defense"`
	CritChance int     `json:"crit_chance"`
	ClassID    *string `json:"class_id"`
	Money      int     `json:"money"`
}

type rawConfig struct {
	ClassList []classEntry `json:"class_list"`
	Server    *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Optional overrides; zero means "use default".
	TurnTimeoutSeconds     int `json:"turn_timeout_seconds"`
	ChallengeWindowSeconds int `json:"challenge_window_seconds"`
	// Minimum out-of-duel health a target needs to be challengeable.
	EligibilityHealthFloor int `json:"eligibility_health_floor"`
	// Optional players seeded into an empty database (local development).
	PlayerList []playerEntry `json:"player_list"`
}

// LoadedConfig contains the class/skill tables and server tuning.
type LoadedConfig struct {
	Classes          game.ClassSet
	ServerAddress    string
	TurnTimeout      time.Duration
	ChallengeWindow  time.Duration
	EligibilityFloor int
	SeedPlayers      []game.PlayerStats
}

const (
	defaultTurnTimeout      = 30 * time.Second
	defaultChallengeWindow  = 2 * time.Minute
	defaultEligibilityFloor = 10
)

// LoadConfig reads the configuration file at path. It requires the key
// `class_list` (snake_case) and validates it for duplicate ids and
// nonsensical skill numbers.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.ClassList) == 0 {
		return nil, fmt.Errorf("config file %s: class_list is empty (provide a 'class_list' array)", path)
	}

	classes := make(game.ClassSet, len(rc.ClassList))
	classIDs := make(map[string]struct{}, len(rc.ClassList))
	for _, ce := range rc.ClassList {
		id := strings.TrimSpace(ce.ID)
		if id == "" {
			return nil, fmt.Errorf("config file %s: class entry missing 'id'", path)
		}
		if _, exists := classIDs[id]; exists {
			return nil, fmt.Errorf("config file %s: duplicate class id '%s'", path, id)
		}
		classIDs[id] = struct{}{}
		if len(ce.Skills) == 0 {
			return nil, fmt.Errorf("config file %s: class '%s' has no skills", path, id)
		}
		skillNames := make(map[string]struct{}, len(ce.Skills))
		skills := make([]game.Skill, 0, len(ce.Skills))
		for _, se := range ce.Skills {
			ln := strings.ToLower(strings.TrimSpace(se.Name))
			if ln == "" {
				return nil, fmt.Errorf("config file %s: class '%s' has a skill without a name", path, id)
			}
			if _, exists := skillNames[ln]; exists {
				return nil, fmt.Errorf("config file %s: class '%s' has duplicate skill name '%s'", path, id, se.Name)
			}
			skillNames[ln] = struct{}{}
			if se.DamageMultiplier <= 0 {
				return nil, fmt.Errorf("config file %s: skill '%s' has non-positive damage_multiplier", path, se.Name)
			}
			if se.ManaCost < 0 || se.StaminaCost < 0 {
				return nil, fmt.Errorf("config file %s: skill '%s' has negative resource cost", path, se.Name)
			}
			skills = append(skills, game.Skill{
				ID:               se.ID,
				Name:             se.Name,
				Emoji:            se.Emoji,
				ManaCost:         se.ManaCost,
				StaminaCost:      se.StaminaCost,
				DamageMultiplier: se.DamageMultiplier,
			})
		}
		classes[id] = skills
	}

	seed := make([]game.PlayerStats, 0, len(rc.PlayerList))
	for _, pe := range rc.PlayerList {
		if pe.PlayerID == "" {
			return nil, fmt.Errorf("config file %s: player entry missing 'player_id'", path)
		}
		if pe.ClassID != nil {
			if _, ok := classIDs[*pe.ClassID]; !ok {
				return nil, fmt.Errorf("config file %s: player '%s' references unknown class '%s'", path, pe.PlayerID, *pe.ClassID)
			}
		}
		seed = append(seed, game.PlayerStats{
			PlayerID:   pe.PlayerID,
			Name:       pe.Name,
			Level:      pe.Level,
			Health:     pe.MaxHealth,
			MaxHealth:  pe.MaxHealth,
			Mana:       pe.MaxMana,
			MaxMana:    pe.MaxMana,
			Stamina:    pe.MaxStamina,
			MaxStamina: pe.MaxStamina,
			Attack:     pe.Attack,
			Defense:    pe.Defense,
			CritChance: pe.CritChance,
			ClassID:    pe.ClassID,
			Money:      pe.Money,
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	cfg := &LoadedConfig{
		Classes:          classes,
		ServerAddress:    addr,
		TurnTimeout:      defaultTurnTimeout,
		ChallengeWindow:  defaultChallengeWindow,
		EligibilityFloor: defaultEligibilityFloor,
		SeedPlayers:      seed,
	}
	if rc.TurnTimeoutSeconds > 0 {
		cfg.TurnTimeout = time.Duration(rc.TurnTimeoutSeconds) * time.Second
	}
	if rc.ChallengeWindowSeconds > 0 {
		cfg.ChallengeWindow = time.Duration(rc.ChallengeWindowSeconds) * time.Second
	}
	if rc.EligibilityHealthFloor > 0 {
		cfg.EligibilityFloor = rc.EligibilityHealthFloor
	}
	return cfg, nil
}
