package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPinyin loads the game configuration.
// Search order: customPath -> ~/.pinyin/configs/pinyin.yaml -> ./configs/pinyin.yaml -> embedded default
func LoadPinyin(customPath string) (PinyinConfig, error) {
	var cfg PinyinConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pinyin.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/pinyin.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPinyinYAML, &cfg); err != nil {
		return DefaultPinyinConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pinyin", "configs", filename)
}

// LoadLevelDir reads every *.yaml / *.yml file under root as a single
// LevelConfig. Unparseable files are skipped. Levels are sorted by id.
func LoadLevelDir(root string) ([]LevelConfig, error) {
	var levels []LevelConfig

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var lvl LevelConfig
		if err := yaml.Unmarshal(data, &lvl); err != nil || len(lvl.Characters) == 0 {
			// Skip invalid files
			return nil
		}
		levels = append(levels, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

// MergeLevels replaces levels with matching ids and appends new ones,
// keeping the result sorted by id.
func MergeLevels(cfg *PinyinConfig, extra []LevelConfig) {
	for _, lvl := range extra {
		replaced := false
		for i := range cfg.Levels {
			if cfg.Levels[i].ID == lvl.ID {
				cfg.Levels[i] = lvl
				replaced = true
				break
			}
		}
		if !replaced {
			cfg.Levels = append(cfg.Levels, lvl)
		}
	}
	sort.Slice(cfg.Levels, func(i, j int) bool {
		return cfg.Levels[i].ID < cfg.Levels[j].ID
	})
}
