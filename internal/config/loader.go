package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const runnerFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.chromadash/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded on top of DefaultRunnerConfig, so a partial file only
// overrides the keys it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg, _, err := LoadRunnerWithSource(customPath)
	return cfg, err
}

// LoadRunnerWithSource is LoadRunner that also reports which file was used.
// The source is "embedded" when no file on disk was found.
func LoadRunnerWithSource(customPath string) (RunnerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return RunnerConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(runnerFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRunner(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", runnerFile)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := ParseRunner(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// ParseRunner decodes YAML on top of the hardcoded defaults.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chromadash", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.HeadStart = HeadStartForPreset(preset)
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)
}
