package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kirsle/configdir"
	"github.com/spf13/viper"
	"github.com/tursodatabase/blocks/internal/tetris"
)

const (
	KeyRows         = "rows"
	KeyCols         = "cols"
	KeySpawnX       = "spawn_x"
	KeyDropInterval = "drop_interval_ms"
	KeyPlayer       = "player"
)

// Keys lists the settings that can be changed with `blocks config set`
var Keys = []string{KeyRows, KeyCols, KeySpawnX, KeyDropInterval, KeyPlayer}

type Settings struct {
	changed bool
	path    string
}

var settings *Settings

func defaults() map[string]interface{} {
	return map[string]interface{}{
		KeyRows:         tetris.DefaultRows,
		KeyCols:         tetris.DefaultCols,
		KeySpawnX:       tetris.DefaultSpawnX,
		KeyDropInterval: tetris.DefaultDropInterval.Milliseconds(),
		KeyPlayer:       "",
	}
}

func setDefaults() {
	for key, value := range defaults() {
		viper.SetDefault(key, value)
	}
}

func ReadSettings() (*Settings, error) {
	if settings != nil {
		return settings, nil
	}

	configPath := configdir.LocalConfig("blocks")
	configPathFlag := viper.GetString("config-path")
	if len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	setDefaults()
	viper.SetConfigName("settings")
	viper.SetConfigType("json")
	viper.AddConfigPath(configPath)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Force config creation
			if err := viper.SafeWriteConfig(); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	settings = &Settings{path: configPath}
	return settings, nil
}

// PersistChanges writes the settings file if anything changed
func PersistChanges() {
	if settings == nil || !settings.changed {
		return
	}
	if err := viper.WriteConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving settings: ", err)
		return
	}
	settings.changed = false
}

// Reset restores the defaults and drops the cache
func (s *Settings) Reset() {
	for key, value := range defaults() {
		viper.Set(key, value)
	}
	viper.Set("cache", map[string]interface{}{})
	s.changed = true
}

// Path is the directory holding the settings file
func (s *Settings) Path() string {
	return s.path
}

// ScoresPath is the SQLite file of the high score table
func (s *Settings) ScoresPath() string {
	return filepath.Join(s.path, "scores.db")
}

// GameConfig builds the engine configuration from the stored values.
// The result is validated by the engine.
func (s *Settings) GameConfig() tetris.Config {
	config := tetris.DefaultConfig()
	config.Rows = viper.GetInt(KeyRows)
	config.Cols = viper.GetInt(KeyCols)
	config.SpawnX = viper.GetInt(KeySpawnX)
	config.DropInterval = time.Duration(viper.GetInt64(KeyDropInterval)) * time.Millisecond
	return config
}

func (s *Settings) GetPlayer() string {
	return viper.GetString(KeyPlayer)
}

func (s *Settings) SetPlayer(player string) {
	viper.Set(KeyPlayer, player)
	s.changed = true
}

// Get returns the value of key as text
func (s *Settings) Get(key string) (string, error) {
	if !isKey(key) {
		return "", fmt.Errorf("unknown config: %s", key)
	}
	return viper.GetString(key), nil
}

// Set parses value for key and stores it
func (s *Settings) Set(key string, value string) error {
	previous := viper.Get(key)
	switch key {
	case KeyRows, KeyCols, KeySpawnX:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", key, err)
		}
		viper.Set(key, n)
	case KeyDropInterval:
		n, err := parseInterval(value)
		if err != nil {
			return err
		}
		viper.Set(key, n)
	case KeyPlayer:
		viper.Set(key, value)
	default:
		return fmt.Errorf("unknown config: %s", key)
	}

	if err := s.GameConfig().Validate(); err != nil {
		viper.Set(key, previous)
		return err
	}
	s.changed = true
	return nil
}

// parseInterval accepts milliseconds or a duration such as 750ms or 1.5s
func parseInterval(value string) (int64, error) {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be milliseconds or a duration: %w", KeyDropInterval, err)
	}
	return d.Milliseconds(), nil
}

func isKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
