package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"github.com/tursodatabase/blocks/internal/tetris"
)

func readTestSettings(t *testing.T) *Settings {
	t.Helper()
	viper.Reset()
	settings = nil
	t.Cleanup(func() {
		viper.Reset()
		settings = nil
	})

	viper.Set("config-path", t.TempDir())
	s, err := ReadSettings()
	require.NoError(t, err)
	return s
}

func TestReadSettingsCreatesFile(t *testing.T) {
	s := readTestSettings(t)

	_, err := os.Stat(filepath.Join(s.Path(), "settings.json"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(s.Path(), "scores.db"), s.ScoresPath())
	require.Equal(t, tetris.DefaultConfig(), s.GameConfig())
}

func TestSetValidatesGameConfig(t *testing.T) {
	s := readTestSettings(t)

	require.NoError(t, s.Set(KeyRows, "24"))
	require.NoError(t, s.Set(KeyDropInterval, "1.5s"))
	config := s.GameConfig()
	require.Equal(t, 24, config.Rows)
	require.Equal(t, 1500*time.Millisecond, config.DropInterval)

	require.ErrorIs(t, s.Set(KeyCols, "3"), tetris.ErrInvalidConfig)
	require.Equal(t, tetris.DefaultCols, s.GameConfig().Cols)

	require.Error(t, s.Set(KeyRows, "many"))
	require.Error(t, s.Set("colour", "red"))

	value, err := s.Get(KeyDropInterval)
	require.NoError(t, err)
	require.Equal(t, "1500", value)
}

func TestPersistChanges(t *testing.T) {
	s := readTestSettings(t)
	dir := s.Path()

	s.SetPlayer("ada")
	require.NoError(t, s.Set(KeySpawnX, "2"))
	PersistChanges()

	viper.Reset()
	settings = nil
	viper.Set("config-path", dir)
	s, err := ReadSettings()
	require.NoError(t, err)
	require.Equal(t, "ada", s.GetPlayer())
	require.Equal(t, 2, s.GameConfig().SpawnX)
}

func TestLastGame(t *testing.T) {
	s := readTestSettings(t)

	_, ok := s.LastGame()
	require.False(t, ok)

	played := time.Now().Unix()
	s.SetLastGame(LastGame{Player: "ada", Score: 40, Lines: 4, Pieces: 31, PlayedAt: played})
	game, ok := s.LastGame()
	require.True(t, ok)
	require.Equal(t, LastGame{Player: "ada", Score: 40, Lines: 4, Pieces: 31, PlayedAt: played}, game)

	s.Reset()
	_, ok = s.LastGame()
	require.False(t, ok)
	require.Equal(t, tetris.DefaultConfig(), s.GameConfig())
}

func TestExpiredCacheEntry(t *testing.T) {
	readTestSettings(t)

	viper.Set(cacheKey("stale"), Entry[int]{Expiration: time.Now().Unix() - 1, Data: 7})
	_, err := getCache[int]("stale")
	require.ErrorIs(t, err, ErrExpired)

	_, err = getCache[int]("missing")
	require.ErrorIs(t, err, ErrNotFound)
}
