package settings

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Entry[T any] struct {
	Expiration int64 `json:"expiration" mapstructure:"expiration"`
	Data       T     `json:"data" mapstructure:"data"`
}

var (
	ErrExpired  = errors.New("cache entry expired")
	ErrNotFound = errors.New("cache entry not found")
)

func cacheKey(key string) string {
	return "cache." + key
}

func setCache[T any](key string, ttl int64, value T) {
	entry := Entry[T]{Data: value}
	if ttl > 0 {
		entry.Expiration = time.Now().Unix() + ttl
	}
	viper.Set(cacheKey(key), entry)
	if settings != nil {
		settings.changed = true
	}
}

func getCache[T any](key string) (T, error) {
	entry := Entry[T]{}
	value := viper.Get(cacheKey(key))
	if value == nil {
		return entry.Data, ErrNotFound
	}
	if err := mapstructure.Decode(value, &entry); err != nil {
		return entry.Data, fmt.Errorf("failed to get cache data for %s", key)
	}

	if entry.Expiration != 0 && entry.Expiration < time.Now().Unix() {
		return entry.Data, ErrExpired
	}

	return entry.Data, nil
}

// LastGame is the summary of the most recent finished game
type LastGame struct {
	Player   string `json:"player" mapstructure:"player"`
	Score    int    `json:"score" mapstructure:"score"`
	Lines    int    `json:"lines" mapstructure:"lines"`
	Pieces   int    `json:"pieces" mapstructure:"pieces"`
	PlayedAt int64  `json:"played_at" mapstructure:"played_at"`
}

const LAST_GAME_CACHE_KEY = "last_game"
const LAST_GAME_CACHE_TTL_SECONDS = 30 * 24 * 60 * 60

func (s *Settings) SetLastGame(game LastGame) {
	setCache(LAST_GAME_CACHE_KEY, LAST_GAME_CACHE_TTL_SECONDS, game)
}

func (s *Settings) LastGame() (LastGame, bool) {
	game, err := getCache[LastGame](LAST_GAME_CACHE_KEY)
	if err != nil {
		return LastGame{}, false
	}
	return game, true
}
