package ranking

import (
	"time"

	"github.com/google/uuid"
	"github.com/tursodatabase/blocks/internal/tetris"
)

// DefaultSize is the number of scores kept in a ranking
const DefaultSize = 9

// Entry is one finished game
type Entry struct {
	ID       string
	Player   string
	Score    int
	Lines    int
	Pieces   int
	PlayedAt time.Time
}

// NewEntry creates an entry for a finished game played now
func NewEntry(player string, result tetris.Result) Entry {
	return Entry{
		ID:       uuid.NewString(),
		Player:   player,
		Score:    result.Score,
		Lines:    result.Lines,
		Pieces:   result.Pieces,
		PlayedAt: time.Now().UTC(),
	}
}

// Ranking holds the best scores, highest first
type Ranking struct {
	entries []Entry
	size    int
}

// NewRanking create a new ranking
func NewRanking(size int) *Ranking {
	if size < 1 {
		size = DefaultSize
	}
	ranking := &Ranking{
		entries: make([]Entry, 0, size),
		size:    size,
	}

	return ranking
}

// Entries returns a copy of the ranked entries
func (ranking *Ranking) Entries() []Entry {
	entries := make([]Entry, len(ranking.entries))
	copy(entries, ranking.entries)
	return entries
}

// Len returns the number of ranked entries
func (ranking *Ranking) Len() int {
	return len(ranking.entries)
}

// InsertScore inserts an entry into the rankings and returns its zero based
// place, or -1 if the score is not good enough. Ties rank below earlier entries.
func (ranking *Ranking) InsertScore(entry Entry) int {
	for index, ranked := range ranking.entries {
		if entry.Score > ranked.Score {
			ranking.slideScores(index)
			ranking.entries[index] = entry
			return index
		}
	}
	if len(ranking.entries) < ranking.size {
		ranking.entries = append(ranking.entries, entry)
		return len(ranking.entries) - 1
	}
	return -1
}

// slideScores slides the scores down to make room for a new score
func (ranking *Ranking) slideScores(index int) {
	if len(ranking.entries) < ranking.size {
		ranking.entries = append(ranking.entries, Entry{})
	}
	for i := len(ranking.entries) - 1; i > index; i-- {
		ranking.entries[i] = ranking.entries[i-1]
	}
}
