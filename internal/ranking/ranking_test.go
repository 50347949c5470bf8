package ranking

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/tursodatabase/blocks/internal/tetris"
)

func scores(ranking *Ranking) []int {
	var scores []int
	for _, entry := range ranking.Entries() {
		scores = append(scores, entry.Score)
	}
	return scores
}

func TestInsertScore(t *testing.T) {
	c := qt.New(t)
	ranking := NewRanking(3)

	c.Assert(ranking.InsertScore(Entry{Player: "a", Score: 20}), qt.Equals, 0)
	c.Assert(ranking.InsertScore(Entry{Player: "b", Score: 40}), qt.Equals, 0)
	c.Assert(ranking.InsertScore(Entry{Player: "c", Score: 30}), qt.Equals, 1)
	c.Assert(scores(ranking), qt.DeepEquals, []int{40, 30, 20})

	c.Assert(ranking.InsertScore(Entry{Player: "d", Score: 10}), qt.Equals, -1)
	c.Assert(ranking.InsertScore(Entry{Player: "e", Score: 30}), qt.Equals, 2)
	c.Assert(scores(ranking), qt.DeepEquals, []int{40, 30, 30})
	c.Assert(ranking.Entries()[1].Player, qt.Equals, "c")
	c.Assert(ranking.Len(), qt.Equals, 3)
}

func TestNewRankingDefaultSize(t *testing.T) {
	c := qt.New(t)
	ranking := NewRanking(0)
	for i := 0; i < 20; i++ {
		ranking.InsertScore(Entry{Score: i * 10})
	}
	c.Assert(ranking.Len(), qt.Equals, DefaultSize)
	c.Assert(ranking.Entries()[0].Score, qt.Equals, 190)
}

func TestFromEntries(t *testing.T) {
	c := qt.New(t)
	now := time.Now()
	entries := []Entry{
		{Player: "late", Score: 50, PlayedAt: now.Add(time.Minute)},
		{Player: "low", Score: 10, PlayedAt: now},
		{Player: "early", Score: 50, PlayedAt: now},
	}

	ranking := FromEntries(entries, 2)
	got := ranking.Entries()
	c.Assert(got, qt.HasLen, 2)
	c.Assert(got[0].Player, qt.Equals, "early")
	c.Assert(got[1].Player, qt.Equals, "late")
}

func TestNewEntry(t *testing.T) {
	c := qt.New(t)
	entry := NewEntry("ada", tetris.Result{Score: 30, Lines: 3, Pieces: 12})
	c.Assert(entry.ID, qt.Not(qt.Equals), "")
	c.Assert(entry.Player, qt.Equals, "ada")
	c.Assert(entry.Score, qt.Equals, 30)
	c.Assert(entry.Lines, qt.Equals, 3)
	c.Assert(entry.Pieces, qt.Equals, 12)
	c.Assert(entry.PlayedAt.IsZero(), qt.IsFalse)
}
