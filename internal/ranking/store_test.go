package ranking

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func openTestStore(c *qt.C) *Store {
	c.Helper()
	store, err := Open(context.Background(), filepath.Join(c.TempDir(), "scores.db"))
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { store.Close() })
	return store
}

func TestStoreInsertAndTop(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	store := openTestStore(c)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []int{30, 10, 50, 30} {
		_, err := store.Insert(ctx, Entry{
			Player:   "p",
			Score:    score,
			Lines:    score / 10,
			Pieces:   i,
			PlayedAt: base.Add(time.Duration(i) * time.Minute),
		})
		c.Assert(err, qt.IsNil)
	}

	top, err := store.Top(ctx, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(top, qt.HasLen, 3)
	c.Assert(top[0].Score, qt.Equals, 50)
	c.Assert(top[1].Score, qt.Equals, 30)
	c.Assert(top[1].Pieces, qt.Equals, 0)
	c.Assert(top[2].Pieces, qt.Equals, 3)
	c.Assert(top[2].PlayedAt.Equal(base.Add(3*time.Minute)), qt.IsTrue)
	c.Assert(top[0].ID, qt.Not(qt.Equals), "")
}

func TestStoreRanking(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	store := openTestStore(c)

	for _, score := range []int{0, 20, 40} {
		_, err := store.Insert(ctx, Entry{Player: "p", Score: score})
		c.Assert(err, qt.IsNil)
	}

	ranking, err := store.Ranking(ctx, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(scores(ranking), qt.DeepEquals, []int{40, 20})
}

func TestStoreReopen(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	path := filepath.Join(c.TempDir(), "scores.db")

	store, err := Open(ctx, path)
	c.Assert(err, qt.IsNil)
	saved, err := store.Insert(ctx, Entry{ID: "fixed", Player: "ada", Score: 70})
	c.Assert(err, qt.IsNil)
	c.Assert(saved.ID, qt.Equals, "fixed")
	c.Assert(store.Close(), qt.IsNil)

	_, err = store.Top(ctx, 1)
	c.Assert(err, qt.ErrorIs, ErrClosed)

	store, err = Open(ctx, path)
	c.Assert(err, qt.IsNil)
	defer store.Close()
	top, err := store.Top(ctx, 10)
	c.Assert(err, qt.IsNil)
	c.Assert(top, qt.HasLen, 1)
	c.Assert(top[0].Player, qt.Equals, "ada")
}
