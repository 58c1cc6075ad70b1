package obslog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open failed: %s", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	l := openTestLog(t)

	start := time.Unix(1700000000, 0)
	for i, damage := range []uint{69, 61, 58} {
		_, err := l.Add(ctx, Entry{Opponent: "peer/mew", Move: 0, MoveName: "strength", Damage: damage, Recorded: start.Add(time.Duration(i) * time.Second)})
		if err != nil {
			t.Fatalf("add failed: %s", err)
		}
	}
	if _, err := l.Add(ctx, Entry{Opponent: "peer/snorlax", MoveName: "tackle", Damage: 12, Crit: true}); err != nil {
		t.Fatalf("add failed: %s", err)
	}

	entries, err := l.List(ctx, "peer/mew")
	if err != nil {
		t.Fatalf("list failed: %s", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Damage != 69 || entries[2].Damage != 58 {
		t.Fatalf("entries should be oldest first: %+v", entries)
	}
	if entries[0].ID == uuid.Nil || !entries[0].Recorded.Equal(start) {
		t.Fatalf("id and time should round trip: %+v", entries[0])
	}

	observations, err := l.Observations(ctx, "peer/snorlax")
	if err != nil || len(observations) != 1 || !observations[0].Crit || observations[0].Damage != 12 {
		t.Fatalf("unexpected observations %+v (%v)", observations, err)
	}

	opponents, err := l.Opponents(ctx)
	if err != nil || len(opponents) != 2 || opponents[0] != "peer/mew" {
		t.Fatalf("unexpected opponents %v (%v)", opponents, err)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	l := openTestLog(t)

	if _, err := l.List(ctx, "peer/mew"); !errors.Is(err, ErrNoObservations) {
		t.Fatalf("expected ErrNoObservations, got %v", err)
	}

	l.Add(ctx, Entry{Opponent: "peer/mew", MoveName: "strength", Damage: 69})
	l.Add(ctx, Entry{Opponent: "peer/mew", MoveName: "strength", Damage: 60})

	removed, err := l.Clear(ctx, "peer/mew")
	if err != nil || removed != 2 {
		t.Fatalf("expected 2 removed, got %d (%v)", removed, err)
	}
	if _, err := l.List(ctx, "peer/mew"); !errors.Is(err, ErrNoObservations) {
		t.Fatalf("cleared opponent should have no observations, got %v", err)
	}
}

func TestPersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "observations.db")

	l, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open failed: %s", err)
	}
	added, err := l.Add(ctx, Entry{Opponent: "peer/mew", MoveName: "strength", Damage: 69})
	if err != nil {
		t.Fatalf("add failed: %s", err)
	}
	l.Close()

	l, err = Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen failed: %s", err)
	}
	defer l.Close()

	entries, err := l.List(ctx, "peer/mew")
	if err != nil || len(entries) != 1 || entries[0].ID != added.ID {
		t.Fatalf("entry did not persist: %+v (%v)", entries, err)
	}
}
