package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Tank-Duel/internal/game"
)

func TestDetectStalemate_FalseWhenDecided(t *testing.T) {
	rs := runStats{winner: 0, scores: [2]int{3, 1}}
	if s, reason := detectStalemate(rs); s {
		t.Fatalf("expected decided match to not be a stalemate (reason=%s)", reason)
	}
}

func TestDetectStalemate_TrueWhenQuietTimeout(t *testing.T) {
	rs := runStats{timedOut: true, winner: game.NoTank}
	rs.stats.Tanks[0].Shots = 2
	rs.stats.Tanks[1].Shots = 3

	s, reason := detectStalemate(rs)
	if !s {
		t.Fatalf("expected stalemate=true, got false (reason=%s)", reason)
	}
	if !strings.Contains(reason, "no_hits") {
		t.Fatalf("expected reason to mention no_hits, got: %s", reason)
	}
}

func TestDetectStalemate_FalseWhenTimeoutWasBusy(t *testing.T) {
	rs := runStats{timedOut: true, winner: game.NoTank, scores: [2]int{2, 1}}
	rs.stats.Tanks[0].Shots = 40
	rs.stats.Tanks[1].Shots = 35

	if s, reason := detectStalemate(rs); s {
		t.Fatalf("expected busy timeout to not be a stalemate (reason=%s)", reason)
	}
}

func TestFirstTick(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 3, Category: "fire", Key: "shot"},
		{Tick: 9, Category: "hit", Key: "shield"},
		{Tick: 12, Category: "hit", Key: "score"},
	}
	if got := firstTick(entries, "hit", ""); got != 9 {
		t.Fatalf("first hit tick: want 9, got %d", got)
	}
	if got := firstTick(entries, "hit", "score"); got != 12 {
		t.Fatalf("first score tick: want 12, got %d", got)
	}
	if got := firstTick(entries, "powerup", "collect"); got != -1 {
		t.Fatalf("missing event: want -1, got %d", got)
	}
}

func TestRunDemoMatch_StopsAtTickLimit(t *testing.T) {
	a := game.NewArena(game.WithArenaSize(800, 500), game.WithSeed(7))
	rs := runDemoMatch(a, 1, 7, 120)

	if rs.ticks > 120 {
		t.Fatalf("match ran %d ticks past the limit", rs.ticks)
	}
	if rs.matchID == "" {
		t.Fatal("expected a match id")
	}
	if !rs.timedOut && rs.winner == game.NoTank {
		t.Fatal("a finished match must have a winner")
	}
}
