package game

import (
	"strings"
	"testing"
)

func TestSimLog_QueryHelpers(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "P1", "fire", "shot", "(100,300)", 0)
	sl.Add(2, "P2", "fire", "shot", "(900,300)", 0)
	sl.Add(5, "P1", "hit", "score", "hit P2 score=1", 1)
	sl.AddVerbose(5, "P1", "move", "position", "(101,300)", 0)

	if n := len(sl.Entries()); n != 3 {
		t.Fatalf("expected 3 entries with verbose off, got %d", n)
	}
	if n := sl.CountCategory("fire", "shot"); n != 2 {
		t.Fatalf("expected 2 shots, got %d", n)
	}
	if n := len(sl.FilterTank("P1")); n != 2 {
		t.Fatalf("expected 2 P1 entries, got %d", n)
	}
	if n := len(sl.FilterTickRange(2, 5)); n != 2 {
		t.Fatalf("expected 2 entries in [2,5], got %d", n)
	}
	last, ok := sl.LastOf("fire", "shot")
	if !ok || last.Tank != "P2" {
		t.Fatalf("expected last shot by P2, got %+v", last)
	}
	if _, ok := sl.LastOf("powerup", "collect"); ok {
		t.Fatal("LastOf should report missing entries")
	}
	if !sl.HasEntry("hit", "", "score=1") {
		t.Fatal("expected substring match on value")
	}
	if sl.HasEntry("hit", "", "score=2") {
		t.Fatal("unexpected substring match")
	}
	if got := sl.FormatRange(5, 5); !strings.Contains(got, "[T=005] P1") {
		t.Fatalf("unexpected range format:\n%s", got)
	}
}

func TestSimLog_VerboseRecordsPositions(t *testing.T) {
	ts := NewTestSim(withArena(WithVerboseLog(true)))
	ts.RunTicks(3)
	if n := ts.SimLog.CountCategory("move", "position"); n != 6 {
		t.Fatalf("expected a position entry per tank per tick, got %d", n)
	}

	quiet := NewTestSim()
	quiet.RunTicks(3)
	if quiet.SimLog.CountCategory("move", "") != 0 {
		t.Fatal("positions should only be logged in verbose mode")
	}
}

func TestInitMatch_StartsFreshLog(t *testing.T) {
	ts := NewTestSim(
		withArena(WithVerboseLog(true)),
		withInput(0, Input{Fire: true}),
	)
	ts.RunTicks(3)
	if ts.SimLog.CountCategory("fire", "shot") == 0 {
		t.Fatal("expected the first match to log a shot")
	}

	ts.Arena.InitMatch(2)
	sl := ts.Arena.Log()
	if sl == ts.SimLog {
		t.Fatal("expected a new log for the new match")
	}
	if n := sl.CountCategory("fire", ""); n != 0 {
		t.Fatalf("expected no carried-over shots, got %d", n)
	}
	if !sl.HasEntry("match", "start", ts.Arena.MatchID()) {
		t.Fatal("expected the new log to open with the match start")
	}
	if !sl.verbose {
		t.Fatal("verbose logging should survive a new match")
	}
}

func TestSimLog_Summary(t *testing.T) {
	ts := NewTestSim(withInput(0, Input{Fire: true}))
	ts.RunTicks(1)
	s := ts.SimLog.Summary(ts.Arena.Tick(), ts.Arena.Tanks())
	for _, want := range []string{"T=001", "P1 score=0", "Shots: 1"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestTankStats_Accuracy(t *testing.T) {
	if (TankStats{}).Accuracy() != 0 {
		t.Fatal("accuracy with no shots should be 0")
	}
	s := TankStats{Shots: 8, Hits: 1, ShieldsBroken: 1}
	if !near(s.Accuracy(), 0.25) {
		t.Fatalf("expected 0.25, got %.3f", s.Accuracy())
	}
}

func TestMatchStats_Format(t *testing.T) {
	ms := NewMatchStats()
	if ms.WinnerID != NoTank {
		t.Fatal("fresh stats should have no winner")
	}
	ms.tank(1).Shots = 4
	ms.tank(1).Hits = 2
	out := ms.Format()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "P2") || !strings.HasSuffix(lines[2], "50%") {
		t.Fatalf("unexpected P2 row %q", lines[2])
	}
}

func TestDebugReport_Contents(t *testing.T) {
	ts := NewTestSim(
		withPlayers(1),
		withBullet(0, 500, 100, 0),
		withPowerUp(PowerUpShield, 50, 50),
	)
	ts.RunTicks(2)
	r := ts.Arena.DebugReport(0)

	for _, want := range []string{
		"--- Tank Duel debug report ---",
		ts.Arena.MatchID(),
		"== P1 ==",
		"== P2 ==",
		"== events ==",
		"state=playing",
	} {
		if !strings.Contains(r, want) {
			t.Fatalf("report missing %q:\n%s", want, r)
		}
	}
}

func TestDebugReport_EmptyRange(t *testing.T) {
	ts := NewTestSim()
	ts.RunTicks(200)
	if r := ts.Arena.DebugReport(10); !strings.Contains(r, "(no events in range)") {
		t.Fatalf("expected empty event range:\n%s", r)
	}
}

func TestThoughtLog_RingBuffer(t *testing.T) {
	tl := NewThoughtLog()
	for i := 0; i < 50; i++ {
		tl.Add(i, "P2", 1, "thinking")
	}
	if tl.Len() != logMaxEntries {
		t.Fatalf("expected %d entries, got %d", logMaxEntries, tl.Len())
	}
	recent := tl.Recent()
	if recent[0].Tick != 10 || recent[len(recent)-1].Tick != 49 {
		t.Fatalf("expected ticks 10..49, got %d..%d", recent[0].Tick, recent[len(recent)-1].Tick)
	}
}
