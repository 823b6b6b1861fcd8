package game

import (
	"fmt"
	"strings"
)

// TankStats counts what one tank did during a match.
type TankStats struct {
	Shots         int
	Bounces       int
	Pierces       int
	Hits          int
	ShieldsBroken int
	PowerUps      int
	Evasions      int
	Replans       int
}

// Accuracy returns scoring hits (shield breaks included) per shot fired.
func (s TankStats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits+s.ShieldsBroken) / float64(s.Shots)
}

// MatchStats aggregates per-tank counters for one match.
type MatchStats struct {
	Tanks    [2]TankStats
	WinnerID TankID
	Ticks    int // tick the match ended on, 0 while running
}

// NewMatchStats returns empty stats with no winner.
func NewMatchStats() *MatchStats {
	return &MatchStats{WinnerID: NoTank}
}

func (ms *MatchStats) tank(id TankID) *TankStats {
	return &ms.Tanks[id]
}

// Format renders the stats as an aligned table.
func (ms *MatchStats) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s %6s %7s %7s %4s %7s %7s %7s %7s %6s\n",
		"tank", "shots", "bounce", "pierce", "hits", "shields", "pickups", "evades", "replans", "acc")
	for i, s := range ms.Tanks {
		fmt.Fprintf(&sb, "P%-3d %6d %7d %7d %4d %7d %7d %7d %7d %5.0f%%\n",
			i+1, s.Shots, s.Bounces, s.Pierces, s.Hits, s.ShieldsBroken, s.PowerUps, s.Evasions, s.Replans, s.Accuracy()*100)
	}
	return sb.String()
}
