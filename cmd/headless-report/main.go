package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Garsondee/Tank-Duel/internal/config"
	"github.com/Garsondee/Tank-Duel/internal/game"
	"github.com/charmbracelet/log"
)

type runStats struct {
	runIndex int
	seed     int64
	matchID  string

	winner   game.TankID
	scores   [2]int
	ticks    int
	timedOut bool

	firstShotTick   int
	firstHitTick    int
	firstPickupTick int

	layoutChanges int
	spawnFailures int
	pickupSpawns  int

	stats game.MatchStats
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var width, height float64
	var verbose bool
	var layoutsPath string

	flag.IntVar(&runs, "runs", 5, "number of headless demo matches")
	flag.IntVar(&ticks, "ticks", 60*60*5, "tick limit per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&width, "width", 1280, "arena width")
	flag.Float64Var(&height, "height", 720, "arena height")
	flag.BoolVar(&verbose, "v", false, "print the event log of every match")
	flag.StringVar(&layoutsPath, "layouts", "", "YAML file of barrier layouts to use instead of the built-in cycle")
	flag.Parse()
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if runs <= 0 {
		log.Error("-runs must be > 0", "runs", runs)
		return
	}
	if ticks <= 0 {
		log.Error("-ticks must be > 0", "ticks", ticks)
		return
	}
	if width <= 0 || height <= 0 {
		log.Error("-width and -height must be > 0", "width", width, "height", height)
		return
	}

	opts := []game.Option{game.WithArenaSize(width, height)}
	if layoutsPath != "" {
		specs, err := config.LoadLayouts(layoutsPath)
		if err != nil {
			log.Fatal("Failed to load layouts", "error", err)
		}
		layouts := make([]game.Layout, 0, len(specs))
		for _, l := range specs {
			layouts = append(layouts, game.RelativeLayout(l.Fractions()))
		}
		opts = append(opts, game.WithLayouts(layouts...))
	}

	fmt.Printf("=== Headless Tank Duel Report ===\n")
	fmt.Printf("runs=%d tick_limit=%d arena=%.0fx%.0f seed_base=%d seed_step=%d\n\n", runs, ticks, width, height, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		a := game.NewArena(append(opts, game.WithSeed(seed))...)
		rs := runDemoMatch(a, i+1, seed, ticks)
		log.Debug("Run finished", "run", i+1, "seed", seed, "ticks", rs.ticks, "winner", winnerLabel(rs.winner))
		all = append(all, rs)
		printRun(rs)
		if verbose {
			fmt.Print(a.Log().Format())
			fmt.Println()
		}
	}

	printAggregate(all)
}

// runDemoMatch plays one AI-vs-AI match until someone wins or the tick limit
// is reached.
func runDemoMatch(a *game.Arena, runIndex int, seed int64, ticks int) runStats {
	a.InitMatch(0)
	for i := 0; i < ticks && a.State() == game.StatePlaying; i++ {
		a.Advance()
	}

	rs := runStats{
		runIndex:        runIndex,
		seed:            seed,
		matchID:         a.MatchID(),
		winner:          game.NoTank,
		ticks:           a.Tick(),
		timedOut:        a.State() == game.StatePlaying,
		firstShotTick:   firstTick(a.Log().Entries(), "fire", "shot"),
		firstHitTick:    firstTick(a.Log().Entries(), "hit", ""),
		firstPickupTick: firstTick(a.Log().Entries(), "powerup", "collect"),
		layoutChanges:   a.Log().CountCategory("match", "layout"),
		spawnFailures:   a.Log().CountCategory("powerup", "spawn_failed"),
		pickupSpawns:    a.Log().CountCategory("powerup", "spawn"),
		stats:           *a.Stats(),
	}
	if w := a.Winner(); w != nil {
		rs.winner = w.ID
	}
	for i, t := range a.Tanks() {
		rs.scores[i] = t.Score
	}
	return rs
}

func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if key == "" || e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// detectStalemate flags matches that ran out the clock with little
// happening, which usually means both AIs are stuck behind cover.
func detectStalemate(rs runStats) (bool, string) {
	if !rs.timedOut {
		return false, "decided"
	}
	hits := rs.scores[0] + rs.scores[1]
	shots := rs.stats.Tanks[0].Shots + rs.stats.Tanks[1].Shots
	var reasons []string
	if hits == 0 {
		reasons = append(reasons, "no_hits")
	}
	if shots < 10 {
		reasons = append(reasons, "few_shots")
	}
	if rs.scores[0] == rs.scores[1] {
		reasons = append(reasons, "level_score")
	}
	if len(reasons) < 2 {
		return false, "timeout_active"
	}
	return true, strings.Join(reasons, "+")
}

func winnerLabel(id game.TankID) string {
	if id == game.NoTank {
		return "none"
	}
	return fmt.Sprintf("P%d", id+1)
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d match=%s) ---\n", rs.runIndex, rs.seed, rs.matchID)
	stalemate, reason := detectStalemate(rs)
	fmt.Printf("result: winner=%s score=%d-%d ticks=%d timed_out=%v stalemate=%v (%s)\n",
		winnerLabel(rs.winner), rs.scores[0], rs.scores[1], rs.ticks, rs.timedOut, stalemate, reason)
	fmt.Printf("phase_markers: first_shot=%d first_hit=%d first_pickup=%d\n",
		rs.firstShotTick, rs.firstHitTick, rs.firstPickupTick)
	fmt.Printf("arena_events: layout_changes=%d pickup_spawns=%d spawn_failures=%d\n",
		rs.layoutChanges, rs.pickupSpawns, rs.spawnFailures)
	fmt.Print(rs.stats.Format())
	fmt.Println()
}

func printAggregate(all []runStats) {
	var wins [2]int
	var totals [2]game.TankStats
	timeouts := 0
	stalemates := 0
	totalTicks := 0
	hitTicks := make([]int, 0, len(all))

	for _, rs := range all {
		if rs.winner != game.NoTank {
			wins[rs.winner]++
		}
		if rs.timedOut {
			timeouts++
		}
		if s, _ := detectStalemate(rs); s {
			stalemates++
		}
		totalTicks += rs.ticks
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
		for i := range totals {
			addTankStats(&totals[i], rs.stats.Tanks[i])
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d wins: P1=%d P2=%d timeouts=%d stalemates=%d\n", len(all), wins[0], wins[1], timeouts, stalemates)
	fmt.Printf("avg_ticks_per_match=%.1f avg_first_hit=%s\n", avg(totalTicks, len(all)), avgTickString(hitTicks))
	for i, s := range totals {
		fmt.Printf("P%d avg_per_match: shots=%.1f hits=%.1f shields=%.1f bounces=%.1f pierces=%.1f pickups=%.1f evasions=%.1f replans=%.1f accuracy=%.0f%%\n",
			i+1,
			avg(s.Shots, len(all)), avg(s.Hits, len(all)), avg(s.ShieldsBroken, len(all)),
			avg(s.Bounces, len(all)), avg(s.Pierces, len(all)), avg(s.PowerUps, len(all)),
			avg(s.Evasions, len(all)), avg(s.Replans, len(all)), s.Accuracy()*100)
	}
}

func addTankStats(dst *game.TankStats, s game.TankStats) {
	dst.Shots += s.Shots
	dst.Bounces += s.Bounces
	dst.Pierces += s.Pierces
	dst.Hits += s.Hits
	dst.ShieldsBroken += s.ShieldsBroken
	dst.PowerUps += s.PowerUps
	dst.Evasions += s.Evasions
	dst.Replans += s.Replans
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
