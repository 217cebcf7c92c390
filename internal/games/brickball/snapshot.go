package brickball

import "math"

// Snapshot is a summary of a session used for tests and debugging.
// It is not a save format: the world cannot be rebuilt from it.
type Snapshot struct {
	Tick     int
	Score    int
	Paused   bool
	GameOver bool

	Bodies   int
	Contacts int

	// Per wall: brick count and attached count.
	WallLengths  []int
	WallAttached []int

	// Ball centres in pixels, player first, flattened as x, y pairs.
	BallData []float64
}

// Snapshot returns the current session summary.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Score:    g.score,
		Paused:   g.paused,
		GameOver: g.over,
	}
	if g.ctx == nil {
		return snap
	}

	c := g.ctx.World.Counters()
	snap.Bodies, snap.Contacts = c.Bodies, c.Contacts

	for _, w := range g.walls {
		snap.WallLengths = append(snap.WallLengths, w.Len())
		snap.WallAttached = append(snap.WallAttached, w.AttachedCount())
	}
	for _, b := range g.balls() {
		p := b.Position(g.ctx)
		snap.BallData = append(snap.BallData, p.X, p.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + uint64(snap.Bodies) //#nosec G115 -- hash computation

	for _, v := range snap.WallLengths {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.WallAttached {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
