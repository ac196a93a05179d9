package game

// Snapshot is a read-only copy of a session, safe to hand to a renderer.
type Snapshot struct {
	Tick      int
	Score     int
	State     State
	Player    Player
	Obstacles []Obstacle
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.ticks,
		Score:     s.score,
		State:     s.state,
		Player:    s.player,
		Obstacles: s.Obstacles(),
	}
}

// GameOver reports whether the snapshot was taken after the round ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}
