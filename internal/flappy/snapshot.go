package flappy

// Snapshot is a read-only view of the world for renderers and spectators.
type Snapshot struct {
	Phase      Phase
	Paused     bool
	Tick       int
	SessionID  string
	Score      int
	HighScore  int
	Character  Character
	Player     PlayerView
	Obstacles  []ObstacleView
	Background []BackgroundView
}

// PlayerView is the render transform of the player.
type PlayerView struct {
	X, Y   float64
	Tilt   float64
	Radius float64
	Alive  bool
}

// ObstacleView is the render transform of one obstacle.
type ObstacleView struct {
	ID       EntityID
	Variant  Variant
	X, Y     float64
	Rotation float64
	Upper    bool
}

// BackgroundView is the render transform of one parallax element.
type BackgroundView struct {
	Layer Layer
	X, Y  float64
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:     g.phase,
		Paused:    g.paused,
		Tick:      g.ticks,
		SessionID: g.sessionID,
		Score:     g.score,
		HighScore: g.highScore,
		Character: g.character,
		Player: PlayerView{
			X:      g.player.X,
			Y:      g.player.Y,
			Tilt:   g.player.Tilt,
			Radius: g.player.Radius,
			Alive:  g.player.Alive,
		},
		Obstacles:  make([]ObstacleView, 0, g.obstacles.Len()),
		Background: make([]BackgroundView, 0, g.background.Len()),
	}
	for id, o := range g.obstacles.All() {
		s.Obstacles = append(s.Obstacles, ObstacleView{
			ID:       id,
			Variant:  o.Variant,
			X:        o.X,
			Y:        o.Y,
			Rotation: o.Rotation,
			Upper:    o.Upper,
		})
	}
	for _, e := range g.background.All() {
		s.Background = append(s.Background, BackgroundView{Layer: e.Layer, X: e.X, Y: e.Y})
	}
	return s
}
