package game

type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
)

func (s GameState) String() string {
	if s == StatePaused {
		return "paused"
	}
	return "playing"
}

// GameSession wraps a Simulation with pause and restart. Restarts derive
// a fresh seed from the session seed so a whole session replays
// deterministically.
type GameSession struct {
	State    GameState
	Sim      *Simulation
	Restarts int

	cfg Config
}

func NewGameSession(cfg Config) *GameSession {
	return &GameSession{
		State: StatePlaying,
		Sim:   New(cfg),
		cfg:   cfg,
	}
}

func (s *GameSession) TogglePause() {
	if s.State == StatePaused {
		s.State = StatePlaying
		return
	}
	s.State = StatePaused
}

// Restart replaces the simulation with a fresh court. The event bus is
// carried over.
func (s *GameSession) Restart() {
	s.Restarts++
	cfg := s.cfg
	cfg.Seed = splitmix64(s.cfg.Seed ^ uint64(s.Restarts)*0x9E3779B185EBCA87)
	s.Sim = New(cfg)
	s.State = StatePlaying
}

// Update ticks the simulation unless paused.
func (s *GameSession) Update(dt float64) {
	if s.State != StatePlaying {
		return
	}
	s.Sim.Tick(dt)
}
