package metrics

import (
	"reversi/game"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Strategy   string
	Workers    int
	Duration   time.Duration
	Candidates int
	Found      bool
}

type MoveMetric struct {
	Step  int
	Side  game.Side
	Move  game.Coord
	Pass  bool
	Delta int // Score change for the mover
	SearchMetric
}

type GameMetric struct {
	ID        uuid.UUID
	First     game.Side
	Winner    game.Side
	Draw      bool
	Truncated bool // Stopped at the turn limit
	Black     int  // Final disc count
	White     int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
	Passes    int
	// Final position scored from Black's perspective, each in [-1, 1]
	Evaluation float64
	Mobility   float64
}

// Margin is Black's disc count minus White's.
func (g GameMetric) Margin() int {
	return g.Black - g.White
}

type Collector interface {
	Start(strategy string, workers int)
	AddCandidate()
	Complete(found bool) SearchMetric
}

type collector struct {
	strategy   string
	workers    int
	startTime  time.Time
	candidates atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, workers int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.workers = workers
	m.candidates.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) Complete(found bool) SearchMetric {
	return SearchMetric{
		Strategy:   m.strategy,
		Workers:    m.workers,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Found:      found,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, workers int) {}
func (m *dummyCollector) AddCandidate()                      {}
func (m *dummyCollector) Complete(found bool) SearchMetric   { return SearchMetric{} }
