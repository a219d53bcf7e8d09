package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy        string
	Depth           int
	Duration        time.Duration
	Candidates      int
	Nodes           int // Boards cloned and played on
	Evaluations     int // Static evaluations at cutoffs and terminal positions
	BudgetExhausted bool
}

type MoveMetric struct {
	Step   int
	Colour string
	Move   string
	SearchMetric
}

type GameMetric struct {
	ID             string
	Players        int
	StartingColour string
	Winners        string // Comma separated colours, empty on a draw
	Draw           bool
	Scores         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Stalled        string // Colour left without a legal move, if any
}

type Collector interface {
	Start(strategy string, depth int)
	AddCandidates(n int)
	AddNode()
	AddEvaluation()
	SetBudgetExhausted()
	Complete() SearchMetric
}

type collector struct {
	strategy        string
	depth           int
	startTime       time.Time
	candidates      atomic.Int32
	nodes           atomic.Int32
	evaluations     atomic.Int32
	budgetExhausted atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, depth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.candidates.Store(0)
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.budgetExhausted.Store(false)
}

func (m *collector) AddCandidates(n int) {
	m.candidates.Add(int32(n))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) SetBudgetExhausted() {
	m.budgetExhausted.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:        m.strategy,
		Depth:           m.depth,
		Duration:        time.Since(m.startTime),
		Candidates:      int(m.candidates.Load()),
		Nodes:           int(m.nodes.Load()),
		Evaluations:     int(m.evaluations.Load()),
		BudgetExhausted: m.budgetExhausted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {}
func (m *dummyCollector) AddCandidates(n int)              {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddEvaluation()                   {}
func (m *dummyCollector) SetBudgetExhausted()              {}
func (m *dummyCollector) Complete() SearchMetric           { return SearchMetric{} }
