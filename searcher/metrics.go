package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Depth     int
	Pruning   bool
	Nodes     int64 // Positions visited, root included
	Cutoffs   int64 // Sibling lists abandoned because beta <= alpha
	RootMoves int64 // Root children actually searched
}

type MetricsCollector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddCutoff()
	AddRootMove()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	depth     int
	pruning   bool
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	rootMoves atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.rootMoves.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) AddRootMove() {
	m.rootMoves.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Depth:     m.depth,
		Pruning:   m.pruning,
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
		RootMoves: m.rootMoves.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(int, bool)         {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) AddRootMove()            {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
