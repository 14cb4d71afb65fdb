package searcher

import "time"

// Report summarizes one estimation run.
type Report struct {
	Rollouts int
	NoWinner int // rollouts that ended without a declared winner
	Duration time.Duration
}

// Collector gathers rollout statistics. The searcher is handed a dummy
// collector by default so the hot loop pays nothing for bookkeeping.
type Collector interface {
	Start()
	AddRollout(winner int)
	Complete() Report
}

type collector struct {
	startTime time.Time
	rollouts  int
	noWinner  int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.rollouts = 0
	c.noWinner = 0
}

func (c *collector) AddRollout(winner int) {
	c.rollouts++
	if winner < 0 {
		c.noWinner++
	}
}

func (c *collector) Complete() Report {
	return Report{
		Rollouts: c.rollouts,
		NoWinner: c.noWinner,
		Duration: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector { return dummyCollector{} }

func (dummyCollector) Start() {}

func (dummyCollector) AddRollout(int) {}

func (dummyCollector) Complete() Report { return Report{} }
