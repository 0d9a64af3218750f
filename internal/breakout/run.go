package breakout

// Summary aggregates a headless run.
type Summary struct {
	Ticks  uint64         `yaml:"ticks"`
	Events map[string]int `yaml:"events"`
	Final  Snapshot       `yaml:"final"`
}

// Run advances the simulation n ticks, passing every result to observe when
// it is non-nil, and returns the event totals with the final snapshot.
// Clearing the last block does not stop the run.
func (s *Simulation) Run(n int, observe func(StepResult)) Summary {
	sum := Summary{Events: make(map[string]int)}

	for range n {
		result := s.Step()
		for _, ev := range result.Events {
			sum.Events[ev.Kind.String()]++
		}
		if observe != nil {
			observe(result)
		}
		sum.Ticks++
	}

	sum.Final = s.Snapshot()
	return sum
}
