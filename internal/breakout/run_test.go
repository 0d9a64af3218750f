package breakout

import "testing"

func TestRunSummary(t *testing.T) {
	s := NewDefault()

	observed := 0
	sum := s.Run(100, func(r StepResult) {
		observed++
		if r.Tick != uint64(observed) { //#nosec G115 -- test counter
			t.Errorf("observed tick %d, expected %d", r.Tick, observed)
		}
	})

	if sum.Ticks != 100 || observed != 100 {
		t.Errorf("Ticks = %d, observed = %d, expected 100", sum.Ticks, observed)
	}
	if sum.Final.Tick != 100 {
		t.Errorf("Final.Tick = %d, expected 100", sum.Final.Tick)
	}
	// Paddle at 375 moving +5 reaches the right edge on tick 5, then
	// sweeps 400 units each way.
	if sum.Events["paddle-turn"] == 0 {
		t.Error("expected at least one paddle turn in 100 ticks")
	}
}

func TestRunMatchesManualSteps(t *testing.T) {
	a := NewDefault()
	sum := a.Run(1500, nil)

	b := NewDefault()
	blocks := 0
	for range 1500 {
		blocks += b.Step().Count(EventBlock)
	}

	bs := b.Snapshot()
	if sum.Final.Hash() != bs.Hash() {
		t.Error("Run and manual stepping diverged")
	}
	if sum.Events["block"] != blocks {
		t.Errorf("block events = %d, expected %d", sum.Events["block"], blocks)
	}
	if got := 50 - sum.Final.Remaining; got != blocks {
		t.Errorf("hidden blocks = %d, block events = %d", got, blocks)
	}
}

func TestRunZeroTicks(t *testing.T) {
	sum := NewDefault().Run(0, nil)
	if sum.Ticks != 0 || sum.Final.Tick != 0 || len(sum.Events) != 0 {
		t.Errorf("unexpected summary for zero ticks: %+v", sum)
	}
}
