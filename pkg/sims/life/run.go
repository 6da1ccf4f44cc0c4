package life

import "life-sandbox/pkg/core"

// Outcome classifies how a headless run ended.
type Outcome uint8

const (
	// OutcomeUnsettled means the step limit was reached first.
	OutcomeUnsettled Outcome = iota
	// OutcomeExtinct means every cell died.
	OutcomeExtinct
	// OutcomeStill means a generation repeated its predecessor.
	OutcomeStill
	// OutcomePeriod2 means a generation repeated the one two steps back.
	OutcomePeriod2
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExtinct:
		return "extinct"
	case OutcomeStill:
		return "still"
	case OutcomePeriod2:
		return "period-2"
	default:
		return "unsettled"
	}
}

// RunResult summarises a headless run.
type RunResult struct {
	Outcome      Outcome
	Generation   int
	InitialLive  int
	FinalLive    int
	PeakLive     int
	StepsAllowed int
}

// Run advances a fresh session built from cfg until it settles or maxSteps
// generations have passed.
func Run(cfg Config, maxSteps int) (RunResult, error) {
	s, err := NewSession(cfg, nil)
	if err != nil {
		return RunResult{}, err
	}
	res := RunResult{
		InitialLive:  s.LiveCells(),
		PeakLive:     s.LiveCells(),
		StepsAllowed: maxSteps,
	}
	s.Start()
	if res.InitialLive == 0 {
		res.Outcome = OutcomeExtinct
		return res, nil
	}

	var prev, prev2 *core.Grid
	for s.Generation() < maxSteps {
		prev2 = prev
		prev = s.Grid().Clone()
		s.Step()

		live := s.LiveCells()
		res.PeakLive = max(res.PeakLive, live)
		if live == 0 {
			res.Outcome = OutcomeExtinct
			break
		}
		if s.Grid().Equal(prev) {
			res.Outcome = OutcomeStill
			break
		}
		if prev2 != nil && s.Grid().Equal(prev2) {
			res.Outcome = OutcomePeriod2
			break
		}
	}
	res.Generation = s.Generation()
	res.FinalLive = s.LiveCells()
	return res, nil
}
