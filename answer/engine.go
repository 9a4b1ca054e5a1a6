package answer

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/awpgen/dfs"
	"github.com/katalvlaran/awpgen/scenario"
)

// DefaultPathCutoff bounds the edge count of paths counted by multi_hop_path_count.
const DefaultPathCutoff = 10

// Engine computes answers. The zero value is not usable; call NewEngine.
type Engine struct {
	pathCutoff int
}

// Option tunes an Engine.
type Option func(*Engine)

// WithPathCutoff bounds path length for multi_hop_path_count.
// Panics if n < 1.
func WithPathCutoff(n int) Option {
	if n < 1 {
		panic("answer: WithPathCutoff(n<1)")
	}
	return func(e *Engine) { e.pathCutoff = n }
}

// NewEngine returns an Engine with the given options applied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{pathCutoff: DefaultPathCutoff}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// PathCutoff returns the configured path-count cutoff.
func (e *Engine) PathCutoff() int { return e.pathCutoff }

// Compute returns the correct answer for question type qt on target tg.
//
// Errors: ErrUnknownType, ErrInvalidTarget, ErrUnreachableTarget.
func (e *Engine) Compute(s *scenario.Scenario, qt QuestionType, tg Target) (Answer, error) {
	if s == nil {
		return Answer{}, fmt.Errorf("answer: Compute: nil scenario: %w", ErrInvalidTarget)
	}
	if !qt.Valid() {
		return Answer{}, fmt.Errorf("answer: Compute(%d): %w", int(qt), ErrUnknownType)
	}
	q := query{s: s, qt: qt, tg: tg}
	if err := q.check(); err != nil {
		return Answer{}, err
	}

	switch qt {
	case InitialCount:
		return Int(q.initial(tg.Agent)), nil
	case FinalCount:
		return Int(q.final(tg.Agent)), nil
	case Difference:
		return Int(q.final(tg.Agent) - q.initial(tg.Agent)), nil
	case TransferAmount:
		return Int(q.flow(func(t scenario.Transfer) bool {
			return t.From == tg.Agent && t.To == tg.Secondary
		})), nil
	case TotalTransferred:
		return Int(q.flow(func(t scenario.Transfer) bool { return t.From == tg.Agent })), nil
	case TotalReceived:
		return Int(q.flow(func(t scenario.Transfer) bool { return t.To == tg.Agent })), nil
	case SumAll:
		return Int(q.total()), nil
	case ComparativeMore:
		a, b := q.final(tg.Agent), q.final(tg.Secondary)
		switch {
		case a > b:
			return Named(tg.Agent), nil
		case b > a:
			return Named(tg.Secondary), nil
		}
		return Answer{}, q.invalid("tie at %d", a)
	case ComparativeDifference:
		d := q.final(tg.Agent) - q.final(tg.Secondary)
		if d < 0 {
			d = -d
		}
		return Int(d), nil
	case TemporalAfterStep:
		state, err := scenario.Replay(s, tg.Step)
		if err != nil {
			return Answer{}, q.invalid("%v", err)
		}
		return Int(state[tg.Agent][tg.Object]), nil
	case ConditionalIfGaveMore:
		return Int(q.final(tg.Secondary) + tg.Extra), nil
	case MultiAgentCombined:
		sum := 0
		for _, a := range tg.Agents {
			sum += q.final(a)
		}
		return Int(sum), nil
	case RatioFraction:
		return Reduce(q.final(tg.Agent), q.total()), nil
	case RatioPercentage:
		return Percent(RoundPercent(q.final(tg.Agent), q.total())), nil
	case MultiHopIndirect:
		return e.indirect(q)
	case MultiHopNetFlow:
		in := q.flow(func(t scenario.Transfer) bool { return t.To == tg.Agent })
		out := q.flow(func(t scenario.Transfer) bool { return t.From == tg.Agent })
		return Int(in - out), nil
	case MultiHopPathCount:
		return e.pathCount(q)
	case MultiHopMultiStep:
		return e.multiStep(q)
	}

	return Answer{}, fmt.Errorf("answer: Compute(%s): %w", qt, ErrUnknownType)
}

// Compute uses a default Engine.
func Compute(s *scenario.Scenario, qt QuestionType, tg Target) (Answer, error) {
	return NewEngine().Compute(s, qt, tg)
}

// indirect is the bottleneck quantity along the first DFS path Agent→Secondary.
func (e *Engine) indirect(q query) (Answer, error) {
	g, err := TransferGraph(q.s, q.tg.Object)
	if err != nil {
		return Answer{}, err
	}
	path, err := dfs.FindPath(g, q.tg.Agent, q.tg.Secondary)
	if errors.Is(err, dfs.ErrNoPath) {
		return Answer{}, q.unreachable()
	}
	if err != nil {
		return Answer{}, fmt.Errorf("answer: %s: %w", q.qt, err)
	}

	var bottleneck int64 = -1
	for i := 1; i < len(path); i++ {
		w, ok := edgeWeight(g, path[i-1], path[i])
		if !ok {
			return Answer{}, fmt.Errorf("answer: %s: edge %s→%s vanished", q.qt, path[i-1], path[i])
		}
		if bottleneck < 0 || w < bottleneck {
			bottleneck = w
		}
	}

	return Int(int(bottleneck)), nil
}

// pathCount counts simple paths Agent→Secondary up to the cutoff.
func (e *Engine) pathCount(q query) (Answer, error) {
	g, err := TransferGraph(q.s, q.tg.Object)
	if err != nil {
		return Answer{}, err
	}
	n, err := dfs.CountSimplePaths(g, q.tg.Agent, q.tg.Secondary, e.pathCutoff)
	if err != nil {
		return Answer{}, fmt.Errorf("answer: %s: %w", q.qt, err)
	}
	if n == 0 {
		return Answer{}, q.unreachable()
	}

	return Int(n), nil
}

// multiStep is final − initial, defined only for agents on a chain of at
// least two transfers of the object.
func (e *Engine) multiStep(q query) (Answer, error) {
	g, err := TransferGraph(q.s, q.tg.Object)
	if err != nil {
		return Answer{}, err
	}
	ok, err := onChain(g, q.tg.Agent)
	if err != nil {
		return Answer{}, fmt.Errorf("answer: %s: %w", q.qt, err)
	}
	if !ok {
		return Answer{}, q.unreachable()
	}

	return Int(q.final(q.tg.Agent) - q.initial(q.tg.Agent)), nil
}
