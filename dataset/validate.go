package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/question"
	"github.com/katalvlaran/awpgen/scenario"
)

// Issue is one record that failed a check.
type Issue struct {
	File string `json:"file"`
	Line int    `json:"line"`
	ID   string `json:"id,omitempty"`
	Err  string `json:"error"`
}

func (i Issue) String() string {
	if i.ID == "" {
		return fmt.Sprintf("%s:%d: %s", i.File, i.Line, i.Err)
	}

	return fmt.Sprintf("%s:%d [%s]: %s", i.File, i.Line, i.ID, i.Err)
}

// Result is the outcome of Validate.
type Result struct {
	Scenarios int     `json:"scenarios"`
	Questions int     `json:"questions"`
	Issues    []Issue `json:"issues,omitempty"`
}

// OK reports whether no record failed.
func (r *Result) OK() bool { return len(r.Issues) == 0 }

// Validate checks every record of the dataset in dir. eng must be configured
// like the engine that generated the dataset (same path cutoff).
//
// The returned error covers only problems reading the directory; record
// failures are collected as Issues.
func Validate(dir string, eng *answer.Engine) (*Result, error) {
	r, err := Open(dir)
	if err != nil {
		return nil, err
	}
	schemas, err := LoadSchemas()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	scenarios := make(map[string]*scenario.Scenario)
	sPath, qPath := r.Paths()

	sFile := filepath.Base(sPath)
	err = scan(sPath, func(line int, raw []byte) error {
		res.Scenarios++
		issue := func(id string, err error) {
			res.Issues = append(res.Issues, Issue{File: sFile, Line: line, ID: id, Err: err.Error()})
		}
		if err := check(schemas.Scenario, raw); err != nil {
			issue("", err)
			return nil
		}
		var s scenario.Scenario
		if err := json.Unmarshal(raw, &s); err != nil {
			issue("", err)
			return nil
		}
		if _, dup := scenarios[s.ID]; dup {
			issue(s.ID, errors.New("duplicate scenario id"))
			return nil
		}
		scenarios[s.ID] = &s
		if err := scenario.Validate(&s); err != nil {
			issue(s.ID, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	qFile := filepath.Base(qPath)
	seen := make(map[string]struct{})
	err = scan(qPath, func(line int, raw []byte) error {
		res.Questions++
		issue := func(id string, err error) {
			res.Issues = append(res.Issues, Issue{File: qFile, Line: line, ID: id, Err: err.Error()})
		}
		if err := check(schemas.Question, raw); err != nil {
			issue("", err)
			return nil
		}
		var q question.Instance
		if err := json.Unmarshal(raw, &q); err != nil {
			issue("", err)
			return nil
		}
		if _, dup := seen[q.ID]; dup {
			issue(q.ID, errors.New("duplicate question id"))
			return nil
		}
		seen[q.ID] = struct{}{}
		if err := checkQuestion(q, scenarios[q.ScenarioID], eng); err != nil {
			issue(q.ID, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// checkQuestion recomputes the answer of q and re-derives it from the
// stated facts of its presentation.
func checkQuestion(q question.Instance, s *scenario.Scenario, eng *answer.Engine) error {
	if s == nil {
		return fmt.Errorf("unknown scenario %s", q.ScenarioID)
	}
	if want := question.NewID(q.ScenarioID, q.Index); q.ID != want {
		return fmt.Errorf("id %s, want %s", q.ID, want)
	}
	got, err := eng.Compute(s, q.Type, q.Target)
	if err != nil {
		return fmt.Errorf("recompute: %w", err)
	}
	if got != q.Answer {
		return fmt.Errorf("stored answer %s, recomputed %s", q.Answer, got)
	}
	switch a := q.Answer; a.Kind {
	case answer.Fraction:
		if answer.Reduce(a.Num, a.Den) != a {
			return fmt.Errorf("fraction %s not in lowest terms", a)
		}
	case answer.Percentage:
		if a.Value < 0 || a.Value > 100 {
			return fmt.Errorf("percentage %s outside [0, 100]", a)
		}
	}
	if q.Pattern != q.Presentation.Pattern {
		return fmt.Errorf("pattern %s, presentation says %s", q.Pattern, q.Presentation.Pattern)
	}

	return masking.Verify(q.Presentation, q.Question(), eng)
}
