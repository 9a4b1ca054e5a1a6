package dataset

import (
	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/complexity"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/question"
	"github.com/katalvlaran/awpgen/scenario"
)

// Analysis summarizes a dataset.
type Analysis struct {
	Scenarios int `json:"scenarios"`
	Questions int `json:"questions"`

	QuestionTypes map[string]int `json:"question_types"`
	Categories    map[string]int `json:"categories"`
	Patterns      map[string]int `json:"masking"`
	Agents        map[string]int `json:"agents"`
	Objects       map[string]int `json:"objects"`
	Difficulties  map[string]int `json:"difficulties"`
	Topologies    map[string]int `json:"topologies"`
	Tiers         map[string]int `json:"complexity_tiers"`

	Masked       int     `json:"masked_count"`
	MaskedPct    float64 `json:"masked_pct"`
	Scrambled    int     `json:"scrambled_count"`
	Fallbacks    int     `json:"fallbacks"`
	ZeroAnswers  int     `json:"zero_answers"`
	AvgQuestions float64 `json:"avg_questions_per_scenario"`

	Complexity         complexity.Summary `json:"complexity"`
	ScenarioComplexity complexity.Summary `json:"scenario_complexity"`
}

// Analyze tallies scenarios and questions. Scenario scores are binned into
// the tiers of targets.
func Analyze(scenarios []*scenario.Scenario, questions []question.Instance, targets map[string]complexity.Range) Analysis {
	a := Analysis{
		Scenarios:     len(scenarios),
		Questions:     len(questions),
		QuestionTypes: map[string]int{},
		Categories:    map[string]int{},
		Patterns:      map[string]int{},
		Agents:        map[string]int{},
		Objects:       map[string]int{},
		Difficulties:  map[string]int{},
		Topologies:    map[string]int{},
		Tiers:         map[string]int{},
	}

	scores := make([]float64, 0, len(scenarios))
	for _, s := range scenarios {
		a.Difficulties[s.Difficulty]++
		a.Topologies[s.Topology.String()]++
		a.Tiers[complexity.Tier(s.Complexity, targets)]++
		scores = append(scores, s.Complexity)
	}
	a.ScenarioComplexity = complexity.Summarize(scores)

	scores = make([]float64, 0, len(questions))
	perScenario := map[string]int{}
	for _, q := range questions {
		a.QuestionTypes[q.Type.String()]++
		a.Categories[q.Type.Category().String()]++
		a.Patterns[q.Pattern.String()]++
		for _, name := range targetAgents(q.Target) {
			a.Agents[name]++
		}
		a.Objects[q.Target.Object]++
		if q.Pattern != masking.Unmasked {
			a.Masked++
		}
		if q.Presentation.Scrambled {
			a.Scrambled++
		}
		if q.Fallback {
			a.Fallbacks++
		}
		if q.Answer.Kind == answer.Integer && q.Answer.Value == 0 {
			a.ZeroAnswers++
		}
		perScenario[q.ScenarioID]++
		scores = append(scores, q.Complexity)
	}
	a.Complexity = complexity.Summarize(scores)
	if len(questions) > 0 {
		a.MaskedPct = complexity.Round2(float64(a.Masked) / float64(len(questions)) * 100)
		a.AvgQuestions = complexity.Round2(float64(len(questions)) / float64(len(perScenario)))
	}

	return a
}

// targetAgents lists the agents a target names: the combined set, or the
// primary and secondary agent.
func targetAgents(t answer.Target) []string {
	if len(t.Agents) > 0 {
		return t.Agents
	}
	var out []string
	for _, name := range []string{t.Agent, t.Secondary} {
		if name != "" {
			out = append(out, name)
		}
	}

	return out
}
