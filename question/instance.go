package question

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/awpgen/answer"
	"github.com/katalvlaran/awpgen/masking"
	"github.com/katalvlaran/awpgen/scenario"
)

// Instance is one question about a scenario. Read-only once built.
type Instance struct {
	ID                 string               `json:"id"`
	ScenarioID         string               `json:"scenario_id"`
	Index              int                  `json:"index"`
	Type               answer.QuestionType  `json:"question_type"`
	Target             answer.Target        `json:"target"`
	Answer             answer.Answer        `json:"correct_answer"`
	Pattern            masking.Pattern      `json:"masking_pattern"`
	Presentation       masking.Presentation `json:"presentation"`
	Complexity         float64              `json:"complexity_score"`
	ScenarioComplexity float64              `json:"scenario_complexity"`
	Fallback           bool                 `json:"fallback,omitempty"`
}

// Question returns the masking view of the instance.
func (in Instance) Question() masking.Question {
	return masking.Question{
		Query:  masking.Query{Type: in.Type, Target: in.Target},
		Answer: in.Answer,
	}
}

// NewID returns the deterministic ID of the index-th question of a scenario.
func NewID(scenarioID string, index int) string {
	return uuid.NewSHA1(scenario.Namespace, []byte(fmt.Sprintf("question/%s/%d", scenarioID, index))).String()
}
