package generator

import (
	"fmt"
	"time"
)

// Report summarizes a run.
type Report struct {
	Requested      int           `json:"requested"`
	Generated      int           `json:"generated"`
	Skipped        int           `json:"skipped"`
	SkippedIndices []int         `json:"skipped_indices,omitempty"`
	Questions      int           `json:"questions"`
	Fallbacks      int           `json:"fallbacks"`
	Attempts       int           `json:"attempts"`
	Elapsed        time.Duration `json:"elapsed_ns"`
}

func (r *Report) skip(index int) {
	r.Skipped++
	r.SkippedIndices = append(r.SkippedIndices, index)
}

func (r *Report) add(e Entry) {
	r.Generated++
	r.Questions += len(e.Questions)
	for _, q := range e.Questions {
		if q.Fallback {
			r.Fallbacks++
		}
	}
}

// String is the one-line summary printed by the CLI.
func (r Report) String() string {
	return fmt.Sprintf("generated %d/%d scenarios (%d skipped), %d questions (%d fallbacks), %d attempts in %s",
		r.Generated, r.Requested, r.Skipped, r.Questions, r.Fallbacks, r.Attempts, r.Elapsed.Round(time.Millisecond))
}
