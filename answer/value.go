package answer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind tells how an Answer is represented.
type Kind int

const (
	// Integer answers are counts, sums and differences.
	Integer Kind = iota
	// Fraction answers are reduced p/q.
	Fraction
	// Percentage answers are integer percents in [0, 100].
	Percentage
	// Name answers are agent names.
	Name
)

// Answer is a correct answer. Exactly the fields of its Kind are meaningful.
type Answer struct {
	Kind  Kind
	Value int    // Integer and Percentage
	Num   int    // Fraction
	Den   int    // Fraction, > 0
	Agent string // Name
}

// Int returns an Integer answer.
func Int(v int) Answer { return Answer{Kind: Integer, Value: v} }

// Frac returns a Fraction answer; num/den must already be reduced.
func Frac(num, den int) Answer { return Answer{Kind: Fraction, Num: num, Den: den} }

// Percent returns a Percentage answer.
func Percent(v int) Answer { return Answer{Kind: Percentage, Value: v} }

// Named returns a Name answer.
func Named(agent string) Answer { return Answer{Kind: Name, Agent: agent} }

// String renders the answer as it appears in datasets: "12", "3/7", "45%", "Alex".
func (a Answer) String() string {
	switch a.Kind {
	case Fraction:
		return fmt.Sprintf("%d/%d", a.Num, a.Den)
	case Percentage:
		return fmt.Sprintf("%d%%", a.Value)
	case Name:
		return a.Agent
	default:
		return strconv.Itoa(a.Value)
	}
}

// MarshalJSON writes integers as numbers and every other kind as a string.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Kind == Integer {
		return json.Marshal(a.Value)
	}

	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a number or one of the string forms.
func (a *Answer) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*a = Int(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("answer: decode %s: %w", b, err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}

// Parse reads the String form back. Strings that are neither numeric,
// p/q nor N% are names.
func Parse(s string) (Answer, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return Int(v), nil
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Answer{}, fmt.Errorf("answer: Parse(%q): %w", s, err)
		}
		return Percent(v), nil
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.Atoi(num)
		d, err2 := strconv.Atoi(den)
		if err1 != nil || err2 != nil || d <= 0 {
			return Answer{}, fmt.Errorf("answer: Parse(%q): malformed fraction", s)
		}
		return Frac(n, d), nil
	}
	if s == "" {
		return Answer{}, fmt.Errorf("answer: Parse: empty answer")
	}

	return Named(s), nil
}

// gcd returns the greatest common divisor of |a| and |b|; gcd(0, 0) = 0.
func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Reduce returns part/total in lowest terms; a zero total yields 0/1.
func Reduce(part, total int) Answer {
	if total == 0 {
		return Frac(0, 1)
	}
	d := gcd(part, total)
	if d == 0 {
		d = 1
	}

	return Frac(part/d, total/d)
}

// RoundPercent returns 100·part/total rounded half up, or 0 when total is 0.
// Inputs are non-negative counts.
func RoundPercent(part, total int) int {
	if total <= 0 {
		return 0
	}

	return (200*part + total) / (2 * total)
}
