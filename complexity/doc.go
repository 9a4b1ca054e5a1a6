// Package complexity scores scenarios and questions.
//
// A scenario score is a weighted sum of its graph metrics and its size:
//
//	w_d·diameter + w_den·density + w_b·avg_branching + w_c·cycle_count
//	  + w_t·transfers + w_a·agents + w_o·object_types
//
// A question score scales the scenario score by the question-type weight,
// the advanced-type multiplier and the masking factor. Both are rounded to
// two decimals. All functions are pure; weights come from the caller.
package complexity
