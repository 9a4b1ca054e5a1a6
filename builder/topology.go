// SPDX-License-Identifier: MIT
// Package: awpgen/builder
//
// topology.go — the closed set of topology tags.
//
// Each tag has exactly one handler in ForTopology; adding a tag without a
// handler is caught by TestForTopology_Exhaustive.

package builder

import (
	"fmt"
	"strings"
)

// Topology names the structural shape governing which agent pairs transfer.
type Topology int

const (
	// Tree is a random spanning tree with parent→child edges.
	Tree Topology = iota
	// Ring is one directed Hamiltonian cycle.
	Ring
	// Star is one hub joined to every spoke.
	Star
	// Flow is random directed sampling; cycles allowed.
	Flow
	// DAG is random directed sampling kept acyclic.
	DAG
	// Complete holds all n·(n−1) ordered pairs.
	Complete
	// Bipartite runs edges only across a two-way partition.
	Bipartite

	topologyCount = int(Bipartite) + 1
)

var topologyNames = [topologyCount]string{"tree", "ring", "star", "flow", "dag", "complete", "bipartite"}

// flowAlias is the historical name of Flow accepted by ParseTopology.
const flowAlias = "flow_network"

// Topologies returns every tag in declaration order.
func Topologies() []Topology {
	all := make([]Topology, topologyCount)
	for i := range all {
		all[i] = Topology(i)
	}

	return all
}

// String returns the lower-case tag name.
func (t Topology) String() string {
	if t < 0 || int(t) >= topologyCount {
		return fmt.Sprintf("topology(%d)", int(t))
	}

	return topologyNames[t]
}

// Valid reports whether t is one of the declared tags.
func (t Topology) Valid() bool { return t >= 0 && int(t) < topologyCount }

// ParseTopology maps a tag name (case-insensitive) to its Topology.
func ParseTopology(s string) (Topology, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == flowAlias {
		return Flow, nil
	}
	for i, n := range topologyNames {
		if n == name {
			return Topology(i), nil
		}
	}

	return 0, fmt.Errorf("ParseTopology(%q): %w", s, ErrUnknownTopology)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(t), ErrUnknownTopology)
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(b []byte) error {
	v, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = v

	return nil
}

// StarMode selects spoke orientation for Star.
type StarMode int

const (
	// StarOutward emits hub→spoke edges.
	StarOutward StarMode = iota
	// StarInward emits spoke→hub edges.
	StarInward
	// StarMixed gives each spoke outward, inward or both, chosen at random.
	StarMixed
)

var starModeNames = [...]string{"outward", "inward", "mixed"}

// String returns the mode name.
func (m StarMode) String() string {
	if m < 0 || int(m) >= len(starModeNames) {
		return fmt.Sprintf("starmode(%d)", int(m))
	}

	return starModeNames[m]
}

// ParseStarMode maps a mode name to its StarMode.
func ParseStarMode(s string) (StarMode, error) {
	for i, n := range starModeNames {
		if n == strings.ToLower(s) {
			return StarMode(i), nil
		}
	}

	return 0, fmt.Errorf("ParseStarMode(%q): %w", s, ErrOptionViolation)
}

// Direction selects edge orientation across a Bipartite partition.
type Direction int

const (
	// AtoB emits Left→Right edges.
	AtoB Direction = iota
	// BtoA emits Right→Left edges.
	BtoA
	// BothWays emits both orientations for every cross pair.
	BothWays
)

var directionNames = [...]string{"a_to_b", "b_to_a", "both"}

// String returns the direction name.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("direction(%d)", int(d))
	}

	return directionNames[d]
}

// ParseDirection maps a direction name to its Direction.
func ParseDirection(s string) (Direction, error) {
	for i, n := range directionNames {
		if n == strings.ToLower(s) {
			return Direction(i), nil
		}
	}

	return 0, fmt.Errorf("ParseDirection(%q): %w", s, ErrOptionViolation)
}
