package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/awpgen/builder"
	"github.com/katalvlaran/awpgen/metrics"
)

var (
	// ErrSimulation reports that no transfer could be placed on any edge.
	ErrSimulation = errors.New("scenario: simulation produced no transfers")

	// ErrNegativeInventory reports a debit that would leave a negative balance.
	ErrNegativeInventory = errors.New("scenario: negative inventory")

	// ErrInvalidScenario reports a broken scenario invariant.
	ErrInvalidScenario = errors.New("scenario: invariant violated")

	// ErrStepOutOfRange reports a replay step outside [-1, len(transfers)-1].
	ErrStepOutOfRange = errors.New("scenario: step out of range")

	// ErrUnknownAgent reports a name that is not one of the scenario's agents.
	ErrUnknownAgent = errors.New("scenario: unknown agent")
)

// Namespace roots the name-based UUIDs of scenarios and questions.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/awpgen"))

// NewID returns the deterministic ID of the index-th scenario of a run.
func NewID(runSeed int64, index int) string {
	return uuid.NewSHA1(Namespace, []byte(fmt.Sprintf("scenario/%d/%d", runSeed, index))).String()
}

// Inventory maps object type to a non-negative count.
type Inventory map[string]int

// Clone returns an independent copy.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}

	return out
}

// Keys returns the object types in sorted order.
func (inv Inventory) Keys() []string {
	keys := make([]string, 0, len(inv))
	for k := range inv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Agent is a named participant.
type Agent struct {
	Name    string    `json:"name"`
	Initial Inventory `json:"initial_inventory"`
	Final   Inventory `json:"final_inventory"`
}

// Transfer is one quantity of one object moving between two agents.
type Transfer struct {
	From     string `json:"from_agent"`
	To       string `json:"to_agent"`
	Object   string `json:"object_type"`
	Quantity int    `json:"quantity"`
	Step     int    `json:"step"`
}

// SkippedEdge is a graph edge the simulator could not place a transfer on.
type SkippedEdge struct {
	From   string `json:"from_agent"`
	To     string `json:"to_agent"`
	Reason string `json:"reason"`
}

// SkipNoQualifyingObject is the only skip reason: the sender held no object
// in at least the minimum transfer quantity.
const SkipNoQualifyingObject = "no_qualifying_object"

// Scenario is a finalized multi-agent transfer story.
type Scenario struct {
	ID          string           `json:"id"`
	Index       int              `json:"index"`
	Seed        int64            `json:"seed"`
	Attempt     int              `json:"attempt"`
	Difficulty  string           `json:"difficulty"`
	Agents      []Agent          `json:"agents"`
	Transfers   []Transfer       `json:"transfers"`
	ObjectTypes []string         `json:"object_types"`
	Topology    builder.Topology `json:"graph_type"`
	// TopologyBestEffort marks a flow/dag graph that stopped short of its edge bounds.
	TopologyBestEffort bool            `json:"topology_best_effort,omitempty"`
	Metrics            metrics.Metrics `json:"metrics"`
	Complexity         float64         `json:"complexity"`
	SkippedEdges       []SkippedEdge   `json:"skipped_edges,omitempty"`
}

// Agent returns the agent named name.
func (s *Scenario) Agent(name string) (Agent, bool) {
	for _, a := range s.Agents {
		if a.Name == name {
			return a, true
		}
	}

	return Agent{}, false
}

// Names returns agent names in scenario order.
func (s *Scenario) Names() []string {
	out := make([]string, len(s.Agents))
	for i, a := range s.Agents {
		out[i] = a.Name
	}

	return out
}

// HasObject reports whether obj is one of the scenario's object types.
func (s *Scenario) HasObject(obj string) bool {
	for _, o := range s.ObjectTypes {
		if o == obj {
			return true
		}
	}

	return false
}

// Initial returns a copy of every agent's initial inventory.
func (s *Scenario) Initial() map[string]Inventory {
	out := make(map[string]Inventory, len(s.Agents))
	for _, a := range s.Agents {
		out[a.Name] = a.Initial.Clone()
	}

	return out
}
