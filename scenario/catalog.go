package scenario

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/awpgen/rng"
)

// DefaultAgentPool lists the names agents are drawn from.
var DefaultAgentPool = []string{
	"Alex", "Sam", "Taylor", "Jordan", "Casey", "Riley", "Avery", "Quinn",
	"Blake", "Morgan", "Rowan", "Parker", "River", "Jamie", "Drew", "Skylar",
	"Dakota", "Reese", "Phoenix", "Hayden", "Kai", "Remy", "Emery", "Logan", "Micah",
}

// DefaultObjects groups object types by category.
var DefaultObjects = map[string][]string{
	"educational": {"books", "pencils", "notebooks", "erasers", "rulers", "markers"},
	"toys":        {"marbles", "stickers", "cards", "blocks", "puzzles", "dolls"},
	"food":        {"apples", "cookies", "candies", "oranges", "cakes", "sandwiches"},
	"sports":      {"balls", "bats", "gloves", "jerseys", "helmets", "shoes"},
	"tools":       {"hammers", "screws", "nails", "wrenches", "bolts", "clips"},
	"office":      {"papers", "folders", "staples", "pens", "envelopes", "stamps"},
	"crafts":      {"beads", "ribbons", "buttons", "threads", "paints", "brushes"},
}

// Categories returns the DefaultObjects category names, sorted.
func Categories() []string {
	out := make([]string, 0, len(DefaultObjects))
	for c := range DefaultObjects {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// Catalog returns the de-duplicated object pool for the given categories
// followed by custom objects. Categories are visited in the given order.
func Catalog(categories, custom []string) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(o string) {
		if _, dup := seen[o]; dup || o == "" {
			return
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	for _, c := range categories {
		for _, o := range DefaultObjects[c] {
			add(o)
		}
	}
	for _, o := range custom {
		add(o)
	}

	return out
}

// SampleNames draws n distinct agent names from pool. When pool is too small
// it is extended with "Agent1", "Agent2", … before drawing.
func SampleNames(src *rng.Source, pool []string, n int) []string {
	names := append([]string(nil), pool...)
	seen := make(map[string]struct{}, len(names))
	for _, p := range names {
		seen[p] = struct{}{}
	}
	for i := 1; len(names) < n; i++ {
		name := fmt.Sprintf("Agent%d", i)
		if _, dup := seen[name]; dup {
			continue
		}
		names = append(names, name)
	}

	return rng.Sample(src, names, n)
}

// SampleObjects draws n distinct object types from pool (fewer if the pool is smaller).
func SampleObjects(src *rng.Source, pool []string, n int) []string {
	return rng.Sample(src, pool, n)
}
