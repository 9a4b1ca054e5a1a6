package scenario

import (
	"github.com/katalvlaran/awpgen/rng"
)

// InventoryParams shapes initial inventory sampling.
type InventoryParams struct {
	// ObjectPresence is the chance an agent holds a given object at all.
	ObjectPresence float64
	// SmallQuantity is the chance the per-object draw uses half the base.
	SmallQuantity float64
	// BufferMin and BufferMax bound a per-agent offset added to every held object.
	BufferMin, BufferMax int
	// MaxBase bounds the per-object draw (already scaled for difficulty).
	MaxBase int
	// MaxQuantity caps every initial count.
	MaxQuantity int
}

// SampleInventories draws an initial inventory for every agent. Every agent
// carries every object key; absent objects are held at zero.
//
// Per agent a buffer b ∈ [BufferMin, BufferMax] is drawn; per held object
// the count is b + U[1, base], capped at MaxQuantity, where base is
// max(2, MaxBase) or max(2, MaxBase/2) with probability SmallQuantity.
func SampleInventories(src *rng.Source, agents, objects []string, p InventoryParams) map[string]Inventory {
	out := make(map[string]Inventory, len(agents))
	for _, a := range agents {
		held := make(Inventory, len(objects))
		buffer := src.IntRange(p.BufferMin, p.BufferMax)
		for _, o := range objects {
			if !src.Chance(p.ObjectPresence) {
				held[o] = 0
				continue
			}
			upper := max(2, p.MaxBase)
			if src.Chance(p.SmallQuantity) {
				upper = max(2, p.MaxBase/2)
			}
			n := buffer + src.IntRange(1, upper)
			if p.MaxQuantity > 0 && n > p.MaxQuantity {
				n = p.MaxQuantity
			}
			held[o] = n
		}
		out[a] = held
	}

	return out
}
