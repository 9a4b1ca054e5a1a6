// Package masking turns a scenario into annotated facts and obfuscates some
// of them while keeping every answer uniquely re-derivable.
//
// A story is a list of Facts: initial holdings (non-zero only; anything not
// stated is zero) and transfers in step order. A masking pattern hides some
// facts and states replacement facts that pin the hidden values down:
//
//	mask_initial_count  hide one initial holding (a vague qualifier stays),
//	                    state the holding right after that agent's first
//	                    transfer of the object
//	comparative_chain   hide the initial holdings of 2–3 agents, state one
//	                    anchor absolutely and the others as signed offsets
//	                    from the previous agent of the chain
//	percentage_ratio    hide one transfer quantity, state it as a rounded
//	                    percentage of the sender's pre-transfer holding
//
// Scrambling is an independent toggle that shuffles the presentation order
// of transfer facts; every transfer fact keeps its step.
//
// Reconstruct rebuilds a scenario from the stated facts only, and Verify
// recomputes the answer on it. The engine runs Verify on every masked
// presentation and falls back to the unmasked story if it fails, so an
// unsolvable presentation is never returned.
package masking
