// Package config holds the run configuration of awpgen.
//
// A Config is built from Default or read with Load, which decodes a YAML
// file, fills every top-level section the file leaves out with its default,
// and validates the result. A section that is present replaces the default
// section wholesale; maps inside it (question type weights, advanced
// multipliers, masking factors, pattern weights) must be complete.
//
// A validated Config is treated as immutable. The helper methods translate
// it into options for the builder, metrics, question and masking packages,
// so those packages never import config.
//
// Errors:
//   - ErrInvalidConfig wraps every validation failure.
package config
