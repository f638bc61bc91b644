//nolint:revive // types is a standard Go package name pattern
package types

import "errors"

// ErrCapabilityUnavailable distinguishes failures of external model
// capabilities (entity recognizer, embedder, LLM service) from algorithmic
// errors. Callers check it with errors.Is and decide whether to retry,
// degrade to the lexical/set-only path, or abort.
var ErrCapabilityUnavailable = errors.New("external capability unavailable")
