package vrp

import "errors"

// Sentinel errors returned by the engine. Per-step operations (ComputeMask,
// ApplyTransition) are total over in-range inputs and never fail at runtime;
// everything below surfaces at configuration or driver level.
var (
	// ErrInvalidConfiguration reports generation parameters that cannot
	// describe a well-formed batch (capacity < max demand, non-positive
	// sizes). Fatal to the generation call that received them.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidNodeIndex reports a chosen node index outside [0, N].
	// A caller contract violation — not expected under correct usage.
	ErrInvalidNodeIndex = errors.New("invalid node index")

	// ErrStepLimit reports an episode that exceeded its step cap before
	// every instance terminated.
	ErrStepLimit = errors.New("episode step limit exceeded")
)
