package vrp

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === GenerationKey ===

// GenerationKey uniquely identifies a reproducible generation run.
// Two batches generated with the same GenerationKey and identical
// configuration MUST be bit-for-bit identical.
type GenerationKey int64

// NewGenerationKey creates a GenerationKey from a seed value.
func NewGenerationKey(seed int64) GenerationKey {
	return GenerationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemLocations is the RNG subsystem for node coordinate draws.
	SubsystemLocations = "locations"

	// SubsystemDemands is the RNG subsystem for customer demand draws.
	SubsystemDemands = "demands"

	// SubsystemPolicy is the RNG subsystem for stochastic baseline policies.
	SubsystemPolicy = "policy"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem. The engine never seeds a process-global generator; each
// GenerateBatch call owns its own PartitionedRNG, so concurrent generation
// calls cannot disturb each other's reproducibility.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	key        GenerationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a GenerationKey.
func NewPartitionedRNG(key GenerationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the GenerationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() GenerationKey {
	return p.key
}

// SubsystemInstance returns the subsystem name for per-instance streams,
// should a caller want one independent stream per batch slot.
func SubsystemInstance(idx int) string {
	return fmt.Sprintf("instance_%d", idx)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
