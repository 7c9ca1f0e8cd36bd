// fixedpoint.go
//
// Conversion between normalized load/demand values and exact integer
// capacity units. Every arithmetic step in mask.go and transition.go goes
// through these helpers; normalized floats are a storage format only.

package vrp

// unitGuard absorbs the one-ulp error a normalize/denormalize round trip can
// carry: fl(fl(1/49)*49) lands just below 1.0 and would truncate to 0. The
// guard is orders of magnitude below half a capacity unit for any practical
// capacity, so it never promotes a genuinely fractional value.
const unitGuard = 1e-9

// ToUnits converts a normalized load/demand value to integer capacity units:
// multiply by capacity, truncate toward zero. Stored values are exact
// multiples of 1/capacity, so the guarded product truncates to the exact
// unit count.
func ToUnits(normalized float64, capacity int) int {
	v := normalized * float64(capacity)
	if v < 0 {
		return int(v - unitGuard)
	}
	return int(v + unitGuard)
}

// ToNormalized converts integer capacity units back to the normalized
// representation (units / capacity).
func ToNormalized(units, capacity int) float64 {
	return float64(units) / float64(capacity)
}
