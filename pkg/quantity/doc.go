// Package quantity provides typed, validated arithmetic over Kubernetes-style
// resource quantities: CPU (whole millicores) and memory (whole bytes with
// binary IEC multipliers).
//
// The two quantity types are disjoint by construction:
//
//   - CPU: canonical unit is the millicore. "1" parses to 1000 millicores,
//     "250m" to 250. Values at or above one core render as plain decimal
//     cores ("1.1"), smaller values render with the "m" suffix ("500m").
//   - Memory: canonical unit is the byte. Suffixes B, Ki, Mi, Gi, Ti are
//     powers of 1024. Values render greedily in the largest IEC unit they
//     meet (Gi, then Mi, then Ki), falling back to bytes.
//
// Both types share one descriptor-driven engine for parsing, validation,
// formatting, and arithmetic; mixing CPU and Memory in an operation is a
// compile-time error, not a runtime check.
//
// Every constructor and operation enforces the same three rules: values must
// be finite, non-negative, and a whole number of the canonical unit. There
// is no rounding. A subtraction that would go below zero and a parse that
// would produce a fractional millicore both fail with errors matchable via
// errors.Is:
//
//	q, err := quantity.ParseCPU("1.5m")
//	if errors.Is(err, quantity.ErrFractionalUnit) {
//	    // sub-millicore amounts are rejected, never rounded
//	}
//
// Example usage:
//
//	req := quantity.MustParseCPU("100m")
//	lim := quantity.MustParseCPU("1")
//
//	total, err := req.Add(lim)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(total.String())     // "1.1"
//	fmt.Println(total.Millicores()) // 1100
//
//	mem, _ := quantity.MustParseMemory("128Mi").Add(quantity.MustParseMemory("1Gi"))
//	fmt.Println(mem.String()) // "1.125Gi"
//
// Quantities are immutable value types: every operation returns a new
// instance, so concurrent reads need no synchronization. Both types
// marshal to and from their text form in JSON and YAML, so they drop into
// configuration structs the way resource.Quantity drops into manifests.
package quantity
