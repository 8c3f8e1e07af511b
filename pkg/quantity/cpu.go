package quantity

import "fmt"

// millicoresPerCore converts bare core values to the canonical unit.
const millicoresPerCore = 1000

var cpuDescriptor = &descriptor{
	kind:      "CPU",
	canonical: "millicores",
	units: map[string]float64{
		"":  millicoresPerCore,
		"m": 1,
	},
	display:  []displayUnit{{factor: millicoresPerCore, suffix: ""}},
	fallback: "m",
}

// CPU is an immutable CPU quantity stored as whole millicores. The zero
// value is zero millicores and ready to use.
type CPU struct {
	millicores int64
}

// ParseCPU parses a textual CPU quantity. Bare numbers are cores ("1",
// "0.5"), the "m" suffix is millicores ("250m"). The result must be a whole,
// non-negative number of millicores.
func ParseCPU(s string) (CPU, error) {
	v, err := cpuDescriptor.parse(s)
	if err != nil {
		return CPU{}, err
	}
	return CPU{millicores: v}, nil
}

// MustParseCPU is ParseCPU that panics on error, for tests and literals.
func MustParseCPU(s string) CPU {
	c, err := ParseCPU(s)
	if err != nil {
		panic(fmt.Errorf("cannot parse %q: %w", s, err))
	}
	return c
}

// ZeroCPU returns the zero CPU quantity.
func ZeroCPU() CPU {
	return CPU{}
}

// CPUFromMillicores constructs a CPU quantity from a millicore count,
// validating finiteness, sign, and integrality.
func CPUFromMillicores(millicores float64) (CPU, error) {
	v, err := cpuDescriptor.validate(millicores)
	if err != nil {
		return CPU{}, err
	}
	return CPU{millicores: v}, nil
}

// CPUFromCores constructs a CPU quantity from a core count. Fractions of a
// core are fine as long as they land on a whole millicore (0.5 cores is
// 500m; 0.0001 cores is rejected).
func CPUFromCores(cores float64) (CPU, error) {
	return CPUFromMillicores(cores * millicoresPerCore)
}

// Millicores returns the canonical value.
func (c CPU) Millicores() int64 {
	return c.millicores
}

// String renders the quantity in its most compact form: plain decimal cores
// at or above one core ("1.1"), millicores below ("500m").
func (c CPU) String() string {
	return cpuDescriptor.format(c.millicores)
}

// Add returns the sum of the two quantities.
func (c CPU) Add(o CPU) (CPU, error) {
	return CPU{millicores: c.millicores + o.millicores}, nil
}

// Sub returns the difference, failing with ErrNegative when the result
// would drop below zero.
func (c CPU) Sub(o CPU) (CPU, error) {
	v, err := cpuDescriptor.sub(c.millicores, o.millicores)
	if err != nil {
		return CPU{}, err
	}
	return CPU{millicores: v}, nil
}

// Scale multiplies by factor, flooring the product to whole millicores.
// Non-finite factors fail with ErrInvalidFactor; negative factors fail with
// ErrNegative.
func (c CPU) Scale(factor float64) (CPU, error) {
	v, err := cpuDescriptor.scale(c.millicores, factor)
	if err != nil {
		return CPU{}, err
	}
	return CPU{millicores: v}, nil
}

// Equal reports whether the two quantities have the same canonical value.
func (c CPU) Equal(o CPU) bool {
	return c.millicores == o.millicores
}

// LessThan reports whether c is strictly smaller than o.
func (c CPU) LessThan(o CPU) bool {
	return c.millicores < o.millicores
}

// GreaterThan reports whether c is strictly larger than o.
func (c CPU) GreaterThan(o CPU) bool {
	return c.millicores > o.millicores
}

// Cmp returns -1, 0, or 1 as c is smaller than, equal to, or larger than o.
func (c CPU) Cmp(o CPU) int {
	switch {
	case c.millicores < o.millicores:
		return -1
	case c.millicores > o.millicores:
		return 1
	}
	return 0
}
