package quantity

import "fmt"

// IEC binary byte multipliers.
const (
	KiB = int64(1024)
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
)

var memoryDescriptor = &descriptor{
	kind:      "memory",
	canonical: "bytes",
	units: map[string]float64{
		"":   1,
		"B":  1,
		"Ki": float64(KiB),
		"Mi": float64(MiB),
		"Gi": float64(GiB),
		"Ti": float64(TiB),
	},
	// Ti is accepted on input but never emitted; multi-terabyte values
	// render in Gi ("2Ti" comes back as "2048Gi").
	display: []displayUnit{
		{factor: GiB, suffix: "Gi"},
		{factor: MiB, suffix: "Mi"},
		{factor: KiB, suffix: "Ki"},
	},
	fallback: "B",
}

// Memory is an immutable memory quantity stored as whole bytes. The zero
// value is zero bytes and ready to use.
type Memory struct {
	bytes int64
}

// ParseMemory parses a textual memory quantity. Bare numbers and the "B"
// suffix are bytes; Ki, Mi, Gi, Ti are powers of 1024. The result must be a
// whole, non-negative number of bytes.
func ParseMemory(s string) (Memory, error) {
	v, err := memoryDescriptor.parse(s)
	if err != nil {
		return Memory{}, err
	}
	return Memory{bytes: v}, nil
}

// MustParseMemory is ParseMemory that panics on error, for tests and literals.
func MustParseMemory(s string) Memory {
	m, err := ParseMemory(s)
	if err != nil {
		panic(fmt.Errorf("cannot parse %q: %w", s, err))
	}
	return m
}

// ZeroMemory returns the zero memory quantity.
func ZeroMemory() Memory {
	return Memory{}
}

// MemoryFromBytes constructs a memory quantity from a byte count,
// validating finiteness, sign, and integrality.
func MemoryFromBytes(bytes float64) (Memory, error) {
	v, err := memoryDescriptor.validate(bytes)
	if err != nil {
		return Memory{}, err
	}
	return Memory{bytes: v}, nil
}

// MemoryFromKiB constructs a memory quantity from a kibibyte count.
func MemoryFromKiB(kib float64) (Memory, error) {
	return MemoryFromBytes(kib * float64(KiB))
}

// MemoryFromMiB constructs a memory quantity from a mebibyte count.
func MemoryFromMiB(mib float64) (Memory, error) {
	return MemoryFromBytes(mib * float64(MiB))
}

// MemoryFromGiB constructs a memory quantity from a gibibyte count.
func MemoryFromGiB(gib float64) (Memory, error) {
	return MemoryFromBytes(gib * float64(GiB))
}

// Bytes returns the canonical value.
func (m Memory) Bytes() int64 {
	return m.bytes
}

// String renders the quantity in the largest IEC unit it meets, walking
// Gi, Mi, Ki and falling back to bytes ("1.125Gi", "9.7646484375Ki", "512B").
func (m Memory) String() string {
	return memoryDescriptor.format(m.bytes)
}

// Add returns the sum of the two quantities.
func (m Memory) Add(o Memory) (Memory, error) {
	return Memory{bytes: m.bytes + o.bytes}, nil
}

// Sub returns the difference, failing with ErrNegative when the result
// would drop below zero.
func (m Memory) Sub(o Memory) (Memory, error) {
	v, err := memoryDescriptor.sub(m.bytes, o.bytes)
	if err != nil {
		return Memory{}, err
	}
	return Memory{bytes: v}, nil
}

// Scale multiplies by factor, flooring the product to whole bytes.
// Non-finite factors fail with ErrInvalidFactor; negative factors fail with
// ErrNegative.
func (m Memory) Scale(factor float64) (Memory, error) {
	v, err := memoryDescriptor.scale(m.bytes, factor)
	if err != nil {
		return Memory{}, err
	}
	return Memory{bytes: v}, nil
}

// Equal reports whether the two quantities have the same canonical value.
func (m Memory) Equal(o Memory) bool {
	return m.bytes == o.bytes
}

// LessThan reports whether m is strictly smaller than o.
func (m Memory) LessThan(o Memory) bool {
	return m.bytes < o.bytes
}

// GreaterThan reports whether m is strictly larger than o.
func (m Memory) GreaterThan(o Memory) bool {
	return m.bytes > o.bytes
}

// Cmp returns -1, 0, or 1 as m is smaller than, equal to, or larger than o.
func (m Memory) Cmp(o Memory) int {
	switch {
	case m.bytes < o.bytes:
		return -1
	case m.bytes > o.bytes:
		return 1
	}
	return 0
}
