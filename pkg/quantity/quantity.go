package quantity

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// quantityPattern matches an unsigned decimal number (integer or
// decimal-point form, no sign, no exponent) followed by an optional
// letters-only unit suffix.
var quantityPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)([A-Za-z]*)$`)

// descriptor fixes the unit system for one quantity kind: the suffix
// multiplier table used when parsing and the ordered thresholds used when
// formatting. CPU and Memory each instantiate the engine with their own
// descriptor; everything else is shared.
type descriptor struct {
	kind      string             // kind name for error messages
	canonical string             // name of the canonical unit
	units     map[string]float64 // suffix -> canonical-unit multiplier
	display   []displayUnit      // tried largest first when formatting
	fallback  string             // suffix used below the smallest threshold
}

// displayUnit is one formatting threshold. A canonical value meeting or
// exceeding factor renders as value/factor with the given suffix.
type displayUnit struct {
	factor int64
	suffix string
}

// parse converts text into a validated canonical value. A leading minus is
// rejected as negativity before the format pattern runs, so "-100m" reports
// a negative quantity rather than a malformed one.
func (d *descriptor) parse(s string) (int64, error) {
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%s quantity %q: %w", d.kind, s, ErrNegative)
	}
	m := quantityPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%s quantity %q: %w", d.kind, s, ErrInvalidFormat)
	}
	mult, ok := d.units[m[2]]
	if !ok {
		return 0, fmt.Errorf("%s quantity %q: suffix %q: %w", d.kind, s, m[2], ErrInvalidUnit)
	}
	mantissa, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%s quantity %q: %w", d.kind, s, ErrInvalidFormat)
	}
	return d.validate(mantissa * mult)
}

// validate enforces the three canonical-value rules in fixed order:
// finiteness, non-negativity, integrality. Fractional amounts of the base
// unit are rejected rather than rounded.
func (d *descriptor) validate(v float64) (int64, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, fmt.Errorf("%s quantity: %w", d.kind, ErrNotFinite)
	case v < 0:
		return 0, fmt.Errorf("%s quantity: %w", d.kind, ErrNegative)
	case math.Floor(v) != v:
		return 0, fmt.Errorf("%s quantity: %v %s: %w", d.kind, v, d.canonical, ErrFractionalUnit)
	}
	return int64(v), nil
}

// format renders a canonical value in the most compact display unit. The
// division here is presentation only and may yield a non-integer decimal
// ("1.125Gi"); it never re-enters validation.
func (d *descriptor) format(v int64) string {
	for _, u := range d.display {
		if v >= u.factor {
			return strconv.FormatFloat(float64(v)/float64(u.factor), 'f', -1, 64) + u.suffix
		}
	}
	return strconv.FormatInt(v, 10) + d.fallback
}

func (d *descriptor) sub(a, b int64) (int64, error) {
	v := a - b
	if v < 0 {
		return 0, fmt.Errorf("%s quantity: %d - %d %s: %w", d.kind, a, b, d.canonical, ErrNegative)
	}
	return v, nil
}

// scale multiplies by an arbitrary finite factor, flooring the product
// toward zero before validation. A negative factor produces a negative
// product and fails through the standard negativity check.
func (d *descriptor) scale(a int64, factor float64) (int64, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0, fmt.Errorf("%s quantity: factor %v: %w", d.kind, factor, ErrInvalidFactor)
	}
	return d.validate(math.Floor(float64(a) * factor))
}
