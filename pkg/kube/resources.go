// Package kube bridges the quantity types to the Kubernetes API machinery:
// resource.Quantity on the single-value side and corev1.ResourceList on the
// pod/container resource-block side. Conversions into this module run the
// full quantity validation, so a ResourceList carrying a negative or
// sub-millicore value surfaces the same errors as parsing text would.
package kube

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/llm-d-incubation/resource-quantities/pkg/quantity"
)

// CPUFromQuantity converts an apimachinery quantity to a CPU quantity via
// its millicore value.
func CPUFromQuantity(q resource.Quantity) (quantity.CPU, error) {
	c, err := quantity.CPUFromMillicores(float64(q.MilliValue()))
	if err != nil {
		return quantity.ZeroCPU(), fmt.Errorf("converting %s: %w", q.String(), err)
	}
	return c, nil
}

// CPUToQuantity converts a CPU quantity to an apimachinery milli-quantity
// in decimal SI form ("250m", "1100m").
func CPUToQuantity(c quantity.CPU) *resource.Quantity {
	return resource.NewMilliQuantity(c.Millicores(), resource.DecimalSI)
}

// MemoryFromQuantity converts an apimachinery quantity to a memory quantity
// via its byte value.
func MemoryFromQuantity(q resource.Quantity) (quantity.Memory, error) {
	m, err := quantity.MemoryFromBytes(float64(q.Value()))
	if err != nil {
		return quantity.ZeroMemory(), fmt.Errorf("converting %s: %w", q.String(), err)
	}
	return m, nil
}

// MemoryToQuantity converts a memory quantity to an apimachinery quantity
// in binary SI form ("128Mi", "1Gi").
func MemoryToQuantity(m quantity.Memory) *resource.Quantity {
	return resource.NewQuantity(m.Bytes(), resource.BinarySI)
}

// Resources pairs the CPU and memory quantities of one container or pod
// resource block.
type Resources struct {
	CPU    quantity.CPU
	Memory quantity.Memory
}

// FromResourceList extracts CPU and memory from a ResourceList. Entries
// missing from the list default to zero; other resource names are ignored.
func FromResourceList(rl corev1.ResourceList) (Resources, error) {
	var out Resources
	if q, ok := rl[corev1.ResourceCPU]; ok {
		c, err := CPUFromQuantity(q)
		if err != nil {
			return Resources{}, fmt.Errorf("resource list cpu: %w", err)
		}
		out.CPU = c
	}
	if q, ok := rl[corev1.ResourceMemory]; ok {
		m, err := MemoryFromQuantity(q)
		if err != nil {
			return Resources{}, fmt.Errorf("resource list memory: %w", err)
		}
		out.Memory = m
	}
	return out, nil
}

// ToResourceList renders the pair as a ResourceList suitable for container
// requests or limits.
func (r Resources) ToResourceList() corev1.ResourceList {
	return corev1.ResourceList{
		corev1.ResourceCPU:    *CPUToQuantity(r.CPU),
		corev1.ResourceMemory: *MemoryToQuantity(r.Memory),
	}
}

// Fits reports whether r fits within capacity on both axes.
func (r Resources) Fits(capacity Resources) bool {
	return !r.CPU.GreaterThan(capacity.CPU) && !r.Memory.GreaterThan(capacity.Memory)
}

// Add returns the componentwise sum, for totalling requests across
// containers.
func (r Resources) Add(o Resources) (Resources, error) {
	cpu, err := r.CPU.Add(o.CPU)
	if err != nil {
		return Resources{}, err
	}
	mem, err := r.Memory.Add(o.Memory)
	if err != nil {
		return Resources{}, err
	}
	return Resources{CPU: cpu, Memory: mem}, nil
}

// Sub returns the componentwise difference, for computing headroom. Either
// axis going negative fails with the quantity negativity error.
func (r Resources) Sub(o Resources) (Resources, error) {
	cpu, err := r.CPU.Sub(o.CPU)
	if err != nil {
		return Resources{}, err
	}
	mem, err := r.Memory.Sub(o.Memory)
	if err != nil {
		return Resources{}, err
	}
	return Resources{CPU: cpu, Memory: mem}, nil
}
