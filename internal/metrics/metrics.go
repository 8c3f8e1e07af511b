// Package metrics exposes loaded resource specifications as Prometheus
// gauges, one series per component, in the canonical units of the quantity
// types (millicores and bytes).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/llm-d-incubation/resource-quantities/pkg/kube"
)

var (
	cpuMillicores = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "resource_spec_cpu_millicores",
			Help: "Configured CPU for a component, in millicores.",
		},
		[]string{"component"},
	)
	memoryBytes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "resource_spec_memory_bytes",
			Help: "Configured memory for a component, in bytes.",
		},
		[]string{"component"},
	)
)

// Register registers the resource spec gauges with the given registerer.
func Register(reg prometheus.Registerer) error {
	if err := reg.Register(cpuMillicores); err != nil {
		return err
	}
	return reg.Register(memoryBytes)
}

// Record sets the gauges for a component from its resolved resources.
func Record(component string, res kube.Resources) {
	cpuMillicores.WithLabelValues(component).Set(float64(res.CPU.Millicores()))
	memoryBytes.WithLabelValues(component).Set(float64(res.Memory.Bytes()))
}

// Forget drops the series for a component, for when its entry is removed
// from the config.
func Forget(component string) {
	cpuMillicores.DeleteLabelValues(component)
	memoryBytes.DeleteLabelValues(component)
}
