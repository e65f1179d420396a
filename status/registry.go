package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys written by the game session
const (
	KeyTicks           = "ticks"
	KeyScore           = "score"
	KeyTrophiesEaten   = "trophies_eaten"
	KeyTrophiesExpired = "trophies_expired"
	KeySnakeLength     = "snake_length"
	KeyDelayMs         = "delay_ms"
	KeyResult          = "result"
	KeyReason          = "reason"
)

// Registry groups session metrics by value type
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot renders every metric as key=value, ints first then floats then strings
func (r *Registry) Snapshot() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, fmt.Sprintf("%s=%g", k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out = append(out, k+"="+v.Load())
	})
	return out
}
