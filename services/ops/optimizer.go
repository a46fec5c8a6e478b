package ops

import (
	"fmt"
	"math"
	"sort"
)

// UsageSample is one observation of a workload's resource consumption.
type UsageSample struct {
	CPUMillicores float64
	MemoryMB      float64
}

// Allocation describes requested resources for a workload.
type Allocation struct {
	CPUMillicores int
	MemoryMB      int
	Replicas      int
}

// Recommendation is a suggested allocation with a confidence estimate.
type Recommendation struct {
	Target     Allocation
	Confidence float64 // 0..1, grows with sample count
	Reasons    []string
}

// ResourceOptimizer derives right-sized requests from observed usage. It is
// a sizing heuristic over historical samples, not a control loop.
type ResourceOptimizer struct {
	HeadroomFactor float64 // multiplier applied to the p95 usage
	MinReplicas    int
	MaxReplicas    int
	// TargetUtilization is the desired fraction of the CPU request that
	// steady-state usage should occupy.
	TargetUtilization float64
}

// NewResourceOptimizer returns an optimizer with conventional defaults.
func NewResourceOptimizer() *ResourceOptimizer {
	return &ResourceOptimizer{
		HeadroomFactor:    1.2,
		MinReplicas:       1,
		MaxReplicas:       10,
		TargetUtilization: 0.7,
	}
}

// Recommend sizes requests from the p95 of observed usage plus headroom and
// scales replicas toward the target utilization. With no samples it returns
// the current allocation unchanged at zero confidence.
func (o *ResourceOptimizer) Recommend(current Allocation, samples []UsageSample) Recommendation {
	if len(samples) == 0 {
		return Recommendation{
			Target:     current,
			Confidence: 0,
			Reasons:    []string{"no usage samples, keeping current allocation"},
		}
	}

	cpus := make([]float64, len(samples))
	mems := make([]float64, len(samples))
	for i, s := range samples {
		cpus[i] = s.CPUMillicores
		mems[i] = s.MemoryMB
	}

	cpuP95 := percentile(cpus, 0.95)
	memP95 := percentile(mems, 0.95)

	target := Allocation{
		CPUMillicores: int(math.Ceil(cpuP95 * o.HeadroomFactor)),
		MemoryMB:      int(math.Ceil(memP95 * o.HeadroomFactor)),
		Replicas:      current.Replicas,
	}

	var reasons []string
	if target.CPUMillicores != current.CPUMillicores {
		reasons = append(reasons, fmt.Sprintf("cpu request %dm -> %dm (p95 %.0fm)", current.CPUMillicores, target.CPUMillicores, cpuP95))
	}
	if target.MemoryMB != current.MemoryMB {
		reasons = append(reasons, fmt.Sprintf("memory request %dMB -> %dMB (p95 %.0fMB)", current.MemoryMB, target.MemoryMB, memP95))
	}

	// Replica scaling: how far is steady-state usage from the target
	// utilization of the requested CPU across all replicas.
	if current.CPUMillicores > 0 && current.Replicas > 0 {
		meanCPU := mean(cpus)
		utilization := meanCPU / float64(current.CPUMillicores)
		desired := int(math.Ceil(float64(current.Replicas) * utilization / o.TargetUtilization))
		desired = clamp(desired, o.MinReplicas, o.MaxReplicas)
		if desired != current.Replicas {
			reasons = append(reasons, fmt.Sprintf("replicas %d -> %d (utilization %.0f%%, target %.0f%%)",
				current.Replicas, desired, utilization*100, o.TargetUtilization*100))
			target.Replicas = desired
		}
	}

	if len(reasons) == 0 {
		reasons = []string{"allocation already right-sized"}
	}

	// Confidence grows with sample count and saturates at one day of
	// minute-granularity samples.
	confidence := math.Min(1, float64(len(samples))/1440)

	return Recommendation{Target: target, Confidence: confidence, Reasons: reasons}
}

func percentile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
