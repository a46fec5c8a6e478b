package ops

import (
	"math"
	"testing"
)

func repeatSamples(n int, cpu, mem float64) []UsageSample {
	samples := make([]UsageSample, n)
	for i := range samples {
		samples[i] = UsageSample{CPUMillicores: cpu, MemoryMB: mem}
	}
	return samples
}

func TestRecommendKeepsAllocationWithoutSamples(t *testing.T) {
	o := NewResourceOptimizer()
	current := Allocation{CPUMillicores: 500, MemoryMB: 512, Replicas: 2}

	rec := o.Recommend(current, nil)
	if rec.Target != current {
		t.Errorf("expected unchanged allocation, got %+v", rec.Target)
	}
	if rec.Confidence != 0 {
		t.Errorf("expected zero confidence, got %.2f", rec.Confidence)
	}
}

func TestRecommendSizesUpFromUsage(t *testing.T) {
	o := NewResourceOptimizer()
	current := Allocation{CPUMillicores: 500, MemoryMB: 512, Replicas: 2}
	samples := repeatSamples(100, 600, 1000)

	rec := o.Recommend(current, samples)
	if rec.Target.CPUMillicores != 720 {
		t.Errorf("expected cpu request 720m (p95 600m with headroom), got %dm", rec.Target.CPUMillicores)
	}
	if rec.Target.MemoryMB != 1200 {
		t.Errorf("expected memory request 1200MB, got %dMB", rec.Target.MemoryMB)
	}
	// Usage at 120% of the request scales replicas toward the 70% target:
	// ceil(2 * 1.2 / 0.7) = 4.
	if rec.Target.Replicas != 4 {
		t.Errorf("expected 4 replicas, got %d", rec.Target.Replicas)
	}
	want := 100.0 / 1440.0
	if math.Abs(rec.Confidence-want) > 1e-9 {
		t.Errorf("expected confidence %.4f, got %.4f", want, rec.Confidence)
	}
}

func TestRecommendScalesDownIdleWorkload(t *testing.T) {
	o := NewResourceOptimizer()
	current := Allocation{CPUMillicores: 1000, MemoryMB: 2048, Replicas: 6}
	samples := repeatSamples(200, 200, 400)

	rec := o.Recommend(current, samples)
	if rec.Target.CPUMillicores != 240 {
		t.Errorf("expected cpu request 240m, got %dm", rec.Target.CPUMillicores)
	}
	if rec.Target.MemoryMB != 480 {
		t.Errorf("expected memory request 480MB, got %dMB", rec.Target.MemoryMB)
	}
	// ceil(6 * 0.2 / 0.7) = 2.
	if rec.Target.Replicas != 2 {
		t.Errorf("expected 2 replicas, got %d", rec.Target.Replicas)
	}
}

func TestRecommendClampsReplicas(t *testing.T) {
	o := NewResourceOptimizer()

	// Near-idle workload cannot go below the minimum.
	rec := o.Recommend(Allocation{CPUMillicores: 1000, MemoryMB: 512, Replicas: 2}, repeatSamples(50, 10, 50))
	if rec.Target.Replicas != o.MinReplicas {
		t.Errorf("expected replicas clamped to %d, got %d", o.MinReplicas, rec.Target.Replicas)
	}

	// Saturated workload cannot exceed the maximum.
	rec = o.Recommend(Allocation{CPUMillicores: 100, MemoryMB: 512, Replicas: 9}, repeatSamples(50, 300, 50))
	if rec.Target.Replicas != o.MaxReplicas {
		t.Errorf("expected replicas clamped to %d, got %d", o.MaxReplicas, rec.Target.Replicas)
	}
}

func TestRecommendRightSizedAllocation(t *testing.T) {
	o := NewResourceOptimizer()
	// Requests already match p95 usage with headroom, and replicas sit at the
	// ceiling so utilization pressure cannot change them.
	current := Allocation{CPUMillicores: 600, MemoryMB: 1200, Replicas: 10}
	samples := repeatSamples(100, 500, 1000)

	rec := o.Recommend(current, samples)
	if rec.Target != current {
		t.Errorf("expected unchanged allocation, got %+v", rec.Target)
	}
	if len(rec.Reasons) != 1 || rec.Reasons[0] != "allocation already right-sized" {
		t.Errorf("unexpected reasons: %v", rec.Reasons)
	}
}

func TestRecommendConfidenceSaturates(t *testing.T) {
	o := NewResourceOptimizer()
	rec := o.Recommend(Allocation{CPUMillicores: 500, MemoryMB: 512, Replicas: 1}, repeatSamples(2000, 100, 100))
	if rec.Confidence != 1 {
		t.Errorf("expected confidence to saturate at 1, got %.2f", rec.Confidence)
	}
}

func TestPercentileOrdering(t *testing.T) {
	values := []float64{50, 10, 40, 30, 20}
	if got := percentile(values, 0.95); got != 50 {
		t.Errorf("expected p95 of 50, got %.0f", got)
	}
	if got := percentile(values, 0.5); got != 30 {
		t.Errorf("expected median of 30, got %.0f", got)
	}
	// Input must not be reordered.
	if values[0] != 50 || values[1] != 10 {
		t.Errorf("percentile mutated its input: %v", values)
	}
}
