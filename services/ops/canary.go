// Package ops contains standalone release-engineering heuristics. Nothing
// here is wired into the request path; the analyzers score synthetic metric
// snapshots and are consumed by offline tooling.
package ops

import "fmt"

// MetricSample is one observation window of a deployment's vitals.
type MetricSample struct {
	ErrorRate     float64 // fraction of failed requests, 0..1
	LatencyP99Ms  float64
	CPUPercent    float64
	MemoryPercent float64
	RequestRate   float64 // requests per second
}

// Verdict is the outcome of a canary analysis.
type Verdict string

const (
	VerdictPromote  Verdict = "promote"
	VerdictHold     Verdict = "hold"
	VerdictRollback Verdict = "rollback"
)

// CanaryDecision is the scored outcome with the reasons that drove it.
type CanaryDecision struct {
	Score   float64 // 0..100, higher is healthier
	Verdict Verdict
	Reasons []string
}

// CanaryAnalyzer compares a canary release against its baseline using a
// weighted sum over the relative degradation of each metric.
type CanaryAnalyzer struct {
	// Hard limits: exceeding either forces a rollback regardless of score.
	MaxErrorRate     float64
	MaxLatencyFactor float64

	PromoteThreshold float64
	HoldThreshold    float64
}

// NewCanaryAnalyzer returns an analyzer with the default limits.
func NewCanaryAnalyzer() *CanaryAnalyzer {
	return &CanaryAnalyzer{
		MaxErrorRate:     0.05,
		MaxLatencyFactor: 2.0,
		PromoteThreshold: 85,
		HoldThreshold:    60,
	}
}

const (
	maxErrorPts   = 40.0
	maxLatencyPts = 30.0
	maxCPUPts     = 15.0
	maxMemoryPts  = 15.0
)

// Analyze scores the canary against the baseline. Empty inputs yield a hold:
// without data there is no basis to promote or roll back.
func (a *CanaryAnalyzer) Analyze(baseline, canary []MetricSample) CanaryDecision {
	if len(baseline) == 0 || len(canary) == 0 {
		return CanaryDecision{
			Score:   0,
			Verdict: VerdictHold,
			Reasons: []string{"insufficient samples for a decision"},
		}
	}

	base := meanSample(baseline)
	cand := meanSample(canary)

	var reasons []string

	// Hard rollback triggers first.
	if cand.ErrorRate > a.MaxErrorRate {
		return CanaryDecision{
			Score:   0,
			Verdict: VerdictRollback,
			Reasons: []string{fmt.Sprintf("canary error rate %.2f%% exceeds limit %.2f%%", cand.ErrorRate*100, a.MaxErrorRate*100)},
		}
	}
	if base.LatencyP99Ms > 0 && cand.LatencyP99Ms > base.LatencyP99Ms*a.MaxLatencyFactor {
		return CanaryDecision{
			Score:   0,
			Verdict: VerdictRollback,
			Reasons: []string{fmt.Sprintf("canary p99 latency %.0fms is over %.1fx baseline", cand.LatencyP99Ms, a.MaxLatencyFactor)},
		}
	}

	score := 0.0

	errorPts := degradationPoints(base.ErrorRate, cand.ErrorRate, maxErrorPts)
	if errorPts < maxErrorPts {
		reasons = append(reasons, fmt.Sprintf("error rate regressed: %.3f%% -> %.3f%%", base.ErrorRate*100, cand.ErrorRate*100))
	}
	score += errorPts

	latencyPts := degradationPoints(base.LatencyP99Ms, cand.LatencyP99Ms, maxLatencyPts)
	if latencyPts < maxLatencyPts {
		reasons = append(reasons, fmt.Sprintf("p99 latency regressed: %.0fms -> %.0fms", base.LatencyP99Ms, cand.LatencyP99Ms))
	}
	score += latencyPts

	cpuPts := degradationPoints(base.CPUPercent, cand.CPUPercent, maxCPUPts)
	if cpuPts < maxCPUPts {
		reasons = append(reasons, fmt.Sprintf("cpu regressed: %.1f%% -> %.1f%%", base.CPUPercent, cand.CPUPercent))
	}
	score += cpuPts

	memPts := degradationPoints(base.MemoryPercent, cand.MemoryPercent, maxMemoryPts)
	if memPts < maxMemoryPts {
		reasons = append(reasons, fmt.Sprintf("memory regressed: %.1f%% -> %.1f%%", base.MemoryPercent, cand.MemoryPercent))
	}
	score += memPts

	verdict := VerdictRollback
	switch {
	case score >= a.PromoteThreshold:
		verdict = VerdictPromote
	case score >= a.HoldThreshold:
		verdict = VerdictHold
	}
	if len(reasons) == 0 {
		reasons = []string{"canary within baseline envelope"}
	}

	return CanaryDecision{Score: score, Verdict: verdict, Reasons: reasons}
}

// degradationPoints awards up to max points for a canary metric that is at
// or below its baseline, scaling linearly to zero as the canary reaches
// double the baseline value.
func degradationPoints(baseline, canary, max float64) float64 {
	if canary <= baseline {
		return max
	}
	if baseline <= 0 {
		// Any regression from a zero baseline takes half credit.
		return max / 2
	}
	excess := (canary - baseline) / baseline
	if excess >= 1 {
		return 0
	}
	return max * (1 - excess)
}

func meanSample(samples []MetricSample) MetricSample {
	var sum MetricSample
	for _, s := range samples {
		sum.ErrorRate += s.ErrorRate
		sum.LatencyP99Ms += s.LatencyP99Ms
		sum.CPUPercent += s.CPUPercent
		sum.MemoryPercent += s.MemoryPercent
		sum.RequestRate += s.RequestRate
	}
	n := float64(len(samples))
	return MetricSample{
		ErrorRate:     sum.ErrorRate / n,
		LatencyP99Ms:  sum.LatencyP99Ms / n,
		CPUPercent:    sum.CPUPercent / n,
		MemoryPercent: sum.MemoryPercent / n,
		RequestRate:   sum.RequestRate / n,
	}
}
