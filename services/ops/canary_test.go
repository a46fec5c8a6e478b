package ops

import (
	"math"
	"strings"
	"testing"
)

func TestAnalyzeHoldsWithoutSamples(t *testing.T) {
	a := NewCanaryAnalyzer()

	decision := a.Analyze(nil, []MetricSample{{ErrorRate: 0.01}})
	if decision.Verdict != VerdictHold {
		t.Errorf("expected hold on missing baseline, got %s", decision.Verdict)
	}
	if decision.Score != 0 {
		t.Errorf("expected zero score, got %.1f", decision.Score)
	}

	decision = a.Analyze([]MetricSample{{ErrorRate: 0.01}}, nil)
	if decision.Verdict != VerdictHold {
		t.Errorf("expected hold on missing canary samples, got %s", decision.Verdict)
	}
}

func TestAnalyzePromotesHealthyCanary(t *testing.T) {
	a := NewCanaryAnalyzer()
	baseline := []MetricSample{
		{ErrorRate: 0.010, LatencyP99Ms: 120, CPUPercent: 55, MemoryPercent: 60, RequestRate: 200},
		{ErrorRate: 0.012, LatencyP99Ms: 130, CPUPercent: 57, MemoryPercent: 61, RequestRate: 210},
	}
	canary := []MetricSample{
		{ErrorRate: 0.009, LatencyP99Ms: 118, CPUPercent: 54, MemoryPercent: 59, RequestRate: 205},
	}

	decision := a.Analyze(baseline, canary)
	if decision.Verdict != VerdictPromote {
		t.Fatalf("expected promote, got %s (score %.1f, reasons %v)", decision.Verdict, decision.Score, decision.Reasons)
	}
	if decision.Score != 100 {
		t.Errorf("expected full score for a canary at or under baseline, got %.1f", decision.Score)
	}
	if len(decision.Reasons) != 1 || !strings.Contains(decision.Reasons[0], "within baseline") {
		t.Errorf("unexpected reasons: %v", decision.Reasons)
	}
}

func TestAnalyzeHardRollbackOnErrorRate(t *testing.T) {
	a := NewCanaryAnalyzer()
	baseline := []MetricSample{{ErrorRate: 0.01, LatencyP99Ms: 100}}
	canary := []MetricSample{{ErrorRate: 0.08, LatencyP99Ms: 100}}

	decision := a.Analyze(baseline, canary)
	if decision.Verdict != VerdictRollback {
		t.Fatalf("expected rollback above the error-rate limit, got %s", decision.Verdict)
	}
	if decision.Score != 0 {
		t.Errorf("hard rollback should score zero, got %.1f", decision.Score)
	}
}

func TestAnalyzeHardRollbackOnLatencyBlowup(t *testing.T) {
	a := NewCanaryAnalyzer()
	baseline := []MetricSample{{ErrorRate: 0.01, LatencyP99Ms: 100}}
	canary := []MetricSample{{ErrorRate: 0.01, LatencyP99Ms: 250}}

	decision := a.Analyze(baseline, canary)
	if decision.Verdict != VerdictRollback {
		t.Errorf("expected rollback above the latency factor, got %s (score %.1f)", decision.Verdict, decision.Score)
	}
}

func TestAnalyzeHoldsOnModerateRegression(t *testing.T) {
	a := NewCanaryAnalyzer()
	baseline := []MetricSample{{ErrorRate: 0.01, LatencyP99Ms: 100, CPUPercent: 50, MemoryPercent: 50}}
	// Latency up 60%: 30 latency points decay to 12, everything else holds.
	canary := []MetricSample{{ErrorRate: 0.01, LatencyP99Ms: 160, CPUPercent: 50, MemoryPercent: 50}}

	decision := a.Analyze(baseline, canary)
	if math.Abs(decision.Score-82) > 1e-6 {
		t.Errorf("expected score 82, got %.1f", decision.Score)
	}
	if decision.Verdict != VerdictHold {
		t.Errorf("expected hold, got %s", decision.Verdict)
	}
	found := false
	for _, r := range decision.Reasons {
		if strings.Contains(r, "latency regressed") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a latency regression reason, got %v", decision.Reasons)
	}
}

func TestAnalyzeScoredRollbackOnBroadRegression(t *testing.T) {
	a := NewCanaryAnalyzer()
	// Every metric up 90%, but each under its hard limit.
	baseline := []MetricSample{{ErrorRate: 0.010, LatencyP99Ms: 100, CPUPercent: 50, MemoryPercent: 50}}
	canary := []MetricSample{{ErrorRate: 0.019, LatencyP99Ms: 190, CPUPercent: 95, MemoryPercent: 95}}

	decision := a.Analyze(baseline, canary)
	if decision.Verdict != VerdictRollback {
		t.Errorf("expected rollback on broad regression, got %s (score %.1f)", decision.Verdict, decision.Score)
	}
	if decision.Score >= a.HoldThreshold {
		t.Errorf("expected score under the hold threshold, got %.1f", decision.Score)
	}
	if len(decision.Reasons) != 4 {
		t.Errorf("expected one reason per regressed metric, got %v", decision.Reasons)
	}
}
