package calculator

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInitMetricsCreatesInstruments(t *testing.T) {
	if err := InitMetrics(); err != nil {
		t.Fatalf("init metrics: %v", err)
	}
	if pressCounter == nil || pressDuration == nil || errorCounter == nil || resultGauge == nil {
		t.Fatal("expected every instrument to be initialised")
	}
}

func TestRegisterSessionGaugeTracksRegistry(t *testing.T) {
	sessions := NewRegistry(0)
	reg := prometheus.NewRegistry()

	if err := RegisterSessionGauge(reg, sessions); err != nil {
		t.Fatalf("register: %v", err)
	}

	if got, err := promtestutil.GatherAndCount(reg, "calculator_sessions_active"); err != nil || got != 1 {
		t.Fatalf("expected one gauge series, got %d (%v)", got, err)
	}

	s, err := sessions.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := sessions.Create(); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := sessions.Delete(s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("expected 1 metric family, got %d", len(families))
	}
	if got := families[0].GetMetric()[0].GetGauge().GetValue(); got != 1 {
		t.Fatalf("expected 1 active session, got %v", got)
	}

	if err := RegisterSessionGauge(reg, sessions); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}
