package stats

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/verte-zerg/mindgym/internal/model"
)

func TestBuildAndRenderReport(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	s := New(st)
	s.Initialize(ctx)
	s.now = fixedDay(10)
	s.UpdateGame(ctx, model.GameStroop, 5)
	s.UpdateGame(ctx, model.GameStroop, 9)
	s.UpdateGame(ctx, model.GameNBack, 17)

	cfg := model.ReportConfig{Width: 60}
	report, err := BuildReport(ctx, s, st, cfg)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 3 {
		t.Fatalf("expected 3 logged sessions, got %d", len(report.Sessions))
	}

	var buf bytes.Buffer
	if err := RenderReport(&buf, report, cfg); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Streak: 1 days", "Stroop Focus", "1-Back Memory", "Memory", "best 9", "recent:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestBuildReportGameFilter(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	s := New(st)
	s.Initialize(ctx)
	s.now = fixedDay(10)
	s.UpdateGame(ctx, model.GameStroop, 5)
	s.UpdateGame(ctx, model.GameNBack, 17)

	cfg := model.ReportConfig{Game: model.GameNBack, Width: 60}
	report, err := BuildReport(ctx, s, st, cfg)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Sessions) != 1 || report.Sessions[0].Game != model.GameNBack {
		t.Fatalf("unexpected sessions: %+v", report.Sessions)
	}

	var buf bytes.Buffer
	if err := RenderReport(&buf, report, cfg); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Stroop Focus") {
		t.Fatalf("expected stroop filtered out:\n%s", out)
	}
	if !strings.Contains(out, "1-Back Memory") {
		t.Fatalf("expected nback present:\n%s", out)
	}
}

func TestSparkline(t *testing.T) {
	out := Sparkline([]float64{0, 5, 10})
	if len(out) != 3 {
		t.Fatalf("expected 3 chars, got %d", len(out))
	}
	if out[0] != ' ' {
		t.Fatalf("expected minimum to render blank, got %q", out[0])
	}
	if out[2] != '@' {
		t.Fatalf("expected maximum to render '@', got %q", out[2])
	}

	flat := Sparkline([]float64{3, 3, 3})
	if flat != "@@@" {
		t.Fatalf("expected flat series to render at full level, got %q", flat)
	}

	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline for no values")
	}
}

func TestClampValues(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	got := clampValues(values, 3)
	if len(got) != 3 || got[0] != 3 {
		t.Fatalf("expected last 3 values, got %v", got)
	}
	if len(clampValues(values, 0)) != 5 {
		t.Fatalf("expected zero width to keep all values")
	}
}
