// Package stats owns the aggregate snapshot and streak state.
package stats

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/verte-zerg/mindgym/internal/model"
	"github.com/verte-zerg/mindgym/internal/store"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
	minReportWidth      = 20
)

// Report contains precomputed data for plain stats rendering.
type Report struct {
	Stats    model.Stats
	Sessions []model.SessionRecord
}

// BuildReport loads and prepares data for plain stats rendering.
func BuildReport(ctx context.Context, s *Store, st *store.Store, cfg model.ReportConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg.Game, cfg.Last)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Stats:    s.Snapshot(),
		Sessions: sessions,
	}, nil
}

// RenderReport writes the plain-text report.
func RenderReport(w io.Writer, report Report, cfg model.ReportConfig) error {
	width := cfg.Width
	if width <= 0 {
		width = detectWidth()
	}
	if width < minReportWidth {
		width = minReportWidth
	}

	lastPlayed := "never"
	if report.Stats.LastPlayed != nil {
		lastPlayed = report.Stats.LastPlayed.Format(time.DateTime)
	}
	if _, err := fmt.Fprintf(w, "Streak: %d days\nLast played: %s\n\n", report.Stats.Streak, lastPlayed); err != nil {
		return err
	}

	for _, key := range model.GameKeys {
		if cfg.Game != "" && key != cfg.Game {
			continue
		}
		total := report.Stats.Totals[key]
		if _, err := fmt.Fprintf(w, "%-14s sessions %-5d best %-5d avg %d\n",
			key.Label(), total.Sessions, total.Best, total.Avg); err != nil {
			return err
		}
		scores := sessionScores(report.Sessions, key)
		if len(scores) > 1 {
			if _, err := fmt.Fprintf(w, "  recent: %s\n", Sparkline(clampValues(scores, width-10))); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	levels := len(sparkChars) - 1
	var b strings.Builder
	for _, v := range values {
		idx := levels
		if max > min {
			idx = int(math.Round((v - min) / (max - min) * float64(levels)))
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func sessionScores(sessions []model.SessionRecord, key model.GameKey) []float64 {
	var out []float64
	for _, rec := range sessions {
		if rec.Game == key {
			out = append(out, float64(rec.Score))
		}
	}
	return out
}

func clampValues(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	return values[len(values)-width:]
}

func detectWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
