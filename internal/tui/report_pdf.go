package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/letsDanceDB/pomodoro-timer/internal/config"
	"github.com/letsDanceDB/pomodoro-timer/internal/util"
)

const reportSetLimit = 20

// writeReport renders the current session and recent set history to a
// PDF file under the reports directory and returns the written path.
func (m Model) writeReport() (string, error) {
	sets, err := m.store.RecentSets(m.ctx, reportSetLimit)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Focus Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	stats := m.engine.Stats()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Current Set")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("  Completed focus phases: %d", stats.CompletedWorkPhases))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("  Skipped (unstarted / partial): %d / %d",
		stats.SkippedUnstartedWorkPhases, stats.SkippedPartialWorkPhases))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("  Focused time: %s", FormatFocused(stats.TotalFocusedSeconds)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Recent Sets")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(sets) == 0 {
		pdf.Cell(0, 8, "  No sets finished yet.")
		pdf.Ln(8)
	}
	for _, s := range sets {
		line := fmt.Sprintf("  %s  completed %d, skipped %d, focused %s",
			s.FinishedAt.Format("2006-01-02 15:04"),
			s.Completed,
			s.SkippedUnstarted+s.SkippedPartial,
			FormatFocused(s.FocusedSeconds))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", time.Now().Format("2006-01-02_150405")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
