package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tourlab/internal/trace"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // keys
	colorDim    = lipgloss.Color("240") // muted
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleBox     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
)

// keyValue renders one aligned "key value" row.
func keyValue(key, value string) string {
	return styleKey.Render(key) + " " + StyleValue.Render(value)
}

// printSummary writes the boxed end-of-run summary.
func printSummary(w io.Writer, s trace.Summary) {
	head := styleSuccess.Render(iconSuccess) + " " + StyleTitle.Render("search completed")
	if s.Interrupted {
		head = styleWarning.Render(iconWarning) + " " + StyleTitle.Render("search interrupted")
	}

	seed := "replay"
	if s.Seed != 0 {
		seed = strconv.FormatUint(s.Seed, 10)
	}
	rows := []string{
		head,
		"",
		keyValue("run", s.RunID),
		keyValue("algorithm", s.Algo.String()),
		keyValue("nodes", strconv.Itoa(s.Nodes)),
		keyValue("seed", seed),
		keyValue("iterations", strconv.Itoa(s.Result.Iterations)),
		keyValue("best cost", StyleNumber.Render(strconv.FormatInt(s.Result.BestCost, 10))),
		keyValue("found at", fmt.Sprintf("iteration %d", s.Result.BestIteration)),
		styleKey.Render("elapsed") + " " + StyleDim.Render(s.Elapsed.Round(time.Millisecond).String()),
		keyValue("best tour", s.Result.BestTour.String()),
	}
	fmt.Fprintln(w, styleBox.Render(strings.Join(rows, "\n")))
}
