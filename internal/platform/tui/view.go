package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alert-rush/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	gaugeOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	gaugeWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	gaugeCritStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	urgencyStyles = map[engine.Urgency]lipgloss.Style{
		engine.UrgencyLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		engine.UrgencyMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		engine.UrgencyHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		engine.UrgencyCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
)

// renderGauge draws the stability bar, colored by how close the run is to
// collapsing.
func renderGauge(stability int) string {
	const width = 20
	filled := stability * width / engine.MaxStability

	style := gaugeOKStyle
	switch {
	case stability <= 25:
		style = gaugeCritStyle
	case stability <= 50:
		style = gaugeWarnStyle
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return style.Render(bar) + fmt.Sprintf(" %3d%%", stability)
}

// renderHeader draws the status line above the alert queue.
func renderHeader(st *engine.State) string {
	mute := ""
	if st.Muted {
		mute = "  [muted]"
	}
	line1 := fmt.Sprintf("SCORE %-8d STREAK %-4d DIFF %d/%d  TIER %d%s",
		st.Score, st.Streak, st.Difficulty, engine.MaxDifficulty, st.Tier, mute)
	line2 := fmt.Sprintf("STABILITY %s   ENTROPY %-4d T+%04.0fs",
		renderGauge(st.Stability), st.Entropy, st.Elapsed)
	return headerStyle.Render(line1) + "\n" + line2
}

// renderAlerts draws the live queue, most recent last, with the active
// selection highlighted.
func renderAlerts(st *engine.State) string {
	if len(st.Alerts) == 0 {
		return dimStyle.Render("  -- all channels quiet --")
	}

	var b strings.Builder
	for i, a := range st.Alerts {
		badge := urgencyStyles[a.Urgency].Render(fmt.Sprintf("%-8s", strings.ToUpper(a.Urgency.String())))
		decoy := " "
		if a.IsDecoy {
			decoy = "?"
		}
		line := fmt.Sprintf("%d %s %s %-22s %5.1fs", i+1, decoy, badge, a.Title, a.TimeRemain)
		if a.ID == st.ActiveAlertID {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderTask shows what the active alert wants from the operator.
func renderTask(st *engine.State) string {
	alert, ok := st.Alert(st.ActiveAlertID)
	if !ok {
		return dimStyle.Render("select an alert to see its task")
	}

	var detail string
	switch p := alert.Payload.(type) {
	case engine.TypingPayload:
		detail = "type: " + p.Code
	case engine.SortPayload:
		parts := make([]string, len(p.Items))
		for i, item := range p.Items {
			parts[i] = fmt.Sprintf("%s=%d", item.ID, item.Value)
		}
		detail = "sort: " + strings.Join(parts, " ")
	case engine.DragPayload:
		detail = fmt.Sprintf("route %d modules to their bays", len(p.Items))
	case engine.ConnectPayload:
		detail = fmt.Sprintf("reconnect %d line pairs", len(p.Left))
	case engine.HoldPayload:
		detail = fmt.Sprintf("hold [%s] for %.1fs", p.Key, p.Seconds)
	case engine.TrackPayload:
		detail = fmt.Sprintf("track target for %.1fs", p.Seconds)
	case engine.SentencePayload:
		detail = "transmit: \"" + p.Text + "\""
	default:
		detail = alert.Description
	}

	return fmt.Sprintf("%s - %s\n%s",
		titleStyle.Render(alert.Title), alert.Description, detail)
}

// renderBoot draws the boot splash.
func renderBoot() string {
	return titleStyle.Render("ALERT RUSH") + "\n\n" +
		dimStyle.Render("bringing systems online...")
}

// renderStartScreen draws the start menu.
func renderStartScreen(st *engine.State, highScore int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ALERT RUSH"))
	b.WriteString("\n\n")
	b.WriteString("Triage incoming alerts before the grid destabilizes.\n\n")
	if highScore > 0 {
		b.WriteString(fmt.Sprintf("high score: %d\n\n", highScore))
	}
	b.WriteString("  enter  start shift\n")
	if !st.TutorialCompleted {
		b.WriteString("  t      tutorial\n")
	}
	b.WriteString("  m      mute\n")
	b.WriteString("  q      quit\n")
	return b.String()
}

// renderGameOver draws the end-of-run summary.
func renderGameOver(st *engine.State, highScore int) string {
	var b strings.Builder
	b.WriteString(gaugeCritStyle.Render("GRID DOWN"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("score      %d\n", st.Score))
	b.WriteString(fmt.Sprintf("resolved   %d\n", st.CompletedTasks))
	b.WriteString(fmt.Sprintf("failed     %d\n", st.FailedTasks))
	b.WriteString(fmt.Sprintf("max streak %d\n", st.MaxStreak))
	b.WriteString(fmt.Sprintf("shift      %.0fs\n", st.Elapsed))
	if highScore > 0 && st.Score >= highScore {
		b.WriteString("\n" + titleStyle.Render("new high score!") + "\n")
	}
	b.WriteString("\n  r  restart    q  quit\n")
	return b.String()
}
