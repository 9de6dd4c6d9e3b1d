package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tsam3000/flashycardycourse/internal/ui/components"
	"github.com/tsam3000/flashycardycourse/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}
	if !s.state.HasCard {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Subtitle.Render("This deck has no cards to study."))
	}

	var b strings.Builder

	// Position and score line.
	left := theme.Subtitle.Render(fmt.Sprintf("  Card %d of %d", s.state.Cursor+1, s.state.Size))
	right := theme.Correct.Render(fmt.Sprintf("✓ %d", s.state.CorrectCount)) +
		"  " +
		theme.Incorrect.Render(fmt.Sprintf("✗ %d", s.state.IncorrectCount)) +
		"  "
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right)
	b.WriteString("\n\n")

	// Progress bar.
	bar := components.NewProgressBar("", s.state.Progress, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// The card itself.
	b.WriteString(s.renderCard(width))
	b.WriteString("\n\n")

	if s.state.Complete {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Deck complete!"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to see your results."))
	} else if s.state.Flipped {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Did you get it right?  C yes / X no"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Space to reveal the answer."))
	}

	return b.String()
}

// renderCard draws the current card face, front or back.
func (s *StudyScreen) renderCard(width int) string {
	text := s.state.Card.Front
	faceLabel := "FRONT"
	faceColor := theme.Secondary
	if s.state.Flipped {
		text = s.state.Card.Back
		faceLabel = "BACK"
		faceColor = theme.Accent
	}

	boxWidth := min(width-12, 64)

	label := lipgloss.NewStyle().
		Foreground(faceColor).
		Bold(true).
		Render(faceLabel)

	body := lipgloss.NewStyle().
		Width(boxWidth - 4).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(text)

	box := theme.Card.
		Width(boxWidth).
		Align(lipgloss.Center).
		Render(label + "\n\n" + body + "\n")

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func renderQuitConfirm(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Leave this session?"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Your scores for this run will be lost."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep studying"))

	box := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
