package deckview

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tsam3000/flashycardycourse/internal/ui/theme"
)

func (d *DeckScreen) View(width, height int) string {
	switch d.mode {
	case modeCardForm:
		title := "Add card"
		if d.editCardID != "" {
			title = "Edit card"
		}
		return d.renderForm(title, "Front", "Back", width, height)
	case modeRenameForm:
		return d.renderForm("Edit deck", "Name", "Description", width, height)
	case modeConfirmDeleteCard:
		return renderConfirm("Delete this card?", width, height)
	case modeConfirmDeleteDeck:
		return renderConfirm("Delete this deck and all of its cards?", width, height)
	}
	return d.renderBrowse(width, height)
}

func (d *DeckScreen) renderBrowse(width, height int) string {
	if !d.loaded {
		if d.errMsg != "" {
			return theme.FieldError.Render("\n  " + d.errMsg)
		}
		return theme.Hint.Render("\n  Loading deck...")
	}

	var b strings.Builder

	if d.detail.Deck.Description != "" {
		b.WriteString(theme.Subtitle.Render(d.detail.Deck.Description))
		b.WriteString("\n\n")
	}

	cards := d.detail.Cards
	if len(cards) == 0 {
		b.WriteString(theme.Subtitle.Render("No cards yet. Press A to add the first one."))
	} else {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d cards", len(cards))))
		b.WriteString("\n\n")

		maxFront := width/2 - 8
		for i, c := range cards {
			front := truncate(c.Front, maxFront)
			back := truncate(c.Back, maxFront)
			line := fmt.Sprintf("%s  %s", front, theme.Hint.Render(back))
			if i == d.selected {
				b.WriteString(theme.Selected.Render("  ▸ " + line))
			} else {
				b.WriteString(theme.Unselected.Render("    " + line))
			}
			b.WriteString("\n")
		}
	}

	if d.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.FieldError.Render(d.errMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (d *DeckScreen) renderForm(title, firstLabel, secondLabel string, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render(firstLabel))
	b.WriteString("\n")
	b.WriteString(d.firstInput.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render(secondLabel))
	b.WriteString("\n")
	b.WriteString(d.secondInput.View())

	if d.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.FieldError.Render(d.errMsg))
	}

	box := theme.Card.Width(min(width-8, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderConfirm(question string, width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("This cannot be undone."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] Yes, delete"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep it"))

	box := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
