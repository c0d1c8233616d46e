package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grazebox/internal/accordion"
	"grazebox/internal/menu"
)

// faqKeys are the page-mode hotkeys for the FAQ panels, in panel order.
const faqKeys = "abcde"

// FAQSection renders the collapsible questions over an accordion: at most
// one answer is ever expanded.
type FAQSection struct {
	acc *accordion.Accordion
}

// NewFAQSection opens with the first question expanded.
func NewFAQSection() *FAQSection {
	return &FAQSection{acc: accordion.New(len(menu.FAQs), 0)}
}

// Toggle toggles panel i.
func (s *FAQSection) Toggle(i int) { s.acc.Toggle(i) }

// OpenIndex returns the expanded panel, or accordion.None.
func (s *FAQSection) OpenIndex() int { return s.acc.OpenIndex() }

// View renders every question with its hotkey; the open one shows its
// answer indented beneath.
func (s *FAQSection) View(width int) string {
	var b strings.Builder
	answer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		PaddingLeft(4).
		Width(min(width, 72))

	for i, f := range menu.FAQs {
		marker := "▸"
		if s.acc.IsOpen(i) {
			marker = "▾"
		}
		key := ""
		if i < len(faqKeys) {
			key = Styles.Hint.Render("("+string(faqKeys[i])+") ")
		}
		b.WriteString(key + Styles.SectionTitle.Render(marker+" "+f.Question) + "\n")
		if s.acc.IsOpen(i) {
			b.WriteString(answer.Render(f.Answer) + "\n")
		}
	}
	return b.String()
}
