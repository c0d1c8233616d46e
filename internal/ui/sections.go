package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"grazebox/internal/menu"
)

// pageBuilder accumulates section renderings and records the line offset of
// each section id, so navigation jumps can scroll straight to it.
type pageBuilder struct {
	b       strings.Builder
	line    int
	offsets map[string]int
}

func newPageBuilder() *pageBuilder {
	return &pageBuilder{offsets: map[string]int{}}
}

func (p *pageBuilder) section(id, content string) {
	p.offsets[id] = p.line
	p.b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		p.b.WriteString("\n")
		content += "\n"
	}
	p.line += strings.Count(content, "\n")
	// breathing room between sections
	p.b.WriteString("\n\n")
	p.line += 2
}

// renderPage builds the full scrollable page and the section offsets.
func renderPage(width int, narrow bool, faq *FAQSection, quote *QuoteForm) (string, map[string]int) {
	p := newPageBuilder()
	p.section("hero", renderHero(width))
	p.section("menu", renderMenu(width, narrow))
	p.section("how", renderHow())
	p.section("pricing", renderPricing(width, narrow))
	p.section("faq", renderFAQTitle()+faq.View(width))
	p.section("quote", renderQuoteTitle()+quote.View(width))
	p.section("footer", Styles.Muted.Render(menu.FooterNote))
	return p.b.String(), p.offsets
}

func sectionTitle(label string) string {
	return Styles.Title.Render(strings.ToUpper(label)) + "\n" +
		Styles.Muted.Render(strings.Repeat("─", lipgloss.Width(label)+2)) + "\n"
}

func renderHero(width int) string {
	tagline := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Render(menu.Tagline)
	sub := Styles.Normal.Width(min(width-4, 64)).Render(menu.Subtagline)
	cta := Styles.Selected.Render("→ " + menu.CTALabel + " (press f)")
	return "\n\n" + tagline + "\n\n" + sub + "\n\n" + cta + "\n"
}

func renderMenu(width int, narrow bool) string {
	out := sectionTitle("This week's menu")
	cards := make([]string, len(menu.Dishes))
	for i, d := range menu.Dishes {
		body := glyphFor(d.Image) + " " + Styles.SectionTitle.Render(d.Name) + "\n" +
			Styles.Hint.Render(fmt.Sprintf("(%d) details", i+1))
		cards[i] = Styles.Card.Width(30).Render(body)
	}
	if narrow {
		return out + strings.Join(cards, "\n")
	}
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		if i+1 < len(cards) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i], " ", cards[i+1]))
		} else {
			rows = append(rows, cards[i])
		}
	}
	return out + strings.Join(rows, "\n")
}

func renderHow() string {
	out := sectionTitle("How it works")
	for i, s := range menu.Steps {
		out += Styles.SectionTitle.Render(fmt.Sprintf("%d. %s", i+1, s.Title)) + "\n" +
			Styles.Normal.Render("   "+s.Body) + "\n"
	}
	return out
}

func renderPricing(width int, narrow bool) string {
	out := sectionTitle("Pricing")
	cards := make([]string, len(menu.Plans))
	for i, p := range menu.Plans {
		body := Styles.SectionTitle.Render(p.Name) + "\n" +
			Styles.Price.Render(p.PricePerHead) + Styles.Muted.Render(" / head / day") + "\n" +
			Styles.Normal.Render(p.Blurb) + "\n"
		for _, f := range p.Features {
			body += Styles.Muted.Render("• "+f) + "\n"
		}
		cards[i] = Styles.Card.Width(30).Render(strings.TrimRight(body, "\n"))
	}
	if narrow {
		return out + strings.Join(cards, "\n")
	}
	row := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			row = append(row, " ")
		}
		row = append(row, c)
	}
	return out + lipgloss.JoinHorizontal(lipgloss.Top, row...)
}

func renderFAQTitle() string {
	return sectionTitle("FAQ") + Styles.Hint.Render("press a-e to expand a question") + "\n\n"
}

func renderQuoteTitle() string {
	return sectionTitle("Get a quote") +
		Styles.Hint.Render("press f to fill the form") + "\n\n"
}
