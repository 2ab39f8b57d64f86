// Package document turns a portfolio into the Markdown "verantwoordingsdocument" and renders it to PDF.
package document

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/trezcool/portfolio/core/outcome"
	"github.com/trezcool/portfolio/core/portfolio"
)

const (
	DefaultVersion = "v1.0.5"

	logoURL = "https://www.hu.nl/-/media/hu/afbeeldingen/algemeen/hu-logo.ashx"

	// NoItemsNotice is shown under an outcome nobody submitted work for.
	NoItemsNotice = "Student heeft nog geen portfolio item ingeleverd voor deze leeruitkomst."

	emptyAnswer = "--"

	itemsHeader = "| Portfolio-item     | Beschrijving                                           | Bewijslast               |"
	itemsRule   = "|--------------------|--------------------------------------------------------|--------------------------|"
)

// Options carries everything Generate would otherwise read from the environment.
type Options struct {
	Version string    // version label printed under the table of contents
	Date    time.Time // document date
}

// Generate renders the whole document. Identical input always gives identical output.
func Generate(st portfolio.State, catalog outcome.Catalog, opts Options) string {
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	g := &generator{}
	g.header(st.StudentInfo, catalog, opts)
	g.studentInfo(st.StudentInfo, opts.Date)
	g.reflection(st.ReflectionData)
	g.outcomes(st.PortfolioItems, catalog)
	return strings.Join(g.lines, "\n")
}

type generator struct {
	lines []string
}

func (g *generator) add(lines ...string) {
	g.lines = append(g.lines, lines...)
}

func (g *generator) addf(format string, args ...interface{}) {
	g.lines = append(g.lines, fmt.Sprintf(format, args...))
}

func portfolioTitle(semester string) string {
	return fmt.Sprintf("Portfolio Technische Informatica (TI) semester %s (S%s)", semester, semester)
}

func (g *generator) header(info portfolio.StudentInfo, catalog outcome.Catalog, opts Options) {
	g.addf("![logo](%s) [](logo-id)\n", logoURL)
	g.add("# Verantwoordingsdocument[](title-id) <!-- omit in toc -->\n")

	g.add("### Inhoud[](toc-id)\n")
	g.addf("- [%s](#%s)", portfolioTitle(info.Semester), outcome.Slug(portfolioTitle(info.Semester)))
	g.add("- [Algemeen](#algemeen)", "- [Leeruitkomsten](#leeruitkomsten)")
	for _, lo := range catalog {
		g.addf("  - [%s](#%s)", lo.Heading(), lo.Anchor())
	}
	g.add("", "---\n")
	g.addf("**%s [](version-id)** Gegenereerd door Portfolio Document Manager[](author-id).\n", opts.Version)
	g.add("---\n")
}

func (g *generator) studentInfo(info portfolio.StudentInfo, date time.Time) {
	g.addf("<h2 class='portfolio-header' id='%s'>%s</h2>\n", outcome.Slug(portfolioTitle(info.Semester)), html.EscapeString(portfolioTitle(info.Semester)))
	g.add("Onderwerp | Graag invullen | Opmerking", "--- | --- | ---")
	g.addf("*Peilmoment* | `peilmoment %s` | ", cell(info.Milestone))
	g.addf("*Naam student* | `%s` | ", cell(info.Name))
	g.addf("*Studentnummer* | `%s` | ", cell(info.StudentNumber))
	g.addf("*Semester* | `semester %s` | ", cell(info.Semester))
	g.addf("*Datum* | `%s` | dd-mm-jjjj\n", date.Format("02-01-2006"))
}

func (g *generator) reflection(rd portfolio.ReflectionData) {
	g.add("## Algemeen\n")
	g.add("*Waar ik het meest trots op ben:*\n")
	g.add(indent(rd.ProudOf) + "\n")
	g.add("*Waar ik de afgelopen periode moeite mee heb gehad en welke actie ik heb ondernomen:*\n")
	g.add(indent(rd.StruggledWith) + "\n")
	g.add("*Wat ik nog graag wil leren en welke actie ik wil gaan ondernemen:*\n")
	g.add(indent(rd.WantToLearn) + "\n")
	g.add("---\n")
}

func (g *generator) outcomes(items []portfolio.Item, catalog outcome.Catalog) {
	g.add("## Leeruitkomsten\n")
	for _, lo := range catalog {
		g.addf("### %s\n", lo.Heading())
		g.addf("*%s*\n", lo.Description)
		g.add("", "**Indicatoren:**", "")
		g.add(`<ul class="indicators-list">`)
		for _, ind := range lo.Indicators {
			g.addf("<li>%s</li>", html.EscapeString(ind))
		}
		g.add("</ul>", "", "---\n")

		personal, group := partition(items, lo.ID)
		if len(personal) == 0 && len(group) == 0 {
			g.addf("<div class='no-portfolio-item'>%s</div>\n", NoItemsNotice)
		} else {
			g.itemGroup(lo.ID, "Persoonlijke opdrachten", personal)
			g.itemGroup(lo.ID, "Groepsopdrachten", group)
		}
		g.add("---\n")
	}
}

func (g *generator) itemGroup(id int, label string, items []portfolio.Item) {
	if len(items) == 0 {
		return
	}
	g.addf("**Leeruitkomst %d %s:**\n", id, label)
	g.add(itemsHeader, itemsRule)
	for _, it := range items {
		g.addf("| %s | %s | [link naar %s](%s) |", cell(it.Title), cell(it.Description), cell(it.GithubLink), cell(it.GithubLink))
	}
	g.add("")

	for _, it := range items {
		relevant := it.FeedbackFor(id)
		if len(relevant) == 0 {
			continue
		}
		g.addf("**Feedback op %s voor Leeruitkomst %d:**", it.Title, id)
		g.add(`<div class="feedback-section">`)
		for _, fb := range relevant {
			g.add(`<div class="feedback-item">`)
			g.addf("<strong>%s</strong> (%s):", html.EscapeString(fb.From), html.EscapeString(fb.Date))
			g.addf("<p>%s</p>", html.EscapeString(fb.Text))
			g.add("</div>")
		}
		g.add("</div>", "")
	}
}

// partition splits the items claiming outcome id into personal and group work, keeping their order.
func partition(items []portfolio.Item, id int) (personal, group []portfolio.Item) {
	for _, it := range items {
		if !it.HasOutcome(id) {
			continue
		}
		if it.IsGroupWork {
			group = append(group, it)
		} else {
			personal = append(personal, it)
		}
	}
	return personal, group
}

// indent renders an answer as an indented block; every line needs the indent to stay in the block.
func indent(answer string) string {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "    " + emptyAnswer
	}
	lines := strings.Split(strings.ReplaceAll(answer, "\r\n", "\n"), "\n")
	for i, l := range lines {
		lines[i] = "    " + l
	}
	return strings.Join(lines, "\n")
}

// cell keeps a value on one table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
