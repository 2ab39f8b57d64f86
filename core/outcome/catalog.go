// Package outcome holds the fixed catalog of the nine learning outcomes ("leeruitkomsten")
// a portfolio is assessed against.
package outcome

import (
	"fmt"
	"strings"
)

const (
	MinID = 1
	MaxID = 9
)

type LearningOutcome struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Indicators  []string `json:"indicators"`
	Examples    []string `json:"examples"`
}

// Anchor is the id of the outcome's document section heading.
func (lo LearningOutcome) Anchor() string {
	return Slug(lo.Heading())
}

// Slug turns a heading into the id the markdown renderer gives it: ASCII letters and digits are
// lowercased, every space, '-' or '_' becomes '-' and anything else is dropped.
func Slug(heading string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(heading) {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + 'a' - 'A')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '-', r == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Heading is the section title used in the document and its table of contents.
func (lo LearningOutcome) Heading() string {
	return fmt.Sprintf("Leeruitkomst %d %s", lo.ID, lo.Title)
}

// Catalog is ordered by ID.
type Catalog []LearningOutcome

// Get returns the outcome with the given id.
func (c Catalog) Get(id int) (LearningOutcome, bool) {
	for _, lo := range c {
		if lo.ID == id {
			return lo, true
		}
	}
	return LearningOutcome{}, false
}

func (c Catalog) IDs() []int {
	ids := make([]int, 0, len(c))
	for _, lo := range c {
		ids = append(ids, lo.ID)
	}
	return ids
}

// IsValidID reports whether id names one of the catalog outcomes.
func IsValidID(id int) bool {
	return id >= MinID && id <= MaxID
}

// Default returns a copy of the catalog, so callers can never alter the reference data.
func Default() Catalog {
	c := make(Catalog, 0, len(catalog))
	for _, lo := range catalog {
		lo.Indicators = append([]string(nil), lo.Indicators...)
		lo.Examples = append([]string(nil), lo.Examples...)
		c = append(c, lo)
	}
	return c
}

var catalog = Catalog{
	{
		ID:          1,
		Title:       "Analyseren",
		Description: "Student analyseert de vereisten en doelstellingen van de opdrachtgever betreffende een 'Digital Twin' van een bestaand embedded systeem. Op basis hiervan en rekening houdend met de mogelijke gebruikers deduceert de student requirements volgens een voorgeschreven methode.",
		Indicators:  []string{"Requirements analyse", "Stakeholder analyse", "Testplan", "Ontwikkeldocument (eerste deel)"},
		Examples:    []string{"Stakeholder interviews", "Use case diagrammen", "Requirements specification document", "Functional requirements lijst"},
	},
	{
		ID:          2,
		Title:       "Ontwerpen",
		Description: "Student ontwerpt gebaseerd op de requirements en volgens voorgeschreven methoden een 'Digital Twin', inclusief grafische representatie, van een bestaand embedded systeem. Dit ontwerp omvat ook een ontwerp voor teststrategieën.",
		Indicators:  []string{"Testverslag", "Ontwikkeldocument"},
		Examples:    []string{"UML diagrammen", "Architectuur ontwerp", "Database design", "UI/UX mockups", "Testplan ontwerp"},
	},
	{
		ID:          3,
		Title:       "Adviseren",
		Description: "Student adviseert de opdrachtgever, na analyse van de vereisten en doelstellingen, over de inzet van een digital twin. Het advies is helder onderbouwd en gepresenteerd, zodat het begrijpelijk is voor alle stakeholders/betrokkenen.",
		Indicators:  []string{"Adviesrapport", "Advies presentatie"},
		Examples:    []string{"Technisch adviesrapport", "Kosten-baten analyse", "Risico analyse", "Implementatie roadmap", "Stakeholder presentaties"},
	},
	{
		ID:          4,
		Title:       "Realiseren",
		Description: "Student realiseert vanuit het ontwerp een 'Digital Twin' van een bestaand embedded systeem, inclusief grafische representatie. Hierbij wordt gewerkt volgens een voorgeschreven methode waarin testen centraal staat.",
		Indicators:  []string{"Broncode simulatie", "Projectcode", "Vision opdrachten", "Algoritmiek opdrachten", "C++ STL opdrachten", "C++<->Python opdrachten", "Creational/Structural design pattern opdrachten"},
		Examples:    []string{"Working prototype", "Code repositories", "Unit tests", "Integration tests", "Performance benchmarks", "Design patterns implementatie"},
	},
	{
		ID:          5,
		Title:       "Beheren",
		Description: "Student zet een professionele ontwikkelomgeving op voor desktop development. Daarbij houdt hij rekening met de samenwerking tussen verschillende programmeertalen. De desktop debugging wordt op een gestructureerde manier uitgevoerd.",
		Indicators:  []string{"Ontwikkeldocument", "Opdrachten ontwikkelomgeving", "Opdrachten debugging/tooling", "Testverslag"},
		Examples:    []string{"Version control (Git)", "CI/CD pipelines", "Code reviews", "Debugging sessies", "Development environment setup", "Tool configuration"},
	},
	{
		ID:          6,
		Title:       "Toekomstgericht organiseren",
		Description: "De student kan een probleem vertalen naar een product door randvoorwaarden en requirements op te stellen in overleg met de opdrachtgever. Het project wordt gestructureerd opgezet, uitgevoerd en opgeleverd.",
		Indicators:  []string{"Ontwikkeldocument", "Scrum board", "Sprintverslagen"},
		Examples:    []string{"Sprint planning", "Daily standups", "Sprint reviews", "Retrospectives", "Product backlog management", "Project roadmap"},
	},
	{
		ID:          7,
		Title:       "Doelgericht interacteren",
		Description: "De student onderhoudt actief de relatie met relevante samenwerkingspartners door middel van het geven van weloverwogen presentaties die afgestemd zijn op de doelgroep.",
		Indicators:  []string{"Onderzoeksverslag(deepdive)", "Adviespresentatie", "Sprintverslagen (review)"},
		Examples:    []string{"Stakeholder meetings", "Demo presentaties", "Technical documentation", "Team communication", "Client feedback sessions"},
	},
	{
		ID:          8,
		Title:       "Persoonlijk leiderschap",
		Description: "De student bereidt zich voor op studie- en loopbaankeuzes. De student evalueert hierbij persoonlijke ambities en kwaliteiten in relatie tot de gewenste positionering in het werkveld.",
		Indicators:  []string{"Sollicitatiebrief", "Professionaliseringsdocument"},
		Examples:    []string{"Personal development plan", "Career vision document", "Self-reflection reports", "Professional network building", "Skills assessment"},
	},
	{
		ID:          9,
		Title:       "Onderzoek probleem oplossen",
		Description: "De student kan een praktijkgericht probleem identificeren en de juiste oplossingsrichting kiezen door wensen van de opdrachtgever centraal te stellen. Gedurende het proces handelt de student onderzoekend.",
		Indicators:  []string{"Onderzoeksverslag (deepdive)", "Ontwikkeldocument"},
		Examples:    []string{"Literature review", "Proof of concept", "Experimental setup", "Data analysis", "Research methodology", "Problem statement definition"},
	},
}
