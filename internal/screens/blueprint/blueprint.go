// Package blueprint is the exam blueprint screen: the study checklist
// with persisted completion state, the official exam structure map, and
// external study resources. Picking a range on the map starts a
// filtered practice session.
package blueprint

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoung/topikpal/internal/audio"
	"github.com/dayoung/topikpal/internal/content"
	"github.com/dayoung/topikpal/internal/router"
	"github.com/dayoung/topikpal/internal/screen"
	practicescreen "github.com/dayoung/topikpal/internal/screens/practice"
	"github.com/dayoung/topikpal/internal/store"
	"github.com/dayoung/topikpal/internal/tutor"
	"github.com/dayoung/topikpal/internal/ui/components"
	"github.com/dayoung/topikpal/internal/ui/layout"
	"github.com/dayoung/topikpal/internal/ui/theme"
)

// section identifies the focused half of the screen.
type section int

const (
	checklistSection section = iota
	examMapSection
)

// BlueprintScreen shows the checklist and the exam structure map.
type BlueprintScreen struct {
	st   *store.Adapter
	tut  *tutor.Service
	pron *audio.Pronouncer

	progress map[string]bool
	section  section
	selected int
	expanded map[int]bool // checklist rows with an open study guide

	examSet int // 0 = all sets
	errMsg  string
}

var _ screen.Screen = (*BlueprintScreen)(nil)
var _ screen.KeyHintProvider = (*BlueprintScreen)(nil)

// New creates a blueprint screen.
func New(st *store.Adapter, tut *tutor.Service, pron *audio.Pronouncer) *BlueprintScreen {
	return &BlueprintScreen{
		st:       st,
		tut:      tut,
		pron:     pron,
		progress: st.Progress(),
		expanded: make(map[int]bool),
	}
}

func (s *BlueprintScreen) Init() tea.Cmd {
	return nil
}

func (s *BlueprintScreen) Title() string {
	return "Exam Blueprint"
}

func (s *BlueprintScreen) KeyHints() []layout.KeyHint {
	if s.section == checklistSection {
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Study guide"},
			{Key: "Tab", Description: "Exam map"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Practice range"},
		{Key: "←→", Description: "Exam set"},
		{Key: "Tab", Description: "Checklist"},
		{Key: "Esc", Description: "Back"},
	}
}

// allRanges is the exam map in display order, listening first.
func allRanges() []content.ExamRange {
	ranges := make([]content.ExamRange, 0, len(content.ListeningRanges)+len(content.ReadingRanges))
	ranges = append(ranges, content.ListeningRanges...)
	ranges = append(ranges, content.ReadingRanges...)
	return ranges
}

func (s *BlueprintScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.RefreshMsg:
		if msg.Event == store.EventProgressUpdated {
			s.progress = s.st.Progress()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *BlueprintScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	s.errMsg = ""

	limit := len(content.Checklist)
	if s.section == examMapSection {
		limit = len(allRanges())
	}

	switch msg.String() {
	case "tab":
		if s.section == checklistSection {
			s.section = examMapSection
		} else {
			s.section = checklistSection
		}
		s.selected = 0
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < limit-1 {
			s.selected++
		}
	case "left", "h":
		if s.section == examMapSection && s.examSet > 0 {
			s.examSet--
		}
	case "right", "l":
		if s.section == examMapSection && s.examSet < len(content.ExamSets) {
			s.examSet++
		}
	case " ", "space":
		if s.section == checklistSection {
			progress, err := s.st.ToggleChecklistItem(content.Checklist[s.selected].ID)
			if err != nil {
				s.errMsg = "Could not save your progress."
				return s, nil
			}
			s.progress = progress
		}
	case "enter":
		if s.section == checklistSection {
			id := content.Checklist[s.selected].ID
			if _, ok := content.StudyGuides[id]; ok {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
			return s, nil
		}
		r := allRanges()[s.selected]
		f := content.Filter{RangeKey: r.Range}
		if s.examSet > 0 {
			f.ExamSet = content.ExamSets[s.examSet-1]
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: practicescreen.New(s.st, s.tut, s.pron, f),
			}
		}
	}
	return s, nil
}

func (s *BlueprintScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	percent := store.PercentComplete(s.progress, len(content.Checklist))
	bar := components.NewProgressBar("Readiness", float64(percent)/100, true, components.ContentWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(s.checklistView(width))
	b.WriteString("\n")
	b.WriteString(s.examMapView(width))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}
	return b.String()
}

func (s *BlueprintScreen) checklistView(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		s.sectionTitle("STUDY CHECKLIST", checklistSection)))
	b.WriteString("\n")

	for i, item := range content.Checklist {
		box := "☐"
		if s.progress[item.ID] {
			box = "☑"
		}
		marker := "  "
		if s.section == checklistSection && i == s.selected {
			marker = "▸ "
		}
		guideHint := ""
		if _, ok := content.StudyGuides[item.ID]; ok {
			guideHint = "  ⓘ"
		}

		line := fmt.Sprintf("%s%s %-10s %s%s", marker, box, item.Category, item.Label, guideHint)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.progress[item.ID] {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if s.section == checklistSection && i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			if guide, ok := content.StudyGuides[item.ID]; ok {
				for _, gl := range strings.Split(guide.Guide, "\n") {
					b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
						theme.Hint.Render("    "+gl)))
					b.WriteString("\n")
				}
				for _, res := range guide.Resources {
					b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
						lipgloss.NewStyle().Foreground(theme.Secondary).
							Render("    ↗ "+res.Name+"  "+res.URL)))
					b.WriteString("\n")
				}
			}
		}
	}
	return b.String()
}

func (s *BlueprintScreen) examMapView(width int) string {
	var b strings.Builder

	setLabel := "All sets"
	if s.examSet > 0 {
		setLabel = fmt.Sprintf("Exam set %d", content.ExamSets[s.examSet-1])
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		s.sectionTitle("EXAM STRUCTURE", examMapSection)+
			theme.Hint.Render("  ◂ "+setLabel+" ▸")))
	b.WriteString("\n")

	ranges := allRanges()
	for i, r := range ranges {
		kind := "♪"
		if i >= len(content.ListeningRanges) {
			kind = "¶"
		}
		marker := "  "
		if s.section == examMapSection && i == s.selected {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%s %-10s %-28s %s", marker, kind, r.Range, r.Topic, r.Note)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.section == examMapSection && i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, res := range content.ExternalResources {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("↗ "+res.Name+" — "+res.Desc)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *BlueprintScreen) sectionTitle(label string, sec section) string {
	style := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	if s.section == sec {
		style = style.Foreground(theme.Secondary)
	}
	return style.Render(label)
}
