// Package intake collects and validates candidate identity before a
// session starts. Nothing external happens until all three fields pass.
package intake

import (
	"regexp"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/router"
	"github.com/edukite/pathfinder/internal/screen"
	"github.com/edukite/pathfinder/internal/ui/components"
	"github.com/edukite/pathfinder/internal/ui/layout"
	"github.com/edukite/pathfinder/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldCount
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IntakeScreen implements screen.Screen for the identity form.
type IntakeScreen struct {
	inputs  [fieldCount]components.TextInput
	focused int
	errMsg  string

	// startSession builds the screen that runs the session for the
	// validated identity.
	startSession func(assessment.UserDetails) screen.Screen
}

var _ screen.Screen = (*IntakeScreen)(nil)
var _ screen.KeyHintProvider = (*IntakeScreen)(nil)

// New creates an IntakeScreen. startSession is called with the validated
// identity when the form is submitted.
func New(startSession func(assessment.UserDetails) screen.Screen) *IntakeScreen {
	s := &IntakeScreen{startSession: startSession}
	s.inputs[fieldName] = components.NewTextInput("Full name", "Jane Doe", 80)
	s.inputs[fieldEmail] = components.NewTextInput("Email", "jane@example.com", 120)
	s.inputs[fieldPhone] = components.NewTextInput("Phone", "9876543210", 20)
	return s
}

func (s *IntakeScreen) Title() string {
	return "Career Assessment"
}

func (s *IntakeScreen) Init() tea.Cmd {
	return s.inputs[fieldName].Focus()
}

func (s *IntakeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *IntakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, tea.Quit
		case "tab", "down":
			return s, s.focusField((s.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.focusField((s.focused + fieldCount - 1) % fieldCount)
		case "enter":
			if s.focused < fieldCount-1 {
				return s, s.focusField(s.focused + 1)
			}
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	s.inputs[s.focused].ClearValidation()
	s.errMsg = ""
	return s, cmd
}

func (s *IntakeScreen) focusField(idx int) tea.Cmd {
	s.inputs[s.focused].Blur()
	s.focused = idx
	return s.inputs[s.focused].Focus()
}

// submit validates all fields. On success the session screen replaces
// nothing; it is pushed so the stack reflects the flow.
func (s *IntakeScreen) submit() (screen.Screen, tea.Cmd) {
	details := assessment.UserDetails{
		Name:  strings.TrimSpace(s.inputs[fieldName].Value()),
		Email: strings.TrimSpace(s.inputs[fieldEmail].Value()),
		Phone: strings.TrimSpace(s.inputs[fieldPhone].Value()),
	}

	nameOK := details.Name != ""
	emailOK := emailPattern.MatchString(details.Email)
	phoneOK := validPhone(details.Phone)

	s.inputs[fieldName].Submit(nameOK)
	s.inputs[fieldEmail].Submit(emailOK)
	s.inputs[fieldPhone].Submit(phoneOK)

	if !nameOK || !emailOK || !phoneOK {
		s.errMsg = "Please fill in all fields correctly before starting."
		return s, nil
	}

	next := s.startSession(details)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func validPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= 10
}

func (s *IntakeScreen) View(width, height int) string {
	var b strings.Builder

	title := theme.Title.Width(width).Render("Find your path")
	sub := theme.Subtitle.Width(width).Render("A short timed assessment to match you with the right course")
	b.WriteString("\n" + title + "\n" + sub + "\n\n")

	form := make([]string, 0, fieldCount+1)
	for i := range s.inputs {
		form = append(form, s.inputs[i].View())
	}
	if s.errMsg != "" {
		form = append(form, theme.ErrorText.Render(s.errMsg))
	}

	card := theme.Card.Width(min(width-8, 64)).Render(strings.Join(form, "\n\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}
