package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edukite/pathfinder/internal/ui/theme"
)

// OptionChoice is a selector over a question's answer options. There is no
// right answer to reveal; it only tracks which option the candidate has
// highlighted.
type OptionChoice struct {
	Question string
	Options  []string
	Selected int // -1 until the first navigation
}

// NewOptionChoice creates a selector with nothing highlighted yet.
func NewOptionChoice(question string, options []string) OptionChoice {
	return OptionChoice{
		Question: question,
		Options:  options,
		Selected: -1,
	}
}

// Init returns nil.
func (o OptionChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (o OptionChoice) Update(msg tea.Msg) (OptionChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected < 0 {
			o.Selected = 0
		} else if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < 0 {
			o.Selected = 0
		} else if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(o.Options) {
			o.Selected = idx
		}
	}

	return o, nil
}

// HasSelection reports whether an option is highlighted.
func (o OptionChoice) HasSelection() bool {
	return o.Selected >= 0 && o.Selected < len(o.Options)
}

// Value returns the highlighted option text, or "" if nothing is selected.
func (o OptionChoice) Value() string {
	if !o.HasSelection() {
		return ""
	}
	return o.Options[o.Selected]
}

// View renders the question and its options.
func (o OptionChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(o.Question) + "\n\n"

	labels := []string{"1", "2", "3", "4"}

	for i, opt := range o.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == o.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		if i == o.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
