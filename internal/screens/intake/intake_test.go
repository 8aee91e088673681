package intake

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edukite/pathfinder/internal/assessment"
	"github.com/edukite/pathfinder/internal/router"
	"github.com/edukite/pathfinder/internal/screen"
)

// stubScreen satisfies screen.Screen for factory wiring.
type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "" }
func (stubScreen) Title() string                             { return "" }

func typeText(s *IntakeScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func fillForm(s *IntakeScreen, name, email, phone string) {
	typeText(s, name)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(s, email)
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	typeText(s, phone)
}

func TestSubmitValidIdentity(t *testing.T) {
	var started *assessment.UserDetails
	s := New(func(d assessment.UserDetails) screen.Screen {
		started = &d
		return stubScreen{}
	})
	s.Init()

	fillForm(s, "Jane Doe", "jane@example.com", "+91 98765 43210")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("valid submit produced no command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected push, got %T", cmd())
	}
	if started == nil {
		t.Fatal("session factory not called")
	}
	if started.Name != "Jane Doe" || started.Email != "jane@example.com" {
		t.Errorf("identity = %+v", *started)
	}
}

func TestSubmitRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		fields [3]string
	}{
		{"empty name", [3]string{"", "jane@example.com", "9876543210"}},
		{"bad email", [3]string{"Jane", "not-an-email", "9876543210"}},
		{"short phone", [3]string{"Jane", "jane@example.com", "12345"}},
		{"phone with letters", [3]string{"Jane", "jane@example.com", "98765x3210"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			s := New(func(assessment.UserDetails) screen.Screen {
				called = true
				return stubScreen{}
			})
			s.Init()

			fillForm(s, tt.fields[0], tt.fields[1], tt.fields[2])
			s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

			if called {
				t.Error("invalid form started a session")
			}
			if s.errMsg == "" {
				t.Error("no validation message shown")
			}
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"+91 98765-43210", true},
		{"12345", false},
		{"", false},
		{"98765abcde", false},
	}
	for _, tt := range tests {
		if got := validPhone(tt.phone); got != tt.want {
			t.Errorf("validPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
