// ABOUTME: Users pane component
// ABOUTME: Lists teammate search results and navigates them

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aditya-web3/hack-team-up-now/internal/models"
	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

type UsersLoadedMsg struct {
	Users []models.User
}

type UsersModel struct {
	svc    *service.Service
	users  []models.User
	filter models.SearchFilter
	cursor int
}

func NewUsersModel(svc *service.Service) UsersModel {
	return UsersModel{svc: svc}
}

func (m *UsersModel) LoadUsers(ctx context.Context) tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		users, err := m.svc.SearchUsers(ctx, filter)
		if err != nil {
			return err
		}
		return UsersLoadedMsg{Users: users}
	}
}

// ToggleAvailable flips the "only available" switch. Off clears the clause.
func (m *UsersModel) ToggleAvailable() {
	m.filter.Availability = models.AvailabilityFromFlag(m.filter.Availability != models.RequireAvailable)
}

func (m *UsersModel) SetUsers(users []models.User) {
	m.users = users
	if m.cursor >= len(users) {
		m.cursor = len(users) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *UsersModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *UsersModel) MoveDown() {
	if m.cursor < len(m.users)-1 {
		m.cursor++
	}
}

func (m *UsersModel) Selected() *models.User {
	if m.cursor >= 0 && m.cursor < len(m.users) {
		return &m.users[m.cursor]
	}
	return nil
}

func (m UsersModel) View() string {
	title := "Teammates"
	if m.filter.Availability == models.RequireAvailable {
		title += " (available)"
	}

	if len(m.users) == 0 {
		return lipgloss.NewStyle().Bold(true).Render(title) + "\n\n" +
			lipgloss.NewStyle().Faint(true).Render("No teammates found")
	}

	var s string
	s += lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"

	for i, u := range m.users {
		cursor := "  "
		style := lipgloss.NewStyle()

		if i == m.cursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("86"))
		}

		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
		if !u.Available {
			dot = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("○")
		}

		skills := make([]string, 0, len(u.Skills))
		for _, sk := range u.Skills {
			skills = append(skills, sk.Name)
		}

		s += fmt.Sprintf("%s%s %s\n", cursor, dot, style.Render(u.Name))
		s += lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("   %s · %s", u.Location, strings.Join(skills, ", "))) + "\n"
	}

	return s
}
