// ABOUTME: Conversations pane component
// ABOUTME: Lists the current user's conversations with previews and unread counts

package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aditya-web3/hack-team-up-now/internal/conversation"
	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

const previewWidth = 40

type ConversationsLoadedMsg struct {
	Conversations []service.ConversationSummary
}

type ConversationsModel struct {
	svc           *service.Service
	conversations []service.ConversationSummary
	cursor        int
	now           func() time.Time
}

func NewConversationsModel(svc *service.Service) ConversationsModel {
	return ConversationsModel{svc: svc, now: time.Now}
}

func (m *ConversationsModel) LoadConversations(ctx context.Context, userID string) tea.Cmd {
	return func() tea.Msg {
		list, err := m.svc.Conversations(ctx, userID, "")
		if err != nil {
			return err
		}
		return ConversationsLoadedMsg{Conversations: list}
	}
}

func (m *ConversationsModel) SetConversations(list []service.ConversationSummary) {
	m.conversations = list
	if m.cursor >= len(list) {
		m.cursor = len(list) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *ConversationsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *ConversationsModel) MoveDown() {
	if m.cursor < len(m.conversations)-1 {
		m.cursor++
	}
}

func (m *ConversationsModel) Selected() *service.ConversationSummary {
	if m.cursor >= 0 && m.cursor < len(m.conversations) {
		return &m.conversations[m.cursor]
	}
	return nil
}

// SelectCounterpart moves the cursor to the conversation with userID.
func (m *ConversationsModel) SelectCounterpart(userID string) bool {
	for i, c := range m.conversations {
		if c.Counterpart.ID == userID {
			m.cursor = i
			return true
		}
	}
	return false
}

func (m ConversationsModel) View() string {
	if len(m.conversations) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No conversations")
	}

	var s string
	s += lipgloss.NewStyle().Bold(true).Render("Messages") + "\n\n"

	now := m.now()
	for i, c := range m.conversations {
		cursor := "  "
		style := lipgloss.NewStyle()

		if i == m.cursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("86"))
		}

		unread := ""
		if c.Conversation.UnreadCount > 0 {
			unread = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(fmt.Sprintf(" (%d)", c.Conversation.UnreadCount))
		}
		when := ""
		if c.Conversation.LastMessage != nil {
			when = " · " + conversation.FormatTimestamp(c.Conversation.LastMessage.Timestamp, now)
		}

		s += fmt.Sprintf("%s%s%s%s\n", cursor, style.Render(c.Counterpart.Name), unread,
			lipgloss.NewStyle().Faint(true).Render(when))
		s += lipgloss.NewStyle().Faint(true).Render("   "+truncate(c.Preview, previewWidth)) + "\n"
	}

	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
