// ABOUTME: Main Bubble Tea application model
// ABOUTME: Coordinates the users, conversations, and transcript panes plus compose

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aditya-web3/hack-team-up-now/internal/models"
	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

// Pane represents which pane is focused
type Pane int

const (
	UsersPane Pane = iota
	ConversationsPane
	TranscriptPane
)

// MessageSentMsg reports a message accepted by the composer.
type MessageSentMsg struct {
	Message *models.Message
}

// Model is the main application state
type Model struct {
	ctx           context.Context
	svc           *service.Service
	userID        string
	activePane    Pane
	width         int
	height        int
	users         UsersModel
	conversations ConversationsModel
	transcript    TranscriptModel
	composing     bool
	composeText   string
	status        string
	err           error
}

// NewModel creates a new TUI model acting as userID.
func NewModel(ctx context.Context, svc *service.Service, userID string) Model {
	return Model{
		ctx:           ctx,
		svc:           svc,
		userID:        userID,
		activePane:    UsersPane,
		users:         NewUsersModel(svc),
		conversations: NewConversationsModel(svc),
		transcript:    NewTranscriptModel(svc, userID),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.users.LoadUsers(m.ctx),
		m.conversations.LoadConversations(m.ctx, m.userID),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.composing {
			return m.updateCompose(msg)
		}
		return m.updateNavigation(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case UsersLoadedMsg:
		m.users.SetUsers(msg.Users)
		return m, nil

	case ConversationsLoadedMsg:
		m.conversations.SetConversations(msg.Conversations)
		for _, c := range msg.Conversations {
			m.transcript.SetName(c.Counterpart.ID, c.Counterpart.Name)
		}
		return m, nil

	case TranscriptLoadedMsg:
		m.transcript.SetTranscript(msg.Transcript)
		return m, nil

	case MessageSentMsg:
		m.setStatus("Message sent")
		return m, tea.Batch(
			m.conversations.LoadConversations(m.ctx, m.userID),
			m.transcript.LoadTranscript(m.ctx, m.transcript.ConversationID()),
		)

	case error:
		m.err = msg
		return m, nil
	}

	return m, nil
}

// setStatus replaces whatever the status line showed, including an error.
func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func (m Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.activePane = (m.activePane + 1) % 3
		return m, nil

	case "shift+tab":
		m.activePane = (m.activePane + 2) % 3
		return m, nil

	case "j", "down":
		switch m.activePane {
		case UsersPane:
			m.users.MoveDown()
		case ConversationsPane:
			m.conversations.MoveDown()
		case TranscriptPane:
			m.transcript.MoveDown()
		}
		return m, nil

	case "k", "up":
		switch m.activePane {
		case UsersPane:
			m.users.MoveUp()
		case ConversationsPane:
			m.conversations.MoveUp()
		case TranscriptPane:
			m.transcript.MoveUp()
		}
		return m, nil

	case "enter":
		switch m.activePane {
		case UsersPane:
			if u := m.users.Selected(); u != nil {
				if !m.conversations.SelectCounterpart(u.ID) {
					m.setStatus("No conversation with " + u.Name)
					return m, nil
				}
				m.setStatus("")
				m.activePane = TranscriptPane
				return m, m.transcript.LoadTranscript(m.ctx, m.conversations.Selected().Conversation.ID)
			}
		case ConversationsPane:
			if c := m.conversations.Selected(); c != nil {
				m.activePane = TranscriptPane
				return m, m.transcript.LoadTranscript(m.ctx, c.Conversation.ID)
			}
		}
		return m, nil

	case "a":
		m.users.ToggleAvailable()
		return m, m.users.LoadUsers(m.ctx)

	case "n":
		if m.transcript.ConversationID() == "" {
			m.setStatus("Open a conversation first")
			return m, nil
		}
		m.composing = true
		m.composeText = ""
		return m, nil

	case "r":
		return m, tea.Batch(
			m.users.LoadUsers(m.ctx),
			m.conversations.LoadConversations(m.ctx, m.userID),
		)
	}

	return m, nil
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.composing = false
		return m, nil
	case tea.KeyEnter:
		m.composing = false
		return m, m.send(m.transcript.ConversationID(), m.composeText)
	case tea.KeyBackspace:
		if r := []rune(m.composeText); len(r) > 0 {
			m.composeText = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.composeText += " "
		return m, nil
	case tea.KeyRunes:
		m.composeText += string(msg.Runes)
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) send(conversationID, content string) tea.Cmd {
	return func() tea.Msg {
		sent, err := m.svc.Send(m.ctx, m.userID, conversationID, content)
		if err != nil {
			return err
		}
		return MessageSentMsg{Message: sent}
	}
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	usersWidth := m.width / 3
	conversationsWidth := m.width / 4
	transcriptWidth := m.width - usersWidth - conversationsWidth

	activeStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86"))

	inactiveStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	usersStyle := inactiveStyle
	conversationsStyle := inactiveStyle
	transcriptStyle := inactiveStyle

	switch m.activePane {
	case UsersPane:
		usersStyle = activeStyle
	case ConversationsPane:
		conversationsStyle = activeStyle
	case TranscriptPane:
		transcriptStyle = activeStyle
	}

	usersView := usersStyle.Width(usersWidth - 2).Height(m.height - 4).Render(m.users.View())
	conversationsView := conversationsStyle.Width(conversationsWidth - 2).Height(m.height - 4).Render(m.conversations.View())
	transcriptView := transcriptStyle.Width(transcriptWidth - 2).Height(m.height - 4).Render(m.transcript.View())

	main := lipgloss.JoinHorizontal(lipgloss.Top, usersView, conversationsView, transcriptView)

	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("[tab] switch pane  [j/k] navigate  [enter] open  [a] available only  [n] new message  [r] refresh  [q] quit")

	switch {
	case m.composing:
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Render("Message: " + m.composeText + "█  [enter] send  [esc] cancel")
	case m.err != nil:
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render("Error: " + m.err.Error())
	case m.status != "":
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, status)
}

// Run starts the TUI
func Run(ctx context.Context, svc *service.Service, userID string) error {
	p := tea.NewProgram(NewModel(ctx, svc, userID), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
