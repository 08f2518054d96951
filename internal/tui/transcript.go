// ABOUTME: Transcript pane component
// ABOUTME: Displays a conversation's messages grouped by day

package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

type TranscriptLoadedMsg struct {
	Transcript *service.Transcript
}

type TranscriptModel struct {
	svc        *service.Service
	transcript *service.Transcript
	names      map[string]string
	selfID     string
	scroll     int
}

func NewTranscriptModel(svc *service.Service, selfID string) TranscriptModel {
	return TranscriptModel{svc: svc, selfID: selfID, names: map[string]string{}}
}

func (m *TranscriptModel) LoadTranscript(ctx context.Context, conversationID string) tea.Cmd {
	return func() tea.Msg {
		tr, err := m.svc.Transcript(ctx, conversationID, time.Local)
		if err != nil {
			return err
		}
		return TranscriptLoadedMsg{Transcript: tr}
	}
}

func (m *TranscriptModel) SetTranscript(tr *service.Transcript) {
	m.transcript = tr
	m.scroll = 0
}

// SetName records the display name for a participant id.
func (m *TranscriptModel) SetName(id, name string) {
	m.names[id] = name
}

// ConversationID is empty until a transcript is loaded.
func (m *TranscriptModel) ConversationID() string {
	if m.transcript == nil {
		return ""
	}
	return m.transcript.Conversation.ID
}

func (m *TranscriptModel) MoveUp() {
	if m.scroll > 0 {
		m.scroll--
	}
}

func (m *TranscriptModel) MoveDown() {
	if m.transcript != nil && m.scroll < len(m.transcript.Messages)-1 {
		m.scroll++
	}
}

func (m TranscriptModel) sender(id string) string {
	if id == m.selfID {
		return "You"
	}
	if name, ok := m.names[id]; ok {
		return name
	}
	return "User " + id
}

func (m TranscriptModel) View() string {
	if m.transcript == nil || len(m.transcript.Messages) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No messages\n\nSelect a conversation")
	}

	var s string
	s += lipgloss.NewStyle().Bold(true).Render("Conversation") + "\n\n"

	dayStyle := lipgloss.NewStyle().Faint(true).Underline(true)
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	selfStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	faintStyle := lipgloss.NewStyle().Faint(true)

	i := 0
	for _, day := range m.transcript.Days {
		dayShown := false
		for _, msg := range day.Messages {
			if i < m.scroll {
				i++
				continue
			}
			i++
			if !dayShown {
				s += dayStyle.Render(day.Label) + "\n\n"
				dayShown = true
			}

			style := headerStyle
			if msg.SenderID == m.selfID {
				style = selfStyle
			}
			s += style.Render(m.sender(msg.SenderID))
			s += faintStyle.Render(" · "+msg.Timestamp.In(time.Local).Format("3:04 PM")) + "\n"

			for _, line := range strings.Split(msg.Content, "\n") {
				s += line + "\n"
			}
			s += "\n"
		}
	}

	return s
}
