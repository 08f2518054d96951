// ABOUTME: Tests for the MCP server
// ABOUTME: Verifies server creation and calls tool, resource, and prompt handlers

package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
	"github.com/Aditya-web3/hack-team-up-now/internal/models"
	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := service.New(directory.NewMemoryStore(directory.Seed()))
	server, err := NewServer(svc, "1")
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func callTool(t *testing.T, handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), args string) *mcp.CallToolResult {
	t.Helper()
	res, err := handler(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)},
	})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestNewServerRequiresService(t *testing.T) {
	_, err := NewServer(nil, "1")
	if err == nil {
		t.Error("NewServer should fail with nil service")
	}
}

func TestNewServerSuccess(t *testing.T) {
	if newTestServer(t) == nil {
		t.Error("NewServer returned nil server")
	}
}

func TestSearchUsersTool(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s.handleSearchUsers, `{"skills":["15"],"availability":"available"}`)
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	var users []models.User
	if err := json.Unmarshal([]byte(resultText(t, res)), &users); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(users) != 1 || users[0].ID != "6" {
		t.Errorf("expected only Emma Davis, got %+v", users)
	}

	res = callTool(t, s.handleSearchUsers, `{"availability":"sometimes"}`)
	if !res.IsError {
		t.Error("expected error for unknown availability")
	}
}

func TestSearchUsersToolUnavailable(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s.handleSearchUsers, `{"availability":"unavailable"}`)
	var users []models.User
	if err := json.Unmarshal([]byte(resultText(t, res)), &users); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 unavailable users, got %d", len(users))
	}
}

func TestGetUserTool(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s.handleGetUser, `{"user":"2"}`)
	if res.IsError || !strings.Contains(resultText(t, res), "Sofia Rodriguez") {
		t.Errorf("unexpected result: %s", resultText(t, res))
	}

	res = callTool(t, s.handleGetUser, `{"user":"nope"}`)
	if !res.IsError {
		t.Error("expected error for unknown user")
	}
}

func TestConversationTools(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s.handleListConversations, `{}`)
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	var list []service.ConversationSummary
	if err := json.Unmarshal([]byte(resultText(t, res)), &list); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(list) != 1 || list[0].Counterpart.ID != "2" {
		t.Errorf("unexpected conversations: %+v", list)
	}

	res = callTool(t, s.handleListConversations, `{"as":"7"}`)
	if !strings.Contains(resultText(t, res), "Carlos Mendoza") {
		t.Errorf("expected Carlos as counterpart for user 7: %s", resultText(t, res))
	}

	res = callTool(t, s.handleListMessages, `{"conversation":"1"}`)
	var msgs []models.Message
	if err := json.Unmarshal([]byte(resultText(t, res)), &msgs); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(msgs) != 3 {
		t.Errorf("expected 3 messages, got %d", len(msgs))
	}
}

func TestSendMessageTool(t *testing.T) {
	s := newTestServer(t)

	res := callTool(t, s.handleSendMessage, `{"conversation":"1","content":"Let's build it"}`)
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), "to user 2") {
		t.Errorf("unexpected result: %s", resultText(t, res))
	}

	res = callTool(t, s.handleSendMessage, `{"conversation":"1","content":"  "}`)
	if !res.IsError {
		t.Error("expected error for blank content")
	}

	res = callTool(t, s.handleListMessages, `{"conversation":"1"}`)
	if !strings.Contains(resultText(t, res), "Let's build it") {
		t.Error("sent message missing from transcript")
	}
}

func TestConversationMessagesResource(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleConversationMessagesResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "teamup://conversations/1/messages"},
	})
	if err != nil {
		t.Fatalf("resource failed: %v", err)
	}
	text := res.Contents[0].Text
	for _, want := range []string{"Alex Johnson and Sofia Rodriguez", "## April 15, 2025", "**Alex Johnson** · 10:30", "decentralized marketplace"} {
		if !strings.Contains(text, want) {
			t.Errorf("transcript missing %q", want)
		}
	}

	_, err = s.handleConversationMessagesResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "teamup://conversations/9/messages"},
	})
	if err == nil {
		t.Error("expected error for unknown conversation")
	}
}

func TestSkillsResource(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleSkillsResource(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "teamup://skills"},
	})
	if err != nil {
		t.Fatalf("resource failed: %v", err)
	}
	var skills []models.Skill
	if err := json.Unmarshal([]byte(res.Contents[0].Text), &skills); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(skills) != 25 {
		t.Errorf("expected 25 skills, got %d", len(skills))
	}
}

func TestFindTeammatesPrompt(t *testing.T) {
	s := newTestServer(t)

	res, err := s.handleFindTeammatesPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      "find-teammates",
			Arguments: map[string]string{"hackathon": "3", "skills": "1,15"},
		},
	})
	if err != nil {
		t.Fatalf("prompt failed: %v", err)
	}
	text := res.Messages[0].Content.(*mcp.TextContent).Text
	if !strings.Contains(text, "search_users") || !strings.Contains(text, "skill ids 1,15") {
		t.Errorf("unexpected prompt text: %s", text)
	}
}
