// ABOUTME: MCP tool implementations
// ABOUTME: Teammate search, profiles, conversations, and sending exposed as tools

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Aditya-web3/hack-team-up-now/internal/models"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "search_users",
		Description: "Find potential teammates. Every given clause must match; any listed skill satisfies the skill clause",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"skills":{"type":"array","items":{"type":"string"},"description":"Skill ids"},"location":{"type":"string","description":"Case-insensitive location substring"},"hackathon":{"type":"string","description":"Hackathon id"},"availability":{"type":"string","enum":["any","available","unavailable"]}}}`),
	}, s.handleSearchUsers)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_user",
		Description: "Get a user profile",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"user":{"type":"string"}},"required":["user"]}`),
	}, s.handleGetUser)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_conversations",
		Description: "List conversations of the acting user, optionally filtered by counterpart name",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"},"as":{"type":"string","description":"Acting user id"}}}`),
	}, s.handleListConversations)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_messages",
		Description: "List messages in a conversation",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"conversation":{"type":"string"}},"required":["conversation"]}`),
	}, s.handleListMessages)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "send_message",
		Description: "Send a direct message in a conversation",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"conversation":{"type":"string"},"content":{"type":"string"},"as":{"type":"string","description":"Acting user id"}},"required":["conversation","content"]}`),
	}, s.handleSendMessage)
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	result, err := json.Marshal(v)
	if err != nil {
		return errorResult(err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(result)}},
	}
}

func (s *Server) handleSearchUsers(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Skills       []string `json:"skills"`
		Location     string   `json:"location"`
		Hackathon    string   `json:"hackathon"`
		Availability string   `json:"availability"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return errorResult(err), nil
	}

	availability, err := models.ParseAvailability(args.Availability)
	if err != nil {
		return errorResult(err), nil
	}

	users, err := s.svc.SearchUsers(ctx, models.SearchFilter{
		Skills:            args.Skills,
		Location:          args.Location,
		HackathonInterest: args.Hackathon,
		Availability:      availability,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(users), nil
}

func (s *Server) handleGetUser(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		User string `json:"user"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	user, err := s.svc.Profile(ctx, args.User)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(user), nil
}

func (s *Server) handleListConversations(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Query string `json:"query"`
		As    string `json:"as"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	list, err := s.svc.Conversations(ctx, s.actingUser(args.As), args.Query)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(list), nil
}

func (s *Server) handleListMessages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Conversation string `json:"conversation"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	transcript, err := s.svc.Transcript(ctx, args.Conversation, time.Local)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(transcript.Messages), nil
}

func (s *Server) handleSendMessage(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Conversation string `json:"conversation"`
		Content      string `json:"content"`
		As           string `json:"as"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	msg, err := s.svc.Send(ctx, s.actingUser(args.As), args.Conversation, args.Content)
	if err != nil {
		return errorResult(err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Sent message %s to user %s", msg.ID, msg.ReceiverID)}},
	}, nil
}
