// ABOUTME: MCP resource implementations
// ABOUTME: Reference lists and conversation transcripts as read-only resources

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Aditya-web3/hack-team-up-now/internal/directory"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		URI:         "teamup://skills",
		Name:        "Skills",
		Description: "Every skill a user can list, with its category",
		MIMEType:    "application/json",
	}, s.handleSkillsResource)

	s.mcp.AddResource(&mcp.Resource{
		URI:         "teamup://hackathons",
		Name:        "Hackathons",
		Description: "Upcoming hackathons users can be interested in",
		MIMEType:    "application/json",
	}, s.handleHackathonsResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "teamup://conversations/{conversation}/messages",
		Name:        "Conversation Messages",
		Description: "Transcript of a conversation grouped by day",
		MIMEType:    "text/markdown",
	}, s.handleConversationMessagesResource)
}

func (s *Server) handleSkillsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	skills, err := s.svc.Skills(ctx)
	if err != nil {
		return nil, err
	}

	data, _ := json.MarshalIndent(skills, "", "  ")
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "teamup://skills",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleHackathonsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	hackathons, err := s.svc.Hackathons(ctx)
	if err != nil {
		return nil, err
	}

	data, _ := json.MarshalIndent(hackathons, "", "  ")
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "teamup://hackathons",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleConversationMessagesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	// teamup://conversations/{conversation}/messages
	parts := strings.Split(req.Params.URI, "/")
	if len(parts) < 5 {
		return nil, fmt.Errorf("invalid URI")
	}
	conversationID := parts[3]

	transcript, err := s.svc.Transcript(ctx, conversationID, time.Local)
	if err != nil {
		return nil, err
	}
	snap, err := s.svc.Store().Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Conversation %s\n\n", conversationID))
	sb.WriteString(fmt.Sprintf("*Between %s*\n\n", participantNames(snap, transcript.Conversation.Participants)))

	for _, day := range transcript.Days {
		sb.WriteString(fmt.Sprintf("## %s\n\n", day.Label))
		for _, msg := range day.Messages {
			sb.WriteString(fmt.Sprintf("**%s** · %s\n\n", displayName(snap, msg.SenderID), msg.Timestamp.Local().Format("15:04")))
			sb.WriteString(msg.Content)
			sb.WriteString("\n\n---\n\n")
		}
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     sb.String(),
		}},
	}, nil
}

func displayName(snap *directory.Directory, id string) string {
	if u, err := snap.User(id); err == nil {
		return u.Name
	}
	return "user " + id
}

func participantNames(snap *directory.Directory, ids []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = displayName(snap, id)
	}
	return strings.Join(names, " and ")
}
