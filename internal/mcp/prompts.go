// ABOUTME: MCP prompt templates
// ABOUTME: Guided teammate search workflow

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "find-teammates",
		Description: "Find teammates for a hackathon and draft an introduction",
		Arguments: []*mcp.PromptArgument{
			{Name: "hackathon", Description: "Hackathon id to find teammates for", Required: true},
			{Name: "skills", Description: "Comma-separated skill ids you are looking for"},
		},
	}, s.handleFindTeammatesPrompt)
}

func (s *Server) handleFindTeammatesPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	hackathon := req.Params.Arguments["hackathon"]
	skills := strings.TrimSpace(req.Params.Arguments["skills"])

	skillLine := "any skills"
	if skills != "" {
		skillLine = "skill ids " + skills
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Find teammates for hackathon %s", hackathon),
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: fmt.Sprintf(`Help me find teammates for hackathon %s, looking for %s.

First, read teamup://skills and teamup://hackathons to learn the ids. Then use the
search_users tool with hackathon "%s", availability "available" and the skills above.
For the best two matches:
1. Explain how their skills complement mine (use get_user for profiles)
2. Check list_conversations for an existing conversation with them
3. Draft a short introduction message, but do not send it until I confirm`, hackathon, skillLine, hackathon),
				},
			},
		},
	}, nil
}
