// ABOUTME: MCP server setup for TeamUp
// ABOUTME: Registers tools, resources, and prompts over the application service

package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Aditya-web3/hack-team-up-now/internal/service"
)

// Version is reported to MCP clients.
const Version = "0.1.0"

// Server wraps the MCP server.
type Server struct {
	mcp    *mcp.Server
	svc    *service.Service
	userID string
}

// NewServer creates an MCP server acting as userID unless a tool call names
// another user.
func NewServer(svc *service.Service, userID string) (*Server, error) {
	if svc == nil {
		return nil, errors.New("service is required")
	}

	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "teamup",
			Version: Version,
		}, nil),
		svc:    svc,
		userID: userID,
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

// Serve runs the server over stdio until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) actingUser(override string) string {
	if override != "" {
		return override
	}
	return s.userID
}
