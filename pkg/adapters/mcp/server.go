package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/enfa"
	"github.com/aretw0/enfa/pkg/adapters/file"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/ports"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server wraps a Converter and exposes it as an MCP Server.
type Server struct {
	converter *enfa.Converter
	store     ports.ConversionStore
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithStore keeps every conversion produced through the server.
func WithStore(store ports.ConversionStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the server logger. Stdout carries the protocol, so the
// logger must not write there.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(conv *enfa.Converter, opts ...Option) *Server {
	s := &Server{
		converter: conv,
		mcpServer: server.NewMCPServer("enfa-mcp", strings.TrimSpace(enfa.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

const automatonHelp = "Automaton document as JSON or YAML: states, symbols, start, finals, " +
	"transitions (each \"from label to\" or {from, on, to}). Use ε, eps or epsilon for empty moves."

func (s *Server) registerTools() {
	eliminate := mcp.NewTool("eliminate_epsilon",
		mcp.WithDescription("Convert an ε-NFA into an equivalent NFA without ε-transitions. "+
			"Returns the closures, the new transition table and the new final states."),
		mcp.WithString("automaton", mcp.Required(), mcp.Description(automatonHelp)),
	)
	s.mcpServer.AddTool(eliminate, s.handleEliminate)

	closure := mcp.NewTool("epsilon_closure",
		mcp.WithDescription("Compute ε-closures of an automaton's states."),
		mcp.WithString("automaton", mcp.Required(), mcp.Description(automatonHelp)),
		mcp.WithString("state", mcp.Description("Only return the closure of this state (optional)")),
	)
	s.mcpServer.AddTool(closure, s.handleClosure)
}

func (s *Server) handleEliminate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, errResult := s.automaton(request)
	if errResult != nil {
		return errResult, nil
	}

	conv, err := s.converter.Convert(ctx, a)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("conversion failed: %v", err)), nil
	}

	if s.store != nil {
		conv.ID = uuid.NewString()
		if err := s.store.Save(ctx, conv.ID, conv); err != nil {
			s.logger.Error("MCP: store failed", "err", err, "id", conv.ID)
			return mcp.NewToolResultError(fmt.Sprintf("failed to store conversion: %v", err)), nil
		}
	}
	return jsonResult(conv)
}

func (s *Server) handleClosure(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, errResult := s.automaton(request)
	if errResult != nil {
		return errResult, nil
	}

	if state := request.GetString("state", ""); state != "" {
		closure, err := s.converter.Closure(a, state)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(domain.Closures{state: closure})
	}

	closures, err := s.converter.Closures(ctx, a)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(closures)
}

// automaton decodes the "automaton" argument. A non-nil result is the error to report.
func (s *Server) automaton(request mcp.CallToolRequest) (domain.Automaton, *mcp.CallToolResult) {
	text, err := request.RequireString("automaton")
	if err != nil {
		return domain.Automaton{}, mcp.NewToolResultError(err.Error())
	}

	format := file.FormatYAML
	if bytes.HasPrefix(bytes.TrimSpace([]byte(text)), []byte("{")) {
		format = file.FormatJSON
	}

	a, err := file.Decode([]byte(text), format)
	if err != nil {
		s.logger.Warn("MCP: automaton rejected", "err", err, "size", len(text))
		return domain.Automaton{}, mcp.NewToolResultError(err.Error())
	}
	return a, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
