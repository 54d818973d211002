// Package mcptest provides test helpers for invoking complexcalc MCP tools
// with swappable transports: in-process (fast) or subprocess (full binary).
package mcptest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os/exec"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/mamaar/complexcalc/internal/mcp"
	"github.com/mamaar/complexcalc/pkg/logging"
)

// Session wraps an MCP ClientSession with cleanup logic.
type Session struct {
	*mcpsdk.ClientSession
	cancel context.CancelFunc
	state  *internalmcp.MCPServer // non-nil only for in-process
}

// State returns the in-process server state, or nil for subprocess sessions.
func (s *Session) State() *internalmcp.MCPServer {
	return s.state
}

// Close tears down the session.
func (s *Session) Close() {
	_ = s.ClientSession.Close()
	if s.cancel != nil {
		s.cancel()
	}
	if s.state != nil {
		s.state.Close()
	}
}

// Transport selects how the MCP server is reached.
type Transport interface {
	connect(ctx context.Context, t testing.TB, logOut io.Writer) (*Session, error)
}

// Dial connects to an MCP server using the given transport. Operation log
// lines of in-process servers are written to logOut (nil discards them).
func Dial(ctx context.Context, t testing.TB, transport Transport, logOut io.Writer) *Session {
	t.Helper()
	sess, err := transport.connect(ctx, t, logOut)
	if err != nil {
		t.Fatalf("mcptest.Dial: connect: %v", err)
	}
	return sess
}

// CallJSON calls tool with args and decodes the single text content block
// of a successful result into out.
func CallJSON(ctx context.Context, t testing.TB, sess *Session, tool string, args map[string]any, out any) {
	t.Helper()
	result, err := sess.CallTool(ctx, &mcpsdk.CallToolParams{Name: tool, Arguments: args})
	if err != nil {
		t.Fatalf("%s: %v", tool, err)
	}
	if result.IsError {
		t.Fatalf("%s returned error: %s", tool, Text(result))
	}
	if err := json.Unmarshal([]byte(Text(result)), out); err != nil {
		t.Fatalf("%s: decode result: %v", tool, err)
	}
}

// Text returns the text of the first TextContent block in result.
func Text(result *mcpsdk.CallToolResult) string {
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// inProcess is the in-process transport using NewInMemoryTransports.
type inProcess struct{}

// InProcess returns a transport that runs the MCP server in-process.
func InProcess() Transport { return inProcess{} }

func (inProcess) connect(ctx context.Context, t testing.TB, logOut io.Writer) (*Session, error) {
	logger := logging.Discard()
	if logOut != nil {
		logger = logging.New(logOut, slog.LevelInfo)
	}
	state := internalmcp.NewMCPServer(logger)

	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: "complexcalc", Version: "test"}, nil)
	internalmcp.RegisterAllTools(server, state)

	serverT, clientT := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(ctx)
	go func() { _ = server.Run(ctx, serverT) }()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		cancel()
		state.Close()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel, state: state}, nil
}

// subprocess is the subprocess transport using CommandTransport.
type subprocess struct {
	binPath string
}

// Subprocess returns a transport that shells out to the given binary.
func Subprocess(bin string) Transport { return subprocess{binPath: bin} }

func (sp subprocess) connect(ctx context.Context, t testing.TB, logOut io.Writer) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, sp.binPath)
	if logOut != nil {
		cmd.Stderr = logOut
	}

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, &mcpsdk.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}
