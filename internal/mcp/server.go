package mcp

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mamaar/complexcalc/pkg/batch"
	"github.com/mamaar/complexcalc/pkg/calc"
	"github.com/mamaar/complexcalc/pkg/logging"
	"github.com/mamaar/complexcalc/pkg/types"
)

// MaxHistory bounds the number of calculations kept by an MCPServer.
const MaxHistory = 100

// HistoryEntry records one successful calculation made through the server.
type HistoryEntry struct {
	Operation string              `json:"operation"`
	A         types.ComplexNumber `json:"a"`
	B         types.ComplexNumber `json:"b"`
	Result    types.ComplexNumber `json:"result"`
	Text      string              `json:"text"`
	At        time.Time           `json:"at"`
}

// MCPServer holds the shared state for the MCP tool handlers: the logger
// that operations report to and the calculation history.
type MCPServer struct {
	mu      sync.RWMutex
	history []HistoryEntry
	logger  *slog.Logger
	now     func() time.Time
}

// NewMCPServer creates a new MCPServer with the given logger.
func NewMCPServer(logger *slog.Logger) *MCPServer {
	return &MCPServer{
		logger: logging.OrDiscard(logger),
		now:    time.Now,
	}
}

// Calculate applies the named operation to a and b and records the result.
func (s *MCPServer) Calculate(operation string, a, b types.ComplexNumber) (HistoryEntry, error) {
	op, err := calc.Lookup(operation, s.logger)
	if err != nil {
		return HistoryEntry{}, err
	}
	result, err := calc.NewCalculator(op).Calculate(a, b)
	if err != nil {
		return HistoryEntry{}, err
	}
	entry := HistoryEntry{
		Operation: op.Type().Name(),
		A:         a,
		B:         b,
		Result:    result,
		Text:      result.String(),
		At:        s.now(),
	}
	s.record(entry)
	return entry, nil
}

// EvaluateBatch evaluates req and records every successful calculation.
func (s *MCPServer) EvaluateBatch(req *types.BatchRequest) (*types.BatchReport, error) {
	report, err := batch.NewEvaluator(s.logger).Evaluate(req)
	if report != nil {
		for _, r := range report.Results {
			if r.Result == nil {
				continue
			}
			t, perr := calc.ParseOperationType(r.Request.Operation)
			if perr != nil {
				continue
			}
			s.record(HistoryEntry{
				Operation: t.Name(),
				A:         r.Request.A,
				B:         r.Request.B,
				Result:    *r.Result,
				Text:      r.Text,
				At:        s.now(),
			})
		}
	}
	return report, err
}

// History returns a copy of the recorded calculations, oldest first.
func (s *MCPServer) History() []HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]HistoryEntry(nil), s.history...)
}

// ClearHistory removes every recorded calculation.
func (s *MCPServer) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *MCPServer) record(entry HistoryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, entry)
	if over := len(s.history) - MaxHistory; over > 0 {
		s.history = append([]HistoryEntry(nil), s.history[over:]...)
	}
}

// Close releases resources held by the server state.
func (s *MCPServer) Close() {
	s.logger.Debug("mcp server state closed", "history", len(s.History()))
}
