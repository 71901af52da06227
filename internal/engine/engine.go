// Package engine orchestrates a full debate session: input validation, two
// rounds of agent responses, and the final verdict, delivered through
// progress callbacks.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alienxp03/splitdecision/internal/core"
	"github.com/alienxp03/splitdecision/internal/gate"
	"github.com/alienxp03/splitdecision/internal/history"
	"github.com/alienxp03/splitdecision/internal/prompt"
)

// Validator screens a pair of options before the debate starts.
type Validator interface {
	Check(ctx context.Context, optionA, optionB string) (gate.Result, error)
}

// Streamer produces a streamed completion for one agent or verdict call.
type Streamer interface {
	Stream(ctx context.Context, req core.StreamRequest) (<-chan StreamEvent, error)
}

// StreamEvent is one fragment of a streamed completion.
type StreamEvent struct {
	Text string
	Err  error
}

// Callbacks receives debate progress. Any field may be nil.
type Callbacks struct {
	OnPhase        func(phase core.Phase)
	OnInvalid      func(reason string)
	OnMessageStart func(msg core.AgentMessage)
	OnMessageDelta func(id string, text string)
	OnMessageEnd   func(msg core.AgentMessage)
	OnVerdict      func(v core.Verdict)
}

func (c *Callbacks) phase(p core.Phase) {
	if c != nil && c.OnPhase != nil {
		c.OnPhase(p)
	}
}

func (c *Callbacks) invalid(reason string) {
	if c != nil && c.OnInvalid != nil {
		c.OnInvalid(reason)
	}
}

func (c *Callbacks) messageStart(msg core.AgentMessage) {
	if c != nil && c.OnMessageStart != nil {
		c.OnMessageStart(msg)
	}
}

func (c *Callbacks) messageDelta(id, text string) {
	if c != nil && c.OnMessageDelta != nil {
		c.OnMessageDelta(id, text)
	}
}

func (c *Callbacks) messageEnd(msg core.AgentMessage) {
	if c != nil && c.OnMessageEnd != nil {
		c.OnMessageEnd(msg)
	}
}

func (c *Callbacks) verdict(v core.Verdict) {
	if c != nil && c.OnVerdict != nil {
		c.OnVerdict(v)
	}
}

// Engine runs debate sessions.
type Engine struct {
	validator Validator
	streamer  Streamer
	store     history.Store
	logger    *slog.Logger
}

// New creates a debate engine. store may be nil when history is disabled.
func New(validator Validator, streamer Streamer, store history.Store, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		validator: validator,
		streamer:  streamer,
		store:     store,
		logger:    logger,
	}
}

// Session is one in-flight debate.
type Session struct {
	ID      string
	Phase   core.Phase
	Verdict *core.Verdict

	engine  *Engine
	req     core.ComparisonRequest
	aborted atomic.Bool
	saved   bool
}

// NewSession prepares a debate session from the given request.
func (e *Engine) NewSession(req core.ComparisonRequest) *Session {
	req.OptionA = strings.TrimSpace(req.OptionA)
	req.OptionB = strings.TrimSpace(req.OptionB)
	if !core.ValidTheme(req.Theme) {
		req.Theme = core.ThemeDefault
	}
	if req.Model == "" {
		req.Model = prompt.DefaultModel
	}
	return &Session{
		ID:     uuid.New().String(),
		Phase:  core.PhaseInput,
		engine: e,
		req:    req,
	}
}

// Abort stops the session. Streaming already in flight finishes its network
// call but no further observable progress is reported.
func (s *Session) Abort() {
	s.aborted.Store(true)
}

// Aborted reports whether Abort has been called.
func (s *Session) Aborted() bool {
	return s.aborted.Load()
}

// Run executes the full debate. Validation failures surface through the
// OnInvalid callback and a return to the input phase; they are not errors.
// Agent or verdict call failures abort the debate with an error naming the
// agent and round that failed.
func (s *Session) Run(ctx context.Context, cb *Callbacks) error {
	if s.req.OptionA == "" || s.req.OptionB == "" {
		cb.invalid("Both options are required.")
		return nil
	}

	s.setPhase(core.PhaseValidating, cb)

	result, err := s.engine.validator.Check(ctx, s.req.OptionA, s.req.OptionB)
	if err != nil {
		s.setPhase(core.PhaseInput, cb)
		return fmt.Errorf("validation failed: %w", err)
	}
	if s.aborted.Load() {
		return nil
	}
	if !result.Valid {
		cb.invalid(result.Reason)
		s.setPhase(core.PhaseInput, cb)
		return nil
	}

	s.setPhase(core.PhaseDebating, cb)

	round1 := make(core.RoundResults)
	if err := s.runRound(ctx, 1, nil, round1, cb); err != nil {
		s.setPhase(core.PhaseInput, cb)
		return err
	}
	if s.aborted.Load() {
		return nil
	}

	round2 := make(core.RoundResults)
	if err := s.runRound(ctx, 2, round1, round2, cb); err != nil {
		s.setPhase(core.PhaseInput, cb)
		return err
	}
	if s.aborted.Load() {
		return nil
	}

	verdict, err := s.runVerdict(ctx, round1, round2, cb)
	if err != nil {
		s.setPhase(core.PhaseInput, cb)
		return err
	}
	if s.aborted.Load() {
		return nil
	}

	s.Verdict = verdict
	s.setPhase(core.PhaseDone, cb)
	s.saveHistory(ctx, verdict)
	return nil
}

func (s *Session) setPhase(p core.Phase, cb *Callbacks) {
	if s.aborted.Load() {
		return
	}
	s.Phase = p
	cb.phase(p)
}

// runRound streams all four agents in canonical order, storing each agent's
// full text into results.
func (s *Session) runRound(ctx context.Context, round int, prior core.RoundResults, results core.RoundResults, cb *Callbacks) error {
	for _, agent := range core.AgentOrder {
		if s.aborted.Load() {
			return nil
		}

		req := core.NewAgentRequest(agent, s.req.Theme, round, s.req.OptionA, s.req.OptionB, s.req.Category, prior, s.req.Model)

		text, err := s.streamMessage(ctx, req, core.MessageID(round, agent), agent, round, cb)
		if err != nil {
			info := prompt.Agent(agent)
			return fmt.Errorf("%s Round %d error: %w", info.Name, round, err)
		}
		results[agent] = text
	}
	return nil
}

// streamMessage runs one agent call, forwarding deltas as they arrive.
func (s *Session) streamMessage(ctx context.Context, req core.StreamRequest, id string, agent core.AgentKey, round int, cb *Callbacks) (string, error) {
	events, err := s.engine.streamer.Stream(ctx, req)
	if err != nil {
		return "", err
	}

	msg := core.AgentMessage{
		ID:          id,
		AgentKey:    agent,
		Round:       round,
		IsStreaming: true,
	}
	if !s.aborted.Load() {
		cb.messageStart(msg)
	}

	var buf strings.Builder
	for ev := range events {
		if ev.Err != nil {
			return "", ev.Err
		}
		buf.WriteString(ev.Text)
		if !s.aborted.Load() {
			cb.messageDelta(id, ev.Text)
		}
	}

	msg.Text = buf.String()
	msg.IsStreaming = false
	if !s.aborted.Load() {
		cb.messageEnd(msg)
	}
	return msg.Text, nil
}

// runVerdict streams the verdict call, re-parsing the growing buffer so the
// caller sees a best-effort preview of winner and confidence while text is
// still arriving.
func (s *Session) runVerdict(ctx context.Context, round1, round2 core.RoundResults, cb *Callbacks) (*core.Verdict, error) {
	req := core.NewVerdictRequest(s.req.OptionA, s.req.OptionB, round1, round2, s.req.Model)

	events, err := s.engine.streamer.Stream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("verdict error: %w", err)
	}

	var buf strings.Builder
	for ev := range events {
		if ev.Err != nil {
			return nil, fmt.Errorf("verdict error: %w", ev.Err)
		}
		buf.WriteString(ev.Text)

		if !s.aborted.Load() {
			winner, confidence := core.ParseVerdict(buf.String(), s.req.OptionA, s.req.OptionB)
			cb.verdict(core.Verdict{
				Winner:      winner,
				Confidence:  confidence,
				FullText:    buf.String(),
				IsStreaming: true,
			})
		}
	}

	winner, confidence := core.ParseVerdict(buf.String(), s.req.OptionA, s.req.OptionB)
	final := core.Verdict{
		Winner:     winner,
		Confidence: confidence,
		FullText:   buf.String(),
	}
	if !s.aborted.Load() {
		cb.verdict(final)
	}
	return &final, nil
}

// saveHistory records the finished debate. Failures are logged, never
// surfaced; a session saves at most once, and only when the verdict
// resolved both a winner and a confidence.
func (s *Session) saveHistory(ctx context.Context, verdict *core.Verdict) {
	if s.engine.store == nil || s.saved {
		return
	}
	if verdict.Winner == "" || verdict.Confidence == nil {
		return
	}
	s.saved = true

	rec := history.Sanitize(core.ComparisonRecord{
		OptionA:    s.req.OptionA,
		OptionB:    s.req.OptionB,
		Category:   s.req.Category,
		Theme:      s.req.Theme,
		Winner:     verdict.Winner,
		Confidence: *verdict.Confidence,
		Timestamp:  time.Now().UnixMilli(),
	})

	if err := s.engine.store.Save(ctx, rec); err != nil {
		s.engine.logger.Warn("failed to save comparison", "error", err, "session", s.ID)
	}
}
