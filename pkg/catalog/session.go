package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Session ties the catalog client to a selection state for one contest
// session. Activation fetches the catalog exactly once; navigation and
// rendering collaborators then read and drive the State directly.
type Session struct {
	client *Client
	state  *State
	logger *zap.Logger
}

// NewSession creates a session around an existing client and state. logger
// may be nil; failures are then discarded silently.
func NewSession(client *Client, state *State, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		client: client,
		state:  state,
		logger: logger,
	}
}

// State returns the selection state collaborators should consume.
func (s *Session) State() *State {
	return s.state
}

// Activate performs the session's single catalog fetch and commits the
// result to the selection state. On failure the failure is logged and the
// state keeps its pre-fetch defaults: nil selection, no documents. A
// response that arrives after ctx is cancelled is discarded rather than
// committed to a torn-down view. If Activate is ever re-invoked, the last
// committed response wins.
func (s *Session) Activate(ctx context.Context) {
	catalog, err := s.client.Fetch(ctx)
	if err != nil {
		s.logger.Error("question catalog fetch failed", zap.Error(err))
		return
	}

	if ctx.Err() != nil {
		return
	}

	s.state.Initialize(catalog.Questions, catalog.GlobalDocs)
}
