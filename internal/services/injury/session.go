package injury

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/injurybot/internal/models"
	injuryRepo "github.com/KirkDiggler/injurybot/internal/repositories/injury"
	mapset "github.com/deckarep/golang-set/v2"
)

// ClearanceSession is a pending clearance of one active injury. It ends with
// exactly one of confirm, cancel or timeout.
type ClearanceSession struct {
	id          string
	injury      models.Injury
	requestedBy string
	responders  mapset.Set[string]
	expiresAt   time.Time

	decisions chan decisionRequest
	done      chan struct{}

	mu     sync.RWMutex
	result *ClearResult
}

type decisionRequest struct {
	ctx      context.Context
	actorID  string
	decision ClearDecision
	reply    chan decisionReply
}

type decisionReply struct {
	result *ClearResult
	err    error
}

func newClearanceSession(id string, injury *models.Injury, requestedBy string, expiresAt time.Time) *ClearanceSession {
	return &ClearanceSession{
		id:          id,
		injury:      *injury,
		requestedBy: requestedBy,
		responders:  mapset.NewSet(requestedBy),
		expiresAt:   expiresAt,
		decisions:   make(chan decisionRequest),
		done:        make(chan struct{}),
	}
}

// ID returns the session identifier
func (c *ClearanceSession) ID() string {
	return c.id
}

// Injury returns a snapshot of the injury taken when the session opened
func (c *ClearanceSession) Injury() models.Injury {
	return c.injury
}

// RequestedBy returns the user who opened the session
func (c *ClearanceSession) RequestedBy() string {
	return c.requestedBy
}

// ExpiresAt returns when the session times out
func (c *ClearanceSession) ExpiresAt() time.Time {
	return c.expiresAt
}

// Done is closed once the session reaches an outcome
func (c *ClearanceSession) Done() <-chan struct{} {
	return c.done
}

// Result returns the outcome, nil while the session is open
func (c *ClearanceSession) Result() *ClearResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result
}

// Wait blocks until the session ends or ctx is done
func (c *ClearanceSession) Wait(ctx context.Context) (*ClearResult, error) {
	select {
	case <-c.done:
		return c.Result(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *ClearanceSession) finish(result *ClearResult) {
	c.mu.Lock()
	c.result = result
	c.mu.Unlock()
	close(c.done)
}

func (c *ClearanceSession) outcome(status ClearStatus, resolvedBy string) *ClearResult {
	return &ClearResult{
		Status:      status,
		SessionID:   c.id,
		InjuryID:    c.injury.ID,
		PlayerID:    c.injury.PlayerID,
		PreviousEnd: c.injury.End,
		TotalGames:  c.injury.TotalGames,
		ResolvedBy:  resolvedBy,
	}
}

// deliver hands a decision to the session loop and waits for its answer
func (c *ClearanceSession) deliver(req decisionRequest) (*ClearResult, error) {
	select {
	case c.decisions <- req:
	case <-c.done:
		return nil, ErrSessionClosed
	case <-req.ctx.Done():
		return nil, req.ctx.Err()
	}

	reply := <-req.reply
	return reply.result, reply.err
}

// runSession owns the session until it ends. A confirm whose deactivation
// fails leaves the session open so a responder can retry before the timeout.
func (s *service) runSession(sess *ClearanceSession, timeout <-chan time.Time) {
	for {
		select {
		case req := <-sess.decisions:
			result, terminal, err := s.decide(sess, req)
			if terminal {
				s.releaseSession(sess)
				sess.finish(result)
			}
			req.reply <- decisionReply{result: result, err: err}
			if terminal {
				return
			}

		case <-timeout:
			s.releaseSession(sess)
			sess.finish(sess.outcome(ClearStatusTimedOut, ""))
			return
		}
	}
}

func (s *service) decide(sess *ClearanceSession, req decisionRequest) (*ClearResult, bool, error) {
	if req.decision == ClearDecisionCancel {
		return sess.outcome(ClearStatusCancelled, req.actorID), true, nil
	}

	_, err := s.injuryRepo.DeactivateInjury(req.ctx, &injuryRepo.DeactivateInjuryInput{
		InjuryID:  sess.injury.ID,
		ClearedAt: s.clock.Now(),
	})
	switch {
	case err == nil:
		return sess.outcome(ClearStatusCleared, req.actorID), true, nil
	case errors.Is(err, injuryRepo.ErrInjuryNotActive), errors.Is(err, injuryRepo.ErrInjuryNotFound):
		// Cleared some other way while the session was open
		return sess.outcome(ClearStatusCancelled, req.actorID), true, ErrNoActiveInjury
	default:
		return nil, false, err
	}
}

func (s *service) registerSession(sess *ClearanceSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessionsByInjury[sess.injury.ID]; ok {
		return ErrSessionConflict
	}
	s.sessions[sess.id] = sess
	s.sessionsByInjury[sess.injury.ID] = sess.id
	return nil
}

func (s *service) releaseSession(sess *ClearanceSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sess.id)
	delete(s.sessionsByInjury, sess.injury.ID)
}

func (s *service) lookupSession(id string) (*ClearanceSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}
