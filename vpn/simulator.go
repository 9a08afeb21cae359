// Package vpn provides the region catalog and the simulated connection
// session of Region Switcher.
// This file contains the Simulator, which drives a Session with real timers
// outside of the terminal UI.
package vpn

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/notify"
)

// Simulator owns a Session and carries out its effects with real timers.
// At most one completion timer is pending; a newer transition stops the
// older timer, and the generation check drops any completion that fired
// before it could be stopped.
//
// All methods are safe for concurrent use. The notifier and clipboard are
// called with the simulator locked and must not call back into it.
type Simulator struct {
	mu        sync.Mutex
	session   Session
	notifier  notify.Notifier
	clipboard common.Clipboard
	timer     *time.Timer
	subs      map[chan Session]struct{}
	closed    bool
}

// NewSimulator creates a simulator around session. A nil clipboard makes
// copy actions notify without writing anything.
func NewSimulator(session Session, notifier notify.Notifier, clipboard common.Clipboard) *Simulator {
	return &Simulator{
		session:   session,
		notifier:  notifier,
		clipboard: clipboard,
		subs:      make(map[chan Session]struct{}),
	}
}

// Dispatch applies a to the session and performs the resulting effects.
// Actions dispatched after Close are ignored.
func (s *Simulator) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	next, effects := s.session.Apply(a)
	if c, ok := a.(Complete); ok && c.Generation != s.session.Generation {
		common.LogDebug("Dropping stale completion (generation %d, current %d)", c.Generation, s.session.Generation)
	}
	s.session = next

	for _, effect := range effects {
		s.perform(effect)
	}
	s.publish()
}

// perform executes one effect. Callers must hold s.mu.
func (s *Simulator) perform(effect Effect) {
	switch e := effect.(type) {
	case ScheduleEffect:
		if s.timer != nil {
			s.timer.Stop()
		}
		generation := e.Generation
		s.timer = time.AfterFunc(e.Delay, func() {
			s.Dispatch(Complete{Generation: generation})
		})

	case NotifyEffect:
		if s.notifier == nil {
			return
		}
		if err := s.notifier.Notify(e.Notification); err != nil {
			common.LogWarn("Failed to deliver notification %q: %v", e.Notification.Message, err)
		}

	case CopyEffect:
		if s.clipboard == nil {
			return
		}
		if err := s.clipboard.WriteAll(e.Text); err != nil {
			common.LogWarn("Clipboard write failed: %v", err)
		}
	}
}

// publish sends the current session to every subscriber. Slow subscribers
// miss intermediate states. Callers must hold s.mu.
func (s *Simulator) publish() {
	for ch := range s.subs {
		select {
		case ch <- s.session:
		default:
		}
	}
}

// Session returns a snapshot of the current session.
func (s *Simulator) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Subscribe returns a channel receiving a snapshot after every dispatch,
// and a function that cancels the subscription.
func (s *Simulator) Subscribe() (<-chan Session, func()) {
	ch := make(chan Session, 16)

	s.mu.Lock()
	if s.closed {
		close(ch)
		s.mu.Unlock()
		return ch, func() {}
	}
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// WaitConnected blocks until the session is connected, ctx is done, or the
// simulator is closed.
func (s *Simulator) WaitConnected(ctx context.Context) (Session, error) {
	updates, cancel := s.Subscribe()
	defer cancel()

	if current := s.Session(); current.Connected() {
		return current, nil
	}

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return s.Session(), common.ErrTimeout
			}
			return s.Session(), common.ErrCancelled
		case session, ok := <-updates:
			if !ok {
				return s.Session(), common.ErrClosed
			}
			if session.Connected() {
				return session, nil
			}
		}
	}
}

// Close stops the pending timer and ends all subscriptions.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	for ch := range s.subs {
		delete(s.subs, ch)
		close(ch)
	}
}
