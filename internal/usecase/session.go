package usecase

import (
	"sync"
	"time"

	"github.com/wellnest/backend/internal/domain"
)

// session pairs a log with its last-touched time for expiry.
type session struct {
	log      *DayLog
	lastSeen time.Time
}

// SessionManager owns the lifecycle of per-session consumption logs: a log is
// created on first use of a session id and discarded after the session has
// been idle for the configured TTL. Sessions replace ambient global state;
// every tracker operation goes through an explicit session id.
type SessionManager struct {
	mutex    sync.Mutex
	sessions map[string]*session
	goals    domain.DailyGoals
	ttl      time.Duration
}

// NewSessionManager creates a manager that hands out logs with the given
// goals and expires sessions idle longer than ttl.
func NewSessionManager(goals domain.DailyGoals, ttl time.Duration) *SessionManager {
	m := &SessionManager{
		sessions: make(map[string]*session),
		goals:    goals,
		ttl:      ttl,
	}

	go m.sweepExpired()

	return m
}

// Log returns the consumption log for a session id, creating it on first use.
func (m *SessionManager) Log(id string) *DayLog {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		s = &session{log: NewDayLog(m.goals)}
		m.sessions[id] = s
	}
	s.lastSeen = time.Now()
	return s.log
}

// Count returns the number of live sessions.
func (m *SessionManager) Count() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.sessions)
}

// sweepExpired discards idle sessions periodically.
func (m *SessionManager) sweepExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mutex.Lock()
		cutoff := time.Now().Add(-m.ttl)
		for id, s := range m.sessions {
			if s.lastSeen.Before(cutoff) {
				delete(m.sessions, id)
			}
		}
		m.mutex.Unlock()
	}
}
