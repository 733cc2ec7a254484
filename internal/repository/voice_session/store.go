package voice_session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dinner-service/internal/entities"
	"dinner-service/internal/service/voice"
)

type entry struct {
	mu      sync.Mutex
	session entities.VoiceSession
	removed bool
}

// Store сессии живут в памяти процесса, при рестарте диалог начинается заново
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

func New() *Store {
	return &Store{sessions: make(map[string]*entry)}
}

func (s *Store) Create(_ context.Context, session entities.VoiceSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return fmt.Errorf("voice session %s already exists", session.ID)
	}
	s.sessions[session.ID] = &entry{session: cloneSession(session)}
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*entities.VoiceSession, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, voice.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed {
		return nil, voice.ErrSessionNotFound
	}
	session := cloneSession(e.session)
	return &session, nil
}

// Update fn получает копию, изменения сохраняются только при nil ошибке
func (s *Store) Update(
	ctx context.Context,
	id string,
	fn func(session *entities.VoiceSession) error,
) (*entities.VoiceSession, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, voice.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed {
		return nil, voice.ErrSessionNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	working := cloneSession(e.session)
	if err := fn(&working); err != nil {
		return nil, err
	}

	e.session = working
	result := cloneSession(working)
	return &result, nil
}

func (s *Store) DeleteIdleBefore(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, e := range s.sessions {
		// занятая сессия сейчас обновляется, значит не простаивает
		if !e.mu.TryLock() {
			continue
		}
		if e.session.UpdatedAt.Before(cutoff) {
			e.removed = true
			delete(s.sessions, id)
			deleted++
		}
		e.mu.Unlock()
	}
	return deleted, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) lookup(id string) (*entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	return e, ok
}

func cloneSession(session entities.VoiceSession) entities.VoiceSession {
	clone := session
	clone.State.MenuAdjustments = append([]entities.VoiceOrderItem(nil), session.State.MenuAdjustments...)
	clone.State.NeedsMoreInfo = append([]string(nil), session.State.NeedsMoreInfo...)
	return clone
}
