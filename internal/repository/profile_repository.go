package repository

import (
	"errors"
	"sync"

	"healthme-backend/internal/model"
)

// ErrProfileNotFound is returned when a profile ID has no match in the store.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository is the session-scoped profile store, ordered newest
// first. It is the single owner of profile state; the scoring, classification
// and aggregation engines stay stateless over it.
type ProfileRepository interface {
	Add(profile model.StudentProfile)
	GetAll() []model.StudentProfile
	GetByID(id string) (*model.StudentProfile, error)
	Replace(profile model.StudentProfile) error
	Count() int
}

type profileRepository struct {
	mu       sync.RWMutex
	profiles []model.StudentProfile
}

// NewProfileRepository creates an empty in-memory profile store. State lives
// only for the process session; there is deliberately no persistence behind
// it.
func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Add(profile model.StudentProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = append([]model.StudentProfile{profile}, r.profiles...)
}

func (r *profileRepository) GetAll() []model.StudentProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.StudentProfile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

func (r *profileRepository) GetByID(id string) (*model.StudentProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.profiles {
		if r.profiles[i].ID == id {
			p := r.profiles[i]
			return &p, nil
		}
	}
	return nil, ErrProfileNotFound
}

// Replace swaps the stored profile with the same ID for the given value.
// Used by reassessment, which builds a fresh profile value with an appended
// history rather than mutating the stored one.
func (r *profileRepository) Replace(profile model.StudentProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.profiles {
		if r.profiles[i].ID == profile.ID {
			r.profiles[i] = profile
			return nil
		}
	}
	return ErrProfileNotFound
}

func (r *profileRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}
