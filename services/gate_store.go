package services

import (
	"sync"

	"supplier-app/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemoryStore keeps gate state in process memory. Used in tests and as a
// fallback when no database is attached.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok
}

func (m *MemoryStore) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// GormStore persists gate state in the gate_states table so lockouts
// survive restarts. Store errors are logged, not surfaced; a failed read
// behaves like an absent key.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (g *GormStore) Get(key string) (string, bool) {
	var state models.GateState
	if err := g.DB.Take(&state, "key = ?", key).Error; err != nil {
		return "", false
	}
	return state.Value, true
}

func (g *GormStore) Set(key, value string) {
	state := models.GateState{Key: key, Value: value}
	err := g.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&state).Error
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to persist gate state")
	}
}

func (g *GormStore) Delete(key string) {
	if err := g.DB.Delete(&models.GateState{}, "key = ?", key).Error; err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete gate state")
	}
}
