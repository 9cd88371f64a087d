// Package storage persists ledger collections as whole serialized snapshots
// in named slots. It carries no domain semantics: each slot is an opaque
// blob written in full on every save and read once at process start.
package storage

import (
	"encoding/json"
	"errors"
	"time"

	apperrors "fintrack/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot names for the two durable snapshots.
const (
	SlotTransactions = "transactions"
	SlotBudgets      = "budgets"
)

// Slot is one named snapshot row.
type Slot struct {
	Name      string `gorm:"primaryKey;size:64"`
	Data      []byte `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM default pluralization.
func (Slot) TableName() string { return "slots" }

// SlotStore reads and writes snapshot slots through GORM.
type SlotStore struct {
	db *gorm.DB
}

// NewSlotStore creates a new SlotStore.
func NewSlotStore(db *gorm.DB) *SlotStore {
	return &SlotStore{db: db}
}

// Load unmarshals the named slot into dest. It returns false without an
// error when the slot has never been written, so callers can distinguish
// first-run from storage failure.
func (s *SlotStore) Load(name string, dest interface{}) (bool, error) {
	var slot Slot
	if err := s.db.First(&slot, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	if err := json.Unmarshal(slot.Data, dest); err != nil {
		return false, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return true, nil
}

// Save replaces the named slot's entire value. The upsert runs in a single
// statement, so a concurrent reader of the same slot never observes a
// partially written snapshot.
func (s *SlotStore) Save(name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	slot := Slot{Name: name, Data: data, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}
