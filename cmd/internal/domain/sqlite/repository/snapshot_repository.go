package repository

import (
	"errors"
	"processos/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *DefaultSnapshotRepository {
	return &DefaultSnapshotRepository{db: db}
}

// FindLatest returns the most recent snapshot with the given name, or nil if there is none.
func (r *DefaultSnapshotRepository) FindLatest(name string) (*entity.Snapshot, error) {
	var snapshot entity.Snapshot
	err := r.db.
		Where("name = ?", name).
		Order("created_at DESC").
		Order("id DESC").
		First(&snapshot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *DefaultSnapshotRepository) Save(snapshot *entity.Snapshot) error {
	return r.db.Save(snapshot).Error
}
