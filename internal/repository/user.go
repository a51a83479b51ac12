package repository

import (
	"errors"

	"call-quality-backend/internal/database/models"
	apperrors "call-quality-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for portal users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new portal user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert inserts the user on first sight and refreshes the mutable profile
// fields on every later pass. Idempotent on manager_id.
func (r *UserRepository) Upsert(user *models.PortalUser) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "manager_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"active", "first_name", "last_name", "email", "region", "updated_at",
		}),
	}).Create(user).Error
}

// GetByManagerID retrieves a portal user by their Bitrix manager id
func (r *UserRepository) GetByManagerID(managerID int) (*models.PortalUser, error) {
	var user models.PortalUser
	err := r.db.First(&user, "manager_id = ?", managerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ManagerIDs returns the manager ids of every stored portal user
func (r *UserRepository) ManagerIDs() ([]int, error) {
	var ids []int
	err := r.db.Model(&models.PortalUser{}).Pluck("manager_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
