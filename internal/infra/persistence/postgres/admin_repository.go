package postgres

import (
	"context"
	"time"

	"guildbook/internal/domain/entity"
	domainerrors "guildbook/internal/domain/errors"
	"guildbook/internal/domain/repository"
	"guildbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin credential repository
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) Get(ctx context.Context) (*entity.AdminCredential, error) {
	var cred model.AdminCredentialModel
	if err := repo.db.WithContext(ctx).Where("id = ?", model.AdminSingletonID).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrAdminNotFound)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load admin credential")
	}

	return &entity.AdminCredential{
		PasswordHash: cred.PasswordHash,
		UpdatedAt:    cred.UpdatedAt,
	}, nil
}

func (repo *adminRepository) Save(ctx context.Context, cred *entity.AdminCredential) error {
	row := &model.AdminCredentialModel{
		ID:           model.AdminSingletonID,
		PasswordHash: cred.PasswordHash,
		UpdatedAt:    time.Now().UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		return translateWriteError(err, "failed to save admin credential")
	}
	cred.UpdatedAt = row.UpdatedAt

	return nil
}
