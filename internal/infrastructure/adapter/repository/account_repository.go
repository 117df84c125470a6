package repository

import (
	"context"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements persistence.AccountRepository on a SQL table via gorm
type AccountRepository struct {
	manager *database.Manager
	db      *gorm.DB
	retry   database.RetryConfig
	logger  coreport.Logger
}

// NewAccountRepository creates a repository on a connected manager
func NewAccountRepository(manager *database.Manager, logger coreport.Logger) persistence.AccountRepository {
	logger.Info("SQL account store ready", map[string]any{"driver": manager.Driver()})
	return &AccountRepository{
		manager: manager,
		db:      manager.DB(),
		retry:   database.DefaultRetryConfig(),
		logger:  logger,
	}
}

func modelToEntity(m *model.Account) *entity.Account {
	return &entity.Account{
		UserID:    m.UserID,
		Username:  m.Username,
		Points:    m.Points,
		UpdatedAt: m.UpdatedAt,
	}
}

// Get retrieves an account by user ID
func (r *AccountRepository) Get(ctx context.Context, userID int64) (*entity.Account, error) {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var row model.Account
	err := database.RetryOnTransientError(ctx, r.retry, func() error {
		return r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&row).Error
	}, r.logger)
	if err != nil {
		return nil, r.manager.ErrorMapper().MapError(err, "get", userID)
	}

	return modelToEntity(&row), nil
}

// Set writes the whole record, replacing username and points when the row already exists
func (r *AccountRepository) Set(ctx context.Context, account *entity.Account) error {
	if account.UserID == 0 {
		return errs.ErrInvalidUserID
	}

	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	row := model.Account{
		UserID:    account.UserID,
		Username:  account.Username,
		Points:    account.Points,
		CreatedAt: account.UpdatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	err := database.RetryOnTransientError(ctx, r.retry, func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "points", "updated_at"}),
		}).Create(&row).Error
	}, r.logger)
	if err != nil {
		return r.manager.ErrorMapper().MapError(err, "set", account.UserID)
	}

	r.logger.Debug("Account stored", map[string]any{
		"user_id": account.UserID,
		"points":  account.Points,
	})
	return nil
}

// Update writes username and points onto an existing row
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	ctx, cancel := r.manager.WithTimeout(ctx)
	defer cancel()

	var affected int64
	err := database.RetryOnTransientError(ctx, r.retry, func() error {
		result := r.db.WithContext(ctx).Model(&model.Account{}).
			Where("user_id = ?", account.UserID).
			Updates(map[string]interface{}{
				"username":   account.Username,
				"points":     account.Points,
				"updated_at": account.UpdatedAt,
			})
		affected = result.RowsAffected
		return result.Error
	}, r.logger)
	if err != nil {
		return r.manager.ErrorMapper().MapError(err, "update", account.UserID)
	}
	if affected == 0 {
		return errs.ErrAccountNotFound
	}

	r.logger.Debug("Account updated", map[string]any{
		"user_id": account.UserID,
		"points":  account.Points,
	})
	return nil
}

// Close closes the underlying connection pool
func (r *AccountRepository) Close() error {
	return r.manager.Close()
}
