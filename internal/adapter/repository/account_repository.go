package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/dto"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
)

// accountRepository implements the AccountRepository interface over GORM.
type accountRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB, logger *zap.Logger) repository.AccountRepository {
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByID returns the user, or nil when absent.
func (r *accountRepository) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// EraseUser removes or anonymizes every row owned by the user in one
// transaction. Hard-deletes run first, the sentinel account is ensured
// before any anonymization write, and the user row itself goes strictly
// last so no referencing row outlives its cleanup.
func (r *accountRepository) EraseUser(ctx context.Context, userID string) error {
	user, err := r.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return gorm.ErrRecordNotFound
	}

	args := matchArgs{UserID: userID}
	if user.WalletAddress != nil {
		args.Wallet = *user.WalletAddress
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range eraserSteps {
			if step.Disposition != hardDelete {
				continue
			}
			if err := r.applyStep(tx, step, args); err != nil {
				return err
			}
		}

		if err := ensureSentinel(tx); err != nil {
			return fmt.Errorf("failed to ensure sentinel user: %w", err)
		}

		for _, step := range eraserSteps {
			if step.Disposition == hardDelete {
				continue
			}
			if err := r.applyStep(tx, step, args); err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&model.Profile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}

		if err := tx.Where("id = ?", userID).Delete(&model.User{}).Error; err != nil {
			return fmt.Errorf("failed to delete user row: %w", err)
		}

		return nil
	})
}

func (r *accountRepository) applyStep(tx *gorm.DB, step eraseStep, args matchArgs) error {
	query, queryArgs := step.Match(args)
	if query == "" {
		return nil
	}

	switch step.Disposition {
	case hardDelete:
		res := tx.Where(query, queryArgs...).Delete(step.Model)
		if res.Error != nil {
			return fmt.Errorf("erase step %s: %w", step.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			r.logger.Debug("Erased rows",
				zap.String("table", step.Name),
				zap.Int64("rows", res.RowsAffected))
		}
	case anonymize:
		res := tx.Model(step.Model).Where(query, queryArgs...).Update(step.TargetField, model.SentinelUserID)
		if res.Error != nil {
			return fmt.Errorf("anonymize step %s: %w", step.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			r.logger.Debug("Anonymized rows",
				zap.String("table", step.Name),
				zap.Int64("rows", res.RowsAffected))
		}
	case redact:
		res := tx.Model(step.Model).Where(query, queryArgs...).Update(step.TargetField, model.RedactedTipMessage)
		if res.Error != nil {
			return fmt.Errorf("redact step %s: %w", step.Name, res.Error)
		}
	}

	return nil
}

// ensureSentinel creates the deleted-user account if it does not exist yet.
// Existing sentinel rows are never modified.
func ensureSentinel(tx *gorm.DB) error {
	var sentinel model.User
	return tx.Where(&model.User{ID: model.SentinelUserID}).
		Attrs(model.NewSentinelUser()).
		FirstOrCreate(&sentinel).Error
}

// CollectExport gathers everything the eraser would touch into one bundle,
// inside a single read-only transaction for a consistent snapshot.
func (r *accountRepository) CollectExport(ctx context.Context, userID string) (*dto.ExportBundle, error) {
	bundle := &dto.ExportBundle{
		ExportedAt: time.Now().UTC(),
		Content:    make(map[string]any),
		Personal:   make(map[string]any),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		bundle.User = &user

		args := matchArgs{UserID: userID}
		if user.WalletAddress != nil {
			args.Wallet = *user.WalletAddress
		}

		var profile model.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err == nil {
			bundle.Profile = &profile
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		for _, step := range eraserSteps {
			rows, err := collectRows(tx, step, args)
			if err != nil {
				return fmt.Errorf("export step %s: %w", step.Name, err)
			}
			if rows == nil {
				continue
			}
			if step.Disposition == hardDelete {
				bundle.Personal[step.Name] = rows
			} else {
				bundle.Content[step.Name] = rows
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return bundle, nil
}

// collectRows loads the step's rows into a typed slice built from the step
// model via reflection, so the export stays in lockstep with the step list.
func collectRows(tx *gorm.DB, step eraseStep, args matchArgs) (any, error) {
	query, queryArgs := step.Match(args)
	if query == "" {
		return nil, nil
	}

	modelType := reflect.TypeOf(step.Model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}
	slicePtr := reflect.New(reflect.SliceOf(modelType))

	if err := tx.Where(query, queryArgs...).Find(slicePtr.Interface()).Error; err != nil {
		return nil, err
	}

	return slicePtr.Elem().Interface(), nil
}
