package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SRHSoulja/pengubook-backend/internal/domain/model"
	"github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
)

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new community repository.
func NewCommunityRepository(db *gorm.DB) repository.CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) FindByID(ctx context.Context, id string) (*model.Community, error) {
	var community model.Community
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&community).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find community: %w", err)
	}
	return &community, nil
}
