package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/SRHSoulja/pengubook-backend/internal/adapter/repository"
	domainRepo "github.com/SRHSoulja/pengubook-backend/internal/domain/repository"
)

// Repositories holds all repository instances.
type Repositories struct {
	Account   domainRepo.AccountRepository
	Community domainRepo.CommunityRepository
	CsrfToken domainRepo.CsrfTokenRepository
	AuditLog  domainRepo.AuditLogRepository
}

// NewRepositories creates new repository instances with database connection.
func NewRepositories(db *gorm.DB, logger *zap.Logger) *Repositories {
	return &Repositories{
		Account:   repository.NewAccountRepository(db, logger),
		Community: repository.NewCommunityRepository(db),
		CsrfToken: repository.NewCsrfTokenRepository(db, logger),
		AuditLog:  repository.NewAuditLogRepository(db),
	}
}
