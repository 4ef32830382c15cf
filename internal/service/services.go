package service

import (
	"github.com/complyra/claimshield/internal/adapter"
	"github.com/complyra/claimshield/internal/config"
	"github.com/complyra/claimshield/internal/logger"
	"github.com/complyra/claimshield/internal/store"
)

type Services struct {
	AuthService   AuthService
	AppealService AppealService
	ClaimService  ClaimService
	ExportService ExportService
}

func NewServices(storages *store.Storages, ocr adapter.OCRClient, llm adapter.LLMClient, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		AppealService: NewAppealService(ocr, llm, logger),
		ClaimService:  NewClaimService(storages.ClaimRepository, logger),
		ExportService: NewExportService(logger),
	}
}
