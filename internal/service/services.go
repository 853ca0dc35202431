package service

import (
	"github.com/dom/garden-manager/internal/config"
	"github.com/dom/garden-manager/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Plan      *PlanService
	Diagnosis *DiagnosisService
	Garden    *GardenService
	Journal   *JournalService
}

func NewServices(repos *repository.Repositories, chat ChatCompleter, mailer Mailer, cfg *config.Config) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User, mailer, cfg),
		Plan:      NewPlanService(repos.Garden, chat),
		Diagnosis: NewDiagnosisService(repos.Diagnosis, chat),
		Garden:    NewGardenService(repos.Garden),
		Journal:   NewJournalService(repos.Journal, repos.Garden),
	}
}
