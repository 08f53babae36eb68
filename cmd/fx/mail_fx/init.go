package mail_fx

import (
	"go.uber.org/fx"

	"mcstudio/internal/config"
	"mcstudio/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.IMailService {
	return services.NewSMTPMailService(cfg.SMTP)
}
