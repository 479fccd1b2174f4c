package mail_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"

	"tripmate/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		UseSSL:     port == 465,
		RequireTLS: os.Getenv("SMTP_REQUIRE_TLS") == "true",
		AppName:    "TripMate",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	})
}
