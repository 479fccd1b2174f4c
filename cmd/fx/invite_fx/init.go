package invite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(provideInviteRepo, provideInviteService)

func provideInviteRepo(db *gorm.DB) repositories.InviteRepository {
	return repositories.NewInviteRepository(db)
}

func provideInviteService(inviteRepo repositories.InviteRepository, tripRepo repositories.TripRepository, trips services.TripServiceInterface, mail services.IMailService, notifier repositories.TripNotifier) services.InviteServiceInterface {
	return services.NewInviteService(inviteRepo, tripRepo, trips, mail, notifier)
}
