package controllers_fx

import (
	"go.uber.org/fx"

	"tripmate/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewTripController,
	controllers.NewItineraryController,
	controllers.NewExpenseController,
	controllers.NewChatController,
	controllers.NewInviteController,
	controllers.NewLiveController,
	controllers.NewHealthController,
)
