package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideActivityRepo,
	provideExpenseRepo,
	provideMessageRepo,
	provideTripService,
	provideItineraryService,
	provideExpenseService,
	provideChatService,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideMessageRepo(db *gorm.DB) repositories.MessageRepository {
	return repositories.NewMessageRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository, activityRepo repositories.ActivityRepository, notifier repositories.TripNotifier) services.TripServiceInterface {
	return services.NewTripService(tripRepo, activityRepo, notifier)
}

func provideItineraryService(tripRepo repositories.TripRepository, activityRepo repositories.ActivityRepository, trips services.TripServiceInterface, notifier repositories.TripNotifier) services.ItineraryServiceInterface {
	return services.NewItineraryService(tripRepo, activityRepo, trips, notifier)
}

func provideExpenseService(tripRepo repositories.TripRepository, expenseRepo repositories.ExpenseRepository, trips services.TripServiceInterface, notifier repositories.TripNotifier) services.ExpenseServiceInterface {
	return services.NewExpenseService(tripRepo, expenseRepo, trips, notifier)
}

func provideChatService(tripRepo repositories.TripRepository, messageRepo repositories.MessageRepository, trips services.TripServiceInterface, notifier repositories.TripNotifier) services.ChatServiceInterface {
	return services.NewChatService(tripRepo, messageRepo, trips, notifier)
}
