package live_fx

import (
	"github.com/lib/pq"
	"go.uber.org/fx"

	"tripmate/internal/infra"
	"tripmate/internal/repositories"
	"tripmate/internal/services"
)

var Module = fx.Provide(provideListener, provideLiveService)

func provideListener() *pq.Listener {
	return infra.NewTripEventListener()
}

func provideLiveService(listener *pq.Listener, tripRepo repositories.TripRepository, itinerary services.ItineraryServiceInterface, expenses services.ExpenseServiceInterface, chat services.ChatServiceInterface) services.LiveServiceInterface {
	return services.NewLiveService(listener, tripRepo, itinerary, expenses, chat)
}
