package infra

import (
	"log"
	"os"
	"time"

	"github.com/lib/pq"
)

// TripEventsChannel is the NOTIFY channel repositories publish trip change
// events on. Payloads are {"tripId":"...","kind":"..."}.
const TripEventsChannel = "trip_events"

// NewTripEventListener opens a dedicated LISTEN connection. The live view
// hub consumes its Notify channel; pq reconnects on its own.
func NewTripEventListener() *pq.Listener {
	dsn := os.Getenv("POSTGRES_URL")

	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("trip event listener: %v", err)
		}
	})
	if err := listener.Listen(TripEventsChannel); err != nil {
		log.Fatalf("listen %s: %v", TripEventsChannel, err)
	}
	return listener
}
