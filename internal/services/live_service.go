package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/lib/pq"

	"tripmate/internal/normalize"
	"tripmate/internal/repositories"
)

// LiveEvent is what subscribers receive: the trip that changed, which
// collection changed, and the freshly built view of that collection.
type LiveEvent struct {
	TripID string      `json:"tripId"`
	Kind   string      `json:"kind"`
	Data   interface{} `json:"data"`
}

type LiveServiceInterface interface {
	// Subscribe registers a listener for one trip. The returned channel is
	// closed by Unsubscribe. Callers must have passed a membership check
	// before subscribing.
	Subscribe(tripID string) <-chan LiveEvent
	Unsubscribe(tripID string, ch <-chan LiveEvent)
	// Run consumes the Postgres notification stream until ctx is done.
	Run(ctx context.Context)
}

type LiveService struct {
	listener  *pq.Listener
	tripRepo  repositories.TripRepository
	itinerary ItineraryServiceInterface
	expenses  ExpenseServiceInterface
	chat      ChatServiceInterface

	mu   sync.Mutex
	subs map[string]map[chan LiveEvent]struct{}
}

func NewLiveService(listener *pq.Listener, tripRepo repositories.TripRepository, itinerary ItineraryServiceInterface, expenses ExpenseServiceInterface, chat ChatServiceInterface) LiveServiceInterface {
	return &LiveService{
		listener:  listener,
		tripRepo:  tripRepo,
		itinerary: itinerary,
		expenses:  expenses,
		chat:      chat,
		subs:      make(map[string]map[chan LiveEvent]struct{}),
	}
}

func (s *LiveService) Subscribe(tripID string) <-chan LiveEvent {
	ch := make(chan LiveEvent, 8)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subs[tripID] == nil {
		s.subs[tripID] = make(map[chan LiveEvent]struct{})
	}
	s.subs[tripID][ch] = struct{}{}
	return ch
}

func (s *LiveService) Unsubscribe(tripID string, ch <-chan LiveEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subs[tripID] {
		if sub == ch {
			delete(s.subs[tripID], sub)
			close(sub)
			break
		}
	}
	if len(s.subs[tripID]) == 0 {
		delete(s.subs, tripID)
	}
}

func (s *LiveService) Run(ctx context.Context) {
	ping := time.NewTicker(90 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-s.listener.Notify:
			if n == nil {
				// pq sends nil after a reconnect; views are rebuilt on the
				// next event anyway.
				continue
			}
			s.dispatch(ctx, n.Extra)
		case <-ping.C:
			go func() {
				if err := s.listener.Ping(); err != nil {
					log.Printf("live listener ping: %v", err)
				}
			}()
		}
	}
}

func (s *LiveService) dispatch(ctx context.Context, payload string) {
	var event repositories.TripEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		log.Printf("live event payload %q: %v", payload, err)
		return
	}

	s.mu.Lock()
	n := len(s.subs[event.TripID])
	s.mu.Unlock()
	if n == 0 {
		return // nobody watching this trip, skip the view rebuild
	}

	data, err := s.buildView(ctx, event)
	if err != nil {
		log.Printf("live view %s/%s: %v", event.TripID, event.Kind, err)
		return
	}
	if data == nil {
		// The trip vanished between write and dispatch.
		return
	}

	s.broadcast(event.TripID, LiveEvent{TripID: event.TripID, Kind: event.Kind, Data: data})
}

func (s *LiveService) buildView(ctx context.Context, event repositories.TripEvent) (interface{}, error) {
	switch event.Kind {
	case repositories.EventItinerary:
		return s.itinerary.View(ctx, event.TripID)
	case repositories.EventExpenses:
		return s.expenses.View(ctx, event.TripID)
	case repositories.EventMessages:
		return s.chat.View(ctx, event.TripID)
	case repositories.EventMembers:
		trip, err := s.tripRepo.FindByID(ctx, event.TripID)
		if err != nil || trip == nil {
			return nil, err
		}
		return normalize.Members(trip.Members), nil
	}
	return nil, nil
}

func (s *LiveService) broadcast(tripID string, event LiveEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subs[tripID] {
		select {
		case ch <- event:
		default:
			// Slow subscriber; it catches up on the next event rather than
			// stalling everyone else.
		}
	}
}
