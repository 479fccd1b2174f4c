package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/normalize"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type ExpenseServiceInterface interface {
	AddExpense(ctx context.Context, caller Caller, tripID string, req request_models.AddExpenseRequest) (string, error)
	ListExpenses(ctx context.Context, callerID, tripID string) ([]response_models.ExpenseView, error)
	View(ctx context.Context, tripID string) ([]response_models.ExpenseView, error)
}

type ExpenseService struct {
	tripRepo    repositories.TripRepository
	expenseRepo repositories.ExpenseRepository
	trips       TripServiceInterface
	notifier    repositories.TripNotifier
}

func NewExpenseService(tripRepo repositories.TripRepository, expenseRepo repositories.ExpenseRepository, trips TripServiceInterface, notifier repositories.TripNotifier) ExpenseServiceInterface {
	return &ExpenseService{
		tripRepo:    tripRepo,
		expenseRepo: expenseRepo,
		trips:       trips,
		notifier:    notifier,
	}
}

func (s *ExpenseService) AddExpense(ctx context.Context, caller Caller, tripID string, req request_models.AddExpenseRequest) (string, error) {
	trip, err := s.trips.RequireMember(ctx, caller.ID, tripID)
	if err != nil {
		return "", err
	}

	record := db_models.JSONMap{
		"description": req.Description,
		"amount":      req.Amount,
	}
	switch {
	case req.PaidBy != "":
		record["paidBy"] = req.PaidBy
	case req.PaidByUserID != "":
		record["paidByUserId"] = req.PaidByUserID
	default:
		record["paidByUserId"] = caller.ID
	}

	expense := &db_models.Expense{TripID: trip.ID, Record: record}
	if err := s.expenseRepo.Insert(ctx, expense); err != nil {
		return "", utils.ErrDatabaseError
	}

	notifyTripEvent(ctx, s.notifier, tripID, repositories.EventExpenses)
	return expense.ID.String(), nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, callerID, tripID string) ([]response_models.ExpenseView, error) {
	if _, err := s.trips.RequireMember(ctx, callerID, tripID); err != nil {
		return nil, err
	}
	return s.View(ctx, tripID)
}

func (s *ExpenseService) View(ctx context.Context, tripID string) ([]response_models.ExpenseView, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	expenses, err := s.expenseRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	records := make([]map[string]interface{}, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, withRowFields(e.Record, e.ID.String(), e.CreatedAt))
	}

	lookup := normalize.BuildMemberLookup(trip.Members)
	return normalize.NormalizeExpenses(records, lookup), nil
}

// withRowFields merges the row's generated id and creation time into the
// stored document without mutating it.
func withRowFields(record db_models.JSONMap, id string, createdAt int64) map[string]interface{} {
	out := make(map[string]interface{}, len(record)+2)
	for k, v := range record {
		out[k] = v
	}
	out["id"] = id
	if _, ok := out["createdAt"]; !ok {
		out["createdAt"] = createdAt
	}
	return out
}
