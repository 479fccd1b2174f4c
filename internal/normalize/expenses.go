package normalize

import (
	"time"

	"tripmate/internal/models/response_models"
)

// NormalizeExpenses renders stored expense records as the canonical ledger
// view, in append order. One malformed record never blocks the rest of the
// ledger: a broken amount becomes 0, a broken payer becomes "Unknown".
func NormalizeExpenses(records []map[string]interface{}, lookup MemberLookup) []response_models.ExpenseView {
	now := time.Now()
	out := make([]response_models.ExpenseView, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		view := response_models.ExpenseView{
			ID:          firstString(rec, "id"),
			Description: firstString(rec, "description", "title", "desc"),
			Amount:      firstNumber(rec, 0, "amount", "value", "cost"),
			PaidBy:      resolvePaidBy(rec, lookup),
		}
		if ts, ok := firstPresentTimestamp(rec, "createdAt", "created_at", "date"); ok {
			view.CreatedAt = coerceTimestamp(ts, now)
		}
		out = append(out, view)
	}
	return out
}

// resolvePaidBy applies the payer resolution ladder: object with a name,
// bare string, member-id lookup, then "Unknown".
func resolvePaidBy(rec map[string]interface{}, lookup MemberLookup) response_models.PaidBy {
	switch payer := rec["paidBy"].(type) {
	case map[string]interface{}:
		if name := firstString(payer, "name", "displayName", "userName"); name != "" {
			return response_models.PaidBy{Name: name}
		}
		if id := firstString(payer, "id", "userId", "uid"); id != "" {
			return response_models.PaidBy{Name: lookup.Resolve(id).Name}
		}
	case string:
		if payer != "" {
			return response_models.PaidBy{Name: payer}
		}
	}
	if id := firstString(rec, "paidByUserId", "paidById", "payerId"); id != "" {
		return response_models.PaidBy{Name: lookup.Resolve(id).Name}
	}
	return response_models.PaidBy{Name: UnknownName}
}

func firstPresentTimestamp(m map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
