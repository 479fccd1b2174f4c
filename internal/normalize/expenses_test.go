package normalize

import "testing"

func TestNormalizeExpenses(t *testing.T) {
	lookup := BuildMemberLookup([]map[string]interface{}{
		{"id": "u1", "name": "Alice"},
	})

	t.Run("payer resolution ladder", func(t *testing.T) {
		records := []map[string]interface{}{
			{"id": "e1", "description": "Taxi", "amount": float64(20), "paidBy": map[string]interface{}{"name": "Bob"}},
			{"id": "e2", "description": "Lunch", "amount": float64(35), "paidBy": "Carol"},
			{"id": "e3", "description": "Tickets", "amount": float64(50), "paidByUserId": "u1"},
			{"id": "e4", "description": "Mystery", "amount": float64(5)},
		}
		out := NormalizeExpenses(records, lookup)
		if len(out) != 4 {
			t.Fatalf("expected 4 expenses, got %d", len(out))
		}
		want := []string{"Bob", "Carol", "Alice", UnknownName}
		for i, w := range want {
			if out[i].PaidBy.Name != w {
				t.Fatalf("record %d: expected payer %q, got %q", i, w, out[i].PaidBy.Name)
			}
		}
	})

	t.Run("malformed amount degrades to zero", func(t *testing.T) {
		out := NormalizeExpenses([]map[string]interface{}{
			{"id": "e1", "description": "Broken", "amount": "abc"},
			{"id": "e2", "description": "Missing"},
		}, lookup)
		for _, e := range out {
			if e.Amount != 0 {
				t.Fatalf("expected amount 0, got %v", e.Amount)
			}
		}
		if out[0].Description != "Broken" || out[1].Description != "Missing" {
			t.Fatalf("descriptions must survive: %+v", out)
		}
	})

	t.Run("string amounts are parsed", func(t *testing.T) {
		out := NormalizeExpenses([]map[string]interface{}{
			{"id": "e1", "description": "Dinner", "amount": "42.50"},
		}, lookup)
		if out[0].Amount != 42.5 {
			t.Fatalf("expected 42.5, got %v", out[0].Amount)
		}
	})

	t.Run("append order preserved", func(t *testing.T) {
		out := NormalizeExpenses([]map[string]interface{}{
			{"id": "b", "description": "second", "amount": float64(2)},
			{"id": "a", "description": "first", "amount": float64(1)},
		}, lookup)
		if out[0].ID != "b" || out[1].ID != "a" {
			t.Fatalf("order changed: %+v", out)
		}
	})
}
