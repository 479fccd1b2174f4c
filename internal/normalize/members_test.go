package normalize

import "testing"

func TestBuildMemberLookup(t *testing.T) {
	t.Run("flat entries", func(t *testing.T) {
		lookup := BuildMemberLookup([]map[string]interface{}{
			{"id": "u1", "name": "Alice", "role": "Organizer", "status": "Confirmed"},
		})
		m := lookup.Resolve("u1")
		if m.Name != "Alice" || m.Role != "Organizer" {
			t.Fatalf("unexpected member: %+v", m)
		}
	})

	t.Run("nested user entries", func(t *testing.T) {
		lookup := BuildMemberLookup([]map[string]interface{}{
			{"role": "Member", "user": map[string]interface{}{"uid": "u2", "displayName": "Bob", "photoURL": "http://x/b.png"}},
		})
		m := lookup.Resolve("u2")
		if m.Name != "Bob" || m.Avatar != "http://x/b.png" || m.Role != "Member" {
			t.Fatalf("unexpected member: %+v", m)
		}
	})

	t.Run("id-less entry keys on name", func(t *testing.T) {
		lookup := BuildMemberLookup([]map[string]interface{}{
			{"name": "Carol"},
		})
		if lookup.Resolve("Carol").Name != "Carol" {
			t.Fatalf("name-keyed fallback missing: %+v", lookup)
		}
	})

	t.Run("hopeless entry degrades to Unknown", func(t *testing.T) {
		lookup := BuildMemberLookup([]map[string]interface{}{
			{"something": 42},
		})
		if lookup.Resolve(UnknownName).Name != UnknownName {
			t.Fatalf("expected Unknown entry, got %+v", lookup)
		}
	})

	t.Run("unresolved id resolves to Unknown", func(t *testing.T) {
		lookup := BuildMemberLookup(nil)
		if lookup.Resolve("missing").Name != UnknownName {
			t.Fatal("expected Unknown for missing id")
		}
	})
}

func TestMembers(t *testing.T) {
	t.Run("deduplicates by id", func(t *testing.T) {
		out := Members([]map[string]interface{}{
			{"id": "u1", "name": "Alice"},
			{"id": "u1", "name": "Alice"},
			{"id": "u2", "name": "Bob"},
		})
		if len(out) != 2 {
			t.Fatalf("expected 2 members, got %+v", out)
		}
	})
}
