package normalize

import (
	"sort"
	"time"

	"tripmate/internal/models/response_models"
)

// NormalizeMessages renders stored chat records as the transcript view,
// sorted ascending by timestamp. Author resolution mirrors the expense
// payer ladder; an unreadable timestamp becomes the normalization time so
// the message still renders in roughly the right place.
func NormalizeMessages(records []map[string]interface{}, lookup MemberLookup) []response_models.MessageView {
	now := time.Now()
	out := make([]response_models.MessageView, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		text := firstString(rec, "message", "text", "content")
		if text == "" {
			continue
		}
		ts, _ := firstPresentTimestamp(rec, "timestamp", "ts", "createdAt", "created_at")
		out = append(out, response_models.MessageView{
			ID:        firstString(rec, "id"),
			User:      resolveAuthor(rec, lookup),
			Message:   text,
			Timestamp: coerceTimestamp(ts, now),
			Status:    firstString(rec, "status"),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

func resolveAuthor(rec map[string]interface{}, lookup MemberLookup) response_models.MessageUser {
	for _, key := range []string{"user", "author", "sender"} {
		switch author := rec[key].(type) {
		case map[string]interface{}:
			name := firstString(author, "name", "displayName", "userName")
			if name == "" {
				if id := firstString(author, "id", "userId", "uid"); id != "" {
					m := lookup.Resolve(id)
					return response_models.MessageUser{Name: m.Name, Avatar: m.Avatar}
				}
				continue
			}
			return response_models.MessageUser{
				Name:   name,
				Avatar: firstString(author, "avatar", "photoURL", "photoUrl"),
			}
		case string:
			if author != "" {
				return response_models.MessageUser{Name: author}
			}
		}
	}
	if name := firstString(rec, "userName", "user_name"); name != "" {
		return response_models.MessageUser{Name: name}
	}
	if id := firstString(rec, "userId", "authorId", "uid"); id != "" {
		m := lookup.Resolve(id)
		return response_models.MessageUser{Name: m.Name, Avatar: m.Avatar}
	}
	return response_models.MessageUser{Name: UnknownName}
}
