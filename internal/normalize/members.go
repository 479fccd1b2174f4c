package normalize

import "tripmate/internal/models/response_models"

const UnknownName = "Unknown"

// MemberLookup resolves a member id (or, for legacy id-less entries, a
// display name) to the member's profile fields.
type MemberLookup map[string]response_models.MemberInfo

// BuildMemberLookup flattens a trip's member array into a lookup table.
// Entries arrive flat ({id,name,...}) or nested ({user:{...}}); an entry
// with no usable id falls back to its name as the key. Total: a hopeless
// entry degrades to "Unknown" rather than failing the table.
func BuildMemberLookup(entries []map[string]interface{}) MemberLookup {
	lookup := MemberLookup{}
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		merged := entry
		if user := asMap(entry["user"]); user != nil {
			merged = make(map[string]interface{}, len(entry)+len(user))
			for k, v := range entry {
				merged[k] = v
			}
			for k, v := range user {
				merged[k] = v
			}
		}

		info := response_models.MemberInfo{
			ID:     firstString(merged, "id", "userId", "uid", "user_id"),
			Name:   firstString(merged, "name", "displayName", "userName", "display_name"),
			Avatar: firstString(merged, "avatar", "photoURL", "photoUrl", "avatarUrl"),
			Role:   firstString(merged, "role"),
			Status: firstString(merged, "status"),
		}
		if info.Name == "" {
			info.Name = UnknownName
		}

		key := info.ID
		if key == "" {
			// Legacy entries without a stable id key on the name. This can
			// collide for two members sharing a display name; the write
			// boundary rejects new id-less entries.
			key = info.Name
		}
		lookup[key] = info
	}
	return lookup
}

// Resolve returns the member for key, or an "Unknown" placeholder.
func (l MemberLookup) Resolve(key string) response_models.MemberInfo {
	if m, ok := l[key]; ok {
		return m
	}
	return response_models.MemberInfo{Name: UnknownName}
}

// Members lists the lookup in a stable canonical shape for responses.
func Members(entries []map[string]interface{}) []response_models.MemberInfo {
	out := make([]response_models.MemberInfo, 0, len(entries))
	seen := map[string]bool{}
	for _, entry := range entries {
		lookup := BuildMemberLookup([]map[string]interface{}{entry})
		for _, info := range lookup {
			key := info.ID
			if key == "" {
				key = info.Name
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, info)
		}
	}
	return out
}
