package normalize

import "tripmate/internal/models/db_models"

// ApplyReaction returns the reaction list after one user's like/dislike.
// At most one reaction per user: a repeat of the same type toggles it off,
// the opposite type replaces in place (no transient double entry).
// Pure; the caller persists the returned list.
func ApplyReaction(existing []db_models.Reaction, userID, userName, reactionType string) []db_models.Reaction {
	out := make([]db_models.Reaction, 0, len(existing)+1)
	found := false
	for _, r := range existing {
		if r.UserID != userID {
			out = append(out, r)
			continue
		}
		found = true
		if r.Type == reactionType {
			continue // toggle off
		}
		out = append(out, db_models.Reaction{UserID: userID, UserName: userName, Type: reactionType})
	}
	if !found {
		out = append(out, db_models.Reaction{UserID: userID, UserName: userName, Type: reactionType})
	}
	return out
}
