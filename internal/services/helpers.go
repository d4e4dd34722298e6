package services

import (
	"net/url"
	"strings"

	"mentorhub_backend/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// parseProfileID gates malformed identifiers before any lookup happens.
// kind is the lowercase record kind used in the client-facing message.
func parseProfileID(id, kind string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidID(kind)
	}
	return nil
}

// normalizeEmail folds the address for storage and comparison. Uniqueness is
// case-insensitive, so every path into the store goes through here.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dedupeSkills trims entries and drops case-insensitive duplicates, keeping
// the first occurrence. Skill lists never carry duplicate entries.
func dedupeSkills(items []string) pq.StringArray {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, item)
	}
	return result
}

// defaultAvatarURL builds the generated placeholder used when a signup comes
// in without a profile image.
func defaultAvatarURL(firstName, lastName string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(firstName+" "+lastName)
}
