package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NormalizeIdentity maps a loosely shaped identity document onto a User.
// Upstream payloads have been observed both flat and wrapped; precedence is
// a nested "user" wrapper, then a nested "data" wrapper, then the flat
// document itself. Unrecognized fields are dropped, missing fields stay
// zero-valued.
func NormalizeIdentity(doc map[string]any) User {
	if w, ok := asMap(doc["user"]); ok {
		return normalizeFlat(w)
	}
	if w, ok := asMap(doc["data"]); ok {
		return normalizeFlat(w)
	}
	return normalizeFlat(doc)
}

func normalizeFlat(m map[string]any) User {
	var u User

	switch id := m["_id"].(type) {
	case primitive.ObjectID:
		u.ID = id
	case string:
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			u.ID = oid
		}
	}

	u.Name, _ = m["name"].(string)
	u.Email, _ = m["email"].(string)
	u.Phone, _ = m["phone"].(string)

	switch ts := m["createdAt"].(type) {
	case primitive.DateTime:
		u.CreatedAt = ts.Time()
	case time.Time:
		u.CreatedAt = ts
	}

	return u
}

// asMap tolerates both plain maps and bson.M, which decode interchangeably.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case primitive.M:
		return m, true
	default:
		return nil, false
	}
}
