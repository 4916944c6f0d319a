package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// Activity is an append-only audit record of a notable account action.
type Activity struct {
	ActivityID  string            `json:"activity_id" bson:"activity_id"`
	UserID      string            `json:"user_id" bson:"user_id"`
	Title       string            `json:"title" bson:"title"`
	Description string            `json:"description" bson:"description"`
	Metadata    map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Hash        string            `json:"-" bson:"hash"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
}

// NewActivity stamps a fresh audit record for userID carrying the request
// source in its metadata. Extra key/value pairs are merged in.
func NewActivity(userID, title, description string, source *Source, extra map[string]string) *Activity {
	meta := map[string]string{
		"date":   time.Now().UTC().Format(time.RFC1123),
		"source": source.JSON(),
	}
	for k, v := range extra {
		meta[k] = v
	}
	return &Activity{
		ActivityID:  uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Metadata:    meta,
		Hash:        secure.MD5(secure.Reference()),
		CreatedAt:   time.Now().UTC(),
	}
}
