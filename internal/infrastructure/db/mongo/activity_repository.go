package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

const collectionActivities = "activities"

type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivities)}
}

// Create appends an audit record. The collection is append-only.
func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, activity); err != nil {
		return domain.NewDatabaseError("recording account activity", "activities.insert", err)
	}
	return nil
}
