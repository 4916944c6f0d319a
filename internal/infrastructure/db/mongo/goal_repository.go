package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

const collectionGoals = "goals"

type GoalRepository struct {
	col *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{col: db.Collection(collectionGoals)}
}

func (r *GoalRepository) Create(ctx context.Context, goal *domain.GoalDetails) (*domain.GoalDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, goal); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.ResponseError{Message: "A goal with this title already exists"}
		}
		return nil, domain.NewDatabaseError("creating your goal", "goals.insert", err)
	}
	return goal, nil
}

func (r *GoalRepository) FindByHash(ctx context.Context, hash string) (*domain.GoalDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var goal domain.GoalDetails
	if err := r.col.FindOne(ctx, bson.M{"hash": hash}).Decode(&goal); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("fetching goal details", "goals.find", err)
	}
	return &goal, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID string) ([]*domain.GoalDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, domain.NewDatabaseError("fetching your goals", "goals.find", err)
	}
	defer cursor.Close(ctx)

	goals := []*domain.GoalDetails{}
	for cursor.Next(ctx) {
		var g domain.GoalDetails
		if err := cursor.Decode(&g); err != nil {
			return nil, domain.NewDatabaseError("fetching your goals", "goals.decode", err)
		}
		goals = append(goals, &g)
	}
	if err := cursor.Err(); err != nil {
		return nil, domain.NewDatabaseError("fetching your goals", "goals.cursor", err)
	}
	return goals, nil
}
