package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

const collectionTransactions = "transactions"

type TransactionRepository struct {
	col *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{col: db.Collection(collectionTransactions)}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.TransactionDetails) (*domain.TransactionDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, tx); err != nil {
		return nil, domain.NewDatabaseError("recording your transaction", "transactions.insert", err)
	}
	return tx, nil
}

func (r *TransactionRepository) ListByAccount(ctx context.Context, userID, accountID string) ([]*domain.TransactionDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID, "account_id": accountID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, domain.NewDatabaseError("fetching your transactions", "transactions.find", err)
	}
	defer cursor.Close(ctx)

	entries := []*domain.TransactionDetails{}
	for cursor.Next(ctx) {
		var t domain.TransactionDetails
		if err := cursor.Decode(&t); err != nil {
			return nil, domain.NewDatabaseError("fetching your transactions", "transactions.decode", err)
		}
		entries = append(entries, &t)
	}
	if err := cursor.Err(); err != nil {
		return nil, domain.NewDatabaseError("fetching your transactions", "transactions.cursor", err)
	}
	return entries, nil
}
