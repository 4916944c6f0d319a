package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

const collectionAccounts = "accounts"

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionAccounts)}
}

// accountDoc stores the owning user id alongside the account fields.
type accountDoc struct {
	domain.AccountDetails `bson:",inline"`
	UserID                string `bson:"user_id"`
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.AccountDetails, userID string) (*domain.AccountDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{AccountDetails: *account, UserID: userID}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.ResponseError{Message: "Transactional account already exists"}
		}
		return nil, domain.NewDatabaseError("creating your account", "accounts.insert", err)
	}
	return account, nil
}

func (r *AccountRepository) FindByHash(ctx context.Context, hash string) (*domain.AccountDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"hash": hash}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("fetching account details", "accounts.find", err)
	}
	return &doc.AccountDetails, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, userID, accountID string) (*domain.AccountDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "account_id": accountID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("fetching account details", "accounts.find", err)
	}
	return &doc.AccountDetails, nil
}

func (r *AccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.AccountDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, domain.NewDatabaseError("fetching your accounts", "accounts.find", err)
	}
	defer cursor.Close(ctx)

	accounts := []*domain.AccountDetails{}
	for cursor.Next(ctx) {
		var doc accountDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, domain.NewDatabaseError("fetching your accounts", "accounts.decode", err)
		}
		details := doc.AccountDetails
		accounts = append(accounts, &details)
	}
	if err := cursor.Err(); err != nil {
		return nil, domain.NewDatabaseError("fetching your accounts", "accounts.cursor", err)
	}
	return accounts, nil
}

// ClearPrimary unsets the primary flag on every account the user owns.
func (r *AccountRepository) ClearPrimary(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx, bson.M{"user_id": userID, "primary": true},
		bson.M{"$set": bson.M{"primary": false, "updated_at": time.Now().UTC()}})
	if err != nil {
		return domain.NewDatabaseError("updating your accounts", "accounts.update", err)
	}
	return nil
}

// EnsureIndexes creates the lookup and uniqueness indexes for accounts.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "account_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hash", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	return err
}
