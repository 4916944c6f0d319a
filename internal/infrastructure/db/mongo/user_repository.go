package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

const (
	collectionUsers    = "users"
	collectionProfiles = "profiles"
)

type UserRepository struct {
	users    *mongo.Collection
	profiles *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:    db.Collection(collectionUsers),
		profiles: db.Collection(collectionProfiles),
	}
}

// userDoc is the stored identity row. Credentials live alongside the identity
// fields but are never decoded into UserDetails.
type userDoc struct {
	UserID        string    `bson:"user_id"`
	FirstName     string    `bson:"first_name"`
	OtherNames    string    `bson:"other_names"`
	Email         string    `bson:"email"`
	Phone         string    `bson:"phone,omitempty"`
	Password      string    `bson:"password"`
	Salt          string    `bson:"salt"`
	Hash          string    `bson:"hash"`
	EmailVerified bool      `bson:"email_verified"`
	PhoneVerified bool      `bson:"phone_verified"`
	Status        string    `bson:"status"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func (d *userDoc) details() *domain.UserDetails {
	return &domain.UserDetails{
		UserID:        d.UserID,
		FirstName:     d.FirstName,
		OtherNames:    d.OtherNames,
		Email:         d.Email,
		Phone:         d.Phone,
		EmailVerified: d.EmailVerified,
		PhoneVerified: d.PhoneVerified,
		Status:        d.Status,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Create inserts the identity row and an empty profile row. A profile insert
// failure removes the identity row again so registration can be retried.
func (r *UserRepository) Create(ctx context.Context, rec *ports.CreateUserRecord) (*domain.UserDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := userDoc{
		UserID:     rec.UserID,
		FirstName:  rec.FirstName,
		OtherNames: rec.OtherNames,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Password:   rec.Password,
		Salt:       rec.Salt,
		Hash:       rec.Hash,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &domain.ResponseError{Message: "User already exists"}
		}
		return nil, domain.NewDatabaseError("creating your account", "users.insert", err)
	}

	profile := domain.ProfileDetails{
		UserID:    rec.UserID,
		Hash:      rec.Hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.profiles.InsertOne(ctx, profile); err != nil {
		_, _ = r.users.DeleteOne(ctx, bson.M{"user_id": rec.UserID})
		return nil, domain.NewDatabaseError("creating your account", "profiles.insert", err)
	}

	return doc.details(), nil
}

func (r *UserRepository) FindByHash(ctx context.Context, hash string) (*domain.UserDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"hash": hash}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("fetching account details", "users.find", err)
	}
	return doc.details(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID string, withProfile bool) (*domain.UserDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("fetching account details", "users.find", err)
	}

	details := doc.details()
	if withProfile {
		var profile domain.ProfileDetails
		err := r.profiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewDatabaseError("fetching profile details", "profiles.find", err)
		}
		if err == nil {
			details.Profile = &profile
		}
	}
	return details, nil
}

func (r *UserRepository) Credentials(ctx context.Context, q ports.CredentialsQuery) (*domain.Credentials, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if q.Email != "" {
		filter["email"] = q.Email
	}
	if q.UserID != "" {
		filter["user_id"] = q.UserID
	}
	if len(filter) == 0 {
		return nil, nil
	}

	var creds domain.Credentials
	if err := r.users.FindOne(ctx, filter).Decode(&creds); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("checking your credentials", "users.find", err)
	}
	return &creds, nil
}

func (r *UserRepository) VerifyEmail(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.users.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"email_verified": true, "updated_at": time.Now().UTC()}})
	if err != nil {
		return domain.NewDatabaseError("verifying your email", "users.update", err)
	}
	return nil
}

func (r *UserRepository) VerifyPhone(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.users.UpdateOne(ctx, bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"phone_verified": true, "updated_at": time.Now().UTC()}})
	if err != nil {
		return domain.NewDatabaseError("verifying your phone number", "users.update", err)
	}
	return nil
}

// EnsureIndexes creates the lookup and uniqueness indexes for users/profiles.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hash", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	})
	if err != nil {
		return err
	}
	_, err = r.profiles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}
