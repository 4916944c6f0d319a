package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

type ProfileRepository struct {
	col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{col: db.Collection(collectionProfiles)}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.ProfileDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var profile domain.ProfileDetails
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.NewDatabaseError("fetching profile details", "profiles.find", err)
	}
	return &profile, nil
}

// Update applies only the fields present in the partial payload and returns
// the record as persisted.
func (r *ProfileRepository) Update(ctx context.Context, update *domain.ProfileUpdate) (*domain.ProfileDetails, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.About != nil {
		set["about"] = *update.About
	}
	if update.FunFacts != nil {
		set["fun_facts"] = *update.FunFacts
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.OtherGender != nil {
		set["other_gender"] = *update.OtherGender
	}
	if update.DateOfBirth != nil {
		set["date_of_birth"] = *update.DateOfBirth
	}
	if update.Nationality != nil {
		set["nationality"] = *update.Nationality
	}
	if update.PlaceOfBirth != nil {
		set["place_of_birth"] = *update.PlaceOfBirth
	}
	if update.PinCode != nil {
		set["pin_code"] = *update.PinCode
	}
	if update.Metadata != nil {
		set["metadata"] = update.Metadata
	}
	if update.SecurityQuestions != nil {
		set["security_questions"] = update.SecurityQuestions
	}
	if update.TwoFa != nil {
		set["two_fa"] = *update.TwoFa
	}
	if update.TwoFaSecret != nil {
		set["two_fa_secret"] = *update.TwoFaSecret
	}
	if update.AvatarID != nil {
		set["avatar_id"] = *update.AvatarID
	}
	if update.CoverID != nil {
		set["cover_id"] = *update.CoverID
	}

	if _, err := r.col.UpdateOne(ctx, bson.M{"user_id": update.UserID}, bson.M{"$set": set}); err != nil {
		return nil, domain.NewDatabaseError("updating your profile", "profiles.update", err)
	}
	return r.FindByUserID(ctx, update.UserID)
}

func (r *ProfileRepository) SetTwoFaSecret(ctx context.Context, userID, secret string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"two_fa_secret": secret, "updated_at": time.Now().UTC()}})
	if err != nil {
		return domain.NewDatabaseError("saving your 2FA secret", "profiles.update", err)
	}
	return nil
}
