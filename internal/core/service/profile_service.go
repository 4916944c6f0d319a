package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// ProfileService applies partial profile updates. Only the fields present in
// the request are written; an update carrying nothing returns 304.
type ProfileService struct {
	profiles   ports.ProfileRepository
	files      ports.FileRepository
	store      ports.Store
	twofa      ports.TwoFa
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewProfileService(
	profiles ports.ProfileRepository,
	files ports.FileRepository,
	store ports.Store,
	twofa ports.TwoFa,
	activities ports.ActivityRecorder,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		profiles:   profiles,
		files:      files,
		store:      store,
		twofa:      twofa,
		activities: activities,
		logger:     logger,
	}
}

func (s *ProfileService) Update(ctx context.Context, p domain.NewProfileParams) (*ports.Response, error) {
	profile, err := domain.NewProfile(p)
	if err != nil {
		return nil, err
	}

	current, err := s.profiles.FindByUserID(ctx, profile.UserID())
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotAuthorized()
	}

	update := &domain.ProfileUpdate{UserID: profile.UserID()}
	if v := profile.About(); v != "" {
		update.About = &v
	}
	if v := profile.FunFacts(); v != "" {
		update.FunFacts = &v
	}
	if v := profile.Gender(); v != "" {
		update.Gender = &v
	}
	if v := profile.OtherGender(); v != "" {
		update.OtherGender = &v
	}
	if v := profile.DateOfBirth(); v != nil {
		update.DateOfBirth = v
	}
	if v := profile.Nationality(); v != "" {
		update.Nationality = &v
	}
	if v := profile.PlaceOfBirth(); v != "" {
		update.PlaceOfBirth = &v
	}
	if v := profile.PinCode(); v != "" {
		update.PinCode = &v
	}
	if v := profile.Metadata(); len(v) > 0 {
		update.Metadata = v
	}
	if v := profile.SecurityQuestions(); len(v) > 0 {
		update.SecurityQuestions = v
	}

	// Enabling 2FA through the profile requires a code that proves the user
	// already holds the issued secret.
	if profile.TwoFa() {
		if current.TwoFaSecret == "" {
			return nil, &domain.ResponseError{Message: "Your profile is not setup to use 2FA Verification. Login to your account and set it up first"}
		}
		if !s.twofa.Verify(current.TwoFaSecret, profile.TwoFaCode()) {
			return nil, &domain.ResponseError{Message: "Your verification code is invalid or has expired. Retry again"}
		}
		enabled := true
		update.TwoFa = &enabled
	}

	if avatar := profile.Avatar(); avatar != nil {
		record, err := uploadAndRecord(ctx, s.store, s.files, profile.UserID(), domain.StorageProfile,
			avatar, secure.MD5(fmt.Sprintf("%s%d", profile.UserID(), time.Now().UnixMilli())))
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, &domain.ResponseError{Message: "An error uploading your profile image"}
		}
		update.AvatarID = &record.ID
	}
	if cover := profile.Cover(); cover != nil {
		record, err := uploadAndRecord(ctx, s.store, s.files, profile.UserID(), domain.StorageProfile,
			cover, secure.MD5(fmt.Sprintf("%s%d", profile.UserID(), time.Now().UnixMilli())))
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, &domain.ResponseError{Message: "An error uploading your profile cover image"}
		}
		update.CoverID = &record.ID
	}

	if update.Empty() {
		s.activities.Record(domain.NewActivity(profile.UserID(), "Profile Update Unchanged",
			"A profile update request carried no changes", profile.Source(), nil))
		// net/http strips bodies on 304, so clients only observe the bare
		// status; the message is kept for direct callers of the service.
		return &ports.Response{
			Status:  http.StatusNotModified,
			Message: "No changes were detected",
		}, nil
	}

	updated, err := s.profiles.Update(ctx, update)
	if err != nil {
		return nil, err
	}

	s.activities.Record(domain.NewActivity(profile.UserID(), "Profile Changed",
		"User profile details were updated", profile.Source(), nil))
	s.logger.Info().Str("user_id", profile.UserID()).Msg("profile updated")

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Profile updated successfully",
		Item:    s.withFiles(ctx, updated),
	}, nil
}

// withFiles expands avatar/cover references into metadata rows.
func (s *ProfileService) withFiles(ctx context.Context, profile *domain.ProfileDetails) *domain.ProfileDetails {
	if profile == nil {
		return nil
	}

	var ids []string
	if profile.AvatarID != "" {
		ids = append(ids, profile.AvatarID)
	}
	if profile.CoverID != "" {
		ids = append(ids, profile.CoverID)
	}
	if len(ids) == 0 {
		return profile
	}

	records, err := s.files.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", profile.UserID).Msg("file expansion failed")
		return profile
	}
	for _, r := range records {
		switch r.ID {
		case profile.AvatarID:
			profile.Avatar = r
		case profile.CoverID:
			profile.Cover = r
		}
	}
	return profile
}
