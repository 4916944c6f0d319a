package domain

import (
	"time"
)

// Gender enumerates the accepted profile genders.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func validGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// SecurityQuestion is a question/answer pair kept on the profile.
type SecurityQuestion struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// NewProfileParams carries the raw profile-update input. Zero values mean
// "field not provided"; the update use-case only persists provided fields.
type NewProfileParams struct {
	UserID            string
	About             string
	FunFacts          string
	Gender            Gender
	OtherGender       string
	DateOfBirth       string
	Nationality       string
	PlaceOfBirth      string
	PinCode           string
	Metadata          map[string]string
	SecurityQuestions []SecurityQuestion
	TwoFa             bool
	TwoFaCode         string
	Avatar            *FileUpload
	Cover             *FileUpload
	Source            *Source
}

// Profile is a validated profile-update entity. Construct via NewProfile.
type Profile struct {
	userID            string
	about             string
	funFacts          string
	gender            Gender
	otherGender       string
	dateOfBirth       *time.Time
	nationality       string
	placeOfBirth      string
	pinCode           string
	metadata          map[string]string
	securityQuestions []SecurityQuestion
	twoFa             bool
	twoFaCode         string
	avatar            *FileUpload
	cover             *FileUpload
	source            *Source
}

// NewProfile validates raw input and returns the entity or a typed error.
func NewProfile(p NewProfileParams) (*Profile, error) {
	if p.UserID == "" {
		return nil, ErrNotAuthorized()
	}

	if p.Gender != "" && !validGender(p.Gender) {
		return nil, errValidation("Invalid gender. should be one of %s, %s, %s", GenderMale, GenderFemale, GenderOther)
	}
	if p.Gender == GenderOther && p.OtherGender == "" {
		return nil, errRequired("Other gender is required", "otherGender")
	}

	var dob *time.Time
	if p.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", p.DateOfBirth)
		if err != nil {
			return nil, errValidation("Invalid date of birth. Accepted format is YYYY-MM-DD")
		}
		dob = &parsed
	}

	if p.PinCode != "" {
		for _, r := range p.PinCode {
			if r < '0' || r > '9' {
				return nil, errValidation("Transaction pin code must be a valid number")
			}
		}
		if len(p.PinCode) != 4 {
			return nil, errValidation("Transacional pin code should be exactly 4 numbers")
		}
	}

	if p.Avatar != nil && !IsSupportedImage(p.Avatar.ContentType) {
		return nil, errValidation("Unsupported profile image file")
	}
	if p.Cover != nil && !IsSupportedImage(p.Cover.ContentType) {
		return nil, errValidation("Unsupported profile cover file")
	}

	if p.TwoFa && p.TwoFaCode == "" {
		return nil, errRequired("Multi-factor authentication code is required", "twoFaCode")
	}

	return &Profile{
		userID:            p.UserID,
		about:             p.About,
		funFacts:          p.FunFacts,
		gender:            p.Gender,
		otherGender:       p.OtherGender,
		dateOfBirth:       dob,
		nationality:       p.Nationality,
		placeOfBirth:      p.PlaceOfBirth,
		pinCode:           p.PinCode,
		metadata:          p.Metadata,
		securityQuestions: p.SecurityQuestions,
		twoFa:             p.TwoFa,
		twoFaCode:         p.TwoFaCode,
		avatar:            p.Avatar,
		cover:             p.Cover,
		source:            p.Source,
	}, nil
}

func (p *Profile) UserID() string                        { return p.userID }
func (p *Profile) About() string                         { return p.about }
func (p *Profile) FunFacts() string                      { return p.funFacts }
func (p *Profile) Gender() Gender                        { return p.gender }
func (p *Profile) OtherGender() string                   { return p.otherGender }
func (p *Profile) DateOfBirth() *time.Time               { return p.dateOfBirth }
func (p *Profile) Nationality() string                   { return p.nationality }
func (p *Profile) PlaceOfBirth() string                  { return p.placeOfBirth }
func (p *Profile) PinCode() string                       { return p.pinCode }
func (p *Profile) Metadata() map[string]string           { return p.metadata }
func (p *Profile) SecurityQuestions() []SecurityQuestion { return p.securityQuestions }
func (p *Profile) TwoFa() bool                           { return p.twoFa }
func (p *Profile) TwoFaCode() string                     { return p.twoFaCode }
func (p *Profile) Avatar() *FileUpload                   { return p.avatar }
func (p *Profile) Cover() *FileUpload                    { return p.cover }
func (p *Profile) Source() *Source                       { return p.source }

// ProfileDetails is the persisted profile record as read back from storage.
// The 2FA secret never leaves the server.
type ProfileDetails struct {
	UserID            string             `json:"user_id" bson:"user_id"`
	Hash              string             `json:"-" bson:"hash"`
	About             string             `json:"about,omitempty" bson:"about,omitempty"`
	FunFacts          string             `json:"fun_facts,omitempty" bson:"fun_facts,omitempty"`
	Gender            Gender             `json:"gender,omitempty" bson:"gender,omitempty"`
	OtherGender       string             `json:"other_gender,omitempty" bson:"other_gender,omitempty"`
	DateOfBirth       *time.Time         `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	Nationality       string             `json:"nationality,omitempty" bson:"nationality,omitempty"`
	PlaceOfBirth      string             `json:"place_of_birth,omitempty" bson:"place_of_birth,omitempty"`
	PinCode           string             `json:"-" bson:"pin_code,omitempty"`
	Metadata          map[string]string  `json:"metadata,omitempty" bson:"metadata,omitempty"`
	SecurityQuestions []SecurityQuestion `json:"-" bson:"security_questions,omitempty"`
	TwoFa             bool               `json:"two_fa" bson:"two_fa"`
	TwoFaSecret       string             `json:"-" bson:"two_fa_secret,omitempty"`
	AvatarID          string             `json:"-" bson:"avatar_id,omitempty"`
	CoverID           string             `json:"-" bson:"cover_id,omitempty"`
	Avatar            *FileDetails       `json:"avatar,omitempty" bson:"-"`
	Cover             *FileDetails       `json:"cover,omitempty" bson:"-"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProfileUpdate is the partial persistence payload built from provided fields
// only. Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	UserID            string
	About             *string
	FunFacts          *string
	Gender            *Gender
	OtherGender       *string
	DateOfBirth       *time.Time
	Nationality       *string
	PlaceOfBirth      *string
	PinCode           *string
	Metadata          map[string]string
	SecurityQuestions []SecurityQuestion
	TwoFa             *bool
	TwoFaSecret       *string
	AvatarID          *string
	CoverID           *string
}

// Empty reports whether the update carries no field besides the user scope.
func (u *ProfileUpdate) Empty() bool {
	return u.About == nil && u.FunFacts == nil && u.Gender == nil && u.OtherGender == nil &&
		u.DateOfBirth == nil && u.Nationality == nil && u.PlaceOfBirth == nil && u.PinCode == nil &&
		u.Metadata == nil && u.SecurityQuestions == nil && u.TwoFa == nil && u.TwoFaSecret == nil &&
		u.AvatarID == nil && u.CoverID == nil
}
