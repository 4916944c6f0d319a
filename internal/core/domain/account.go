package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// AccountType enumerates the supported ledger kinds.
type AccountType string

const (
	AccountCash   AccountType = "cash"
	AccountCard   AccountType = "card"
	AccountMobile AccountType = "mobile"
	AccountBank   AccountType = "bank"
)

var accountTypes = []AccountType{AccountCash, AccountCard, AccountMobile, AccountBank}

func validAccountType(t AccountType) bool {
	for _, a := range accountTypes {
		if a == t {
			return true
		}
	}
	return false
}

// NewAccountParams carries the raw account-creation input. Balance arrives as
// a string so the entity can reject non-numeric input the same way for form
// and JSON payloads.
type NewAccountParams struct {
	ID          string
	UserID      string
	AccountType AccountType
	Balance     string
	Currency    string
	Title       string
	Description string
	Primary     bool
	Metadata    map[string]string
	Image       *FileUpload
	Files       []*FileUpload
	Source      *Source
}

// Account is a validated account-creation entity. Construct via NewAccount.
type Account struct {
	id          string
	userID      string
	accountType AccountType
	balance     float64
	currency    string
	title       string
	description string
	primary     bool
	metadata    map[string]string
	image       *FileUpload
	files       []*FileUpload
	source      *Source
	hash        string
}

// NewAccount validates raw input and returns the entity or a typed error.
// All checks run before any persistence call.
func NewAccount(p NewAccountParams) (*Account, error) {
	if p.UserID == "" {
		return nil, ErrNotAuthorized()
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, errValidation("Account ID is invalid")
	}

	if p.AccountType == "" {
		return nil, errRequired("Account Type is required", "accountType")
	}
	if !validAccountType(p.AccountType) {
		return nil, errValidation("Invalid account type. should be one of %s", joinAccountTypes())
	}

	if p.Balance == "" {
		return nil, errRequired("Initial Account balance is required", "balance")
	}
	balance, err := strconv.ParseFloat(strings.TrimSpace(p.Balance), 64)
	if err != nil {
		return nil, errValidation("Balance should be a valid positive float or integer")
	}
	if balance < 0 {
		return nil, errValidation("Balance cannot be negative")
	}

	if p.Title == "" {
		return nil, errRequired("Account Name/Title is required", "title")
	}
	if p.Description == "" {
		return nil, errRequired("Account Description is required", "description")
	}

	if p.Currency == "" {
		return nil, errRequired("Account currency is required", "currency")
	}
	currency := strings.TrimSpace(p.Currency)
	if !ValidCurrency(currency) {
		return nil, errValidation("Invalid currency code. check here for help https://www.xe.com/iso4217.php")
	}

	if p.Image != nil && !IsSupportedImage(p.Image.ContentType) {
		return nil, errValidation("Unsupported image file")
	}
	for _, f := range p.Files {
		if !IsSupportedImage(f.ContentType) && !IsSupportedDocument(f.ContentType) {
			return nil, errValidation("One of your files have an unsupported format >> %s", f.Name)
		}
	}

	return &Account{
		id:          id,
		userID:      p.UserID,
		accountType: p.AccountType,
		balance:     balance,
		currency:    currency,
		title:       strings.TrimSpace(p.Title),
		description: strings.TrimSpace(p.Description),
		primary:     p.Primary,
		metadata:    p.Metadata,
		image:       p.Image,
		files:       p.Files,
		source:      p.Source,
		hash:        secure.MD5(strings.TrimSpace(p.Title) + p.UserID + string(p.AccountType)),
	}, nil
}

func joinAccountTypes() string {
	parts := make([]string, len(accountTypes))
	for i, t := range accountTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func (a *Account) ID() string                  { return a.id }
func (a *Account) UserID() string              { return a.userID }
func (a *Account) Type() AccountType           { return a.accountType }
func (a *Account) Balance() float64            { return a.balance }
func (a *Account) Currency() string            { return a.currency }
func (a *Account) Title() string               { return a.title }
func (a *Account) Description() string         { return a.description }
func (a *Account) Primary() bool               { return a.primary }
func (a *Account) Metadata() map[string]string { return a.metadata }
func (a *Account) Image() *FileUpload          { return a.image }
func (a *Account) Files() []*FileUpload        { return a.files }
func (a *Account) Source() *Source             { return a.source }

// Hash is the duplicate-detection key md5(title+userId+type). It is not the
// primary key.
func (a *Account) Hash() string { return a.hash }

// AccountDetails is the persisted account record as read back from storage.
type AccountDetails struct {
	AccountID   string            `json:"account_id" bson:"account_id"`
	Title       string            `json:"title" bson:"title"`
	Description string            `json:"description" bson:"description"`
	Currency    string            `json:"currency" bson:"currency"`
	Type        AccountType       `json:"type" bson:"type"`
	Balance     float64           `json:"balance" bson:"balance"`
	Primary     bool              `json:"primary" bson:"primary"`
	Hash        string            `json:"-" bson:"hash"`
	Metadata    map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	ImageID     string            `json:"-" bson:"image_id,omitempty"`
	FileIDs     []string          `json:"-" bson:"file_ids,omitempty"`
	Image       *FileDetails      `json:"image,omitempty" bson:"-"`
	Files       []*FileDetails    `json:"files,omitempty" bson:"-"`
	Status      string            `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" bson:"updated_at"`
}

// Describe renders the one-line form used in activity metadata.
func (d *AccountDetails) Describe() string {
	return fmt.Sprintf("%s (%s %s)", d.Title, d.Currency, strconv.FormatFloat(d.Balance, 'f', 2, 64))
}
