package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType marks the direction of a ledger entry.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// NewTransactionParams carries the raw transaction input.
type NewTransactionParams struct {
	ID        string
	UserID    string
	AccountID string
	Type      TransactionType
	Amount    string
	Category  string
	Note      string
	Source    *Source
}

// Transaction is a validated account ledger entry.
type Transaction struct {
	id        string
	userID    string
	accountID string
	txType    TransactionType
	amount    float64
	category  string
	note      string
	source    *Source
}

// NewTransaction validates raw input and returns the entity or a typed error.
func NewTransaction(p NewTransactionParams) (*Transaction, error) {
	if p.UserID == "" {
		return nil, ErrNotAuthorized()
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, errValidation("Transaction ID is invalid")
	}

	if p.AccountID == "" {
		return nil, errRequired("Transaction account is required", "accountId")
	}
	if p.Type != TransactionCredit && p.Type != TransactionDebit {
		return nil, errValidation("Invalid transaction type. should be one of credit, debit")
	}

	if p.Amount == "" {
		return nil, errRequired("Transaction amount is required", "amount")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(p.Amount), 64)
	if err != nil || amount <= 0 {
		return nil, errValidation("Transaction amount should be a valid positive number")
	}

	return &Transaction{
		id:        id,
		userID:    p.UserID,
		accountID: p.AccountID,
		txType:    p.Type,
		amount:    amount,
		category:  p.Category,
		note:      p.Note,
		source:    p.Source,
	}, nil
}

func (t *Transaction) ID() string            { return t.id }
func (t *Transaction) UserID() string        { return t.userID }
func (t *Transaction) AccountID() string     { return t.accountID }
func (t *Transaction) Type() TransactionType { return t.txType }
func (t *Transaction) Amount() float64       { return t.amount }
func (t *Transaction) Category() string      { return t.category }
func (t *Transaction) Note() string          { return t.note }
func (t *Transaction) Source() *Source       { return t.source }

// TransactionDetails is the persisted ledger entry.
type TransactionDetails struct {
	TransactionID string          `json:"transaction_id" bson:"transaction_id"`
	UserID        string          `json:"-" bson:"user_id"`
	AccountID     string          `json:"account_id" bson:"account_id"`
	Type          TransactionType `json:"type" bson:"type"`
	Amount        float64         `json:"amount" bson:"amount"`
	Category      string          `json:"category,omitempty" bson:"category,omitempty"`
	Note          string          `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
}
