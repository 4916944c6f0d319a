package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brvhprince/planner-api/internal/pkg/secure"
)

// NewGoalParams carries the raw goal-creation input.
type NewGoalParams struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Amount      string
	Currency    string
	Deadline    string
	Source      *Source
}

// Goal is a validated savings-goal entity.
type Goal struct {
	id          string
	userID      string
	title       string
	description string
	amount      float64
	currency    string
	deadline    *time.Time
	source      *Source
	hash        string
}

// NewGoal validates raw input and returns the entity or a typed error.
func NewGoal(p NewGoalParams) (*Goal, error) {
	if p.UserID == "" {
		return nil, ErrNotAuthorized()
	}

	id := p.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, errValidation("Goal ID is invalid")
	}

	if p.Title == "" {
		return nil, errRequired("Goal title is required", "title")
	}
	if p.Amount == "" {
		return nil, errRequired("Goal target amount is required", "amount")
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(p.Amount), 64)
	if err != nil || amount <= 0 {
		return nil, errValidation("Goal target amount should be a valid positive number")
	}

	if p.Currency == "" {
		return nil, errRequired("Goal currency is required", "currency")
	}
	currency := strings.TrimSpace(p.Currency)
	if !ValidCurrency(currency) {
		return nil, errValidation("Invalid currency code. check here for help https://www.xe.com/iso4217.php")
	}

	var deadline *time.Time
	if p.Deadline != "" {
		parsed, err := time.Parse("2006-01-02", p.Deadline)
		if err != nil {
			return nil, errValidation("Invalid goal deadline. Accepted format is YYYY-MM-DD")
		}
		deadline = &parsed
	}

	return &Goal{
		id:          id,
		userID:      p.UserID,
		title:       strings.TrimSpace(p.Title),
		description: p.Description,
		amount:      amount,
		currency:    currency,
		deadline:    deadline,
		source:      p.Source,
		hash:        secure.MD5(strings.TrimSpace(p.Title) + p.UserID),
	}, nil
}

func (g *Goal) ID() string           { return g.id }
func (g *Goal) UserID() string       { return g.userID }
func (g *Goal) Title() string        { return g.title }
func (g *Goal) Description() string  { return g.description }
func (g *Goal) Amount() float64      { return g.amount }
func (g *Goal) Currency() string     { return g.currency }
func (g *Goal) Deadline() *time.Time { return g.deadline }
func (g *Goal) Source() *Source      { return g.source }

// Hash is the duplicate-detection key md5(title+userId).
func (g *Goal) Hash() string { return g.hash }

// GoalDetails is the persisted goal record.
type GoalDetails struct {
	GoalID      string     `json:"goal_id" bson:"goal_id"`
	UserID      string     `json:"-" bson:"user_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64    `json:"amount" bson:"amount"`
	Saved       float64    `json:"saved" bson:"saved"`
	Currency    string     `json:"currency" bson:"currency"`
	Deadline    *time.Time `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Hash        string     `json:"-" bson:"hash"`
	Status      string     `json:"status" bson:"status"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
