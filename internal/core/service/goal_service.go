package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

// GoalService implements savings-goal creation and listing.
type GoalService struct {
	goals      ports.GoalRepository
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewGoalService(goals ports.GoalRepository, activities ports.ActivityRecorder, logger zerolog.Logger) *GoalService {
	return &GoalService{goals: goals, activities: activities, logger: logger}
}

func (s *GoalService) Create(ctx context.Context, p domain.NewGoalParams) (*ports.Response, error) {
	goal, err := domain.NewGoal(p)
	if err != nil {
		return nil, err
	}

	existing, err := s.goals.FindByHash(ctx, goal.Hash())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.ResponseError{Message: "A goal with this title already exists"}
	}

	now := time.Now().UTC()
	created, err := s.goals.Create(ctx, &domain.GoalDetails{
		GoalID:      goal.ID(),
		UserID:      goal.UserID(),
		Title:       goal.Title(),
		Description: goal.Description(),
		Amount:      goal.Amount(),
		Currency:    goal.Currency(),
		Deadline:    goal.Deadline(),
		Hash:        goal.Hash(),
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.activities.Record(domain.NewActivity(goal.UserID(), "Goal Create",
		"A new savings goal has been created", goal.Source(), nil))
	s.logger.Info().Str("goal_id", goal.ID()).Str("user_id", goal.UserID()).Msg("goal created")

	return &ports.Response{
		Status:  http.StatusCreated,
		Message: "Goal created successfully",
		Item:    created,
	}, nil
}

func (s *GoalService) List(ctx context.Context, userID string) (*ports.Response, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthorized()
	}

	goals, err := s.goals.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ports.Response{
		Status:  http.StatusOK,
		Message: "Goals query executed successfully",
		Items:   goals,
	}, nil
}
