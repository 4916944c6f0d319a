package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/core/domain"
)

func goalParams(title string) domain.NewGoalParams {
	return domain.NewGoalParams{
		UserID:   "user-1",
		Title:    title,
		Amount:   "2500",
		Currency: "GHS",
		Deadline: "2027-06-30",
		Source:   testSource(),
	}
}

func TestGoalService_Create_Success(t *testing.T) {
	goals := newStubGoalRepo()
	recorder := &stubRecorder{}
	svc := NewGoalService(goals, recorder, zerolog.Nop())

	resp, err := svc.Create(context.Background(), goalParams("Emergency fund"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if resp.Status != http.StatusCreated {
		t.Fatalf("unexpected status: %d", resp.Status)
	}
	if resp.Message != "Goal created successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	if len(goals.created) != 1 {
		t.Fatalf("expected one stored goal")
	}
	goal := goals.created[0]
	if goal.Amount != 2500 || goal.Status != "active" {
		t.Fatalf("unexpected goal: %+v", goal)
	}
	if goal.Deadline == nil {
		t.Fatalf("expected deadline parsed")
	}
	if len(recorder.records) != 1 || recorder.records[0].Title != "Goal Create" {
		t.Fatalf("unexpected activities: %v", recorder.titles())
	}
}

func TestGoalService_Create_Duplicate(t *testing.T) {
	goals := newStubGoalRepo()
	svc := NewGoalService(goals, &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), goalParams("Emergency fund")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), goalParams("Emergency fund"))
	if err == nil || err.Error() != "A goal with this title already exists" {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals.created) != 1 {
		t.Fatalf("duplicate was stored")
	}
}

func TestGoalService_Create_Validation(t *testing.T) {
	svc := NewGoalService(newStubGoalRepo(), &stubRecorder{}, zerolog.Nop())

	cases := []struct {
		name    string
		mutate  func(*domain.NewGoalParams)
		message string
	}{
		{"missing title", func(p *domain.NewGoalParams) { p.Title = "" }, "Goal title is required"},
		{"missing amount", func(p *domain.NewGoalParams) { p.Amount = "" }, "Goal target amount is required"},
		{"bad amount", func(p *domain.NewGoalParams) { p.Amount = "zero" }, "Goal target amount should be a valid positive number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := goalParams("Emergency fund")
			tc.mutate(&p)
			_, err := svc.Create(context.Background(), p)
			if err == nil || err.Error() != tc.message {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGoalService_List(t *testing.T) {
	goals := newStubGoalRepo()
	svc := NewGoalService(goals, &stubRecorder{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), goalParams("Emergency fund")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if items, ok := resp.Items.([]*domain.GoalDetails); !ok || len(items) != 1 {
		t.Fatalf("unexpected items: %#v", resp.Items)
	}

	if _, err := svc.List(context.Background(), ""); err == nil {
		t.Fatalf("expected error for missing user")
	}
}
