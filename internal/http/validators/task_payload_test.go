package validators

import (
	"testing"
	"time"

	model "nelo-tasks.com/nelo-tasks/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCreateInput_ParsesCalendarDate(t *testing.T) {
	input, err := CreateInput(TaskPayload{
		Title:       strPtr("Buy milk"),
		Description: strPtr("Two liters"),
		Priority:    strPtr("high"),
		DueDate:     strPtr("2026-09-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !input.DueDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, input.DueDate)
	}
	if input.Priority != model.PriorityHigh {
		t.Errorf("expected high priority, got %s", input.Priority)
	}
}

func TestCreateInput_KeepsCalendarDateAcrossZones(t *testing.T) {
	// 01:00 at +05:00 is still Aug 31 in UTC; the calendar date the sender
	// wrote must survive.
	input, err := CreateInput(TaskPayload{
		Title:       strPtr("Buy milk"),
		Description: strPtr("Two liters"),
		Priority:    strPtr("high"),
		DueDate:     strPtr("2026-09-01T01:00:00+05:00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !input.DueDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, input.DueDate)
	}
}

func TestCreateInput_RejectsUnparseableDate(t *testing.T) {
	_, err := CreateInput(TaskPayload{
		Title:   strPtr("Buy milk"),
		DueDate: strPtr("next tuesday"),
	})
	if err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestUpdateInput_AbsentFieldsStayNil(t *testing.T) {
	patch, err := UpdateInput(TaskPayload{Priority: strPtr("low")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if patch.Priority == nil || *patch.Priority != model.PriorityLow {
		t.Errorf("expected priority patch, got %v", patch.Priority)
	}
	if patch.Title != nil || patch.Description != nil || patch.DueDate != nil || patch.Status != nil {
		t.Error("absent payload fields must stay nil in the patch")
	}
}

func TestUpdateInput_StatusPatch(t *testing.T) {
	patch, err := UpdateInput(TaskPayload{Status: strPtr("completed")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if patch.Status == nil || *patch.Status != model.StatusCompleted {
		t.Errorf("expected status patch, got %v", patch.Status)
	}
}
