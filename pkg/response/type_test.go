package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"impag-tasks/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	d := response.Date(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if got := string(b); got != `"2024-05-01"` {
		t.Errorf("expected \"2024-05-01\", got %s", got)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if got := string(b); got != `"2024-05-01T15:30:00Z"` {
		t.Errorf("expected \"2024-05-01T15:30:00Z\", got %s", got)
	}
}

func TestDateInStruct(t *testing.T) {
	type row struct {
		DueDate *response.Date `json:"due_date,omitempty"`
	}

	b, err := json.Marshal(row{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(b); got != `{}` {
		t.Errorf("expected nil date omitted, got %s", got)
	}

	d := response.Date(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
	b, err = json.Marshal(row{DueDate: &d})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(b); got != `{"due_date":"2025-03-05"}` {
		t.Errorf("unexpected payload: %s", got)
	}
}
