package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task"
	"impag-tasks/internal/task/usecase"
	"impag-tasks/pkg/claude"
)

func intp(n int) *int { return &n }

func messageJSON(t *testing.T, text string) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"id":    "msg_test",
		"type":  "message",
		"role":  "assistant",
		"model": "claude-sonnet-4-20250514",
		"content": []map[string]string{
			{"type": "text", "text": text},
		},
		"stop_reason": "end_turn",
		"usage":       map[string]int{"input_tokens": 10, "output_tokens": 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// writeMessage serves a fake messages-API response. The SDK refuses
// bodies without a JSON content type.
func writeMessage(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.Write(messageJSON(t, text))
}

func newLLM(t *testing.T, url string) claude.IClaude {
	t.Helper()
	llm, err := claude.New(claude.Config{APIKey: "test-key", BaseURL: url})
	if err != nil {
		t.Fatal(err)
	}
	return llm
}

func seedTask(id int64, number int, title string) model.Task {
	return model.Task{
		ID:       id,
		Number:   intp(number),
		Title:    title,
		Status:   model.StatusPending,
		Priority: model.PriorityMedium,
	}
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	t.Run("creates non-duplicates and reports duplicates", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(t, w, `[
				{"index": 0, "is_duplicate": true, "matched_existing_id": 10, "reason": "Misma tarea"},
				{"index": 1, "is_duplicate": false, "matched_existing_id": null, "reason": "Tarea nueva"}
			]`)
		}))
		defer ts.Close()

		repo := newMemRepo(seedTask(10, 1, "Llamar a proveedor"))
		uc := usecase.New(&mockLogger{}, repo, newLLM(t, ts.URL))

		out, err := uc.Import(ctx, sc, task.ImportInput{
			RawText: "Llamar al proveedor\nEnviar cotizacion (URGENTE)\t15/1/2025",
		})
		if err != nil {
			t.Fatal(err)
		}
		if out.TotalParsed != 2 || out.TotalCreated != 1 || out.TotalDuplicates != 1 {
			t.Fatalf("counts = %d/%d/%d, want 2/1/1", out.TotalParsed, out.TotalCreated, out.TotalDuplicates)
		}
		if out.BatchID == "" {
			t.Error("empty batch id")
		}

		created := out.Created[0]
		if created.Title != "Enviar cotizacion" {
			t.Errorf("title = %q", created.Title)
		}
		if created.Priority != model.PriorityUrgent {
			t.Errorf("priority = %q, want urgent", created.Priority)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !created.CreatedAt.Equal(want) {
			t.Errorf("created_at = %v, want %v", created.CreatedAt, want)
		}

		dup := out.Duplicates[0]
		if dup.MatchedExistingID == nil || *dup.MatchedExistingID != 10 {
			t.Errorf("matched id = %v, want 10", dup.MatchedExistingID)
		}
		if dup.Reason != "Misma tarea" {
			t.Errorf("reason = %q", dup.Reason)
		}
	})

	t.Run("claimed number displaces the current holder", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(t, w, `[{"index": 0, "is_duplicate": false, "matched_existing_id": null, "reason": "Nueva"}]`)
		}))
		defer ts.Close()

		repo := newMemRepo(
			seedTask(10, 1, "Revisar contrato"),
			seedTask(11, 2, "Pagar renta"),
		)
		uc := usecase.New(&mockLogger{}, repo, newLLM(t, ts.URL))

		out, err := uc.Import(ctx, sc, task.ImportInput{RawText: "2\tCotizar bombas"})
		if err != nil {
			t.Fatal(err)
		}
		if got := out.Created[0].Number; got == nil || *got != 2 {
			t.Fatalf("new task number = %v, want 2", got)
		}

		moved, err := repo.GetOneTask(ctx, getByID(11))
		if err != nil {
			t.Fatal(err)
		}
		if moved.Number == nil || *moved.Number != 3 {
			t.Errorf("displaced holder number = %v, want 3", moved.Number)
		}
	})

	t.Run("unverifiable match id means not a duplicate", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(t, w, `[{"index": 0, "is_duplicate": true, "matched_existing_id": 999, "reason": "Duplicada"}]`)
		}))
		defer ts.Close()

		repo := newMemRepo(seedTask(10, 1, "Revisar contrato"))
		uc := usecase.New(&mockLogger{}, repo, newLLM(t, ts.URL))

		out, err := uc.Import(ctx, sc, task.ImportInput{RawText: "Tarea cualquiera"})
		if err != nil {
			t.Fatal(err)
		}
		if out.TotalCreated != 1 || out.TotalDuplicates != 0 {
			t.Fatalf("created/duplicates = %d/%d, want 1/0", out.TotalCreated, out.TotalDuplicates)
		}
	})

	t.Run("model outage imports everything", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		repo := newMemRepo(seedTask(10, 1, "Revisar contrato"))
		uc := usecase.New(&mockLogger{}, repo, newLLM(t, ts.URL))

		out, err := uc.Import(ctx, sc, task.ImportInput{RawText: "Primera tarea\nSegunda tarea"})
		if err != nil {
			t.Fatal(err)
		}
		if out.TotalCreated != 2 || out.TotalDuplicates != 0 {
			t.Fatalf("created/duplicates = %d/%d, want 2/0", out.TotalCreated, out.TotalDuplicates)
		}
	})

	t.Run("malformed model answer imports everything", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(t, w, "no soy json")
		}))
		defer ts.Close()

		repo := newMemRepo(seedTask(10, 1, "Revisar contrato"))
		uc := usecase.New(&mockLogger{}, repo, newLLM(t, ts.URL))

		out, err := uc.Import(ctx, sc, task.ImportInput{RawText: "Primera tarea"})
		if err != nil {
			t.Fatal(err)
		}
		if out.TotalCreated != 1 {
			t.Fatalf("created = %d, want 1", out.TotalCreated)
		}
	})

	t.Run("fenced json answer is accepted", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeMessage(t, w, "```json\n[{\"index\": 0, \"is_duplicate\": true, \"matched_existing_id\": 10, \"reason\": \"Misma\"}]\n```")
		}))
		defer ts.Close()

		repo := newMemRepo(seedTask(10, 1, "Revisar contrato"))
		uc := usecase.New(&mockLogger{}, repo, newLLM(t, ts.URL))

		out, err := uc.Import(ctx, sc, task.ImportInput{RawText: "Revisar el contrato"})
		if err != nil {
			t.Fatal(err)
		}
		if out.TotalDuplicates != 1 {
			t.Fatalf("duplicates = %d, want 1", out.TotalDuplicates)
		}
	})

	t.Run("no model configured imports everything without calling out", func(t *testing.T) {
		repo := newMemRepo(seedTask(10, 1, "Revisar contrato"))
		uc := usecase.New(&mockLogger{}, repo, nil)

		out, err := uc.Import(ctx, sc, task.ImportInput{RawText: "Primera tarea"})
		if err != nil {
			t.Fatal(err)
		}
		if out.TotalCreated != 1 {
			t.Fatalf("created = %d, want 1", out.TotalCreated)
		}
	})

	t.Run("empty board skips the model call", func(t *testing.T) {
		var calls int
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			writeMessage(t, w, "[]")
		}))
		defer ts.Close()

		repo := newMemRepo()
		uc := usecase.New(&mockLogger{}, repo, newLLM(t, ts.URL))

		out, err := uc.Import(ctx, sc, task.ImportInput{RawText: "Primera tarea"})
		if err != nil {
			t.Fatal(err)
		}
		if calls != 0 {
			t.Errorf("model called %d times, want 0", calls)
		}
		if out.TotalCreated != 1 {
			t.Fatalf("created = %d, want 1", out.TotalCreated)
		}
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMemRepo(), nil)
		if _, err := uc.Import(ctx, sc, task.ImportInput{RawText: "   \n  "}); !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("err = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("marker-only lines yield nothing parseable", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, newMemRepo(), nil)
		if _, err := uc.Import(ctx, sc, task.ImportInput{RawText: "(URGENTE)\n(urgente)"}); !errors.Is(err, task.ErrNothingParseable) {
			t.Errorf("err = %v, want ErrNothingParseable", err)
		}
	})

	t.Run("insert failure rolls back the whole batch", func(t *testing.T) {
		repo := newMemRepo(seedTask(10, 1, "Revisar contrato"))
		repo.failInsert = true
		uc := usecase.New(&mockLogger{}, repo, nil)

		if _, err := uc.Import(ctx, sc, task.ImportInput{RawText: "Primera tarea\nSegunda tarea"}); err == nil {
			t.Fatal("want error")
		}
		if got := len(repo.all()); got != 1 {
			t.Errorf("repo has %d tasks after rollback, want 1", got)
		}
	})
}
