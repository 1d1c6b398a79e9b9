package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"impag-tasks/internal/model"
	"impag-tasks/internal/task"
	"impag-tasks/pkg/claude"
	"impag-tasks/pkg/lineparse"
)

// malformedReason is the diagnostic attached to every verdict when the
// model answered but the answer could not be used.
const malformedReason = "Error al analizar duplicados"

const (
	classifyMaxTokens   = 4000
	classifyTemperature = 0.0
)

// classificationStatus tags how a classification run went. Degraded runs
// still yield a verdict per candidate, all non-duplicate, so imports
// never fail because the classifier did.
type classificationStatus int

const (
	classificationOk classificationStatus = iota
	classificationUnavailable
	classificationMalformed
)

// dedupVerdict mirrors one element of the model's JSON answer.
type dedupVerdict struct {
	Index             int    `json:"index"`
	IsDuplicate       bool   `json:"is_duplicate"`
	MatchedExistingID *int64 `json:"matched_existing_id"`
	Reason            string `json:"reason"`
}

// classifyDuplicates annotates each candidate with a duplicate verdict
// by asking the model to compare them against the given snapshot of
// active tasks. It is total: whatever goes wrong, every candidate comes
// back annotated, defaulting to non-duplicate.
func (uc *implUseCase) classifyDuplicates(ctx context.Context, existing []model.Task, candidates []lineparse.Candidate) ([]task.AnnotatedCandidate, classificationStatus) {
	annotated := make([]task.AnnotatedCandidate, len(candidates))
	for i, c := range candidates {
		annotated[i] = task.AnnotatedCandidate{Candidate: c}
	}

	if uc.llm == nil {
		uc.l.Infof(ctx, "task.usecase.classifyDuplicates: no model configured, skipping duplicate detection")
		return annotated, classificationUnavailable
	}
	if len(existing) == 0 {
		return annotated, classificationOk
	}

	prompt := claude.BuildDeduplicationPrompt(renderExisting(existing), renderIncoming(candidates))
	raw, err := uc.llm.Complete(ctx, claude.CompleteRequest{
		Prompt:      prompt,
		MaxTokens:   classifyMaxTokens,
		Temperature: classifyTemperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.classifyDuplicates: model call failed, importing all: %v", err)
		return annotated, classificationUnavailable
	}

	verdicts, err := parseVerdicts(raw)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.classifyDuplicates: unusable model answer: %v", err)
		for i := range annotated {
			annotated[i].MatchReason = malformedReason
		}
		return annotated, classificationMalformed
	}

	knownIDs := make(map[int64]bool, len(existing))
	for _, t := range existing {
		knownIDs[t.ID] = true
	}
	for _, v := range verdicts {
		if v.Index < 0 || v.Index >= len(annotated) {
			continue
		}
		matched := v.MatchedExistingID
		if matched != nil && !knownIDs[*matched] {
			matched = nil
		}
		// A duplicate claim without a verifiable match is not actionable.
		if v.IsDuplicate && matched == nil {
			continue
		}
		annotated[v.Index].IsDuplicate = v.IsDuplicate
		annotated[v.Index].MatchedExistingID = matched
		annotated[v.Index].MatchReason = v.Reason
	}
	return annotated, classificationOk
}

// parseVerdicts decodes the model's JSON answer, tolerating markdown
// code fences around the array.
func parseVerdicts(raw string) ([]dedupVerdict, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}

	var verdicts []dedupVerdict
	if err := json.Unmarshal([]byte(s), &verdicts); err != nil {
		return nil, fmt.Errorf("decode verdicts: %w", err)
	}
	return verdicts, nil
}

func renderExisting(tasks []model.Task) string {
	var b strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&b, "ID=%d, #%s: %s\n", t.ID, numberLabel(t.Number), t.Title)
	}
	return b.String()
}

func renderIncoming(candidates []lineparse.Candidate) string {
	var b strings.Builder
	for i, c := range candidates {
		fmt.Fprintf(&b, "INDEX=%d, #%s: %s\n", i, numberLabel(c.Number), c.Title)
	}
	return b.String()
}

func numberLabel(n *int) string {
	if n == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *n)
}
