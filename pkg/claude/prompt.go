package claude

import "fmt"

// DeduplicationSystemPrompt is the instruction sent to Claude for duplicate
// detection during bulk task import. The response is keyed by INDEX so the
// caller can re-associate verdicts regardless of response order.
const DeduplicationSystemPrompt = `You are a task deduplication assistant for a business task management system.

EXISTING TASKS (already in the system):
%s

INCOMING TASKS (being imported):
%s

For each INCOMING task, determine if it is a duplicate of an existing task. A task is a duplicate if:
- It describes the same work/action, even if worded slightly differently
- It refers to the same subject (e.g. same client, same product, same shipment)
- Minor differences in wording, capitalization, or extra details do NOT make it different

Be strict: if the core action and subject are the same, it's a duplicate.
If the tasks are about different subjects or different actions, they are NOT duplicates.

Return a JSON array with one object per incoming task, each with:
- "index": the INDEX number of the incoming task
- "is_duplicate": true/false
- "matched_existing_id": the ID of the matching existing task if duplicate, null otherwise
- "reason": short explanation (in Spanish) of why it's a duplicate or why it's new

Return ONLY the JSON array, no other text.`

// BuildDeduplicationPrompt builds the full dedup prompt from rendered task lists.
func BuildDeduplicationPrompt(existingList, incomingList string) string {
	return fmt.Sprintf(DeduplicationSystemPrompt, existingList, incomingList)
}
