package comment

// AddInput is the input for adding a comment to a task.
type AddInput struct {
	TaskID  int64
	Content string
}
