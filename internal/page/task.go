package page

import (
	"context"
	"html/template"
)

// Task is the asynchronous load of one homepage section. Until it finishes,
// the section is shown as its placeholder. There is no retry or cancellation;
// a task that never completes leaves the placeholder in place.
type Task struct {
	done chan struct{}
	html template.HTML
	err  error
}

// startTask runs load in its own goroutine
func startTask(ctx context.Context, load func(context.Context) (template.HTML, error)) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.html, t.err = load(ctx)
	}()
	return t
}

// Ready reports whether the load has finished
func (t *Task) Ready() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Await waits for the load or for ctx to end. ok is false while the section
// must still be shown as a placeholder, which includes a failed load.
func (t *Task) Await(ctx context.Context) (html template.HTML, ok bool) {
	select {
	case <-t.done:
		return t.html, t.err == nil
	case <-ctx.Done():
		return "", false
	}
}

// Err returns the load error once the task is done
func (t *Task) Err() error {
	if !t.Ready() {
		return nil
	}
	return t.err
}
