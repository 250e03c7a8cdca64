package view

// Deferred queues work for the start of the next frame.
type Deferred struct {
	tasks []func()
}

// Later schedules fn to run on the next Drain.
func (d *Deferred) Later(fn func()) {
	if fn == nil {
		return
	}
	d.tasks = append(d.tasks, fn)
}

// Drain runs the queued tasks in order. Tasks queued while draining run on
// the following Drain.
func (d *Deferred) Drain() {
	tasks := d.tasks
	d.tasks = nil
	for _, task := range tasks {
		task()
	}
}

// Len reports how many tasks are waiting.
func (d *Deferred) Len() int {
	return len(d.tasks)
}
