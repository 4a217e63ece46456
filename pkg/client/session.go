package client

// SessionState tracks where the client is in its auth lifecycle. Callers
// should render a waiting view while the state is Loading instead of
// assuming the user is anonymous.
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateLoading
	StateAnonymous
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// StatusFilter narrows an already-fetched task list; it never triggers a
// request.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterCompleted StatusFilter = "completed"
)

func FilterTasks(tasks []Task, filter StatusFilter) []Task {
	if filter == FilterAll || filter == "" {
		return tasks
	}

	filtered := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Status == string(filter) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}
