package record

import "time"

// Op names the record operation an event describes.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Event describes one record operation.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Variant   string    `json:"variant"`
	Op        Op        `json:"op"`
	Key       any       `json:"key,omitempty"` // Unset for create
	Err       error     `json:"-"`             // Set when the operation was rejected
}

// Hooks defines callbacks for record observability.
// Callbacks run synchronously on the caller's goroutine after the outcome is
// decided; they cannot veto or alter it.
type Hooks struct {
	OnCreate func(*Event)
	OnUpdate func(*Event)
	OnReject func(*Event)
}

// CombineHooks returns hooks that invoke each of the given hooks in order.
func CombineHooks(hooks ...Hooks) Hooks {
	var combined Hooks
	for _, h := range hooks {
		combined.OnCreate = chain(combined.OnCreate, h.OnCreate)
		combined.OnUpdate = chain(combined.OnUpdate, h.OnUpdate)
		combined.OnReject = chain(combined.OnReject, h.OnReject)
	}
	return combined
}

func chain(a, b func(*Event)) func(*Event) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *Event) {
		a(e)
		b(e)
	}
}

func (h Hooks) emit(fn func(*Event), variant string, op Op, key any, err error) {
	if fn == nil {
		return
	}
	fn(&Event{
		Timestamp: time.Now(),
		Variant:   variant,
		Op:        op,
		Key:       key,
		Err:       err,
	})
}
