package core

// Invocation is what a handler receives for one matched value.
type Invocation struct {
	Spec     *Spec
	Value    any
	Registry *Registry
}

// Handler is invoked for every value matched by a spec with a Call id.
// A non-nil error aborts the parse and is returned from Main unchanged.
type Handler func(inv Invocation) error

// Handlers is the handler table of one command instance.
type Handlers struct {
	table map[HandlerID]Handler
}

// Handle registers fn under id unless id is already taken. Commands
// register their own handlers before calling their base's Handlers, so the
// nearest override wins and the base acts as the fallback.
func (h *Handlers) Handle(id HandlerID, fn Handler) *Handlers {
	if h.table == nil {
		h.table = make(map[HandlerID]Handler)
	}
	if _, ok := h.table[id]; !ok && fn != nil {
		h.table[id] = fn
	}
	return h
}

// Lookup returns the handler registered under id.
func (h *Handlers) Lookup(id HandlerID) (Handler, bool) {
	fn, ok := h.table[id]
	return fn, ok
}
