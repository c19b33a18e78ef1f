package notice

// HandlerMap is a map-backed Registry. The host owns one per handler slot.
type HandlerMap struct {
	handlers map[string]Handler
}

func NewHandlerMap() *HandlerMap {
	return &HandlerMap{
		handlers: make(map[string]Handler),
	}
}

func (m *HandlerMap) Handler(event string) Handler {
	return m.handlers[event]
}

func (m *HandlerMap) SetHandler(event string, h Handler) {
	m.handlers[event] = h
}

// Dispatch invokes the active handler for the event key, if any.
func (m *HandlerMap) Dispatch(event string, e Event) {
	if h := m.handlers[event]; h != nil {
		h(e)
	}
}
