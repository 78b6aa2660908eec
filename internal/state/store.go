// Package state holds the in-memory application state: the text in the
// entry box and the ordered list of todo items.
//
// All methods must be called from the host's UI goroutine. Nothing here
// locks.
package state

// Store is the application root. It owns the input field and the item list
// and fans out invalidation to subscribers.
type Store struct {
	Input *InputField
	Items *ItemList

	hub *hub
}

// New returns a store with an empty input and an empty list.
func New() *Store {
	h := &hub{observers: map[int]func(){}}
	return &Store{
		Input: &InputField{hub: h, submitted: map[int]func(){}},
		Items: &ItemList{hub: h, items: []string{}},
		hub:   h,
	}
}

// Subscribe registers fn to run after the state changes. Inside an Update
// scope fn runs once, when the outermost scope closes.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	return s.hub.subscribe(fn)
}

// Update runs fn as one mutation scope. Observers see either all of fn's
// changes or none of them.
func (s *Store) Update(fn func()) {
	s.hub.depth++
	defer func() {
		s.hub.depth--
		if s.hub.depth == 0 && s.hub.pending {
			s.hub.pending = false
			s.hub.notify()
		}
	}()
	fn()
}

// hub is the invalidation fan-out shared by every container of a Store.
type hub struct {
	observers map[int]func()
	order     []int
	next      int
	depth     int
	pending   bool
}

func (h *hub) subscribe(fn func()) func() {
	id := h.next
	h.next++
	h.observers[id] = fn
	h.order = append(h.order, id)
	return func() {
		delete(h.observers, id)
		for i, o := range h.order {
			if o == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

func (h *hub) invalidate() {
	if h == nil {
		return
	}
	if h.depth > 0 {
		h.pending = true
		return
	}
	h.notify()
}

func (h *hub) notify() {
	// observers may subscribe or cancel while being notified
	ids := append([]int(nil), h.order...)
	for _, id := range ids {
		if fn, ok := h.observers[id]; ok {
			fn()
		}
	}
}
