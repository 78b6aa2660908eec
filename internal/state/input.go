package state

// InputField is the current text of the entry box. The zero string is a
// valid value. A zero InputField works but notifies no store; use New to
// get one wired to a Store.
type InputField struct {
	value string
	hub   *hub

	submitted map[int]func()
	subOrder  []int
	next      int
}

// Get returns the current value.
func (f *InputField) Get() string { return f.value }

// Set replaces the current value and invalidates dependent views.
func (f *InputField) Set(v string) {
	f.value = v
	f.hub.invalidate()
}

// OnSubmit registers fn to run when the field is submitted. The handler
// reads the value itself with Get.
func (f *InputField) OnSubmit(fn func()) (cancel func()) {
	if f.submitted == nil {
		f.submitted = map[int]func(){}
	}
	id := f.next
	f.next++
	f.submitted[id] = fn
	f.subOrder = append(f.subOrder, id)
	return func() {
		delete(f.submitted, id)
		for i, o := range f.subOrder {
			if o == id {
				f.subOrder = append(f.subOrder[:i], f.subOrder[i+1:]...)
				break
			}
		}
	}
}

// Submit emits the Submitted notification, as when Enter is pressed while
// the field has focus.
func (f *InputField) Submit() {
	ids := append([]int(nil), f.subOrder...)
	for _, id := range ids {
		if fn, ok := f.submitted[id]; ok {
			fn()
		}
	}
}
