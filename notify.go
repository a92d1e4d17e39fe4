package scrollview

// feed is an ordered list of subscriptions. Callbacks are invoked
// synchronously in subscription order; subscribing returns an unsubscribe
// closure that is safe to call more than once.
type feed[T any] struct {
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

func (f *feed[T]) subscribe(fn func(T)) func() {
	f.nextID++
	id := f.nextID
	f.subs = append(f.subs, subscription[T]{id: id, fn: fn})
	return func() {
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

func (f *feed[T]) publish(v T) {
	for _, s := range f.subs {
		s.fn(v)
	}
}
