package models

// Row pairs a repeatable item with the key it was given when it was added.
type Row[T any] struct {
	Key   int `json:"key"`
	Value T   `json:"value"`
}

// KeyedList is an ordered list of rows keyed by creation order.
// Keys start at 1, are never reused, and removing a row never renumbers the others.
// Every method returns a new list; the receiver is left untouched.
type KeyedList[T any] struct {
	LastKey int      `json:"last_key"`
	Rows    []Row[T] `json:"rows"`
}

func (l KeyedList[T]) clone() KeyedList[T] {
	rows := make([]Row[T], len(l.Rows))
	copy(rows, l.Rows)
	return KeyedList[T]{LastKey: l.LastKey, Rows: rows}
}

// Add appends v and returns the new list and the key assigned to v.
func (l KeyedList[T]) Add(v T) (KeyedList[T], int) {
	next := l.clone()
	next.LastKey++
	next.Rows = append(next.Rows, Row[T]{Key: next.LastKey, Value: v})
	return next, next.LastKey
}

// Remove drops the row with the given key. ok is false when no such row exists.
func (l KeyedList[T]) Remove(key int) (KeyedList[T], bool) {
	next := KeyedList[T]{LastKey: l.LastKey, Rows: make([]Row[T], 0, len(l.Rows))}
	found := false
	for _, r := range l.Rows {
		if r.Key == key {
			found = true
			continue
		}
		next.Rows = append(next.Rows, r)
	}
	if !found {
		return l, false
	}
	return next, true
}

// Update replaces the row with the given key by fn(old).
func (l KeyedList[T]) Update(key int, fn func(T) T) (KeyedList[T], bool) {
	for i, r := range l.Rows {
		if r.Key == key {
			next := l.clone()
			next.Rows[i].Value = fn(r.Value)
			return next, true
		}
	}
	return l, false
}

func (l KeyedList[T]) Get(key int) (T, bool) {
	for _, r := range l.Rows {
		if r.Key == key {
			return r.Value, true
		}
	}
	var zero T
	return zero, false
}

func (l KeyedList[T]) Keys() []int {
	keys := make([]int, 0, len(l.Rows))
	for _, r := range l.Rows {
		keys = append(keys, r.Key)
	}
	return keys
}

func (l KeyedList[T]) Values() []T {
	values := make([]T, 0, len(l.Rows))
	for _, r := range l.Rows {
		values = append(values, r.Value)
	}
	return values
}

func (l KeyedList[T]) Len() int { return len(l.Rows) }

// MapKeyedList projects every row of l through fn, keeping keys.
func MapKeyedList[T, U any](l KeyedList[T], fn func(T) U) []Row[U] {
	out := make([]Row[U], 0, len(l.Rows))
	for _, r := range l.Rows {
		out = append(out, Row[U]{Key: r.Key, Value: fn(r.Value)})
	}
	return out
}
