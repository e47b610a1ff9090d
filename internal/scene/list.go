package scene

// List is an append-only sequence of entities. Insertion order is draw order.
// There is deliberately no removal.
type List struct {
	items []*Entity
}

func (l *List) Append(e *Entity) {
	l.items = append(l.items, e)
}

func (l *List) Len() int { return len(l.items) }

func (l *List) At(i int) *Entity { return l.items[i] }

// All returns a copy of the entities in insertion order.
func (l *List) All() []*Entity {
	out := make([]*Entity, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Each(fn func(i int, e *Entity)) {
	for i, e := range l.items {
		fn(i, e)
	}
}
