package view

import "github.com/godalming123/tinytile/internal/logger"

const none = -1

type slot struct {
	view       *View
	prev, next int
}

// Registry is the ordered collection of mapped views. The order is both the
// focus-cycle order and, through MoveToTop, the stacking order.
//
// Entries live in an arena of slots linked by index, with a free list for
// reuse, so removing a view never invalidates another view's position.
// All methods are O(1) except All.
type Registry struct {
	slots []slot
	free  []int
	head  int
	tail  int
	count int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{head: none, tail: none}
}

// Contains reports whether v is a member.
func (r *Registry) Contains(v *View) bool {
	return v != nil && v.slot >= 0 && v.slot < len(r.slots) && r.slots[v.slot].view == v
}

// Count is the number of members.
func (r *Registry) Count() int { return r.count }

// Front is the first member, or nil.
func (r *Registry) Front() *View {
	if r.head == none {
		return nil
	}
	return r.slots[r.head].view
}

// Back is the last member, or nil.
func (r *Registry) Back() *View {
	if r.tail == none {
		return nil
	}
	return r.slots[r.tail].view
}

// Insert links v directly after anchor, or at the head when anchor is nil or
// not a member. Inserting a member again is ignored.
func (r *Registry) Insert(v, anchor *View) {
	if v == nil || r.Contains(v) {
		return
	}
	idx := r.alloc(v)
	if r.Contains(anchor) {
		r.linkAfter(idx, anchor.slot)
	} else {
		r.linkAfter(idx, none)
	}
	r.count++
}

// Remove unlinks v. Removing a view that is not a member is a caller bug; it
// is logged and ignored, and false is returned.
func (r *Registry) Remove(v *View) bool {
	if !r.Contains(v) {
		logger.Warn("removing a view that is not in the registry")
		return false
	}
	idx := v.slot
	r.unlink(idx)
	r.slots[idx] = slot{view: nil, prev: none, next: none}
	r.free = append(r.free, idx)
	v.slot = none
	r.count--
	return true
}

// Next returns the member after v. At the tail it returns the head when wrap
// is set and v otherwise. A non-member yields v unchanged.
func (r *Registry) Next(v *View, wrap bool) *View {
	if !r.Contains(v) {
		return v
	}
	if n := r.slots[v.slot].next; n != none {
		return r.slots[n].view
	}
	if wrap {
		return r.slots[r.head].view
	}
	return v
}

// Previous returns the member before v. At the head it returns the tail when
// wrap is set and v otherwise.
func (r *Registry) Previous(v *View, wrap bool) *View {
	if !r.Contains(v) {
		return v
	}
	if p := r.slots[v.slot].prev; p != none {
		return r.slots[p].view
	}
	if wrap {
		return r.slots[r.tail].view
	}
	return v
}

// MoveBackward swaps v one position towards the head. The head moves to the
// tail. It is a no-op with fewer than two members.
func (r *Registry) MoveBackward(v *View) {
	if r.count < 2 || !r.Contains(v) {
		return
	}
	idx := v.slot
	prev := r.slots[idx].prev
	r.unlink(idx)
	switch {
	case prev == none:
		r.linkAfter(idx, r.tail)
	default:
		r.linkAfter(idx, r.slots[prev].prev)
	}
}

// MoveForward swaps v one position towards the tail. The tail moves to the
// head. It is a no-op with fewer than two members.
func (r *Registry) MoveForward(v *View) {
	if r.count < 2 || !r.Contains(v) {
		return
	}
	idx := v.slot
	next := r.slots[idx].next
	r.unlink(idx)
	r.linkAfter(idx, next)
}

// MoveToTop raises v's scene node to the front. The cycle position is not
// changed; callers that raise also make v the current cycle position.
func (r *Registry) MoveToTop(v *View) {
	if !r.Contains(v) || v.Node == nil {
		return
	}
	v.Node.RaiseToTop()
}

// All returns the members from head to tail.
func (r *Registry) All() []*View {
	out := make([]*View, 0, r.count)
	for i := r.head; i != none; i = r.slots[i].next {
		out = append(out, r.slots[i].view)
	}
	return out
}

func (r *Registry) alloc(v *View) int {
	var idx int
	if n := len(r.free); n > 0 {
		idx = r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[idx] = slot{view: v, prev: none, next: none}
	} else {
		idx = len(r.slots)
		r.slots = append(r.slots, slot{view: v, prev: none, next: none})
	}
	v.slot = idx
	return idx
}

// linkAfter links an unlinked slot after at; none means at the head.
func (r *Registry) linkAfter(idx, at int) {
	s := &r.slots[idx]
	if at == none {
		s.prev = none
		s.next = r.head
		if r.head != none {
			r.slots[r.head].prev = idx
		}
		r.head = idx
		if r.tail == none {
			r.tail = idx
		}
		return
	}
	s.prev = at
	s.next = r.slots[at].next
	if s.next != none {
		r.slots[s.next].prev = idx
	} else {
		r.tail = idx
	}
	r.slots[at].next = idx
}

func (r *Registry) unlink(idx int) {
	s := &r.slots[idx]
	if s.prev != none {
		r.slots[s.prev].next = s.next
	} else {
		r.head = s.next
	}
	if s.next != none {
		r.slots[s.next].prev = s.prev
	} else {
		r.tail = s.prev
	}
	s.prev, s.next = none, none
}
