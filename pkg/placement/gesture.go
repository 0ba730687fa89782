package placement

import "github.com/goliatone/go-formdesigner/pkg/element"

// Gesture tracks one drag from pick-up to drop. Hover updates only record the
// current target; the resolver runs once, at End. A cancelled gesture never
// resolves. Not safe for concurrent use.
type Gesture struct {
	resolver *Resolver
	source   Source
	target   Target
	done     bool
}

// Begin starts a drag of src.
func (r *Resolver) Begin(src Source) *Gesture {
	return &Gesture{resolver: r, source: src}
}

// Source returns the dragged item.
func (g *Gesture) Source() Source { return g.source }

// Target returns the target currently under the pointer.
func (g *Gesture) Target() Target { return g.target }

// Active reports whether the gesture can still be dropped.
func (g *Gesture) Active() bool { return !g.done }

// Over records the target under the pointer.
func (g *Gesture) Over(tgt Target) {
	if g.done {
		return
	}
	g.target = tgt
}

// Leave clears the current target, as when the pointer exits a drop zone.
func (g *Gesture) Leave() {
	if g.done {
		return
	}
	g.target = Target{}
}

// Cancel aborts the drag. Later End calls resolve to MutationNone.
func (g *Gesture) Cancel() {
	g.done = true
	g.target = Target{}
}

// End drops the item on the current target and resolves the mutation against
// elements. It only resolves once; subsequent calls return MutationNone.
func (g *Gesture) End(elements []element.Instance) (Mutation, error) {
	if g.done {
		return Mutation{}, nil
	}
	g.done = true
	return g.resolver.Resolve(elements, g.source, g.target)
}
