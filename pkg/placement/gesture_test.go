package placement_test

import (
	"testing"

	"github.com/goliatone/go-formdesigner/pkg/element"
	"github.com/goliatone/go-formdesigner/pkg/placement"
)

type recordingMutator struct {
	ops []string
}

func (r *recordingMutator) AddElement(index int, inst element.Instance) {
	r.ops = append(r.ops, "add:"+inst.ID)
}

func (r *recordingMutator) RemoveElement(id string) {
	r.ops = append(r.ops, "remove:"+id)
}

func TestGesture_ResolvesOnceAtEnd(t *testing.T) {
	gesture := newResolver().Begin(placement.ElementSource("A"))
	gesture.Over(placement.ElementTarget("B", placement.UpperHalf))
	gesture.Over(placement.ElementTarget("C", placement.LowerHalf))

	mutation, err := gesture.End(abc())
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if mutation.Kind != placement.MutationMove || mutation.Index != 2 {
		t.Fatalf("expected move to index 2, got %s at %d", mutation.Kind, mutation.Index)
	}
	if gesture.Active() {
		t.Fatalf("gesture still active after end")
	}

	again, err := gesture.End(abc())
	if err != nil || again.Kind != placement.MutationNone {
		t.Fatalf("second end should be a no-op, got %s, %v", again.Kind, err)
	}
}

func TestGesture_CancelLeavesListUntouched(t *testing.T) {
	gesture := newResolver().Begin(placement.PaletteSource(element.TypeText))
	gesture.Over(placement.CanvasTarget())
	gesture.Cancel()

	mutation, err := gesture.End(abc())
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	store := &recordingMutator{}
	mutation.Apply(store)
	if len(store.ops) != 0 {
		t.Fatalf("cancelled gesture mutated the store: %v", store.ops)
	}
}

func TestGesture_LeaveClearsTarget(t *testing.T) {
	gesture := newResolver().Begin(placement.PaletteSource(element.TypeText))
	gesture.Over(placement.CanvasTarget())
	gesture.Leave()

	mutation, err := gesture.End(abc())
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if mutation.Kind != placement.MutationNone {
		t.Fatalf("expected no-op after leave, got %s", mutation.Kind)
	}
}

func TestMutation_ApplyMoveRemovesThenAdds(t *testing.T) {
	mutation, err := newResolver().Resolve(abc(), placement.ElementSource("A"), placement.ElementTarget("C", placement.LowerHalf))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	store := &recordingMutator{}
	mutation.Apply(store)
	if len(store.ops) != 2 || store.ops[0] != "remove:A" || store.ops[1] != "add:A" {
		t.Fatalf("unexpected ops %v", store.ops)
	}
}
