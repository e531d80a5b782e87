// Package group provides a deduplicated, ordered collection of domain
// entities with membership and set-algebra queries, realized for people as
// Family and People.
//
// # Comparator as identity
//
// A Group is keyed by a total-order comparator that defines both iteration
// order and membership identity: two members comparing equal cannot coexist,
// even when they are not Equal as entities. This dual role is intentional
// domain design, carried consistently across the concrete realizations, and
// is called out here because it surprises: joining a second member that ties
// under the comparator is a no-op.
package group

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/btree"

	id "github.com/codeprimate-software/cp-domain-sub001/pkg/domain"
	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/compare"
	"github.com/codeprimate-software/cp-domain-sub001/pkg/platform/sentinel"
)

// Predicate selects members during queries and predicate-based removal.
type Predicate[T any] func(member T) bool

const btreeDegree = 8

// Group is a mutable, order-preserving collection of members, deduplicated
// under its comparator. Not safe for concurrent use; traversals fail fast
// with sentinel.ErrConcurrentModification when they observe a structural
// mutation mid-scan, such as a predicate that mutates the group it is
// scanning.
type Group[T any] struct {
	id      id.GroupID
	name    string
	cmp     compare.Func[T]
	members *btree.BTreeG[T]

	// version counts structural mutations for fail-fast traversal.
	version uint64
}

// New creates an empty Group ordered by cmp. It panics on a nil comparator,
// since no Group operation is meaningful without one.
func New[T any](cmp compare.Func[T]) *Group[T] {
	if cmp == nil {
		panic("group: comparator is required")
	}
	return &Group[T]{
		cmp:     cmp,
		members: btree.NewG(btreeDegree, func(a, b T) bool { return cmp(a, b) < 0 }),
	}
}

// Of creates a Group ordered by cmp holding the given members, deduplicated
// under the comparator.
func Of[T any](cmp compare.Func[T], members ...T) *Group[T] {
	g := New(cmp)
	for _, m := range members {
		g.Join(m)
	}
	return g
}

// FromSlice is Of over a slice, for callers assembling members dynamically.
func FromSlice[T any](cmp compare.Func[T], members []T) *Group[T] {
	return Of(cmp, members...)
}

// ID returns the group identifier; the nil UUID means unassigned.
func (g *Group[T]) ID() id.GroupID { return g.id }

// Identify assigns a group identifier.
func (g *Group[T]) Identify(groupID id.GroupID) { g.id = groupID }

// Name returns the group's display name, or the empty string.
func (g *Group[T]) Name() string { return g.name }

// Rename sets the group's display name.
func (g *Group[T]) Rename(groupName string) { g.name = groupName }

// Join inserts the member unless it is nil or a member comparing equal is
// already present. Reports whether the insertion occurred.
func (g *Group[T]) Join(member T) bool {
	if isNil(member) || g.members.Has(member) {
		return false
	}
	g.members.ReplaceOrInsert(member)
	g.version++
	return true
}

// Leave removes the member comparing equal to the given one. Reports whether
// a removal occurred.
func (g *Group[T]) Leave(member T) bool {
	if isNil(member) {
		return false
	}
	if _, removed := g.members.Delete(member); removed {
		g.version++
		return true
	}
	return false
}

// LeaveBy removes every member matching the predicate and reports whether
// any removal occurred. Removal is not atomic against the traversal that
// selects the members.
//
// Errors: CodeInvalidInput on a nil predicate; sentinel.ErrConcurrentModification
// (wrapped with CodeConflict) when the predicate mutates the group mid-scan.
func (g *Group[T]) LeaveBy(pred Predicate[T]) (bool, error) {
	matches, err := g.FindBy(pred)
	if err != nil {
		return false, err
	}
	for _, m := range matches {
		g.members.Delete(m)
		g.version++
	}
	return len(matches) > 0, nil
}

// FindBy returns all members matching the predicate, in iteration order.
//
// Errors: CodeInvalidInput on a nil predicate; fail-fast traversal errors as
// for LeaveBy.
func (g *Group[T]) FindBy(pred Predicate[T]) ([]T, error) {
	if pred == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "predicate is required")
	}
	var matches []T
	err := g.each(func(m T) bool {
		if pred(m) {
			matches = append(matches, m)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// FindOne returns the first member, in iteration order, matching the
// predicate.
//
// Errors: CodeInvalidInput on a nil predicate; sentinel.ErrNotFound when no
// member matches.
func (g *Group[T]) FindOne(pred Predicate[T]) (T, error) {
	var found T
	if pred == nil {
		return found, dErrors.New(dErrors.CodeInvalidInput, "predicate is required")
	}
	ok := false
	err := g.each(func(m T) bool {
		if pred(m) {
			found, ok = m, true
			return false
		}
		return true
	})
	if err != nil {
		return found, err
	}
	if !ok {
		return found, sentinel.ErrNotFound
	}
	return found, nil
}

// Count returns the number of members matching the predicate.
//
// Errors: CodeInvalidInput on a nil predicate.
func (g *Group[T]) Count(pred Predicate[T]) (int, error) {
	matches, err := g.FindBy(pred)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// Contains reports whether a member comparing equal to the given one is
// present.
func (g *Group[T]) Contains(member T) bool {
	return !isNil(member) && g.members.Has(member)
}

// Size returns the number of members.
func (g *Group[T]) Size() int { return g.members.Len() }

// IsEmpty reports whether the group has no members.
func (g *Group[T]) IsEmpty() bool { return g.Size() == 0 }

// Members returns a snapshot of the members in iteration order.
func (g *Group[T]) Members() []T {
	out := make([]T, 0, g.Size())
	g.members.Ascend(func(m T) bool {
		out = append(out, m)
		return true
	})
	return out
}

// Union returns the members of this group and the other, deduplicated under
// this group's comparator and in its order. A nil other is treated as empty.
func (g *Group[T]) Union(other *Group[T]) []T {
	merged := g.members.Clone()
	if other != nil {
		other.members.Ascend(func(m T) bool {
			merged.ReplaceOrInsert(m)
			return true
		})
	}
	out := make([]T, 0, merged.Len())
	merged.Ascend(func(m T) bool {
		out = append(out, m)
		return true
	})
	return out
}

// Intersection returns the members of this group also present in the other,
// per the other group's membership test.
//
// Errors: CodeInvalidInput on a nil other.
func (g *Group[T]) Intersection(other *Group[T]) ([]T, error) {
	if other == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "other group is required")
	}
	return g.FindBy(other.Contains)
}

// Difference returns the members of this group not present in the other, per
// the other group's membership test.
//
// Errors: CodeInvalidInput on a nil other.
func (g *Group[T]) Difference(other *Group[T]) ([]T, error) {
	if other == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "other group is required")
	}
	return g.FindBy(func(m T) bool { return !other.Contains(m) })
}

// Accept invokes the visitor once per member, in iteration order.
//
// Errors: CodeInvalidInput on a nil visitor; fail-fast traversal errors when
// the visitor mutates the group mid-scan.
func (g *Group[T]) Accept(v Visitor[T]) error {
	if v == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "visitor is required")
	}
	return g.each(func(m T) bool {
		v.Visit(m)
		return true
	})
}

// String renders "[member1; member2; ...]" in iteration order.
func (g *Group[T]) String() string {
	parts := make([]string, 0, g.Size())
	g.members.Ascend(func(m T) bool {
		parts = append(parts, fmt.Sprint(m))
		return true
	})
	return "[" + strings.Join(parts, "; ") + "]"
}

// each traverses in comparator order, stopping when fn returns false. It
// snapshots the modification counter and fails fast when the group is
// structurally mutated mid-scan.
func (g *Group[T]) each(fn func(T) bool) error {
	snapshot := g.version
	var err error
	g.members.Ascend(func(m T) bool {
		if g.version != snapshot {
			err = dErrors.Wrap(sentinel.ErrConcurrentModification, dErrors.CodeConflict,
				"group mutated during traversal")
			return false
		}
		return fn(m)
	})
	return err
}

// isNil reports whether a generic member is a nil pointer, interface, map,
// slice, func or channel. Non-nilable kinds report false.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
