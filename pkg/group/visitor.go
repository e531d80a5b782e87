package group

//go:generate mockgen -source=visitor.go -destination=mocks/visitor.go -package=mocks

// Visitor is a traversal hook invoked once per member, in iteration order,
// by Group.Accept. The Group defines no side effects of its own for a visit.
type Visitor[T any] interface {
	Visit(member T)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc[T any] func(member T)

// Visit calls the underlying function.
func (f VisitorFunc[T]) Visit(member T) { f(member) }
