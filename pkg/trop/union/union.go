package union

import (
	"reflect"

	"github.com/xlab/treeprint"

	"github.com/ib-77/trop/pkg/trop"
)

// Set enumerates the complete list of concrete variant types admitted by a
// declared error set E. The enumeration is the runtime stand-in for a
// sealed sum: handlers built over it can be checked for coverage when they
// are registered instead of when the missing variant finally occurs.
type Set[E any] struct {
	name     string
	variants []reflect.Type
}

// Declare builds a Set from one witness value per variant. Witnesses are
// compile-checked members of E; a nil or duplicate witness is a violation.
func Declare[E any](name string, witnesses ...E) Set[E] {
	s := Set[E]{name: name}
	for _, w := range witnesses {
		if trop.IsNil(any(w)) {
			panic(trop.Violation.New("set %s: nil witness", name))
		}
		t := reflect.TypeOf(any(w))
		for _, seen := range s.variants {
			if seen == t {
				panic(trop.Violation.New("set %s: duplicate variant %s", name, t))
			}
		}
		s.variants = append(s.variants, t)
	}
	return s
}

func (s Set[E]) Name() string {
	return s.name
}

// Size returns the number of declared variants.
func (s Set[E]) Size() int {
	return len(s.variants)
}

// Has reports whether the concrete type of e is a declared variant.
func (s Set[E]) Has(e E) bool {
	t := reflect.TypeOf(any(e))
	for _, vt := range s.variants {
		if vt == t {
			return true
		}
	}
	return false
}

// Variants lists the declared variant type names in declaration order.
func (s Set[E]) Variants() []string {
	names := make([]string, 0, len(s.variants))
	for _, vt := range s.variants {
		names = append(names, vt.String())
	}
	return names
}

// Describe renders the set as a tree for diagnostics and fault messages.
func (s Set[E]) Describe() string {
	root := treeprint.NewWithRoot(s.name)
	for _, vt := range s.variants {
		root.AddNode(vt.String())
	}
	return root.String()
}

type boundCase[T, E, E1 any] struct {
	vt  reflect.Type
	run func(E) trop.Result[T, E1]
}

// Builder accumulates the resolved cases of a partial handler over a
// declared set E, narrowing into the remaining set E1.
type Builder[T, E, E1 any] struct {
	set   Set[E]
	cases []boundCase[T, E, E1]
}

// NewHandler starts a partial handler over s that resolves into values of
// type T and remaining error set E1. Those two cannot be inferred, so they
// come first: union.NewHandler[int, DataError](errors).
func NewHandler[T, E1, E any](s Set[E]) Builder[T, E, E1] {
	return Builder[T, E, E1]{set: s}
}

// On binds the resolution for one concrete variant V. Binding a variant
// outside the declared set, or binding one twice, is a violation.
func On[V, T, E, E1 any](b Builder[T, E, E1], resolve func(V) trop.Result[T, E1]) Builder[T, E, E1] {
	vt := reflect.TypeOf((*V)(nil)).Elem()
	found := false
	for _, t := range b.set.variants {
		if t == vt {
			found = true
			break
		}
	}
	if !found {
		panic(trop.Violation.New("set %s has no variant %s\n%s",
			b.set.name, vt, b.set.Describe()))
	}
	for _, c := range b.cases {
		if c.vt == vt {
			panic(trop.Violation.New("set %s: variant %s bound twice", b.set.name, vt))
		}
	}
	bound := boundCase[T, E, E1]{
		vt: vt,
		run: func(e E) trop.Result[T, E1] {
			return resolve(any(e).(V))
		},
	}
	out := b
	out.cases = append(append([]boundCase[T, E, E1]{}, b.cases...), bound)
	return out
}

// Build verifies coverage and returns the handler for trop.HandleSome.
// Every declared variant must either be bound by On or be a member of the
// remaining set E1, in which case it is deferred by re-tagging the original
// error unchanged. An uncovered variant is a violation raised here, at
// registration, not at the first unlucky call.
func (b Builder[T, E, E1]) Build() func(E) trop.Result[T, E1] {
	remaining := reflect.TypeOf((*E1)(nil)).Elem()
	dispatch := make(map[reflect.Type]func(E) trop.Result[T, E1], len(b.set.variants))
	for _, c := range b.cases {
		dispatch[c.vt] = c.run
	}
	for _, vt := range b.set.variants {
		if _, ok := dispatch[vt]; ok {
			continue
		}
		if vt.AssignableTo(remaining) {
			dispatch[vt] = func(e E) trop.Result[T, E1] {
				return trop.Failure[T](any(e).(E1))
			}
			continue
		}
		panic(trop.Violation.New(
			"set %s: variant %s is neither resolved nor a member of %s\n%s",
			b.set.name, vt, remaining, b.set.Describe()))
	}
	name := b.set.name
	return func(e E) trop.Result[T, E1] {
		run, ok := dispatch[reflect.TypeOf(any(e))]
		if !ok {
			panic(trop.Violation.New("set %s does not admit error %T", name, e))
		}
		return run(e)
	}
}
