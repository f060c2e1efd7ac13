package twic

import (
	"strconv"
	"strings"
)

// Step is one element of a Path: a map key or a vector index.
type Step struct {
	key   string
	index int
	isKey bool
}

// Key returns a map-key step.
func Key(k string) Step {
	return Step{key: k, isKey: true}
}

// Index returns a vector-index step.
func Index(i int) Step {
	return Step{index: i}
}

// IsKey reports whether the step is a map-key step.
func (s Step) IsKey() bool {
	return s.isKey
}

// String renders the step: the key itself, or the index in decimal.
func (s Step) String() string {
	if s.isKey {
		return s.key
	}
	return strconv.Itoa(s.index)
}

// Path addresses a sub-value by a sequence of steps, resolved
// left-to-right, one container level per step.
type Path []Step

// String renders the path with '/' between steps.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// At resolves path against v and returns the addressed sub-value.
// Failures are *IndexError; the tree is never modified.
func At(v Value, path ...Step) (Value, error) {
	cur := v
	for i, step := range path {
		next, err := resolve(cur, step, i, path)
		if err != nil {
			return nil, err
		}
		cur = *next
	}
	return cur, nil
}

// AtMut resolves path against *v and returns an addressable slot for
// the addressed sub-value, suitable for in-place replacement.
func AtMut(v *Value, path ...Step) (*Value, error) {
	cur := v
	for i, step := range path {
		next, err := resolve(*cur, step, i, path)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// SetAt replaces the value addressed by path with newVal.
func SetAt(v *Value, path Path, newVal Value) error {
	slot, err := AtMut(v, path...)
	if err != nil {
		return err
	}
	*slot = newVal
	return nil
}

// resolve applies one step to cur, returning the addressed child
// slot.  i and path feed the error report: the failing step's
// position and the remaining path.
func resolve(cur Value, step Step, i int, path Path) (*Value, error) {
	fail := func(e *IndexError) (*Value, error) {
		e.Step = i
		e.Rest = path[i:]
		return nil, e
	}
	switch node := cur.(type) {
	case *Map:
		if !step.isKey {
			return fail(&IndexError{Kind: KindMismatch, Expected: KindVector, Actual: KindMap})
		}
		for j, k := range node.Keys {
			if k == step.key {
				return &node.Values[j], nil
			}
		}
		return fail(&IndexError{Kind: KeyMissing, Key: step.key})
	case Vector:
		if step.isKey {
			return fail(&IndexError{Kind: KindMismatch, Expected: KindMap, Actual: KindVector})
		}
		if step.index < 0 || step.index >= len(node) {
			return fail(&IndexError{Kind: IndexOutOfRange, Index: step.index, Len: len(node)})
		}
		return &node[step.index], nil
	default:
		expected := KindVector
		if step.isKey {
			expected = KindMap
		}
		actual := KindNull
		if cur != nil {
			actual = cur.Kind()
		}
		return fail(&IndexError{Kind: TraverseThroughLeaf, Expected: expected, Actual: actual})
	}
}
