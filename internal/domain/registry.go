package domain

import (
	"errors"
	"strings"
)

// Registry is a fixed, ordered table of operations selected by exact name.
type Registry struct {
	ops   []Operation
	index map[OperationName]int
}

// NewRegistry builds a registry preserving the given order. Names must be
// non-empty and unique.
func NewRegistry(ops ...Operation) (*Registry, error) {
	r := &Registry{
		ops:   make([]Operation, 0, len(ops)),
		index: make(map[OperationName]int, len(ops)),
	}

	for _, op := range ops {
		if op.Name == "" {
			return nil, &OpError{
				Op:   "registry.new",
				Kind: KindInvalidRegistry,
				Err:  errors.New("operation name is empty"),
			}
		}
		if _, dup := r.index[op.Name]; dup {
			return nil, &OpError{
				Op:   "registry.new",
				Kind: KindInvalidRegistry,
				Name: string(op.Name),
				Err:  ErrDuplicateOperation,
			}
		}
		r.index[op.Name] = len(r.ops)
		r.ops = append(r.ops, op)
	}

	return r, nil
}

// Lookup finds an operation by case-sensitive exact match.
func (r *Registry) Lookup(name string) (Operation, bool) {
	if r == nil {
		return Operation{}, false
	}
	i, ok := r.index[OperationName(name)]
	if !ok {
		return Operation{}, false
	}
	return r.ops[i], true
}

// Names returns operation names in registry order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, string(op.Name))
	}
	return out
}

// Describe renders the names as an English list, e.g. "a, b, and c".
func (r *Registry) Describe() string {
	names := r.Names()
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}
