package mapper

import (
	"errors"
	"fmt"

	"catalog-be/internal/apperror"
)

// GenericObjectMapper converts between a persisted entity S and its transfer
// object D. The field copy itself is supplied once, at construction, as two
// explicit functions; the mapper adds nil-safety, error normalisation and the
// bulk variants. It holds no state and is safe for concurrent use.
type GenericObjectMapper[S any, D any] struct {
	toSource func(*D) (*S, error)
	toDest   func(*S) (*D, error)
}

func NewGenericObjectMapper[S any, D any](
	toSource func(*D) (*S, error),
	toDest func(*S) (*D, error),
) *GenericObjectMapper[S, D] {
	return &GenericObjectMapper[S, D]{toSource: toSource, toDest: toDest}
}

// ToSourceObject maps a transfer object to its entity. A nil input gives a
// nil result and no error.
func (m *GenericObjectMapper[S, D]) ToSourceObject(dest *D) (*S, error) {
	if dest == nil {
		return nil, nil
	}
	source, err := m.toSource(dest)
	if err != nil {
		return nil, normalize[D, S](err)
	}
	return source, nil
}

// ToDestObject maps an entity to its transfer object. A nil input gives a nil
// result and no error.
func (m *GenericObjectMapper[S, D]) ToDestObject(source *S) (*D, error) {
	if source == nil {
		return nil, nil
	}
	dest, err := m.toDest(source)
	if err != nil {
		return nil, normalize[S, D](err)
	}
	return dest, nil
}

// ToSourceObjectList maps every element in order. Elements that map to nil
// (including nil elements) are dropped, so the result can be shorter than
// the input. The first failure aborts the whole conversion.
func (m *GenericObjectMapper[S, D]) ToSourceObjectList(dests []*D) ([]*S, error) {
	sources := make([]*S, 0, len(dests))
	for _, d := range dests {
		s, err := m.ToSourceObject(d)
		if err != nil {
			return nil, err
		}
		if s != nil {
			sources = append(sources, s)
		}
	}
	return sources, nil
}

// ToDestObjectList is the inverse of ToSourceObjectList with the same
// dropping rule.
func (m *GenericObjectMapper[S, D]) ToDestObjectList(sources []*S) ([]*D, error) {
	dests := make([]*D, 0, len(sources))
	for _, s := range sources {
		d, err := m.ToDestObject(s)
		if err != nil {
			return nil, err
		}
		if d != nil {
			dests = append(dests, d)
		}
	}
	return dests, nil
}

// normalize keeps taxonomy errors as they are and wraps anything else in a
// MappingError naming both types.
func normalize[From any, To any](err error) error {
	if errors.Is(err, apperror.ErrMapping) || errors.Is(err, apperror.ErrUnrecognizedEnumValue) {
		return err
	}
	return &apperror.MappingError{
		From: typeName[From](),
		To:   typeName[To](),
		Err:  err,
	}
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
