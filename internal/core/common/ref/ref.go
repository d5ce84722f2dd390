// Package ref models references that the store serializes either as a bare
// numeric id or as a fully embedded object, depending on the read path.
package ref

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Entity is anything with a server-assigned numeric identity.
type Entity interface {
	EntityID() int64
}

// Ref is a tagged union over the two wire forms of a reference. The zero
// value means "no reference".
type Ref[T Entity] struct {
	id       int64
	embedded *T
}

func FromID[T Entity](id int64) Ref[T] {
	return Ref[T]{id: id}
}

func FromEntity[T Entity](entity *T) Ref[T] {
	if entity == nil {
		return Ref[T]{}
	}
	return Ref[T]{id: (*entity).EntityID(), embedded: entity}
}

// ID returns the referenced identity regardless of which wire form arrived.
func (r Ref[T]) ID() int64 {
	return r.id
}

// Embedded returns the embedded object when the store inlined it.
func (r Ref[T]) Embedded() (*T, bool) {
	if r.embedded == nil {
		return nil, false
	}
	return r.embedded, true
}

func (r Ref[T]) IsZero() bool {
	return r.id == 0 && r.embedded == nil
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = Ref[T]{}
		return nil
	}

	if trimmed[0] == '{' {
		var entity T
		if err := json.Unmarshal(trimmed, &entity); err != nil {
			return fmt.Errorf("decode embedded reference: %w", err)
		}
		r.embedded = &entity
		r.id = entity.EntityID()
		return nil
	}

	id, err := strconv.ParseInt(string(trimmed), 10, 64)
	if err != nil {
		return fmt.Errorf("reference is neither an id nor an object: %w", err)
	}
	*r = Ref[T]{id: id}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.embedded != nil {
		return json.Marshal(r.embedded)
	}
	if r.id == 0 {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(r.id, 10)), nil
}
