package mapper

import (
	"strings"

	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
)

// AbsentPolicy decides what the serializer does with a field that is not set
type AbsentPolicy int

const (
	// Omit leaves the key out of the payload, which the remote service reads
	// as "do not change this field"
	Omit AbsentPolicy = iota
	// EmitNull writes the key with a null value, which the remote service
	// reads as "clear this field"
	EmitNull
)

func (ap AbsentPolicy) String() string {
	if ap == EmitNull {
		return "null"
	}
	return "omit"
}

// Policy is the set of field paths that should be emitted as null when absent.
// Nested fields are addressed with dotted paths, e.g. "online_meeting.url".
// The zero Policy omits everything.
type Policy struct {
	nulls map[string]struct{}
}

func NullFor(paths ...string) Policy {
	p := Policy{nulls: make(map[string]struct{}, len(paths))}
	for _, path := range paths {
		p.nulls[path] = struct{}{}
	}
	return p
}

// Merge returns a policy that emits null for every path in p or other
func (p Policy) Merge(other Policy) Policy {
	merged := NullFor()
	for path := range p.nulls {
		merged.nulls[path] = struct{}{}
	}
	for path := range other.nulls {
		merged.nulls[path] = struct{}{}
	}
	return merged
}

func (p Policy) For(field string) AbsentPolicy {
	if _, ok := p.nulls[field]; ok {
		return EmitNull
	}
	return Omit
}

// Sub returns the part of the policy that applies below field
func (p Policy) Sub(field string) Policy {
	prefix := field + "."
	sub := NullFor()
	for path := range p.nulls {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			sub.nulls[rest] = struct{}{}
		}
	}
	return sub
}

// Projection builds an outbound payload one declared field at a time
type Projection struct {
	policy  Policy
	payload types.Payload
}

func NewProjection(policy Policy) *Projection {
	return &Projection{
		policy:  policy,
		payload: types.Payload{},
	}
}

func (p *Projection) Payload() types.Payload {
	return p.payload
}

func (p *Projection) Policy() Policy {
	return p.policy
}

func (p *Projection) absent(key string) {
	if p.policy.For(key) == EmitNull {
		p.payload[key] = nil
	}
}

func PutText(p *Projection, key string, v optional.Value[string]) {
	PutEnum(p, key, v)
}

// PutEnum writes any text-like value (enums, date times) as plain text
func PutEnum[E ~string](p *Projection, key string, v optional.Value[E]) {
	if s, ok := v.Get(); ok {
		p.payload[key] = string(s)
		return
	}
	p.absent(key)
}

func PutBool(p *Projection, key string, v optional.Value[bool]) {
	if b, ok := v.Get(); ok {
		p.payload[key] = b
		return
	}
	p.absent(key)
}

// PutInteger writes integers as float64, the type encoding/json decodes
// numbers into
func PutInteger(p *Projection, key string, v optional.Value[int64]) {
	if n, ok := v.Get(); ok {
		p.payload[key] = float64(n)
		return
	}
	p.absent(key)
}

func PutTextList[E ~string](p *Projection, key string, v optional.Value[[]E]) {
	if list, ok := v.Get(); ok {
		values := make([]any, 0, len(list))
		for _, s := range list {
			values = append(values, string(s))
		}
		p.payload[key] = values
		return
	}
	p.absent(key)
}

// PutObject writes a nested composite using its own serializer. The nested
// serializer receives the part of the policy addressed to key.
func PutObject[T any](p *Projection, key string, v optional.Value[T], serialize func(T, Policy) types.Payload) {
	if t, ok := v.Get(); ok {
		p.payload[key] = serialize(t, p.policy.Sub(key))
		return
	}
	p.absent(key)
}
