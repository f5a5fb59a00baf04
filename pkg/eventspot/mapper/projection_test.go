package mapper

import (
	"encoding/json"
	"testing"

	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
	"github.com/matryer/is"
)

func TestAbsentFieldsAreOmittedByDefault(t *testing.T) {
	is := is.New(t)

	p := NewProjection(Policy{})
	PutText(p, "title", optional.Some("Annual Gala"))
	PutText(p, "description", optional.None[string]())
	PutBool(p, "is_virtual_event", optional.None[bool]())

	b, err := json.Marshal(p.Payload())
	is.NoErr(err)
	is.Equal(string(b), `{"title":"Annual Gala"}`)
}

func TestNullForEmitsNullForAbsentFields(t *testing.T) {
	is := is.New(t)

	p := NewProjection(NullFor("description"))
	PutText(p, "description", optional.None[string]())
	PutText(p, "location", optional.None[string]())

	b, err := json.Marshal(p.Payload())
	is.NoErr(err)
	is.Equal(string(b), `{"description":null}`)
}

func TestZeroValuesAreWritten(t *testing.T) {
	is := is.New(t)

	p := NewProjection(Policy{})
	PutText(p, "description", optional.Some(""))
	PutBool(p, "is_map_displayed", optional.Some(false))
	PutInteger(p, "guest_limit", optional.Some(int64(0)))
	PutTextList(p, "payment_types", optional.Some([]string{}))

	b, err := json.Marshal(p.Payload())
	is.NoErr(err)
	is.Equal(string(b), `{"description":"","guest_limit":0,"is_map_displayed":false,"payment_types":[]}`)
}

func TestPutObjectPassesNestedPolicy(t *testing.T) {
	is := is.New(t)

	serialize := func(url optional.Value[string], policy Policy) types.Payload {
		p := NewProjection(policy)
		PutText(p, "url", url)
		return p.Payload()
	}

	p := NewProjection(NullFor("online_meeting.url"))
	PutObject(p, "online_meeting", optional.Some(optional.None[string]()), serialize)

	b, err := json.Marshal(p.Payload())
	is.NoErr(err)
	is.Equal(string(b), `{"online_meeting":{"url":null}}`)
}

func TestPolicy(t *testing.T) {
	is := is.New(t)

	policy := NullFor("title").Merge(NullFor("address.line2"))

	is.Equal(policy.For("title"), EmitNull)
	is.Equal(policy.For("name"), Omit)
	is.Equal(policy.For("address.line2"), EmitNull)
	is.Equal(policy.Sub("address").For("line2"), EmitNull)
	is.Equal(policy.Sub("address").For("title"), Omit)
	is.Equal(EmitNull.String(), "null")
}

func TestIntegersAreWrittenAsDecodedNumbers(t *testing.T) {
	is := is.New(t)

	decoded := types.Payload{}
	is.NoErr(json.Unmarshal([]byte(`{"guest_limit":3}`), &decoded))

	limit, err := Integer(decoded, "guest_limit")
	is.NoErr(err)

	p := NewProjection(Policy{})
	PutInteger(p, "guest_limit", limit)

	is.Equal(p.Payload(), decoded)
}
