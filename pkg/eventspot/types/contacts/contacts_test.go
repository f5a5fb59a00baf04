package contacts

import (
	"encoding/json"
	"errors"
	"testing"

	eserrors "github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/diwise/eventspot/pkg/eventspot/mapper"
	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
	"github.com/matryer/is"
)

func TestCreateContact(t *testing.T) {
	is := is.New(t)

	c, err := Create(types.Payload{
		"name":          "Ada Lovelace",
		"email_address": "ada@example.com",
		"phone_number":  "",
	})
	is.NoErr(err)
	is.Equal(c.Name.OrElse(""), "Ada Lovelace")
	is.True(c.PhoneNumber.IsSet())
	is.True(!c.OrganizationName.IsSet())

	b, err := json.Marshal(c)
	is.NoErr(err)
	is.Equal(string(b), `{"email_address":"ada@example.com","name":"Ada Lovelace","phone_number":""}`)
}

func TestCreateContactWithNumericPhone(t *testing.T) {
	is := is.New(t)

	_, err := Create(types.Payload{"phone_number": 46701234567.0})
	is.True(errors.Is(err, eserrors.ErrTypeConversion))
}

func TestSerializeWithNullPolicy(t *testing.T) {
	is := is.New(t)

	c := Contact{Name: optional.Some("Ada")}
	b, err := json.Marshal(c.SerializeWith(mapper.NullFor("organization_name")))

	is.NoErr(err)
	is.Equal(string(b), `{"name":"Ada","organization_name":null}`)
}
