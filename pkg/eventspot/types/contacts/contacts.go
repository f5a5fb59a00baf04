package contacts

import (
	"encoding/json"

	"github.com/diwise/eventspot/pkg/eventspot/catalog"
	"github.com/diwise/eventspot/pkg/eventspot/mapper"
	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
)

// Contact is the event host's contact information
type Contact struct {
	Name             optional.Value[string]
	OrganizationName optional.Value[string]
	EmailAddress     optional.Value[string]
	PhoneNumber      optional.Value[string]
}

var Catalog = &catalog.Catalog{
	Entity:  "Contact",
	Version: "v2",
	Fields: []catalog.Field{
		{Name: "name", Kind: catalog.Text, MaxLength: 100},
		{Name: "organization_name", Kind: catalog.Text, MaxLength: 255},
		{Name: "email_address", Kind: catalog.Text, MaxLength: 128},
		{Name: "phone_number", Kind: catalog.Text, MaxLength: 25},
	},
}

func Create(props types.Payload) (Contact, error) {
	var err error
	c := Contact{}

	if c.Name, err = mapper.Text(props, "name"); err != nil {
		return Contact{}, err
	}
	if c.OrganizationName, err = mapper.Text(props, "organization_name"); err != nil {
		return Contact{}, err
	}
	if c.EmailAddress, err = mapper.Text(props, "email_address"); err != nil {
		return Contact{}, err
	}
	if c.PhoneNumber, err = mapper.Text(props, "phone_number"); err != nil {
		return Contact{}, err
	}

	return c, nil
}

func (c Contact) Serialize() types.Payload {
	return c.SerializeWith(Catalog.Policy())
}

func (c Contact) SerializeWith(policy mapper.Policy) types.Payload {
	p := mapper.NewProjection(policy)

	mapper.PutText(p, "name", c.Name)
	mapper.PutText(p, "organization_name", c.OrganizationName)
	mapper.PutText(p, "email_address", c.EmailAddress)
	mapper.PutText(p, "phone_number", c.PhoneNumber)

	return p.Payload()
}

func (c Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Serialize())
}
