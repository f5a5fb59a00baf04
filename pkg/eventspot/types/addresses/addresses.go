package addresses

import (
	"encoding/json"

	"github.com/diwise/eventspot/pkg/eventspot/catalog"
	"github.com/diwise/eventspot/pkg/eventspot/mapper"
	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
)

type AddressType string

const (
	Business AddressType = "BUSINESS"
	Personal AddressType = "PERSONAL"
	Unknown  AddressType = "UNKNOWN"
)

type FormatType string

const (
	FormatUS   FormatType = "US"
	FormatCA   FormatType = "CA"
	FormatINTL FormatType = "INTL"
)

// Address is a postal address, used for event locations and payment addresses.
// It is a plain value: copying an Address copies all of its fields.
type Address struct {
	ID            optional.Value[string]
	Line1         optional.Value[string]
	Line2         optional.Value[string]
	Line3         optional.Value[string]
	City          optional.Value[string]
	AddressType   optional.Value[AddressType]
	StateCode     optional.Value[string]
	State         optional.Value[string]
	CountryCode   optional.Value[string]
	PostalCode    optional.Value[string]
	SubPostalCode optional.Value[string]
	Latitude      optional.Value[string]
	Longitude     optional.Value[string]
	FormatType    optional.Value[FormatType]
}

var Catalog = &catalog.Catalog{
	Entity:  "Address",
	Version: "v2",
	Fields: []catalog.Field{
		{Name: "id", Kind: catalog.Text},
		{Name: "line1", Kind: catalog.Text, MaxLength: 50},
		{Name: "line2", Kind: catalog.Text, MaxLength: 50},
		{Name: "line3", Kind: catalog.Text, MaxLength: 50},
		{Name: "city", Kind: catalog.Text, MaxLength: 50},
		{Name: "address_type", Kind: catalog.Enum, Values: []string{string(Business), string(Personal), string(Unknown)}},
		{Name: "state_code", Kind: catalog.Text, MaxLength: 2},
		{Name: "state", Kind: catalog.Text, MaxLength: 50},
		{Name: "country_code", Kind: catalog.Text, MaxLength: 2},
		{Name: "postal_code", Kind: catalog.Text, MaxLength: 25},
		{Name: "sub_postal_code", Kind: catalog.Text, MaxLength: 25},
		{Name: "latitude", Kind: catalog.Text},
		{Name: "longitude", Kind: catalog.Text},
		{Name: "format_type", Kind: catalog.Enum, Values: []string{string(FormatUS), string(FormatCA), string(FormatINTL)}},
	},
}

// Create builds an Address from a decoded payload. Missing fields stay absent.
func Create(props types.Payload) (Address, error) {
	var err error
	a := Address{}

	texts := []struct {
		key   string
		field *optional.Value[string]
	}{
		{"id", &a.ID},
		{"line1", &a.Line1},
		{"line2", &a.Line2},
		{"line3", &a.Line3},
		{"city", &a.City},
		{"state_code", &a.StateCode},
		{"state", &a.State},
		{"country_code", &a.CountryCode},
		{"postal_code", &a.PostalCode},
		{"sub_postal_code", &a.SubPostalCode},
		{"latitude", &a.Latitude},
		{"longitude", &a.Longitude},
	}

	for _, t := range texts {
		if *t.field, err = mapper.Text(props, t.key); err != nil {
			return Address{}, err
		}
	}

	if a.AddressType, err = mapper.Enum[AddressType](props, "address_type"); err != nil {
		return Address{}, err
	}

	if a.FormatType, err = mapper.Enum[FormatType](props, "format_type"); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Serialize() types.Payload {
	return a.SerializeWith(Catalog.Policy())
}

func (a Address) SerializeWith(policy mapper.Policy) types.Payload {
	p := mapper.NewProjection(policy)

	mapper.PutText(p, "id", a.ID)
	mapper.PutText(p, "line1", a.Line1)
	mapper.PutText(p, "line2", a.Line2)
	mapper.PutText(p, "line3", a.Line3)
	mapper.PutText(p, "city", a.City)
	mapper.PutEnum(p, "address_type", a.AddressType)
	mapper.PutText(p, "state_code", a.StateCode)
	mapper.PutText(p, "state", a.State)
	mapper.PutText(p, "country_code", a.CountryCode)
	mapper.PutText(p, "postal_code", a.PostalCode)
	mapper.PutText(p, "sub_postal_code", a.SubPostalCode)
	mapper.PutText(p, "latitude", a.Latitude)
	mapper.PutText(p, "longitude", a.Longitude)
	mapper.PutEnum(p, "format_type", a.FormatType)

	return p.Payload()
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Serialize())
}
