package addresses

import (
	"encoding/json"
	"errors"
	"testing"

	eserrors "github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/diwise/eventspot/pkg/eventspot/types/optional"
	"github.com/matryer/is"
)

func TestCreateAndSerialize(t *testing.T) {
	is := is.New(t)

	props := types.Payload{}
	is.NoErr(json.Unmarshal([]byte(addressJSON), &props))

	a, err := Create(props)
	is.NoErr(err)
	is.Equal(a.City.OrElse(""), "Sundsvall")
	is.Equal(a.AddressType.OrElse(""), Business)
	is.Equal(a.FormatType.OrElse(""), FormatINTL)
	is.True(!a.Line2.IsSet())

	b, err := json.Marshal(a)
	is.NoErr(err)
	is.Equal(string(b), `{"address_type":"BUSINESS","city":"Sundsvall","country_code":"SE","format_type":"INTL","latitude":"62.3908","line1":"Norrmalmsgatan 4","longitude":"17.3069","postal_code":"85185"}`)
}

func TestUndocumentedAddressTypeIsKept(t *testing.T) {
	is := is.New(t)

	a, err := Create(types.Payload{"address_type": "SUMMER_HOUSE"})
	is.NoErr(err)
	is.Equal(a.AddressType.OrElse(""), AddressType("SUMMER_HOUSE"))
}

func TestNumericCoordinatesAreRejected(t *testing.T) {
	is := is.New(t)

	_, err := Create(types.Payload{"latitude": 62.3908})
	is.True(errors.Is(err, eserrors.ErrTypeConversion))
}

func TestCheckFindsLongStateCode(t *testing.T) {
	is := is.New(t)

	a := Address{StateCode: optional.Some("YNP")}
	findings := Catalog.Check(a.Serialize())

	is.Equal(len(findings), 1)
	is.Equal(findings[0].Field, "state_code")
}

const addressJSON string = `{
	"line1": "Norrmalmsgatan 4",
	"city": "Sundsvall",
	"address_type": "BUSINESS",
	"country_code": "SE",
	"postal_code": "85185",
	"latitude": "62.3908",
	"longitude": "17.3069",
	"format_type": "INTL",
	"unknown_field": 42
}`
