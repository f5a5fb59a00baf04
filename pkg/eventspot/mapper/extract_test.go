package mapper

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	eserrors "github.com/diwise/eventspot/pkg/eventspot/errors"
	"github.com/diwise/eventspot/pkg/eventspot/types"
	"github.com/matryer/is"
)

func TestMissingAndNullAreAbsent(t *testing.T) {
	is := is.New(t)
	props := types.Payload{"title": nil}

	title, err := Text(props, "title")
	is.NoErr(err)
	is.True(!title.IsSet())

	name, err := Text(props, "name")
	is.NoErr(err)
	is.True(!name.IsSet())

	flag, err := Bool(nil, "is_virtual_event")
	is.NoErr(err)
	is.True(!flag.IsSet())
}

func TestEmptyTextIsPresent(t *testing.T) {
	is := is.New(t)

	desc, err := Text(types.Payload{"description": ""}, "description")
	is.NoErr(err)

	s, ok := desc.Get()
	is.True(ok)
	is.Equal(s, "")
}

func TestFalseIsPresent(t *testing.T) {
	is := is.New(t)

	b, err := Bool(types.Payload{"is_map_displayed": false}, "is_map_displayed")
	is.NoErr(err)
	is.True(b.IsSet())
	is.Equal(b.OrElse(true), false)
}

func TestEnumAcceptsUndocumentedValues(t *testing.T) {
	is := is.New(t)

	type color string
	c, err := Enum[color](types.Payload{"color": "ULTRAVIOLET"}, "color")

	is.NoErr(err)
	is.Equal(c.OrElse(""), color("ULTRAVIOLET"))
}

func TestShapeMismatchIsATypeConversionError(t *testing.T) {
	is := is.New(t)

	_, err := Text(types.Payload{"title": 17.0}, "title")
	is.True(err != nil)
	is.True(errors.Is(err, eserrors.ErrTypeConversion))
	is.Equal(err.Error(), `field "title": cannot convert float64 to text`)

	_, err = Bool(types.Payload{"is_virtual_event": "yes"}, "is_virtual_event")
	is.True(errors.Is(err, eserrors.ErrTypeConversion))

	var te *TypeError
	is.True(errors.As(err, &te))
	is.Equal(te.Field, "is_virtual_event")
	is.Equal(te.Expected, "boolean")
}

func TestInteger(t *testing.T) {
	is := is.New(t)

	props := types.Payload{}
	is.NoErr(json.Unmarshal([]byte(`{"a":12,"b":12.5,"c":"12"}`), &props))

	a, err := Integer(props, "a")
	is.NoErr(err)
	is.Equal(a.OrElse(0), int64(12))

	_, err = Integer(props, "b")
	is.True(errors.Is(err, eserrors.ErrTypeConversion))

	_, err = Integer(props, "c")
	is.True(errors.Is(err, eserrors.ErrTypeConversion))

	n, err := Integer(types.Payload{"n": json.Number("7")}, "n")
	is.NoErr(err)
	is.Equal(n.OrElse(0), int64(7))
}

func TestTextList(t *testing.T) {
	is := is.New(t)

	list, err := TextList(types.Payload{"sections": []any{"CONTACT", "TIME"}}, "sections")
	is.NoErr(err)
	is.Equal(list.OrElse(nil), []string{"CONTACT", "TIME"})

	empty, err := TextList(types.Payload{"sections": []any{}}, "sections")
	is.NoErr(err)
	is.True(empty.IsSet())
	is.Equal(len(empty.OrElse(nil)), 0)

	_, err = TextList(types.Payload{"sections": []any{"CONTACT", 3.0}}, "sections")
	is.True(errors.Is(err, eserrors.ErrTypeConversion))

	_, err = TextList(types.Payload{"sections": "CONTACT"}, "sections")
	is.True(errors.Is(err, eserrors.ErrTypeConversion))
}

type pair struct {
	left  string
	right string
}

func createPair(props types.Payload) (pair, error) {
	l, err := Text(props, "left")
	if err != nil {
		return pair{}, err
	}
	r, err := Text(props, "right")
	if err != nil {
		return pair{}, err
	}
	return pair{left: l.OrElse(""), right: r.OrElse("")}, nil
}

func TestObject(t *testing.T) {
	is := is.New(t)

	p, err := Object(types.Payload{"pair": map[string]any{"left": "a", "right": "b"}}, "pair", createPair)
	is.NoErr(err)
	is.Equal(p.OrElse(pair{}), pair{left: "a", right: "b"})

	_, err = Object(types.Payload{"pair": "a,b"}, "pair", createPair)
	is.True(errors.Is(err, eserrors.ErrTypeConversion))

	_, err = Object(types.Payload{"pair": map[string]any{"left": true}}, "pair", createPair)
	is.True(errors.Is(err, eserrors.ErrTypeConversion))
	is.Equal(err.Error(), `pair: field "left": cannot convert bool to text`)
}

func TestIntegerOutOfRange(t *testing.T) {
	is := is.New(t)

	_, err := Integer(types.Payload{"n": math.Pow(2, 63)}, "n")
	is.True(errors.Is(err, eserrors.ErrTypeConversion))

	_, err = Integer(types.Payload{"n": -math.Pow(2, 64)}, "n")
	is.True(errors.Is(err, eserrors.ErrTypeConversion))

	_, err = Integer(types.Payload{"n": uint64(math.MaxUint64)}, "n")
	is.True(errors.Is(err, eserrors.ErrTypeConversion))

	smallest, err := Integer(types.Payload{"n": math.Pow(-2, 63)}, "n")
	is.NoErr(err)
	is.Equal(smallest.OrElse(0), int64(math.MinInt64))
}

func TestIntegerAcceptsNativeIntegerKinds(t *testing.T) {
	is := is.New(t)

	for _, v := range []any{int(5), int8(5), int16(5), int32(5), int64(5), uint(5), uint8(5), uint16(5), uint32(5), uint64(5)} {
		n, err := Integer(types.Payload{"n": v}, "n")
		is.NoErr(err)
		is.Equal(n.OrElse(0), int64(5))
	}
}
