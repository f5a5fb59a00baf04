// Package catalog holds the published field catalogs of the mapped entities.
// A catalog documents names, kinds, length bounds, legal values, defaults and
// cross-field requirements. Mapping never consults it to reject anything.
package catalog

import (
	"slices"

	"github.com/diwise/eventspot/pkg/eventspot/mapper"
)

type Kind int

const (
	Text Kind = iota
	DateTime
	Boolean
	Integer
	Enum
	TextList
	EnumList
	Object
)

var kindNames = map[Kind]string{
	Text:     "text",
	DateTime: "datetime",
	Boolean:  "boolean",
	Integer:  "integer",
	Enum:     "enum",
	TextList: "text list",
	EnumList: "enum list",
	Object:   "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsComposite is true for fields whose value is a nested mapping
func (k Kind) IsComposite() bool {
	return k == Object
}

type Field struct {
	Name      string
	Kind      Kind
	MaxLength int
	Values    []string
	Default   any
	Requires  string
	Absent    mapper.AbsentPolicy
	Nested    *Catalog
}

func (f Field) Allows(value string) bool {
	if len(f.Values) == 0 {
		return true
	}
	return slices.Contains(f.Values, value)
}

type Catalog struct {
	Entity  string
	Version string
	Fields  []Field
}

func (c *Catalog) Lookup(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Policy returns the default absent policy documented for the catalog,
// including nested catalogs
func (c *Catalog) Policy() mapper.Policy {
	return mapper.NullFor(c.nullPaths("")...)
}

func (c *Catalog) nullPaths(prefix string) []string {
	paths := []string{}
	for _, f := range c.Fields {
		if f.Absent == mapper.EmitNull {
			paths = append(paths, prefix+f.Name)
		}
		if f.Nested != nil {
			paths = append(paths, f.Nested.nullPaths(prefix+f.Name+".")...)
		}
	}
	return paths
}
