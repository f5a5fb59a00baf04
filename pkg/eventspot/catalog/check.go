package catalog

import (
	"fmt"
	"unicode/utf8"

	"github.com/diwise/eventspot/pkg/eventspot/types"
)

// Finding describes one way a payload falls outside its documented contract
type Finding struct {
	Field  string
	Reason string
}

func (f Finding) String() string {
	return f.Field + ": " + f.Reason
}

// Check compares a serialized payload with the documented bounds of the
// catalog so that client code can pre-validate before submitting it. Values
// of an unexpected shape are skipped, shape is the mapper's concern.
func (c *Catalog) Check(payload types.Payload) []Finding {
	return c.check("", payload)
}

func (c *Catalog) check(prefix string, payload types.Payload) []Finding {
	findings := []Finding{}

	for _, f := range c.Fields {
		v, ok := payload[f.Name]
		if !ok || v == nil {
			continue
		}

		path := prefix + f.Name

		switch f.Kind {
		case Text, Enum:
			s, ok := v.(string)
			if !ok {
				continue
			}
			if f.MaxLength > 0 && utf8.RuneCountInString(s) > f.MaxLength {
				findings = append(findings, Finding{
					Field:  path,
					Reason: fmt.Sprintf("length %d exceeds maximum of %d", utf8.RuneCountInString(s), f.MaxLength),
				})
			}
			if !f.Allows(s) {
				findings = append(findings, Finding{Field: path, Reason: fmt.Sprintf("%q is not a documented value", s)})
			}
		case EnumList:
			list, ok := v.([]any)
			if !ok {
				continue
			}
			for _, item := range list {
				if s, ok := item.(string); ok && !f.Allows(s) {
					findings = append(findings, Finding{Field: path, Reason: fmt.Sprintf("%q is not a documented value", s)})
				}
			}
		case Object:
			sub, ok := v.(map[string]any)
			if !ok || f.Nested == nil {
				continue
			}
			findings = append(findings, f.Nested.check(path+".", sub)...)
		}
	}

	return findings
}
