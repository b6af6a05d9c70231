package goload

import (
	"strconv"

	"type-introspector/typemeta"
)

// TagNamespace holds the annotation types derived from struct tag keys.
const TagNamespace = "tag"

type tagPair struct {
	key   string
	value string
}

// tagAnnotations converts a raw struct tag into annotation records, one per
// tag key in declaration order. Each key defines (once) an annotation type
// in the tag namespace; the payload carries the tag value under "value".
func tagAnnotations(u *typemeta.Universe, rawTag string) []typemeta.Annotation {
	pairs := parseTag(rawTag)
	if len(pairs) == 0 {
		return nil
	}

	anns := make([]typemeta.Annotation, 0, len(pairs))
	for _, p := range pairs {
		anns = append(anns, typemeta.Annotation{
			Type: u.DefineClass(TagNamespace, p.key, nil),
			Data: map[string]any{"value": p.value},
		})
	}

	return anns
}

// parseTag splits a raw struct tag into its key/value pairs, preserving
// declaration order. The syntax is the reflect.StructTag convention:
// space-separated key:"value" pairs with quoted values. Malformed tails are
// dropped silently, like reflect does.
func parseTag(tag string) []tagPair {
	var pairs []tagPair

	for tag != "" {
		// Skip leading space.
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}

		tag = tag[i:]
		if tag == "" {
			break
		}

		// Scan to colon. A space, quote, or control character ends a key.
		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}

		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			break
		}

		key := tag[:i]
		tag = tag[i+1:]

		// Scan the quoted value.
		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}

		if i >= len(tag) {
			break
		}

		quoted := tag[:i+1]
		tag = tag[i+1:]

		value, err := strconv.Unquote(quoted)
		if err != nil {
			break
		}

		pairs = append(pairs, tagPair{key: key, value: value})
	}

	return pairs
}
