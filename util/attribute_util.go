// api/util/attribute_util.go
package util

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/muralehq/murale/api/model"
)

// NormalizeAttributes canonicalizes a product attribute set so that quote
// cache lookups are insensitive to key case, value case, surrounding
// whitespace and empty entries. Keys are lower-cased; values are
// stringified, trimmed and lower-cased; entries whose value is nil or an
// empty string are dropped. A nil input yields an empty map. The function
// never fails.
func NormalizeAttributes(attrs model.AttributeSet) map[string]string {
	normalized := make(map[string]string, len(attrs))
	for key, raw := range attrs {
		if raw == nil {
			continue
		}
		value := strings.TrimSpace(fmt.Sprint(raw))
		if value == "" {
			continue
		}
		normalized[strings.ToLower(key)] = strings.ToLower(value)
	}
	return normalized
}

// SortedAttributeKeys returns the normalized attribute keys in lexicographic
// order. Every serialization of a normalized set must iterate in this order.
func SortedAttributeKeys(normalized map[string]string) []string {
	keys := make([]string, 0, len(normalized))
	for key := range normalized {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// QuoteKey derives the deterministic cache key for a (SKU, attributes) pair.
// Semantically equal inputs always produce byte-identical keys; that is the
// sole contract the quote cache relies on.
func QuoteKey(sku string, attrs model.AttributeSet) string {
	normalized := NormalizeAttributes(attrs)

	var b strings.Builder
	b.WriteString(strings.ToLower(sku))
	b.WriteString(":{")
	for i, key := range SortedAttributeKeys(normalized) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(key))
		b.WriteByte(':')
		b.WriteString(strconv.Quote(normalized[key]))
	}
	b.WriteByte('}')
	return b.String()
}
