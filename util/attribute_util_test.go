// api/util/attribute_util_test.go
package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muralehq/murale/api/model"
	"github.com/muralehq/murale/api/util"
)

func TestNormalizeAttributes(t *testing.T) {
	t.Run("LowercasesAndTrims", func(t *testing.T) {
		got := util.NormalizeAttributes(model.AttributeSet{"Size": " Large "})
		assert.Equal(t, map[string]string{"size": "large"}, got)
	})

	t.Run("DropsEmptyAndNilValues", func(t *testing.T) {
		got := util.NormalizeAttributes(model.AttributeSet{
			"size":   "large",
			"Color":  "",
			"Finish": nil,
		})
		assert.Equal(t, map[string]string{"size": "large"}, got)
	})

	t.Run("StringifiesNonStringValues", func(t *testing.T) {
		got := util.NormalizeAttributes(model.AttributeSet{
			"Width":  30,
			"Framed": true,
		})
		assert.Equal(t, map[string]string{"width": "30", "framed": "true"}, got)
	})

	t.Run("NilInputYieldsEmptyMap", func(t *testing.T) {
		got := util.NormalizeAttributes(nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("KeyCaseCollapses", func(t *testing.T) {
		a := util.NormalizeAttributes(model.AttributeSet{"Size": " Large ", "MATERIAL": "Canvas"})
		b := util.NormalizeAttributes(model.AttributeSet{"size": "large", "material": "canvas"})
		assert.Equal(t, b, a)
	})
}

func TestSortedAttributeKeys(t *testing.T) {
	keys := util.SortedAttributeKeys(map[string]string{"size": "large", "finish": "matte", "material": "canvas"})
	assert.Equal(t, []string{"finish", "material", "size"}, keys)
}

func TestQuoteKey(t *testing.T) {
	t.Run("InsensitiveToCaseOrderAndEmptyEntries", func(t *testing.T) {
		a := util.QuoteKey("ABC123", model.AttributeSet{"Size": "Large", "Color": ""})
		b := util.QuoteKey("abc123", model.AttributeSet{"size": "large"})
		assert.Equal(t, b, a)
	})

	t.Run("KeyOrderNeverAffectsOutput", func(t *testing.T) {
		a := util.QuoteKey("sku-1", model.AttributeSet{"size": "large", "material": "canvas", "finish": "matte"})
		b := util.QuoteKey("sku-1", model.AttributeSet{"finish": "matte", "size": "large", "material": "canvas"})
		assert.Equal(t, a, b)
	})

	t.Run("SerializedFormIsStable", func(t *testing.T) {
		got := util.QuoteKey("SKU-9", model.AttributeSet{"Size": " 30x40 ", "finish": "Matte"})
		assert.Equal(t, `sku-9:{"finish":"matte","size":"30x40"}`, got)
	})

	t.Run("NoAttributes", func(t *testing.T) {
		assert.Equal(t, "sku-9:{}", util.QuoteKey("SKU-9", nil))
	})

	t.Run("DistinctAttributesDistinctKeys", func(t *testing.T) {
		a := util.QuoteKey("sku-1", model.AttributeSet{"size": "large"})
		b := util.QuoteKey("sku-1", model.AttributeSet{"size": "small"})
		assert.NotEqual(t, a, b)
	})
}
