// api/model/neo4j/nodes.go
package murale_neo4j

// Node Labels
const (
	// LabelProduct represents a sellable wall-art product
	LabelProduct = "Product"

	// LabelAttributeDefinition represents a customization attribute a product accepts
	LabelAttributeDefinition = "AttributeDefinition"

	// LabelCollection represents a curated collection of images
	LabelCollection = "Collection"

	// LabelCuratedImage represents an artwork surfaced for browsing
	LabelCuratedImage = "CuratedImage"
)
