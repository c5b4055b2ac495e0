// api/model/neo4j/relationships.go
package murale_neo4j

// Relationship Types
const (
	// RelAccepts represents the relationship between a product and its attribute definitions
	RelAccepts = "ACCEPTS"

	// RelFeaturedIn represents the relationship between a curated image and a collection
	RelFeaturedIn = "FEATURED_IN"

	// RelDerivedFrom represents the relationship between a product and the curated image it prints
	RelDerivedFrom = "DERIVED_FROM"

	// RelCreatedBy represents the relationship between a node and its creator
	RelCreatedBy = "CREATED_BY"
)
