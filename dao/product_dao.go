// api/dao/product_dao.go

package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/muralehq/murale/api/audit"
	murale_errors "github.com/muralehq/murale/api/errors"
	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
	murale_neo4j "github.com/muralehq/murale/api/model/neo4j"
	helper_util "github.com/muralehq/murale/api/util/helper"
)

type ProductDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewProductDAO(driver neo4j.Driver, auditService audit.Service) *ProductDAO {
	dao := &ProductDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Product", zap.Error(err))
	}
	return dao
}

func (dao *ProductDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Product SKU")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
		CREATE CONSTRAINT unique_product_sku IF NOT EXISTS
		FOR (p:` + murale_neo4j.LabelProduct + `) REQUIRE p.sku IS UNIQUE
		`
		_, err := transaction.Run(query, nil)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraint on Product SKU", zap.Error(err))
		return err
	}

	return nil
}

func (dao *ProductDAO) CreateProduct(ctx context.Context, product model.Product) (string, error) {
	start := time.Now()
	logger.Info("Creating new product", zap.String("sku", product.SKU))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	result, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		definitionsJSON, err := json.Marshal(product.AttributeDefinitions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal attribute definitions: %w", err)
		}
		metadataJSON, err := json.Marshal(product.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}

		query := `
        CREATE (p:` + murale_neo4j.LabelProduct + ` {
            id: $id,
            sku: $sku,
            name: $name,
            description: $description,
            basePrice: $basePrice,
            currency: $currency,
            status: $status,
            attributeDefinitions: $attributeDefinitions,
            tags: $tags,
            metadata: $metadata,
            createdBy: $createdBy,
            updatedBy: $updatedBy,
            createdAt: $createdAt,
            updatedAt: $updatedAt
        })
        RETURN p.id as id
        `

		params := map[string]interface{}{
			"id":                   product.ID,
			"sku":                  product.SKU,
			"name":                 product.Name,
			"description":          product.Description,
			"basePrice":            product.BasePrice,
			"currency":             product.Currency,
			"status":               product.Status,
			"attributeDefinitions": string(definitionsJSON),
			"tags":                 product.Tags,
			"metadata":             string(metadataJSON),
			"createdBy":            product.CreatedBy,
			"updatedBy":            product.UpdatedBy,
			"createdAt":            product.CreatedAt.Format(time.RFC3339),
			"updatedAt":            product.UpdatedAt.Format(time.RFC3339),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}

		if result.Next() {
			return result.Record().Values[0], nil
		}

		return nil, fmt.Errorf("no ID returned")
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create product",
			zap.Error(err),
			zap.String("sku", product.SKU),
			zap.Duration("duration", duration))
		return "", murale_errors.ErrDatabaseOperation
	}

	productID := fmt.Sprintf("%v", result)
	logger.Info("Product created successfully",
		zap.String("productID", productID),
		zap.Duration("duration", duration))

	// Audit trail
	dao.logProductAudit(ctx, audit.ActionProductCreated, productID, product)

	return productID, nil
}

func (dao *ProductDAO) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	start := time.Now()
	logger.Info("Updating product", zap.String("productID", product.ID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	product.UpdatedAt = time.Now()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		definitionsJSON, err := json.Marshal(product.AttributeDefinitions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal attribute definitions: %w", err)
		}
		metadataJSON, err := json.Marshal(product.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}

		query := `
        MATCH (p:` + murale_neo4j.LabelProduct + ` {id: $id})
        SET p.name = $name,
            p.description = $description,
            p.basePrice = $basePrice,
            p.currency = $currency,
            p.status = $status,
            p.attributeDefinitions = $attributeDefinitions,
            p.tags = $tags,
            p.metadata = $metadata,
            p.updatedBy = $updatedBy,
            p.updatedAt = $updatedAt
        RETURN p.id as id
        `

		params := map[string]interface{}{
			"id":                   product.ID,
			"name":                 product.Name,
			"description":          product.Description,
			"basePrice":            product.BasePrice,
			"currency":             product.Currency,
			"status":               product.Status,
			"attributeDefinitions": string(definitionsJSON),
			"tags":                 product.Tags,
			"metadata":             string(metadataJSON),
			"updatedBy":            product.UpdatedBy,
			"updatedAt":            product.UpdatedAt.Format(time.RFC3339),
		}

		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}

		if result.Next() {
			return result.Record().Values[0], nil
		}

		return nil, murale_errors.ErrProductNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update product",
			zap.Error(err),
			zap.String("productID", product.ID),
			zap.Duration("duration", duration))
		return nil, err
	}

	logger.Info("Product updated successfully",
		zap.String("productID", product.ID),
		zap.Duration("duration", duration))

	dao.logProductAudit(ctx, audit.ActionProductUpdated, product.ID, product)

	return &product, nil
}

func (dao *ProductDAO) DeleteProduct(ctx context.Context, productID string) error {
	start := time.Now()
	logger.Info("Deleting product", zap.String("productID", productID))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (p:` + murale_neo4j.LabelProduct + ` {id: $id})
        DETACH DELETE p
        RETURN count(p) as deleted
        `
		result, err := transaction.Run(query, map[string]interface{}{"id": productID})
		if err != nil {
			return nil, err
		}
		if result.Next() {
			if result.Record().Values[0].(int64) == 0 {
				return nil, murale_errors.ErrProductNotFound
			}
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete product",
			zap.Error(err),
			zap.String("productID", productID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Product deleted successfully",
		zap.String("productID", productID),
		zap.Duration("duration", duration))

	dao.logProductAudit(ctx, audit.ActionProductDeleted, productID, nil)

	return nil
}

func (dao *ProductDAO) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	start := time.Now()
	logger.Debug("Retrieving product", zap.String("productID", productID))

	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
		MATCH (p:` + murale_neo4j.LabelProduct + ` {id: $id})
		OPTIONAL MATCH (p)-[:` + murale_neo4j.RelDerivedFrom + `]->(img:` + murale_neo4j.LabelCuratedImage + `)-[:` + murale_neo4j.RelFeaturedIn + `]->(c:` + murale_neo4j.LabelCollection + `)
		RETURN p, COLLECT(DISTINCT c.id) AS collectionIDs
	`
	result, err := session.Run(query, map[string]interface{}{"id": productID})
	if err != nil {
		logger.Error("Failed to execute get product query",
			zap.Error(err),
			zap.String("productID", productID),
			zap.Duration("duration", time.Since(start)))
		return nil, murale_errors.ErrDatabaseOperation
	}

	if result.Next() {
		record := result.Record()
		node := record.Values[0].(neo4j.Node)
		collectionIDs, _ := record.Get("collectionIDs")

		product, err := mapNodeToProduct(node)
		if err != nil {
			logger.Error("Failed to map product node to struct",
				zap.Error(err),
				zap.String("productID", productID))
			return nil, murale_errors.ErrInternalServer
		}

		if collectionIDs != nil {
			for _, id := range collectionIDs.([]interface{}) {
				product.CollectionIDs = append(product.CollectionIDs, id.(string))
			}
		}

		return product, nil
	}

	logger.Warn("Product not found",
		zap.String("productID", productID),
		zap.Duration("duration", time.Since(start)))
	return nil, murale_errors.ErrProductNotFound
}

// GetProductBySKU resolves a product by its SKU, the identifier quote
// requests carry.
func (dao *ProductDAO) GetProductBySKU(ctx context.Context, sku string) (*model.Product, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
		MATCH (p:` + murale_neo4j.LabelProduct + `)
		WHERE toLower(p.sku) = toLower($sku)
		RETURN p
	`
	result, err := session.Run(query, map[string]interface{}{"sku": sku})
	if err != nil {
		logger.Error("Failed to execute get product by SKU query",
			zap.Error(err),
			zap.String("sku", sku))
		return nil, murale_errors.ErrDatabaseOperation
	}

	if result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		return mapNodeToProduct(node)
	}

	return nil, murale_errors.ErrProductNotFound
}

func (dao *ProductDAO) ListProducts(ctx context.Context, limit int, offset int) ([]*model.Product, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
		MATCH (p:` + murale_neo4j.LabelProduct + `)
		RETURN p
		ORDER BY p.createdAt DESC
		SKIP $offset LIMIT $limit
	`
	result, err := session.Run(query, map[string]interface{}{"offset": offset, "limit": limit})
	if err != nil {
		logger.Error("Failed to execute list products query", zap.Error(err))
		return nil, murale_errors.ErrDatabaseOperation
	}

	var products []*model.Product
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		product, err := mapNodeToProduct(node)
		if err != nil {
			logger.Error("Failed to map product node to struct", zap.Error(err))
			return nil, murale_errors.ErrInternalServer
		}
		products = append(products, product)
	}

	return products, nil
}

func (dao *ProductDAO) SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria, limit, offset int) ([]*model.Product, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
		MATCH (p:` + murale_neo4j.LabelProduct + `)
		WHERE ($query = '' OR toLower(p.name) CONTAINS toLower($query) OR toLower(p.description) CONTAINS toLower($query))
		  AND ($status = '' OR p.status = $status)
		  AND (size($tags) = 0 OR any(tag IN $tags WHERE tag IN p.tags))
		RETURN p
		ORDER BY p.createdAt DESC
		SKIP $offset LIMIT $limit
	`
	params := map[string]interface{}{
		"query":  criteria.Query,
		"status": criteria.Status,
		"tags":   criteria.Tags,
		"offset": offset,
		"limit":  limit,
	}
	if params["tags"] == nil {
		params["tags"] = []string{}
	}

	result, err := session.Run(query, params)
	if err != nil {
		logger.Error("Failed to execute search products query", zap.Error(err))
		return nil, murale_errors.ErrDatabaseOperation
	}

	var products []*model.Product
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		product, err := mapNodeToProduct(node)
		if err != nil {
			logger.Error("Failed to map product node to struct", zap.Error(err))
			return nil, murale_errors.ErrInternalServer
		}
		products = append(products, product)
	}

	return products, nil
}

func (dao *ProductDAO) logProductAudit(ctx context.Context, action, productID string, details interface{}) {
	userID, _ := ctx.Value("requestingUserID").(string)
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     userID,
		Action:     action,
		EntityType: "product",
		EntityID:   productID,
	}
	if details != nil {
		if detailsJSON, err := json.Marshal(details); err == nil {
			auditLog.ChangeDetails = detailsJSON
		}
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to record product audit log",
			zap.Error(err),
			zap.String("productID", productID))
	}
}

func mapNodeToProduct(node neo4j.Node) (*model.Product, error) {
	props := node.Props

	product := &model.Product{
		ID:       props["id"].(string),
		SKU:      props["sku"].(string),
		Name:     props["name"].(string),
		Currency: props["currency"].(string),
	}

	if description, ok := props["description"].(string); ok {
		product.Description = description
	}
	if basePrice, ok := props["basePrice"].(float64); ok {
		product.BasePrice = basePrice
	}
	if status, ok := props["status"].(string); ok {
		product.Status = status
	}
	if createdBy, ok := props["createdBy"].(string); ok {
		product.CreatedBy = createdBy
	}
	if updatedBy, ok := props["updatedBy"].(string); ok {
		product.UpdatedBy = updatedBy
	}

	if tags, ok := props["tags"].([]interface{}); ok {
		for _, tag := range tags {
			product.Tags = append(product.Tags, tag.(string))
		}
	}

	if definitionsJSON, ok := props["attributeDefinitions"].(string); ok && definitionsJSON != "" {
		if err := json.Unmarshal([]byte(definitionsJSON), &product.AttributeDefinitions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attribute definitions: %w", err)
		}
	}

	if metadataJSON, ok := props["metadata"].(string); ok && metadataJSON != "" && metadataJSON != "null" {
		if err := json.Unmarshal([]byte(metadataJSON), &product.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product metadata: %w", err)
		}
	}

	if createdAt, ok := props["createdAt"].(string); ok {
		product.CreatedAt, _ = helper_util.ParseTime(createdAt)
	}
	if updatedAt, ok := props["updatedAt"].(string); ok {
		product.UpdatedAt, _ = helper_util.ParseTime(updatedAt)
	}

	return product, nil
}
