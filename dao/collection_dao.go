// api/dao/collection_dao.go

package dao

import (
	"context"
	"encoding/json"
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

type CollectionDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewCollectionDAO(driver neo4j.Driver, auditService audit.Service) *CollectionDAO {
	dao := &CollectionDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Collection", zap.Error(err))
	}
	return dao
}

func (dao *CollectionDAO) EnsureUniqueConstraint(ctx context.Context) error {
	logger.Info("Ensuring unique constraint on Collection ID")
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
		CREATE CONSTRAINT unique_collection_id IF NOT EXISTS
		FOR (c:` + murale_neo4j.LabelCollection + `) REQUIRE c.id IS UNIQUE
		`
		_, err := transaction.Run(query, nil)
		return nil, err
	})

	if err != nil {
		logger.Error("Failed to ensure unique constraint on Collection ID", zap.Error(err))
		return err
	}

	return nil
}

func (dao *CollectionDAO) CreateCollection(ctx context.Context, collection model.Collection) (string, error) {
	start := time.Now()
	logger.Info("Creating new collection", zap.String("name", collection.Name))
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	if collection.ID == "" {
		collection.ID = uuid.New().String()
	}

	collection.CreatedAt = time.Now()
	collection.UpdatedAt = time.Now()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        CREATE (c:` + murale_neo4j.LabelCollection + ` {
            id: $id,
            name: $name,
            description: $description,
            createdBy: $createdBy,
            createdAt: $createdAt,
            updatedAt: $updatedAt
        })
        RETURN c.id as id
        `
		params := map[string]interface{}{
			"id":          collection.ID,
			"name":        collection.Name,
			"description": collection.Description,
			"createdBy":   collection.CreatedBy,
			"createdAt":   collection.CreatedAt.Format(time.RFC3339),
			"updatedAt":   collection.UpdatedAt.Format(time.RFC3339),
		}
		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}
		if result.Next() {
			return result.Record().Values[0], nil
		}
		return nil, murale_errors.ErrDatabaseOperation
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create collection",
			zap.Error(err),
			zap.String("name", collection.Name),
			zap.Duration("duration", duration))
		return "", murale_errors.ErrDatabaseOperation
	}

	logger.Info("Collection created successfully",
		zap.String("collectionID", collection.ID),
		zap.Duration("duration", duration))

	dao.logCollectionAudit(ctx, collection.ID, collection)

	return collection.ID, nil
}

// AddImage upserts a curated image node and links it into the collection.
func (dao *CollectionDAO) AddImage(ctx context.Context, collectionID string, image model.CuratedImage) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(transaction neo4j.Transaction) (interface{}, error) {
		query := `
        MATCH (c:` + murale_neo4j.LabelCollection + ` {id: $collectionID})
        MERGE (img:` + murale_neo4j.LabelCuratedImage + ` {id: $imageID})
        SET img.title = $title,
            img.url = $url,
            img.thumbnailUrl = $thumbnailUrl,
            img.theme = $theme
        MERGE (img)-[:` + murale_neo4j.RelFeaturedIn + `]->(c)
        RETURN c.id as id
        `
		params := map[string]interface{}{
			"collectionID": collectionID,
			"imageID":      image.ID,
			"title":        image.Title,
			"url":          image.URL,
			"thumbnailUrl": image.ThumbnailURL,
			"theme":        image.Theme,
		}
		result, err := transaction.Run(query, params)
		if err != nil {
			return nil, err
		}
		if result.Next() {
			return result.Record().Values[0], nil
		}
		return nil, murale_errors.ErrCollectionNotFound
	})

	if err != nil {
		logger.Error("Failed to add image to collection",
			zap.Error(err),
			zap.String("collectionID", collectionID),
			zap.String("imageID", image.ID))
		return err
	}

	dao.logCollectionAudit(ctx, collectionID, map[string]string{"added_image": image.ID})
	return nil
}

func (dao *CollectionDAO) GetCollection(ctx context.Context, collectionID string) (*model.Collection, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
		MATCH (c:` + murale_neo4j.LabelCollection + ` {id: $id})
		OPTIONAL MATCH (img:` + murale_neo4j.LabelCuratedImage + `)-[:` + murale_neo4j.RelFeaturedIn + `]->(c)
		RETURN c, COLLECT(img.id) AS imageIDs
	`
	result, err := session.Run(query, map[string]interface{}{"id": collectionID})
	if err != nil {
		logger.Error("Failed to execute get collection query",
			zap.Error(err),
			zap.String("collectionID", collectionID))
		return nil, murale_errors.ErrDatabaseOperation
	}

	if result.Next() {
		record := result.Record()
		node := record.Values[0].(neo4j.Node)
		collection := mapNodeToCollection(node)

		if imageIDs, _ := record.Get("imageIDs"); imageIDs != nil {
			for _, id := range imageIDs.([]interface{}) {
				if id != nil {
					collection.ImageIDs = append(collection.ImageIDs, id.(string))
				}
			}
		}

		return collection, nil
	}

	logger.Warn("Collection not found", zap.String("collectionID", collectionID))
	return nil, murale_errors.ErrCollectionNotFound
}

// GetCollectionImages returns the curated images featured in a collection.
func (dao *CollectionDAO) GetCollectionImages(ctx context.Context, collectionID string) ([]model.CuratedImage, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
		MATCH (img:` + murale_neo4j.LabelCuratedImage + `)-[:` + murale_neo4j.RelFeaturedIn + `]->(c:` + murale_neo4j.LabelCollection + ` {id: $id})
		RETURN img
	`
	result, err := session.Run(query, map[string]interface{}{"id": collectionID})
	if err != nil {
		logger.Error("Failed to execute get collection images query",
			zap.Error(err),
			zap.String("collectionID", collectionID))
		return nil, murale_errors.ErrDatabaseOperation
	}

	var images []model.CuratedImage
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		props := node.Props
		image := model.CuratedImage{
			ID: props["id"].(string),
		}
		if title, ok := props["title"].(string); ok {
			image.Title = title
		}
		if url, ok := props["url"].(string); ok {
			image.URL = url
		}
		if thumbnail, ok := props["thumbnailUrl"].(string); ok {
			image.ThumbnailURL = thumbnail
		}
		if theme, ok := props["theme"].(string); ok {
			image.Theme = theme
		}
		images = append(images, image)
	}

	return images, nil
}

func (dao *CollectionDAO) ListCollections(ctx context.Context, limit, offset int) ([]*model.Collection, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	query := `
		MATCH (c:` + murale_neo4j.LabelCollection + `)
		RETURN c
		ORDER BY c.createdAt DESC
		SKIP $offset LIMIT $limit
	`
	result, err := session.Run(query, map[string]interface{}{"offset": offset, "limit": limit})
	if err != nil {
		logger.Error("Failed to execute list collections query", zap.Error(err))
		return nil, murale_errors.ErrDatabaseOperation
	}

	var collections []*model.Collection
	for result.Next() {
		node := result.Record().Values[0].(neo4j.Node)
		collections = append(collections, mapNodeToCollection(node))
	}

	return collections, nil
}

func (dao *CollectionDAO) logCollectionAudit(ctx context.Context, collectionID string, details interface{}) {
	userID, _ := ctx.Value("requestingUserID").(string)
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		UserID:     userID,
		Action:     audit.ActionCollectionUpdated,
		EntityType: "collection",
		EntityID:   collectionID,
	}
	if details != nil {
		if detailsJSON, err := json.Marshal(details); err == nil {
			auditLog.ChangeDetails = detailsJSON
		}
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to record collection audit log",
			zap.Error(err),
			zap.String("collectionID", collectionID))
	}
}

func mapNodeToCollection(node neo4j.Node) *model.Collection {
	props := node.Props

	collection := &model.Collection{
		ID:   props["id"].(string),
		Name: props["name"].(string),
	}
	if description, ok := props["description"].(string); ok {
		collection.Description = description
	}
	if createdBy, ok := props["createdBy"].(string); ok {
		collection.CreatedBy = createdBy
	}
	if createdAt, ok := props["createdAt"].(string); ok {
		collection.CreatedAt, _ = helper_util.ParseTime(createdAt)
	}
	if updatedAt, ok := props["updatedAt"].(string); ok {
		collection.UpdatedAt, _ = helper_util.ParseTime(updatedAt)
	}

	return collection
}
