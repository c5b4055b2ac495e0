// api/db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// CacheQuote stores a priced quote under its deterministic quote key. Quotes
// carry no PII and are cached as plain JSON.
func CacheQuote(ctx context.Context, quoteKey string, quote *model.Quote) error {
	quoteJSON, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	key := fmt.Sprintf("quote:%s", quoteKey)
	ttl := viper.GetDuration("redis.quoteCacheTTL")
	err = RedisClient.Set(ctx, key, quoteJSON, ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to cache quote: %w", err)
	}

	logger.Debug("Quote cached successfully", zap.String("quoteKey", quoteKey))
	return nil
}

func GetCachedQuote(ctx context.Context, quoteKey string) (*model.Quote, error) {
	key := fmt.Sprintf("quote:%s", quoteKey)
	quoteJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Quote not found in cache", zap.String("quoteKey", quoteKey))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get quote from cache: %w", err)
	}

	var quote model.Quote
	err = json.Unmarshal([]byte(quoteJSON), &quote)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal quote: %w", err)
	}

	logger.Debug("Quote retrieved from cache", zap.String("quoteKey", quoteKey))
	return &quote, nil
}

func DeleteCachedQuote(ctx context.Context, quoteKey string) error {
	key := fmt.Sprintf("quote:%s", quoteKey)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete quote from cache: %w", err)
	}
	logger.Debug("Quote deleted from cache", zap.String("quoteKey", quoteKey))
	return nil
}

// CacheOrder stores an order encrypted at rest; recipient addresses are PII.
func CacheOrder(ctx context.Context, order *model.Order) error {
	orderJSON, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	encrypted, err := encrypt(orderJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt order: %w", err)
	}

	key := fmt.Sprintf("order:%s", order.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encrypted), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache order: %w", err)
	}

	logger.Debug("Order cached successfully", zap.String("orderID", order.ID))
	return nil
}

func GetCachedOrder(ctx context.Context, orderID string) (*model.Order, error) {
	key := fmt.Sprintf("order:%s", orderID)
	encoded, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Order not found in cache", zap.String("orderID", orderID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get order from cache: %w", err)
	}

	encrypted, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached order: %w", err)
	}

	orderJSON, err := decrypt(encrypted)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt cached order: %w", err)
	}

	var order model.Order
	err = json.Unmarshal(orderJSON, &order)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}

	logger.Debug("Order retrieved from cache", zap.String("orderID", orderID))
	return &order, nil
}

func DeleteCachedOrder(ctx context.Context, orderID string) error {
	key := fmt.Sprintf("order:%s", orderID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete order from cache: %w", err)
	}
	logger.Debug("Order deleted from cache", zap.String("orderID", orderID))
	return nil
}

func CacheProduct(ctx context.Context, product *model.Product) error {
	productJSON, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	key := fmt.Sprintf("product:%s", product.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, productJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache product: %w", err)
	}

	logger.Debug("Product cached successfully", zap.String("productID", product.ID))
	return nil
}

func GetCachedProduct(ctx context.Context, productID string) (*model.Product, error) {
	key := fmt.Sprintf("product:%s", productID)
	productJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Product not found in cache", zap.String("productID", productID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get product from cache: %w", err)
	}

	var product model.Product
	err = json.Unmarshal([]byte(productJSON), &product)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}

	logger.Debug("Product retrieved from cache", zap.String("productID", productID))
	return &product, nil
}

func DeleteCachedProduct(ctx context.Context, productID string) error {
	key := fmt.Sprintf("product:%s", productID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete product from cache: %w", err)
	}
	logger.Debug("Product deleted from cache", zap.String("productID", productID))
	return nil
}

func CacheCuratedImages(ctx context.Context, cacheKey string, images []model.CuratedImage) error {
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("failed to marshal curated images: %w", err)
	}

	key := fmt.Sprintf("curated:%s", cacheKey)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, imagesJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache curated images: %w", err)
	}

	logger.Debug("Curated images cached successfully", zap.String("cacheKey", cacheKey))
	return nil
}

func GetCachedCuratedImages(ctx context.Context, cacheKey string) ([]model.CuratedImage, error) {
	key := fmt.Sprintf("curated:%s", cacheKey)
	imagesJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Curated images not found in cache", zap.String("cacheKey", cacheKey))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get curated images from cache: %w", err)
	}

	var images []model.CuratedImage
	err = json.Unmarshal([]byte(imagesJSON), &images)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal curated images: %w", err)
	}

	logger.Debug("Curated images retrieved from cache", zap.String("cacheKey", cacheKey))
	return images, nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// LockOrderSubmission takes a short-lived lock so concurrent submissions of
// the same order cannot double-send to the print provider.
func LockOrderSubmission(ctx context.Context, orderID string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:order:%s", orderID)
	locked, err := RedisClient.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire order submission lock: %w", err)
	}
	return locked, nil
}

func UnlockOrderSubmission(ctx context.Context, orderID string) error {
	key := fmt.Sprintf("lock:order:%s", orderID)
	if err := RedisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release order submission lock: %w", err)
	}
	return nil
}
