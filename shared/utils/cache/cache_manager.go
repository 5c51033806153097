package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"assetdesk-backend/shared/config"
)

type CacheManager struct {
	client *redis.Client
	ctx    context.Context
}

// FileListCacheData is the cached payload for a user's file listing
type FileListCacheData struct {
	Files    json.RawMessage `json:"files"`
	Total    int64           `json:"total"`
	CachedAt time.Time       `json:"cached_at"`
}

// MatchZoneCacheData is the cached payload for the match-zone listing
type MatchZoneCacheData struct {
	Entries  json.RawMessage `json:"entries"`
	Total    int64           `json:"total"`
	CachedAt time.Time       `json:"cached_at"`
}

var (
	globalCacheManager *CacheManager
	FileListTTL        = 5 * time.Minute
	MatchZoneTTL       = 10 * time.Minute
)

// InitCacheManager initializes the global cache manager
func InitCacheManager() error {
	cfg := config.GetConfig()

	redisDB, err := strconv.Atoi(cfg.RedisDB)
	if err != nil {
		log.Printf("❌ Invalid Redis DB number: %s, using default 0", cfg.RedisDB)
		redisDB = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       redisDB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	globalCacheManager = &CacheManager{
		client: client,
		ctx:    ctx,
	}

	log.Printf("✅ Redis Cache Manager initialized successfully - %s:%s DB:%d",
		cfg.RedisHost, cfg.RedisPort, redisDB)

	return nil
}

// GetCacheManager returns the global cache manager instance
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		if err := InitCacheManager(); err != nil {
			log.Printf("❌ Failed to initialize cache manager: %v", err)
			return nil
		}
	}
	return globalCacheManager
}

// GenerateFileListKey generates a cache key for a user's file listing
func GenerateFileListKey(userID, category string, page, limit int) string {
	return fmt.Sprintf("files:user:%s:cat:%s:page:%d:limit:%d", userID, category, page, limit)
}

// GenerateMatchZoneKey generates a cache key for the match-zone listing
func GenerateMatchZoneKey(page, limit int) string {
	return fmt.Sprintf("matchzone:page:%d:limit:%d", page, limit)
}

// SetFileListCache caches a file listing response
func (cm *CacheManager) SetFileListCache(key string, data *FileListCacheData) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	data.CachedAt = time.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %v", err)
	}

	if err := cm.client.Set(cm.ctx, key, jsonData, FileListTTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %v", err)
	}

	return nil
}

// GetFileListCache retrieves a cached file listing
func (cm *CacheManager) GetFileListCache(key string) (*FileListCacheData, bool) {
	if cm == nil || cm.client == nil {
		return nil, false
	}

	result, err := cm.client.Get(cm.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false
		}
		log.Printf("❌ Cache error: %v", err)
		return nil, false
	}

	var data FileListCacheData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		log.Printf("❌ Failed to unmarshal cache data: %v", err)
		return nil, false
	}

	return &data, true
}

// SetMatchZoneCache caches a match-zone listing response
func (cm *CacheManager) SetMatchZoneCache(key string, data *MatchZoneCacheData) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	data.CachedAt = time.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %v", err)
	}

	if err := cm.client.Set(cm.ctx, key, jsonData, MatchZoneTTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %v", err)
	}

	return nil
}

// GetMatchZoneCache retrieves a cached match-zone listing
func (cm *CacheManager) GetMatchZoneCache(key string) (*MatchZoneCacheData, bool) {
	if cm == nil || cm.client == nil {
		return nil, false
	}

	result, err := cm.client.Get(cm.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false
		}
		log.Printf("❌ Cache error: %v", err)
		return nil, false
	}

	var data MatchZoneCacheData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		log.Printf("❌ Failed to unmarshal cache data: %v", err)
		return nil, false
	}

	return &data, true
}

// InvalidateUserFiles drops every cached file listing for a user. Called
// after upload and delete so listings never serve stale rows.
func (cm *CacheManager) InvalidateUserFiles(userID string) error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	pattern := fmt.Sprintf("files:user:%s:*", userID)
	return cm.invalidateByPattern(pattern)
}

// InvalidateMatchZone drops the cached match-zone listings
func (cm *CacheManager) InvalidateMatchZone() error {
	if cm == nil || cm.client == nil {
		return fmt.Errorf("cache manager not initialized")
	}

	return cm.invalidateByPattern("matchzone:*")
}

// invalidateByPattern deletes all keys matching a pattern
func (cm *CacheManager) invalidateByPattern(pattern string) error {
	keys, err := cm.client.Keys(cm.ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("failed to get keys for pattern %s: %v", pattern, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := cm.client.Del(cm.ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %v", err)
	}

	log.Printf("🗑️ Cache invalidated: %d keys (pattern: %s)", len(keys), pattern)
	return nil
}

// GetCacheStats returns simple cache statistics for health checks
func (cm *CacheManager) GetCacheStats() (map[string]interface{}, error) {
	if cm == nil || cm.client == nil {
		return nil, fmt.Errorf("cache manager not initialized")
	}

	info, err := cm.client.Info(cm.ctx, "memory").Result()
	if err != nil {
		return nil, err
	}

	dbSize, err := cm.client.DBSize(cm.ctx).Result()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"total_keys":  dbSize,
		"memory_info": info,
	}, nil
}

// Close closes the Redis connection
func (cm *CacheManager) Close() error {
	if cm != nil && cm.client != nil {
		return cm.client.Close()
	}
	return nil
}
