package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFileListKey(t *testing.T) {
	key := GenerateFileListKey("user-1", "logos", 2, 20)
	assert.Equal(t, "files:user:user-1:cat:logos:page:2:limit:20", key)
}

func TestGenerateMatchZoneKey(t *testing.T) {
	key := GenerateMatchZoneKey(1, 50)
	assert.Equal(t, "matchzone:page:1:limit:50", key)
}

func TestNilManagerFileListCache(t *testing.T) {
	var cm *CacheManager

	_, hit := cm.GetFileListCache("files:user:u:cat::page:1:limit:20")
	assert.False(t, hit)

	err := cm.SetFileListCache("key", &FileListCacheData{})
	assert.Error(t, err)

	assert.Error(t, cm.InvalidateUserFiles("u"))
}

func TestNilManagerMatchZoneCache(t *testing.T) {
	var cm *CacheManager

	_, hit := cm.GetMatchZoneCache(GenerateMatchZoneKey(1, 20))
	assert.False(t, hit)

	err := cm.SetMatchZoneCache("key", &MatchZoneCacheData{})
	assert.Error(t, err)

	assert.Error(t, cm.InvalidateMatchZone())
}

func TestNilManagerStatsAndClose(t *testing.T) {
	var cm *CacheManager

	_, err := cm.GetCacheStats()
	assert.Error(t, err)

	assert.NoError(t, cm.Close())
}
