package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// 使用 sync.Map 保证并发安全
var responseCache sync.Map

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      []byte
	expiration int64
}

// CacheKey 根据请求体计算缓存键
func CacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// SetCache 缓存一份响应
// key: 请求体哈希
// ttl: 过期窗口，窗口内相同请求复用同一结果
func SetCache(key string, value []byte, ttl time.Duration) {
	responseCache.Store(key, cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl).Unix(),
	})
}

// GetCache 获取缓存并验证是否过期
func GetCache(key string) ([]byte, bool) {
	val, ok := responseCache.Load(key)
	if !ok {
		return nil, false
	}

	item := val.(cacheItem)

	// 检查是否过期
	if time.Now().Unix() > item.expiration {
		responseCache.Delete(key) // 懒删除
		return nil, false
	}

	return item.value, true
}

// DeleteCache 删除缓存
func DeleteCache(key string) {
	responseCache.Delete(key)
}
