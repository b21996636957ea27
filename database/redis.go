package database

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v9"
	"github.com/hisab-app/hisab-server/utils"
	"k8s.io/klog/v2"
)

var ctx = context.Background()

// Prefix for all keys
const keyPrefix = "hisab"

// Singleton to keep assets loaded in memory
type redisManager struct {
	Client *redis.Client
	Mock   bool
}

var singleton *redisManager
var once sync.Once

func GetRedisDB() *redisManager {
	once.Do(func() {
		if utils.GetEnv("MOCK_REDIS", "false") == "true" {
			klog.Infof("Using mock redis client because MOCK_REDIS=true is set in environment")
			mr, _ := miniredis.Run()
			client := redis.NewClient(&redis.Options{
				Addr: mr.Addr(),
			})
			singleton = &redisManager{
				Client: client,
				Mock:   true,
			}
		} else {
			redisPort, err := strconv.Atoi(utils.GetEnv("REDIS_PORT", "6379"))
			if err != nil {
				panic("Invalid REDIS_PORT specified")
			}
			redisDb, err := strconv.Atoi(utils.GetEnv("REDIS_DB", "0"))
			if err != nil {
				panic("Invalid REDIS_DB specified")
			}
			client := redis.NewClient(&redis.Options{
				Addr: fmt.Sprintf("%s:%d", utils.GetEnv("REDIS_HOST", "localhost"), redisPort),
				DB:   redisDb,
			})
			singleton = &redisManager{
				Client: client,
				Mock:   false,
			}
		}
	})
	return singleton
}

func withPrefix(key string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, key)
}

// del - Redis DEL
func (r *redisManager) Del(key string) (int64, error) {
	val, err := r.Client.Del(ctx, withPrefix(key)).Result()
	return val, err
}

// get - Redis GET
func (r *redisManager) Get(key string) (string, error) {
	val, err := r.Client.Get(ctx, withPrefix(key)).Result()
	return val, err
}

// set - Redis SET
func (r *redisManager) Set(key string, value string, expiry time.Duration) error {
	err := r.Client.Set(ctx, withPrefix(key), value, expiry).Err()
	return err
}
