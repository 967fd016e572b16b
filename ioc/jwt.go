package ioc

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/uy1-mgp/bff/web/ijwt"
)

func InitJwtHandler(cmd redis.Cmdable) ijwt.Handler {
	type Config struct {
		Key string `yaml:"key"`
		// Expiration 和草稿在 redis 里的过期时间保持一致
		Expiration time.Duration `yaml:"expiration"`
	}
	cfg := Config{
		Expiration: time.Hour * 2,
	}
	err := viper.UnmarshalKey("jwt", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Key == "" {
		panic("jwt.key 不能为空")
	}
	return ijwt.NewRedisJWTHandler(cmd, cfg.Key, cfg.Expiration)
}
