package ioc

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/uy1-mgp/bff/pkg/logger"
	"github.com/uy1-mgp/bff/repository/dao"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitDB(l logger.Logger) *gorm.DB {
	type Config struct {
		// Dialect postgres / mysql / sqlite
		Dialect       string        `yaml:"dialect"`
		DSN           string        `yaml:"dsn"`
		SlowThreshold time.Duration `yaml:"slowThreshold"`
	}
	cfg := Config{
		Dialect:       "sqlite",
		DSN:           "mgp.db",
		SlowThreshold: 200 * time.Millisecond,
	}
	err := viper.UnmarshalKey("db", &cfg)
	if err != nil {
		panic(err)
	}
	var dialector gorm.Dialector
	switch cfg.Dialect {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		panic(fmt.Sprintf("不支持的数据库类型 %s", cfg.Dialect))
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(l, cfg.SlowThreshold),
	})
	if err != nil {
		panic(err)
	}
	err = dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return db
}
