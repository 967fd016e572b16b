package dao

import (
	"context"

	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./types.go -package=daomocks -destination=./mocks/result.mock.go ResultDAO
type ResultDAO interface {
	Upsert(ctx context.Context, r Result) error
	FindById(ctx context.Context, id int64) (Result, error)
	FindByStudentName(ctx context.Context, name string, limit int) ([]Result, error)
}

// Result 镜像保存的计算结果，Id 沿用计算服务分配的 id
type Result struct {
	Id               int64         `gorm:"primaryKey;autoIncrement:false"`
	StudentName      string        `gorm:"type:varchar(100);index"`
	Average          float64
	FormattedAverage string        `gorm:"type:varchar(16)"`
	Mention          string        `gorm:"type:varchar(20)"`
	Admitted         bool
	TotalCredits     int
	TotalPoints      float64
	CourseCount      int
	ValidatedCount   int
	FailedCount      int
	SuccessRate      float64
	Entries          []ResultEntry `gorm:"foreignKey:ResultId"`
	Ctime            int64         `gorm:"index"`
	Utime            int64
}

type ResultEntry struct {
	Id       int64 `gorm:"primaryKey;autoIncrement"`
	ResultId int64 `gorm:"index"`
	// Position 在原始输入中的顺序
	Position int
	Name     string `gorm:"type:varchar(100)"`
	Credits  int
	Score    float64
	Letter   string `gorm:"type:varchar(2)"`
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Result{}, &ResultEntry{})
}
