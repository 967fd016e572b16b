package dao

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GORMResultDAO struct {
	db *gorm.DB
}

func NewGORMResultDAO(db *gorm.DB) ResultDAO {
	return &GORMResultDAO{db: db}
}

// Upsert 同一个 id 再次保存时整体覆盖，UE 明细先删后插
func (dao *GORMResultDAO) Upsert(ctx context.Context, r Result) error {
	now := time.Now().UnixMilli()
	r.Utime = now
	if r.Ctime == 0 {
		r.Ctime = now
	}
	entries := make([]ResultEntry, len(r.Entries))
	copy(entries, r.Entries)
	r.Entries = nil
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Omit(clause.Associations).Create(&r).Error
		if err != nil {
			return err
		}
		err = tx.Where("result_id = ?", r.Id).Delete(&ResultEntry{}).Error
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].Id = 0
			entries[i].ResultId = r.Id
			entries[i].Position = i
		}
		return tx.Create(&entries).Error
	})
}

func (dao *GORMResultDAO) FindById(ctx context.Context, id int64) (Result, error) {
	var r Result
	err := dao.db.WithContext(ctx).
		Preload("Entries", orderByPosition).
		Where("id = ?", id).
		First(&r).Error
	return r, err
}

// FindByStudentName 不区分大小写的模糊匹配，最新的在前
func (dao *GORMResultDAO) FindByStudentName(ctx context.Context, name string, limit int) ([]Result, error) {
	var res []Result
	err := dao.db.WithContext(ctx).
		Preload("Entries", orderByPosition).
		Where("LOWER(student_name) LIKE ? ESCAPE '!'", "%"+likeEscaper.Replace(strings.ToLower(name))+"%").
		Order("ctime DESC").Order("id DESC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

// 用户输入里的 % 和 _ 按字面匹配。转义符用 !，mysql 里的反斜杠在字符串里还要再转义
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
