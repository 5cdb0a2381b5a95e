package repository

import (
	"strings"

	"vidshare-go/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// toggleMembership 在一个事务内翻转成员关系
// 先按 match 条件删除，删到了即为移除；否则 INSERT ... ON CONFLICT DO NOTHING。
// 只有真正插入了新行且 notify 非空时才写通知，计数在同一事务内读取。
func toggleMembership[T any](db *gorm.DB, row *T, match, countBy map[string]interface{}, notify *model.Notification) (added bool, count int64, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where(match).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			added = true
			res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 && notify != nil {
				if err := tx.Create(notify).Error; err != nil {
					return err
				}
			}
		}

		return tx.Model(new(T)).Where(countBy).Count(&count).Error
	})
	return added, count, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern 生成 LOWER(col) LIKE ? ESCAPE '\' 使用的子串匹配模式
// 用户输入转为小写，其中的通配符按字面量处理
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}
