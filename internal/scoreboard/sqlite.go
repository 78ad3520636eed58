//go:build !js

package scoreboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const dbFileName = "scores.db"

type recordRow struct {
	ID      uint   `gorm:"primaryKey"`
	NameKey string `gorm:"uniqueIndex;not null"`
	Name    string
	Score   int `gorm:"index"`
	Wave    int
}

func (recordRow) TableName() string { return "records" }

// SQLiteStore keeps the leaderboard in a sqlite database.
type SQLiteStore struct {
	db *gorm.DB
}

func openSQLite(dir string) (Store, error) {
	if dir == "" {
		return nil, errors.New("scoreboard: empty directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scoreboard: create %s: %w", dir, err)
	}
	return NewSQLiteStore(filepath.Join(dir, dbFileName))
}

func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("scoreboard: open %s: %w", dsn, err)
	}
	if err := db.AutoMigrate(&recordRow{}); err != nil {
		return nil, fmt.Errorf("scoreboard: migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *SQLiteStore) Best() (*Record, error) {
	list, err := s.Top(1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

func (s *SQLiteStore) Save(rec Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var row recordRow
		err := tx.Where("name_key = ?", nameKey(rec.Name)).First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&recordRow{NameKey: nameKey(rec.Name), Name: rec.Name, Score: rec.Score, Wave: rec.Wave}).Error
		}
		if err != nil {
			return err
		}
		if rec.Score <= row.Score {
			return nil
		}
		return tx.Model(&row).Updates(map[string]interface{}{"score": rec.Score, "wave": rec.Wave}).Error
	})
}

func (s *SQLiteStore) Top(n int) ([]Record, error) {
	var rows []recordRow
	q := s.db.Order("score desc").Order("id asc")
	if n >= 0 {
		q = q.Limit(n)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, Record{Name: r.Name, Score: r.Score, Wave: r.Wave})
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
