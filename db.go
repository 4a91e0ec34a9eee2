package main

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
harmony.db
	lookup_records
		one row per base color chosen in the viewer. Only the base color is
		kept; harmonies are always recomputed.
*/

var db *gorm.DB

type lookupRecord struct {
	ID     uint      `json:"-"`
	Time   time.Time `json:"time" gorm:"index"`
	Color  string    `json:"color" gorm:"index"`
	Client string    `json:"-"`
}

type colorCount struct {
	Color string `json:"color"`
	Count int    `json:"count"`
}

func initDatabase(path string) error {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if verbose {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return errors.Wrap(err, "open "+path)
	}
	if err := conn.AutoMigrate(&lookupRecord{}); err != nil {
		return errors.Wrap(err, "migrate lookup records")
	}
	db = conn
	return nil
}

func historyEnabled() bool {
	return hvConf.History && db != nil
}

func insertLookup(color, client string) error {
	rec := lookupRecord{
		Time:   time.Now(),
		Color:  color,
		Client: client,
	}
	return db.Create(&rec).Error
}

// getRecentLookups returns the newest lookups first. A limit of 0 returns
// every record.
func getRecentLookups(limit int) ([]lookupRecord, error) {
	var records []lookupRecord
	q := db.Order("time desc").Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	res := q.Find(&records)
	if res.Error != nil {
		return nil, res.Error
	}
	return records, nil
}

func getPopularColors(limit int) ([]colorCount, error) {
	var counts []colorCount
	q := db.Model(&lookupRecord{}).
		Select("color, count(*) as count").
		Group("color").
		Order("count desc").
		Order("color asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
