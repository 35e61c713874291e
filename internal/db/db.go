package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Models 列出需要自动迁移的全部模型。
func Models() []any {
	return []any{
		&User{},
		&MetaDetail{},
		&PageTitle{},
		&IndustrySolution{},
	}
}

// Init 初始化数据库连接并执行自动迁移。
// databasePath 为空时将回退到默认值 cloudmlm.db。
func Init(databasePath string) error {
	gdb, err := Open(databasePath, logger.Warn)
	if err != nil {
		return err
	}
	DB = gdb
	return nil
}

// Open 打开 SQLite 数据库并迁移表结构，不修改全局 DB。
func Open(databasePath string, level logger.LogLevel) (*gorm.DB, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "cloudmlm.db"
	}

	if err := ensureParentDir(path); err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(Models()...); err != nil {
		return nil, err
	}
	return gdb, nil
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
