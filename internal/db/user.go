package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 定义了后台管理员模型
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
}

// ErrDatabaseNotInitialized 表示尚未打开数据库连接。
var ErrDatabaseNotInitialized = errors.New("database not initialized")

// EnsureUser 存在性检查：若提供的用户名与密码均非空且不存在对应账号，则创建一个 bcrypt 哈希的用户。
// 返回值 created 表示本次调用是否新建了账号。
func EnsureUser(gdb *gorm.DB, username, password string) (created bool, err error) {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return false, nil
	}

	if gdb == nil {
		return false, ErrDatabaseNotInitialized
	}

	var existing User
	if err := gdb.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return false, err
		}

		if err := gdb.Create(&User{Username: trimmedUser, Password: string(hashed)}).Error; err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// Authenticate 校验用户名与密码，成功时返回对应用户。
func Authenticate(gdb *gorm.DB, username, password string) (*User, error) {
	if gdb == nil {
		return nil, ErrDatabaseNotInitialized
	}
	var user User
	if err := gdb.Where("username = ?", strings.TrimSpace(username)).First(&user).Error; err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, err
	}
	return &user, nil
}
