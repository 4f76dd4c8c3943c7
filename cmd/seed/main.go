package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kvrvenkatca-ai/firm-timesheet/config"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/model"
	"github.com/kvrvenkatca-ai/firm-timesheet/internal/repository"
	"github.com/kvrvenkatca-ai/firm-timesheet/pkg/database"
	applogger "github.com/kvrvenkatca-ai/firm-timesheet/pkg/logger"
)

// 种子账号（开通账号阶段使用；生产环境通过 -password 覆盖默认密码）
var seedUsers = []struct {
	Email string
	Name  string
	Role  string
}{
	{"admin@firm.com", "系统管理员", model.RoleAdmin},
	{"alice@firm.com", "Alice Zhang", model.RoleEmployee},
	{"bob@firm.com", "Bob Li", model.RoleEmployee},
	{"carol@firm.com", "Carol Wang", model.RoleEmployee},
}

// 初始客户列表
var seedClients = []string{
	"Acme Corp",
	"Globex",
	"Initech",
}

func main() {
	var password string
	flag.StringVar(&password, "password", "ChangeMe123", "种子账号的初始密码")
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	ctx := context.Background()

	// 账号：已存在则跳过
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatal("密码哈希失败", zap.Error(err))
	}

	created := 0
	for _, u := range seedUsers {
		if _, err := repo.User.GetByEmail(ctx, u.Email); err == nil {
			logger.Info("用户已存在，跳过", zap.String("email", u.Email))
			continue
		}

		user := &model.User{
			Email:        strings.ToLower(u.Email),
			Name:         u.Name,
			Role:         u.Role,
			PasswordHash: string(hash),
		}
		if err := repo.User.Create(ctx, user); err != nil {
			logger.Error("插入用户失败", zap.String("email", u.Email), zap.Error(err))
			continue
		}
		created++
	}
	logger.Info("用户初始化完成", zap.Int("created", created))

	// 客户：已存在则跳过
	created = 0
	for _, name := range seedClients {
		client := &model.Client{ClientName: name}
		if err := repo.Client.Create(ctx, client); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				logger.Info("客户已存在，跳过", zap.String("client", name))
				continue
			}
			logger.Error("插入客户失败", zap.String("client", name), zap.Error(err))
			continue
		}
		created++
	}
	logger.Info("客户初始化完成", zap.Int("created", created))
}
