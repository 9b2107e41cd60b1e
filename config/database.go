package config

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// StorefrontDB is the raw pool, used for health checks and cheap counts.
	StorefrontDB *pgxpool.Pool
	// StorefrontGorm backs the catalog mirror. Nil when the mirror is disabled.
	StorefrontGorm *gorm.DB
)

// InitDB connects the catalog mirror database. The mirror is optional: without
// STOREFRONT_DB_URL the service runs against the Storefront API alone and InitDB
// returns false.
func InitDB() bool {
	dsn := os.Getenv("STOREFRONT_DB_URL")
	if dsn == "" {
		Logger.Warn("⚠️ STOREFRONT_DB_URL not set, catalog mirror disabled")
		return false
	}

	if err := initPgx(dsn); err != nil {
		Logger.Fatal("❌ Unable to connect to storefront database", zap.Error(err))
	}
	if err := initGORM(dsn); err != nil {
		Logger.Fatal("❌ Failed to connect to storefront database with GORM", zap.Error(err))
	}
	return true
}

func initPgx(dsn string) error {
	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return err
	}
	StorefrontDB = pool
	Logger.Info("✅ Storefront database connected (pgx)")
	return nil
}

func initGORM(dsn string) error {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	StorefrontGorm = db
	Logger.Info("✅ Storefront database connected (GORM)")
	return nil
}

// PingDB reports whether the raw pool answers. A disabled mirror is not an error.
func PingDB(ctx context.Context) error {
	if StorefrontDB == nil {
		return nil
	}
	return StorefrontDB.Ping(ctx)
}

func CloseDB() {
	if StorefrontDB != nil {
		StorefrontDB.Close()
		Logger.Info("✅ Storefront database connection closed (pgx)")
	}
	if StorefrontGorm != nil {
		sqlDB, _ := StorefrontGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			Logger.Info("✅ Storefront database connection closed (GORM)")
		}
	}
}
