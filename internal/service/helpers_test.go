package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"krishi-sakhi-be/internal/entity"
	"krishi-sakhi-be/internal/repository/unitofwork"
	"krishi-sakhi-be/pkg/database"
)

// newTestDB opens a throwaway sqlite database in a per-test temp dir. A
// file is used instead of :memory: because the connection pool would hand
// each connection its own empty in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newTestFactory(t *testing.T) (unitofwork.RepositoryFactory, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return unitofwork.NewRepositoryFactory(db), db
}

func seedUser(t *testing.T, factory unitofwork.RepositoryFactory, phone, district string) *entity.User {
	t.Helper()

	ctx := context.Background()
	user := &entity.User{
		Id:           uuid.New(),
		Phone:        phone,
		Name:         "Ravi",
		Pincode:      "680001",
		District:     district,
		PasswordHash: "unused",
		CreatedAt:    time.Now(),
	}
	if err := factory.NewUnitOfWork(ctx).UserRepository().Create(ctx, user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
