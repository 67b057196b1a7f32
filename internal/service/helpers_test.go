package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"staynest/internal/core/auth"
	"staynest/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Listing{},
		&domain.Booking{},
		&domain.Review{},
	))
	return db
}

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "staynest-test", TTL: time.Hour}
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           domain.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedListing(t *testing.T, db *gorm.DB, ownerID string, mutate func(*domain.Listing)) *domain.Listing {
	t.Helper()
	l := &domain.Listing{
		ID:            domain.NewID(),
		Title:         "Cozy flat",
		Description:   "A cozy flat near the center",
		Location:      "Lisbon",
		Price:         120,
		Type:          domain.TypeApartment,
		Images:        []string{"https://img.example/1.jpg"},
		AvailableFrom: date(2024, 1, 1),
		AvailableTo:   date(2024, 12, 31),
		OwnerID:       ownerID,
	}
	if mutate != nil {
		mutate(l)
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
