package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"casamento/registry/internal/model"
	"casamento/registry/internal/repository"
)

// newTestDB opens an isolated in-memory sqlite database. A single
// connection keeps concurrent transactions serialized, which is what the
// reservation race test relies on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, model.AutoMigrate(db))
	return db
}

type testEnv struct {
	db           *gorm.DB
	lists        ListService
	reservations ReservationService
	rsvps        RsvpService
	tracking     TrackingService
	guests       GuestService
	catalog      CatalogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	listRepo := repository.NewPGWeddingListRepository(db)
	itemRepo := repository.NewPGGiftItemRepository(db)
	reservationRepo := repository.NewPGReservationRepository(db)
	rsvpRepo := repository.NewPGRsvpRepository(db)
	catalogRepo := repository.NewPGCatalogRepository(db)

	return &testEnv{
		db:           db,
		lists:        NewListService(listRepo, itemRepo),
		reservations: NewReservationService(reservationRepo),
		rsvps:        NewRsvpService(listRepo, rsvpRepo),
		tracking:     NewTrackingService(listRepo, rsvpRepo),
		guests:       NewGuestService(listRepo, reservationRepo, rsvpRepo),
		catalog:      NewCatalogService(catalogRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, username string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e *testEnv) createListWithItem(t *testing.T, owner *model.User, title, itemName string) (*model.WeddingList, *model.GiftItem) {
	t.Helper()
	ctx := context.Background()

	list, err := e.lists.CreateList(ctx, owner.ID, CreateListInput{Title: title})
	require.NoError(t, err)

	item, err := e.lists.AddItem(ctx, owner.ID, list.ID, itemName, nil)
	require.NoError(t, err)

	return list, item
}

func strptr(s string) *string { return &s }
