package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Gideon1107/cafe-and-wifi-api/model"
)

func newTestRepo(t *testing.T) *CafeRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Cafe{}))
	return NewCafeRepository(db)
}

func sampleCafe(name, location string) *model.Cafe {
	price := "£2.50"
	return &model.Cafe{
		Name:         name,
		MapURL:       "https://maps.example.com/" + name,
		ImgURL:       "https://img.example.com/" + name + ".jpg",
		Location:     location,
		Seats:        "20-30",
		HasToilet:    true,
		HasWifi:      true,
		CanTakeCalls: true,
		CoffeePrice:  &price,
	}
}

func TestInsertAssignsID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cafe := sampleCafe("Blue Bottle", "Downtown")
	require.NoError(t, repo.Insert(ctx, cafe))
	assert.NotZero(t, cafe.ID)

	got, err := repo.FindByID(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, cafe, got)
}

func TestInsertDuplicateName(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleCafe("Blue Bottle", "Downtown")))
	err := repo.Insert(ctx, sampleCafe("Blue Bottle", "Uptown"))
	assert.ErrorIs(t, err, ErrDuplicateName)

	cafes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cafes, 1)
}

func TestFindAllPreservesInsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleCafe("First", "A")))
	require.NoError(t, repo.Insert(ctx, sampleCafe("Second", "B")))
	require.NoError(t, repo.Insert(ctx, sampleCafe("Third", "C")))

	cafes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, cafes, 3)
	assert.Equal(t, "First", cafes[0].Name)
	assert.Equal(t, "Second", cafes[1].Name)
	assert.Equal(t, "Third", cafes[2].Name)
}

func TestFindByLocationExactMatch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, sampleCafe("Blue Bottle", "Downtown")))

	got, err := repo.FindByLocation(ctx, "Downtown")
	require.NoError(t, err)
	assert.Equal(t, "Blue Bottle", got.Name)

	_, err = repo.FindByLocation(ctx, "downtown")
	assert.ErrorIs(t, err, ErrCafeNotFound)
	_, err = repo.FindByLocation(ctx, "")
	assert.ErrorIs(t, err, ErrCafeNotFound)
}

func TestFindRandom(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.FindRandom(ctx)
	assert.ErrorIs(t, err, ErrCafeNotFound)

	require.NoError(t, repo.Insert(ctx, sampleCafe("Blue Bottle", "Downtown")))
	require.NoError(t, repo.Insert(ctx, sampleCafe("Roastery", "Uptown")))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		cafe, err := repo.FindRandom(ctx)
		require.NoError(t, err)
		seen[cafe.Name] = true
	}
	assert.Contains(t, seen, "Blue Bottle")
	assert.Contains(t, seen, "Roastery")
}

func TestUpdatePriceOnlyTouchesPrice(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cafe := sampleCafe("Blue Bottle", "Downtown")
	require.NoError(t, repo.Insert(ctx, cafe))

	require.NoError(t, repo.UpdatePrice(ctx, cafe.ID, "£3.00"))
	got, err := repo.FindByID(ctx, cafe.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CoffeePrice)
	assert.Equal(t, "£3.00", *got.CoffeePrice)
	assert.Equal(t, cafe.Name, got.Name)
	assert.Equal(t, cafe.Location, got.Location)
	assert.Equal(t, cafe.Seats, got.Seats)

	assert.ErrorIs(t, repo.UpdatePrice(ctx, 999, "£1.00"), ErrCafeNotFound)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	cafe := sampleCafe("Blue Bottle", "Downtown")
	require.NoError(t, repo.Insert(ctx, cafe))

	require.NoError(t, repo.Delete(ctx, cafe.ID))
	_, err := repo.FindByID(ctx, cafe.ID)
	assert.ErrorIs(t, err, ErrCafeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, cafe.ID), ErrCafeNotFound)
}
