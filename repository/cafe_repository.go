package repository

import (
	"context"
	"errors"
	"math/rand"

	"gorm.io/gorm"

	"github.com/Gideon1107/cafe-and-wifi-api/model"
)

// ErrCafeNotFound is returned when no row matches the requested id or location.
var ErrCafeNotFound = errors.New("cafe not found")

// ErrDuplicateName is returned when an insert collides with the unique name index.
var ErrDuplicateName = errors.New("cafe name already exists")

// CafeRepository encapsulates all table access for cafes. It holds a gorm
// handle injected at startup so handlers and tests never touch package state.
type CafeRepository struct {
	db *gorm.DB
}

func NewCafeRepository(db *gorm.DB) *CafeRepository {
	return &CafeRepository{db: db}
}

// FindAll returns every cafe in storage order. An empty table yields an
// empty slice, not an error.
func (r *CafeRepository) FindAll(ctx context.Context) ([]model.Cafe, error) {
	var cafes []model.Cafe
	err := r.db.WithContext(ctx).Find(&cafes).Error
	return cafes, err
}

// FindByID returns the cafe with the given id or ErrCafeNotFound.
func (r *CafeRepository) FindByID(ctx context.Context, id uint) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := r.db.WithContext(ctx).First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

// FindByLocation returns the first cafe whose location equals loc exactly.
func (r *CafeRepository) FindByLocation(ctx context.Context, loc string) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := r.db.WithContext(ctx).Where("location = ?", loc).First(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

// FindRandom loads all rows and picks one uniformly. ErrCafeNotFound on an
// empty table.
func (r *CafeRepository) FindRandom(ctx context.Context) (*model.Cafe, error) {
	cafes, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, ErrCafeNotFound
	}
	return &cafes[rand.Intn(len(cafes))], nil
}

// Insert creates a new row; the cafe's ID is populated on success.
// A name collision surfaces as ErrDuplicateName.
func (r *CafeRepository) Insert(ctx context.Context, cafe *model.Cafe) error {
	if err := r.db.WithContext(ctx).Create(cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

// UpdatePrice sets coffee_price on the row with the given id, leaving every
// other column untouched.
func (r *CafeRepository) UpdatePrice(ctx context.Context, id uint, price string) error {
	res := r.db.WithContext(ctx).Model(&model.Cafe{}).Where("id = ?", id).Update("coffee_price", price)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCafeNotFound
	}
	return nil
}

// Delete removes the row with the given id.
func (r *CafeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Cafe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCafeNotFound
	}
	return nil
}
