package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type HolidayRepository interface {
	Create(ctx context.Context, h *Holiday) error
	FindByDate(ctx context.Context, date time.Time) (*Holiday, error)
	FindByYear(ctx context.Context, year int) ([]Holiday, error)
	FindUpcoming(ctx context.Context) ([]Holiday, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id uint) error
}

type holidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) Create(ctx context.Context, h *Holiday) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *holidayRepository) FindByDate(ctx context.Context, date time.Time) (*Holiday, error) {
	var h Holiday
	err := r.db.WithContext(ctx).First(&h, "date = ?", date).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *holidayRepository) FindByYear(ctx context.Context, year int) ([]Holiday, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return r.FindBetween(ctx, start, end)
}

func (r *holidayRepository) FindUpcoming(ctx context.Context) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Where("date >= ?", time.Now().Format("2006-01-02")).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepository) FindBetween(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	var holidays []Holiday
	err := r.db.WithContext(ctx).
		Where("date >= ?", start).
		Where("date <= ?", end).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Holiday{}, "id = ?", id).Error
}
