package leave

import (
	"context"
	"errors"
	"time"

	leaveerrors "github.com/sohan418/leave-management-backend/internal/leave/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type HolidayService interface {
	List(ctx context.Context, year int) ([]HolidayResponse, error)
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id uint) error
}

type holidayService struct {
	repo   HolidayRepository
	logger *zap.Logger
}

func NewHolidayService(repo HolidayRepository, logger ...*zap.Logger) HolidayService {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &holidayService{repo: repo, logger: l}
}

// List returns a single year's calendar, or the upcoming holidays when no
// year is given.
func (s *holidayService) List(ctx context.Context, year int) ([]HolidayResponse, error) {
	var (
		holidays []Holiday
		err      error
	)
	if year > 0 {
		holidays, err = s.repo.FindByYear(ctx, year)
	} else {
		holidays, err = s.repo.FindUpcoming(ctx)
	}
	if err != nil {
		s.logger.Error("list holidays failed", zap.Error(err))
		return nil, err
	}

	res := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		res[i] = mapToHolidayResponse(h)
	}
	return res, nil
}

func (s *holidayService) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return HolidayResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	if _, err := s.repo.FindByDate(ctx, date); err == nil {
		return HolidayResponse{}, leaveerrors.ErrHolidayDateTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create holiday lookup failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	h := &Holiday{
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
		IsOptional:  req.IsOptional,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		s.logger.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("create holiday success",
		zap.String("name", h.Name),
		zap.String("date", req.Date),
	)
	return mapToHolidayResponse(*h), nil
}

func (s *holidayService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete holiday failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete holiday success", zap.Uint("holiday_id", id))
	return nil
}

func mapToHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format(dateLayout),
		Description: h.Description,
		IsOptional:  h.IsOptional,
	}
}
