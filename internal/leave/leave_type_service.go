package leave

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	leaveerrors "github.com/sohan418/leave-management-backend/internal/leave/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const ActiveLeaveTypesKey = "leave_types:active"

//go:generate mockgen -source=leave_type_service.go -destination=mock/leave_type_service_mock.go -package=mock
type LeaveTypeService interface {
	ListActive(ctx context.Context) ([]LeaveTypeResponse, error)
	ListAll(ctx context.Context) ([]LeaveTypeResponse, error)
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	Update(ctx context.Context, id uint, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
}

type leaveTypeService struct {
	repo   LeaveTypeRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewLeaveTypeService(repo LeaveTypeRepository, rdb *redis.Client, logger ...*zap.Logger) LeaveTypeService {
	l := zap.L().Named("leave_type.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave_type.service")
	}
	return &leaveTypeService{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// ListActive serves the catalog every apply form loads. Cached in redis with
// singleflight collapsing concurrent misses.
func (s *leaveTypeService) ListActive(ctx context.Context) ([]LeaveTypeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActiveLeaveTypesKey).Result(); err == nil {
			var resp []LeaveTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveLeaveTypesKey, func() (interface{}, error) {
		types, err := s.repo.FindAll(ctx, true)
		if err != nil {
			return nil, err
		}

		resp := mapToLeaveTypeListResponse(types)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ActiveLeaveTypesKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]LeaveTypeResponse), nil
}

func (s *leaveTypeService) ListAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx, false)
	if err != nil {
		s.logger.Error("list leave types failed", zap.Error(err))
		return nil, err
	}
	return mapToLeaveTypeListResponse(types), nil
}

func (s *leaveTypeService) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create leave type lookup failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	lt := &LeaveType{
		Name:               req.Name,
		Description:        req.Description,
		DefaultDays:        req.DefaultDays,
		RequiresApproval:   true,
		RequiresDocument:   req.RequiresDocument,
		MaxConsecutiveDays: req.MaxConsecutiveDays,
		IsActive:           true,
	}
	if req.RequiresApproval != nil {
		lt.RequiresApproval = *req.RequiresApproval
	}

	if err := s.repo.Create(ctx, lt); err != nil {
		s.logger.Error("create leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info("create leave type success", zap.String("name", lt.Name))
	return mapToLeaveTypeResponse(*lt), nil
}

func (s *leaveTypeService) Update(ctx context.Context, id uint, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		s.logger.Error("update leave type fetch failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	if req.Description != nil {
		lt.Description = req.Description
	}
	if req.DefaultDays != nil {
		lt.DefaultDays = *req.DefaultDays
	}
	if req.RequiresApproval != nil {
		lt.RequiresApproval = *req.RequiresApproval
	}
	if req.RequiresDocument != nil {
		lt.RequiresDocument = *req.RequiresDocument
	}
	if req.MaxConsecutiveDays != nil {
		lt.MaxConsecutiveDays = req.MaxConsecutiveDays
	}
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, lt); err != nil {
		s.logger.Error("update leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info("update leave type success", zap.Uint("leave_type_id", id))
	return mapToLeaveTypeResponse(*lt), nil
}

func (s *leaveTypeService) invalidateCatalog(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveLeaveTypesKey).Err(); err != nil {
		s.logger.Error("failed to invalidate leave type cache",
			zap.Error(err),
			zap.String("key", ActiveLeaveTypesKey),
		)
	}
}

func mapToLeaveTypeResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:                 lt.ID,
		Name:               lt.Name,
		Description:        lt.Description,
		DefaultDays:        lt.DefaultDays,
		RequiresApproval:   lt.RequiresApproval,
		RequiresDocument:   lt.RequiresDocument,
		MaxConsecutiveDays: lt.MaxConsecutiveDays,
		IsActive:           lt.IsActive,
	}
}

func mapToLeaveTypeListResponse(types []LeaveType) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		res[i] = mapToLeaveTypeResponse(lt)
	}
	return res
}
