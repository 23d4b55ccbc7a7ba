package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/socialharmony/backend/pkg/xredis"
)

type ReportingSnapshotRepository interface {
	Create(ctx context.Context, e *entity.ReportingSnapshot) error
	GetLatest(ctx context.Context, chain string, limit int) ([]entity.ReportingSnapshot, error)
}

type reportingSnapshotRepository struct{}

func NewReportingSnapshotRepository() *reportingSnapshotRepository {
	return &reportingSnapshotRepository{}
}

func (r *reportingSnapshotRepository) Create(ctx context.Context, e *entity.ReportingSnapshot) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	return xcontext.DB(ctx).Create(e).Error
}

func (r *reportingSnapshotRepository) GetLatest(
	ctx context.Context, chain string, limit int,
) ([]entity.ReportingSnapshot, error) {
	result := []entity.ReportingSnapshot{}
	err := xcontext.DB(ctx).
		Where("chain = ?", chain).
		Order("created_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

type redisReportingSnapshotRepository struct {
	redisClient xredis.Client
}

func NewRedisReportingSnapshotRepository(redisClient xredis.Client) *redisReportingSnapshotRepository {
	return &redisReportingSnapshotRepository{redisClient: redisClient}
}

func reportingRedisKey(chain string) string {
	return fmt.Sprintf("reporting:%s", chain)
}

func (r *redisReportingSnapshotRepository) Create(ctx context.Context, e *entity.ReportingSnapshot) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = e.CreatedAt

	b, err := json.Marshal(e)
	if err != nil {
		return err
	}

	return r.redisClient.ZAdd(ctx, reportingRedisKey(e.Chain), redis.Z{
		Score:  float64(e.CreatedAt.UnixMilli()),
		Member: string(b),
	})
}

func (r *redisReportingSnapshotRepository) GetLatest(
	ctx context.Context, chain string, limit int,
) ([]entity.ReportingSnapshot, error) {
	members, err := r.redisClient.ZRevRangeWithScores(ctx, reportingRedisKey(chain), 0, limit)
	if err != nil {
		return nil, err
	}

	result := []entity.ReportingSnapshot{}
	for _, m := range members {
		s, ok := m.Member.(string)
		if !ok {
			return nil, fmt.Errorf("invalid reporting snapshot member %T", m.Member)
		}

		var snapshot entity.ReportingSnapshot
		if err := json.Unmarshal([]byte(s), &snapshot); err != nil {
			return nil, err
		}

		result = append(result, snapshot)
	}

	return result, nil
}
