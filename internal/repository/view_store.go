package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/socialharmony/backend/pkg/xredis"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrViewNotFound is returned when no record exists for a kind and key, or when the stored record
// was written with another schema version.
var ErrViewNotFound = errors.New("view record not found")

type ViewStore interface {
	Put(ctx context.Context, kind entity.ViewKind, key string, value any) error
	GetRecord(ctx context.Context, kind entity.ViewKind, key string) (*entity.ViewRecord, error)
}

// Save stores value as the latest record of kind and key. Last write wins.
func Save[T any](ctx context.Context, store ViewStore, kind entity.ViewKind, key string, value T) error {
	return store.Put(ctx, kind, key, value)
}

func Load[T any](ctx context.Context, store ViewStore, kind entity.ViewKind, key string) (T, error) {
	var result T

	record, err := store.GetRecord(ctx, kind, key)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(record.Data, &result); err != nil {
		return result, err
	}

	return result, nil
}

func newViewRecord(ctx context.Context, kind entity.ViewKind, key string, value any) (*entity.ViewRecord, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return &entity.ViewRecord{
		Kind:          kind,
		Key:           key,
		SchemaVersion: xcontext.Configs(ctx).Store.SchemaVersion,
		Data:          data,
		UpdatedAt:     time.Now(),
	}, nil
}

func checkSchemaVersion(ctx context.Context, record *entity.ViewRecord) error {
	if record.SchemaVersion != xcontext.Configs(ctx).Store.SchemaVersion {
		xcontext.Logger(ctx).Debugf("Ignore view %s/%s with schema version %d",
			record.Kind, record.Key, record.SchemaVersion)
		return ErrViewNotFound
	}

	return nil
}

type viewStore struct{}

func NewViewStore() *viewStore {
	return &viewStore{}
}

func (r *viewStore) Put(ctx context.Context, kind entity.ViewKind, key string, value any) error {
	record, err := newViewRecord(ctx, kind, key, value)
	if err != nil {
		return err
	}

	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "kind"},
			{Name: "key"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"schema_version", "data", "updated_at"}),
	}).Create(record).Error
}

func (r *viewStore) GetRecord(ctx context.Context, kind entity.ViewKind, key string) (*entity.ViewRecord, error) {
	record := entity.ViewRecord{}
	err := xcontext.DB(ctx).Take(&record, &entity.ViewRecord{Kind: kind, Key: key}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrViewNotFound
		}

		return nil, err
	}

	if err := checkSchemaVersion(ctx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

type redisViewStore struct {
	redisClient xredis.Client
}

func NewRedisViewStore(redisClient xredis.Client) *redisViewStore {
	return &redisViewStore{redisClient: redisClient}
}

func viewRedisKey(kind entity.ViewKind, key string) string {
	return fmt.Sprintf("view:%s:%s", kind, key)
}

func (r *redisViewStore) Put(ctx context.Context, kind entity.ViewKind, key string, value any) error {
	record, err := newViewRecord(ctx, kind, key, value)
	if err != nil {
		return err
	}

	return r.redisClient.SetObj(ctx, viewRedisKey(kind, key), record, 0)
}

func (r *redisViewStore) GetRecord(ctx context.Context, kind entity.ViewKind, key string) (*entity.ViewRecord, error) {
	record := entity.ViewRecord{}
	if err := r.redisClient.GetObj(ctx, viewRedisKey(kind, key), &record); err != nil {
		if errors.Is(err, xredis.ErrNotFound) {
			return nil, ErrViewNotFound
		}

		return nil, err
	}

	if err := checkSchemaVersion(ctx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}
