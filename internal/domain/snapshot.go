package domain

import (
	"context"
	"errors"

	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/enum"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/xcontext"
)

type SnapshotDomain interface {
	GetSnapshot(context.Context, *model.GetSnapshotRequest) (*model.GetSnapshotResponse, error)
}

type snapshotDomain struct {
	viewStore repository.ViewStore
}

func NewSnapshotDomain(viewStore repository.ViewStore) *snapshotDomain {
	return &snapshotDomain{viewStore: viewStore}
}

// GetSnapshot returns the last stored view of a kind. Listings and the overall report are
// stored under the key "all", which is used when no key is given.
func (d *snapshotDomain) GetSnapshot(
	ctx context.Context, req *model.GetSnapshotRequest,
) (*model.GetSnapshotResponse, error) {
	if d.viewStore == nil {
		return nil, errorx.New(errorx.Unavailable, "View store is not enabled")
	}

	kind, err := enum.ToEnum[entity.ViewKind](req.Kind)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid view kind: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid snapshot kind %s", req.Kind)
	}

	key := req.Key
	if key == "" {
		key = storeKeyAll
	}

	record, err := d.viewStore.GetRecord(ctx, kind, key)
	if err != nil {
		if errors.Is(err, repository.ErrViewNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found snapshot")
		}

		xcontext.Logger(ctx).Errorf("Cannot get snapshot %s/%s: %v", kind, key, err)
		return nil, errorx.Unknown
	}

	return &model.GetSnapshotResponse{
		Kind:          string(record.Kind),
		Key:           record.Key,
		SchemaVersion: record.SchemaVersion,
		UpdatedAt:     record.UpdatedAt,
		Data:          []byte(record.Data),
	}, nil
}
