package entity

import (
	"time"

	"github.com/socialharmony/backend/pkg/enum"
)

type ViewKind string

var (
	ViewKindGames         = enum.New(ViewKind("games"))
	ViewKindCharities     = enum.New(ViewKind("charities"))
	ViewKindUser          = enum.New(ViewKind("user"))
	ViewKindGame          = enum.New(ViewKind("game"))
	ViewKindOverallReport = enum.New(ViewKind("overallReport"))
)

// ViewRecord is the last fetched view model of one kind and key.
type ViewRecord struct {
	Kind          ViewKind `gorm:"primaryKey;size:32"`
	Key           string   `gorm:"primaryKey;size:128"`
	SchemaVersion int
	Data          JSON `gorm:"type:text"`
	UpdatedAt     time.Time
}
