package model

import (
	"encoding/json"
	"time"
)

type GetSnapshotRequest struct {
	Kind string `json:"kind" form:"kind"`
	Key  string `json:"key" form:"key"`
}

type GetSnapshotResponse struct {
	Kind          string          `json:"kind"`
	Key           string          `json:"key"`
	SchemaVersion int             `json:"schema_version"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Data          json.RawMessage `json:"data"`
}

// GameActivity is published after a successful join or endorsement.
type GameActivity struct {
	ID     string `json:"id"`
	Action string `json:"action"`
	Game   string `json:"game"`
	User   string `json:"user"`
	TxHash string `json:"tx_hash"`
}
