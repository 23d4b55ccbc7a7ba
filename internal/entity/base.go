package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Base struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// JSON is a raw JSON document stored in a text column.
type JSON []byte

func (j *JSON) Scan(obj any) error {
	switch t := obj.(type) {
	case string:
		*j = append((*j)[:0], t...)
		return nil
	case []byte:
		*j = append((*j)[:0], t...)
		return nil
	case nil:
		*j = nil
		return nil
	}

	return fmt.Errorf("cannot scan invalid data type %T", obj)
}

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "null", nil
	}

	if !json.Valid(j) {
		return nil, fmt.Errorf("invalid json document")
	}

	return string(j), nil
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}

	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}
