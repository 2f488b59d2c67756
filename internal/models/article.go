package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ContentBlock is one unit of an article body. Type is "paragraph",
// "heading" or "list"; Level is only set for headings, Items only for lists.
type ContentBlock struct {
	ID      string   `json:"id,omitempty"`
	Type    string   `json:"type"`
	Content string   `json:"content"`
	Level   int      `json:"level,omitempty"`
	Items   []string `json:"items,omitempty"`
}

// Source references material an article is based on.
type Source struct {
	ID    string `json:"id,omitempty"`
	Type  string `json:"type"`
	Value string `json:"value"`
	Title string `json:"title"`
}

// Column types stored as jsonb so the block structure survives without
// extra tables.
type (
	ContentBlocks []ContentBlock
	Sources       []Source
	Tags          []string
)

func (c ContentBlocks) Value() (driver.Value, error) { return jsonbValue(c) }
func (c *ContentBlocks) Scan(src interface{}) error  { return jsonbScan(c, src) }

func (s Sources) Value() (driver.Value, error) { return jsonbValue(s) }
func (s *Sources) Scan(src interface{}) error  { return jsonbScan(s, src) }

func (t Tags) Value() (driver.Value, error) { return jsonbValue(t) }
func (t *Tags) Scan(src interface{}) error  { return jsonbScan(t, src) }

func jsonbValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonbScan(dest interface{}, src interface{}) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
	return json.Unmarshal(data, dest)
}

type Article struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2024-11-15T10:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2024-11-15T10:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Title     string         `json:"title" example:"Sample Article Title"`
	Summary   string         `json:"summary" example:"A short article summary."`
	Content   ContentBlocks  `gorm:"type:jsonb" json:"content"`
	Category  string         `json:"category" example:"Biology"`
	Tags      Tags           `gorm:"type:jsonb" json:"tags"`
	Sources   Sources        `gorm:"type:jsonb" json:"sources"`
	ImageURL  string         `json:"image_url,omitempty"`
	Status    string         `gorm:"default:draft" json:"status" example:"draft"`
	Views     uint           `gorm:"default:0" json:"views"`
}
