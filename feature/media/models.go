package media

import (
	"path"
	"strings"
	"time"
)

// MediaAsset is a re-hosted binary image referenced by other entities by id.
type MediaAsset struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Hash       string `gorm:"size:255;not null" json:"hash"`
	Ext        string `gorm:"size:16" json:"ext"`
	Mime       string `gorm:"size:64" json:"mime"`
	Size       int64  `json:"size"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FolderPath string `gorm:"size:255" json:"folder_path"`

	// Audit fields carry the fixed system actor performing the import.
	CreatedByID uint `json:"created_by_id"`
	UpdatedByID uint `json:"updated_by_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name for GORM.
func (MediaAsset) TableName() string {
	return "media_assets"
}

// ObjectKey is the object-store key the asset's bytes live under.
func (a *MediaAsset) ObjectKey() string {
	return path.Join(strings.Trim(a.FolderPath, "/"), a.Hash+a.Ext)
}
