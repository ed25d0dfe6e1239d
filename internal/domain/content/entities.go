package content

import (
	"context"
	"time"

	"esep-backend/internal/domain/errs"
)

var (
	ErrAnnouncementNotFound = errs.New(errs.ErrNotFound, "announcement not found")
	ErrUtilityNotFound      = errs.New(errs.ErrNotFound, "utility not found")
)

// Table: announcements
type Announcement struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	IsActive  bool      `gorm:"column:is_active;not null;index" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Announcement) TableName() string { return "announcements" }

// Table: utilities
type Utility struct {
	ID          string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	URL         string    `gorm:"column:url;type:text;not null" json:"url"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsActive    bool      `gorm:"column:is_active;not null;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Utility) TableName() string { return "utilities" }

type Repository interface {
	CreateAnnouncement(ctx context.Context, a *Announcement) error
	SaveAnnouncement(ctx context.Context, a *Announcement) error
	DeleteAnnouncement(ctx context.Context, id string) (int64, error)
	GetAnnouncement(ctx context.Context, id string) (*Announcement, error)
	// ListAnnouncements is newest first; limit <= 0 means no limit.
	ListAnnouncements(ctx context.Context, activeOnly bool, limit int) ([]Announcement, error)

	CreateUtility(ctx context.Context, u *Utility) error
	SaveUtility(ctx context.Context, u *Utility) error
	DeleteUtility(ctx context.Context, id string) (int64, error)
	GetUtility(ctx context.Context, id string) (*Utility, error)
	ListUtilities(ctx context.Context, activeOnly bool, limit int) ([]Utility, error)
}
