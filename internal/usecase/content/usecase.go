package content

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"esep-backend/internal/domain/content"
	"esep-backend/internal/domain/errs"
	"esep-backend/internal/infrastructure/logger"

	"github.com/sirupsen/logrus"
)

const module = "usecase.content"

// Public page sizes.
const (
	PublicAnnouncementLimit = 3
	PublicUtilityLimit      = 6
)

type AnnouncementInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive *bool  `json:"is_active"`
}

type UtilityInput struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type Usecase struct {
	repo content.Repository
	log  logrus.FieldLogger
}

func NewUsecase(repo content.Repository, l logrus.FieldLogger) *Usecase {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Usecase{repo: repo, log: l}
}

func (in AnnouncementInput) validate() error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return errs.Validation("title and content are required")
	}
	return nil
}

func (in UtilityInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errs.Validation("name is required")
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(in.URL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.Validation("url must be an absolute http(s) URL")
	}
	return nil
}

// PublicAnnouncements lists the latest active announcements.
func (u *Usecase) PublicAnnouncements(ctx context.Context) ([]content.Announcement, error) {
	return u.repo.ListAnnouncements(ctx, true, PublicAnnouncementLimit)
}

func (u *Usecase) PublicUtilities(ctx context.Context) ([]content.Utility, error) {
	return u.repo.ListUtilities(ctx, true, PublicUtilityLimit)
}

func (u *Usecase) ListAnnouncements(ctx context.Context) ([]content.Announcement, error) {
	return u.repo.ListAnnouncements(ctx, false, 0)
}

func (u *Usecase) ListUtilities(ctx context.Context) ([]content.Utility, error) {
	return u.repo.ListUtilities(ctx, false, 0)
}

func (u *Usecase) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (*content.Announcement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	a := &content.Announcement{
		Title:    strings.TrimSpace(in.Title),
		Content:  strings.TrimSpace(in.Content),
		IsActive: in.IsActive == nil || *in.IsActive,
	}
	if err := u.repo.CreateAnnouncement(ctx, a); err != nil {
		u.logStore("CreateAnnouncement", in.Title, err)
		return nil, err
	}
	return a, nil
}

func (u *Usecase) UpdateAnnouncement(ctx context.Context, id string, in AnnouncementInput) (*content.Announcement, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	a, err := u.repo.GetAnnouncement(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Title = strings.TrimSpace(in.Title)
	a.Content = strings.TrimSpace(in.Content)
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if err := u.repo.SaveAnnouncement(ctx, a); err != nil {
		u.logStore("UpdateAnnouncement", id, err)
		return nil, err
	}
	return a, nil
}

func (u *Usecase) DeleteAnnouncement(ctx context.Context, id string) error {
	n, err := u.repo.DeleteAnnouncement(ctx, id)
	if err != nil {
		u.logStore("DeleteAnnouncement", id, err)
		return err
	}
	if n == 0 {
		return content.ErrAnnouncementNotFound
	}
	return nil
}

func (u *Usecase) CreateUtility(ctx context.Context, in UtilityInput) (*content.Utility, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ut := &content.Utility{
		Name:        strings.TrimSpace(in.Name),
		URL:         strings.TrimSpace(in.URL),
		Description: strings.TrimSpace(in.Description),
		IsActive:    in.IsActive == nil || *in.IsActive,
	}
	if err := u.repo.CreateUtility(ctx, ut); err != nil {
		u.logStore("CreateUtility", in.Name, err)
		return nil, err
	}
	return ut, nil
}

func (u *Usecase) UpdateUtility(ctx context.Context, id string, in UtilityInput) (*content.Utility, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ut, err := u.repo.GetUtility(ctx, id)
	if err != nil {
		return nil, err
	}
	ut.Name = strings.TrimSpace(in.Name)
	ut.URL = strings.TrimSpace(in.URL)
	ut.Description = strings.TrimSpace(in.Description)
	if in.IsActive != nil {
		ut.IsActive = *in.IsActive
	}
	if err := u.repo.SaveUtility(ctx, ut); err != nil {
		u.logStore("UpdateUtility", id, err)
		return nil, err
	}
	return ut, nil
}

func (u *Usecase) DeleteUtility(ctx context.Context, id string) error {
	n, err := u.repo.DeleteUtility(ctx, id)
	if err != nil {
		u.logStore("DeleteUtility", id, err)
		return err
	}
	if n == 0 {
		return content.ErrUtilityNotFound
	}
	return nil
}

func (u *Usecase) logStore(funcName string, data any, err error) {
	if errors.Is(err, errs.ErrStore) {
		logger.LogError(u.log, module, funcName, "store", data, err)
	}
}
