package usecase

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/entity"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/cache"
	"github.com/eridiumdev/clickpay-web/pkg/logger"
)

type LinksUC struct {
	backend  BackendAPI
	cache    cache.Cache
	statsTTL time.Duration
	log      *logger.Logger
}

func NewLinks(cfg config.Throttle, backend BackendAPI, cache cache.Cache, log *logger.Logger) *LinksUC {
	return &LinksUC{
		backend:  backend,
		cache:    cache,
		statsTTL: cfg.StatsPollInterval,
		log:      log,
	}
}

func (uc *LinksUC) ListLinks(ctx context.Context, s *entity.Session) ([]entity.Link, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	links := []entity.Link{}
	err = uc.backend.Get(ctx, "/api/links", token, &links)
	if err != nil {
		return nil, fromBackend(err)
	}
	return links, nil
}

func (uc *LinksUC) CreateLink(ctx context.Context, s *entity.Session, rawURL, title string) (*entity.Link, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	target, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	var link entity.Link
	err = uc.backend.Post(ctx, "/api/links", token, map[string]string{
		"url":   target,
		"title": strings.TrimSpace(title),
	}, &link)
	if err != nil {
		return nil, fromBackend(err)
	}

	uc.log.Info(ctx).Str("user_id", s.UserID).Str("slug", link.Slug).Msg("link created")
	return &link, nil
}

func (uc *LinksUC) DeleteLink(ctx context.Context, s *entity.Session, id string) error {
	token, err := tokenOf(s)
	if err != nil {
		return err
	}
	if id == "" {
		return invalid("link id is required")
	}

	return fromBackend(uc.backend.Delete(ctx, "/api/links/"+url.PathEscape(id), token, nil))
}

// DashboardStats serves a cached copy while it is younger than the stats
// poll interval. Cache failures degrade to a direct backend call.
func (uc *LinksUC) DashboardStats(ctx context.Context, s *entity.Session) (*entity.DashboardStats, error) {
	token, err := tokenOf(s)
	if err != nil {
		return nil, err
	}

	key := "stats:" + s.UserID

	cached, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.log.Warn(ctx).Err(err).Msg("stats cache read")
	}
	if cached != nil {
		var stats entity.DashboardStats
		if json.Unmarshal(cached, &stats) == nil {
			return &stats, nil
		}
	}

	var stats entity.DashboardStats
	err = uc.backend.Get(ctx, "/api/stats/dashboard", token, &stats)
	if err != nil {
		return nil, fromBackend(err)
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := uc.cache.Set(ctx, key, data, uc.statsTTL); err != nil {
			uc.log.Warn(ctx).Err(err).Msg("stats cache write")
		}
	}

	return &stats, nil
}

// ValidateURL accepts absolute URLs only.
func ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	uri, err := url.Parse(raw)
	if err != nil {
		return "", ErrInvalidURL
	}
	if uri.Scheme == "" || uri.Host == "" {
		return "", ErrIncompleteURL
	}
	return uri.String(), nil
}
