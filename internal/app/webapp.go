package app

import (
	"context"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"github.com/eridiumdev/clickpay-web/config"
	"github.com/eridiumdev/clickpay-web/internal/controller/http"
	"github.com/eridiumdev/clickpay-web/internal/controller/http/middleware"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/backend"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/cache"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/crypto"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/notify"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/recaptcha"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/repository/batch"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/storage"
	"github.com/eridiumdev/clickpay-web/internal/infrastructure/throttle"
	"github.com/eridiumdev/clickpay-web/internal/usecase"
	"github.com/eridiumdev/clickpay-web/pkg/httpserver"
	"github.com/eridiumdev/clickpay-web/pkg/logger"

	_ "github.com/eridiumdev/clickpay-web/docs"
)

type WebApp struct {
	server     *fiber.App
	serverAddr string

	sessions  repository.SessionRepo
	attempts  repository.AttemptRepo
	processor *batch.Processor
	redis     *redis.Client
	log       *logger.Logger
}

func NewWebApp(ctx context.Context, cfg *config.Config, log *logger.Logger) (*WebApp, error) {
	app := &WebApp{
		serverAddr: cfg.Server.Addr,
		log:        log,
	}

	server := httpserver.New(httpserver.Options{})

	// Before any SubLogger below, the hook is copied into them
	log.RegisterHook(middleware.LogFields()...)

	server.Use(middleware.RequestID())
	server.Use(middleware.Logger(log.SubLogger("http_requests")))

	cipher, err := crypto.NewAES256(cfg.App.AuthSecret, log.SubLogger("crypto"))
	if err != nil {
		return nil, log.Wrap(err, "init crypto cipher")
	}

	// Redis backs sessions, throttling and caching; each falls back to in-mem
	var (
		limiter     throttle.Limiter
		statsCache  cache.Cache
		sessionRepo repository.SessionRepo
	)
	redisClient, err := repository.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn(ctx).Err(err).Msg("redis unavailable, falling back to in-mem stores")

		backup, err := storage.NewFileStorage(cfg.Storage.Filepath)
		if err != nil {
			return nil, log.Wrap(err, "init backup storage")
		}
		log.Info(ctx).Msgf("Initialized backup storage @ %s", cfg.Storage.Filepath)

		sessionRepo = repository.NewInMemSessionRepo(backup)
		limiter = throttle.NewInMem()
		statsCache = cache.NewInMem()
		log.Info(ctx).Msgf("Initialized session repo @ in-mem")
	} else {
		app.redis = redisClient
		sessionRepo = repository.NewRedisSessionRepo(redisClient, log.SubLogger("session_repo"))
		limiter = throttle.NewRedis(redisClient, log.SubLogger("throttle"))
		statsCache = cache.NewRedis(redisClient, log.SubLogger("cache"))
		log.Info(ctx).Msgf("Initialized session repo @ redis %s", cfg.Redis.Addr)
	}
	app.sessions = sessionRepo

	err = sessionRepo.Restore(ctx)
	if err != nil {
		return nil, log.Wrap(err, "restore sessions from backup")
	}
	log.Info(ctx).Msgf("Restore from backup complete")

	var attemptRepo repository.AttemptRepo
	attemptRepo, err = repository.NewPostgresAttemptRepo(ctx, cfg.PostgreSQL, log.SubLogger("attempt_repo"))
	if err != nil {
		log.Error(ctx, err).Msg("init attempt repo")
		// Fallback to in-mem repo
		attemptRepo = repository.NewInMemAttemptRepo()
		log.Info(ctx).Msgf("Initialized attempt repo @ in-mem")
	} else {
		log.Info(ctx).Msgf("Initialized attempt repo @ postgres")
	}
	app.attempts = attemptRepo
	app.processor = batch.NewProcessor(attemptRepo, time.Second, log.SubLogger("attempt_batch"))

	var notifier notify.Notifier
	notifier, err = notify.NewTelegram(cfg.Telegram, log.SubLogger("telegram"))
	if err != nil {
		if !errors.Is(err, notify.ErrTelegramNotConfigured) {
			return nil, log.Wrap(err, "init telegram notifier")
		}
		notifier = notify.NewNoop()
		log.Info(ctx).Msgf("Operator notifications disabled")
	}

	api := backend.NewClient(cfg.Backend, log.SubLogger("backend"))
	verifier := recaptcha.NewVerifier(cfg.Recaptcha, log.SubLogger("recaptcha"))

	redirectUC := usecase.NewRedirect(api, verifier, app.processor, log.SubLogger("redirect_uc"))
	accountUC := usecase.NewAccount(cfg.Session, api, sessionRepo, log.SubLogger("account_uc"))
	linksUC := usecase.NewLinks(cfg.Throttle, api, statsCache, log.SubLogger("links_uc"))
	contentUC := usecase.NewContent(api, notifier, log.SubLogger("content_uc"))
	paymentsUC := usecase.NewPayments(cfg.Payments, api, log.SubLogger("payments_uc"))
	adsUC := usecase.NewAds(api, log.SubLogger("ads_uc"))
	supportUC := usecase.NewSupport(api, notifier, log.SubLogger("support_uc"))
	auditUC := usecase.NewAudit(attemptRepo, log.SubLogger("audit_uc"))

	server.Use(middleware.SessionAuth(middleware.SessionAuthConfig{
		Cipher:   cipher,
		Sessions: accountUC,
	}, log.SubLogger("session_auth")))
	server.Use(middleware.RoleGuard())

	throttleLog := log.SubLogger("poll_throttle")
	statsThrottle := middleware.PollThrottle(limiter, "stats", cfg.Throttle.StatsPollInterval, throttleLog)
	supportThrottle := middleware.PollThrottle(limiter, "support", cfg.Throttle.SupportPollInterval, throttleLog)

	http.NewHealthController(server, app.ping, log.SubLogger("health_controller"))
	http.NewRedirectController(server, redirectUC, log.SubLogger("redirect_controller"))
	http.NewAccountController(server, accountUC, cipher, log.SubLogger("account_controller"))
	http.NewLinksController(server, linksUC, statsThrottle, log.SubLogger("links_controller"))
	http.NewContentController(server, contentUC, log.SubLogger("content_controller"))
	http.NewPaymentsController(server, paymentsUC, log.SubLogger("payments_controller"))
	http.NewAdsController(server, adsUC, log.SubLogger("ads_controller"))
	http.NewSupportController(server, supportUC, supportThrottle, log.SubLogger("support_controller"))
	http.NewAuditController(server, auditUC, log.SubLogger("audit_controller"))

	server.Get("/docs/*", fiberSwagger.WrapHandler)

	if cfg.Server.StaticDir != "" {
		server.Static("/", cfg.Server.StaticDir, fiber.Static{
			Compress: true,
			Index:    "index.html",
		})
	}

	app.server = server

	return app, nil
}

// ping reports the first unreachable store.
func (a *WebApp) ping(ctx context.Context) error {
	if err := a.sessions.Ping(ctx); err != nil {
		return a.log.Wrap(err, "ping session repo")
	}
	if err := a.attempts.Ping(ctx); err != nil {
		return a.log.Wrap(err, "ping attempt repo")
	}
	return nil
}

func (a *WebApp) Run(ctx context.Context) error {
	a.log.Info(ctx).Msgf("Listening on %s", a.serverAddr)
	if err := a.server.Listen(a.serverAddr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *WebApp) Stop(ctx context.Context) error {
	err := a.server.ShutdownWithContext(ctx)
	if err != nil {
		return a.log.Wrap(err, "shutdown server")
	}

	a.processor.Stop(ctx)

	err = a.sessions.Backup(ctx)
	if err != nil {
		return a.log.Wrap(err, "backup sessions")
	}

	err = a.sessions.Close(ctx)
	if err != nil {
		return a.log.Wrap(err, "close session repo")
	}

	err = a.attempts.Close(ctx)
	if err != nil {
		return a.log.Wrap(err, "close attempt repo")
	}

	if a.redis != nil {
		err = a.redis.Close()
		if err != nil {
			return a.log.Wrap(err, "close redis")
		}
	}

	return nil
}
