package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/birthday-notifier/internal/api/handlers/reminder"
	"github.com/aliskhannn/birthday-notifier/internal/api/router"
	"github.com/aliskhannn/birthday-notifier/internal/api/server"
	"github.com/aliskhannn/birthday-notifier/internal/birthday"
	"github.com/aliskhannn/birthday-notifier/internal/config"
	"github.com/aliskhannn/birthday-notifier/internal/lock"
	"github.com/aliskhannn/birthday-notifier/internal/metrics"
	"github.com/aliskhannn/birthday-notifier/internal/pipeline"
	"github.com/aliskhannn/birthday-notifier/internal/provider"
	emailmsg "github.com/aliskhannn/birthday-notifier/internal/rabbitmq/handlers/email"
	"github.com/aliskhannn/birthday-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/birthday-notifier/internal/repository"
	bdayrepo "github.com/aliskhannn/birthday-notifier/internal/repository/birthday"
	notifrepo "github.com/aliskhannn/birthday-notifier/internal/repository/notification"
	profilerepo "github.com/aliskhannn/birthday-notifier/internal/repository/profile"
	ticketrepo "github.com/aliskhannn/birthday-notifier/internal/repository/ticket"
	"github.com/aliskhannn/birthday-notifier/internal/scheduler"
	bdaysvc "github.com/aliskhannn/birthday-notifier/internal/service/birthday"
	"github.com/aliskhannn/birthday-notifier/internal/service/mailer"
	notifsvc "github.com/aliskhannn/birthday-notifier/internal/service/notification"
	"github.com/aliskhannn/birthday-notifier/internal/service/push"
	"github.com/aliskhannn/birthday-notifier/internal/worker"
	"github.com/aliskhannn/birthday-notifier/pkg/email"
	"github.com/aliskhannn/birthday-notifier/pkg/expo"
	"github.com/aliskhannn/birthday-notifier/pkg/webpush"
)

type runLocker interface {
	TryLock(ctx context.Context) (string, bool, error)
	Unlock(ctx context.Context, token string) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse log level")
	}
	zerolog.SetGlobalLevel(level)

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := repository.Migrate(ctx, db); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	pairs := bdayrepo.NewRepository(db)
	records := notifrepo.NewRepository(db)
	tickets := ticketrepo.NewRepository(db)
	profiles := profilerepo.NewRepository(db)

	policy, err := birthday.ParseLeapPolicy(cfg.Notifications.LeapDay)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("invalid leap day policy")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	pushProvider := newProvider(cfg)
	zlog.Logger.Info().Str("provider", pushProvider.Name()).Msg("push provider configured")

	engine := bdaysvc.NewEngine(pairs, birthday.NewResolver(policy))
	writer := notifsvc.NewWriter(records)
	dispatcher := push.NewDispatcher(pushProvider, records, tickets, push.DispatcherConfig{
		ChunkSize:    cfg.Push.ChunkSize,
		Concurrency:  cfg.Push.Concurrency,
		TicketWindow: cfg.Notifications.TicketWindow,
	})
	reconciler := push.NewReconciler(profiles)

	var wg sync.WaitGroup

	var p *pipeline.Pipeline
	closeRabbit := func() {}

	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}

		ch, err := conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}

		closeRabbit = func() {
			if err := ch.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
			}
			if err := conn.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
			}
		}

		q, err := queue.NewEmailQueue(ch)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create email queue")
		}

		emailClient := email.NewClient(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)

		mailService := mailer.NewService(q, emailClient, cfg.Retry)
		mailWorker := worker.NewMailer(q, emailmsg.NewHandler(mailService, q))

		wg.Add(1)
		go func() {
			defer wg.Done()
			mailWorker.Run(ctx, cfg.Retry, cfg.Workers.Count)
		}()

		p = pipeline.New(engine, writer, dispatcher, reconciler, mailService, m)
	} else {
		zlog.Logger.Info().Msg("rabbitmq disabled, email reminders are off")
		p = pipeline.New(engine, writer, dispatcher, reconciler, nil, m)
	}

	var locker runLocker = lock.NewLocal()
	if cfg.Redis.Enabled {
		rdb, err := lock.Connect(ctx, cfg.Redis.URL())
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close redis client")
			}
		}()

		locker = lock.NewRedis(rdb, cfg.Scheduler.LockKey, cfg.Scheduler.LockTTL)
	}

	sched := scheduler.New(p, locker, scheduler.Config{
		Interval:   cfg.Scheduler.Interval,
		RunTimeout: cfg.Scheduler.RunTimeout,
		Clearance:  cfg.Notifications.Clearance,
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		sched.Start(ctx)
	}()

	checker := push.NewReceiptChecker(pushProvider, tickets, reconciler, cfg.Push.ReceiptDelay, cfg.Push.ReceiptBatch)
	poller := worker.NewReceiptPoller(checker, cfg.Push.ReceiptInterval, func(r push.ReceiptReport) {
		m.ReceiptsChecked.Add(float64(r.Checked))
		m.ReceiptErrors.Add(float64(r.Errors))
		m.Unregistered.Add(float64(r.Unregistered))
	})

	wg.Add(1)
	go func() {
		defer wg.Done()
		poller.Run(ctx)
	}()

	handler := reminder.NewHandler(sched, validator.New(), cfg.Notifications.Clearance)
	s := server.New(":"+cfg.Server.HTTPPort, router.New(handler, reg))

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	wg.Wait()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	closeRabbit()
}

func newProvider(cfg *config.Config) push.Provider {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Push.Provider {
	case "webpush":
		client := webpush.NewClient(
			cfg.Push.WebPush.Subscriber,
			cfg.Push.WebPush.PublicKey,
			cfg.Push.WebPush.PrivateKey,
			cfg.Push.WebPush.TTL,
			httpClient,
		)
		return provider.NewWebPush(client, cfg.Push.Concurrency)
	default:
		opts := []expo.Option{
			expo.WithHTTPClient(httpClient),
			expo.WithRetry(cfg.Push.Expo.Attempts, cfg.Push.Expo.Delay),
		}
		if cfg.Push.Expo.BaseURL != "" {
			opts = append(opts, expo.WithBaseURL(cfg.Push.Expo.BaseURL))
		}
		if cfg.Push.Expo.AccessToken != "" {
			opts = append(opts, expo.WithAccessToken(cfg.Push.Expo.AccessToken))
		}
		return provider.NewExpo(expo.NewClient(opts...))
	}
}
