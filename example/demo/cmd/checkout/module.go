package main

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/fx"

	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher/oteladapters"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/eventdispatcher/zapadapters"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/addorderitem"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/changecustomeraddress"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/createproduct"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/placeorder"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/features/registercustomer"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/core"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/config"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/handlers"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/memorystore"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/observable"
	"github.com/AntonStoeckl/domain-events-dispatcher-go/example/shared/shell/orderrepository"
)

const instrumentationName = "checkout-demo"

// Module returns the fx module of the checkout demo, composing all providers and lifecycle hooks.
func Module(cfg config.AppConfig) fx.Option {
	return fx.Module("checkout",
		fx.Supply(cfg),
		fx.Provide(
			provideLogger,
			provideHandlerLogger,
			provideObservability,
			provideDispatcher,
			provideAuditLog,
			provideOrderRepository,
			provideFeatures,
			newScenario,
			handlers.NewOutboxMailer,
			memorystore.NewStore[*core.Customer],
			memorystore.NewStore[*core.Product],
		),
		fx.Invoke(registerEventHandlers),
	)
}

func provideLogger(lc fx.Lifecycle, cfg config.AppConfig) (*zapadapters.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return nil, err
	}

	var (
		logger *zapadapters.Logger
		err    error
	)

	if cfg.Logging.Development {
		logger, err = zapadapters.NewDevelopmentLogger(level)
	} else {
		logger, err = zapadapters.NewProductionLogger(level)
	}

	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))

	return logger, nil
}

// provideHandlerLogger returns the logger of the event handlers, which print to stdout like a console.
func provideHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// provideObservability returns nil providers when observability is disabled.
func provideObservability(lc fx.Lifecycle, cfg config.AppConfig) (*config.ObservabilityProviders, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}

	providers, err := config.NewObservabilityProviders(context.Background(), cfg.Observability)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: providers.Shutdown,
	})

	return providers, nil
}

func provideDispatcher(
	cfg config.AppConfig,
	logger *zapadapters.Logger,
	providers *config.ObservabilityProviders,
) (*eventdispatcher.Dispatcher, error) {

	policy := eventdispatcher.AbortOnHandlerError
	if cfg.Dispatcher.FailurePolicy == config.FailurePolicyContinue {
		policy = eventdispatcher.ContinueOnHandlerError
	}

	options := []eventdispatcher.Option{
		eventdispatcher.WithHandlerFailurePolicy(policy),
		eventdispatcher.WithLogger(logger),
	}

	if providers != nil {
		options = append(options,
			eventdispatcher.WithMetrics(oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(instrumentationName))),
			eventdispatcher.WithTracing(oteladapters.NewTracingCollector(providers.TracerProvider.Tracer(instrumentationName))),
			eventdispatcher.WithContextualLogger(oteladapters.NewSlogBridgeLogger(instrumentationName)),
		)
	}

	return eventdispatcher.NewDispatcher(options...)
}

// auditLog buffers the JSON audit lines for printing and optionally appends them to a file.
type auditLog struct {
	buffer *bytes.Buffer
	writer io.Writer
}

func provideAuditLog(lc fx.Lifecycle, cfg config.AppConfig) (*auditLog, error) {
	audit := &auditLog{buffer: &bytes.Buffer{}}
	audit.writer = audit.buffer

	if cfg.Notifications.AuditLogPath == "" {
		return audit, nil
	}

	file, err := os.OpenFile(cfg.Notifications.AuditLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	audit.writer = io.MultiWriter(audit.buffer, file)

	lc.Append(fx.StopHook(file.Close))

	return audit, nil
}

func registerEventHandlers(
	dispatcher *eventdispatcher.Dispatcher,
	logger *slog.Logger,
	mailer *handlers.OutboxMailer,
	audit *auditLog,
	cfg config.AppConfig,
) {

	handlers.RegisterAll(dispatcher, handlers.Dependencies{
		Logger:         logger,
		Mailer:         mailer,
		EmailRecipient: cfg.Notifications.EmailRecipient,
		AuditWriter:    audit.writer,
	})
}

func provideOrderRepository(
	lc fx.Lifecycle,
	cfg config.AppConfig,
	dispatcher *eventdispatcher.Dispatcher,
	logger *zapadapters.Logger,
) (*orderrepository.Repository, error) {

	ctx := context.Background()
	options := []orderrepository.Option{
		orderrepository.WithDispatcher(dispatcher),
		orderrepository.WithLogger(logger),
	}

	switch cfg.Database.Driver {
	case config.DriverPGX:
		pool, err := config.PostgresPGXPool(ctx, cfg.Database.DSN, cfg.WaitConfig())
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(pool.Close))

		if err = migrateAndClose(stdlib.OpenDBFromPool(pool), orderrepository.DialectPostgres, logger); err != nil {
			return nil, err
		}

		return orderrepository.NewRepositoryFromPGXPool(pool, options...)

	case config.DriverSQLX:
		db, err := config.PostgresSQLX(ctx, cfg.Database.DSN, cfg.WaitConfig())
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(db.Close))

		if err = migrate(db.DB, orderrepository.DialectPostgres, logger); err != nil {
			return nil, err
		}

		return orderrepository.NewRepositoryFromSQLX(db, orderrepository.DialectPostgres, options...)

	case config.DriverSQLDB:
		db, err := config.PostgresSQLDB(ctx, cfg.Database.DSN, cfg.WaitConfig())
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(db.Close))

		if err = migrate(db, orderrepository.DialectPostgres, logger); err != nil {
			return nil, err
		}

		return orderrepository.NewRepositoryFromSQLDB(db, orderrepository.DialectPostgres, options...)

	default:
		db, err := config.SQLiteSQLDB(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.StopHook(db.Close))

		if err = migrate(db, orderrepository.DialectSQLite3, logger); err != nil {
			return nil, err
		}

		return orderrepository.NewRepositoryFromSQLDB(db, orderrepository.DialectSQLite3, options...)
	}
}

// migrateAndClose migrates through a short-lived *sql.DB, e.g. one wrapping a pgx pool.
// Closing it returns its connections to the pool, the pool itself stays open.
func migrateAndClose(db *sql.DB, dialect orderrepository.Dialect, logger *zapadapters.Logger) error {
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("closing migration connection failed", "error", err)
		}
	}()

	return migrate(db, dialect, logger)
}

func migrate(db *sql.DB, dialect orderrepository.Dialect, logger *zapadapters.Logger) error {
	result, err := orderrepository.Migrate(db, dialect)
	if err != nil {
		return err
	}

	if result.Changed {
		logger.Info("migrations applied", "version", result.Version, "dialect", dialect)
	} else {
		logger.Info("migrations up to date", "version", result.Version, "dialect", dialect)
	}

	return nil
}

// features holds the observable command handlers of all use cases.
type features struct {
	registerCustomer      *observable.CommandWrapper[registercustomer.Command]
	changeCustomerAddress *observable.CommandWrapper[changecustomeraddress.Command]
	createProduct         *observable.CommandWrapper[createproduct.Command]
	placeOrder            *observable.CommandWrapper[placeorder.Command]
	addOrderItem          *observable.CommandWrapper[addorderitem.Command]
}

func provideFeatures(
	dispatcher *eventdispatcher.Dispatcher,
	customers *memorystore.Store[*core.Customer],
	products *memorystore.Store[*core.Product],
	orders *orderrepository.Repository,
	logger *zapadapters.Logger,
	providers *config.ObservabilityProviders,
) (*features, error) {

	var (
		f   features
		err error
	)

	if f.registerCustomer, err = observable.NewCommandWrapper(
		shell.CoreCommandHandler[registercustomer.Command](registercustomer.NewCommandHandler(customers, dispatcher)),
		commandOptions[registercustomer.Command](logger, providers)...,
	); err != nil {
		return nil, err
	}

	if f.changeCustomerAddress, err = observable.NewCommandWrapper(
		shell.CoreCommandHandler[changecustomeraddress.Command](changecustomeraddress.NewCommandHandler(customers, dispatcher)),
		commandOptions[changecustomeraddress.Command](logger, providers)...,
	); err != nil {
		return nil, err
	}

	if f.createProduct, err = observable.NewCommandWrapper(
		shell.CoreCommandHandler[createproduct.Command](createproduct.NewCommandHandler(products, dispatcher)),
		commandOptions[createproduct.Command](logger, providers)...,
	); err != nil {
		return nil, err
	}

	if f.placeOrder, err = observable.NewCommandWrapper(
		shell.CoreCommandHandler[placeorder.Command](placeorder.NewCommandHandler(customers, products, orders)),
		commandOptions[placeorder.Command](logger, providers)...,
	); err != nil {
		return nil, err
	}

	if f.addOrderItem, err = observable.NewCommandWrapper(
		shell.CoreCommandHandler[addorderitem.Command](addorderitem.NewCommandHandler(products, orders)),
		commandOptions[addorderitem.Command](logger, providers)...,
	); err != nil {
		return nil, err
	}

	return &f, nil
}

func commandOptions[C shell.Command](
	logger *zapadapters.Logger,
	providers *config.ObservabilityProviders,
) []observable.CommandOption[C] {

	options := []observable.CommandOption[C]{
		observable.WithCommandLogging[C](logger),
	}

	if providers == nil {
		return options
	}

	return append(options,
		observable.WithCommandContextualLogging[C](logger),
		observable.WithCommandMetrics[C](oteladapters.NewMetricsCollector(providers.MeterProvider.Meter(instrumentationName))),
		observable.WithCommandTracing[C](oteladapters.NewTracingCollector(providers.TracerProvider.Tracer(instrumentationName))),
	)
}
