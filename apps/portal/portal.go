// Package portal wires the configured session store, API client and services together.
package portal

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/attainment/core"
	"github.com/trezcool/attainment/core/allotment"
	"github.com/trezcool/attainment/core/course"
	"github.com/trezcool/attainment/core/session"
	"github.com/trezcool/attainment/core/student"
	apisvc "github.com/trezcool/attainment/services/api"
	logsvc "github.com/trezcool/attainment/services/logger"
	notifysvc "github.com/trezcool/attainment/services/notify"
)

// Deps overrides parts of the default wiring; zero values are built from the Config.
type Deps struct {
	Logger     core.Logger
	Notifier   core.Notifier
	Sessions   session.Store
	HTTPClient *http.Client
	Registerer prometheus.Registerer
}

type App struct {
	Conf     *core.Config
	Logger   core.Logger
	Notifier core.Notifier
	Sessions session.Store
	API      *apisvc.Client

	Courses    *course.Service
	Students   *student.Service
	Allotments *allotment.Service

	rdb *redis.Client
}

func New(conf *core.Config, deps Deps) (*App, error) {
	app := &App{Conf: conf, Logger: deps.Logger, Notifier: deps.Notifier, Sessions: deps.Sessions}

	if app.Logger == nil {
		logger := logsvc.NewRollbarLogger(
			log.New(os.Stdout, "PORTAL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
			conf,
		)
		logger.Enable(!conf.Debug)
		app.Logger = logger
	}

	if app.Notifier == nil {
		app.Notifier = notifysvc.NewConsoleService(os.Stdout)
	}

	if app.Sessions == nil {
		store, err := app.newSessionStore()
		if err != nil {
			return nil, err
		}
		app.Sessions = store
	}

	hc := deps.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: conf.API.Timeout}
	}
	opts := []apisvc.Option{apisvc.WithHTTPClient(hc), apisvc.WithLogger(app.Logger)}
	if deps.Registerer != nil {
		opts = append(opts, apisvc.WithMetrics(apisvc.NewMetrics(deps.Registerer)))
	}
	app.API = apisvc.NewClient(conf.API.BaseURL, opts...)

	app.Courses = course.NewService(app.API, app.Sessions, app.Notifier, app.Logger)
	app.Students = student.NewService(app.API, app.Sessions, app.Notifier, app.Logger)
	app.Allotments = allotment.NewService(app.API, app.Sessions, app.Notifier, app.Logger)
	return app, nil
}

func (app *App) newSessionStore() (session.Store, error) {
	conf := app.Conf.Session
	switch conf.Backend {
	case core.SessionBackendMemory:
		return session.NewMemoryStore(), nil
	case core.SessionBackendRedis:
		app.rdb = redis.NewClient(&redis.Options{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})
		return session.NewRedisStore(app.rdb, conf.Key), nil
	case core.SessionBackendFile, "":
		return session.NewFileStore(conf.Path), nil
	default:
		return nil, errors.Errorf("unknown session backend %q", conf.Backend)
	}
}

// Login authenticates against the API and persists the returned credential.
func (app *App) Login(ctx context.Context, email, password string) (session.User, error) {
	cred, err := app.API.Login(ctx, email, password)
	if err != nil {
		app.Logger.Warn("login failed", err, map[string]interface{}{"email": email})
		return session.User{}, errors.Wrap(err, "logging in")
	}
	if err = app.Sessions.Save(ctx, cred); err != nil {
		return session.User{}, err
	}
	app.Logger.Info("logged in", cred.User)
	return cred.User, nil
}

func (app *App) Logout(ctx context.Context) error {
	return app.Sessions.Clear(ctx)
}

// CurrentUser returns the logged in user when their credential is still usable.
func (app *App) CurrentUser(ctx context.Context) (session.User, bool) {
	cred, ok := session.Authorized(ctx, app.Sessions)
	return cred.User, ok
}

// Can reports whether the logged in user may open a screen guarded by roles
// (session.AdminRoles, session.CoordinatorRoles, session.FacultyRoles).
func (app *App) Can(ctx context.Context, roles []string) bool {
	cred, ok := session.Authorized(ctx, app.Sessions)
	return ok && cred.HasAnyRole(roles...)
}

// Close releases the redis connection, if any.
func (app *App) Close() error {
	if app.rdb != nil {
		return app.rdb.Close()
	}
	return nil
}
