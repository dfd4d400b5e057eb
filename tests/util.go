package testutil

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/trezcool/attainment/core"
	"github.com/trezcool/attainment/core/session"
	apisvc "github.com/trezcool/attainment/services/api"
	logsvc "github.com/trezcool/attainment/services/logger"
	notifysvc "github.com/trezcool/attainment/services/notify"
	"github.com/trezcool/attainment/tests/apistub"
)

// Env is a stubbed backend with a client, an empty in-memory session & a notification recorder.
type Env struct {
	Stub     *apistub.Server
	Client   *apisvc.Client
	Sessions *session.MemoryStore
	Notifier *notifysvc.Recorder
	Logger   core.Logger
}

func Setup(t *testing.T) *Env {
	stub := apistub.New()
	t.Cleanup(stub.Close)

	logger := NewLogger()
	return &Env{
		Stub:     stub,
		Client:   apisvc.NewClient(stub.URL, apisvc.WithLogger(logger)),
		Sessions: session.NewMemoryStore(),
		Notifier: notifysvc.NewRecorder(),
		Logger:   logger,
	}
}

// Login stores a valid credential for usr in the session.
func (env *Env) Login(t *testing.T, usr session.User) session.Credential {
	cred := apistub.Credential(usr)
	if err := env.Sessions.Save(context.Background(), cred); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	return cred
}

// LastNotification fails the test when nothing was notified.
func (env *Env) LastNotification(t *testing.T) core.Notification {
	n, ok := env.Notifier.Last()
	if !ok {
		t.Fatalf("LastNotification(): nothing was notified")
	}
	return n
}

// NewLogger returns a silent logger that never reports to rollbar.
func NewLogger() core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{Env: "TEST"})
	logger.Enable(false)
	return logger
}
