package notifysvc

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/trezcool/attainment/core"
)

type consoleService struct {
	mu  sync.Mutex
	out io.Writer
}

var _ core.Notifier = (*consoleService)(nil)

// NewConsoleService writes every notification as a single line to out.
func NewConsoleService(out io.Writer) core.Notifier {
	return &consoleService{out: out}
}

func (svc *consoleService) Notify(n core.Notification) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	_, _ = fmt.Fprintf(svc.out, "[%s] %s\n", strings.ToUpper(string(n.Level)), n.Message)
}

// Recorder keeps notifications in memory, in order.
type Recorder struct {
	mu   sync.Mutex
	sent []core.Notification
}

var _ core.Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{sent: make([]core.Notification, 0)}
}

func (r *Recorder) Notify(n core.Notification) {
	r.mu.Lock()
	r.sent = append(r.sent, n)
	r.mu.Unlock()
}

// Notifications returns a copy of what was recorded so far.
func (r *Recorder) Notifications() []core.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Notification(nil), r.sent...)
}

// Last returns the latest notification; false when none was sent.
func (r *Recorder) Last() (core.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return core.Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.sent = r.sent[:0]
	r.mu.Unlock()
}
