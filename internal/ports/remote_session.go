package ports

import (
	"context"
	"time"

	"github.com/bnema/devicefarm-e2e/internal/domain"
)

// RemoteSession is one live automation session on the device farm.
// Implementations should wrap connection loss in domain.ErrSessionDisconnected
// and missing elements in domain.ErrNoSuchElement.
type RemoteSession interface {
	SessionID() domain.SessionID
	ExecuteScript(ctx context.Context, script string) error
	PullFile(ctx context.Context, path string) (string, error)
	SetImplicitWait(ctx context.Context, timeout time.Duration) error
	UpdateSettings(ctx context.Context, settings map[string]any) error
	SetNetworkConnection(ctx context.Context, connection domain.ConnectionType) error
	LogEvent(ctx context.Context, vendor string, event string) error
	FindElementText(ctx context.Context, by string, value string) (string, error)
	Quit(ctx context.Context) error
}

// SessionFactory opens sessions against a hub. Errors wrapping
// domain.ErrLaunchFailed abort the whole pool; any other error only costs
// that one session.
type SessionFactory interface {
	Create(ctx context.Context, caps domain.Capabilities) (RemoteSession, error)
}
