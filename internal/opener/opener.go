// Package opener delivers profile change notifications to the process or
// page that launched the profile manager.
package opener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/coder/websocket"

	"github.com/ruminaider/profilectl/internal/profiles"
)

// TypeProfileUpdated is the message type listening pages match on.
const TypeProfileUpdated = "PROFILE_UPDATED"

// StdoutTarget selects the WriterNotifier on standard output.
const StdoutTarget = "-"

// ErrOriginNotAllowed is returned when the opener URL is outside the
// configured allow-list.
var ErrOriginNotAllowed = errors.New("opener origin not allowed")

// Message is the envelope sent to the opener.
type Message struct {
	Type string           `json:"type"`
	Data profiles.Profile `json:"data"`
}

// ProfileUpdated builds the update notification for p.
func ProfileUpdated(p profiles.Profile) Message {
	return Message{Type: TypeProfileUpdated, Data: p}
}

// Notifier sends a message to the opener.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// New picks a notifier for target. An empty target returns nil, meaning no
// opener exists. StdoutTarget writes JSON lines to stdout; anything else is
// treated as a WebSocket URL.
func New(target, origin string, allowedOrigins []string, stdout io.Writer) (Notifier, error) {
	target = strings.TrimSpace(target)
	switch target {
	case "":
		return nil, nil
	case StdoutTarget:
		return &WriterNotifier{W: stdout}, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("parsing opener url: %w", err)
	}
	switch u.Scheme {
	case "ws", "wss", "http", "https":
	default:
		return nil, fmt.Errorf("parsing opener url: unsupported scheme %q", u.Scheme)
	}

	return &WebSocketNotifier{
		URL:            target,
		Origin:         origin,
		AllowedOrigins: allowedOrigins,
	}, nil
}

// WriterNotifier writes each message as one JSON line.
type WriterNotifier struct {
	W  io.Writer
	mu sync.Mutex
}

func (n *WriterNotifier) Notify(_ context.Context, msg Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := json.NewEncoder(n.W).Encode(msg); err != nil {
		return fmt.Errorf("writing opener message: %w", err)
	}
	return nil
}

// WebSocketNotifier dials the opener for each message and sends it as a
// single text frame.
type WebSocketNotifier struct {
	URL            string
	Origin         string
	AllowedOrigins []string
	HTTPClient     *http.Client
}

func (n *WebSocketNotifier) Notify(ctx context.Context, msg Message) error {
	if err := CheckOrigin(n.URL, n.AllowedOrigins); err != nil {
		return err
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding opener message: %w", err)
	}

	header := http.Header{}
	if n.Origin != "" {
		header.Set("Origin", n.Origin)
	}

	conn, _, err := websocket.Dial(ctx, n.URL, &websocket.DialOptions{
		HTTPClient: n.HTTPClient,
		HTTPHeader: header,
	})
	if err != nil {
		return fmt.Errorf("dial opener: %w", err)
	}
	defer conn.CloseNow()

	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("writing opener message: %w", err)
	}
	_ = conn.Close(websocket.StatusNormalClosure, "delivered")
	return nil
}

// CheckOrigin reports ErrOriginNotAllowed when rawURL's origin is not in
// allowed. An empty list or a "*" entry allows every origin.
func CheckOrigin(rawURL string, allowed []string) error {
	if len(allowed) == 0 {
		return nil
	}
	origin, err := originOf(rawURL)
	if err != nil {
		return err
	}
	for _, a := range allowed {
		a = strings.TrimRight(strings.TrimSpace(a), "/")
		if a == "*" || strings.EqualFold(a, origin) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrOriginNotAllowed, origin)
}

func originOf(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing opener url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("parsing opener url: %q has no origin", rawURL)
	}
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host), nil
}
