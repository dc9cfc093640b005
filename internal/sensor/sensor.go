// Package sensor serves a small web page that turns a phone into a tilt
// controller. Readings arrive over a websocket and land in an input.MotionSlot.
package sensor

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tomz197/shoot/internal/input"
)

//go:embed controller.html
var controllerPage []byte

const (
	readLimit    = 1 << 20
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingPeriod   = 25 * time.Second
)

// Bridge feeds motion readings from websocket clients into a slot.
type Bridge struct {
	slot     *input.MotionSlot
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewBridge creates a bridge writing into slot. A nil logger discards output.
func NewBridge(slot *input.MotionSlot, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bridge{
		slot:   slot,
		logger: logger,
		upgrader: websocket.Upgrader{
			// The controller page is served from the same host but phones
			// often reach it through a LAN address or tunnel.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the HTTP routes: the controller page at / and the socket at /ws.
func (b *Bridge) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", b.servePage)
	mux.HandleFunc("/ws", b.serveWS)
	return mux
}

func (b *Bridge) servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(controllerPage)
}

func (b *Bridge) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		b.logger.Warn("upgrade", "err", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	logger := b.logger.With("conn", uuid.NewString(), "remote", r.RemoteAddr)
	logger.Info("controller connected")
	defer logger.Info("controller disconnected")

	if hello, err := Encode(MsgHello, Hello{V: 1}); err == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
			return
		}
	}

	done := make(chan struct{})
	defer close(done)
	go b.pingLoop(conn, done)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("read", "err", err)
			}
			return
		}
		if err := b.handleMessage(msg); err != nil {
			logger.Debug("dropped message", "err", err)
		}
		// Keep the deadline moving while readings flow.
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	}
}

// pingLoop writes pings until done is closed or a write fails. It is the
// only writer after the hello frame.
func (b *Bridge) pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// handleMessage decodes one frame and stores motion readings.
func (b *Bridge) handleMessage(msg []byte) error {
	env, err := DecodeEnvelope(msg)
	if err != nil {
		return err
	}
	switch env.T {
	case MsgMotion:
		m, err := DecodePayload[Motion](env)
		if err != nil {
			return err
		}
		if !b.slot.Store(input.Sample{GravityZ: m.Z}) {
			return fmt.Errorf("non-finite reading: %w", ErrBadMessage)
		}
		return nil
	default:
		return fmt.Errorf("unknown type %q: %w", env.T, ErrBadMessage)
	}
}

// ListenAndServe serves h on addr until ctx is cancelled.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("motion bridge: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("motion bridge shutdown: %w", err)
		}
		return nil
	}
}
