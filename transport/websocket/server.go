package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/rockpaperscissors-backend/internal/entity"
)

const (
	actionConnect    = "connect"
	actionMatchNew   = "match:new"
	actionMatchPlay  = "match:play"
	actionMatchState = "match:state"
	actionError      = "error"

	shutdownTimeout = 5 * time.Second
	readLimit       = 4096
)

var errNotConnected = errors.New("send connect first")

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)
	StartMatch(ctx context.Context, playerID string, bestOf int) (*entity.Match, *entity.Player, error)
	GetMatch(ctx context.Context, playerID string) (*entity.Match, error)
	PlayRound(ctx context.Context, playerID string, move entity.Move) (*entity.Match, error)
}

type handlerFunc func(ctx context.Context, session *session, msg *Message) error

type Server struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
	upgrader    websocket.Upgrader

	handlers map[string]handlerFunc
}

// session is the state of one client connection.
type session struct {
	conn     *websocket.Conn
	playerID string
}

func New(logger *slog.Logger, gameUseCase gameUseCase) *Server {
	server := &Server{
		logger:      logger.With("component", "websocket"),
		gameUseCase: gameUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionConnect:    server.handleConnect,
		actionMatchNew:   server.handleNewMatch,
		actionMatchPlay:  server.handlePlay,
		actionMatchState: server.handleState,
	}

	return server
}

// Handler - the /ws endpoint, exposed separately so it can be mounted in tests.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and stops it when ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(ctx),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWebSocket")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	conn.SetReadLimit(readLimit)

	// unblock ReadJSON on shutdown
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	log.Info("WebSocket connection established", "remote", r.RemoteAddr)

	if err = that.handleMessages(ctx, &session{conn: conn}); err != nil {
		log.Info("WebSocket connection closed", "reason", err)
	}
}

// handleMessages - processes messages until the client goes away.
func (that *Server) handleMessages(ctx context.Context, session *session) error {
	log := that.logger.With("method", "handleMessages")

	for {
		var message Message
		if err := session.conn.ReadJSON(&message); err != nil {
			if !isMalformed(err) {
				return err
			}

			if err = that.sendError(session, actionError, "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err := that.sendError(session, actionError, "unknown action: "+message.Action); err != nil {
				return err
			}
			continue
		}

		if message.Action != actionConnect && session.playerID == "" {
			if err := that.sendError(session, message.Action, errNotConnected.Error()); err != nil {
				return err
			}
			continue
		}

		if err := handler(ctx, session, &message); err != nil {
			return fmt.Errorf("failed to handle %s: %w", message.Action, err)
		}
	}
}

// isMalformed - reports decode failures that leave the connection usable.
func isMalformed(err error) bool {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.ErrUnexpectedEOF)
}
