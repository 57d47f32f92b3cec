package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"cvlab/internal/api/middleware"
	"cvlab/internal/auth"
	"cvlab/internal/editor"
	"cvlab/internal/fonts"
	"cvlab/internal/metrics"
	"cvlab/internal/resume"
	"cvlab/internal/store"
	"cvlab/internal/tasks"
	"cvlab/internal/templates"
)

// EditorWsHandler runs the live editing channel. The first frame must be an
// auth frame; after that the client streams edit frames, and the server
// pushes save status plus any notifications published for the user.
type EditorWsHandler struct {
	store          store.Store
	redisClient    *redis.Client
	authService    *auth.Service
	asynqClient    TaskEnqueuer
	logger         *slog.Logger
	debounce       time.Duration
	upgrader       websocket.Upgrader
	allowedOrigins []string
}

func NewEditorWsHandler(
	documentStore store.Store,
	redisClient *redis.Client,
	authService *auth.Service,
	asynqClient TaskEnqueuer,
	logger *slog.Logger,
	debounce time.Duration,
	allowedOrigins []string,
) *EditorWsHandler {
	h := &EditorWsHandler{
		store:          documentStore,
		redisClient:    redisClient,
		authService:    authService,
		asynqClient:    asynqClient,
		logger:         logger,
		debounce:       debounce,
		allowedOrigins: allowedOrigins,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if len(h.allowedOrigins) == 0 {
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				return strings.EqualFold(u.Host, r.Host)
			}
			for _, allowed := range h.allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
	return h
}

type wsAuthMessage struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

type wsEditMessage struct {
	Type       string          `json:"type"`
	Title      string          `json:"title"`
	TemplateID string          `json:"template_id"`
	FontFamily string          `json:"font_family"`
	Content    json.RawMessage `json:"content"`
}

type wsSaveStatusMessage struct {
	Type        string     `json:"type"`
	IsDirty     bool       `json:"is_dirty"`
	IsSaving    bool       `json:"is_saving"`
	LastSavedAt *time.Time `json:"last_saved_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// wsWriter serializes concurrent writers onto a single websocket.
type wsWriter struct {
	conn *websocket.Conn
	ch   chan []byte
}

func newWsWriter(conn *websocket.Conn) *wsWriter {
	return &wsWriter{conn: conn, ch: make(chan []byte, 16)}
}

func (w *wsWriter) run(ctx context.Context, errCh chan<- error, cancel context.CancelFunc) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case payload := <-w.ch:
			if err := w.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				errCh <- fmt.Errorf("write message: %w", err)
				cancel()
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(5 * time.Second)
			if err := w.conn.WriteControl(websocket.PingMessage, []byte("ping"), deadline); err != nil {
				errCh <- fmt.Errorf("write ping: %w", err)
				cancel()
				return
			}
		}
	}
}

func (w *wsWriter) send(payload []byte) {
	select {
	case w.ch <- payload:
	default:
		// Slow client: drop status frames rather than block the save path.
	}
}

// HandleConnection upgrades, authenticates and runs the editor loops.
func (h *EditorWsHandler) HandleConnection(c *gin.Context) {
	resumeID, err := parseResumeID(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid resume id")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("upgrade websocket failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	log := h.logger.With(
		slog.String("client_ip", c.ClientIP()),
		slog.Uint64("resume_id", uint64(resumeID)),
	)

	userID, err := h.awaitAuth(ctx, conn)
	if err != nil {
		log.Warn("websocket authentication failed", slog.Any("error", err))
		return
	}
	log = log.With(slog.Uint64("user_id", uint64(userID)))

	doc, err := h.store.Get(ctx, resumeID, userID)
	if err != nil {
		// Not-found and not-owned close identically.
		writeClose(conn, websocket.ClosePolicyViolation, "resume not found")
		log.Info("editor session rejected", slog.Any("error", err))
		return
	}

	metrics.EditorSessionOpened()
	defer metrics.EditorSessionClosed()

	writer := newWsWriter(conn)
	errCh := make(chan error, 4)
	go writer.run(ctx, errCh, cancel)

	session := editor.NewSession()
	session.Load(doc.ID, doc.OwnerID, doc.Title, doc.TemplateID, doc.FontFamily, doc.Content)

	correlationID := middleware.GetCorrelationID(c)
	autosave := editor.NewAutosave(session, h.saveFunc(correlationID), h.debounce, func(state editor.SaveState) {
		writer.send(marshalSaveStatus(state))
	})

	go h.subscribeLoop(ctx, writer, userID, errCh, cancel, log)
	go h.readLoop(ctx, conn, session, errCh, cancel, log)

	writer.send(marshalSaveStatus(session.Snapshot().SaveState))
	log.Info("editor session opened")

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Info("editor session closed", slog.Any("error", err))
		}
		cancel()
	}

	// The connection is gone; flush whatever is still unsaved.
	flushCtx, flushCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer flushCancel()
	autosave.Close(flushCtx)
	log.Info("editor session flushed")
}

func (h *EditorWsHandler) awaitAuth(ctx context.Context, conn *websocket.Conn) (uint, error) {
	_ = conn.SetReadDeadline(time.Now().Add(10 * time.Second))
	defer func() { _ = conn.SetReadDeadline(time.Time{}) }()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	default:
	}

	_, message, err := conn.ReadMessage()
	if err != nil {
		return 0, fmt.Errorf("read auth frame: %w", err)
	}

	var authMsg wsAuthMessage
	if err := json.Unmarshal(message, &authMsg); err != nil {
		writeClose(conn, websocket.ClosePolicyViolation, "invalid auth payload")
		return 0, fmt.Errorf("decode auth payload: %w", err)
	}
	if authMsg.Type != "auth" || authMsg.Token == "" {
		writeClose(conn, websocket.ClosePolicyViolation, "auth required")
		return 0, fmt.Errorf("invalid auth message")
	}

	claims, err := h.authService.ValidateToken(authMsg.Token)
	if err != nil {
		writeClose(conn, websocket.ClosePolicyViolation, "unauthorized")
		return 0, fmt.Errorf("validate token: %w", err)
	}
	if claims.TokenType != "access" {
		writeClose(conn, websocket.ClosePolicyViolation, "access token required")
		return 0, fmt.Errorf("invalid token type: %s", claims.TokenType)
	}
	return claims.UserID, nil
}

func (h *EditorWsHandler) readLoop(
	ctx context.Context,
	conn *websocket.Conn,
	session *editor.Session,
	errCh chan<- error,
	cancel context.CancelFunc,
	log *slog.Logger,
) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		_, message, err := conn.ReadMessage()
		if err != nil {
			errCh <- fmt.Errorf("read message: %w", err)
			cancel()
			return
		}

		var msg wsEditMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Warn("drop malformed edit frame", slog.Any("error", err))
			continue
		}

		switch msg.Type {
		case "set_content":
			var content resume.Content
			if err := json.Unmarshal(msg.Content, &content); err != nil {
				log.Warn("drop malformed content payload", slog.Any("error", err))
				continue
			}
			session.SetContent(content)
		case "set_title":
			if strings.TrimSpace(msg.Title) != "" {
				session.SetTitle(msg.Title)
			}
		case "set_template":
			kind, _ := templates.ParseKind(msg.TemplateID)
			session.SetTemplateID(kind.ID())
		case "set_font":
			font, _ := fonts.Resolve(msg.FontFamily)
			session.SetFontFamily(font.ID)
		default:
			log.Warn("drop unknown frame type", slog.String("type", msg.Type))
		}
	}
}

func (h *EditorWsHandler) saveFunc(correlationID string) editor.SaveFunc {
	return func(ctx context.Context, snap editor.Snapshot) error {
		content := snap.Content
		err := h.store.Update(ctx, snap.ID, snap.OwnerID, store.Update{
			Title:      &snap.Title,
			TemplateID: &snap.TemplateID,
			FontFamily: &snap.FontFamily,
			Content:    &content,
		})
		metrics.AutosaveObserved(err)
		if err != nil {
			return err
		}

		if task, taskErr := tasks.NewPreviewGenerateTask(snap.ID, correlationID); taskErr == nil {
			if _, enqErr := h.asynqClient.Enqueue(task, asynq.MaxRetry(3)); enqErr != nil {
				h.logger.Warn("enqueue preview after autosave failed", slog.Any("error", enqErr))
			}
		}
		return nil
	}
}

func (h *EditorWsHandler) subscribeLoop(
	ctx context.Context,
	writer *wsWriter,
	userID uint,
	errCh chan<- error,
	cancel context.CancelFunc,
	log *slog.Logger,
) {
	channel := fmt.Sprintf("user_notify:%d", userID)
	pubsub := h.redisClient.Subscribe(ctx, channel)
	defer pubsub.Close()

	log.Info("subscribed to redis channel", slog.String("channel", channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				errCh <- fmt.Errorf("pubsub channel closed")
				cancel()
				return
			}
			writer.send([]byte(msg.Payload))
		}
	}
}

func marshalSaveStatus(state editor.SaveState) []byte {
	payload, _ := json.Marshal(wsSaveStatusMessage{
		Type:        "save_status",
		IsDirty:     state.IsDirty,
		IsSaving:    state.IsSaving,
		LastSavedAt: state.LastSavedAt,
		Error:       state.LastError,
	})
	return payload
}

func writeClose(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(5 * time.Second)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline)
}
