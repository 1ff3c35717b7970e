// Package bridge re-publishes derived player snapshots to downstream
// consumers over WebSocket, and forwards their commands back to the player.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/genricoloni/foxbridge/internal/domain"
	"github.com/genricoloni/foxbridge/internal/state"
	"github.com/genricoloni/foxbridge/internal/views"
	"go.uber.org/zap"
)

const _commandTimeout = 10 * time.Second

// commandFrame is what a downstream client sends to control the player
type commandFrame struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// ackFrame answers a command frame
type ackFrame struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Error   string `json:"error,omitempty"`
}

// Server serves /ws (snapshot stream + inbound commands) and /snapshot
// (one-shot JSON). Every cell notification produces one fresh snapshot
// pushed to all connected clients; slow clients drop frames rather than
// blocking the fan-out.
type Server struct {
	logger     *zap.Logger
	cell       *state.Cell
	controller domain.Controller
	addr       string

	httpServer *http.Server
	listener   net.Listener

	mu      sync.Mutex
	clients map[chan []byte]struct{}
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewServer creates a bridge server listening on addr
func NewServer(logger *zap.Logger, cell *state.Cell, controller domain.Controller, addr string) *Server {
	return &Server{
		logger:     logger,
		cell:       cell,
		controller: controller,
		addr:       addr,
		clients:    make(map[chan []byte]struct{}),
	}
}

// Addr returns the bound listen address, valid after Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Start binds the listener and launches the serve and fan-out goroutines
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("bridge listen failed: %w", err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.wsHandler)
	mux.HandleFunc("/snapshot", s.snapshotHandler)
	s.httpServer = &http.Server{Handler: mux}

	pumpCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.running = true

	// Subscribe before returning so no update between Start and the pump
	// goroutine's first select is lost.
	notify, unsubscribe := s.cell.Subscribe()
	s.wg.Add(1)
	go s.pump(pumpCtx, notify, unsubscribe)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Bridge server failed", zap.Error(err))
		}
	}()

	s.logger.Info("Bridge listening", zap.String("addr", listener.Addr().String()))
	return nil
}

// Stop shuts the server down and waits for the fan-out loop to exit
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	cancel := s.cancel
	srv := s.httpServer
	s.mu.Unlock()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Warn("Bridge shutdown incomplete", zap.Error(err))
	}
	cancel()
	s.wg.Wait()
	s.logger.Info("Bridge stopped")
	return nil
}

// pump turns cell notifications into snapshot frames for every client
func (s *Server) pump(ctx context.Context, notify <-chan struct{}, unsubscribe func()) {
	defer s.wg.Done()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case <-notify:
			frame, err := json.Marshal(views.Derive(s.cell.Get()))
			if err != nil {
				s.logger.Error("Failed to marshal snapshot", zap.Error(err))
				continue
			}
			s.broadcast(frame)
		}
	}
}

func (s *Server) broadcast(frame []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.clients {
		select {
		case ch <- frame:
		default:
			// Client is not keeping up; it will catch up on the next frame.
		}
	}
}

func (s *Server) snapshotHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(views.Derive(s.cell.Get())); err != nil {
		s.logger.Warn("Failed to write snapshot", zap.Error(err))
	}
}

func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // local bridge, consumers decide their origin
	})
	if err != nil {
		s.logger.Warn("WebSocket accept failed", zap.Error(err))
		return
	}
	defer conn.Close(websocket.StatusInternalError, "connection torn down")

	ctx := r.Context()

	send := make(chan []byte, 4)
	s.mu.Lock()
	s.clients[send] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, send)
		s.mu.Unlock()
	}()

	// New subscribers get the current snapshot immediately.
	initial, err := json.Marshal(views.Derive(s.cell.Get()))
	if err == nil {
		if err := conn.Write(ctx, websocket.MessageText, initial); err != nil {
			return
		}
	}

	s.logger.Info("Bridge client connected", zap.String("remote", r.RemoteAddr))

	// All outbound traffic (snapshots and acks) funnels through the send
	// channel so only this goroutine writes to the connection.
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case <-ctx.Done():
				return
			case frame := <-send:
				if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
					return
				}
			}
		}
	}()

readLoop:
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			break
		}
		s.handleCommand(ctx, send, data)

		select {
		case <-writerDone:
			break readLoop
		default:
		}
	}

	conn.Close(websocket.StatusNormalClosure, "")
	s.logger.Info("Bridge client disconnected", zap.String("remote", r.RemoteAddr))
}

// handleCommand forwards one inbound command frame to the controller and
// answers with an ack or error frame. Command failures stay per-client;
// they never tear down the fan-out.
func (s *Server) handleCommand(ctx context.Context, send chan<- []byte, data []byte) {
	var frame commandFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		s.writeAck(send, ackFrame{Type: "error", Error: "malformed command frame"})
		return
	}

	cmdCtx, cancel := context.WithTimeout(ctx, _commandTimeout)
	defer cancel()

	var err error
	switch frame.Command {
	case "play":
		err = s.controller.Play(cmdCtx)
	case "pause":
		err = s.controller.Pause(cmdCtx)
	case "next":
		err = s.controller.Next(cmdCtx)
	case "previous":
		err = s.controller.Previous(cmdCtx)
	case "next_play_mode":
		err = s.controller.NextPlayMode(cmdCtx)
	case "activate_intelligent_mode":
		err = s.controller.ActivateIntelligentMode(cmdCtx)
	case "set_play_mode":
		if len(frame.Args) != 1 {
			err = fmt.Errorf("set_play_mode takes exactly one argument")
		} else {
			err = s.controller.SetPlayMode(cmdCtx, domain.PlayMode(frame.Args[0]))
		}
	default:
		err = fmt.Errorf("unknown command %q", frame.Command)
	}

	ack := ackFrame{Type: "ack", Command: frame.Command}
	if err != nil {
		s.logger.Warn("Command forwarding failed",
			zap.String("command", frame.Command),
			zap.Error(err))
		ack.Type = "error"
		ack.Error = err.Error()
	}
	s.writeAck(send, ack)
}

func (s *Server) writeAck(send chan<- []byte, ack ackFrame) {
	data, err := json.Marshal(ack)
	if err != nil {
		return
	}
	select {
	case send <- data:
	default:
		s.logger.Debug("Dropping ack, client not keeping up")
	}
}
