package server

import (
	"bufio"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/JECT-02/torua-ledger/internal/ledger"
	"github.com/JECT-02/torua-ledger/internal/protocol"
)

// ReadTimeout bounds how long a handler will wait for a client to send its
// request line. The original worker has no such timeout; this is the
// "implementers may add a per-connection read timeout" allowance from
// spec §5, not a change to transaction semantics.
const ReadTimeout = 30 * time.Second

// Server accepts connections on a single listening socket and dispatches
// each one's request to a ledger.Engine.
type Server struct {
	Addr   string
	Engine *ledger.Engine
	Logger zerolog.Logger

	mu       sync.Mutex
	listener net.Listener
	wg       sync.WaitGroup
	closing  bool
}

// New constructs a Server bound to addr, executing requests against engine.
func New(addr string, engine *ledger.Engine, logger zerolog.Logger) *Server {
	return &Server{Addr: addr, Engine: engine, Logger: logger}
}

// ListenAndServe opens the listening socket (address reuse via net.Listen's
// default SO_REUSEADDR on most platforms, listen backlog handled by the Go
// runtime) and runs the accept loop until Shutdown closes the listener.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.Logger.Info().Str("addr", ln.Addr().String()).Msg("worker listening")

	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closing := s.closing
			s.mu.Unlock()
			if closing {
				s.wg.Wait()
				s.Logger.Info().Msg("worker stopped")
				return nil
			}
			s.Logger.Warn().Err(err).Msg("accept error")
			continue
		}
		s.wg.Add(1)
		go s.handle(conn)
	}
}

// Shutdown stops accepting new connections. In-flight handlers are allowed
// to finish; ListenAndServe returns once they have (best-effort, spec §4.6).
func (s *Server) Shutdown() {
	s.mu.Lock()
	s.closing = true
	ln := s.listener
	s.mu.Unlock()
	if ln != nil {
		ln.Close()
	}
}

// handle processes exactly one request on conn: read one line, execute it,
// write one response line, close. The original worker's handler never
// loops past its single recv/send pair, so neither does this one.
func (s *Server) handle(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	addr := conn.RemoteAddr().String()
	_ = conn.SetReadDeadline(time.Now().Add(ReadTimeout))

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		s.Logger.Warn().Err(err).Str("remote", addr).Msg("error reading request")
		return
	}

	var response string
	req, err := protocol.Parse(line)
	if err != nil {
		response = protocol.RenderMalformed()
	} else {
		body := s.Engine.Execute(req.TxID, req.QueryType, req.Params)
		response = protocol.RenderResult(req.TxID, body)
	}

	if _, err := conn.Write([]byte(response + "\n")); err != nil {
		s.Logger.Warn().Err(err).Str("remote", addr).Msg("error writing response")
	}
}
