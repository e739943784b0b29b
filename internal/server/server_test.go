package server

import (
	"bufio"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/JECT-02/torua-ledger/internal/ledger"
	"github.com/JECT-02/torua-ledger/internal/store"
)

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	nodeDir := store.Dir(root, 1)
	if err := os.MkdirAll(nodeDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := store.PartitionPath(nodeDir, store.Accounts, 1)
	if err := os.WriteFile(path, []byte("7,cliente_7,100.00,2024-01-01\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	engine, err := ledger.NewEngine(root, 1, 3, 1)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	srv := New("127.0.0.1:0", engine, zerolog.Nop())
	return srv, filepath.Join(root)
}

func startServer(t *testing.T, srv *Server) (net.Listener, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv.mu.Lock()
	srv.listener = ln
	srv.mu.Unlock()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			srv.wg.Add(1)
			go srv.handle(conn)
		}
	}()
	return ln, ln.Addr().String()
}

func TestServerExecutesRequest(t *testing.T) {
	srv, _ := newTestServer(t)
	ln, addr := startServer(t, srv)
	defer ln.Close()

	resp := sendLine(t, addr, "EXECUTE|t1|CONSULTAR_CUENTA|7\n")
	want := "RESULT|t1|SUCCESS|TABLE_DATA|ID Cuenta,ID Cliente,Saldo,Fecha Apertura|7,cliente_7,100.00,2024-01-01\n"
	if resp != want {
		t.Fatalf("got %q, want %q", resp, want)
	}
}

func TestServerRejectsMalformedRequest(t *testing.T) {
	srv, _ := newTestServer(t)
	ln, addr := startServer(t, srv)
	defer ln.Close()

	resp := sendLine(t, addr, "BOGUS REQUEST\n")
	if resp != "ERROR|Formato inválido\n" {
		t.Fatalf("unexpected response: %q", resp)
	}
}

func TestServerClosesConnectionAfterOneRequest(t *testing.T) {
	srv, _ := newTestServer(t)
	ln, addr := startServer(t, srv)
	defer ln.Close()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.Write([]byte("EXECUTE|t1|CONSULTAR_CUENTA|7\n"))
	reader := bufio.NewReader(conn)
	if _, err := reader.ReadString('\n'); err != nil {
		t.Fatalf("first read: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(time.Second))
	buf := make([]byte, 1)
	if _, err := conn.Read(buf); err == nil {
		t.Fatalf("expected connection to be closed after one request")
	}
}

func sendLine(t *testing.T, addr, line string) string {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(line)); err != nil {
		t.Fatalf("write: %v", err)
	}
	buf := make([]byte, 4096)
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(buf[:n])
}
