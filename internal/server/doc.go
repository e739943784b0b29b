// Package server runs the worker's TCP accept loop: one listening socket,
// one handler goroutine per accepted connection, graceful shutdown on
// interrupt.
//
// # Overview
//
// Each connection carries exactly one request: the handler reads a single
// line, hands it to protocol.Parse and ledger.Engine.Execute, writes one
// response line, and closes the socket. There is no persistent session and
// no pipelining within a connection — this matches the original worker's
// "recv once, reply once, close" handler, not the long-lived multi-message
// style of a typical line protocol server.
//
// # Shutdown
//
// On SIGINT/SIGTERM the server stops accepting new connections and closes
// the listener; handler goroutines already in flight are allowed to finish
// (spec: "best-effort"), tracked with a sync.WaitGroup.
package server
