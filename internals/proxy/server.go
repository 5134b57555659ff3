package proxy

import (
	"context"
	"net"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"goWebProxy/internals/cache"
	"goWebProxy/internals/queue"
)

// Tuning constants, matching the original deployment.
const (
	MaxCacheSize  = 1049000 // total cache bytes (~1MB)
	MaxObjectSize = 102400  // largest cacheable response (100KB)
	MaxLine       = 8192    // longest accepted request or header line
	NumWorkers    = 4
	QueueSize     = 16
)

// Server accepts client connections and hands them to a fixed pool of
// workers over a bounded queue.
type Server struct {
	cache *cache.Cache
	queue *queue.ConnQueue
	once  sync.Once
}

func NewServer(c *cache.Cache) *Server {
	return &Server{
		cache: c,
		queue: queue.NewConnQueue(QueueSize),
	}
}

// ListenAndServe binds addr with SO_REUSEADDR set and serves until the
// listener fails.
func (s *Server) ListenAndServe(addr string) error {
	lc := net.ListenConfig{Control: reuseAddr}
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	return s.Serve(ln)
}

// Serve starts the worker pool once, then accepts connections until the
// listener is closed. Accepting blocks in Enqueue while every queue slot is
// filled.
func (s *Server) Serve(ln net.Listener) error {
	s.once.Do(s.startWorkers)
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		s.queue.Enqueue(conn)
	}
}

func (s *Server) startWorkers() {
	for i := 0; i < NumWorkers; i++ {
		go s.worker()
	}
}

// worker serves queued connections for the life of the process. It owns each
// dequeued connection and closes it once handled.
func (s *Server) worker() {
	for {
		conn := s.queue.Dequeue()
		s.handle(conn)
		conn.Close()
	}
}

func reuseAddr(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
