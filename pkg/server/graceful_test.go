package server

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dhimarketer/newDirReact-sub000/pkg/logging"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := l.Addr().String()
	l.Close()
	return addr
}

func TestStartAndShutdown(t *testing.T) {
	addr := freeAddr(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	gs := NewGracefulServer(addr, mux, 5*time.Second, logging.NewNopLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- gs.Start() }()

	// wait for the listener to come up
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(fmt.Sprintf("http://%s/ping", addr))
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never became reachable: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("ping status = %d, want 200", resp.StatusCode)
	}

	if err := gs.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Start returned error after graceful shutdown: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after shutdown")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	gs := NewGracefulServer(freeAddr(t), http.NewServeMux(), time.Second, nil)

	if err := gs.Shutdown(); err != nil {
		t.Fatalf("first Shutdown: %v", err)
	}
	if err := gs.Shutdown(); err != nil {
		t.Fatalf("second Shutdown: %v", err)
	}

	select {
	case <-gs.Done():
	default:
		t.Error("Done channel should be closed after Shutdown")
	}
}

func TestZeroTimeoutGetsDefault(t *testing.T) {
	gs := NewGracefulServer(freeAddr(t), http.NewServeMux(), 0, nil)
	if gs.timeout != 15*time.Second {
		t.Errorf("timeout = %v, want default 15s", gs.timeout)
	}
}
