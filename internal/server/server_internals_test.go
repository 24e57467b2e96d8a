package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/go-gagspeech/internal/config"
	"github.com/example/go-gagspeech/internal/testutil"
)

// --- New & WithShutdownTimeout ---

func TestNew_DefaultShutdownTimeout(t *testing.T) {
	cfg := config.DefaultConfig()

	s := New(cfg, nil)
	if s == nil {
		t.Fatal("New() returned nil")
	}

	if s.shutdownTimeout != 30*time.Second {
		t.Errorf("shutdownTimeout = %v; want 30s", s.shutdownTimeout)
	}
}

func TestNew_ShutdownTimeoutFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.ShutdownTimeout = 3

	if s := New(cfg, nil); s.shutdownTimeout != 3*time.Second {
		t.Errorf("shutdownTimeout = %v; want 3s", s.shutdownTimeout)
	}
}

func TestWithShutdownTimeout_Chaining(t *testing.T) {
	s := New(config.DefaultConfig(), nil)
	returned := s.WithShutdownTimeout(10 * time.Second)
	// Must return the same *Server for chaining.
	if returned != s {
		t.Error("WithShutdownTimeout should return the same *Server")
	}

	if s.shutdownTimeout != 10*time.Second {
		t.Errorf("shutdownTimeout = %v; want 10s", s.shutdownTimeout)
	}
}

func TestHandlerOptions_FromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Workers = 7
	cfg.Server.MaxTextBytes = 99
	cfg.Server.RequestTimeout = 2
	cfg.Server.CacheSize = 0
	cfg.Gag.Style = "cat"
	cfg.Gag.Severity = 0.5

	opts := defaultOptions()
	for _, fn := range New(cfg, nil).handlerOptions() {
		fn(&opts)
	}

	if opts.workers != 7 || opts.maxTextBytes != 99 || opts.cacheSize != 0 {
		t.Errorf("limits = %d/%d/%d", opts.workers, opts.maxTextBytes, opts.cacheSize)
	}

	if opts.requestTimeout != 2*time.Second {
		t.Errorf("requestTimeout = %v; want 2s", opts.requestTimeout)
	}

	if opts.defaultStyle != "cat" || opts.defaultSeverity != 0.5 {
		t.Errorf("defaults = %q/%v", opts.defaultStyle, opts.defaultSeverity)
	}
}

// --- NewProcessor ---

func TestNewProcessor_EmbeddedDictionary(t *testing.T) {
	p, err := NewProcessor("")
	if err != nil {
		t.Fatalf("NewProcessor(\"\") error = %v", err)
	}

	tokens := p.Process("cat")
	if len(tokens) != 1 || len(tokens[0].Phonemes) != 3 {
		t.Errorf("Process(cat) = %+v", tokens)
	}
}

func TestNewProcessor_MissingFile(t *testing.T) {
	if _, err := NewProcessor(filepath.Join(t.TempDir(), "missing.dict")); err == nil {
		t.Error("NewProcessor() = nil; want error for missing dictionary")
	}
}

// --- ProbeHTTP ---

func TestProbeHTTP_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	// ProbeHTTP uses "http://" prefix + addr, so strip the scheme.
	addr := srv.Listener.Addr().String()

	err := ProbeHTTP(addr)
	if err != nil {
		t.Errorf("ProbeHTTP(%q) = %v; want nil", addr, err)
	}
}

func TestProbeHTTP_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := ProbeHTTP(srv.Listener.Addr().String())
	if err == nil {
		t.Error("ProbeHTTP() = nil; want error for non-200 response")
	}
}

func TestProbeHTTP_ConnectionRefused(t *testing.T) {
	err := ProbeHTTP("127.0.0.1:1")
	if err == nil {
		t.Error("ProbeHTTP() = nil; want error for unreachable host")
	}
}

// --- Start ---

func TestStart_InvalidStyle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Gag.Style = "bogus"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New(cfg, nil).Start(ctx); err == nil {
		t.Error("Start() = nil; want error for unknown style")
	}
}

func TestStart_BadDictionary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Paths.DictionaryPath = testutil.WriteVocabulary(t, ";;; nothing here\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := New(cfg, nil).Start(ctx); err == nil {
		t.Error("Start() = nil; want error for empty dictionary")
	}
}

func TestStart_LifecycleHealthAndShutdown(t *testing.T) {
	// Find an available port.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	addr := ln.Addr().String()
	ln.Close() // free it for the server

	cfg := config.DefaultConfig()
	cfg.Server.ListenAddr = addr

	s := New(cfg, nil).WithShutdownTimeout(2 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		errCh <- s.Start(ctx)
	}()

	client := &http.Client{Timeout: 2 * time.Second}

	var resp *http.Response

	for range 50 {
		resp, err = client.Get(fmt.Sprintf("http://%s/health", addr))
		if err == nil {
			break
		}

		time.Sleep(20 * time.Millisecond)
	}

	if err != nil {
		t.Fatalf("server never became ready: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/health status = %d; want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode /health: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("status = %q; want ok", body["status"])
	}

	if err := ProbeHTTP(addr); err != nil {
		t.Errorf("ProbeHTTP() = %v; want nil", err)
	}

	// Graceful shutdown.
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Start() returned error on shutdown: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return within 5s of context cancel")
	}
}

// --- Functional options ---

func TestOptions_Setters(t *testing.T) {
	opts := defaultOptions()
	WithMaxTextBytes(1024)(&opts)
	WithWorkers(8)(&opts)
	WithRequestTimeout(90 * time.Second)(&opts)
	WithCacheSize(12)(&opts)
	WithDefaults("uwu", 0.3)(&opts)

	if opts.maxTextBytes != 1024 {
		t.Errorf("maxTextBytes = %d; want 1024", opts.maxTextBytes)
	}

	if opts.workers != 8 {
		t.Errorf("workers = %d; want 8", opts.workers)
	}

	if opts.requestTimeout != 90*time.Second {
		t.Errorf("requestTimeout = %v; want 90s", opts.requestTimeout)
	}

	if opts.cacheSize != 12 {
		t.Errorf("cacheSize = %d; want 12", opts.cacheSize)
	}

	if opts.defaultStyle != "uwu" || opts.defaultSeverity != 0.3 {
		t.Errorf("defaults = %q/%v", opts.defaultStyle, opts.defaultSeverity)
	}
}
