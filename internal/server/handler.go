package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/example/go-gagspeech/internal/config"
	"github.com/example/go-gagspeech/internal/phoneme"
	"github.com/example/go-gagspeech/internal/render"
	"github.com/example/go-gagspeech/internal/text"
)

// Processor turns text into phonemized tokens.
type Processor interface {
	Process(s string) []text.Token
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes    int
	workers         int
	requestTimeout  time.Duration
	logger          *slog.Logger
	cacheSize       int
	defaultStyle    string
	defaultSeverity float64
}

func defaultOptions() options {
	return options{
		maxTextBytes:    4096,
		workers:         4,
		requestTimeout:  10 * time.Second,
		logger:          slog.Default(),
		cacheSize:       4096,
		defaultStyle:    config.DefaultStyle,
		defaultSeverity: 1,
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithWorkers sets the maximum number of requests processed concurrently.
// Zero or less disables throttling.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRequestTimeout sets the per-request processing deadline. Zero or less
// means no deadline beyond the client's own.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCacheSize sets how many processed texts are kept in the LRU cache.
// Zero disables caching.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithDefaults sets the style and severity used when a transform request
// omits them.
func WithDefaults(style string, severity float64) Option {
	return func(o *options) {
		o.defaultStyle = style
		o.defaultSeverity = severity
	}
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

type handler struct {
	proc  Processor
	opts  options
	sem   chan struct{} // semaphore for worker pool
	cache *lru.Cache[string, []text.Token]
	log   *slog.Logger
}

// NewHandler returns an http.Handler that serves /health, /styles and
// POST /tokenize, /phonemize and /transform.
func NewHandler(proc Processor, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		proc: proc,
		opts: opts,
		log:  opts.logger,
	}
	if opts.workers > 0 {
		h.sem = make(chan struct{}, opts.workers)
	}
	if opts.cacheSize > 0 {
		// lru.New only fails for a non-positive size.
		h.cache, _ = lru.New[string, []text.Token](opts.cacheSize)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/styles", h.handleStyles)
	mux.HandleFunc("/tokenize", h.handleTokenize)
	mux.HandleFunc("/phonemize", h.handlePhonemize)
	mux.HandleFunc("/transform", h.handleTransform)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

type styleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Default     bool   `json:"default,omitempty"`
}

func (h *handler) handleStyles(w http.ResponseWriter, _ *http.Request) {
	styles := render.Styles()
	out := make([]styleInfo, len(styles))
	for i, s := range styles {
		out[i] = styleInfo{
			Name:        s,
			Description: render.Description(s),
			Default:     s == h.opts.defaultStyle,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

type textRequest struct {
	Text string `json:"text"`
}

type transformRequest struct {
	Text     string   `json:"text"`
	Style    string   `json:"style"`
	Severity *float64 `json:"severity"`
	Seed     uint64   `json:"seed"` // 0 picks a random seed
}

type tokenizeResponse struct {
	Tokens []text.Token `json:"tokens"`
}

type wordPhonemes struct {
	Text     string            `json:"text"`
	Phonemes []phoneme.Phoneme `json:"phonemes"`
	IPA      string            `json:"ipa"`
}

type phonemizeResponse struct {
	Words []wordPhonemes `json:"words"`
}

type transformResponse struct {
	Text     string  `json:"text"`
	Style    string  `json:"style"`
	Severity float64 `json:"severity"`
}

func (h *handler) handleTokenize(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !h.decode(w, r, &req) || !h.validText(w, req.Text) {
		return
	}

	tokens := text.Tokenize(req.Text)
	if tokens == nil {
		tokens = []text.Token{}
	}
	h.log.InfoContext(r.Context(), "tokenize complete",
		slog.Int("text_len", len(req.Text)),
		slog.Int("tokens", len(tokens)),
	)
	writeJSON(w, http.StatusOK, tokenizeResponse{Tokens: tokens})
}

func (h *handler) handlePhonemize(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !h.decode(w, r, &req) || !h.validText(w, req.Text) {
		return
	}

	tokens, ok := h.process(w, r, req.Text, "phonemize")
	if !ok {
		return
	}

	words := make([]wordPhonemes, 0, text.WordCount(tokens))
	for _, t := range tokens {
		if t.Kind != text.Word {
			continue
		}
		words = append(words, wordPhonemes{
			Text:     t.Text,
			Phonemes: t.Phonemes,
			IPA:      phoneme.JoinIPA(t.Phonemes),
		})
	}
	writeJSON(w, http.StatusOK, phonemizeResponse{Words: words})
}

func (h *handler) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if !h.decode(w, r, &req) || !h.validText(w, req.Text) {
		return
	}

	style := h.opts.defaultStyle
	if req.Style != "" {
		var err error
		if style, err = config.NormalizeStyle(req.Style); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	severity := h.opts.defaultSeverity
	if req.Severity != nil {
		severity = *req.Severity
	}
	if severity < 0 || severity > 1 {
		writeError(w, http.StatusBadRequest, "severity must be between 0 and 1")
		return
	}

	rng := render.NewRand(req.Seed)
	renderer, err := render.New(style, rng)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tokens, ok := h.process(w, r, req.Text, "transform")
	if !ok {
		return
	}

	out := render.Transform(req.Text, tokens, renderer, severity, rng)
	h.log.DebugContext(r.Context(), "transform rendered",
		slog.String("style", style),
		slog.Float64("severity", severity),
		slog.Int("output_len", len(out)),
	)
	writeJSON(w, http.StatusOK, transformResponse{Text: out, Style: style, Severity: severity})
}

// decode enforces POST and decodes the JSON body into v, writing the error
// response itself when it fails.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func (h *handler) validText(w http.ResponseWriter, s string) bool {
	if _, err := text.Normalize(s); errors.Is(err, text.ErrEmptyText) {
		writeError(w, http.StatusBadRequest, "text field is required")
		return false
	}

	if len(s) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return false
	}
	return true
}

// process runs the Processor on s under a worker slot and the request
// deadline, consulting the LRU cache first. On failure it writes the error
// response and returns false.
func (h *handler) process(w http.ResponseWriter, r *http.Request, s, op string) ([]text.Token, bool) {
	start := time.Now()

	if h.cache != nil {
		if tokens, ok := h.cache.Get(s); ok {
			h.logProcessed(r.Context(), op, s, tokens, start, true)
			return tokens, true
		}
	}

	// Acquire a worker slot; honour context cancellation while waiting.
	if h.sem != nil {
		select {
		case h.sem <- struct{}{}:
		case <-r.Context().Done():
			writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for worker")
			return nil, false
		}
		defer func() { <-h.sem }()
	}

	ctx := r.Context()
	if h.opts.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.requestTimeout)
		defer cancel()
	}

	done := make(chan []text.Token, 1)
	go func() {
		done <- h.proc.Process(s)
	}()

	select {
	case tokens := <-done:
		if h.cache != nil {
			h.cache.Add(s, tokens)
		}
		h.logProcessed(r.Context(), op, s, tokens, start, false)
		return tokens, true
	case <-ctx.Done():
		h.log.WarnContext(r.Context(), op+" timed out",
			slog.Int("text_len", len(s)),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("error", ctx.Err().Error()),
		)
		writeError(w, http.StatusGatewayTimeout, op+" timed out")
		return nil, false
	}
}

func (h *handler) logProcessed(ctx context.Context, op, s string, tokens []text.Token, start time.Time, hit bool) {
	h.log.InfoContext(ctx, op+" complete",
		slog.Int("text_len", len(s)),
		slog.Int("tokens", len(tokens)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Bool("cache_hit", hit),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
