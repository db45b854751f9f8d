package server

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"eco_upcycle_generator/config"
	"eco_upcycle_generator/generator"
	"eco_upcycle_generator/i18n"
	"eco_upcycle_generator/render"
)

type Server struct {
	agent *generator.Agent
	cfg   config.Config
	store *sessionStore
	log   zerolog.Logger
}

func New(agent *generator.Agent, cfg config.Config, logger zerolog.Logger) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Server{
		agent: agent,
		cfg:   cfg,
		store: newStore(cfg.SessionTTL.Std()),
		log:   logger,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /credential", s.handleCredentialForm)
	mux.HandleFunc("POST /generate", s.handleGenerateForm)
	mux.HandleFunc("GET /api/session", s.handleSessionAPI)
	mux.HandleFunc("POST /api/credential", s.handleCredentialAPI)
	mux.HandleFunc("POST /api/generate", s.handleGenerateAPI)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return logMiddleware(s.log, mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ServerAddr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      s.cfg.RequestTimeout.Std() + 15*time.Second,
	}

	go s.store.run(ctx, time.Minute, func(n int) {
		s.log.Debug().Int("evicted", n).Int("active", s.store.len()).Msg("sessions swept")
	})

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	s.log.Info().Str("addr", s.cfg.ServerAddr).Msg("web server online")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// --- Handlers ---

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	tag, p := s.locale(w, r)
	sess := s.session(w, r)
	sess.mu.Lock()
	d := s.pageData(tag, p, sess.state)
	sess.mu.Unlock()
	s.renderHTML(w, r, render.Page(d))
}

func (s *Server) handleCredentialForm(w http.ResponseWriter, r *http.Request) {
	tag, p := s.locale(w, r)
	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	err := s.configure(r.Context(), sess, r.FormValue("api_key"))
	notice := credentialNotice(p, err)

	d := s.pageData(tag, p, sess.state)
	d.KeyNotice = &notice
	if render.IsHTMXRequest(r) {
		s.renderHTML(w, r, render.Sidebar(d))
		return
	}
	s.renderHTML(w, r, render.Page(d))
}

func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	tag, p := s.locale(w, r)
	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	d := s.pageData(tag, p, sess.state)
	d.Item = strings.TrimSpace(r.FormValue("item"))

	text, err := s.generate(r.Context(), sess, d.Item)
	if err != nil {
		notice := generateNotice(p, err)
		d.Notice = &notice
	} else {
		d.Result = s.resultHTML(text)
	}

	if render.IsHTMXRequest(r) {
		s.renderHTML(w, r, render.Result(d))
		return
	}
	s.renderHTML(w, r, render.Page(d))
}

type credentialReq struct {
	APIKey string `json:"api_key"`
}

type generateReq struct {
	Item string `json:"item"`
}

type sessionResp struct {
	CredentialConfigured bool `json:"credential_configured"`
}

type generateResp struct {
	Text string `json:"text"`
}

type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResp struct {
	Error apiError `json:"error"`
}

func (s *Server) handleSessionAPI(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.mu.Lock()
	configured := sess.state.CredentialConfigured
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, sessionResp{CredentialConfigured: configured})
}

func (s *Server) handleCredentialAPI(w http.ResponseWriter, r *http.Request) {
	_, p := s.locale(w, r)
	var req credentialReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: apiError{Kind: "bad_request", Message: err.Error()}})
		return
	}
	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.configure(r.Context(), sess, req.APIKey); err != nil {
		writeAPIError(w, err, credentialNotice(p, err))
		return
	}
	writeJSON(w, http.StatusOK, sessionResp{CredentialConfigured: sess.state.CredentialConfigured})
}

func (s *Server) handleGenerateAPI(w http.ResponseWriter, r *http.Request) {
	_, p := s.locale(w, r)
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: apiError{Kind: "bad_request", Message: err.Error()}})
		return
	}
	sess := s.session(w, r)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	text, err := s.generate(r.Context(), sess, req.Item)
	if err != nil {
		writeAPIError(w, err, generateNotice(p, err))
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Text: text})
}

// --- Operations ---

// configure runs the credential configurator and stores the resulting state.
// Callers hold sess.mu.
func (s *Server) configure(ctx context.Context, sess *session, apiKey string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout.Std())
	defer cancel()

	st, err := s.agent.Configure(ctx, sess.state, apiKey)
	sess.state = st
	switch {
	case err == nil:
		s.log.Info().Str("session", sess.id).Msg("api key configured")
	case errors.Is(err, generator.ErrEmptyCredential):
	default:
		s.log.Warn().Err(err).Str("session", sess.id).Msg("api key rejected")
	}
	return err
}

// generate runs the generation invoker. An empty item never reaches the agent.
// Callers hold sess.mu.
func (s *Server) generate(ctx context.Context, sess *session, item string) (string, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return "", generator.ErrEmptyItem
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout.Std())
	defer cancel()

	start := time.Now()
	text, err := s.agent.Generate(ctx, sess.state, item)
	if err != nil {
		var genErr *generator.GenerationError
		if errors.As(err, &genErr) {
			s.log.Warn().Err(err).Str("session", sess.id).Dur("took", time.Since(start)).Msg("generation failed")
		}
		return "", err
	}
	s.log.Info().Str("session", sess.id).Int("bytes", len(text)).Dur("took", time.Since(start)).Msg("ideas generated")
	return text, nil
}

// --- Helpers ---

func (s *Server) locale(w http.ResponseWriter, r *http.Request) (language.Tag, *message.Printer) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return tag, i18n.Printer(tag)
}

func (s *Server) pageData(tag language.Tag, p *message.Printer, st generator.State) render.PageData {
	return render.PageData{
		Lang:       tag.String(),
		T:          p,
		Configured: st.CredentialConfigured,
	}
}

// resultHTML renders the reply as Markdown, falling back to escaped text.
func (s *Server) resultHTML(text string) template.HTML {
	out, err := render.MarkdownToHTML(text)
	if err != nil {
		s.log.Warn().Err(err).Msg("markdown render failed")
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
	}
	return out
}

func (s *Server) renderHTML(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("render failed")
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, err error, notice render.Notice) {
	kind, code := errorKind(err)
	writeJSON(w, code, errorResp{Error: apiError{Kind: kind, Message: notice.Text}})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
