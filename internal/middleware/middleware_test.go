package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"jeremiassnts.dev/internal/i18n"
)

func newTestLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	return log, buf
}

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected generated id echoed in header, got %q / %q", seen, rr.Header().Get(RequestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "abc-123" {
		t.Errorf("expected caller id to be reused, got %s", seen)
	}
}

func TestLogger(t *testing.T) {
	log, buf := newTestLogger()
	h := RequestID(Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/en/missing", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected a json log line: %v", err)
	}
	if entry["level"] != "warning" {
		t.Errorf("expected warning level for 404, got %v", entry["level"])
	}
	if entry["status_code"] != float64(http.StatusNotFound) {
		t.Errorf("unexpected status_code %v", entry["status_code"])
	}
	if entry["uri"] != "/en/missing" {
		t.Errorf("unexpected uri %v", entry["uri"])
	}
	if entry["request_id"] == "" {
		t.Error("expected request id field")
	}
}

func TestRecovery(t *testing.T) {
	log, buf := newTestLogger()
	h := Recovery(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("boom")) {
		t.Error("expected panic value in the log")
	}
}

func TestRateLimiter(t *testing.T) {
	l := NewRateLimiter(1, 2, time.Minute)
	h := l.Handler(http.HandlerFunc(ok))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes[i] = rr.Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected burst of 2 then 429, got %v", codes)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("expected other clients unaffected, got %d", rr.Code)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	l := NewRateLimiter(0, 0, time.Minute)
	for i := 0; i < 10; i++ {
		if !l.Allow("x") {
			t.Fatal("expected unlimited")
		}
	}
}

func TestPrefs(t *testing.T) {
	var theme string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		theme = ThemeFrom(r)
	}))

	tests := []struct {
		name   string
		url    string
		cookie string
		want   string
		sets   bool
	}{
		{"default", "/en", "", "", false},
		{"cookie", "/en", "dark", "dark", false},
		{"query wins", "/en?theme=light", "dark", "light", true},
		{"unknown value", "/en?theme=neon", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "theme", Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if theme != tt.want {
				t.Errorf("expected %q, got %q", tt.want, theme)
			}
			if got := rr.Header().Get("Set-Cookie") != ""; got != tt.sets {
				t.Errorf("expected cookie set = %v", tt.sets)
			}
		})
	}
}

func TestLocale(t *testing.T) {
	resolver := i18n.NewResolver([]i18n.Locale{"en", "pt"}, "en")
	var loc i18n.Locale
	h := Locale(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc, _ = i18n.FromContext(r.Context())
	}))

	tests := []struct {
		path, accept string
		want         i18n.Locale
	}{
		{"/pt/projects/tatame", "en-US", "pt"},
		{"/en", "pt-BR", "en"},
		{"/missing", "pt-BR,pt;q=0.9", "pt"},
		{"/missing", "", "en"},
		{"/fr/projects", "de", "en"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.accept != "" {
			req.Header.Set("Accept-Language", tt.accept)
		}
		h.ServeHTTP(httptest.NewRecorder(), req)
		if loc != tt.want {
			t.Errorf("%s (%s): expected %s, got %s", tt.path, tt.accept, tt.want, loc)
		}
	}
}
