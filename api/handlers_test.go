package api

import (
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"net/http/httptest"
	"testing"

	"github.com/go-test/deep"

	"github.com/CristiGvl/corecheck/internal/hwerr"
	"github.com/CristiGvl/corecheck/internal/osinfo"
	"github.com/CristiGvl/corecheck/internal/processor"
	"github.com/CristiGvl/corecheck/internal/sysinfo"
)

type stubProcessor struct {
	identity *processor.Identity
	err      error
}

func (s *stubProcessor) GetIdentity(ctx context.Context) (*processor.Identity, error) {
	return s.identity, s.err
}
func (s *stubProcessor) Brand(ctx context.Context) (string, error) { return "", s.err }
func (s *stubProcessor) Signature(ctx context.Context) (processor.Signature, error) {
	return processor.Signature{}, s.err
}
func (s *stubProcessor) Vendor(ctx context.Context) (string, error) { return "", s.err }
func (s *stubProcessor) Count(ctx context.Context) (int, error)     { return 0, s.err }

type stubClock struct {
	mhz uint32
	err error
}

func (s *stubClock) MaxMHz(ctx context.Context) (uint32, error) { return s.mhz, s.err }

type stubOS struct{ id osinfo.Identity }

func (s *stubOS) Identify(ctx context.Context) osinfo.Identity { return s.id }

func newTestServer(t *testing.T, p *stubProcessor, c *stubClock) *Server {
	t.Helper()
	svc := sysinfo.NewWithReaders(p, c, &stubOS{id: osinfo.Known("Windows", 10, 0)}, 38)
	s, err := NewServer(svc, "test")
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return s
}

func get(t *testing.T, s *Server, target string) (int, map[string]any) {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest("GET", target, nil), -1)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("GET %s returned invalid JSON %q: %v", target, body, err)
	}
	return resp.StatusCode, decoded
}

func TestNewServerRequiresService(t *testing.T) {
	if _, err := NewServer(nil, "test"); err == nil {
		t.Fatalf("expected error for nil service")
	}
}

func TestProcessorEndpoint(t *testing.T) {
	id := &processor.Identity{
		Brand:        "AMD Ryzen 7 5800X 8-Core Processor",
		Signature:    &processor.Signature{Stepping: 0, Model: 1, Family: 0xF},
		Architecture: processor.ArchX8664,
		Cores:        16,
		Threads:      16,
	}
	s := newTestServer(t, &stubProcessor{identity: id}, &stubClock{mhz: 3800})

	status, body := get(t, s, "/api/processor")
	if status != 200 {
		t.Fatalf("status = %d, body %v", status, body)
	}
	want := map[string]any{
		"brand":        "AMD Ryzen 7 5800X 8-Core Processor",
		"signature":    map[string]any{"stepping": float64(0), "model": float64(1), "family": float64(15)},
		"architecture": "x86_64",
		"cores":        float64(16),
		"threads":      float64(16),
	}
	if diff := deep.Equal(body, want); diff != nil {
		t.Fatal(diff)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"unsupported", hwerr.Unsupported("brand", nil), 501, "unsupported"},
		{"unavailable", hwerr.Unavailable("max clock", fs.ErrNotExist), 503, "unavailable"},
		{"malformed", hwerr.Malformed("signature", nil), 500, "malformed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &stubProcessor{err: tt.err}, &stubClock{err: tt.err})

			for _, target := range []string{"/api/processor", "/api/clock"} {
				status, body := get(t, s, target)
				if status != tt.status {
					t.Errorf("GET %s status = %d, want %d", target, status, tt.status)
				}
				if body["kind"] != tt.kind {
					t.Errorf("GET %s kind = %v, want %s", target, body["kind"], tt.kind)
				}
			}
		})
	}
}

func TestClockEndpoint(t *testing.T) {
	s := newTestServer(t, &stubProcessor{}, &stubClock{mhz: 3800})

	status, body := get(t, s, "/api/clock")
	if status != 200 {
		t.Fatalf("status = %d", status)
	}
	if body["max_mhz"] != float64(3800) || body["base_mhz"] != float64(100) || body["estimated"] != true {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestBaseClockEndpoint(t *testing.T) {
	s := newTestServer(t, &stubProcessor{}, &stubClock{})

	tests := []struct {
		target string
		status int
		base   float64
	}{
		{"/api/clock/base?max=3800", 200, 100},
		{"/api/clock/base?max=0", 200, 0},
		{"/api/clock/base?max=4000&multiplier=40", 200, 100},
		{"/api/clock/base", 400, 0},
		{"/api/clock/base?max=fast", 400, 0},
		{"/api/clock/base?max=-1", 400, 0},
		{"/api/clock/base?max=3800&multiplier=0", 400, 0},
		{"/api/clock/base?max=3800&multiplier=x", 400, 0},
	}

	for _, tt := range tests {
		status, body := get(t, s, tt.target)
		if status != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.target, status, tt.status)
			continue
		}
		if status == 200 && body["base_mhz"] != tt.base {
			t.Errorf("GET %s base_mhz = %v, want %v", tt.target, body["base_mhz"], tt.base)
		}
	}
}

func TestOSAndReportEndpoints(t *testing.T) {
	s := newTestServer(t, &stubProcessor{err: hwerr.Unsupported("brand", nil)}, &stubClock{mhz: 3800})

	status, body := get(t, s, "/api/os")
	if status != 200 || body["label"] != "Windows 10.0" || body["known"] != true {
		t.Fatalf("GET /api/os = %d %v", status, body)
	}

	status, body = get(t, s, "/api/report")
	if status != 200 {
		t.Fatalf("GET /api/report status = %d", status)
	}
	if _, ok := body["processor"]; ok {
		t.Fatalf("failed processor query must not appear in report: %v", body)
	}
	procErr, ok := body["processor_error"].(map[string]any)
	if !ok || procErr["kind"] != "unsupported" {
		t.Fatalf("processor_error = %v", body["processor_error"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, &stubProcessor{}, &stubClock{})

	status, body := get(t, s, "/api/health")
	if status != 200 || body["status"] != "ok" || body["version"] != "test" {
		t.Fatalf("GET /api/health = %d %v", status, body)
	}
}
