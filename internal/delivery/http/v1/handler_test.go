package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"soa-bango-backend/config"
	v1 "soa-bango-backend/internal/delivery/http/v1"
	"soa-bango-backend/internal/domain"
	"soa-bango-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// ---------------------------------------------------------------------------
// Stub usecases
// ---------------------------------------------------------------------------

type stubContactUC struct {
	fn    func(ctx context.Context, req *domain.ContactRequest) error
	calls int
}

func (s *stubContactUC) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	s.calls++
	if s.fn != nil {
		return s.fn(ctx, req)
	}
	return nil
}

type stubOrderUC struct {
	fn       func(ctx context.Context, req *domain.OrderRequest) error
	captured *domain.OrderRequest
	calls    int
}

func (s *stubOrderUC) SubmitOrder(ctx context.Context, req *domain.OrderRequest) error {
	s.calls++
	s.captured = req
	if s.fn != nil {
		return s.fn(ctx, req)
	}
	return nil
}

type stubNewsletterUC struct {
	calls int
}

func (s *stubNewsletterUC) Subscribe(ctx context.Context, req *domain.NewsletterRequest) error {
	s.calls++
	return nil
}

type deps struct {
	contact    *stubContactUC
	order      *stubOrderUC
	newsletter *stubNewsletterUC
	router     *gin.Engine
}

func newTestRouter(t *testing.T) *deps {
	t.Helper()
	d := &deps{
		contact:    &stubContactUC{},
		order:      &stubOrderUC{},
		newsletter: &stubNewsletterUC{},
	}
	d.router = v1.NewRouter(v1.RouterDeps{
		ContactUC:    d.contact,
		OrderUC:      d.order,
		NewsletterUC: d.newsletter,
		Config: &config.Config{
			FrontendURL:        "http://localhost:3000",
			StaticDir:          t.TempDir(),
			RateLimitPerMinute: 6000, // effectively off for handler tests
			RateLimitBurst:     100,
		},
	})
	return d
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e), "body: %s", rec.Body.String())
	return e
}

// ---------------------------------------------------------------------------
// POST /api/contact
// ---------------------------------------------------------------------------

func TestContactMissingFieldReturns400(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodPost, "/api/contact",
		`{"name":"Alice","email":"alice@example.com"}`) // no message

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.False(t, e.Success)
	assert.NotEmpty(t, e.Message)
	assert.Equal(t, 0, d.contact.calls, "usecase must not run on invalid input")
}

func TestContactInvalidEmailReturns400(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodPost, "/api/contact",
		`{"name":"Alice","email":"not-an-email","message":"Bonjour"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.False(t, e.Success)
	assert.Equal(t, "Adresse email invalide", e.Message)
	assert.Equal(t, 0, d.contact.calls)
}

func TestContactSuccess(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodPost, "/api/contact",
		`{"name":"Alice","email":"alice@example.com","phone":"0340000000","message":"Bonjour"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.True(t, e.Success)
	assert.NotEmpty(t, e.Message)
	assert.Equal(t, 1, d.contact.calls)
}

func TestContactDispatchFailureReturns500(t *testing.T) {
	d := newTestRouter(t)
	d.contact.fn = func(ctx context.Context, req *domain.ContactRequest) error {
		return apperror.Internal("Une erreur s'est produite. Veuillez réessayer plus tard.", assert.AnError)
	}

	rec := doJSON(d.router, http.MethodPost, "/api/contact",
		`{"name":"Alice","email":"alice@example.com","message":"Bonjour"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.False(t, e.Success)
	// Generic copy only; no transport detail leaks
	assert.NotContains(t, e.Message, assert.AnError.Error())
}

// ---------------------------------------------------------------------------
// POST /api/order
// ---------------------------------------------------------------------------

func TestOrderConcreteScenario(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodPost, "/api/order",
		`{"productName":"Huile de coco","productPrice":15000,"customerName":"Rina",
		  "customerEmail":"rina@example.com","customerPhone":"0340000000","quantity":3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.True(t, e.Success)
	assert.NotEmpty(t, e.Message)

	require.NotNil(t, d.order.captured)
	assert.Equal(t, 3, d.order.captured.NormalizedQuantity())
	assert.Equal(t, 45000.0, d.order.captured.TotalPrice())
}

func TestOrderQuantityOmittedDefaultsToOne(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodPost, "/api/order",
		`{"productName":"Savon artisanal","productPrice":8000,"customerName":"Rina",
		  "customerEmail":"rina@example.com","customerPhone":"0340000000"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, d.order.captured)
	assert.Equal(t, 1, d.order.captured.NormalizedQuantity())
	assert.Equal(t, 8000.0, d.order.captured.TotalPrice())
}

func TestOrderMissingFieldReturns400(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodPost, "/api/order",
		`{"productName":"Huile de coco","productPrice":15000}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
	assert.Equal(t, 0, d.order.calls)
}

// ---------------------------------------------------------------------------
// POST /api/newsletter
// ---------------------------------------------------------------------------

func TestNewsletterEmailRequired(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodPost, "/api/newsletter", `{"name":"Rina"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decodeEnvelope(t, rec)
	assert.False(t, e.Success)
	assert.Equal(t, "Email requis", e.Message)
	assert.Equal(t, 0, d.newsletter.calls)
}

func TestNewsletterSuccess(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodPost, "/api/newsletter",
		`{"email":"fan@example.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeEnvelope(t, rec).Success)
	assert.Equal(t, 1, d.newsletter.calls)
}

// ---------------------------------------------------------------------------
// GET /api/health
// ---------------------------------------------------------------------------

func TestHealthAlwaysOK(t *testing.T) {
	d := newTestRouter(t)

	rec := doJSON(d.router, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var h v1.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &h))
	assert.Equal(t, "ok", h.Status)
	assert.NotEmpty(t, h.Message)

	ts, err := time.Parse(time.RFC3339, h.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

// ---------------------------------------------------------------------------
// Static fallback
// ---------------------------------------------------------------------------

func TestStaticFallback(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"),
		[]byte("<html>soa bango</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "styles.css"),
		[]byte("body{}"), 0o644))

	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    &stubContactUC{},
		OrderUC:      &stubOrderUC{},
		NewsletterUC: &stubNewsletterUC{},
		Config: &config.Config{
			FrontendURL:        "http://localhost:3000",
			StaticDir:          staticDir,
			RateLimitPerMinute: 6000,
			RateLimitBurst:     100,
		},
	})

	// Existing asset is served as-is
	rec := doJSON(router, http.MethodGet, "/styles.css", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())

	// Unknown paths fall back to the SPA entry document
	for _, path := range []string{"/", "/produits", "/a/b/c"} {
		rec := doJSON(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.Contains(t, rec.Body.String(), "soa bango", "path %s", path)
	}

	// Unknown API routes stay JSON 404s
	rec = doJSON(router, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)

	// Non-GET methods never get the SPA document
	rec = doJSON(router, http.MethodDelete, "/produits", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---------------------------------------------------------------------------
// Rate limiting
// ---------------------------------------------------------------------------

func TestFormEndpointsRateLimited(t *testing.T) {
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    &stubContactUC{},
		OrderUC:      &stubOrderUC{},
		NewsletterUC: &stubNewsletterUC{},
		Config: &config.Config{
			FrontendURL:        "http://localhost:3000",
			StaticDir:          t.TempDir(),
			RateLimitPerMinute: 60,
			RateLimitBurst:     2,
		},
	})

	body := `{"email":"fan@example.com"}`
	codes := make([]int, 0, 4)
	for range 4 {
		rec := doJSON(router, http.MethodPost, "/api/newsletter", body)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Contains(t, codes[2:], http.StatusTooManyRequests)

	// Health is never rate limited
	rec := doJSON(router, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
