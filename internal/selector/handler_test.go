package selector

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/drivepick/internal/server"
	"github.com/HerbHall/drivepick/internal/testutil"
	"github.com/HerbHall/drivepick/pkg/models"
)

func newTestMux(t *testing.T, engines ...*Engine) *http.ServeMux {
	t.Helper()
	h := NewHandler(testutil.SampleManufacturers, nil, testutil.Logger(), engines...)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func do(t *testing.T, mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeSelection(t *testing.T, rec *httptest.ResponseRecorder) models.Selection {
	t.Helper()
	var got models.Selection
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	return got
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) server.Problem {
	t.Helper()
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	var p server.Problem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	return p
}

func TestHandler_PostSelection(t *testing.T) {
	mux := newTestMux(t)

	body := `{
		"catalog": ["Samsung 870 EVO", "WD Green", "Intel D3", "AWD Turbo"],
		"availability": [1, 1, 0, 1.0],
		"manufacturers": ["Samsung", "WD"]
	}`
	rec := do(t, mux, http.MethodPost, "/api/v1/selections", body)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeSelection(t, rec)
	assert.Equal(t, []string{"Samsung 870 EVO", "WD Green", "AWD Turbo"}, got.Matches)
	assert.Equal(t, 3, got.Count)
}

func TestHandler_PostSelectionEmptyResult(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodPost, "/api/v1/selections", `{"catalog": [], "availability": [], "manufacturers": ["WD"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matches": [], "count": 0}`, rec.Body.String())
}

func TestHandler_PostSelectionErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{
			name:       "malformed json",
			body:       `{"catalog": [`,
			wantDetail: "invalid request body",
		},
		{
			name:       "trailing data after document",
			body:       `{"catalog": ["WD Green"], "availability": [1], "manufacturers": ["WD"]} {"garbage":`,
			wantDetail: "unexpected data after JSON value",
		},
		{
			name:       "null catalog element",
			body:       `{"catalog": [null], "availability": [1], "manufacturers": ["WD"]}`,
			wantDetail: "catalog[0]: type mismatch",
		},
		{
			name:       "numeric fragment",
			body:       `{"catalog": ["Kingston"], "availability": [1], "manufacturers": [7]}`,
			wantDetail: "manufacturers[0]: type mismatch",
		},
	}

	mux := newTestMux(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodPost, "/api/v1/selections", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			p := decodeProblem(t, rec)
			assert.Equal(t, server.ProblemTypeBadRequest, p.Type)
			assert.Contains(t, p.Detail, tt.wantDetail)
			assert.Equal(t, "/api/v1/selections", p.Instance)
		})
	}
}

func TestHandler_GetSourceSelection(t *testing.T) {
	builtin := NewEngine("builtin", &fakeSource{drives: testutil.SampleDrives()}, testutil.Logger(), nil)
	mux := newTestMux(t, builtin)

	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{
			name:   "defaults when parameter absent",
			target: "/api/v1/selections/builtin",
			want: []string{
				`500 ГБ 2.5" SATA накопитель Samsung 870 EVO`,
				`480 ГБ 2.5" SATA накопитель WD Green`,
			},
		},
		{
			name:   "explicit fragments",
			target: "/api/v1/selections/builtin?manufacturer=Kingston&manufacturer=Apacer",
			want: []string{
				`480 ГБ 2.5" SATA накопитель Kingston A400`,
				`256 ГБ 2.5" SATA накопитель Apacer AS350 PANTHER`,
			},
		},
		{
			name:   "empty fragment matches every available drive",
			target: "/api/v1/selections/builtin?manufacturer=",
			want: []string{
				`480 ГБ 2.5" SATA накопитель Kingston A400`,
				`500 ГБ 2.5" SATA накопитель Samsung 870 EVO`,
				`480 ГБ 2.5" SATA накопитель ADATA SU650`,
				`240 ГБ 2.5" SATA накопитель ADATA SU650`,
				`256 ГБ 2.5" SATA накопитель Apacer AS350 PANTHER`,
				`480 ГБ 2.5" SATA накопитель WD Green`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, mux, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)
			got := decodeSelection(t, rec)
			assert.Equal(t, tt.want, got.Matches)
			assert.Equal(t, len(tt.want), got.Count)
		})
	}
}

func TestHandler_GetUnknownSource(t *testing.T) {
	mux := newTestMux(t)

	rec := do(t, mux, http.MethodGet, "/api/v1/selections/floppy", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	p := decodeProblem(t, rec)
	assert.Equal(t, server.ProblemTypeNotFound, p.Type)
	assert.Contains(t, p.Detail, "floppy")
}

func TestHandler_GetSourceFailure(t *testing.T) {
	broken := NewEngine("inventory", &fakeSource{err: errors.New("db closed")}, testutil.Logger(), nil)
	mux := newTestMux(t, broken)

	rec := do(t, mux, http.MethodGet, "/api/v1/selections/inventory", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	p := decodeProblem(t, rec)
	assert.Equal(t, server.ProblemTypeInternal, p.Type)
	assert.NotContains(t, p.Detail, "db closed")
}

func TestHandler_GetHonoursContext(t *testing.T) {
	src := &ctxSource{}
	mux := newTestMux(t, NewEngine("slow", src, testutil.Logger(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/selections/slow", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.ErrorIs(t, src.seen, context.Canceled)
}

type ctxSource struct {
	seen error
}

func (c *ctxSource) Drives(ctx context.Context) ([]models.Drive, error) {
	c.seen = ctx.Err()
	if c.seen != nil {
		return nil, c.seen
	}
	return nil, nil
}
