package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type recorded struct {
	method string
	path   string
	query  string
	body   map[string]interface{}
}

type fakeSheets struct {
	mu       sync.Mutex
	requests []recorded
	status   int
	header   []string
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.requests = append(f.requests, recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: body})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"backend error"}}`))
		return
	}
	if r.Method == http.MethodGet {
		values := [][]string{}
		if f.header != nil {
			values = append(values, f.header)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"values": values})
		return
	}
	_, _ = w.Write([]byte(`{}`))
}

func newTestClient(t *testing.T, f *fakeSheets) *GoogleClient {
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	c, err := NewGoogleClientWithOptions(context.Background(), "sheet-123", "Teams 2026",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return c
}

func TestReadHeader(t *testing.T) {
	f := &fakeSheets{header: []string{"Team Name", "Member 1 Name"}}
	c := newTestClient(t, f)

	header, err := c.ReadHeader(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Team Name", "Member 1 Name"}, header)
	require.Len(t, f.requests, 1)
	assert.Contains(t, f.requests[0].path, "/spreadsheets/sheet-123/values/'Teams 2026'!A1:AJ1")
}

func TestReadHeaderEmptySheet(t *testing.T) {
	c := newTestClient(t, &fakeSheets{})
	header, err := c.ReadHeader(context.Background())
	require.NoError(t, err)
	assert.Empty(t, header)
}

func TestWriteOperations(t *testing.T) {
	f := &fakeSheets{}
	c := newTestClient(t, f)
	ctx := context.Background()

	require.NoError(t, c.WriteHeader(ctx, Header()))
	require.NoError(t, c.ClearRows(ctx))
	require.NoError(t, c.WriteRows(ctx, [][]string{{"Orbiters", "Asha"}}))
	require.NoError(t, c.AppendRow(ctx, []string{"Nebula"}))
	require.NoError(t, c.WriteRows(ctx, nil), "empty batch is a no-op")

	require.Len(t, f.requests, 4)

	assert.Equal(t, http.MethodPut, f.requests[0].method)
	assert.Contains(t, f.requests[0].path, "!A1")
	assert.Contains(t, f.requests[0].query, "valueInputOption=RAW")

	assert.Equal(t, http.MethodPost, f.requests[1].method)
	assert.True(t, strings.HasSuffix(f.requests[1].path, "!A2:AJ:clear"), f.requests[1].path)

	assert.Equal(t, http.MethodPut, f.requests[2].method)
	assert.Contains(t, f.requests[2].path, "!A2")
	assert.Contains(t, f.requests[2].query, "valueInputOption=USER_ENTERED")
	assert.Equal(t, []interface{}{[]interface{}{"Orbiters", "Asha"}}, f.requests[2].body["values"])

	assert.Equal(t, http.MethodPost, f.requests[3].method)
	assert.True(t, strings.HasSuffix(f.requests[3].path, "!A:AJ:append"), f.requests[3].path)
	assert.Contains(t, f.requests[3].query, "insertDataOption=INSERT_ROWS")
}

func TestUpstreamFailure(t *testing.T) {
	c := newTestClient(t, &fakeSheets{status: http.StatusServiceUnavailable})

	err := c.ClearRows(context.Background())

	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
}

func TestA1QuotesTabName(t *testing.T) {
	c := &GoogleClient{tab: "Bob's Teams"}
	assert.Equal(t, "'Bob''s Teams'!A1", c.a1("A1"))
}
