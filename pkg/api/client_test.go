package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_GET(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/object":
			w.Write([]byte(`{"title":"Save the paws","heroImages":["a.png"]}`))
		case "/array":
			w.Write([]byte(`[{"id":1},{"id":2}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{}`))
		}
	}))
	defer server.Close()

	ctx := context.Background()

	resp, err := NewGenerator().New(server.URL + "/object").GET(ctx)
	require.NoError(t, err)
	require.True(t, resp.OK())

	body, ok := resp.Body.(JSON)
	require.True(t, ok)
	require.Equal(t, "Save the paws", body["title"])

	resp, err = NewGenerator(server.URL).New("/%s", "array").GET(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Body, 2)

	resp, err = NewGenerator(server.URL).New("/missing").GET(ctx)
	require.NoError(t, err)
	require.False(t, resp.OK())
}

func TestClient_GET_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not a json`))
	}))
	defer server.Close()

	_, err := NewGenerator().New(server.URL).GET(context.Background())
	require.Error(t, err)
}

func TestGenerator_KeepsEscapedPath(t *testing.T) {
	client := NewGenerator().New("https://example.com/a%20b.json").(*defaultClient)
	require.Equal(t, "https://example.com/a%20b.json", client.path)
}
