package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhorod/satori-cli/lib/satori"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)
	return client
}

func TestGetSendsTokenCookie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(tokenCookie)
		require.NoError(t, err)
		require.Equal(t, "tok-1", cookie.Value)
		io.WriteString(w, "hello")
	})

	page, err := client.Get(context.Background(), "tok-1", "/")
	require.NoError(t, err)
	require.Equal(t, "hello", page.Body)
	require.Equal(t, satori.Token("tok-1"), page.Token)
}

func TestGetWithoutTokenSendsNoCookie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie(tokenCookie)
		require.ErrorIs(t, err, http.ErrNoCookie)
		io.WriteString(w, "anonymous")
	})

	page, err := client.Get(context.Background(), "", "/")
	require.NoError(t, err)
	require.Equal(t, satori.Token(""), page.Token)
}

func TestGetPicksUpIssuedToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: "fresh"})
		io.WriteString(w, "welcome")
	})

	page, err := client.Get(context.Background(), "stale", "/")
	require.NoError(t, err)
	require.Equal(t, satori.Token("fresh"), page.Token)
}

func TestGetServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := client.Get(context.Background(), "", "/")
	require.Error(t, err)
}

func TestPostSendsForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "alice", r.PostForm.Get("login"))
		require.Equal(t, "hunter2", r.PostForm.Get("password"))
		http.SetCookie(w, &http.Cookie{Name: tokenCookie, Value: "session-1"})
		io.WriteString(w, "logged in")
	})

	form := url.Values{}
	form.Set("login", "alice")
	form.Set("password", "hunter2")

	page, err := client.Post(context.Background(), "", "/login", form)
	require.NoError(t, err)
	require.Equal(t, satori.Token("session-1"), page.Token)
}

func TestSubmitFileUploadsMultipart(t *testing.T) {
	solution := filepath.Join(t.TempDir(), "solution.cpp")
	require.NoError(t, os.WriteFile(solution, []byte("int main() {}"), 0o644))

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "101", r.MultipartForm.Value["problem"][0])

		file, header, err := r.FormFile("codefile")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "solution.cpp", header.Filename)

		contents, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "int main() {}", string(contents))

		io.WriteString(w, "submitted")
	})

	fields := url.Values{}
	fields.Set("problem", "101")

	page, err := client.SubmitFile(context.Background(), "tok-1", "/contest/1/submit?select=101", fields, "codefile", solution)
	require.NoError(t, err)
	require.Equal(t, "submitted", page.Body)
}
