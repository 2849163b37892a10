package mascot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name  string
	url   string
	err   error
	calls int32
}

func (s *stubSource) Name() string { return s.name }
func (s *stubSource) Fetch(ctx context.Context) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.url, s.err
}

func TestDogCEOSource_ParsesImageURL(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/breeds/image/random", r.URL.Path)
		w.Write([]byte(`{"message": "https://images.dog.ceo/breeds/husky/n0.jpg", "status": "success"}`))
	}))
	defer srv.Close()

	url, err := NewDogCEOSource(srv.URL).Fetch(context.Background())

	req.NoError(err)
	req.Equal("https://images.dog.ceo/breeds/husky/n0.jpg", url)
}

func TestDogCEOSource_RejectsFailureStatus(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "oops", "status": "error"}`))
	}))
	defer srv.Close()

	_, err := NewDogCEOSource(srv.URL).Fetch(context.Background())

	req.Error(err)
	req.Contains(err.Error(), "status")
}

func TestDogCEOSource_RejectsServerError(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewDogCEOSource(srv.URL).Fetch(context.Background())

	req.Error(err)
	req.Contains(err.Error(), "http 500")
}

func TestTheDogAPISource_ParsesFirstResult(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v1/images/search", r.URL.Path)
		w.Write([]byte(`[{"id": "abc", "url": "https://cdn2.thedogapi.com/images/abc.jpg"}]`))
	}))
	defer srv.Close()

	url, err := NewTheDogAPISource(srv.URL).Fetch(context.Background())

	req.NoError(err)
	req.Equal("https://cdn2.thedogapi.com/images/abc.jpg", url)
}

func TestTheDogAPISource_RejectsEmptyResult(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewTheDogAPISource(srv.URL).Fetch(context.Background())

	req.Error(err)
	req.Contains(err.Error(), "empty result")
}

func TestRandomDogSource_RetriesUntilAnimated(t *testing.T) {
	req := require.New(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/woof.json", r.URL.Path)
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Write([]byte(`{"url": "https://random.dog/still.jpg"}`))
			return
		}
		w.Write([]byte(`{"url": "https://random.dog/wiggle.gif"}`))
	}))
	defer srv.Close()

	url, err := NewRandomDogSource(srv.URL).Fetch(context.Background())

	req.NoError(err)
	req.Equal("https://random.dog/wiggle.gif", url)
	req.Equal(int32(2), atomic.LoadInt32(&calls))
}

func TestRandomDogSource_GivesUpAfterThreeStillImages(t *testing.T) {
	req := require.New(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{"url": "https://random.dog/still.png"}`))
	}))
	defer srv.Close()

	_, err := NewRandomDogSource(srv.URL).Fetch(context.Background())

	req.Error(err)
	req.ErrorIs(err, errNotAnimated)
	req.Equal(int32(3), atomic.LoadInt32(&calls))
}

func TestRandomDogSource_TransportFailureStopsRetrying(t *testing.T) {
	req := require.New(t)
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewRandomDogSource(srv.URL).Fetch(context.Background())

	req.Error(err)
	req.Equal(int32(1), atomic.LoadInt32(&calls))
}

func TestFetcher_FallsThroughFailingSources(t *testing.T) {
	req := require.New(t)
	bad := &stubSource{name: "bad", err: errors.New("down")}
	good := &stubSource{name: "good", url: "https://example.com/dog.jpg"}
	f := NewFetcherWithSources(bad, good)

	url, err := f.FetchRandomImage(context.Background())

	req.NoError(err)
	req.Equal("https://example.com/dog.jpg", url)
}

func TestFetcher_AllSourcesFailed(t *testing.T) {
	req := require.New(t)
	f := NewFetcherWithSources(
		&stubSource{name: "one", err: errors.New("down")},
		&stubSource{name: "two", err: errors.New("also down")},
	)

	_, err := f.FetchRandomImage(context.Background())

	req.Error(err)
	req.Contains(err.Error(), "all image sources failed")
}

func TestFetcher_TriesEachSourceAtMostOnce(t *testing.T) {
	req := require.New(t)
	one := &stubSource{name: "one", err: errors.New("down")}
	two := &stubSource{name: "two", err: errors.New("down")}
	f := NewFetcherWithSources(one, two)

	_, err := f.FetchRandomImage(context.Background())

	req.Error(err)
	req.Equal(int32(1), atomic.LoadInt32(&one.calls))
	req.Equal(int32(1), atomic.LoadInt32(&two.calls))
}

func TestIsAnimatedURL(t *testing.T) {
	req := require.New(t)

	req.True(isAnimatedURL("https://random.dog/a.gif"))
	req.True(isAnimatedURL("https://random.dog/a.WEBM"))
	req.True(isAnimatedURL("https://random.dog/a.mp4"))
	req.False(isAnimatedURL("https://random.dog/a.jpg"))
	req.False(isAnimatedURL("https://random.dog/a.png"))
	req.False(isAnimatedURL(""))
}
