package minio

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/franela/goblin"

	"github.com/aliskhannn/grayflip/internal/storage"
)

type object struct {
	data        []byte
	contentType string
}

// s3Stub is a minimal path-style S3 endpoint keeping buckets in memory.
type s3Stub struct {
	mu      sync.Mutex
	buckets map[string]map[string]object
	created []string
}

func newS3Stub(buckets ...string) *s3Stub {
	s := &s3Stub{buckets: map[string]map[string]object{}}
	for _, b := range buckets {
		s.buckets[b] = map[string]object{}
	}

	return s
}

func (s *s3Stub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")

	if _, ok := r.URL.Query()["location"]; ok {
		w.Header().Set("Content-Type", "application/xml")
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?><LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/">us-east-1</LocationConstraint>`)
		return
	}

	objects, exists := s.buckets[bucket]

	if key == "" {
		switch r.Method {
		case http.MethodHead:
			if !exists {
				w.WriteHeader(http.StatusNotFound)
			}
		case http.MethodPut:
			if !exists {
				s.buckets[bucket] = map[string]object{}
				s.created = append(s.created, bucket)
			}
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}
		return
	}

	switch r.Method {
	case http.MethodPut:
		if !exists {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		data, err := readPayload(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		objects[key] = object{data: data, contentType: r.Header.Get("Content-Type")}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	case http.MethodHead, http.MethodGet:
		obj, ok := objects[key]
		if !exists || !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Type", obj.contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(obj.data)))
		if r.Method == http.MethodGet {
			w.Write(obj.data)
		}
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func (s *s3Stub) object(bucket, key string) (object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.buckets[bucket][key]
	return obj, ok
}

// readPayload returns the request body, decoding aws-chunked uploads.
func readPayload(r *http.Request) ([]byte, error) {
	if !strings.HasPrefix(r.Header.Get("X-Amz-Content-Sha256"), "STREAMING-") {
		return io.ReadAll(r.Body)
	}

	var out bytes.Buffer
	br := bufio.NewReader(r.Body)
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, err
		}
		size, _, _ := strings.Cut(strings.TrimSpace(line), ";")
		n, err := strconv.ParseInt(size, 16, 64)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return out.Bytes(), nil
		}
		if _, err := io.CopyN(&out, br, n); err != nil {
			return nil, err
		}
		if _, err := br.ReadString('\n'); err != nil {
			return nil, err
		}
	}
}

func newTestStorage(g *goblin.G, stub *s3Stub) (*Storage, func()) {
	srv := httptest.NewServer(stub)
	u, err := url.Parse(srv.URL)
	g.Assert(err).IsNil()

	s, err := NewStorage(u.Host, "access", "secret", false)
	g.Assert(err).IsNil()

	return s, srv.Close
}

func TestStorage(t *testing.T) {
	g := goblin.Goblin(t)
	ctx := context.Background()

	g.Describe("MinIO storage", func() {
		var (
			stub  *s3Stub
			s     *Storage
			stop  func()
		)

		g.BeforeEach(func() {
			stub = newS3Stub("images")
			s, stop = newTestStorage(g, stub)
		})

		g.AfterEach(func() {
			stop()
		})

		g.It("Should report a missing key as not existing", func() {
			ok, err := s.Exists(ctx, "s3://images/missing.png")
			g.Assert(err).IsNil()
			g.Assert(ok).IsFalse()
		})

		g.It("Should report a missing bucket as not existing", func() {
			ok, err := s.Exists(ctx, "s3://nowhere/cat.png")
			g.Assert(err).IsNil()
			g.Assert(ok).IsFalse()
		})

		g.It("Should reject malformed object paths", func() {
			_, err := s.Exists(ctx, "s3://images")
			g.Assert(errors.Is(err, storage.ErrInvalidObjectPath)).IsTrue()

			err = s.Save(ctx, "/local/file.png", bytes.NewReader(nil))
			g.Assert(errors.Is(err, storage.ErrInvalidObjectPath)).IsTrue()
		})

		g.It("Should save, find and load an object", func() {
			err := s.Save(ctx, "s3://images/out/cat_grayscale.png", bytes.NewBufferString("png bytes"))
			g.Assert(err).IsNil()

			obj, ok := stub.object("images", "out/cat_grayscale.png")
			g.Assert(ok).IsTrue()
			g.Assert(string(obj.data)).Equal("png bytes")
			g.Assert(obj.contentType).Equal("image/png")

			exists, err := s.Exists(ctx, "s3://images/out/cat_grayscale.png")
			g.Assert(err).IsNil()
			g.Assert(exists).IsTrue()

			rc, err := s.Load(ctx, "s3://images/out/cat_grayscale.png")
			g.Assert(err).IsNil()
			defer rc.Close()
			data, err := io.ReadAll(rc)
			g.Assert(err).IsNil()
			g.Assert(string(data)).Equal("png bytes")
		})

		g.It("Should create the bucket before the first save", func() {
			err := s.Save(ctx, "s3://fresh/anim.gif", bytes.NewBufferString("gif"))
			g.Assert(err).IsNil()
			g.Assert(stub.created).Equal([]string{"fresh"})

			obj, ok := stub.object("fresh", "anim.gif")
			g.Assert(ok).IsTrue()
			g.Assert(obj.contentType).Equal("image/gif")
		})

		g.It("Should overwrite an existing object", func() {
			g.Assert(s.Save(ctx, "s3://images/a.png", bytes.NewBufferString("old"))).IsNil()
			g.Assert(s.Save(ctx, "s3://images/a.png", bytes.NewBufferString("new"))).IsNil()

			obj, _ := stub.object("images", "a.png")
			g.Assert(string(obj.data)).Equal("new")
		})
	})
}
