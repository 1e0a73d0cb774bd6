package unzip

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/KretovDmitry/canang-orders/pkg/logger"
)

// gzipBody decompresses a request body and closes both readers.
type gzipBody struct {
	body io.ReadCloser
	zr   *gzip.Reader
}

func (b *gzipBody) Read(p []byte) (int, error) {
	return b.zr.Read(p)
}

func (b *gzipBody) Close() error {
	return errors.Join(b.zr.Close(), b.body.Close())
}

// Middleware transparently decompresses form bodies sent with
// Content-Encoding: gzip. A body that is not gzip gets 400.
func Middleware(logger logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		f := func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(strings.ToLower(r.Header.Get("Content-Encoding")), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			zr, err := gzip.NewReader(r.Body)
			if err != nil {
				logger.With(r.Context()).Debugf("unzip request body: %s", err)
				http.Error(w, "invalid request: body is not gzip", http.StatusBadRequest)
				return
			}

			body := &gzipBody{body: r.Body, zr: zr}
			defer body.Close()

			r.Body = body
			r.Header.Del("Content-Encoding")
			r.Header.Del("Content-Length")
			r.ContentLength = -1

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(f)
	}
}
