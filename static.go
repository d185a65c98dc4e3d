package sunbreeze

import (
	"net/http"
	"os"
	"strings"
	"sync"
)

// staticMount serves files under a fixed URL prefix from a local directory.
// The directory is created on demand the first time the mount is hit, so an
// application without static assets never touches the filesystem.
type staticMount struct {
	prefix string
	dir    string

	once    sync.Once
	handler http.Handler
	err     error
}

func newStaticMount(prefix, dir string) *staticMount {
	return &staticMount{prefix: prefix, dir: dir}
}

// matches reports whether the request path falls under the mount prefix.
func (s *staticMount) matches(path string) bool {
	return strings.HasPrefix(path, s.prefix+"/")
}

// ServeHTTP serves one file from the mount directory.
func (s *staticMount) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.once.Do(func() {
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			s.err = err
			return
		}
		s.handler = http.StripPrefix(s.prefix+"/", http.FileServer(http.FS(os.DirFS(s.dir))))
	})
	if s.err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.handler.ServeHTTP(w, r)
}
