package api

import (
	"net/http"
	"os"
)

// spaFileSystem serves the embedded frontend and falls back to index.html
// for unknown paths so client-side routing keeps working.
type spaFileSystem struct {
	root http.FileSystem
}

func (s *spaFileSystem) Open(name string) (http.File, error) {
	f, err := s.root.Open(name)
	if os.IsNotExist(err) {
		return s.root.Open("index.html")
	}
	return f, err
}
