// Package static serves the pre-built front-end bundle and guarantees a
// landing page exists even on a fresh install.
package static

import (
	"net/http"
	"os"
	"path/filepath"
)

const placeholderPage = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>postcraft</title>
</head>
<body>
  <main style="max-width: 40rem; margin: 4rem auto; font-family: sans-serif;">
    <h1>postcraft</h1>
    <p>The API is up. Build the front-end bundle into this directory to replace this page.</p>
    <p>Endpoints: <code>POST /api/rewrite</code>, <code>POST /api/punchline</code>, <code>POST /api/compose</code></p>
  </main>
</body>
</html>
`

// Ensure creates dir and writes a placeholder index.html when none exists.
// An existing index is never touched.
func Ensure(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	return os.WriteFile(index, []byte(placeholderPage), 0o644)
}

// Handler serves the directory's files as-is.
func Handler(dir string) http.Handler {
	return http.FileServer(http.Dir(dir))
}
