package site

import (
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Preview serves a built site directory over HTTP until the server fails.
func Preview(dir string, port int, open bool, logger *zap.Logger) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		go openBrowser(url)
	}

	fmt.Printf("Previewing site at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	srv := &http.Server{
		Addr:              addr,
		Handler:           PreviewHandler(dir, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// PreviewHandler serves dir as static files and logs each request.
func PreviewHandler(dir string, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("preview request", zap.String("path", r.URL.Path))
		fs.ServeHTTP(w, r)
	})
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
