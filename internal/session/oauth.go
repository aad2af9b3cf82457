package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"
)

const callbackPage = `<!DOCTYPE html>
<html>
<head><title>Signed in</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
<h2>Signed in</h2>
<p>You can close this tab and return to the terminal.</p>
</body>
</html>`

// CallbackListener is a one-shot localhost HTTP server that waits for the
// provider to redirect the browser back with ?token= attached.
type CallbackListener struct {
	server   *http.Server
	addr     string
	tokenCh  chan string
	closeErr error
}

// ListenCallback binds 127.0.0.1:port and starts serving. Call Wait to block
// for the redirect and Close to tear the listener down.
func ListenCallback(port int) (*CallbackListener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("bind callback listener: %w", err)
	}

	l := &CallbackListener{
		addr:    "http://" + ln.Addr().String(),
		tokenCh: make(chan string, 1),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		tok := r.URL.Query().Get("token")
		if tok == "" {
			http.Error(w, "missing token", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, callbackPage)
		select {
		case l.tokenCh <- tok:
		default:
		}
	})
	l.server = &http.Server{Handler: mux}
	go func() {
		if err := l.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.closeErr = err
		}
	}()
	return l, nil
}

// Addr is the redirect address the provider should send the browser to.
func (l *CallbackListener) Addr() string {
	return l.addr
}

// Wait blocks until the redirect lands or the context expires.
func (l *CallbackListener) Wait(ctx context.Context) (string, error) {
	select {
	case tok := <-l.tokenCh:
		return tok, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (l *CallbackListener) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := l.server.Shutdown(ctx); err != nil {
		return err
	}
	return l.closeErr
}

// OpenBrowser launches the system browser at the given URL. Failure is not
// fatal; the caller should print the URL as a fallback.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
