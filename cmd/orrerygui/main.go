// Command orrerygui wraps the orrery server in a desktop webview window. It
// starts the server binary if nothing is listening yet, waits for it to
// become healthy, and then points the window at it.
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	webview "github.com/webview/webview_go"
)

const serverAddr = "localhost:1969"

func main() {
	// Webview requires the main thread.
	runtime.LockOSThread()

	// Run from the executable directory so the server finds configs/ and data/.
	exe, _ := os.Executable()
	if err := os.Chdir(filepath.Dir(exe)); err != nil {
		panic(err)
	}

	srv, err := ensureServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start orrery server: %v\n", err)
		os.Exit(1)
	}
	if srv != nil {
		defer func() { _ = srv.Process.Kill() }()
	}

	w := webview.New(false)
	defer w.Destroy()

	// Children click everywhere; no context menu.
	w.Init(`
		window.addEventListener('contextmenu', function(e) {
			e.preventDefault();
		}, true);
	`)

	w.SetTitle("Orrery")
	w.SetSize(1280, 800, webview.HintNone)
	w.Navigate("http://" + serverAddr)
	w.Run()
}

// ensureServer returns a running server process, or nil if one was already
// listening on the address.
func ensureServer() (*exec.Cmd, error) {
	if healthy() {
		return nil, nil
	}

	name := "orrery"
	if runtime.GOOS == "windows" {
		name = "orrery.exe"
	}

	cmd := exec.Command(filepath.Join(".", name))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		if healthy() {
			return cmd, nil
		}
		time.Sleep(250 * time.Millisecond)
	}

	_ = cmd.Process.Kill()
	return nil, fmt.Errorf("server did not become healthy within 15s")
}

func healthy() bool {
	client := &http.Client{Timeout: 500 * time.Millisecond}
	resp, err := client.Get("http://" + serverAddr + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
