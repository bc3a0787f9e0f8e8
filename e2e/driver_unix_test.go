//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20       // 1 MiB of scrollback
var binPath = "backoffice_e2e" // built once in TestMain

const (
	KeyEnter  = "\r"
	KeyEsc    = "\x1b"
	KeyCtrlC  = "\x03"
	KeySpace  = " "
	KeyDown   = "j"
	KeyQuit   = "q"
	KeySearch = "/"
	KeyHelp   = "?"
)

// strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// e2e config: no latency, no log file, small deterministic dataset
const testConfig = `
version = 1
rows_per_page = 5

[mock]
seed = 7
records_per_feature = 12
food_latency_ms = 0

[ui]
confirm_delete = true
toast_seconds = 5
mouse = false

[log]
level = "info"
filename = ""
`

// TUITestFramework drives the backoffice binary inside a PTY
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string

	mu   sync.Mutex
	buf  []byte
	head int
	full bool
	cond *sync.Cond
}

func NewTUITest(t *testing.T) *TUITestFramework {
	tf := &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
	tf.cond = sync.NewCond(&tf.mu)
	return tf
}

// ConfigPath writes the e2e config into the workspace and returns its path
func (tf *TUITestFramework) ConfigPath() string {
	tf.t.Helper()
	path := filepath.Join(tf.workspace, "config.toml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		tf.t.Fatalf("write config: %v", err)
	}
	return path
}

func (tf *TUITestFramework) env() []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"HOME="+tf.workspace,
	)
}

// StartApp launches the binary with the e2e config in a 120x40 PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	cmdArgs := append([]string{"--config", tf.ConfigPath()}, args...)
	tf.cmd = exec.Command(binPath, cmdArgs...)
	tf.cmd.Env = tf.env()

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdout = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty

	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{40, 120, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.startReader()
	return nil
}

// RunCLI runs a non-interactive subcommand and returns its combined output
func (tf *TUITestFramework) RunCLI(args ...string) (string, error) {
	tf.t.Helper()
	cmdArgs := append(args, "--config", tf.ConfigPath())
	cmd := exec.Command(binPath, cmdArgs...)
	cmd.Env = tf.env()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.cond.Broadcast()
				tf.mu.Unlock()
			}
			if err != nil {
				tf.mu.Lock()
				tf.cond.Broadcast()
				tf.mu.Unlock()
				return
			}
		}
	}()
}

func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends keys one at a time so each lands as its own key event
func (tf *TUITestFramework) Type(text string) {
	tf.t.Helper()
	for _, r := range text {
		_ = tf.SendKeys(string(r))
		time.Sleep(20 * time.Millisecond)
	}
}

func (tf *TUITestFramework) Enter() error { return tf.SendKeys(KeyEnter) }
func (tf *TUITestFramework) Esc() error   { return tf.SendKeys(KeyEsc) }
func (tf *TUITestFramework) Down() error  { return tf.SendKeys(KeyDown) }
func (tf *TUITestFramework) Quit() error  { return tf.SendKeys(KeyQuit) }

// SeePlain waits for text to appear in the normalized output
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Mark returns the current buffer length so later waits only look at newer output
func (tf *TUITestFramework) Mark() int {
	return len(tf.Snapshot())
}

// SeePlainAfter waits for text in the output written after mark
func (tf *TUITestFramework) SeePlainAfter(mark int, text string) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		if mark > len(s) {
			mark = 0
		}
		return strings.Contains(ansiRe.ReplaceAllString(s[mark:], ""), text)
	}, 3*time.Second)
}

func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail logs the last n bytes of normalized output
func (tf *TUITestFramework) DumpTailOnFail(n int) {
	if !tf.t.Failed() {
		return
	}
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	tf.t.Logf("--- tail ---\n%s", s)
}

// WaitExit waits for the process to exit, failing after timeout
func (tf *TUITestFramework) WaitExit(timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case err := <-done:
		tf.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("process did not exit within %s", timeout)
	}
}

// Cleanup closes the PTY and kills the process if it is still running
func (tf *TUITestFramework) Cleanup() {
	tf.DumpTailOnFail(4096)
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		_, _ = tf.cmd.Process.Wait()
		tf.cmd = nil
	}
}
