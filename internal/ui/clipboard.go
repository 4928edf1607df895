package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// clipboardCommand is a program that reads the clipboard text on stdin.
type clipboardCommand struct {
	name string
	args []string
}

// clipboardCandidates lists the copy tools per platform in preference order.
var clipboardCandidates = map[string][]clipboardCommand{
	"darwin": {{name: "pbcopy"}},
	"linux": {
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	},
	"windows": {{name: "clip"}},
}

// ClipboardWriter copies text through the platform's clipboard tool and
// degrades to an error when none is installed.
type ClipboardWriter struct {
	cmd    *clipboardCommand
	errMsg string
	run    func(name string, args []string, stdin string) error
}

// NewClipboardWriter creates a new ClipboardWriter and checks availability.
func NewClipboardWriter() *ClipboardWriter {
	cw := &ClipboardWriter{run: runClipboard}
	cw.detect(runtime.GOOS, exec.LookPath)
	return cw
}

func (cw *ClipboardWriter) detect(goos string, lookPath func(string) (string, error)) {
	candidates, ok := clipboardCandidates[goos]
	if !ok {
		cw.errMsg = fmt.Sprintf("unsupported platform: %s", goos)
		return
	}
	for _, c := range candidates {
		if _, err := lookPath(c.name); err == nil {
			c := c
			cw.cmd = &c
			return
		}
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	cw.errMsg = fmt.Sprintf("clipboard tool not found (install %s)", strings.Join(names, ", "))
}

// IsAvailable returns whether clipboard operations are supported.
func (cw *ClipboardWriter) IsAvailable() bool {
	return cw.cmd != nil
}

// Error returns the reason clipboard is unavailable.
func (cw *ClipboardWriter) Error() string {
	return cw.errMsg
}

// Write copies text to the system clipboard.
func (cw *ClipboardWriter) Write(text string) error {
	if cw.cmd == nil {
		return fmt.Errorf("clipboard unavailable: %s", cw.errMsg)
	}
	if err := cw.run(cw.cmd.name, cw.cmd.args, text); err != nil {
		return fmt.Errorf("%s: %w", cw.cmd.name, err)
	}
	return nil
}

func runClipboard(name string, args []string, stdin string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}
