package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// terminalPrompter asks blocking yes/no questions on the terminal and
// reports failures on stderr. It satisfies comment.Prompter.
type terminalPrompter struct {
	in  io.Reader
	out io.Writer
}

func newTerminalPrompter() terminalPrompter {
	return terminalPrompter{in: os.Stdin, out: os.Stderr}
}

// Confirm prints the message and waits for a y/N answer. Anything but
// an explicit yes counts as no.
func (p terminalPrompter) Confirm(message string) bool {
	fmt.Fprintf(p.out, "%s [y/N]: ", message)

	reader := bufio.NewReader(p.in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// Alert prints a failure message.
func (p terminalPrompter) Alert(message string) {
	fmt.Fprintln(p.out, message)
}

// autoConfirm wraps a prompter and answers yes to every confirmation.
// Used for the --yes flag.
type autoConfirm struct {
	terminalPrompter
}

func (autoConfirm) Confirm(string) bool { return true }

// browserNavigator opens community pages in the user's browser. It
// satisfies comment.Navigator.
type browserNavigator struct{}

// Navigate opens the page at path on the configured server.
func (browserNavigator) Navigate(path string) {
	target := strings.TrimRight(getServerURL(), "/") + path
	fmt.Printf("Opening %s\n", target)
	if err := openBrowser(target); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
		fmt.Fprintf(os.Stderr, "Visit: %s\n", target)
	}
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
