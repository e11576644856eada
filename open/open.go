// Package open hands a URL to the desktop: the system handler by default, or a
// named application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tubevault/tubevault/constant"
)

// StartWith launches url with app, or with the system handler when app is empty.
// It does not wait for the launched process.
func StartWith(url, app string) error {
	cmd, err := command(runtime.GOOS, url, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

func command(goos, url, app string) (*exec.Cmd, error) {
	name, args, ok := launcher(goos, url, app)
	if !ok {
		return nil, fmt.Errorf("opening links is not supported on %s", goos)
	}
	return exec.Command(name, args...), nil
}

func launcher(goos, url, app string) (name string, args []string, ok bool) {
	switch goos {
	case constant.Linux:
		if app != "" {
			return app, []string{url}, true
		}
		return "xdg-open", []string{url}, true
	case constant.Darwin:
		if app != "" {
			return "open", []string{"-a", app, url}, true
		}
		return "open", []string{url}, true
	case constant.Windows:
		if app != "" {
			// & separates commands for start
			return "cmd", []string{"/C", "start", "", app, strings.ReplaceAll(url, "&", "^&")}, true
		}
		return filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe"), []string{"url.dll,FileProtocolHandler", url}, true
	case constant.Android:
		return "termux-open-url", []string{url}, true
	}
	return "", nil, false
}
