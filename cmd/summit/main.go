// Summit opens the E-Summit site in a window.
//
// Configuration comes from curtain.toml in the working directory, the file
// named by --config or CURTAIN_CONFIG, and CURTAIN_* environment overrides.
// Escape quits; Backspace goes back one page.
//
// Subcommands list the event catalog and play JSON input scripts against
// the site without opening a window.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "summit:", err)
		os.Exit(1)
	}
}
