package main

import (
	"flag"
	"fmt"
	"os"

	"invita/cmd/invitactl/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	url := flag.String("url", "http://127.0.0.1:8080", "Base URL of the invita server")
	flag.Parse()

	p := tea.NewProgram(ui.NewRootModel(*url), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
