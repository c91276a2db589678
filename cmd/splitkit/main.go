package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"splitkit/internal/config"
	"splitkit/internal/split"
	"splitkit/internal/telemetry"
	"splitkit/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	orientation, err := cfg.Layout.SplitOrientation()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad layout: %v\n", err)
		os.Exit(1)
	}

	group := split.NewGroup(orientation)
	panes := make([]ui.Pane, 0, len(cfg.Layout.Panels))
	collapseID := ""
	for _, p := range cfg.Layout.Panels {
		id := group.Register(p.ID, p.Constraints())
		title := p.Title
		if title == "" {
			title = id
		}
		panes = append(panes, ui.Pane{ID: id, View: ui.NewTextPane(title, sampleBody(title))})
		if p.Collapsible && collapseID == "" {
			collapseID = id
		}
	}

	recorder, err := telemetry.NewRecorder(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry disabled: %v\n", err)
	}
	if recorder != nil {
		group.AddResizeListener(recorder)
	}

	splitView, err := ui.NewSplitView(group, panes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build layout: %v\n", err)
		os.Exit(1)
	}
	app := ui.NewAppView(group, splitView, recorder)
	app.CollapseID = collapseID

	p := tea.NewProgram(ui.AsTeaModel(app), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	_ = recorder.Shutdown(context.Background())
}

// sampleBody fills a demo pane with enough text to scroll.
func sampleBody(title string) string {
	var b strings.Builder
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "%s line %d\n", strings.ToLower(title), i)
	}
	return b.String()
}
