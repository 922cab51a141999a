package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/grindlemire/go-resizable/internal/render"
	"github.com/spf13/cobra"
)

type previewOptions struct {
	width     int
	height    int
	svg       string
	svgWidth  int
	svgHeight int
	watch     bool
}

func (a *app) previewCmd() *cobra.Command {
	var o previewOptions

	cmd := &cobra.Command{
		Use:   "preview <layout-file>",
		Short: "Draw the layout in the terminal or as SVG",
		Long: `Draw every panel of the layout as a box sized by its share of the group.
The width defaults to the terminal width. --svg also writes an SVG drawing,
and --watch redraws whenever the layout file changes.`,
		Example: `  resizable preview editor.yaml
  resizable preview editor.yaml --width 120 --svg editor.svg
  resizable preview editor.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			draw := func() error { return a.drawPreview(cmd.OutOrStdout(), path, o) }

			if err := draw(); err != nil {
				return err
			}
			if !o.watch {
				return nil
			}
			return a.watch(cmd.Context(), path, draw)
		},
	}

	cmd.Flags().IntVar(&o.width, "width", 0, "width in cells (default: terminal width)")
	cmd.Flags().IntVar(&o.height, "height", 0, "height in cells (default depends on direction)")
	cmd.Flags().StringVar(&o.svg, "svg", "", "also write an SVG drawing to this file")
	cmd.Flags().IntVar(&o.svgWidth, "svg-width", 800, "SVG width in pixels")
	cmd.Flags().IntVar(&o.svgHeight, "svg-height", 400, "SVG height in pixels")
	cmd.Flags().BoolVar(&o.watch, "watch", false, "redraw when the layout file changes")
	return cmd
}

func (a *app) drawPreview(out io.Writer, path string, o previewOptions) error {
	g, err := a.loadGroup(path)
	if err != nil {
		return err
	}

	width, height := o.width, o.height
	if width <= 0 {
		width = terminalWidth()
	}
	if height <= 0 {
		height = heightFor(g.Direction())
	}
	fmt.Fprintln(out, render.Bars(frameFor(g, width, height, -1)))

	if o.svg == "" {
		return nil
	}
	f, err := os.Create(o.svg)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", o.svg, err)
	}
	render.SVG(f, frameFor(g, o.svgWidth, o.svgHeight, -1))
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", o.svg, err)
	}
	a.log.Infof("wrote %s", o.svg)
	return nil
}

// watch calls draw every time the file at path is written, until ctx is
// done. Draw errors are logged and the watch goes on.
func (a *app) watch(ctx context.Context, path string, draw func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Editors often save by renaming over the file, so watch the directory.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	a.log.Infof("watching %s, press Ctrl+C to stop", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			a.log.Debugf("%s changed", path)
			if err := draw(); err != nil {
				a.log.Error(err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.WithError(err).Warn("watch error")
		}
	}
}
