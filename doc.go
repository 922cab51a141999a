// Package resizable provides resizable panel groups: a fixed extent of 100
// percentage units shared by an ordered set of panels, with min/max/collapse
// constraints and boundary dragging.
//
// The allocation math lives in internal/layout and is re-exported here. This
// package adds the stateful shell around it: a [Group] owns the size vector,
// registers panels, runs drag sessions and keyboard steps, persists sizes
// through a [Storage], and reports lifecycle callbacks (resize start, resize,
// resize end, collapse, expand, reorder).
//
// Example usage:
//
//	sidebar, _ := resizable.NewPanel("sidebar",
//	    resizable.WithMinSize(15),
//	    resizable.WithMaxSize(40),
//	    resizable.WithCollapsible(0),
//	)
//	main, _ := resizable.NewPanel("main", resizable.WithGrow())
//
//	g, _ := resizable.NewGroup(
//	    resizable.OnCollapse(func(id string) { log.Printf("%s collapsed", id) }),
//	)
//	_ = g.AddPanel(sidebar)
//	_ = g.AddPanel(main)
//
//	_ = g.StartResize(0)
//	_, _ = g.Resize(-5)
//	_ = g.EndResize()
package resizable
