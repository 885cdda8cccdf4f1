// Package pkg holds the reusable stylewheel libraries.
//
// # Overview
//
// Stylewheel turns a point on a disk into a weighted blend of styles. Styles
// are anchored at angles on the rim; the center is the neutral Default style.
// The packages split the problem like this:
//
//  1. [blend] - geometry, weight computation and the drag state machine
//  2. [catalog] - loading styles from files, HTTP endpoints or the builtin set
//  3. [palette] - display colors and color blending for a distribution
//  4. [httputil] - response cache and retry helpers for catalog fetches
//  5. [observability] - hooks for drag, catalog and server events
//  6. [errors] - coded errors and input validation
//
// # Data Flow
//
//	catalog source (file / URL / builtin)
//	         ↓
//	    [catalog.Load] → []blend.Style
//	         ↓
//	    [blend.Control] ← pointer events
//	         ↓
//	    Distribution → listeners, readout, blended color
//
// # Quick Start
//
//	loaded := catalog.Load(ctx, catalog.StaticSource{Catalog: catalog.Builtin()}, nil)
//	ctrl, err := blend.New(blend.DefaultDisk(), loaded.Styles)
//	if err != nil {
//	    return err
//	}
//	ctrl.Subscribe(blend.ListenerFunc(func(d blend.Distribution) {
//	    fmt.Println(blend.Readout(d))
//	}))
//	ctrl.PointerDown(ctrl.Cursor())
//	ctrl.PointerMove(blend.Point{X: 450, Y: 250})
//	ctrl.PointerUp()
package pkg
