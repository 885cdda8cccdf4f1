// Package blend implements the radial blend control: a disk whose rim carries
// style anchors and whose center stands for the implicit "Default" style.
//
// A cursor inside the disk is mapped to a normalized weight distribution over
// the styles. The package has three layers:
//
//   - [Disk]: fixed center/radius geometry and [Disk.Clamp], which projects
//     any point onto the closest point inside the disk.
//   - [Compute]: the pure weight calculator. Default strength decays linearly
//     from the center to the rim; each style contributes inside a cone of
//     [Params.ConeHalfWidth] degrees around its anchor, scaled by the
//     cursor's distance from the center.
//   - [Control]: the Idle/Dragging state machine fed by pointer events. Every
//     accepted move clamps the pointer, recomputes the distribution and
//     notifies subscribed [Listener] values.
//
// # Distributions
//
// A [Distribution] always sums to 1 and never holds zero entries: styles with
// negligible weight are absent, and callers treat an absent style as weight 0.
// The cursor at the center yields exactly {Default: 1}.
//
// # Usage
//
//	disk := blend.Disk{CenterX: 250, CenterY: 250, Radius: 200}
//	ctl, err := blend.New(disk, styles)
//	if err != nil {
//	    return err
//	}
//	unsubscribe := ctl.Subscribe(blend.ListenerFunc(func(d blend.Distribution) {
//	    fmt.Println(blend.Readout(d))
//	}))
//	defer unsubscribe()
//
//	ctl.PointerDown(blend.Point{X: 250, Y: 250})
//	ctl.PointerMove(blend.Point{X: 400, Y: 250})
//	ctl.PointerUp()
//
// The control is not safe for concurrent use. Events must be delivered from a
// single goroutine, one at a time.
package blend
