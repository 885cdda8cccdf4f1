// Package catalog loads the style catalog that feeds a blend control.
//
// A catalog is a document mapping style names to their anchor angle, display
// color and an is_default flag:
//
//	{
//	  "Default": {"angle": 0, "color": "#FF1B6D", "is_default": true},
//	  "Spooky":  {"angle": 0, "color": "#6B2D8C", "name": "Spooky Tales"}
//	}
//
// Catalogs come from a [Source]: a JSON or TOML file ([FileSource]), a remote
// endpoint ([HTTPSource]) or an in-memory value ([StaticSource]). [Load] turns
// a source into the immutable style list the blend core consumes, dropping
// default-flagged entries. Any failure degrades to an empty list: the control
// stays usable with only the Default weight.
package catalog
