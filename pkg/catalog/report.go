package catalog

import "github.com/matzehuels/stylewheel/pkg/blend"

// Report is a distribution rendered for people: the readout lines, the prose
// description and the blended display color, next to the cursor it came from.
type Report struct {
	X           float64            `json:"x"`
	Y           float64            `json:"y"`
	Weights     blend.Distribution `json:"weights"`
	Readout     []string           `json:"readout"`
	Description string             `json:"description"`
	Color       string             `json:"color"`
}

// Report renders d, produced at cursor, using the catalog's labels and
// colors.
func (l Loaded) Report(cursor blend.Point, d blend.Distribution) Report {
	readout := []string{}
	for _, s := range blend.Shares(d, blend.ReadoutThreshold) {
		readout = append(readout, s.String())
	}
	return Report{
		X:           cursor.X,
		Y:           cursor.Y,
		Weights:     d,
		Readout:     readout,
		Description: blend.Describe(d, l.Catalog.Label),
		Color:       l.Catalog.Colors().Blend(d),
	}
}

// Evaluate clamps p to the disk and reports the distribution there.
func (l Loaded) Evaluate(p blend.Point, disk blend.Disk, params blend.Params) Report {
	cursor := disk.Clamp(p)
	return l.Report(cursor, blend.Compute(cursor, disk, l.Styles, params))
}
