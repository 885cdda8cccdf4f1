package cli

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stylewheel/pkg/blend"
	"github.com/matzehuels/stylewheel/pkg/catalog"
)

const (
	// headerLines is the number of rows drawn above the wheel.
	headerLines = 2

	minGridRows     = 11
	defaultGridRows = 21

	// panelWidth is the space reserved right of the wheel for the readout.
	panelWidth = 28
)

var (
	wheelDotStyle    = lipgloss.NewStyle().Foreground(colorFaint)
	wheelCenterStyle = lipgloss.NewStyle().Foreground(colorMuted)
	panelStyle       = lipgloss.NewStyle().PaddingLeft(3)
)

// =============================================================================
// grid - cell <-> disk coordinate mapping
// =============================================================================

// grid lays the disk's bounding box over a cols x rows block of terminal
// cells. Cells are about twice as tall as wide, so cols is roughly 2*rows.
// Both are odd so the disk center falls on the middle of a cell.
type grid struct {
	cols, rows int
	disk       blend.Disk
}

func newGrid(disk blend.Disk, rows int) grid {
	rows = max(rows, minGridRows)
	if rows%2 == 0 {
		rows--
	}
	return grid{cols: 2*rows - 1, rows: rows, disk: disk}
}

func (g grid) cellWidth() float64  { return 2 * g.disk.Radius / float64(g.cols) }
func (g grid) cellHeight() float64 { return 2 * g.disk.Radius / float64(g.rows) }

// contains reports whether (col, row) is on the wheel surface.
func (g grid) contains(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// toDisk returns the disk coordinates of the center of cell (col, row).
func (g grid) toDisk(col, row int) blend.Point {
	return blend.Point{
		X: g.disk.CenterX - g.disk.Radius + (float64(col)+0.5)*g.cellWidth(),
		Y: g.disk.CenterY - g.disk.Radius + (float64(row)+0.5)*g.cellHeight(),
	}
}

// toCell returns the cell containing p, clamped to the grid.
func (g grid) toCell(p blend.Point) (col, row int) {
	col = int(math.Floor((p.X - (g.disk.CenterX - g.disk.Radius)) / g.cellWidth()))
	row = int(math.Floor((p.Y - (g.disk.CenterY - g.disk.Radius)) / g.cellHeight()))
	return min(max(col, 0), g.cols-1), min(max(row, 0), g.rows-1)
}

// =============================================================================
// wheelModel - interactive blend wheel
// =============================================================================

// wheelPanel holds the latest report. The control's listener writes it; the
// model only reads it, so copies of the model share one panel.
type wheelPanel struct {
	report  catalog.Report
	updates int
}

// wheelModel is the bubbletea model driving a blend control with the mouse.
type wheelModel struct {
	ctrl   *blend.Control
	loaded catalog.Loaded
	grid   grid
	panel  *wheelPanel

	unsubscribe func()
}

func newWheelModel(ctrl *blend.Control, loaded catalog.Loaded) wheelModel {
	panel := &wheelPanel{report: loaded.Report(ctrl.Cursor(), ctrl.Weights())}
	unsubscribe := ctrl.Subscribe(blend.ListenerFunc(func(d blend.Distribution) {
		panel.report = loaded.Report(ctrl.Cursor(), d)
		panel.updates++
	}))
	return wheelModel{
		ctrl:        ctrl,
		loaded:      loaded,
		grid:        newGrid(ctrl.Disk(), defaultGridRows),
		panel:       panel,
		unsubscribe: unsubscribe,
	}
}

func (m wheelModel) Init() tea.Cmd {
	return nil
}

func (m wheelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.ctrl.PointerCancel()
			m.unsubscribe()
			return m, tea.Quit
		case "esc":
			m.ctrl.PointerCancel()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.BlurMsg:
		m.ctrl.PointerLeave()

	case tea.WindowSizeMsg:
		m.grid = newGrid(m.ctrl.Disk(), min(msg.Height-headerLines-1, (msg.Width-panelWidth+1)/2))
	}
	return m, nil
}

// handleMouse translates terminal mouse events into pointer events. Leaving
// the wheel surface while dragging counts as pointer-leave.
func (m wheelModel) handleMouse(msg tea.MouseMsg) {
	col, row := msg.X, msg.Y-headerLines
	if !m.grid.contains(col, row) {
		m.ctrl.PointerLeave()
		return
	}
	p := m.grid.toDisk(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		// A cell is coarser than the hit radius on small grids; a press on
		// the marker's own cell grabs the cursor where it actually is.
		if c, r := m.grid.toCell(m.ctrl.Cursor()); c == col && r == row {
			p = m.ctrl.Cursor()
		}
		m.ctrl.PointerDown(p)
	case tea.MouseActionMotion:
		m.ctrl.PointerMove(p)
	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
}

func (m wheelModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Stylewheel"))
	b.WriteString(StyleDim.Render("  drag ◉ to blend · esc cancel · q quit"))
	b.WriteString("\n\n")

	return b.String() + lipgloss.JoinHorizontal(lipgloss.Top, m.renderWheel(), m.renderPanel())
}

func (m wheelModel) renderWheel() string {
	g := m.grid
	cells := make([][]string, g.rows)
	for row := range cells {
		cells[row] = make([]string, g.cols)
		for col := range cells[row] {
			if g.disk.Contains(g.toDisk(col, row)) {
				cells[row][col] = wheelDotStyle.Render("·")
			} else {
				cells[row][col] = " "
			}
		}
	}

	col, row := g.toCell(g.disk.Center())
	cells[row][col] = wheelCenterStyle.Render("+")

	colors := m.loaded.Catalog.Colors()
	for _, s := range m.ctrl.Styles() {
		col, row := g.toCell(g.disk.Anchor(s.Angle))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Of(s.Name).Hex()))
		cells[row][col] = style.Render("●")
	}

	cursor := "◉"
	if m.ctrl.State() == blend.Dragging {
		cursor = "◎"
	}
	col, row = g.toCell(m.ctrl.Cursor())
	cells[row][col] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.panel.report.Color)).Render(cursor)

	lines := make([]string, g.rows)
	for i, r := range cells {
		lines[i] = strings.Join(r, "")
	}
	return strings.Join(lines, "\n")
}

func (m wheelModel) renderPanel() string {
	r := m.panel.report
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Blend"))
	b.WriteString("\n")
	for _, line := range r.Readout {
		b.WriteString(StyleValue.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(swatch(r.Color) + " " + StyleDim.Render(r.Color))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(m.ctrl.State().String()))
	b.WriteString("\n\n")

	legend := m.ctrl.Styles()
	colors := m.loaded.Catalog.Colors()
	for _, s := range legend {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Of(s.Name).Hex())).Render("●")
		b.WriteString(dot + " " + StyleDim.Render(m.loaded.Catalog.Label(s.Name)))
		b.WriteString("\n")
	}
	if len(legend) == 0 {
		b.WriteString(StyleWarning.Render("no styles loaded"))
	}
	return panelStyle.Render(b.String())
}

// report returns the blend at the current cursor.
func (m wheelModel) report() catalog.Report {
	return m.panel.report
}
