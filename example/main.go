// Example demonstrates a small cross-backend application: a frame with a
// menubar, a few controls and a table, running on any of the three backends.
//
//	go run ./example/                 # OpenGL (needs a display)
//	go run ./example/ -backend nucular
//	go run ./example/ -backend term   # needs a TTY
//
// All three backend packages are imported, which registers their drivers;
// the -backend flag picks the one to initialize.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/crossgui/gui"
	_ "github.com/crossgui/gui/backend/nk"
	_ "github.com/crossgui/gui/backend/opengl"
	_ "github.com/crossgui/gui/backend/term"
)

var backendFlag = flag.String("backend", "opengl", "backend to use: opengl, nucular or term")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fruitModel is a static table model.
type fruitModel struct {
	rows [][2]string
}

func (m *fruitModel) RowCount() int { return len(m.rows) }
func (m *fruitModel) ColCount() int { return 2 }
func (m *fruitModel) Value(row, col int) string {
	return m.rows[row][col]
}
func (m *fruitModel) RowHeader(row int) string { return fmt.Sprint(row + 1) }
func (m *fruitModel) ColHeader(col int) string {
	return [2]string{"Fruit", "Color"}[col]
}

func run() error {
	backend, err := parseBackend(*backendFlag)
	if err != nil {
		return err
	}
	app, err := gui.Initialize(backend, gui.WithLogging(os.Stderr))
	if err != nil {
		return fmt.Errorf("initialize %s: %w", backend, err)
	}

	frame := gui.NewFrame(app, nil,
		gui.WithOpt(gui.OptTitle, "gui example"),
		gui.WithOpt(gui.OptSize, &gui.Size{W: 480, H: 360}))

	counter := 0
	status := gui.NewText(frame, gui.WithOpt(gui.OptLabel, "clicked 0 times"))

	button := gui.NewButton(frame, gui.WithOpt(gui.OptLabel, "Click me"))
	button.OnClick = func() {
		counter++
		status.SetLabel(fmt.Sprintf("clicked %d times", counter))
	}

	check := gui.NewCheckBox(frame, gui.WithOpt(gui.OptLabel, "Enable button"),
		gui.WithOpt(gui.OptValue, true))
	check.OnClick = func(value bool) { button.Enable(value) }

	spin := gui.NewSpinControl(frame, gui.WithOpt(gui.OptSpinValue, 5))
	spin.OnValueChanged = func(value int) {
		status.SetLabel(fmt.Sprintf("spin value %d", value))
	}

	table := gui.NewTable(frame, &fruitModel{rows: [][2]string{
		{"apple", "red"},
		{"banana", "yellow"},
		{"plum", "purple"},
	}})
	table.OnCellLeftClick = func(row, col int) {
		status.SetLabel(fmt.Sprintf("cell (%d,%d) clicked", row, col))
	}
	table.Refresh()

	menu := gui.NewMenu(frame, gui.WithOpt(gui.OptLabel, "File"))
	menu.AppendItem("About", true, func() {
		about := gui.NewErrorMessageDialog(app, frame,
			gui.WithOpt(gui.OptTitle, "About"),
			gui.WithOpt(gui.OptMessage, "cross-backend gui example"))
		about.ShowModal()
	})
	menu.AppendSeparator()
	menu.AppendItem("Quit", true, frame.Close)
	menu.AttachMenubar()

	row := gui.NewHBoxLayout()
	row.Add(button, gui.WithOpt(gui.OptBorder, 4))
	row.Add(check, gui.WithOpt(gui.OptBorder, 4))
	row.Add(spin, gui.WithOpt(gui.OptBorder, 4))
	row.AddStretch(1)

	layout := gui.NewVBoxLayout()
	layout.Add(status, gui.WithOpt(gui.OptBorder, 6))
	layout.AddLayout(row, gui.WithOpt(gui.OptBorder, 2))
	layout.Add(table, gui.WithOpt(gui.OptBorder, 6),
		gui.WithOpt(gui.OptAlign, gui.AlignExpand), gui.WithOpt(gui.OptStretch, 1))
	frame.SetLayout(layout)

	frame.Show()
	return app.Run()
}

func parseBackend(name string) (gui.Backend, error) {
	switch name {
	case "opengl":
		return gui.BackendOpenGL, nil
	case "nucular":
		return gui.BackendNucular, nil
	case "term":
		return gui.BackendTerm, nil
	}
	return 0, fmt.Errorf("unknown backend %q", name)
}
