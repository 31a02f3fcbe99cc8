package gui_test

import (
	"errors"
	"testing"
	"time"

	"github.com/crossgui/gui"
)

func TestWindowTreeCloseCascade(t *testing.T) {
	app, d := newTestApp()

	parent := gui.NewFrame(app, nil, gui.WithOpt(gui.OptTitle, "parent"))
	childA := gui.NewFrame(app, parent)
	childB := gui.NewFrame(app, parent)
	grand := gui.NewFrame(app, childA)

	var order []string
	parent.OnClose = func() { order = append(order, "parent") }
	childA.OnClose = func() { order = append(order, "childA") }
	childB.OnClose = func() { order = append(order, "childB") }
	grand.OnClose = func() { order = append(order, "grand") }

	parent.Close()
	d.pump()

	for i, f := range []*gui.Frame{parent, childA, childB, grand} {
		if !f.Closed() {
			t.Errorf("frame %d not closed", i)
		}
	}
	for i, w := range d.windows {
		if !w.destroyed {
			t.Errorf("native window %d not destroyed", i)
		}
	}
	if len(parent.Children()) != 0 {
		t.Errorf("children = %d, want 0", len(parent.Children()))
	}

	// Children finish closing before the parent's hook runs.
	want := []string{"grand", "childA", "childB", "parent"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestChildCloseDetachesFromParent(t *testing.T) {
	app, d := newTestApp()

	parent := gui.NewFrame(app, nil)
	child := gui.NewFrame(app, parent)

	child.Close()
	d.pump()

	if !child.Closed() || parent.Closed() {
		t.Errorf("child closed = %v parent closed = %v", child.Closed(), parent.Closed())
	}
	if len(parent.Children()) != 0 {
		t.Error("closed child must detach from its former parent")
	}
}

func TestCloseFromGoroutine(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)

	closes := 0
	frame.OnClose = func() { closes++ }

	go frame.Close()

	if !d.waitWake() {
		t.Fatal("timed out waiting for the close event")
	}
	if closes != 1 {
		t.Fatalf("closes = %d, want exactly 1", closes)
	}

	// A second queued close request is a no-op.
	frame.Close()
	d.pump()
	if closes != 1 {
		t.Errorf("closes = %d after repeat, want 1", closes)
	}
}

func TestUpdateGUIRecursesAndRefits(t *testing.T) {
	app, d := newTestApp()

	parent := gui.NewFrame(app, nil)
	child := gui.NewFrame(app, parent)

	var got []any
	parent.OnUpdateGUI = func(data any) { got = append(got, data) }
	child.OnUpdateGUI = func(data any) { got = append(got, data) }

	parent.UpdateGUI("payload")
	d.pump()

	if len(got) != 2 || got[0] != "payload" || got[1] != "payload" {
		t.Errorf("updates = %v, want payload delivered to parent and child", got)
	}
	if d.windows[0].fits != 1 {
		t.Errorf("parent fits = %d, want 1", d.windows[0].fits)
	}
	if d.windows[1].fits != 1 {
		t.Errorf("child fits = %d, want 1", d.windows[1].fits)
	}
}

func TestLayoutSetOnce(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)
	b := gui.NewButton(frame)

	layout := gui.NewVBoxLayout()
	layout.Add(b, gui.WithOpt(gui.OptAlign, gui.AlignExpand), gui.WithOpt(gui.OptStretch, 1))
	layout.AddSpace(8)
	layout.AddStretch(1)
	frame.SetLayout(layout)

	spec := d.windows[0].layout
	if spec == nil || spec.Kind != gui.LayoutVBox {
		t.Fatalf("layout spec = %+v, want a vertical box", spec)
	}
	// The frame wraps the user layout in an expanding box.
	if len(spec.Items) != 1 || spec.Items[0].Kind != gui.LayoutItemNested {
		t.Fatalf("top-level items = %+v, want one nested layout", spec.Items)
	}
	inner := spec.Items[0].Nested
	if len(inner.Items) != 3 {
		t.Fatalf("inner items = %d, want 3", len(inner.Items))
	}
	if inner.Items[0].Kind != gui.LayoutItemWidget || inner.Items[0].Stretch != 1 {
		t.Errorf("item 0 = %+v, want stretched widget", inner.Items[0])
	}
	if inner.Items[1].Kind != gui.LayoutItemSpace || inner.Items[1].SpaceW != 8 {
		t.Errorf("item 1 = %+v, want 8px space", inner.Items[1])
	}
	if inner.Items[2].Kind != gui.LayoutItemStretch {
		t.Errorf("item 2 = %+v, want stretch", inner.Items[2])
	}

	mustPanic(t, gui.ErrLayoutAlreadySet, func() {
		frame.SetLayout(gui.NewHBoxLayout())
	})
}

func TestGridLayoutSpec(t *testing.T) {
	app, d := newTestApp()
	frame := gui.NewFrame(app, nil)
	b := gui.NewButton(frame)

	grid := gui.NewGridLayout(2, 3, 4, 6)
	grid.Add(1, 2, b, gui.WithOpt(gui.OptBorderInsets, gui.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}))
	grid.AddSpace(0, 0, 10, 12)
	grid.SetRowStretch(1, 2)
	grid.SetColStretch(2, 5)
	grid.Add(9, 9, b) // outside the grid, ignored

	frame.SetLayout(grid)
	spec := d.windows[0].layout.Items[0].Nested
	if spec.Kind != gui.LayoutGrid || spec.Rows != 2 || spec.Cols != 3 {
		t.Fatalf("spec = %+v, want 2x3 grid", spec)
	}
	if spec.VGap != 4 || spec.HGap != 6 {
		t.Errorf("gaps = %d/%d, want 4/6", spec.VGap, spec.HGap)
	}
	if len(spec.Items) != 2 {
		t.Fatalf("items = %d, want 2 (out-of-grid cell ignored)", len(spec.Items))
	}
	widget := spec.Items[0]
	if widget.Row != 1 || widget.Col != 2 || widget.Border != (gui.Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}) {
		t.Errorf("widget item = %+v", widget)
	}
	if widget.Align != gui.AlignCenter {
		t.Errorf("align = %v, want the grid default AlignCenter", widget.Align)
	}
	if spec.RowStretch[1] != 2 || spec.ColStretch[2] != 5 {
		t.Errorf("stretch = %v / %v", spec.RowStretch, spec.ColStretch)
	}
}

func TestDialogShowOnce(t *testing.T) {
	app, d := newTestApp()

	dlg := gui.NewDialog(app, nil, gui.WithOpt(gui.OptTitle, "confirm"))
	okClicked := false
	dlg.OnOK = func() { okClicked = true }
	ok := dlg.CreateOKButton("OK")
	_ = dlg.CreateCancelButton("Cancel")

	layout := gui.NewHBoxLayout()
	layout.Add(ok)
	dlg.SetLayout(layout)

	win := d.windows[0]
	win.onRunModal = func() { win.buttons[0].click() }

	if result := dlg.ShowModal(); !result {
		t.Error("result = false, want true after OK")
	}
	if !okClicked {
		t.Error("OnOK hook not run")
	}
	if win.endModals != 1 {
		t.Errorf("endModals = %d, want 1", win.endModals)
	}

	d.pump()
	if !dlg.Closed() {
		t.Error("dialog should close after the modal loop ends")
	}

	mustPanic(t, gui.ErrDialogAlreadyShown, func() { dlg.ShowModal() })
}

func TestDialogCancel(t *testing.T) {
	app, d := newTestApp()

	dlg := gui.NewDialog(app, nil)
	canceled := false
	dlg.OnCancel = func() { canceled = true }
	cancel := dlg.CreateCancelButton("Cancel")

	layout := gui.NewHBoxLayout()
	layout.Add(cancel)
	dlg.SetLayout(layout)

	win := d.windows[0]
	win.onRunModal = func() { win.buttons[0].click() }

	if result := dlg.ShowModal(); result {
		t.Error("result = true, want false after Cancel")
	}
	if !canceled {
		t.Error("OnCancel hook not run")
	}
}

func TestErrorMessageDialog(t *testing.T) {
	app, d := newTestApp()

	e := gui.NewErrorMessageDialog(app, nil,
		gui.WithOpt(gui.OptMessage, "disk on fire"),
		gui.WithOpt(gui.OptTitle, "error"))
	if e.Message() != "disk on fire" {
		t.Fatalf("message = %q", e.Message())
	}

	win := d.windows[0]
	win.onRunModal = func() { win.buttons[0].click() }
	e.ShowModal()

	if len(win.texts) != 1 || win.texts[0].label != "disk on fire" {
		t.Errorf("texts = %+v, want the message text", win.texts)
	}
	if win.layout == nil {
		t.Error("error dialog should have built its own layout")
	}
	if win.modals != 1 {
		t.Errorf("modals = %d, want 1", win.modals)
	}

	mustPanic(t, gui.ErrDialogAlreadyShown, e.ShowModal)
}

func TestThemeHandedToDriver(t *testing.T) {
	custom := gui.DefaultTheme()
	custom.MenuWatchdog = time.Millisecond

	d := newMockDriver()
	app := gui.New(d, gui.WithTheme(custom))

	if d.themeSets != 1 {
		t.Fatalf("SetTheme calls = %d, want 1", d.themeSets)
	}
	if d.theme.MenuWatchdog != time.Millisecond {
		t.Errorf("driver watchdog = %v, want the custom 1ms", d.theme.MenuWatchdog)
	}
	if app.Theme().MenuWatchdog != time.Millisecond {
		t.Errorf("app watchdog = %v, want the custom 1ms", app.Theme().MenuWatchdog)
	}

	// Without options the driver still gets the defaults.
	d2 := newMockDriver()
	gui.New(d2)
	if d2.themeSets != 1 || d2.theme.MenuWatchdog != gui.DefaultTheme().MenuWatchdog {
		t.Errorf("default theme not delivered: sets=%d watchdog=%v", d2.themeSets, d2.theme.MenuWatchdog)
	}
}

func TestInitializeGuards(t *testing.T) {
	// No driver registered for the terminal backend in this test binary.
	_, err := gui.Initialize(gui.BackendTerm)
	var be *gui.BackendError
	if !errors.As(err, &be) || !errors.Is(err, gui.ErrUnknownBackend) {
		t.Fatalf("err = %v, want BackendError wrapping ErrUnknownBackend", err)
	}

	// A factory failure surfaces the backend name and the cause.
	boom := errors.New("no display")
	gui.RegisterDriver(gui.BackendNucular, func() (gui.Driver, error) {
		return nil, boom
	})
	_, err = gui.Initialize(gui.BackendNucular)
	if !errors.As(err, &be) || !errors.Is(err, boom) {
		t.Fatalf("err = %v, want BackendError wrapping the factory error", err)
	}

	gui.RegisterDriver(gui.BackendOpenGL, func() (gui.Driver, error) {
		return newMockDriver(), nil
	})
	app, err := gui.Initialize(gui.BackendOpenGL)
	if err != nil || app == nil {
		t.Fatalf("Initialize = %v, %v", app, err)
	}
	if app.Backend() != gui.BackendOpenGL {
		t.Errorf("backend = %v, want opengl", app.Backend())
	}

	// Initializing again with the same backend returns the existing App.
	again, err := gui.Initialize(gui.BackendOpenGL)
	if err != nil || again != app {
		t.Errorf("repeat Initialize = %v, %v, want the same app", again, err)
	}

	// A different backend after the first success is a hard error.
	_, err = gui.Initialize(gui.BackendTerm)
	if !errors.Is(err, gui.ErrAlreadyInitialized) {
		t.Errorf("err = %v, want ErrAlreadyInitialized", err)
	}
}
