// Package gui is a cross-toolkit GUI abstraction library: one
// application-facing API for windows, widgets, layouts, menus and tables
// that delegates to one of three backends selected once at startup.
//
// A program imports the backend packages it wants compiled in, initializes
// one of them, builds its windows and enters the main loop:
//
//	import (
//		"github.com/crossgui/gui"
//		_ "github.com/crossgui/gui/backend/opengl"
//	)
//
//	app, err := gui.Initialize(gui.BackendOpenGL)
//	if err != nil {
//		log.Fatal(err)
//	}
//	frame := gui.NewFrame(app, nil, gui.WithOpt(gui.OptTitle, "hello"))
//	button := gui.NewButton(frame, gui.WithOpt(gui.OptLabel, "Quit"))
//	button.OnClick = app.Quit
//
//	layout := gui.NewVBoxLayout()
//	layout.Add(button, gui.WithOpt(gui.OptAlign, gui.AlignCenter))
//	frame.SetLayout(layout)
//	frame.Show()
//	app.Run()
//
// All widget state lives twice: once in the abstract control and once in the
// native toolkit. Setters push to the toolkit immediately; getters backed by
// editable native controls (CheckBox.Value, TextControl.Label) re-read the
// toolkit, which owns the truth for user-editable state. Value controls
// follow a clamp-on-write policy: writes that would produce an inconsistent
// state (inverted bounds, out-of-range selection) are silently corrected or
// ignored, never reported as errors.
//
// Exactly one goroutine, the one running App.Run, may touch widgets. The
// sanctioned cross-thread entry points are App.Trigger, App.Post,
// Frame.Close and Frame.UpdateGUI, which marshal their work onto the UI
// thread through the event queue.
package gui
