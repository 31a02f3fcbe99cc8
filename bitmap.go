package gui

import "image"

// Bitmap displays an image and reports raw pointer events through its Mouse
// hooks.
type Bitmap struct {
	widget
	handle BitmapHandle
	img    image.Image

	// Mouse carries the pointer event hooks for this widget.
	Mouse MouseEvents
}

// NewBitmap creates an image widget inside parent displaying img (nil for an
// empty widget). Recognized options: OptEnabled, OptHidden.
func NewBitmap(parent Container, img image.Image, opts ...Option) *Bitmap {
	o := applyOptions(opts)
	b := &Bitmap{
		widget: newWidget(parent, o),
		img:    img,
	}
	b.handle = b.win.handle.NewBitmap(BitmapConfig{
		Image:   img,
		Enabled: b.enabled,
		Hidden:  b.hidden,
		Mouse:   b.Mouse.callbacks(),
	})
	b.attach(b.handle)
	return b
}

// Image returns the displayed image.
func (b *Bitmap) Image() image.Image { return b.img }

// SetImage replaces the displayed image.
func (b *Bitmap) SetImage(img image.Image) {
	b.img = img
	b.handle.SetImage(img)
}
