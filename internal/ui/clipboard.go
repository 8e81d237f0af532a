package ui

import (
	sysclip "github.com/atotto/clipboard"

	"github.com/piwi3910/PulseBoard/internal/model"
)

// Clipboard holds styling values copied from one editor so they can be
// pasted into another. Each kind of value has its own slot, so copying a
// color does not clobber a copied font or gradient. Hex strings are the
// only values that leave the app; those go to the system clipboard.
type Clipboard struct {
	color *model.ColorSource
	font  *model.FontSource
	stops []model.GradientStop
	style *model.TransferableConfig
}

func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// CopyColor stores a color source, preserving theme-slot references so a
// paste into another panel resolves against that panel's theme.
func (c *Clipboard) CopyColor(src model.ColorSource) {
	col := src
	c.color = &col
}

func (c *Clipboard) PasteColor() (model.ColorSource, bool) {
	if c.color == nil {
		return model.ColorSource{}, false
	}
	return *c.color, true
}

func (c *Clipboard) HasColor() bool {
	return c.color != nil
}

func (c *Clipboard) CopyFont(src model.FontSource) {
	f := src
	c.font = &f
}

func (c *Clipboard) PasteFont() (model.FontSource, bool) {
	if c.font == nil {
		return model.FontSource{}, false
	}
	return *c.font, true
}

func (c *Clipboard) HasFont() bool {
	return c.font != nil
}

// CopyStops stores a gradient stop list. The slice is copied so later
// edits to the source gradient do not leak into the clipboard.
func (c *Clipboard) CopyStops(stops []model.GradientStop) {
	c.stops = append([]model.GradientStop(nil), stops...)
}

// PasteStops returns a fresh copy of the stored stops; the caller owns it.
func (c *Clipboard) PasteStops() ([]model.GradientStop, bool) {
	if c.stops == nil {
		return nil, false
	}
	return append([]model.GradientStop(nil), c.stops...), true
}

func (c *Clipboard) HasStops() bool {
	return c.stops != nil
}

// CopyStyle stores a panel's transferable style snapshot.
func (c *Clipboard) CopyStyle(cfg model.TransferableConfig) {
	c.style = &cfg
}

func (c *Clipboard) PasteStyle() (model.TransferableConfig, bool) {
	if c.style == nil {
		return model.TransferableConfig{}, false
	}
	return *c.style, true
}

func (c *Clipboard) HasStyle() bool {
	return c.style != nil
}

func (c *Clipboard) Clear() {
	c.color = nil
	c.font = nil
	c.stops = nil
	c.style = nil
}

// CopyHex writes a resolved color to the system clipboard as a hex
// string, for use outside the app.
func (c *Clipboard) CopyHex(col model.Color) error {
	return sysclip.WriteAll(col.Hex())
}
