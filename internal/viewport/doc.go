// Package viewport maps a rectangular data-space window onto a pixel area.
//
// An [Engine] owns the current [Viewport] and changes it through three
// operations:
//
//   - [Engine.AutoFit]: bound a point set plus a proportional margin
//   - [Engine.ZoomAt]: scale the bounds at a fractional screen position
//   - [Engine.PanByPixels]: shift the bounds by a pointer delta
//
// Every stored viewport is finite with XMin < XMax and YMin < YMax. An
// operation whose result would break that keeps the previous viewport.
//
// Screen fractions and pixel offsets use the top-down convention: y grows
// downwards on screen and upwards in data space.
package viewport
