// Package raster defines the integer sample grid the resampling engine
// operates on, plus the boundary conversions between that grid and standard
// Go images.
//
// A Raster is a rectangular grid of pixels; every pixel is an ordered vector
// of non-negative integer channel samples bounded by a per-image maximum
// (1, 255, or 65535, dictated by bit depth). The coordinate system has its
// origin at the top-left corner: X increases rightward, Y increases downward,
// and row 0 is the top row. Channel order is luminance/alpha or RGB/RGBA;
// when an alpha channel is present it is the last channel.
//
// # Boundary Role
//
// The resampling core never touches files or image formats. Decoding and
// encoding live here: FromImage/ToImage convert between image.Image and the
// grid, and LoadFile/SaveFile wrap them with disk I/O. Format-specific
// metadata (channel and alpha flags) is always recomputed from the grid's
// actual channel count on the way out; the core never writes metadata.
//
// # Mutability
//
// A Raster handed to the resampling core as a source is treated as read-only.
// Output rasters are freshly allocated by the core and owned by the caller.
package raster
