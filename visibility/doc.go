// Package visibility provides sources of the "this item is now observable" signal
// consumed by progressive loaders.
//
// Trigger is a plain signal that can be fired by hand. Viewport models a
// vertically scrolled list: it keeps one Trigger per placed region and fires it
// whenever the region enters the viewport, expanded by a root margin, by at
// least the threshold ratio of its height.
package visibility
