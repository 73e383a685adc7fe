// Package plotting renders simulation results to image files via
// gonum/plot. Each renderer takes a result produced elsewhere in the
// module and a destination path; the image format follows the path
// extension (.png, .svg, .pdf, ...).
//
// Renderers validate their inputs and never mutate them. They hold no
// state between calls, so plots may be written concurrently as long as
// the paths differ.
package plotting
