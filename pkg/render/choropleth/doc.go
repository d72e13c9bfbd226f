// Package choropleth converts region geometry and a value map into placed
// visual artifacts: centered labels with optional pie glyphs, a rank-ordered
// bar panel, and leader-line callouts with viewport expansion. The sink
// subpackage assembles the artifacts into a self-contained SVG.
package choropleth
