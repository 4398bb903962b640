// Package io reads and writes kolam patterns and request files.
//
// # JSON Format
//
// Patterns are exchanged as a single JSON object. Dots are [x, y] pairs on
// the pulli lattice; connections are pairs of dots:
//
//	{
//	  "grid_size": 7,
//	  "archetype": "flower",
//	  "symmetry": "rotational",
//	  "complexity": 5,
//	  "description": "...",
//	  "cultural_note": "...",
//	  "dots": [[3, 3], [5, 3]],
//	  "connections": [[[3, 3], [5, 3]]]
//	}
//
// Only grid_size and dots are required on import. Connections may also use
// the editor form {"start": [x, y], "end": [x, y], "type": "line"}.
//
// # Import
//
// [ReadJSON] and [ImportJSON] re-check every dot and connection against the
// grid. Entries that fall outside it, or that are not integral pairs, are
// dropped and counted in [Dropped] rather than failing the whole import.
// Duplicate dots are collapsed.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write the format above with two-space
// indentation. [Encode] returns the compact form used as a cache payload.
//
// # Request Files
//
// [LoadRequestFile] reads a TOML request:
//
//	archetype = "lotus"
//	symmetry = "radial"
//	complexity = 6
//	element_count = 8
//	grid_size = 11
//	prompt = "an intricate lotus"
//
//	[guidance]
//	pattern_type = "lotus"
//	suggested_count = 12
//
//	[render]
//	formats = ["svg", "png"]
//	style = "curved"
package io
