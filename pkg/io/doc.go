// Package io reads skill catalogs and outlines from disk and exchanges
// computed placements as JSON.
//
// # Tabular Formats
//
// Skill catalogs are semicolon-separated files with a header row:
//
//	category;skill;y;y_aim
//	Domain;Grid operations;3;5
//	Technical;Go;8;
//	Text;Everything below is depth;;
//
// Column order is free. Rows whose category is "Text" are annotations and
// are dropped. The current level y must be a number; an empty or
// non-numeric y_aim means the skill has no target.
//
// Outlines use the same separator with x and y columns:
//
//	x;y
//	0;0
//	12;0
//	12;3
//
// The same data can be supplied as YAML or JSON lists with identical field
// names. [ImportSkills] and [ImportBoundary] pick the decoder from the file
// extension.
//
// # Placement Documents
//
// [WriteLayoutJSON] writes the result of a layout run together with the
// outline it was computed for, so that charts can be re-rendered without
// the source catalog:
//
//	{
//	  "version": 1,
//	  "mode": "current",
//	  "categories": ["Domain", "Technical", "Personal"],
//	  "boundary": [{"x": 0, "y": 0}, ...],
//	  "labels": [{"index": 0, "category": "Domain", "text": "Go", "x": 2, "y": -3}],
//	  "rounds": 1,
//	  "residual": 0
//	}
//
// [ReadLayoutJSON] validates input against an embedded JSON Schema before
// decoding, so malformed documents fail with field-level messages.
//
// # Errors
//
// Malformed input fails with DATA_LOAD_ERROR (see [errors.ErrCodeDataLoad]).
// Missing files fail with FILE_NOT_FOUND and unknown extensions with
// INVALID_FORMAT.
//
// [errors.ErrCodeDataLoad]: github.com/matzehuels/tshape/pkg/errors.ErrCodeDataLoad
package io
