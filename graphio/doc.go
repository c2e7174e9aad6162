// Package graphio reads and writes graphs as documents in JSON, YAML or TOML.
//
// All three formats share one schema: an optional name, a list of vertices
// and a list of edges that reference vertices by name.
//
//	{
//	  "name": "lecture",
//	  "vertices": [{"name": "A"}, {"name": "B"}],
//	  "edges": [{"from": "A", "to": "B", "weight": -2}]
//	}
//
// Vertex IDs are optional. When every vertex omits "id", IDs are assigned
// 0,1,2,... in document order; when some vertices carry one, all must.
// Vertex names must be unique because edges refer to them. Unknown fields are
// rejected in every format.
//
// Read/Write work on streams; ReadFile/WriteFile pick the format from the
// file extension (.json, .yaml, .yml, .toml).
package graphio
