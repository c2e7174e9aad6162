// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// impl_lecture.go - the two fixed reference graphs used throughout tests,
// examples and `shortpath demo`.
//
// Both use fixed vertex names (cfg.idFn and cfg.weightFn are ignored) and a
// fixed declaration order, so vertex IDs are stable:
//
//	Lecture:      A B C D E F G H I J K  L  M  N  O  P  R  S   (no Q)
//	              0 1 2 3 4 5 6 7 8 9 10 11 12 13 14 15 16 17
//	LectureSmall: A B C D
//
// Shortest distances from A in Lecture (no negative cycle):
//
//	A0 B2 C5 D12 E8 F6 G9 H10 I11 J10 K11 L7 M8 N15 O2 P14 R10 S6

package builder

import "github.com/katalvlaran/shortpath/core"

const (
	methodLecture      = "Lecture"
	methodLectureSmall = "LectureSmall"
)

type fixedEdge struct {
	from, to string
	w        int64
}

var lectureVertices = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P", "R", "S"}

var lectureEdges = []fixedEdge{
	{"A", "B", 2}, {"A", "C", 6}, {"A", "D", 12},
	{"B", "E", 9}, {"B", "C", 3},
	{"C", "F", 1},
	{"D", "H", -2},
	{"E", "G", 1},
	{"F", "H", 4}, {"F", "E", 2},
	{"G", "I", 2},
	{"H", "I", 3}, {"H", "K", 1}, {"H", "L", -3}, {"H", "M", -2},
	{"I", "J", -1},
	{"J", "N", 5},
	{"K", "J", 0}, {"K", "O", -9},
	{"L", "P", 7},
	{"M", "L", 2}, {"M", "R", 2},
	{"N", "O", 0}, {"N", "S", -9},
	{"O", "S", 11},
	{"P", "S", -6},
	{"R", "S", 3},
}

var lectureSmallVertices = []string{"A", "B", "C", "D"}

// B→C appears twice; the second edge is shadowed by the first.
var lectureSmallEdges = []fixedEdge{
	{"A", "B", 5}, {"A", "C", 4}, {"B", "C", -2}, {"B", "C", -2}, {"B", "D", 3}, {"C", "D", 4},
}

// Lecture returns a Constructor for the 18-vertex, 27-edge reference graph.
func Lecture() Constructor {
	return fixed(methodLecture, lectureVertices, lectureEdges)
}

// LectureSmall returns a Constructor for the 4-vertex graph with a
// duplicated B→C edge. Shortest distances from A: A0 B5 C3 D7.
func LectureSmall() Constructor {
	return fixed(methodLectureSmall, lectureSmallVertices, lectureSmallEdges)
}

func fixed(method string, vertices []string, edges []fixedEdge) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		for _, name := range vertices {
			declare(b, name)
		}
		for _, e := range edges {
			b.Edge(e.from, e.to, e.w)
		}
		return finish(method, b)
	}
}
