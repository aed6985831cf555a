package model

// ChordKind, ScaleKind and NotesKind tag a Collection with where it came from.
// They carry no data.
type ChordKind struct{}
type ScaleKind struct{}
type NotesKind struct{}

// Collection is an ordered run of midi note numbers. Position i is the formula
// degree that produced the note, so order matters and duplicates are allowed.
type Collection[K any] []int

type Chord = Collection[ChordKind]
type Scale = Collection[ScaleKind]

// Notes is a collection with no particular provenance, e.g. read from a file.
type Notes = Collection[NotesKind]

// Formula is an ordered list of semitone offsets from a root. Element 0 is
// always 0.
type Formula []int

// Convert retags a collection without copying it.
func Convert[To, From any](c Collection[From]) Collection[To] {
	return Collection[To](c)
}
