package model

import "fmt"

// Pitch is one note in all three representations at once. Only the pitch
// package builds these.
type Pitch struct {
	Name      string  `json:"name"`
	Octave    int     `json:"octave"`
	Mnn       int     `json:"mnn"`
	Frequency float64 `json:"frequency"`
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v%v", p.Name, p.Octave)
}

type IntervalDescription struct {
	Semitones int    `json:"semitones"`
	Octaves   int    `json:"octaves"`
	Name      string `json:"name"`
}
