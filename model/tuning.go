package model

type Gauge string

const (
	GaugeThin   Gauge = "thin"
	GaugeMedium Gauge = "medium"
	GaugeThick  Gauge = "thick"
	GaugeBig    Gauge = "big"
)

func (g Gauge) Valid() bool {
	switch g {
	case GaugeThin, GaugeMedium, GaugeThick, GaugeBig:
		return true
	}
	return false
}

type InstrumentString struct {
	OpenNoteName   string `json:"open_note_name" dynamodbav:"open_note_name"`
	OpenNoteOctave int    `json:"open_note_octave" dynamodbav:"open_note_octave"`
	NumberOfFrets  int    `json:"number_of_frets" dynamodbav:"number_of_frets"`
	Gauge          Gauge  `json:"string_gauge" dynamodbav:"string_gauge"`
}

// Tuning lists strings in stored order; string 1 is Strings[0].
type Tuning struct {
	Name    string             `json:"name" dynamodbav:"name"`
	Strings []InstrumentString `json:"strings" dynamodbav:"strings"`
}

type Finger int

const (
	FingerUnset Finger = iota
	FingerThumb
	FingerIndex
	FingerMiddle
	FingerRing
	FingerPinky
)

// Unused marks a fret whose pitch is not part of the queried collection.
const Unused = -1

type FrettedNote struct {
	Mnn           int    `json:"mnn"`
	IntervalIndex int    `json:"interval_index"`
	String        int    `json:"string"`
	Fret          int    `json:"fret"`
	Finger        Finger `json:"finger"`
}

func (n FrettedNote) IsUnused() bool {
	return n.Mnn == Unused
}

// Fingering has one row per string, each row one entry per fret.
type Fingering = [][]FrettedNote
