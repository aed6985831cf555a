package model

type PitchResponse struct {
	Pitch Pitch `json:"pitch"`
}

type CollectionResponse struct {
	Name      string  `json:"name"`
	Root      Pitch   `json:"root"`
	Notes     []int   `json:"notes"`
	Pitches   []Pitch `json:"pitches,omitempty"`
	Inversion int     `json:"inversion"`
	Key       string  `json:"key"`
}

type InversionRequestBody struct {
	Notes []int `json:"notes"`
	N     int   `json:"n"`
}

type InversionResponse struct {
	Notes     []int `json:"notes"`
	Inversion int   `json:"inversion"`
}

type IntervalResponse struct {
	From     Pitch               `json:"from"`
	To       Pitch               `json:"to"`
	Interval IntervalDescription `json:"interval"`
}

type FingeringResponse struct {
	Tuning    string    `json:"tuning"`
	Notes     []int     `json:"notes"`
	Fingering Fingering `json:"fingering"`
}

type NamesResponse struct {
	Names []string `json:"names"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
