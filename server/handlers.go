package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/fingering"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
	"github.com/jsphweid/fretdex/theoryerr"
	"github.com/pkg/errors"
)

// pitchInput reads ?name=&octave=, ?mnn= or ?freq=, in that order.
func pitchInput(r *http.Request) (pitch.Input, error) {
	q := r.URL.Query()
	switch {
	case q.Get("name") != "":
		octave, err := intParam(r, "octave", 4)
		if err != nil {
			return nil, err
		}
		return pitch.ByNameOctave{Name: q.Get("name"), Octave: octave}, nil
	case q.Get("mnn") != "":
		mnn, err := intParam(r, "mnn", 0)
		if err != nil {
			return nil, err
		}
		return pitch.ByMnn(mnn), nil
	case q.Get("freq") != "":
		freq, err := strconv.ParseFloat(q.Get("freq"), 64)
		if err != nil {
			return nil, errors.Wrapf(theoryerr.ErrInvalidFrequency, "freq=%q", q.Get("freq"))
		}
		return pitch.ByFrequency(freq), nil
	}
	return nil, errors.Wrap(theoryerr.ErrInvalidArgument, "need name, mnn or freq")
}

func (s *Server) handlePitch(w http.ResponseWriter, r *http.Request) {
	in, err := pitchInput(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := pitch.Resolve(in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.PitchResponse{Pitch: p})
}

// parsePitch takes either a midi note number or scientific notation.
func parsePitch(v string) (model.Pitch, error) {
	if mnn, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		return pitch.FromMnn(mnn)
	}
	return pitch.Parse(v)
}

func pitchesOf[K any](c model.Collection[K]) []model.Pitch {
	var res []model.Pitch
	for _, mnn := range c {
		if p, err := pitch.FromMnn(mnn); err == nil {
			res = append(res, p)
		}
	}
	return res
}

func collectionResponse[K any](name string, root model.Pitch, c model.Collection[K]) model.CollectionResponse {
	return model.CollectionResponse{
		Name:      name,
		Root:      root,
		Notes:     c,
		Pitches:   pitchesOf(c),
		Inversion: chord.InversionNumber(c),
		Key:       chord.CreateChordKey(c),
	}
}

func rootParams(r *http.Request) (string, int, error) {
	root := r.URL.Query().Get("root")
	if root == "" {
		root = "C"
	}
	octave, err := intParam(r, "octave", 4)
	return root, octave, err
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	rootName, octave, err := rootParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	inversion, err := intParam(r, "inversion", 0)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := s.Store().Chord(rootName, octave, name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if inversion != 0 {
		chord.InvertInPlace(c, inversion)
	}
	root, _ := pitch.FromNameOctave(rootName, octave)
	writeJSON(w, http.StatusOK, collectionResponse(name, root, c))
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	rootName, octave, err := rootParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sc, err := s.Store().Scale(rootName, octave, name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	root, _ := pitch.FromNameOctave(rootName, octave)
	writeJSON(w, http.StatusOK, collectionResponse(name, root, sc))
}

func (s *Server) handleInversion(w http.ResponseWriter, r *http.Request) {
	var input model.InversionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, errors.Wrap(theoryerr.ErrInvalidArgument, "could not decode request body: "+err.Error()))
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, r, errors.Wrap(theoryerr.ErrInvalidArgument, "no notes"))
		return
	}

	inverted := chord.InvertAsNew(model.Chord(input.Notes), input.N)
	writeJSON(w, http.StatusOK, model.InversionResponse{
		Notes:     inverted,
		Inversion: chord.InversionNumber(inverted),
	})
}

func (s *Server) handleInterval(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parsePitch(q.Get("from"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := parsePitch(q.Get("to"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	style, err := interval.ParseStyle(q.Get("style"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	d, err := interval.Describe(from, to, style)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.IntervalResponse{From: from, To: to, Interval: d})
}

func (s *Server) handleFingering(w http.ResponseWriter, r *http.Request) {
	st := s.Store()
	tuning, err := st.Tuning(mux.Vars(r)["name"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	rootName, octave, err := rootParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	var notes []int
	switch {
	case q.Get("chord") != "":
		notes, err = st.Chord(rootName, octave, q.Get("chord"))
	case q.Get("scale") != "":
		notes, err = st.Scale(rootName, octave, q.Get("scale"))
	default:
		err = errors.Wrap(theoryerr.ErrInvalidArgument, "need chord or scale")
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	f, err := fingering.For(tuning, model.Notes(notes))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.FingeringResponse{Tuning: tuning.Name, Notes: notes, Fingering: f})
}
