package show

// Sequence is a finite ordered list of cue ids (§3.5/§4.7). A sequence
// may name a CueId that does not (or no longer) exist; that is a soft
// reference, skipped at render time rather than rejected here.
type Sequence struct {
	ID   SequenceId
	Name string
	Cues []CueId
}

// NewSequence constructs an empty, named sequence.
func NewSequence(id SequenceId, name string) *Sequence {
	return &Sequence{ID: id, Name: name}
}

func (s *Sequence) Add(cueID CueId) {
	s.Cues = append(s.Cues, cueID)
}

func (s *Sequence) ReplaceAt(index int, cueID CueId) error {
	if index < 0 || index >= len(s.Cues) {
		return IndexOutOfBoundsError(len(s.Cues), index)
	}
	s.Cues[index] = cueID
	return nil
}

// Remove deletes the first occurrence of cueID, no-op if absent.
func (s *Sequence) Remove(cueID CueId) {
	for i, c := range s.Cues {
		if c == cueID {
			s.Cues = append(s.Cues[:i], s.Cues[i+1:]...)
			return
		}
	}
}

func (s *Sequence) RemoveAt(index int) error {
	if index < 0 || index >= len(s.Cues) {
		return IndexOutOfBoundsError(len(s.Cues), index)
	}
	s.Cues = append(s.Cues[:index], s.Cues[index+1:]...)
	return nil
}

func (s *Sequence) Clear() {
	s.Cues = nil
}
