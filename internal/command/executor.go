package command

import (
	"github.com/bbernstein/console-core/internal/show"
)

// Execute applies cmd to s atomically (§4.3): on error, no observable
// state change occurs. Patch sub-commands are each wrapped in their
// own start_edit/save_edit transaction so the textual language itself
// never exposes the two-phase discipline of §3.4.
func Execute(s *show.Show, cmd Command) error {
	switch c := cmd.(type) {
	case PatchAdd:
		return runPatchEdit(s, func() error {
			return s.Patch.AddFixture(c.Fid, c.Addr, c.Gdtf, c.Mode, "")
		})
	case PatchSetAddress:
		return runPatchEdit(s, func() error { return s.Patch.SetAddress(c.Fid, c.Addr) })
	case PatchSetGdtf:
		return runPatchEdit(s, func() error { return s.Patch.SetGdtf(c.Fid, c.Gdtf) })
	case PatchSetMode:
		return runPatchEdit(s, func() error { return s.Patch.SetMode(c.Fid, c.Mode) })
	case PatchRemove:
		return runPatchEdit(s, func() error { return s.Patch.RemoveFixture(c.Fid) })

	case ProgrammerAttribute:
		s.Programmer.SetAttributeValue(c.Fid, c.Attr, c.Value)
		return nil
	case ProgrammerAddress:
		s.Programmer.SetDmxValue(c.Addr, c.Value)
		return nil
	case ProgrammerClear:
		s.Programmer.Clear()
		return nil

	case Create:
		return executeCreate(s, c)
	case Remove:
		s.RemoveObject(c.ID)
		return nil
	case Rename:
		return s.RenameObject(c.ID, c.Name)

	case ExecutorButtonMode:
		_, err := requireExecutor(s, c.ID)
		return err
	case ExecutorButtonPress:
		e, err := requireExecutor(s, c.ID)
		if err != nil {
			return err
		}
		if e.Press() && e.SequenceID != nil {
			if seq, ok := s.Sequence(*e.SequenceID); ok {
				e.Advance(len(seq.Cues))
			}
		}
		return nil
	case ExecutorButtonRelease:
		e, err := requireExecutor(s, c.ID)
		if err != nil {
			return err
		}
		e.Release()
		return nil
	case ExecutorFaderMode:
		_, err := requireExecutor(s, c.ID)
		return err
	case ExecutorFaderLevel:
		e, err := requireExecutor(s, c.ID)
		if err != nil {
			return err
		}
		e.SetLevel(c.Level)
		return nil
	case ExecutorSequence:
		e, err := requireExecutor(s, c.ID)
		if err != nil {
			return err
		}
		seq := c.Seq
		e.SetSequence(&seq)
		return nil
	case ExecutorClear:
		e, err := requireExecutor(s, c.ID)
		if err != nil {
			return err
		}
		e.SetSequence(nil)
		e.Release()
		e.SetLevel(0)
		return nil

	case SequenceAdd:
		seq, err := requireSequence(s, c.ID)
		if err != nil {
			return err
		}
		seq.Add(c.Cue)
		return nil
	case SequenceReplaceAt:
		seq, err := requireSequence(s, c.ID)
		if err != nil {
			return err
		}
		return seq.ReplaceAt(c.Index, c.Cue)
	case SequenceRemove:
		seq, err := requireSequence(s, c.ID)
		if err != nil {
			return err
		}
		seq.Remove(c.Cue)
		return nil
	case SequenceRemoveAt:
		seq, err := requireSequence(s, c.ID)
		if err != nil {
			return err
		}
		return seq.RemoveAt(c.Index)
	case SequenceClear:
		seq, err := requireSequence(s, c.ID)
		if err != nil {
			return err
		}
		seq.Clear()
		return nil

	case CueAdd:
		cue, err := requireCue(s, c.ID)
		if err != nil {
			return err
		}
		cue.Add(c.Recipe)
		return nil
	case CueReplaceAt:
		cue, err := requireCue(s, c.ID)
		if err != nil {
			return err
		}
		return cue.ReplaceAt(c.Index, c.Recipe)
	case CueRemoveAt:
		cue, err := requireCue(s, c.ID)
		if err != nil {
			return err
		}
		return cue.RemoveAt(c.Index)
	case CueClear:
		cue, err := requireCue(s, c.ID)
		if err != nil {
			return err
		}
		cue.Clear()
		return nil

	case FixtureGroupAdd:
		g, err := requireFixtureGroup(s, c.ID)
		if err != nil {
			return err
		}
		g.Add(c.Fid)
		return nil
	case FixtureGroupReplaceAt:
		g, err := requireFixtureGroup(s, c.ID)
		if err != nil {
			return err
		}
		return g.ReplaceAt(c.Index, c.Fid)
	case FixtureGroupRemove:
		g, err := requireFixtureGroup(s, c.ID)
		if err != nil {
			return err
		}
		g.Remove(c.Fid)
		return nil
	case FixtureGroupRemoveAt:
		g, err := requireFixtureGroup(s, c.ID)
		if err != nil {
			return err
		}
		return g.RemoveAt(c.Index)
	case FixtureGroupClear:
		g, err := requireFixtureGroup(s, c.ID)
		if err != nil {
			return err
		}
		g.Clear()
		return nil

	case PresetStore:
		return executePresetStore(s, c)
	case PresetClear:
		p, ok := s.Preset(c.ID)
		if !ok {
			return show.NotFoundError(c.ID.Kind.String(), c.ID.String())
		}
		p.Clear()
		return nil

	default:
		return show.NotFoundError("command", "unrecognized")
	}
}

func runPatchEdit(s *show.Show, mutate func() error) error {
	s.Patch.StartEdit()
	if err := mutate(); err != nil {
		s.Patch.DiscardEdit()
		return err
	}
	if err := s.Patch.SaveEdit(); err != nil {
		s.Patch.DiscardEdit()
		return err
	}
	return nil
}

func executeCreate(s *show.Show, c Create) error {
	switch {
	case c.ID.Kind == show.ObjectKindExecutor:
		return s.CreateExecutor(show.ExecutorId(c.ID.Value), c.Name)
	case c.ID.Kind == show.ObjectKindSequence:
		return s.CreateSequence(show.SequenceId(c.ID.Value), c.Name)
	case c.ID.Kind == show.ObjectKindCue:
		return s.CreateCue(show.CueId(c.ID.Value), c.Name)
	case c.ID.Kind == show.ObjectKindFixtureGroup:
		return s.CreateFixtureGroup(show.FixtureGroupId(c.ID.Value), c.Name)
	case c.ID.Kind.IsPreset():
		return s.CreatePreset(c.ID.Kind, c.ID.Value, c.Name)
	default:
		return show.NotFoundError(c.ID.Kind.String(), c.ID.String())
	}
}

func executePresetStore(s *show.Show, c PresetStore) error {
	p, ok := s.Preset(c.ID)
	if !ok {
		return show.NotFoundError(c.ID.Kind.String(), c.ID.String())
	}
	if c.Kind != nil {
		p.ConvertTo(*c.Kind)
	}
	for key, v := range s.Programmer.Attributes() {
		switch p.Content.Kind {
		case show.PresetContentSelective:
			p.SetSelectiveValue(key.Fid, key.Attr, v)
		case show.PresetContentUniversal:
			p.SetUniversalValue(key.Attr, v)
		}
	}
	return nil
}

func requireExecutor(s *show.Show, id show.ExecutorId) (*show.Executor, error) {
	e, ok := s.Executor(id)
	if !ok {
		return nil, show.NotFoundError("executor", show.AnyObjectId{Kind: show.ObjectKindExecutor, Value: uint32(id)}.String())
	}
	return e, nil
}

func requireSequence(s *show.Show, id show.SequenceId) (*show.Sequence, error) {
	sq, ok := s.Sequence(id)
	if !ok {
		return nil, show.NotFoundError("sequence", show.AnyObjectId{Kind: show.ObjectKindSequence, Value: uint32(id)}.String())
	}
	return sq, nil
}

func requireCue(s *show.Show, id show.CueId) (*show.Cue, error) {
	c, ok := s.Cue(id)
	if !ok {
		return nil, show.NotFoundError("cue", show.AnyObjectId{Kind: show.ObjectKindCue, Value: uint32(id)}.String())
	}
	return c, nil
}

func requireFixtureGroup(s *show.Show, id show.FixtureGroupId) (*show.FixtureGroup, error) {
	g, ok := s.FixtureGroup(id)
	if !ok {
		return nil, show.NotFoundError("fixture_group", show.AnyObjectId{Kind: show.ObjectKindFixtureGroup, Value: uint32(id)}.String())
	}
	return g, nil
}
