package show

import (
	"github.com/bbernstein/console-core/pkg/attribute"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// ResolveFrame implements the C8 pipeline (§4.8): merge the executor
// base layer (HTP across executors, scaled by each executor's fader
// level), overlay the programmer's attribute intents, encode every
// surviving (fixture, attribute) pair into DMX channels, and finally
// apply the programmer's direct channel overrides. Resolution is
// infallible to the caller — unresolvable references are skipped.
func ResolveFrame(s *Show) *dmx.Multiverse {
	base := make(map[FixtureAttr]attribute.Value)
	for _, ex := range s.ExecutorsByID() {
		accumulateExecutor(s, ex, base)
	}
	for key, v := range s.Programmer.Attributes() {
		base[key] = v
	}

	mv := dmx.NewMultiverse()
	for key, v := range base {
		writeAttributeValue(s, mv, key.Fid, key.Attr, v)
	}
	for addr, v := range s.Programmer.DirectValues() {
		mv.Set(addr, v)
	}
	return mv
}

func accumulateExecutor(s *Show, ex *Executor, base map[FixtureAttr]attribute.Value) {
	if ex.SequenceID == nil {
		return
	}
	seq, ok := s.Sequence(*ex.SequenceID)
	if !ok || len(seq.Cues) == 0 {
		return
	}
	cursor := ex.Cursor()
	if cursor < 0 || cursor >= len(seq.Cues) {
		return
	}
	cue, ok := s.Cue(seq.Cues[cursor])
	if !ok {
		return
	}
	level := ex.Fader.Level

	for _, recipe := range cue.Recipes {
		group, ok := s.FixtureGroup(recipe.FixtureGroup)
		if !ok {
			continue
		}
		preset, ok := s.Preset(recipe.Content.Preset)
		if !ok {
			continue
		}
		for _, fid := range group.Fixtures {
			contrib := make(map[FixtureAttr]attribute.Value)
			preset.Contribute(fid, supportedAttributes(s, fid), contrib)
			for key, v := range contrib {
				scaled := v.Scale(level)
				if existing, has := base[key]; !has || scaled.Float64() > existing.Float64() {
					base[key] = scaled
				}
			}
		}
	}
}

// supportedAttributes lists every attribute the fixture's active DMX
// mode declares a channel for, used to bound a Universal preset's
// fan-out to a single fixture.
func supportedAttributes(s *Show, fid FixtureId) []attribute.Attribute {
	f, ok := s.Patch.FixtureByFid(fid)
	if !ok || !f.Bound() {
		return nil
	}
	ft, ok := s.Patch.FixtureType(f.FixtureTypeID)
	if !ok {
		return nil
	}
	mode, ok := ft.Mode(f.DmxMode)
	if !ok {
		return nil
	}
	out := make([]attribute.Attribute, 0, len(mode.Channels))
	for _, ch := range mode.Channels {
		out = append(out, attribute.Parse(ch.Attribute))
	}
	return out
}

func writeAttributeValue(s *Show, mv *dmx.Multiverse, fid FixtureId, attr attribute.Attribute, v attribute.Value) {
	f, ok := s.Patch.FixtureByFid(fid)
	if !ok || !f.Bound() {
		return
	}
	ft, ok := s.Patch.FixtureType(f.FixtureTypeID)
	if !ok {
		return
	}
	addrs, err := ResolveChannels(f, ft, attr)
	if err != nil || len(addrs) == 0 {
		return
	}
	bytes := v.EncodeBigEndian(len(addrs))
	for i, addr := range addrs {
		mv.Set(addr, bytes[i])
	}
}
