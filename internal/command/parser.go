package command

import (
	"strconv"

	"github.com/bbernstein/console-core/internal/show"
	"github.com/bbernstein/console-core/pkg/attribute"
	"github.com/bbernstein/console-core/pkg/dmx"
)

// Parser is a hand-rolled recursive-descent reader over a token
// stream, one grammar production (§4.2.1) per method.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse tokenizes and parses a single command line into a Command.
func Parse(src string) (Command, error) {
	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	cmd, err := p.command()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TokenEOF {
		return nil, parseErrorf(p.peek().Pos, "unexpected trailing token %q", p.peek().Text)
	}
	return cmd, nil
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) word() (string, error) {
	t := p.peek()
	if t.Kind != TokenWord {
		return "", parseErrorf(t.Pos, "expected a word, got %s", t.Kind)
	}
	p.advance()
	return t.Text, nil
}

func (p *Parser) qstring() (string, error) {
	t := p.peek()
	if t.Kind != TokenString {
		return "", parseErrorf(t.Pos, "expected a quoted string, got %s", t.Kind)
	}
	p.advance()
	return t.Text, nil
}

func (p *Parser) expectWord(w string) error {
	t := p.peek()
	if t.Kind != TokenWord || t.Text != w {
		return parseErrorf(t.Pos, "expected %q, got %q", w, t.Text)
	}
	p.advance()
	return nil
}

func (p *Parser) uint32Val() (uint32, error) {
	t := p.peek()
	w, err := p.word()
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.ParseUint(w, 10, 32)
	if convErr != nil {
		return 0, parseErrorf(t.Pos, "expected an unsigned integer, got %q", w)
	}
	return uint32(n), nil
}

func (p *Parser) intVal() (int, error) {
	n, err := p.uint32Val()
	return int(n), err
}

func (p *Parser) floatVal() (float64, error) {
	t := p.peek()
	w, err := p.word()
	if err != nil {
		return 0, err
	}
	f, convErr := strconv.ParseFloat(w, 64)
	if convErr != nil {
		return 0, parseErrorf(t.Pos, "expected a number, got %q", w)
	}
	return f, nil
}

func (p *Parser) addr() (dmx.Address, error) {
	t := p.peek()
	w, err := p.word()
	if err != nil {
		return dmx.Address{}, err
	}
	a, parseErr := dmx.ParseAddress(w)
	if parseErr != nil {
		return dmx.Address{}, parseErrorf(t.Pos, "malformed DMX address %q", w)
	}
	return a, nil
}

func (p *Parser) fid() (show.FixtureId, error) {
	t := p.peek()
	n, err := p.uint32Val()
	if err == nil && n == 0 {
		return 0, parseErrorf(t.Pos, "fixture id must be positive, got 0")
	}
	return show.FixtureId(n), err
}

func (p *Parser) presetID() (show.AnyPresetId, error) {
	t := p.peek()
	w, err := p.word()
	if err != nil {
		return show.AnyPresetId{}, err
	}
	kind, ok := presetKindFromWord(w)
	if !ok {
		return show.AnyPresetId{}, parseErrorf(t.Pos, "unknown preset family %q", w)
	}
	id, err := p.uint32Val()
	if err != nil {
		return show.AnyPresetId{}, err
	}
	return show.AnyPresetId{Kind: kind, Value: id}, nil
}

var presetKindWords = map[string]show.ObjectKind{
	"preset::dimmer":   show.ObjectKindPresetDimmer,
	"preset::position": show.ObjectKindPresetPosition,
	"preset::gobo":     show.ObjectKindPresetGobo,
	"preset::color":    show.ObjectKindPresetColor,
	"preset::beam":     show.ObjectKindPresetBeam,
	"preset::focus":    show.ObjectKindPresetFocus,
	"preset::control":  show.ObjectKindPresetControl,
	"preset::shapers":  show.ObjectKindPresetShapers,
	"preset::video":    show.ObjectKindPresetVideo,
}

func presetKindFromWord(w string) (show.ObjectKind, bool) {
	k, ok := presetKindWords[w]
	return k, ok
}

func presetWordFromKind(k show.ObjectKind) string {
	for w, kind := range presetKindWords {
		if kind == k {
			return w
		}
	}
	return "preset::unknown"
}

// command parses the top-level `command` production.
func (p *Parser) command() (Command, error) {
	t := p.peek()
	w, err := p.word()
	if err != nil {
		return nil, err
	}
	switch w {
	case "patch":
		return p.patch()
	case "programmer":
		return p.programmer()
	case "create":
		return p.create()
	case "remove":
		return p.remove()
	case "rename":
		return p.rename()
	case "executor":
		return p.execCmd()
	case "sequence":
		return p.seqCmd()
	case "cue":
		return p.cueCmd()
	case "fixture_group":
		return p.fgCmd()
	default:
		if kind, ok := presetKindFromWord(w); ok {
			id, err := p.uint32Val()
			if err != nil {
				return nil, err
			}
			return p.presetCmd(show.AnyPresetId{Kind: kind, Value: id})
		}
		return nil, parseErrorf(t.Pos, "unknown command %q", w)
	}
}

func (p *Parser) patch() (Command, error) {
	t := p.peek()
	sub, err := p.word()
	if err != nil {
		return nil, err
	}
	switch sub {
	case "add":
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		addr, err := p.addr()
		if err != nil {
			return nil, err
		}
		gdtf, err := p.qstring()
		if err != nil {
			return nil, err
		}
		mode, err := p.qstring()
		if err != nil {
			return nil, err
		}
		return PatchAdd{Fid: fid, Addr: addr, Gdtf: gdtf, Mode: mode}, nil
	case "set":
		return p.patchSet()
	case "remove":
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		return PatchRemove{Fid: fid}, nil
	default:
		return nil, parseErrorf(t.Pos, "unknown patch sub-command %q", sub)
	}
}

func (p *Parser) patchSet() (Command, error) {
	t := p.peek()
	field, err := p.word()
	if err != nil {
		return nil, err
	}
	switch field {
	case "address":
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		addr, err := p.addr()
		if err != nil {
			return nil, err
		}
		return PatchSetAddress{Fid: fid, Addr: addr}, nil
	case "gdtf":
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		name, err := p.qstring()
		if err != nil {
			return nil, err
		}
		return PatchSetGdtf{Fid: fid, Gdtf: name}, nil
	case "mode":
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		mode, err := p.qstring()
		if err != nil {
			return nil, err
		}
		return PatchSetMode{Fid: fid, Mode: mode}, nil
	default:
		return nil, parseErrorf(t.Pos, "unknown patch set field %q", field)
	}
}

func (p *Parser) programmer() (Command, error) {
	t := p.peek()
	sub, err := p.word()
	if err != nil {
		return nil, err
	}
	switch sub {
	case "attribute":
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		name, err := p.word()
		if err != nil {
			return nil, err
		}
		v, err := p.floatVal()
		if err != nil {
			return nil, err
		}
		return ProgrammerAttribute{Fid: fid, Attr: attribute.Parse(name), Value: attribute.NewValue(v)}, nil
	case "address":
		addr, err := p.addr()
		if err != nil {
			return nil, err
		}
		vt := p.peek()
		n, err := p.uint32Val()
		if err != nil {
			return nil, err
		}
		if n > 255 {
			return nil, parseErrorf(vt.Pos, "DMX value %d out of byte range", n)
		}
		return ProgrammerAddress{Addr: addr, Value: dmx.Value(n)}, nil
	case "clear":
		return ProgrammerClear{}, nil
	default:
		return nil, parseErrorf(t.Pos, "unknown programmer sub-command %q", sub)
	}
}

func (p *Parser) anyObjectId() (show.AnyObjectId, error) {
	t := p.peek()
	w, err := p.word()
	if err != nil {
		return show.AnyObjectId{}, err
	}
	if kind, ok := presetKindFromWord(w); ok {
		id, err := p.uint32Val()
		if err != nil {
			return show.AnyObjectId{}, err
		}
		return show.AnyObjectId{Kind: kind, Value: id}, nil
	}
	var kind show.ObjectKind
	switch w {
	case "executor":
		kind = show.ObjectKindExecutor
	case "sequence":
		kind = show.ObjectKindSequence
	case "cue":
		kind = show.ObjectKindCue
	case "fixture_group":
		kind = show.ObjectKindFixtureGroup
	default:
		return show.AnyObjectId{}, parseErrorf(t.Pos, "unknown object kind %q", w)
	}
	id, err := p.uint32Val()
	if err != nil {
		return show.AnyObjectId{}, err
	}
	return show.AnyObjectId{Kind: kind, Value: id}, nil
}

func (p *Parser) create() (Command, error) {
	id, err := p.anyObjectId()
	if err != nil {
		return nil, err
	}
	name := ""
	if p.peek().Kind == TokenString {
		name, err = p.qstring()
		if err != nil {
			return nil, err
		}
	}
	return Create{ID: id, Name: name}, nil
}

func (p *Parser) remove() (Command, error) {
	id, err := p.anyObjectId()
	if err != nil {
		return nil, err
	}
	return Remove{ID: id}, nil
}

func (p *Parser) rename() (Command, error) {
	id, err := p.anyObjectId()
	if err != nil {
		return nil, err
	}
	name, err := p.qstring()
	if err != nil {
		return nil, err
	}
	return Rename{ID: id, Name: name}, nil
}

func (p *Parser) execCmd() (Command, error) {
	n, err := p.uint32Val()
	if err != nil {
		return nil, err
	}
	id := show.ExecutorId(n)
	t := p.peek()
	sub, err := p.word()
	if err != nil {
		return nil, err
	}
	switch sub {
	case "button":
		bt := p.peek()
		bsub, err := p.word()
		if err != nil {
			return nil, err
		}
		switch bsub {
		case "mode":
			if err := p.expectWord("go"); err != nil {
				return nil, err
			}
			return ExecutorButtonMode{ID: id}, nil
		case "press":
			return ExecutorButtonPress{ID: id}, nil
		case "release":
			return ExecutorButtonRelease{ID: id}, nil
		default:
			return nil, parseErrorf(bt.Pos, "unknown executor button sub-command %q", bsub)
		}
	case "fader":
		ft := p.peek()
		fsub, err := p.word()
		if err != nil {
			return nil, err
		}
		switch fsub {
		case "mode":
			if err := p.expectWord("master"); err != nil {
				return nil, err
			}
			return ExecutorFaderMode{ID: id}, nil
		case "level":
			level, err := p.floatVal()
			if err != nil {
				return nil, err
			}
			return ExecutorFaderLevel{ID: id, Level: level}, nil
		default:
			return nil, parseErrorf(ft.Pos, "unknown executor fader sub-command %q", fsub)
		}
	case "sequence":
		n, err := p.uint32Val()
		if err != nil {
			return nil, err
		}
		return ExecutorSequence{ID: id, Seq: show.SequenceId(n)}, nil
	case "clear":
		return ExecutorClear{ID: id}, nil
	default:
		return nil, parseErrorf(t.Pos, "unknown executor sub-command %q", sub)
	}
}

func (p *Parser) seqCmd() (Command, error) {
	n, err := p.uint32Val()
	if err != nil {
		return nil, err
	}
	id := show.SequenceId(n)
	t := p.peek()
	sub, err := p.word()
	if err != nil {
		return nil, err
	}
	switch sub {
	case "add":
		cn, err := p.uint32Val()
		if err != nil {
			return nil, err
		}
		return SequenceAdd{ID: id, Cue: show.CueId(cn)}, nil
	case "replace_at":
		idx, err := p.intVal()
		if err != nil {
			return nil, err
		}
		cn, err := p.uint32Val()
		if err != nil {
			return nil, err
		}
		return SequenceReplaceAt{ID: id, Index: idx, Cue: show.CueId(cn)}, nil
	case "remove":
		cn, err := p.uint32Val()
		if err != nil {
			return nil, err
		}
		return SequenceRemove{ID: id, Cue: show.CueId(cn)}, nil
	case "remove_at":
		idx, err := p.intVal()
		if err != nil {
			return nil, err
		}
		return SequenceRemoveAt{ID: id, Index: idx}, nil
	case "clear":
		return SequenceClear{ID: id}, nil
	default:
		return nil, parseErrorf(t.Pos, "unknown sequence sub-command %q", sub)
	}
}

func (p *Parser) recipe() (show.Recipe, error) {
	fgn, err := p.uint32Val()
	if err != nil {
		return show.Recipe{}, err
	}
	presetID, err := p.presetID()
	if err != nil {
		return show.Recipe{}, err
	}
	return show.Recipe{
		FixtureGroup: show.FixtureGroupId(fgn),
		Content:      show.RecipeContent{Preset: presetID},
	}, nil
}

func (p *Parser) cueCmd() (Command, error) {
	n, err := p.uint32Val()
	if err != nil {
		return nil, err
	}
	id := show.CueId(n)
	t := p.peek()
	sub, err := p.word()
	if err != nil {
		return nil, err
	}
	switch sub {
	case "add":
		r, err := p.recipe()
		if err != nil {
			return nil, err
		}
		return CueAdd{ID: id, Recipe: r}, nil
	case "replace_at":
		idx, err := p.intVal()
		if err != nil {
			return nil, err
		}
		r, err := p.recipe()
		if err != nil {
			return nil, err
		}
		return CueReplaceAt{ID: id, Index: idx, Recipe: r}, nil
	case "remove_at":
		idx, err := p.intVal()
		if err != nil {
			return nil, err
		}
		return CueRemoveAt{ID: id, Index: idx}, nil
	case "clear":
		return CueClear{ID: id}, nil
	default:
		return nil, parseErrorf(t.Pos, "unknown cue sub-command %q", sub)
	}
}

func (p *Parser) fgCmd() (Command, error) {
	n, err := p.uint32Val()
	if err != nil {
		return nil, err
	}
	id := show.FixtureGroupId(n)
	t := p.peek()
	sub, err := p.word()
	if err != nil {
		return nil, err
	}
	switch sub {
	case "add":
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		return FixtureGroupAdd{ID: id, Fid: fid}, nil
	case "replace_at":
		idx, err := p.intVal()
		if err != nil {
			return nil, err
		}
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		return FixtureGroupReplaceAt{ID: id, Index: idx, Fid: fid}, nil
	case "remove":
		fid, err := p.fid()
		if err != nil {
			return nil, err
		}
		return FixtureGroupRemove{ID: id, Fid: fid}, nil
	case "remove_at":
		idx, err := p.intVal()
		if err != nil {
			return nil, err
		}
		return FixtureGroupRemoveAt{ID: id, Index: idx}, nil
	case "clear":
		return FixtureGroupClear{ID: id}, nil
	default:
		return nil, parseErrorf(t.Pos, "unknown fixture_group sub-command %q", sub)
	}
}

func (p *Parser) presetCmd(id show.AnyPresetId) (Command, error) {
	t := p.peek()
	sub, err := p.word()
	if err != nil {
		return nil, err
	}
	switch sub {
	case "store":
		var kind *show.PresetContentKind
		if p.peek().Kind == TokenWord {
			kt := p.peek()
			w, _ := p.word()
			switch w {
			case "selective":
				k := show.PresetContentSelective
				kind = &k
			case "universal":
				k := show.PresetContentUniversal
				kind = &k
			default:
				return nil, parseErrorf(kt.Pos, "unknown preset content kind %q", w)
			}
		}
		return PresetStore{ID: id, Kind: kind}, nil
	case "clear":
		return PresetClear{ID: id}, nil
	default:
		return nil, parseErrorf(t.Pos, "unknown preset sub-command %q", sub)
	}
}
