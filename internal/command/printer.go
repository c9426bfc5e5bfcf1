package command

import (
	"fmt"
	"strconv"

	"github.com/bbernstein/console-core/internal/show"
)

// Print renders cmd back into the canonical textual form that Parse
// accepts, satisfying the parse(print(c)) == c round-trip property
// (§8.1).
func Print(cmd Command) string {
	switch c := cmd.(type) {
	case PatchAdd:
		return fmt.Sprintf("patch add %d %s %s %s", c.Fid, c.Addr, qstr(c.Gdtf), qstr(c.Mode))
	case PatchSetAddress:
		return fmt.Sprintf("patch set address %d %s", c.Fid, c.Addr)
	case PatchSetGdtf:
		return fmt.Sprintf("patch set gdtf %d %s", c.Fid, qstr(c.Gdtf))
	case PatchSetMode:
		return fmt.Sprintf("patch set mode %d %s", c.Fid, qstr(c.Mode))
	case PatchRemove:
		return fmt.Sprintf("patch remove %d", c.Fid)
	case ProgrammerAttribute:
		return fmt.Sprintf("programmer attribute %d %s %s", c.Fid, c.Attr, formatFloat(c.Value.Float64()))
	case ProgrammerAddress:
		return fmt.Sprintf("programmer address %s %d", c.Addr, c.Value)
	case ProgrammerClear:
		return "programmer clear"
	case Create:
		if c.Name == "" {
			return fmt.Sprintf("create %s", printAnyObjectId(c.ID))
		}
		return fmt.Sprintf("create %s %s", printAnyObjectId(c.ID), qstr(c.Name))
	case Remove:
		return fmt.Sprintf("remove %s", printAnyObjectId(c.ID))
	case Rename:
		return fmt.Sprintf("rename %s %s", printAnyObjectId(c.ID), qstr(c.Name))
	case ExecutorButtonMode:
		return fmt.Sprintf("executor %d button mode go", c.ID)
	case ExecutorButtonPress:
		return fmt.Sprintf("executor %d button press", c.ID)
	case ExecutorButtonRelease:
		return fmt.Sprintf("executor %d button release", c.ID)
	case ExecutorFaderMode:
		return fmt.Sprintf("executor %d fader mode master", c.ID)
	case ExecutorFaderLevel:
		return fmt.Sprintf("executor %d fader level %s", c.ID, formatFloat(c.Level))
	case ExecutorSequence:
		return fmt.Sprintf("executor %d sequence %d", c.ID, c.Seq)
	case ExecutorClear:
		return fmt.Sprintf("executor %d clear", c.ID)
	case SequenceAdd:
		return fmt.Sprintf("sequence %d add %d", c.ID, c.Cue)
	case SequenceReplaceAt:
		return fmt.Sprintf("sequence %d replace_at %d %d", c.ID, c.Index, c.Cue)
	case SequenceRemove:
		return fmt.Sprintf("sequence %d remove %d", c.ID, c.Cue)
	case SequenceRemoveAt:
		return fmt.Sprintf("sequence %d remove_at %d", c.ID, c.Index)
	case SequenceClear:
		return fmt.Sprintf("sequence %d clear", c.ID)
	case CueAdd:
		return fmt.Sprintf("cue %d add %s", c.ID, printRecipe(c.Recipe))
	case CueReplaceAt:
		return fmt.Sprintf("cue %d replace_at %d %s", c.ID, c.Index, printRecipe(c.Recipe))
	case CueRemoveAt:
		return fmt.Sprintf("cue %d remove_at %d", c.ID, c.Index)
	case CueClear:
		return fmt.Sprintf("cue %d clear", c.ID)
	case FixtureGroupAdd:
		return fmt.Sprintf("fixture_group %d add %d", c.ID, c.Fid)
	case FixtureGroupReplaceAt:
		return fmt.Sprintf("fixture_group %d replace_at %d %d", c.ID, c.Index, c.Fid)
	case FixtureGroupRemove:
		return fmt.Sprintf("fixture_group %d remove %d", c.ID, c.Fid)
	case FixtureGroupRemoveAt:
		return fmt.Sprintf("fixture_group %d remove_at %d", c.ID, c.Index)
	case FixtureGroupClear:
		return fmt.Sprintf("fixture_group %d clear", c.ID)
	case PresetStore:
		if c.Kind == nil {
			return fmt.Sprintf("%s %d store", presetWordFromKind(c.ID.Kind), c.ID.Value)
		}
		word := "selective"
		if *c.Kind == show.PresetContentUniversal {
			word = "universal"
		}
		return fmt.Sprintf("%s %d store %s", presetWordFromKind(c.ID.Kind), c.ID.Value, word)
	case PresetClear:
		return fmt.Sprintf("%s %d clear", presetWordFromKind(c.ID.Kind), c.ID.Value)
	default:
		return ""
	}
}

// qstr wraps s in the bare double-quote form the lexer expects; the
// grammar's QSTR excludes embedded quote characters entirely, so no
// escaping is performed (§4.2.1).
func qstr(s string) string {
	return "\"" + s + "\""
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func printRecipe(r show.Recipe) string {
	return fmt.Sprintf("%d %s %d", r.FixtureGroup, presetWordFromKind(r.Content.Preset.Kind), r.Content.Preset.Value)
}

func printAnyObjectId(id show.AnyObjectId) string {
	if id.Kind.IsPreset() {
		return fmt.Sprintf("%s %d", presetWordFromKind(id.Kind), id.Value)
	}
	return fmt.Sprintf("%s %d", objectKindWord(id.Kind), id.Value)
}

func objectKindWord(k show.ObjectKind) string {
	switch k {
	case show.ObjectKindExecutor:
		return "executor"
	case show.ObjectKindSequence:
		return "sequence"
	case show.ObjectKindCue:
		return "cue"
	case show.ObjectKindFixtureGroup:
		return "fixture_group"
	default:
		return "unknown"
	}
}
