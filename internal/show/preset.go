package show

import (
	"github.com/bbernstein/console-core/pkg/attribute"
)

// FixtureAttr is the (fixture, attribute) pair key used throughout the
// resolver pipeline and selective preset content.
type FixtureAttr struct {
	Fid  FixtureId
	Attr attribute.Attribute
}

// PresetContentKind discriminates the two storage disciplines a
// preset's content may use (§3.6).
type PresetContentKind int

const (
	PresetContentSelective PresetContentKind = iota
	PresetContentUniversal
)

// PresetContent is the tagged union of §3.6: either a selective
// per-(fixture,attribute) map or a universal per-attribute map. Only
// the map matching Kind is meaningful.
type PresetContent struct {
	Kind      PresetContentKind
	Selective map[FixtureAttr]attribute.Value
	Universal map[attribute.Attribute]attribute.Value
}

func newSelectiveContent() PresetContent {
	return PresetContent{Kind: PresetContentSelective, Selective: make(map[FixtureAttr]attribute.Value)}
}

func newUniversalContent() PresetContent {
	return PresetContent{Kind: PresetContentUniversal, Universal: make(map[attribute.Attribute]attribute.Value)}
}

// Preset is a named, reusable bundle of attribute values scoped to one
// feature group (§3.6). ObjectKind pins which of the nine preset
// families this preset belongs to.
type Preset struct {
	ID           uint32
	ObjectKind   ObjectKind
	Name         string
	FeatureGroup attribute.FeatureGroup
	Content      PresetContent
}

// NewPreset constructs a preset of the given family, defaulting to
// Selective content — the original executor always constructs
// PresetContent::Selective on create, regardless of feature group.
func NewPreset(kind ObjectKind, id uint32, name string) (*Preset, error) {
	index, ok := FeatureGroupOf(kind)
	if !ok {
		return nil, NotFoundError("preset family", kind.String())
	}
	groups := attribute.FeatureGroups()
	return &Preset{
		ID:           id,
		ObjectKind:   kind,
		Name:         name,
		FeatureGroup: groups[index],
		Content:      newSelectiveContent(),
	}, nil
}

// ConvertTo switches the preset's content kind, discarding any
// existing entries — used by `preset store <kind>` when the kind
// argument differs from the preset's current content kind (§4.2.1).
func (p *Preset) ConvertTo(kind PresetContentKind) {
	if p.Content.Kind == kind {
		return
	}
	switch kind {
	case PresetContentSelective:
		p.Content = newSelectiveContent()
	case PresetContentUniversal:
		p.Content = newUniversalContent()
	}
}

// SetSelectiveValue stores (fid, attr) -> v, silently dropping it if
// attr does not belong to this preset's feature group (§4.6).
func (p *Preset) SetSelectiveValue(fid FixtureId, attr attribute.Attribute, v attribute.Value) {
	if fg, ok := attr.FeatureGroup(); !ok || fg != p.FeatureGroup {
		return
	}
	if p.Content.Kind != PresetContentSelective {
		return
	}
	p.Content.Selective[FixtureAttr{Fid: fid, Attr: attr}] = v
}

// SetUniversalValue stores attr -> v, silently dropping it if attr
// does not belong to this preset's feature group (§4.6).
func (p *Preset) SetUniversalValue(attr attribute.Attribute, v attribute.Value) {
	if fg, ok := attr.FeatureGroup(); !ok || fg != p.FeatureGroup {
		return
	}
	if p.Content.Kind != PresetContentUniversal {
		return
	}
	p.Content.Universal[attr] = v
}

// Clear empties the preset's content map while preserving its feature
// group tag and content kind.
func (p *Preset) Clear() {
	switch p.Content.Kind {
	case PresetContentSelective:
		p.Content.Selective = make(map[FixtureAttr]attribute.Value)
	case PresetContentUniversal:
		p.Content.Universal = make(map[attribute.Attribute]attribute.Value)
	}
}

// Contribute appends this preset's contribution for fixture fid into
// out, per §4.6's apply-to-output contract. supportedAttrs is the set
// of attributes fid's fixture type actually exposes, used to bound a
// Universal preset's fan-out.
func (p *Preset) Contribute(fid FixtureId, supportedAttrs []attribute.Attribute, out map[FixtureAttr]attribute.Value) {
	switch p.Content.Kind {
	case PresetContentSelective:
		for key, v := range p.Content.Selective {
			if key.Fid == fid {
				out[key] = v
			}
		}
	case PresetContentUniversal:
		for _, attr := range supportedAttrs {
			if v, ok := p.Content.Universal[attr]; ok {
				out[FixtureAttr{Fid: fid, Attr: attr}] = v
			}
		}
	}
}
