package templates

import "strings"

// Kind identifies one of the built-in visual layouts. The set is closed:
// every stored template id parses to a Kind, unknown ids fall back to
// Default so a stale or corrupted id can never fail a render.
type Kind int

const (
	LabProtocol Kind = iota
	Executive
	MonoStack
	CleanSlate
	BoldImpact
	CompactPro
)

// Default is the fallback layout for unrecognized template ids.
const Default = LabProtocol

var kindIDs = map[Kind]string{
	LabProtocol: "lab-protocol",
	Executive:   "the-executive",
	MonoStack:   "mono-stack",
	CleanSlate:  "clean-slate",
	BoldImpact:  "bold-impact",
	CompactPro:  "compact-pro",
}

var kindNames = map[Kind]string{
	LabProtocol: "Lab Protocol",
	Executive:   "The Executive",
	MonoStack:   "Mono Stack",
	CleanSlate:  "Clean Slate",
	BoldImpact:  "Bold Impact",
	CompactPro:  "Compact Pro",
}

// ParseKind resolves a stored template id. The second return reports whether
// the id was recognized; either way the Kind is renderable.
func ParseKind(id string) (Kind, bool) {
	id = strings.TrimSpace(strings.ToLower(id))
	for k, kid := range kindIDs {
		if kid == id {
			return k, true
		}
	}
	return Default, false
}

// ID returns the stable string id persisted on documents.
func (k Kind) ID() string {
	if id, ok := kindIDs[k]; ok {
		return id
	}
	return kindIDs[Default]
}

// Name returns the display name shown in the template selector.
func (k Kind) Name() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return kindNames[Default]
}

// Kinds lists every layout in selector order.
func Kinds() []Kind {
	return []Kind{LabProtocol, Executive, MonoStack, CleanSlate, BoldImpact, CompactPro}
}
