package action

// GeneralType groups the kinds that open a pending slot in the linker.
type GeneralType string

const (
	GeneralGoal     GeneralType = "goal"
	GeneralMiss     GeneralType = "miss"
	GeneralTurnover GeneralType = "turnover"
	GeneralFoul     GeneralType = "foul"
	GeneralSwimOff  GeneralType = "swimoff"
)

// generalOrder fixes the scan order of the pending set.
var generalOrder = []GeneralType{GeneralGoal, GeneralMiss, GeneralTurnover, GeneralFoul, GeneralSwimOff}

var generalByKind = map[Kind]GeneralType{
	KindGoal:       GeneralGoal,
	KindMiss:       GeneralMiss,
	KindExclusion:  GeneralFoul,
	KindTurnover:   GeneralTurnover,
	KindSwimOffWon: GeneralSwimOff,
}

type kindSet map[Kind]struct{}

func setOf(kinds ...Kind) kindSet {
	out := make(kindSet, len(kinds))
	for _, k := range kinds {
		out[k] = struct{}{}
	}
	return out
}

func (s kindSet) has(k Kind) bool {
	_, ok := s[k]
	return ok
}

// Kinds that link back to a pending action of the general type.
var referencedBy = map[GeneralType]kindSet{
	GeneralGoal:     setOf(KindAssist, KindSave),
	GeneralMiss:     setOf(KindBlock, KindSave),
	GeneralTurnover: setOf(KindSteal),
	GeneralFoul:     setOf(KindFoulDrawn),
	GeneralSwimOff:  setOf(KindSwimOffLost),
}

// Kinds that consume the pending slot once they link.
var closing = map[GeneralType]kindSet{
	GeneralGoal:     setOf(),
	GeneralMiss:     setOf(),
	GeneralTurnover: setOf(KindSteal),
	GeneralFoul:     setOf(KindFoulDrawn),
	GeneralSwimOff:  setOf(KindSwimOffLost),
}

// Kinds that pass by a pending slot without touching it.
var ignored = map[GeneralType]kindSet{
	GeneralGoal:     setOf(),
	GeneralMiss:     setOf(),
	GeneralTurnover: setOf(),
	GeneralFoul:     setOf(),
	GeneralSwimOff:  setOf(),
}

// GeneralTypeOf classifies kind; ok is false for kinds that never open a slot.
func GeneralTypeOf(kind Kind) (GeneralType, bool) {
	t, ok := generalByKind[kind]
	return t, ok
}

// References reports whether kind links back to a pending action of type t.
func References(t GeneralType, kind Kind) bool {
	return referencedBy[t].has(kind)
}

func Closes(t GeneralType, kind Kind) bool {
	return closing[t].has(kind)
}

func Ignores(t GeneralType, kind Kind) bool {
	return ignored[t].has(kind)
}
