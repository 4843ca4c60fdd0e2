package action

// Linker numbers the actions of one game and threads back references through a
// pending set holding, per general type, the number of the newest action of
// that type still open for linking. A Linker is not safe for concurrent use.
type Linker struct {
	homeTeamID string
	awayTeamID string
	pending    map[GeneralType]int
	actions    []Action
}

func NewLinker(homeTeamID, awayTeamID string) *Linker {
	return &Linker{
		homeTeamID: homeTeamID,
		awayTeamID: awayTeamID,
		pending:    make(map[GeneralType]int, len(generalOrder)),
	}
}

// Append links a, assigns its number and opponent, records it and returns the
// stored copy.
func (l *Linker) Append(a Action) Action {
	a.LinkedActionNumber = nil

	var closed []GeneralType
	for _, t := range generalOrder {
		number, open := l.pending[t]
		if !open {
			continue
		}
		if References(t, a.Kind) {
			linked := number
			a.LinkedActionNumber = &linked
		}
		if Ignores(t, a.Kind) {
			continue
		}
		if Closes(t, a.Kind) || !References(t, a.Kind) {
			closed = append(closed, t)
		}
	}
	for _, t := range closed {
		delete(l.pending, t)
	}

	a.OpponentID = l.opponentOf(a.TeamID)
	a.ActionNumber = len(l.actions) + 1
	l.actions = append(l.actions, a)

	if t, ok := GeneralTypeOf(a.Kind); ok {
		l.pending[t] = a.ActionNumber
	}

	return a
}

func (l *Linker) opponentOf(teamID string) string {
	switch {
	case teamID == "":
		return ""
	case teamID == l.homeTeamID:
		return l.awayTeamID
	case teamID == l.awayTeamID:
		return l.homeTeamID
	default:
		return ""
	}
}

// Actions returns the appended actions in order.
func (l *Linker) Actions() []Action {
	out := make([]Action, len(l.actions))
	copy(out, l.actions)
	return out
}

// Pending returns a snapshot of the open slots.
func (l *Linker) Pending() map[GeneralType]int {
	out := make(map[GeneralType]int, len(l.pending))
	for t, n := range l.pending {
		out[t] = n
	}
	return out
}
