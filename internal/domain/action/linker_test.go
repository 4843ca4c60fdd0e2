package action

import "testing"

const (
	home = "team-home"
	away = "team-away"
)

func act(kind Kind, teamID string) Action {
	return Action{Kind: kind, TeamID: teamID}
}

func linkedNumber(a Action) int {
	if a.LinkedActionNumber == nil {
		return 0
	}
	return *a.LinkedActionNumber
}

func TestLinker_TurnoverThenSteal(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	turnover := l.Append(act(KindTurnover, home))
	steal := l.Append(act(KindSteal, away))

	if turnover.ActionNumber != 1 || turnover.LinkedActionNumber != nil {
		t.Fatalf("unexpected turnover %+v", turnover)
	}
	if steal.ActionNumber != 2 || linkedNumber(steal) != 1 {
		t.Fatalf("expected steal #2 linked to 1, got #%d -> %d", steal.ActionNumber, linkedNumber(steal))
	}
	if len(l.Pending()) != 0 {
		t.Fatalf("expected empty pending set, got %v", l.Pending())
	}
}

func TestLinker_GoalAssistThenMiss(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	goal := l.Append(act(KindGoal, home))
	assist := l.Append(act(KindAssist, home))
	miss := l.Append(act(KindMiss, away))

	if goal.LinkedActionNumber != nil {
		t.Fatalf("goal must not link")
	}
	if linkedNumber(assist) != 1 {
		t.Fatalf("assist linked to %d, want 1", linkedNumber(assist))
	}
	if miss.ActionNumber != 3 || miss.LinkedActionNumber != nil {
		t.Fatalf("unexpected miss %+v", miss)
	}

	pending := l.Pending()
	if len(pending) != 1 || pending[GeneralMiss] != 3 {
		t.Fatalf("pending = %v, want {miss: 3}", pending)
	}
}

func TestLinker_GoalStaysOpenForSaveAndAssist(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	l.Append(act(KindGoal, home))
	assist := l.Append(act(KindAssist, home))
	save := l.Append(act(KindSave, away))

	if linkedNumber(assist) != 1 || linkedNumber(save) != 1 {
		t.Fatalf("expected assist and save to link to 1, got %d and %d", linkedNumber(assist), linkedNumber(save))
	}
	if l.Pending()[GeneralGoal] != 1 {
		t.Fatalf("goal slot must stay open, pending = %v", l.Pending())
	}
}

func TestLinker_MissBlockedAndSaved(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	l.Append(act(KindMiss, home))
	block := l.Append(act(KindBlock, away))
	save := l.Append(act(KindSave, away))

	if linkedNumber(block) != 1 || linkedNumber(save) != 1 {
		t.Fatalf("expected block and save linked to 1, got %d and %d", linkedNumber(block), linkedNumber(save))
	}
}

func TestLinker_PenaltyExclusionDoesNotLinkToGoal(t *testing.T) {
	t.Parallel()

	m := NewMapper("Home", "Away")
	l := NewLinker(home, away)

	ex, err := m.Map(RawEvent{ID: "1", Kind: EventExclusion, TeamName: "Away", PenaltyExclusion: true}, Score{})
	if err != nil {
		t.Fatalf("map exclusion: %v", err)
	}
	if len(ex.Drafts) != 1 || !ex.Drafts[0].Flags.Has(FlagPenaltyFoul) {
		t.Fatalf("expected one PENALTY_FOUL exclusion, got %+v", ex.Drafts)
	}
	exclusion := l.Append(Action{Kind: ex.Drafts[0].Kind, TeamID: away, Flags: ex.Drafts[0].Flags})
	goal := l.Append(act(KindGoal, home))

	if exclusion.ActionNumber != 1 || goal.ActionNumber != 2 {
		t.Fatalf("unexpected numbering %d, %d", exclusion.ActionNumber, goal.ActionNumber)
	}
	if goal.LinkedActionNumber != nil {
		t.Fatalf("goal must not link to the exclusion")
	}
	if _, open := l.Pending()[GeneralFoul]; open {
		t.Fatalf("foul slot must be closed by the goal")
	}
}

func TestLinker_ExclusionFoulDrawnClosesSlot(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	l.Append(act(KindExclusion, away))
	drawn := l.Append(act(KindFoulDrawn, home))
	again := l.Append(act(KindFoulDrawn, home))

	if linkedNumber(drawn) != 1 {
		t.Fatalf("foul drawn linked to %d, want 1", linkedNumber(drawn))
	}
	if again.LinkedActionNumber != nil {
		t.Fatalf("second foul drawn must not link, slot was closed")
	}
}

func TestLinker_SwimOff(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	l.Append(act(KindSwimOffWon, home))
	lost := l.Append(act(KindSwimOffLost, away))

	if linkedNumber(lost) != 1 {
		t.Fatalf("swim-off lost linked to %d, want 1", linkedNumber(lost))
	}
	if len(l.Pending()) != 0 {
		t.Fatalf("expected empty pending set, got %v", l.Pending())
	}
}

func TestLinker_NewerPendingSupersedes(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	l.Append(act(KindGoal, home))
	l.Append(act(KindGoal, away))
	save := l.Append(act(KindSave, home))

	if linkedNumber(save) != 2 {
		t.Fatalf("save linked to %d, want newest goal 2", linkedNumber(save))
	}
}

func TestLinker_UnrelatedActionClosesEverything(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	l.Append(act(KindTurnover, home))
	l.Append(act(KindTimeout, away))
	steal := l.Append(act(KindSteal, away))

	if steal.LinkedActionNumber != nil {
		t.Fatalf("steal after timeout must not link")
	}
}

func TestLinker_OpponentAndDenseNumbering(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	kinds := []Kind{KindGoal, KindAssist, KindMiss, KindBlock, KindTurnover, KindSteal, KindTimeout, KindYellowCard}
	teams := []string{home, home, away, home, away, home, "", "team-elsewhere"}
	for i, k := range kinds {
		l.Append(act(k, teams[i]))
	}

	for i, a := range l.Actions() {
		if a.ActionNumber != i+1 {
			t.Fatalf("action %d has number %d", i, a.ActionNumber)
		}
		if a.LinkedActionNumber != nil {
			linked := *a.LinkedActionNumber
			if linked >= a.ActionNumber {
				t.Fatalf("action %d links forward to %d", a.ActionNumber, linked)
			}
			target := l.Actions()[linked-1]
			gt, ok := GeneralTypeOf(target.Kind)
			if !ok || !References(gt, a.Kind) {
				t.Fatalf("action %d (%s) links to %s which does not accept it", a.ActionNumber, a.Kind, target.Kind)
			}
		}

		var want string
		switch a.TeamID {
		case home:
			want = away
		case away:
			want = home
		}
		if a.OpponentID != want {
			t.Fatalf("action %d team %q opponent %q, want %q", a.ActionNumber, a.TeamID, a.OpponentID, want)
		}
	}
}

func TestLinker_IgnoresIncomingLinkAndNumber(t *testing.T) {
	t.Parallel()

	l := NewLinker(home, away)
	stale := 99
	got := l.Append(Action{Kind: KindGoal, TeamID: home, ActionNumber: 42, LinkedActionNumber: &stale})
	if got.ActionNumber != 1 || got.LinkedActionNumber != nil {
		t.Fatalf("expected fresh numbering, got %+v", got)
	}
}
