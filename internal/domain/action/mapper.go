package action

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
	"github.com/riskibarqy/waterpolo-pbp/internal/platform/names"
)

// Provider event kinds.
const (
	EventShot      = "Shot"
	EventTurnover  = "Turnover"
	EventExclusion = "Exclusion"
	EventCard      = "Card"
	EventTimeout   = "Timeout"
	EventSwimOff   = "Swim_Off"
)

var (
	ErrUnknownEventKind = crerr.New("unknown event kind")
	ErrUnknownCardColor = crerr.New("unknown card color")
)

// Flag sub-codes; a nil entry is known but carries no qualifier.
var flagsBySubCode = map[string][]Flag{
	"Clock_Expired":  {FlagClock},
	"Lost_Ball":      {FlagLost},
	"Power_Play":     {FlagLost},
	"Penalty":        {FlagPenalty},
	"Regular_Attack": nil,
	"Offensive_Foul": {FlagOffensiveFoul},
	"Ball_Under":     {FlagBallUnder},
}

// Score is the running total after the last goal.
type Score struct {
	Home int
	Away int
}

// Mapping is the result of mapping one raw event.
type Mapping struct {
	Drafts   []Draft
	Score    Score
	Warnings []string
}

// Mapper turns raw provider events of one game into drafts. It holds no state;
// the running score is passed in and returned.
type Mapper struct {
	homeTeam string
	awayTeam string
}

func NewMapper(homeTeam, awayTeam string) Mapper {
	return Mapper{homeTeam: homeTeam, awayTeam: awayTeam}
}

// Map emits the drafts for ev in sibling order: the primary action first, then
// BLOCK, ASSIST, SAVE for shots, STEAL for turnovers, FOUL_DRAWN for
// exclusions, SWIM_OFF_LOST for swim-offs. Events with an empty kind produce
// nothing; unknown kinds and card colours return an error and no drafts.
func (m Mapper) Map(ev RawEvent, score Score) (Mapping, error) {
	out := Mapping{Score: score}

	switch ev.Kind {
	case "":
		return out, nil
	case EventShot:
		m.mapShot(ev, &out)
	case EventTurnover:
		m.mapTurnover(ev, &out)
	case EventExclusion:
		m.mapExclusion(ev, &out)
	case EventCard:
		if err := m.mapCard(ev, &out); err != nil {
			return Mapping{Score: score}, err
		}
	case EventTimeout:
		out.Drafts = append(out.Drafts, m.draft(ev, KindTimeout, ev.TeamName, nil, Flags{}, out.Score))
	case EventSwimOff:
		m.mapSwimOff(ev, &out)
	default:
		return Mapping{Score: score}, fmt.Errorf("%w: %q", ErrUnknownEventKind, ev.Kind)
	}

	return out, nil
}

func (m Mapper) mapShot(ev RawEvent, out *Mapping) {
	kind := KindMiss
	if ev.IsGoal {
		kind = KindGoal
		switch {
		case names.SameTeam(ev.TeamName, m.homeTeam):
			out.Score.Home++
		case names.SameTeam(ev.TeamName, m.awayTeam):
			out.Score.Away++
		}
	}

	flags := m.flags(ev.SubType, out)
	primary := m.draft(ev, kind, ev.TeamName, ev.Player, flags, out.Score)
	primary.TargetX, primary.TargetY = ev.X, ev.Y
	out.Drafts = append(out.Drafts, primary)

	siblings := []struct {
		kind Kind
		ref  *player.Ref
	}{
		{kind: KindBlock, ref: ev.BlockedBy},
		{kind: KindAssist, ref: ev.AssistedBy},
		{kind: KindSave, ref: ev.SavedBy},
	}
	for _, s := range siblings {
		if s.ref == nil {
			continue
		}
		d := m.draft(ev, s.kind, m.teamOf(s.ref, s.kind, ev.TeamName), s.ref, flags, out.Score)
		d.TargetX, d.TargetY = ev.X, ev.Y
		out.Drafts = append(out.Drafts, d)
	}
}

func (m Mapper) mapTurnover(ev RawEvent, out *Mapping) {
	flags := m.flags(ev.SubType, out)
	lost := m.draft(ev, KindTurnover, ev.TeamName, ev.Player, flags, out.Score)
	lost.X, lost.Y = nil, nil
	out.Drafts = append(out.Drafts, lost)

	if ev.WonPossession != nil {
		steal := m.draft(ev, KindSteal, m.teamOf(ev.WonPossession, KindSteal, ev.TeamName), ev.WonPossession, Flags{}, out.Score)
		steal.X, steal.Y = nil, nil
		out.Drafts = append(out.Drafts, steal)
	}
}

func (m Mapper) mapExclusion(ev RawEvent, out *Mapping) {
	var raw []Flag
	if ev.PenaltyExclusion {
		raw = append(raw, FlagPenaltyFoul)
	}
	if ev.DoubleExclusion {
		raw = append(raw, FlagDoubleExclusion)
	}
	flags := NewFlags(raw...)

	out.Drafts = append(out.Drafts, m.draft(ev, KindExclusion, ev.TeamName, ev.Player, flags, out.Score))
	if ev.Fouled != nil {
		out.Drafts = append(out.Drafts, m.draft(ev, KindFoulDrawn, m.teamOf(ev.Fouled, KindFoulDrawn, ev.TeamName), ev.Fouled, flags, out.Score))
	}
}

func (m Mapper) mapCard(ev RawEvent, out *Mapping) error {
	var kind Kind
	switch ev.CardColor {
	case "Yellow":
		kind = KindYellowCard
	case "Red":
		kind = KindRedCard
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCardColor, ev.CardColor)
	}

	d := m.draft(ev, kind, ev.TeamName, ev.Player, Flags{}, out.Score)
	d.X, d.Y = nil, nil
	out.Drafts = append(out.Drafts, d)
	return nil
}

func (m Mapper) mapSwimOff(ev RawEvent, out *Mapping) {
	if ev.Winner == nil {
		return
	}

	winner, loser := ev.AwaySwimmer, ev.HomeSwimmer
	winnerTeam, loserTeam := m.awayTeam, m.homeTeam
	if ev.HomeSwimmer != nil && ev.HomeSwimmer.ProviderID == ev.Winner.ProviderID {
		winner, loser = ev.HomeSwimmer, ev.AwaySwimmer
		winnerTeam, loserTeam = m.homeTeam, m.awayTeam
	}
	if winner == nil {
		winner = ev.Winner
	}

	won := m.draft(ev, KindSwimOffWon, winnerTeam, winner, Flags{}, out.Score)
	won.X, won.Y = nil, nil
	out.Drafts = append(out.Drafts, won)

	lost := m.draft(ev, KindSwimOffLost, loserTeam, loser, Flags{}, out.Score)
	lost.X, lost.Y = nil, nil
	out.Drafts = append(out.Drafts, lost)
}

func (m Mapper) draft(ev RawEvent, kind Kind, teamName string, ref *player.Ref, flags Flags, score Score) Draft {
	return Draft{
		SourceEventID:       ev.ID,
		Kind:                kind,
		Flags:               flags,
		TeamName:            teamName,
		Player:              ref,
		Period:              ev.Period,
		RemainingPeriodTime: ev.RemainingPeriodTime,
		HomeScore:           score.Home,
		AwayScore:           score.Away,
		X:                   ev.X,
		Y:                   ev.Y,
	}
}

func (m Mapper) flags(subCode string, out *Mapping) Flags {
	if subCode == "" {
		return Flags{}
	}
	flags, ok := flagsBySubCode[subCode]
	if !ok {
		out.Warnings = append(out.Warnings, fmt.Sprintf("unknown flag sub-code %q", subCode))
		return Flags{}
	}
	return NewFlags(flags...)
}

// teamOf picks the sibling player's team, falling back to the side opposite the
// primary for defensive siblings and the same side for assists.
func (m Mapper) teamOf(ref *player.Ref, kind Kind, primaryTeam string) string {
	if ref != nil && ref.TeamName != "" {
		return ref.TeamName
	}
	if kind == KindAssist {
		return primaryTeam
	}
	switch {
	case names.SameTeam(primaryTeam, m.homeTeam):
		return m.awayTeam
	case names.SameTeam(primaryTeam, m.awayTeam):
		return m.homeTeam
	default:
		return ""
	}
}
