package action

import (
	"sort"
	"strings"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/player"
)

// Kind is the canonical action taxonomy.
type Kind string

const (
	KindGoal        Kind = "GOAL"
	KindMiss        Kind = "MISS"
	KindBlock       Kind = "BLOCK"
	KindSave        Kind = "SAVE"
	KindAssist      Kind = "ASSIST"
	KindSteal       Kind = "STEAL"
	KindExclusion   Kind = "EXCLUSION"
	KindFoulDrawn   Kind = "FOUL_DRAWN"
	KindTurnover    Kind = "TURNOVER"
	KindYellowCard  Kind = "YELLOW_CARD"
	KindRedCard     Kind = "RED_CARD"
	KindSwimOffWon  Kind = "SWIM_OFF_WON"
	KindSwimOffLost Kind = "SWIM_OFF_LOST"
	KindTimeout     Kind = "TIMEOUT"
)

type Flag string

const (
	FlagPenalty         Flag = "PENALTY"
	FlagPenaltyFoul     Flag = "PENALTY_FOUL"
	FlagClock           Flag = "CLOCK"
	FlagLost            Flag = "LOST"
	FlagOffensiveFoul   Flag = "OFFENSIVE_FOUL"
	FlagBallUnder       Flag = "BALL_UNDER"
	FlagDoubleExclusion Flag = "DOUBLE_EXCLUSION"
)

// Flags is a sorted set of qualifiers.
type Flags []Flag

func NewFlags(flags ...Flag) Flags {
	if len(flags) == 0 {
		return Flags{}
	}
	seen := make(map[Flag]struct{}, len(flags))
	out := make(Flags, 0, len(flags))
	for _, f := range flags {
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (f Flags) Has(flag Flag) bool {
	for _, v := range f {
		if v == flag {
			return true
		}
	}
	return false
}

func (f Flags) Strings() []string {
	out := make([]string, len(f))
	for i, v := range f {
		out[i] = string(v)
	}
	return out
}

func (f Flags) String() string {
	return strings.Join(f.Strings(), ",")
}

// RawEvent is one provider record, already joined with the match roster.
type RawEvent struct {
	ID                  string
	Kind                string
	Period              int
	RemainingPeriodTime int
	TeamName            string
	Player              *player.Ref
	X                   *float64
	Y                   *float64
	// SubType is the shot type or turnover type code.
	SubType          string
	IsGoal           bool
	BlockedBy        *player.Ref
	AssistedBy       *player.Ref
	SavedBy          *player.Ref
	WonPossession    *player.Ref
	Fouled           *player.Ref
	PenaltyExclusion bool
	DoubleExclusion  bool
	CardColor        string
	HomeSwimmer      *player.Ref
	AwaySwimmer      *player.Ref
	Winner           *player.Ref
}

// Draft is a mapped action before identity resolution and linking.
type Draft struct {
	SourceEventID       string
	Kind                Kind
	Flags               Flags
	TeamName            string
	Player              *player.Ref
	Period              int
	RemainingPeriodTime int
	HomeScore           int
	AwayScore           int
	X                   *float64
	Y                   *float64
	TargetX             *float64
	TargetY             *float64
}

// Action is a canonical, numbered play-by-play row. Empty IDs mean null.
type Action struct {
	SeasonID            string
	EditionID           string
	GameID              string
	ActionNumber        int
	SourceEventID       string
	Period              int
	RemainingPeriodTime int
	HomeScore           int
	AwayScore           int
	Kind                Kind
	TeamID              string
	TeamName            string
	OpponentID          string
	PlayerID            string
	PlayerName          string
	X                   *float64
	Y                   *float64
	TargetX             *float64
	TargetY             *float64
	Flags               Flags
	LinkedActionNumber  *int
}

// FromDraft copies the draft payload; ids and numbering are filled in later.
func FromDraft(d Draft) Action {
	a := Action{
		SourceEventID:       d.SourceEventID,
		Period:              d.Period,
		RemainingPeriodTime: d.RemainingPeriodTime,
		HomeScore:           d.HomeScore,
		AwayScore:           d.AwayScore,
		Kind:                d.Kind,
		TeamName:            d.TeamName,
		X:                   d.X,
		Y:                   d.Y,
		TargetX:             d.TargetX,
		TargetY:             d.TargetY,
		Flags:               d.Flags,
	}
	if d.Player != nil {
		a.PlayerName = d.Player.FullName()
	}
	return a
}
