package arena

import (
	"bytes"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

type competitionResponse struct {
	Matches          []competitionMatch `json:"matches" validate:"dive"`
	CompetitionTeams []competitionTeam  `json:"competitionTeams" validate:"dive"`
}

type competitionMatch struct {
	ID                  int64       `json:"id" validate:"gt=0"`
	StartDate           string      `json:"startDate"`
	Number              optionalInt `json:"number"`
	Status              looseString `json:"status"`
	HomeTeamGoalsTotal  *int        `json:"homeTeamGoalsTotal"`
	AwayTeamGoalsTotal  *int        `json:"awayTeamGoalsTotal"`
	HomeTeamID          int64       `json:"homeTeamId" validate:"gt=0"`
	AwayTeamID          int64       `json:"awayTeamId" validate:"gt=0,nefield=HomeTeamID"`
	HomeTeamDisplayName string      `json:"homeTeamDisplayName" validate:"required"`
	AwayTeamDisplayName string      `json:"awayTeamDisplayName" validate:"required"`
}

type competitionTeam struct {
	TeamID int64           `json:"teamId" validate:"gt=0"`
	Team   competitionInfo `json:"team"`
}

type competitionInfo struct {
	ShortName looseString `json:"shortName"`
	Gender    looseString `json:"gender"`
	Category  looseString `json:"category"`
	Club      looseString `json:"club"`
	Country   looseString `json:"country"`
	City      looseString `json:"city"`
	LogoURL   looseString `json:"logo"`
}

type matchResponse struct {
	HomeTeam matchTeam     `json:"homeTeam"`
	AwayTeam matchTeam     `json:"awayTeam"`
	Players  []rosterEntry `json:"players" validate:"dive"`
}

type matchTeam struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required"`
}

type rosterEntry struct {
	PlayerID int64        `json:"playerId" validate:"gt=0"`
	Player   rosterPlayer `json:"player"`
	Position looseString  `json:"position"`
	Team     rosterTeam   `json:"team"`
	Number   looseString  `json:"number"`
}

type rosterPlayer struct {
	Name         looseString `json:"name"`
	Surname      looseString `json:"surname"`
	Height       looseString `json:"height"`
	Weight       looseString `json:"weight"`
	DominantHand looseString `json:"dominantHand"`
}

type rosterTeam struct {
	ID   int64       `json:"id"`
	Name looseString `json:"name"`
}

type eventItem struct {
	ID        flexID         `json:"id"`
	Type      looseString    `json:"type"`
	Period    looseString    `json:"period"`
	Minute    int            `json:"minute" validate:"gte=0"`
	Seconds   int            `json:"seconds" validate:"gte=0,lt=60"`
	Turnover  *turnoverItem  `json:"turnover" validate:"required_if=Type Turnover"`
	Card      *cardItem      `json:"card" validate:"required_if=Type Card"`
	Timeout   *timeoutItem   `json:"timeout" validate:"required_if=Type Timeout"`
	Swimoff   *swimoffItem   `json:"swimoff" validate:"required_if=Type Swim_Off"`
	Exclusion *exclusionItem `json:"exclusion" validate:"required_if=Type Exclusion"`
	Shot      *shotItem      `json:"shot" validate:"required_if=Type Shot"`
}

type playerRef struct {
	PlayerID int64 `json:"playerId"`
	TeamID   int64 `json:"teamId"`
}

type turnoverItem struct {
	TeamID               int64       `json:"teamId"`
	Type                 looseString `json:"type"`
	LostPossesionPlayer  *playerRef  `json:"lostPossesionPlayer"`
	WonPossesionPlayerID *int64      `json:"wonPossesionPlayerId"`
	WonPossesionPlayer   *playerRef  `json:"wonPossesionPlayer"`
}

type cardItem struct {
	Type           looseString `json:"type"`
	TeamID         int64       `json:"teamId"`
	CardedPlayerID *int64      `json:"cardedPlayerId"`
	CardedPlayer   *playerRef  `json:"cardedPlayer"`
}

type timeoutItem struct {
	TeamID int64 `json:"teamId"`
}

type swimoffItem struct {
	HomeTeamSwimmer *playerRef `json:"homeTeamSwimmer"`
	AwayTeamSwimmer *playerRef `json:"awayTeamSwimmer"`
	WinnerSwimmer   *playerRef `json:"winnerSwimmer"`
}

type exclusionItem struct {
	TeamID             int64      `json:"teamId"`
	ExcludedPlayerID   *int64     `json:"excludedPlayerId"`
	ExcludedPlayer     *playerRef `json:"excludedPlayer"`
	IsPenaltyExclusion bool       `json:"isPenaltyExclusion"`
	IsDoubleExclusion  bool       `json:"isDoubleExclusion"`
	FouledPlayerID     *int64     `json:"fouledPlayerId"`
	FouledPlayer       *playerRef `json:"fouledPlayer"`
	LocationX          *float64   `json:"locationX"`
	LocationY          *float64   `json:"locationY"`
}

type shotItem struct {
	IsGoal       bool        `json:"isGoal"`
	TeamID       int64       `json:"teamId"`
	TakenBy      *playerRef  `json:"takenBy"`
	Type         looseString `json:"type"`
	LocationX    *float64    `json:"locationX"`
	LocationY    *float64    `json:"locationY"`
	BlockedByID  *int64      `json:"blockedById"`
	BlockedBy    *playerRef  `json:"blockedBy"`
	AssistedByID *int64      `json:"assistedById"`
	AssistedBy   *playerRef  `json:"assistedBy"`
	SavedByID    *int64      `json:"savedById"`
	SavedBy      *playerRef  `json:"savedBy"`
}

// looseString accepts a JSON string, number, null, or an object carrying a
// "name" field. The provider is not consistent about any of these.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
	case data[0] == '"':
		var v string
		if err := sonic.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(strings.TrimSpace(v))
	case data[0] == '{':
		var v map[string]any
		if err := sonic.Unmarshal(data, &v); err != nil {
			return err
		}
		name, _ := v["name"].(string)
		*s = looseString(strings.TrimSpace(name))
	default:
		*s = looseString(string(data))
	}
	return nil
}

func (s looseString) String() string { return string(s) }

// flexID accepts numeric or string ids.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var v looseString
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*f = flexID(v)
	return nil
}

// optionalInt accepts a number, a numeric string, or null.
type optionalInt struct {
	Value *int
}

func (o *optionalInt) UnmarshalJSON(data []byte) error {
	var v looseString
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	o.Value = nil
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(string(v))
	if err != nil {
		// Non-numeric labels leave the round unset.
		return nil
	}
	o.Value = &n
	return nil
}
