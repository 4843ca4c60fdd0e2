package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type leagueTableModel struct {
	PublicID  string    `db:"public_id"`
	Code      string    `db:"code"`
	FullName  string    `db:"full_name"`
	Website   string    `db:"website"`
	UpdatedAt time.Time `db:"updated_at"`
}

type seasonTableModel struct {
	PublicID       string        `db:"public_id"`
	LeaguePublicID string        `db:"league_public_id"`
	SeasonKey      string        `db:"season_key"`
	StartYear      int           `db:"start_year"`
	EndYear        int           `db:"end_year"`
	CompetitionID  sql.NullInt64 `db:"competition_id"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

type editionTableModel struct {
	PublicID         string    `db:"public_id"`
	LeaguePublicID   string    `db:"league_public_id"`
	SeasonPublicID   string    `db:"season_public_id"`
	Periods          int       `db:"periods"`
	PeriodDuration   int       `db:"period_duration"`
	ShotClock        int       `db:"shot_clock"`
	OvertimeDuration int       `db:"overtime_duration"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type participantTableModel struct {
	EditionPublicID string `db:"edition_public_id"`
	TeamPublicID    string `db:"team_public_id"`
}

type franchiseTableModel struct {
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	City      sql.NullString `db:"city"`
	State     sql.NullString `db:"state"`
	Country   sql.NullString `db:"country"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type teamTableModel struct {
	PublicID          string         `db:"public_id"`
	FranchisePublicID string         `db:"franchise_public_id"`
	SeasonPublicID    string         `db:"season_public_id"`
	Name              string         `db:"name"`
	Abbreviation      sql.NullString `db:"abbreviation"`
	Gender            sql.NullString `db:"gender"`
	Category          sql.NullString `db:"category"`
	LogoURL           sql.NullString `db:"logo_url"`
	Color             sql.NullString `db:"color"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

type gameTableModel struct {
	PublicID         string         `db:"public_id"`
	EditionPublicID  string         `db:"edition_public_id"`
	SeasonPublicID   string         `db:"season_public_id"`
	ProviderGameID   int64          `db:"provider_game_id"`
	WebsiteURL       sql.NullString `db:"website_url"`
	GameDate         sql.NullTime   `db:"game_date"`
	Round            sql.NullInt64  `db:"round"`
	Status           sql.NullString `db:"status"`
	HomeTeamPublicID sql.NullString `db:"home_team_public_id"`
	AwayTeamPublicID sql.NullString `db:"away_team_public_id"`
	HomeScore        sql.NullInt64  `db:"home_score"`
	AwayScore        sql.NullInt64  `db:"away_score"`
	Overtimes        sql.NullInt64  `db:"overtimes"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type actionTableModel struct {
	GamePublicID        string          `db:"game_public_id"`
	SeasonPublicID      string          `db:"season_public_id"`
	EditionPublicID     string          `db:"edition_public_id"`
	ActionNumber        int             `db:"action_number"`
	SourceEventID       sql.NullString  `db:"source_event_id"`
	Period              int             `db:"period"`
	RemainingPeriodTime int             `db:"remaining_period_time"`
	HomeScore           int             `db:"home_score"`
	AwayScore           int             `db:"away_score"`
	Kind                string          `db:"kind"`
	TeamPublicID        sql.NullString  `db:"team_public_id"`
	OpponentPublicID    sql.NullString  `db:"opponent_public_id"`
	PlayerPublicID      sql.NullString  `db:"player_public_id"`
	X                   sql.NullFloat64 `db:"x"`
	Y                   sql.NullFloat64 `db:"y"`
	TargetX             sql.NullFloat64 `db:"target_x"`
	TargetY             sql.NullFloat64 `db:"target_y"`
	Flags               pq.StringArray  `db:"flags"`
	LinkedActionNumber  sql.NullInt64   `db:"linked_action_number"`
}

type playerTableModel struct {
	PublicID     string         `db:"public_id"`
	TeamPublicID string         `db:"team_public_id"`
	Name         string         `db:"name"`
	Surname      string         `db:"surname"`
	FullName     string         `db:"full_name"`
	Birthday     sql.NullTime   `db:"birthday"`
	HeightCM     sql.NullInt64  `db:"height_cm"`
	WeightKG     sql.NullInt64  `db:"weight_kg"`
	Hand         sql.NullString `db:"hand"`
	Role         sql.NullString `db:"role"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type contractTableModel struct {
	PlayerPublicID string         `db:"player_public_id"`
	TeamPublicID   string         `db:"team_public_id"`
	SeasonPublicID string         `db:"season_public_id"`
	JerseyNumber   sql.NullString `db:"jersey_number"`
	PictureURL     sql.NullString `db:"picture_url"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
