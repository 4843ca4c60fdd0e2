package usecase

import (
	"context"
	stdcsv "encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/game"
	"github.com/riskibarqy/waterpolo-pbp/internal/domain/season"
	csvsink "github.com/riskibarqy/waterpolo-pbp/internal/infrastructure/repository/csv"
	sourcemock "github.com/riskibarqy/waterpolo-pbp/internal/mocks/domain/source"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func rosterNames(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := stdcsv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	names := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		names = append(names, row[3])
	}
	return names
}

func TestIngestionService_Run_CSVRostersPerSeason(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	snk, err := csvsink.NewSink(csvsink.Options{Dir: dir})
	require.NoError(t, err)

	src := sourcemock.NewSource(t)
	src.On("League", mock.Anything).Return(testLeague(), nil).Once()
	src.On("ListSeasons", mock.Anything, mock.Anything).Return([]season.Season{
		season.New(2022, 2124), season.New(2023, 2300),
	}, nil).Once()
	src.On("ListGames", mock.Anything, mock.Anything).Return(func(_ context.Context, s season.Season) ([]game.Game, error) {
		g := testGame(int64(s.StartYear), game.StatusPlayed, recco, ferencvaros)
		g.Date = time.Date(s.StartYear, 11, 9, 18, 0, 0, 0, time.UTC)
		return []game.Game{g}, nil
	}).Twice()
	src.On("ListRawEvents", mock.Anything, mock.Anything, mock.Anything).Return(turnoverStealGoalMiss(), nil).Twice()

	service := NewIngestionService(src, snk, nil, IngestionConfig{}, nil, nil)
	report, err := service.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, report.Failures)
	require.Equal(t, 2, report.GamesLinked)

	for _, short := range []string{"22-23", "23-24"} {
		seasonDir := filepath.Join(dir, "LEN", short)
		names := rosterNames(t, filepath.Join(seasonDir, "rosters.csv"))
		require.ElementsMatch(t, []string{
			"Francesco Di Fulvio", "Aaron Younger", "Szilard Jansik", "Vendel Vigvari",
		}, names, "season %s", short)

		_, err := os.Stat(filepath.Join(seasonDir, "play_by_play.csv"))
		require.NoError(t, err, "season %s", short)
	}
}
