package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/riskibarqy/waterpolo-pbp/internal/domain/league"
	"gopkg.in/yaml.v3"
)

//go:embed leagues.yaml
var defaultCatalog []byte

type catalogFile struct {
	Leagues []catalogLeague `yaml:"leagues"`
}

type catalogLeague struct {
	Code         string        `yaml:"code"`
	Name         string        `yaml:"name"`
	Website      string        `yaml:"website"`
	Competitions map[int]int64 `yaml:"competitions"`
}

// Catalog lists the leagues known to the ingester and, per league, which
// provider competition holds each season.
type Catalog struct {
	leagues []league.League
	byCode  map[string]league.League
}

// LoadCatalog reads the catalog at path, or the embedded default when path is empty.
func LoadCatalog(path string) (Catalog, error) {
	raw := defaultCatalog
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Catalog{}, fmt.Errorf("read league catalog %s: %w", path, err)
		}
		raw = data
	}
	return ParseCatalog(raw)
}

func ParseCatalog(raw []byte) (Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return Catalog{}, fmt.Errorf("decode league catalog: %w", err)
	}
	if len(file.Leagues) == 0 {
		return Catalog{}, fmt.Errorf("league catalog is empty")
	}

	out := Catalog{byCode: make(map[string]league.League, len(file.Leagues))}
	for _, item := range file.Leagues {
		l := league.League{
			Code:         strings.ToUpper(strings.TrimSpace(item.Code)),
			FullName:     strings.TrimSpace(item.Name),
			Website:      strings.TrimSpace(item.Website),
			Competitions: item.Competitions,
		}
		if err := l.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := out.byCode[l.Code]; dup {
			return Catalog{}, fmt.Errorf("league %s is listed twice", l.Code)
		}
		out.byCode[l.Code] = l
		out.leagues = append(out.leagues, l)
	}
	return out, nil
}

func (c Catalog) League(code string) (league.League, bool) {
	l, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return l, ok
}

// Select returns the requested leagues in request order, or every league
// when codes is empty.
func (c Catalog) Select(codes []string) ([]league.League, error) {
	if len(codes) == 0 {
		return append([]league.League(nil), c.leagues...), nil
	}

	out := make([]league.League, 0, len(codes))
	for _, code := range codes {
		l, ok := c.League(code)
		if !ok {
			return nil, fmt.Errorf("unknown league %q", code)
		}
		out = append(out, l)
	}
	return out, nil
}
