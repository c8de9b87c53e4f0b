package faceit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/pable/go-faceit-insights/internal/model"
	"github.com/pable/go-faceit-insights/internal/stats"
)

// ErrNoMatchData is returned when a match has no played map in its stats.
var ErrNoMatchData = errors.New("no match data found")

const unknownLocation = "Unknown"

type rosterEntry struct {
	team   string
	avatar string
	level  int
}

// BuildMatch combines match details and stats into the first map's snapshot.
//
// Team A is the team listed first in the stats payload, so the "a / b" score
// lines up with it. Each player's Team stat is rewritten to their roster
// faction's name when they appear on a roster; otherwise the stats-reported
// team is kept, falling back to model.UnknownTeam.
func BuildMatch(detail *MatchDetail, ms *MatchStats) (model.Match, error) {
	if ms == nil || len(ms.Rounds) == 0 {
		return model.Match{}, ErrNoMatchData
	}
	round := ms.Rounds[0]
	rs := stats.Map(round.RoundStats)

	var f1, f2 Faction
	if detail != nil {
		f1, f2 = detail.Teams.Faction1, detail.Teams.Faction2
	}
	var st1, st2 StatsTeam
	if len(round.Teams) > 0 {
		st1 = round.Teams[0]
	}
	if len(round.Teams) > 1 {
		st2 = round.Teams[1]
	}
	if st1.TeamID != "" && st1.TeamID == f2.FactionID {
		f1, f2 = f2, f1
	}

	roster := make(map[string]rosterEntry)
	for _, f := range []Faction{f1, f2} {
		for _, p := range f.Roster {
			roster[p.PlayerID] = rosterEntry{team: f.Name, avatar: p.Avatar, level: p.GameSkillLevel}
		}
	}

	m := model.Match{
		MatchID:     round.MatchID,
		TeamA:       teamInfo(f1, st1),
		TeamB:       teamInfo(f2, st2),
		TotalRounds: rs.Count(stats.KeyRounds),
		Map:         model.Venue{Name: rs.String(stats.KeyMap)},
		Region:      rs.String(stats.KeyRegion),
	}
	m.ScoreA, m.ScoreB = parseScore(rs.String(stats.KeyScore))

	switch winner := rs.String(stats.KeyWinner); winner {
	case "":
	case st1.TeamID:
		m.Winner = m.TeamA.Name
	case st2.TeamID:
		m.Winner = m.TeamB.Name
	default:
		m.Winner = winner
	}

	if detail != nil {
		if m.MatchID == "" {
			m.MatchID = detail.MatchID
		}
		if m.Region == "" {
			m.Region = detail.Region
		}
		m.Map = pickMap(detail, m.Map.Name)
		m.Location = pickLocation(detail)
	}

	for _, team := range []StatsTeam{st1, st2} {
		for _, p := range team.Players {
			m.Players = append(m.Players, playerRecord(p, roster))
		}
	}
	return m, nil
}

func teamInfo(f Faction, st StatsTeam) model.TeamInfo {
	ts := stats.Map(st.TeamStats)
	name := f.Name
	if name == "" {
		name = ts.Team()
	}
	id := f.FactionID
	if id == "" {
		id = st.TeamID
	}
	return model.TeamInfo{ID: id, Name: name, Avatar: f.Avatar, Premade: st.Premade, Stats: ts}
}

func playerRecord(p StatsPlayer, roster map[string]rosterEntry) model.PlayerRecord {
	s := stats.Map(p.PlayerStats)
	r, onRoster := roster[p.PlayerID]
	team := s.Team()
	switch {
	case onRoster && r.team != "":
		team = r.team
	case team == "":
		team = model.UnknownTeam
	}
	return model.PlayerRecord{
		PlayerID:   p.PlayerID,
		Nickname:   p.Nickname,
		Avatar:     r.avatar,
		SkillLevel: r.level,
		Stats:      s.With(stats.KeyTeam, team),
	}
}

// parseScore splits "13 / 9". Malformed halves read as 0.
func parseScore(s string) (int, int) {
	a, b, _ := strings.Cut(s, "/")
	return atoi(a), atoi(b)
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func pickMap(detail *MatchDetail, fallback string) model.Venue {
	pick := detail.MapName()
	v := model.Venue{ID: pick, Name: fallback}
	if v.Name == "" {
		v.Name = pick
	}
	for _, e := range detail.Voting.Map.Entities {
		if e.GameMapID == pick {
			v.Image = e.ImageLG
			if e.Name != "" {
				v.Name = e.Name
			}
			break
		}
	}
	return v
}

func pickLocation(detail *MatchDetail) model.Venue {
	pick := detail.LocationName()
	if pick == "" {
		return model.Venue{Name: unknownLocation}
	}
	v := model.Venue{ID: pick, Name: pick}
	for _, e := range detail.Voting.Location.Entities {
		if e.Name == pick {
			v.Image = e.ImageSM
			break
		}
	}
	return v
}

// BuildProfile adapts a player lookup to model.Profile for game.
func BuildProfile(p *Player, game string) model.Profile {
	prof := model.Profile{
		PlayerID:   p.PlayerID,
		Nickname:   p.Nickname,
		Avatar:     p.Avatar,
		Country:    p.Country,
		CoverImage: p.CoverImage,
		FaceitURL:  strings.ReplaceAll(p.FaceitURL, "{lang}", "en"),
		Verified:   p.Verified,
	}
	if g, ok := p.Games[game]; ok {
		prof.SkillLevel = g.SkillLevel
		prof.Elo = g.FaceitELO
		prof.Region = g.Region
	}
	return prof
}

// BuildLifetime flattens the lifetime stats object. Scalar values are kept
// as text; the "Recent Results" array becomes RecentResults.
func BuildLifetime(ps *PlayerStats) *model.Lifetime {
	if ps == nil {
		return nil
	}
	lt := &model.Lifetime{Values: stats.Map{}}
	for k, v := range ps.Lifetime {
		switch val := v.(type) {
		case []any:
			if k == "Recent Results" {
				for _, r := range val {
					lt.RecentResults = append(lt.RecentResults, scalar(r))
				}
			}
		case map[string]any, nil:
		default:
			lt.Values[k] = scalar(val)
		}
	}
	return lt
}

func scalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// BuildHistory converts history items in the order received.
func BuildHistory(items []MatchHistoryItem) []model.HistoryMatch {
	out := make([]model.HistoryMatch, 0, len(items))
	for _, it := range items {
		out = append(out, model.HistoryMatch{
			MatchID:     it.MatchID,
			Status:      it.Status,
			GameMode:    it.GameMode,
			Competition: it.CompetitionName,
			StartedAt:   unix(it.StartedAt),
			FinishedAt:  unix(it.FinishedAt),
			Faction1:    historyTeam(it.Teams.Faction1),
			Faction2:    historyTeam(it.Teams.Faction2),
			Winner:      it.Results.Winner,
			Score:       it.Results.Score,
		})
	}
	return out
}

func historyTeam(f HistoryFaction) model.HistoryTeam {
	t := model.HistoryTeam{Nickname: f.Nickname}
	for _, p := range f.Players {
		t.PlayerIDs = append(t.PlayerIDs, p.PlayerID)
	}
	return t
}

func unix(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}
