package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// rawEpisode tolerates the field-name drift between provider-info payload
// generations.
type rawEpisode struct {
	ID            FlexID `json:"id"`
	StreamID      FlexID `json:"stream_id"`
	EpisodeNumber int    `json:"episode_number"`
	EpisodeNum    int    `json:"episode_num"`
	Num           int    `json:"num"`
	SeasonNumber  int    `json:"season_number"`
	Season        int    `json:"season"`
	SeasonNum     int    `json:"season_num"`
	Title         string `json:"title"`
	Name          string `json:"name"`
	EpisodeName   string `json:"episode_name"`
	Container     string `json:"container_extension"`
	ContainerAlt  string `json:"container"`
	DirectURL     string `json:"direct_url"`
	URL           string `json:"url"`
}

func (e rawEpisode) number() int {
	for _, n := range []int{e.EpisodeNumber, e.EpisodeNum, e.Num} {
		if n > 0 {
			return n
		}
	}
	return 0
}

func (e rawEpisode) season() int {
	for _, n := range []int{e.SeasonNumber, e.Season, e.SeasonNum} {
		if n > 0 {
			return n
		}
	}
	return 0
}

func (e rawEpisode) normalize() (Episode, bool) {
	num := e.number()
	if num == 0 {
		return Episode{}, false
	}

	title := e.Title
	if title == "" {
		title = e.Name
	}
	if title == "" {
		title = e.EpisodeName
	}
	if title == "" {
		title = fmt.Sprintf("Episode %d", num)
	}

	streamID := e.ID
	if streamID.IsZero() {
		streamID = e.StreamID
	}

	container := e.Container
	if container == "" {
		container = e.ContainerAlt
	}
	if container == "" {
		container = "m3u8"
	}

	directURL := e.DirectURL
	if directURL == "" {
		directURL = e.URL
	}

	return Episode{
		Number:    num,
		Title:     title,
		StreamID:  streamID,
		Container: container,
		DirectURL: directURL,
	}, true
}

type rawSeason struct {
	Number       int          `json:"number"`
	SeasonNumber int          `json:"season_number"`
	Season       int          `json:"season"`
	Episodes     []rawEpisode `json:"episodes"`
}

func (s rawSeason) number() int {
	for _, n := range []int{s.Number, s.SeasonNumber, s.Season} {
		if n > 0 {
			return n
		}
	}
	return 0
}

type rawProviderInfo struct {
	Episodes json.RawMessage `json:"episodes"`
	Seasons  []rawSeason     `json:"seasons"`
	SeasonsC []rawSeason     `json:"Seasons"`
}

// NormalizeProviderInfo converts any of the three observed provider-info
// payload shapes into ordered seasons:
//
//  1. "episodes" as an object keyed by season number
//  2. "episodes" as a flat list carrying per-episode season fields
//  3. a "seasons" list with nested episode lists
//
// Episodes without a usable episode number are dropped; flat-list episodes
// without a season number default to season 1.
func NormalizeProviderInfo(raw json.RawMessage) ([]Season, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var info rawProviderInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("decode provider info: %w", err)
	}

	if len(info.Episodes) > 0 {
		if seasons, ok := normalizeKeyedEpisodes(info.Episodes); ok {
			return seasons, nil
		}
		if seasons, ok := normalizeFlatEpisodes(info.Episodes); ok {
			return seasons, nil
		}
	}

	seasonsRaw := info.Seasons
	if len(seasonsRaw) == 0 {
		seasonsRaw = info.SeasonsC
	}
	return normalizeSeasonList(seasonsRaw), nil
}

func normalizeKeyedEpisodes(raw json.RawMessage) ([]Season, bool) {
	var keyed map[string][]rawEpisode
	if err := json.Unmarshal(raw, &keyed); err != nil || len(keyed) == 0 {
		return nil, false
	}

	seasons := []Season{}
	for key, list := range keyed {
		num, err := strconv.Atoi(key)
		if err != nil || num <= 0 {
			// fall back to the first episode's own season field
			if len(list) > 0 {
				num = list[0].season()
			}
			if num <= 0 {
				continue
			}
		}

		episodes := normalizeEpisodeList(list)
		if len(episodes) > 0 {
			seasons = append(seasons, Season{Number: num, Episodes: episodes})
		}
	}

	sortSeasons(seasons)
	return seasons, len(seasons) > 0
}

func normalizeFlatEpisodes(raw json.RawMessage) ([]Season, bool) {
	var flat []rawEpisode
	if err := json.Unmarshal(raw, &flat); err != nil || len(flat) == 0 {
		return nil, false
	}

	bySeason := map[int][]Episode{}
	for _, re := range flat {
		ep, ok := re.normalize()
		if !ok {
			continue
		}
		num := re.season()
		if num == 0 {
			num = 1
		}
		bySeason[num] = append(bySeason[num], ep)
	}

	seasons := make([]Season, 0, len(bySeason))
	for num, eps := range bySeason {
		sortEpisodes(eps)
		seasons = append(seasons, Season{Number: num, Episodes: eps})
	}
	sortSeasons(seasons)
	return seasons, len(seasons) > 0
}

func normalizeSeasonList(raw []rawSeason) []Season {
	seasons := []Season{}
	for _, rs := range raw {
		num := rs.number()
		if num == 0 {
			continue
		}
		episodes := normalizeEpisodeList(rs.Episodes)
		if len(episodes) > 0 {
			seasons = append(seasons, Season{Number: num, Episodes: episodes})
		}
	}
	sortSeasons(seasons)
	return seasons
}

func normalizeEpisodeList(list []rawEpisode) []Episode {
	episodes := make([]Episode, 0, len(list))
	for _, re := range list {
		if ep, ok := re.normalize(); ok {
			episodes = append(episodes, ep)
		}
	}
	sortEpisodes(episodes)
	return episodes
}

func sortSeasons(seasons []Season) {
	sort.Slice(seasons, func(i, j int) bool { return seasons[i].Number < seasons[j].Number })
}

func sortEpisodes(episodes []Episode) {
	sort.Slice(episodes, func(i, j int) bool { return episodes[i].Number < episodes[j].Number })
}
