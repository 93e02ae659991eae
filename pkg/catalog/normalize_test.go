package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProviderInfo(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Season
	}{
		{
			name: "season-keyed episode map",
			raw: `{"episodes":{
				"2":[{"episode_num":2,"title":"Two"},{"episode_num":1,"title":"One"}],
				"1":[{"episode_num":1,"name":"Pilot","stream_id":42}]
			}}`,
			want: []Season{
				{Number: 1, Episodes: []Episode{{Number: 1, Title: "Pilot", StreamID: "42", Container: "m3u8"}}},
				{Number: 2, Episodes: []Episode{
					{Number: 1, Title: "One", Container: "m3u8"},
					{Number: 2, Title: "Two", Container: "m3u8"},
				}},
			},
		},
		{
			name: "flat episode list with season fields",
			raw: `{"episodes":[
				{"episode_number":1,"season_number":2,"title":"S2E1"},
				{"episode_number":1,"title":"no season defaults to 1"}
			]}`,
			want: []Season{
				{Number: 1, Episodes: []Episode{{Number: 1, Title: "no season defaults to 1", Container: "m3u8"}}},
				{Number: 2, Episodes: []Episode{{Number: 1, Title: "S2E1", Container: "m3u8"}}},
			},
		},
		{
			name: "seasons list",
			raw: `{"seasons":[
				{"number":1,"episodes":[{"num":3,"episode_name":"Three","url":"http://x/3"}]}
			]}`,
			want: []Season{
				{Number: 1, Episodes: []Episode{{Number: 3, Title: "Three", Container: "m3u8", DirectURL: "http://x/3"}}},
			},
		},
		{
			name: "episodes without numbers are dropped",
			raw:  `{"episodes":{"1":[{"title":"nameless"}]}}`,
			want: []Season{},
		},
		{
			name: "missing title falls back to episode number",
			raw:  `{"episodes":{"1":[{"episode_num":4}]}}`,
			want: []Season{
				{Number: 1, Episodes: []Episode{{Number: 4, Title: "Episode 4", Container: "m3u8"}}},
			},
		},
		{
			name: "empty payload",
			raw:  `{}`,
			want: []Season{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeProviderInfo(json.RawMessage(tt.raw))
			require.NoError(t, err)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeProviderInfoDeterministic(t *testing.T) {
	raw := json.RawMessage(`{"episodes":{"3":[{"episode_num":2},{"episode_num":1}],"1":[{"episode_num":9}]}}`)
	first, err := NormalizeProviderInfo(raw)
	require.NoError(t, err)
	second, err := NormalizeProviderInfo(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProxyHost(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://127.0.0.1:9191", "http://127.0.0.1:9191"},
		{"https://dispatch.example.com/", "http://dispatch.example.com"},
		{"dispatch.example.com", "http://dispatch.example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProxyHost(tt.base), "ProxyHost(%q)", tt.base)
	}
}

func TestStreamURLs(t *testing.T) {
	host := "http://127.0.0.1:9191"
	assert.Equal(t,
		"http://127.0.0.1:9191/proxy/vod/movie/2/abc-123/stream.m3u8",
		MovieStreamURL(host, 2, "abc-123"))
	assert.Equal(t,
		"http://127.0.0.1:9191/proxy/vod/series/2/abc-123/season/1/episode/2/stream.m3u8",
		EpisodeStreamURL(host, 2, "abc-123", 1, 2))
	assert.Equal(t,
		"http://127.0.0.1:9191/proxy/vod/series-episode/2/555/stream.m3u8",
		EpisodeStreamIDURL(host, 2, "555"))
}
