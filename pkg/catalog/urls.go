package catalog

import (
	"fmt"
	"strings"
)

// ProxyHost strips any scheme off a base URL and forces plain http, the form
// the Dispatcharr stream proxy expects in pointer files.
func ProxyHost(base string) string {
	host := strings.TrimSpace(base)
	if host == "" {
		return ""
	}
	host = strings.TrimRight(host, "/")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	return "http://" + host
}

// MovieStreamURL builds the proxied playback URL for a movie.
func MovieStreamURL(proxyHost string, accountID int, uuid string) string {
	return fmt.Sprintf("%s/proxy/vod/movie/%d/%s/stream.m3u8", strings.TrimRight(proxyHost, "/"), accountID, uuid)
}

// EpisodeStreamURL builds the proxied playback URL for a series episode
// addressed by the series uuid plus season/episode numbers.
func EpisodeStreamURL(proxyHost string, accountID int, uuid string, season, episode int) string {
	return fmt.Sprintf("%s/proxy/vod/series/%d/%s/season/%d/episode/%d/stream.m3u8",
		strings.TrimRight(proxyHost, "/"), accountID, uuid, season, episode)
}

// EpisodeStreamIDURL is the fallback playback URL for series without a uuid,
// addressed by the episode's own stream id.
func EpisodeStreamIDURL(proxyHost string, accountID int, streamID string) string {
	return fmt.Sprintf("%s/proxy/vod/series-episode/%d/%s/stream.m3u8", strings.TrimRight(proxyHost, "/"), accountID, streamID)
}
