package services

import (
	"strings"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

var videoHostMarkers = []string{"youtube", "youtu.be"}

const videoEmbedPrefix = "https://www.youtube.com/embed/"

type Media struct {
	Type     string `json:"type"`
	Source   string `json:"source"`
	VideoID  string `json:"video_id,omitempty"`
	EmbedURL string `json:"embed_url,omitempty"`
}

func IsVideoURL(url string) bool {
	for _, marker := range videoHostMarkers {
		if strings.Contains(url, marker) {
			return true
		}
	}
	return false
}

// ExtractVideoID reads the v= query value first and falls back to the last path segment.
func ExtractVideoID(url string) string {
	if _, after, found := strings.Cut(url, "v="); found {
		id, _, _ := strings.Cut(after, "&")
		if len(id) > 0 {
			return id
		}
	}
	segment := url[strings.LastIndex(url, "/")+1:]
	segment, _, _ = strings.Cut(segment, "?")
	return segment
}

func ResolveMedia(url string) Media {
	if !IsVideoURL(url) {
		return Media{Type: MediaTypeImage, Source: url}
	}
	id := ExtractVideoID(url)
	return Media{
		Type:     MediaTypeVideo,
		Source:   url,
		VideoID:  id,
		EmbedURL: videoEmbedPrefix + id,
	}
}
