package models

// PlaceholderThumbnail is used when the listing service returns no thumbnail.
const PlaceholderThumbnail = "https://i.ytimg.com/img/no_thumbnail.jpg"

type (
	// Video is a single entry returned by the video listing service.
	// Optional fields default to zero values; Thumbnail defaults to
	// PlaceholderThumbnail.
	Video struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		ViewCount   uint64 `json:"view_count"`
		LikeCount   uint64 `json:"like_count"`
		PublishedAt string `json:"published_at"`
		Thumbnail   string `json:"thumbnail"`
	}

	// Channel groups a channel URL with the videos fetched for it.
	Channel struct {
		URL    string  `json:"url"`
		ID     string  `json:"id"`
		Videos []Video `json:"videos"`
	}
)

// Normalize fills in defaults for missing optional fields.
func (v Video) Normalize() Video {
	if v.Thumbnail == "" {
		v.Thumbnail = PlaceholderThumbnail
	}
	return v
}
