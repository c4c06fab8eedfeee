package youtube

import (
	"context"

	"github.com/Tomas-vilte/VidCommit/internal/config"
	"github.com/Tomas-vilte/VidCommit/internal/domain/models"
	apperrors "github.com/Tomas-vilte/VidCommit/internal/errors"
	"github.com/Tomas-vilte/VidCommit/internal/logger"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// videos.list accepts at most 50 IDs per call
const videoBatchSize = 50

// Client lists a channel's uploads through the YouTube Data API v3.
type Client struct {
	service   *youtube.Service
	maxVideos int
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.YouTubeAPIKey == "" {
		return nil, apperrors.ErrYouTubeKeyMissing
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(cfg.YouTubeAPIKey))
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.TypeYouTube, "failed to create YouTube client", err)
	}

	return &Client{
		service:   service,
		maxVideos: cfg.MaxVideos,
	}, nil
}

// ListVideos resolves the channel URL and returns its most recent uploads,
// newest first, capped at the configured maximum.
func (c *Client) ListVideos(ctx context.Context, channelURL string) ([]models.Video, error) {
	ref, err := ParseChannelURL(channelURL)
	if err != nil {
		return nil, err
	}

	uploadsID, err := c.resolveUploadsPlaylist(ctx, ref)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "resolved uploads playlist", "playlist_id", uploadsID)

	videoIDs, err := c.collectVideoIDs(ctx, uploadsID)
	if err != nil {
		return nil, err
	}
	if len(videoIDs) == 0 {
		return []models.Video{}, nil
	}

	return c.fetchVideoDetails(ctx, videoIDs)
}

// resolveUploadsPlaylist looks up the channel and returns its uploads
// playlist ID.
func (c *Client) resolveUploadsPlaylist(ctx context.Context, ref ChannelRef) (string, error) {
	call := c.service.Channels.List([]string{"contentDetails"}).Context(ctx)
	if ref.ID != "" {
		call = call.Id(ref.ID)
	} else {
		call = call.ForHandle(ref.Handle)
	}

	resp, err := call.Do()
	if err != nil {
		return "", wrapAPIError(err, "failed to look up channel")
	}
	if len(resp.Items) == 0 {
		return "", apperrors.ErrChannelNotFound.WithContext("handle", ref.Handle).WithContext("id", ref.ID)
	}

	uploads := resp.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", apperrors.ErrNoVideosFound
	}
	return uploads, nil
}

// collectVideoIDs walks the uploads playlist newest-first until maxVideos
// IDs are gathered or the playlist runs out.
func (c *Client) collectVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var ids []string
	pageToken := ""

	for {
		remaining := c.maxVideos - len(ids)
		if remaining <= 0 {
			break
		}
		pageSize := int64(remaining)
		if pageSize > videoBatchSize {
			pageSize = videoBatchSize
		}

		resp, err := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(pageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return nil, wrapAPIError(err, "failed to list channel uploads")
		}

		for _, item := range resp.Items {
			ids = append(ids, item.ContentDetails.VideoId)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, nil
}

// fetchVideoDetails loads snippet and statistics for the given IDs,
// preserving the input order.
func (c *Client) fetchVideoDetails(ctx context.Context, ids []string) ([]models.Video, error) {
	byID := make(map[string]models.Video, len(ids))

	for start := 0; start < len(ids); start += videoBatchSize {
		end := start + videoBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		resp, err := c.service.Videos.List([]string{"snippet", "statistics"}).
			Id(ids[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, wrapAPIError(err, "failed to fetch video details")
		}

		for _, item := range resp.Items {
			byID[item.Id] = buildVideo(item)
		}
	}

	videos := make([]models.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byID[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func buildVideo(item *youtube.Video) models.Video {
	video := models.Video{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		PublishedAt: item.Snippet.PublishedAt,
	}

	if item.Statistics != nil {
		video.ViewCount = item.Statistics.ViewCount
		video.LikeCount = item.Statistics.LikeCount
	}
	if thumbs := item.Snippet.Thumbnails; thumbs != nil {
		switch {
		case thumbs.Medium != nil:
			video.Thumbnail = thumbs.Medium.Url
		case thumbs.Default != nil:
			video.Thumbnail = thumbs.Default.Url
		}
	}

	return video.Normalize()
}

func wrapAPIError(err error, msg string) error {
	if apiErr, ok := err.(*googleapi.Error); ok {
		switch apiErr.Code {
		case 403:
			return apperrors.ErrQuotaExceeded.WithError(err)
		case 404:
			return apperrors.ErrChannelNotFound.WithError(err)
		}
	}
	return apperrors.NewAppError(apperrors.TypeYouTube, msg, err)
}
