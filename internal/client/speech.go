package client

import (
	"context"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// SpeechClient wraps the Google Cloud Speech-to-Text client.
type SpeechClient struct {
	client *speech.Client
}

// NewSpeechClient creates a new Speech-to-Text client. credentialsFile may be
// empty, in which case application default credentials are used.
func NewSpeechClient(ctx context.Context, credentialsFile string) (*SpeechClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &SpeechClient{client: client}, nil
}

// Close closes the client.
func (c *SpeechClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// EncodingForMIME maps an upload MIME type to the recognizer encoding hint.
// Unrecognized types fall back to LINEAR16.
func EncodingForMIME(mimeType string) speechpb.RecognitionConfig_AudioEncoding {
	mime := strings.ToLower(mimeType)
	switch {
	case strings.Contains(mime, "wav"), strings.Contains(mime, "wave"):
		return speechpb.RecognitionConfig_LINEAR16
	case strings.Contains(mime, "mp3"):
		return speechpb.RecognitionConfig_MP3
	case strings.Contains(mime, "ogg"):
		return speechpb.RecognitionConfig_OGG_OPUS
	case strings.Contains(mime, "flac"):
		return speechpb.RecognitionConfig_FLAC
	case strings.Contains(mime, "webm"):
		return speechpb.RecognitionConfig_WEBM_OPUS
	default:
		return speechpb.RecognitionConfig_LINEAR16
	}
}

// Recognize transcribes a mono audio payload. Result segments are joined in
// order with newline separators. An empty result set returns ("", nil); the
// caller decides how to surface it.
func (c *SpeechClient) Recognize(ctx context.Context, audio []byte, mimeType, languageCode string) (string, error) {
	if languageCode == "" {
		languageCode = "en-US"
	}

	resp, err := c.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   EncodingForMIME(mimeType),
			LanguageCode:               languageCode,
			EnableAutomaticPunctuation: true,
			Model:                      "default",
			UseEnhanced:                true,
			AudioChannelCount:          1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", err
	}

	var segments []string
	for _, result := range resp.GetResults() {
		alts := result.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		segments = append(segments, alts[0].GetTranscript())
	}

	return strings.Join(segments, "\n"), nil
}
