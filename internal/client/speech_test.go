package client

import (
	"testing"

	"cloud.google.com/go/speech/apiv1/speechpb"
)

func TestEncodingForMIME(t *testing.T) {
	cases := map[string]speechpb.RecognitionConfig_AudioEncoding{
		"audio/wav":               speechpb.RecognitionConfig_LINEAR16,
		"audio/x-wav":             speechpb.RecognitionConfig_LINEAR16,
		"audio/wave":              speechpb.RecognitionConfig_LINEAR16,
		"audio/mp3":               speechpb.RecognitionConfig_MP3,
		"audio/mpeg; codecs=mp3":  speechpb.RecognitionConfig_MP3,
		"audio/ogg":               speechpb.RecognitionConfig_OGG_OPUS,
		"audio/flac":              speechpb.RecognitionConfig_FLAC,
		"audio/webm":              speechpb.RecognitionConfig_WEBM_OPUS,
		"AUDIO/WAV":               speechpb.RecognitionConfig_LINEAR16,
		"audio/mpeg":              speechpb.RecognitionConfig_LINEAR16,
		"application/octet-strea": speechpb.RecognitionConfig_LINEAR16,
		"":                        speechpb.RecognitionConfig_LINEAR16,
	}

	for mime, want := range cases {
		if got := EncodingForMIME(mime); got != want {
			t.Errorf("EncodingForMIME(%q) = %v, want %v", mime, got, want)
		}
	}
}
