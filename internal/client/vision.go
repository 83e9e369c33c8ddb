package client

import (
	"bytes"
	"context"

	vision "cloud.google.com/go/vision/apiv1"
	"google.golang.org/api/option"
)

// VisionClient wraps the Google Cloud Vision text-detection client.
type VisionClient struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionClient creates a new Vision client. credentialsFile may be empty,
// in which case application default credentials are used.
func NewVisionClient(ctx context.Context, credentialsFile string) (*VisionClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &VisionClient{client: client}, nil
}

// Close closes the client.
func (c *VisionClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// DetectText runs text detection on an image and returns the best full-text
// annotation. An image with no detectable text returns ("", nil); the caller
// decides how to surface it.
func (c *VisionClient) DetectText(ctx context.Context, image []byte) (string, error) {
	img, err := vision.NewImageFromReader(bytes.NewReader(image))
	if err != nil {
		return "", err
	}

	annotations, err := c.client.DetectTexts(ctx, img, nil, 1)
	if err != nil {
		return "", err
	}

	if len(annotations) == 0 {
		return "", nil
	}

	// The first annotation is the full-text aggregate
	return annotations[0].GetDescription(), nil
}
