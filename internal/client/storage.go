package client

import (
	"context"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// StorageClient wraps the Google Cloud Storage client.
type StorageClient struct {
	client     *storage.Client
	bucketName string
}

// ObjectInfo describes a stored object for search listings.
type ObjectInfo struct {
	Name        string
	ContentType string
	Updated     time.Time
	Size        int64
}

// NewStorageClient creates a new storage client. credentialsFile may be
// empty, in which case application default credentials are used.
func NewStorageClient(ctx context.Context, bucketName, credentialsFile string) (*StorageClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &StorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// Close closes the client.
func (c *StorageClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Upload writes data to the bucket under objectName with the given content
// type and object metadata, and returns the public URL.
func (c *StorageClient) Upload(ctx context.Context, objectName, contentType string, metadata map[string]string, data []byte) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = metadata

	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return "https://storage.googleapis.com/" + c.bucketName + "/" + objectName, nil
}

// UploadReader uploads data from a reader to cloud storage.
func (c *StorageClient) UploadReader(ctx context.Context, objectName, contentType string, reader io.Reader) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, reader); err != nil {
		w.Close()
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return "https://storage.googleapis.com/" + c.bucketName + "/" + objectName, nil
}

// Download reads an object's full content.
func (c *StorageClient) Download(ctx context.Context, objectName string) ([]byte, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectName)
	r, err := obj.NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

// Delete deletes an object from cloud storage.
func (c *StorageClient) Delete(ctx context.Context, objectName string) error {
	return c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx)
}

// Exists checks whether an object exists in cloud storage.
func (c *StorageClient) Exists(ctx context.Context, objectName string) (bool, error) {
	_, err := c.client.Bucket(c.bucketName).Object(objectName).Attrs(ctx)
	if err == storage.ErrObjectNotExist {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List lists objects in the bucket with the given prefix, including the
// metadata needed for search listings.
func (c *StorageClient) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	it := c.client.Bucket(c.bucketName).Objects(ctx, &storage.Query{Prefix: prefix})

	var objects []ObjectInfo
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, ObjectInfo{
			Name:        attrs.Name,
			ContentType: attrs.ContentType,
			Updated:     attrs.Updated,
			Size:        attrs.Size,
		})
	}

	return objects, nil
}
