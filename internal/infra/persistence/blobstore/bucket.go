// Package blobstore keeps guild documents as JSON objects on a gocloud blob
// bucket. It serves deployments without PostgreSQL.
package blobstore

import (
	"context"

	"guildbook/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// DefaultBucketURL is used when no bucket URL is configured.
const DefaultBucketURL = "mem://"

// OpenBucket opens the bucket behind url. An empty url opens an in-memory bucket.
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	if url == "" {
		url = DefaultBucketURL
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", url)
	}

	return bucket, nil
}
