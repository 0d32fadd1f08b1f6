package report

import (
	"fmt"

	"github.com/taigrr/colorhash"
)

// ContentKey returns a bucketed content address "<bucket>-<digest>" with
// the bucket in 0-999. Equal digests always share a key, so manifests can
// be sharded by bucket.
func ContentKey(digest string) string {
	if digest == "" {
		return ""
	}
	bucket := colorhash.HashString(digest) % 1000
	if bucket < 0 {
		bucket = -bucket
	}
	return fmt.Sprintf("%d-%s", bucket, digest)
}
