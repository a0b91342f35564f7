package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snap-point/insta-api/config"
)

func TestDiskStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	d := NewDiskStorage(root, "/media/")

	require.NoError(t, d.Put(ctx, "posts/1/a.jpg", strings.NewReader("jpeg"), "image/jpeg"))
	data, err := os.ReadFile(filepath.Join(root, "posts", "1", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
	assert.Equal(t, "/media/posts/1/a.jpg", d.URL("posts/1/a.jpg"))

	require.NoError(t, d.Delete(ctx, "posts/1/a.jpg"))
	_, err = os.Stat(filepath.Join(root, "posts", "1", "a.jpg"))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, d.Delete(ctx, "posts/1/a.jpg"))
}

func TestDiskStorageStaysUnderRoot(t *testing.T) {
	root := t.TempDir()
	d := NewDiskStorage(root, "/media")

	p, err := d.path("../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, root))

	_, err = d.path("/")
	assert.Error(t, err)
}

func TestPostImageKey(t *testing.T) {
	key := PostImageKey(7, "Beach.PNG", "image/png")
	assert.True(t, strings.HasPrefix(key, "posts/7/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
	assert.NotEqual(t, key, PostImageKey(7, "Beach.PNG", "image/png"))

	assert.True(t, strings.HasSuffix(PostImageKey(7, "blob", "image/webp"), ".webp"))
}

func TestIsImageType(t *testing.T) {
	assert.True(t, IsImageType("image/jpeg"))
	assert.False(t, IsImageType("video/mp4"))
}

func TestR2StorageURL(t *testing.T) {
	r := NewR2Storage(config.R2Config{AccountID: "acc", BucketName: "b", PublicURL: "https://cdn.test/", Region: "auto"})
	assert.Equal(t, "https://cdn.test/posts/1/x.jpg", r.URL("posts/1/x.jpg"))
}
