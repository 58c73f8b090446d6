package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"gorm.io/datatypes"
)

const MaxImageSize int64 = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

func MediaRoot() string {
	root := viper.GetString("media.root")
	if len(root) == 0 {
		root = "./media"
	}
	return root
}

// StorePostImage writes an uploaded image below the media root under a
// random name and returns its relative path along with the original upload
// metadata. The content type is sniffed from the payload, not trusted from
// the request header.
func StorePostImage(header *multipart.FileHeader) (string, datatypes.JSONMap, error) {
	if header.Size > MaxImageSize {
		return "", nil, fmt.Errorf("image exceeds the upload limit of %d MB", MaxImageSize>>20)
	}

	src, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("unable to open uploaded image: %v", err)
	}
	defer src.Close()

	probe := make([]byte, 512)
	n, _ := io.ReadFull(src, probe)
	contentType := http.DetectContentType(probe[:n])
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", nil, fmt.Errorf("unsupported image type %s", contentType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", nil, err
	}

	rel := filepath.Join("posts", uuid.NewString()+ext)
	dst := filepath.Join(MediaRoot(), rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", nil, err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", nil, err
	}
	defer out.Close()
	if _, err := io.Copy(out, src); err != nil {
		return "", nil, err
	}

	meta := datatypes.JSONMap{
		"filename":     header.Filename,
		"size":         header.Size,
		"content_type": contentType,
	}
	return rel, meta, nil
}

// CleanOrphanAttachments removes files under the media root that no post
// references anymore, e.g. images replaced during an edit or left behind by
// deleted posts.
func CleanOrphanAttachments() error {
	dir := filepath.Join(MediaRoot(), "posts")
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	var referenced []string
	if err := database.C.Model(&models.Post{}).
		Where("image IS NOT NULL").
		Pluck("image", &referenced).Error; err != nil {
		return err
	}
	keep := lo.SliceToMap(referenced, func(item string) (string, struct{}) {
		return filepath.Base(item), struct{}{}
	})

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := keep[entry.Name()]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("Unable to remove orphan attachment...")
		} else {
			log.Debug().Str("file", entry.Name()).Msg("Removed orphan attachment.")
		}
	}

	return nil
}
