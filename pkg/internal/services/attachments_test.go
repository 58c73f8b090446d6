package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quillhub/quill/pkg/internal/database"
	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/spf13/viper"
)

// pngPayload is a minimal buffer carrying the png magic bytes so content
// sniffing resolves it to image/png.
func pngPayload() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
}

func makeUploadHeader(t *testing.T, filename string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("unable to create form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("unable to write upload payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("unable to finish multipart form: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("unable to read multipart form back: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["image"][0]
}

func useTestMediaRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	viper.Set("media.root", root)
	t.Cleanup(func() { viper.Set("media.root", "") })
	return root
}

func TestStorePostImage(t *testing.T) {
	root := useTestMediaRoot(t)

	rel, meta, err := StorePostImage(makeUploadHeader(t, "sunset.png", pngPayload()))
	if err != nil {
		t.Fatalf("unable to store valid image: %v", err)
	}
	if !strings.HasSuffix(rel, ".png") {
		t.Errorf("stored path %q should carry the sniffed extension", rel)
	}
	if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
		t.Errorf("stored image missing from media root: %v", err)
	}
	if meta["content_type"] != "image/png" {
		t.Errorf("got content type %v, want image/png", meta["content_type"])
	}
	if meta["filename"] != "sunset.png" {
		t.Errorf("got filename %v, want sunset.png", meta["filename"])
	}
}

func TestStorePostImageRejectsOversized(t *testing.T) {
	root := useTestMediaRoot(t)

	payload := make([]byte, MaxImageSize+1)
	copy(payload, pngPayload())

	if _, _, err := StorePostImage(makeUploadHeader(t, "huge.png", payload)); err == nil {
		t.Fatal("oversized upload should be rejected")
	}

	entries, _ := os.ReadDir(filepath.Join(root, "posts"))
	if len(entries) != 0 {
		t.Errorf("rejected upload left %d files behind", len(entries))
	}
}

func TestStorePostImageSniffsContentType(t *testing.T) {
	root := useTestMediaRoot(t)

	// A png filename on a plain text payload must not get past sniffing.
	payload := []byte("this is not an image at all, whatever the name says")
	if _, _, err := StorePostImage(makeUploadHeader(t, "innocent.png", payload)); err == nil {
		t.Fatal("disallowed content type should be rejected")
	}

	entries, _ := os.ReadDir(filepath.Join(root, "posts"))
	if len(entries) != 0 {
		t.Errorf("rejected upload left %d files behind", len(entries))
	}
}

func TestCleanOrphanAttachments(t *testing.T) {
	useTestDatabase(t)
	root := useTestMediaRoot(t)

	rel, _, err := StorePostImage(makeUploadHeader(t, "kept.png", pngPayload()))
	if err != nil {
		t.Fatalf("unable to store image: %v", err)
	}

	author := makeTestAccount(t, "ansel")
	post := models.Post{Text: "with picture", AuthorID: author.ID, Image: &rel}
	if err := database.C.Create(&post).Error; err != nil {
		t.Fatalf("unable to create post: %v", err)
	}

	orphan := filepath.Join(root, "posts", "orphan.png")
	if err := os.WriteFile(orphan, pngPayload(), 0o644); err != nil {
		t.Fatalf("unable to plant orphan file: %v", err)
	}

	if err := CleanOrphanAttachments(); err != nil {
		t.Fatalf("unable to sweep attachments: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
		t.Errorf("referenced image should survive the sweep: %v", err)
	}
	if _, err := os.Stat(orphan); !os.IsNotExist(err) {
		t.Error("orphan image should be removed by the sweep")
	}
}

func TestCleanOrphanAttachmentsWithoutMediaDir(t *testing.T) {
	useTestDatabase(t)
	useTestMediaRoot(t)

	// Nothing uploaded yet, so the posts directory does not exist.
	if err := CleanOrphanAttachments(); err != nil {
		t.Fatalf("sweep over a missing directory should be a no-op: %v", err)
	}
}
