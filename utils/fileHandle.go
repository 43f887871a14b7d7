package utils

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// uploadURLPrefix is the external base path under which stored videos are
// served.
const uploadURLPrefix = "/uploads/videos/"

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// AllowedVideoFile reports whether the filename carries an extension from
// the video allow-list. The check is case-insensitive; a missing extension
// or empty name is rejected.
func AllowedVideoFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return videoExtensions[ext]
}

// SanitizeFilename reduces an uploaded filename to a safe basename. Path
// separators and traversal segments are dropped, unsafe characters removed.
// The extension is kept; an empty stem falls back to "video".
func SanitizeFilename(filename string) string {
	base := filepath.Base(filepath.Clean(filename))
	ext := strings.ToLower(filepath.Ext(base))

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = unsafeChars.ReplaceAllString(stem, "")
	stem = strings.Trim(stem, ".")
	if stem == "" {
		stem = "video"
	}

	ext = "." + unsafeChars.ReplaceAllString(strings.TrimPrefix(ext, "."), "")
	if ext == "." {
		return stem
	}
	return stem + ext
}

// SaveUploadedVideo streams the uploaded file into destDir under a
// collision-free name and returns that name. The stored name is a random
// token joined to the sanitized original name, so the extension survives
// while two uploads of the same file never clash.
func SaveUploadedVideo(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	storedName := uuid.NewString() + "_" + SanitizeFilename(file.Filename)

	dst, err := os.Create(filepath.Join(destDir, storedName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return storedName, nil
}

// VideoFileURL builds the externally addressable URL for a stored name.
func VideoFileURL(storedName string) string {
	return uploadURLPrefix + storedName
}

// RemoveVideoFile deletes the stored file behind a video URL, identified by
// its trailing path segment. A file that is already gone is not an error.
func RemoveVideoFile(destDir, videoURL string) {
	if videoURL == "" {
		return
	}
	name := path.Base(videoURL)
	if err := os.Remove(filepath.Join(destDir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove video file %s: %v", name, err)
	}
}
