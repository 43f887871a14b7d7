package utils

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowedVideoFile(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"movie.mp4", true},
		{"MOVIE.MP4", true},
		{"clip.webm", true},
		{"old.avi", true},
		{"intro.mov", true},
		{"intro.wmv", true},
		{"intro.flv", true},
		{"movie.exe", false},
		{"movie", false},
		{"movie.", false},
		{"", false},
		{".mp4.exe", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, AllowedVideoFile(tc.filename), "filename %q", tc.filename)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"movie.mp4", "movie.mp4"},
		{"../../etc/passwd", "passwd"},
		{"my movie!.mp4", "mymovie.mp4"},
		{"..mp4", "video.mp4"},
		{"///", "video"},
		{"lesson 1 (final).webm", "lesson1final.webm"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("video", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["video"][0]
}

func TestSaveUploadedVideo(t *testing.T) {
	dir := t.TempDir()
	file := makeFileHeader(t, "movie.mp4", []byte("not really a video"))

	storedName, err := SaveUploadedVideo(file, dir)
	require.NoError(t, err)

	// The stored name keeps the extension but never collides with the
	// original name.
	require.True(t, strings.HasSuffix(storedName, ".mp4"))
	require.NotEqual(t, "movie.mp4", storedName)
	require.Contains(t, storedName, "_")

	content, err := os.ReadFile(filepath.Join(dir, storedName))
	require.NoError(t, err)
	require.Equal(t, []byte("not really a video"), content)

	// Two uploads of the same file land under distinct names.
	secondName, err := SaveUploadedVideo(file, dir)
	require.NoError(t, err)
	require.NotEqual(t, storedName, secondName)
}

func TestVideoFileURL(t *testing.T) {
	require.Equal(t, "/uploads/videos/abc_movie.mp4", VideoFileURL("abc_movie.mp4"))
}

func TestRemoveVideoFile(t *testing.T) {
	dir := t.TempDir()

	// A file that is already gone must not log or fail loudly.
	RemoveVideoFile(dir, "/uploads/videos/never-existed.mp4")
	RemoveVideoFile(dir, "")

	name := "abc_movie.mp4"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))

	RemoveVideoFile(dir, VideoFileURL(name))

	_, err := os.Stat(filepath.Join(dir, name))
	require.True(t, os.IsNotExist(err))
}
