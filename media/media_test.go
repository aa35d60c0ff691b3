package media

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbsolute(t *testing.T) {
	require := require.New(t)
	require.Equal("https://gravatar.example/avatar/abc", absolute("//gravatar.example/avatar/abc"))
	require.Equal("https://cdn.example/a.png", absolute("https://cdn.example/a.png"))
}

func TestThumbnail(t *testing.T) {
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		img := image.NewRGBA(image.Rect(0, 0, 256, 256))
		for x := 0; x < 256; x++ {
			img.Set(x, x, color.RGBA{R: 0xff, A: 0xff})
		}
		w.Header().Set("Content-Type", "image/png")
		png.Encode(w, img)
	}))
	defer srv.Close()

	cache := NewCache(t.TempDir(), 96, nil)
	path, err := cache.Thumbnail(context.Background(), srv.URL+"/avatar.png")
	require.NoError(err)

	f, err := os.Open(path)
	require.NoError(err)
	defer f.Close()
	thumb, err := png.Decode(f)
	require.NoError(err)
	require.Equal(96, thumb.Bounds().Dx())
}
