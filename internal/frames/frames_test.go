package frames

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watchfire-io/runcat/internal/assets"
	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/models"
)

func embeddedResolver() *Resolver {
	return NewResolver(NewFSStore(assets.FS, assets.Dir), nil)
}

func TestFrameName(t *testing.T) {
	assert.Equal(t, "dark_parrot_7", FrameName(models.ThemeDark, models.CharacterParrot, 7))
	assert.Equal(t, "light_cat_0", FrameName(models.ThemeLight, models.CharacterCat, 0))
}

func TestEmbeddedAssetsComplete(t *testing.T) {
	require.NoError(t, embeddedResolver().Preload())
}

func TestResolveLengthMatchesFrameCount(t *testing.T) {
	r := embeddedResolver()
	for _, theme := range []models.Theme{models.ThemeLight, models.ThemeDark} {
		for _, c := range models.Characters() {
			t.Run(fmt.Sprintf("%s/%s", theme, c), func(t *testing.T) {
				set, err := r.Resolve(c, theme)
				require.NoError(t, err)
				assert.Equal(t, c.FrameCount(), set.Len())
				assert.Equal(t, c, set.Character)
				assert.Equal(t, theme, set.Theme)
				for i, f := range set.Frames {
					assert.Equal(t, FrameName(theme, c, i), f.Name)
					assert.NotEmpty(t, f.Icon)
				}
			})
		}
	}
}

func TestResolveDarkDiffersFromLight(t *testing.T) {
	r := embeddedResolver()
	dark, err := r.Resolve(models.CharacterParrot, models.ThemeDark)
	require.NoError(t, err)
	light, err := r.Resolve(models.CharacterParrot, models.ThemeLight)
	require.NoError(t, err)

	require.Equal(t, 10, dark.Len())
	require.Equal(t, 10, light.Len())
	for i := range dark.Frames {
		assert.NotEqual(t, light.Frames[i].Name, dark.Frames[i].Name)
		assert.False(t, bytes.Equal(light.Frames[i].PNG, dark.Frames[i].PNG), "frame %d", i)
	}
}

func TestResolveRejectsSystemTheme(t *testing.T) {
	_, err := embeddedResolver().Resolve(models.CharacterCat, models.ThemeSystem)
	require.Error(t, err)
	assert.True(t, rcerrors.IsCode(err, rcerrors.ErrConfig))
}

func TestResolveMissingFrame(t *testing.T) {
	fsys := fstest.MapFS{}
	for i := 0; i < models.CharacterCat.FrameCount(); i++ {
		if i == 3 {
			continue
		}
		fsys[fmt.Sprintf("icons/light_cat_%d.png", i)] = &fstest.MapFile{Data: []byte("png")}
	}
	r := NewResolver(NewFSStore(fsys, "icons"), nil)

	_, err := r.Resolve(models.CharacterCat, models.ThemeLight)
	require.Error(t, err)
	assert.True(t, rcerrors.IsCode(err, rcerrors.ErrAsset))
	assert.Contains(t, err.Error(), "light_cat_3")

	assert.Error(t, r.Preload())
}

func TestResolveCaches(t *testing.T) {
	calls := 0
	encode := func(b []byte) ([]byte, error) {
		calls++
		return b, nil
	}
	r := NewResolver(NewFSStore(assets.FS, assets.Dir), encode)
	_, err := r.Resolve(models.CharacterDino, models.ThemeDark)
	require.NoError(t, err)
	_, err = r.Resolve(models.CharacterDino, models.ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, models.CharacterDino.FrameCount(), calls)
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	img.Set(4, 4, color.NRGBA{A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPNGToICO(t *testing.T) {
	out, err := PNGToICO(testPNG(t))
	require.NoError(t, err)
	require.Greater(t, len(out), 6)
	assert.Equal(t, []byte{0, 0, 1, 0}, out[:4], "ICO header")

	_, err = PNGToICO([]byte("not a png"))
	assert.Error(t, err)
}

func TestEncoderFor(t *testing.T) {
	data := testPNG(t)

	same, err := EncoderFor("linux")(data)
	require.NoError(t, err)
	assert.Equal(t, data, same)

	converted, err := EncoderFor("windows")(data)
	require.NoError(t, err)
	assert.NotEqual(t, data, converted)
}
