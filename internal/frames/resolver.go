package frames

import (
	"fmt"

	rcerrors "github.com/watchfire-io/runcat/internal/errors"
	"github.com/watchfire-io/runcat/internal/models"
)

type setKey struct {
	theme     models.Theme
	character models.Character
}

// Resolver builds and caches frame sets. It is not safe for concurrent use;
// the engine only calls it from its dispatch goroutine.
type Resolver struct {
	store  Store
	encode Encoder
	cache  map[setKey]FrameSet
}

// NewResolver creates a resolver. A nil encoder leaves PNG data untouched.
func NewResolver(store Store, encode Encoder) *Resolver {
	if encode == nil {
		encode = PassThrough
	}
	return &Resolver{
		store:  store,
		encode: encode,
		cache:  make(map[setKey]FrameSet),
	}
}

// Preload resolves every character in both concrete themes. Any missing
// frame is returned as an ASSET error.
func (r *Resolver) Preload() error {
	for _, theme := range []models.Theme{models.ThemeLight, models.ThemeDark} {
		for _, c := range models.Characters() {
			if _, err := r.Resolve(c, theme); err != nil {
				return err
			}
		}
	}
	return nil
}

// Resolve returns the frames for character in an effective theme. theme
// must be ThemeLight or ThemeDark.
func (r *Resolver) Resolve(character models.Character, theme models.Theme) (FrameSet, error) {
	if theme != models.ThemeLight && theme != models.ThemeDark {
		return FrameSet{}, rcerrors.New(rcerrors.ErrConfig,
			fmt.Sprintf("theme %s is not an effective theme", theme), "")
	}
	if !character.Valid() {
		return FrameSet{}, rcerrors.New(rcerrors.ErrConfig,
			fmt.Sprintf("unknown character %d", int(character)), "")
	}

	key := setKey{theme: theme, character: character}
	if set, ok := r.cache[key]; ok {
		return set, nil
	}

	n := character.FrameCount()
	set := FrameSet{Character: character, Theme: theme, Frames: make([]Frame, 0, n)}
	for i := 0; i < n; i++ {
		name := FrameName(theme, character, i)
		data, ok := r.store.Icon(name)
		if !ok {
			return FrameSet{}, rcerrors.MissingAsset(name)
		}
		icon, err := r.encode(data)
		if err != nil {
			return FrameSet{}, rcerrors.WrapWithCode(err, rcerrors.ErrAsset,
				fmt.Sprintf("icon frame %q is unreadable", name), "")
		}
		set.Frames = append(set.Frames, Frame{Name: name, PNG: data, Icon: icon})
	}

	r.cache[key] = set
	return set, nil
}
