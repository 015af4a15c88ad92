// Package keys lays out the keys of the virtual keyboard.
package keys

import "github.com/vsariola/toneboard"

type (
	// Group is one scale degree of the keyboard: a white key and, unless the
	// note has no sharp, the black key above it.
	Group struct {
		White    toneboard.Key
		Black    toneboard.Key
		HasBlack bool
	}
)

const (
	DefaultOctaves   = 2
	DefaultLowOctave = 4
)

// Layout returns the key groups for the given number of octaves of the scale,
// starting from lowOctave. One extra group, with only the white key of the
// first note of the scale, closes the range in the next octave.
func Layout(scale []toneboard.Note, octaves, lowOctave int) []Group {
	groups := make([]Group, 0, octaves*len(scale)+1)
	octave := lowOctave
	for i := 0; i < octaves; i++ {
		for _, note := range scale {
			g := Group{White: toneboard.Key{Note: note, Octave: octave}}
			if note.HasSharp() {
				g.Black = toneboard.Key{Note: note, Sharp: true, Octave: octave}
				g.HasBlack = true
			}
			groups = append(groups, g)
		}
		octave++
	}
	if len(scale) > 0 {
		groups = append(groups, Group{White: toneboard.Key{Note: scale[0], Octave: octave}})
	}
	return groups
}

// Standard is the two octave keyboard from C4 to C6.
func Standard() []Group {
	return Layout(toneboard.Scale, DefaultOctaves, DefaultLowOctave)
}

// Keys returns the keys of the group, white key first.
func (g Group) Keys() []toneboard.Key {
	if g.HasBlack {
		return []toneboard.Key{g.White, g.Black}
	}
	return []toneboard.Key{g.White}
}

// Flatten returns all the keys of the layout in order.
func Flatten(groups []Group) []toneboard.Key {
	var ret []toneboard.Key
	for _, g := range groups {
		ret = append(ret, g.Keys()...)
	}
	return ret
}
