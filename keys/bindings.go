package keys

import "github.com/vsariola/toneboard"

// whiteRow and blackRow are the computer keyboard rows used for playing. The
// black row is offset by half a key so that e.g. "w" sits between "a" and "s".
var (
	whiteRow = []string{"A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'"}
	blackRow = []string{"W", "E", "R", "T", "Y", "U", "I", "O", "P", "[", "]"}
)

// Bindings maps computer keyboard key names to the keys of the layout. The
// n:th white key goes to the n:th key of the home row and its black key to
// the key above and to the right of it. Keys beyond the rows stay unbound.
func Bindings(groups []Group) map[string]toneboard.Key {
	ret := make(map[string]toneboard.Key)
	for i, g := range groups {
		if i >= len(whiteRow) {
			break
		}
		ret[whiteRow[i]] = g.White
		if g.HasBlack {
			ret[blackRow[i]] = g.Black
		}
	}
	return ret
}
