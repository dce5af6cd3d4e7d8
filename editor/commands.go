package editor

import "github.com/janpfeifer/goedit/filters"

// Command binds a key symbol to a filter.
type Command struct {
	Symbol rune
	Filter string
}

var commands = []Command{
	{'p', filters.PosterizeName},
	{'c', filters.ContrastStretchName},
	{'b', filters.BoxBlurName},
	{'h', filters.FlipHorizontalName},
	{'j', filters.FlipVerticalName},
	{'g', filters.GrayscaleName},
	{'v', filters.VintageName},
}

// Commands returns the key bindings, in the order they should be presented.
func Commands() []Command {
	return append([]Command(nil), commands...)
}

// FilterFor returns the name of the filter bound to symbol.
func FilterFor(symbol rune) (string, bool) {
	for _, cmd := range commands {
		if cmd.Symbol == symbol {
			return cmd.Filter, true
		}
	}
	return "", false
}
