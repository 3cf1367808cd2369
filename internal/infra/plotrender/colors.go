package plotrender

import "image/color"

var named = map[string]color.RGBA{
	"red":     {R: 0xdc, G: 0x26, B: 0x26, A: 0xff},
	"green":   {R: 0x16, G: 0xa3, B: 0x4a, A: 0xff},
	"blue":    {R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
	"orange":  {R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
	"purple":  {R: 0x93, G: 0x33, B: 0xea, A: 0xff},
	"brown":   {R: 0x92, G: 0x40, B: 0x0e, A: 0xff},
	"magenta": {R: 0xdb, G: 0x27, B: 0x77, A: 0xff},
	"teal":    {R: 0x0d, G: 0x94, B: 0x88, A: 0xff},
	"black":   {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}

// colorOf maps a palette name to an RGBA value; unknown names are black.
func colorOf(name string) color.RGBA {
	if c, ok := named[name]; ok {
		return c
	}
	return named["black"]
}
