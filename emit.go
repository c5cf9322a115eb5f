package emojitab

import (
	"fmt"
	"io"
	"strings"
)

// emitter serializes the assembled table as a C header. The layout is a
// contract with the firmware rendering code: per-category sections of
// bitmap constants, then the combined EMOJI_TABLE in declaration order
// and the EMOJI_COUNT constant. Output is byte-stable for identical
// input entries.
type emitter struct {
	w   io.Writer
	err error
}

func (e *emitter) printf(format string, a ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

func constName(name string) string {
	return "EMOJI_BMP_" + strings.ToUpper(name)
}

func (e *emitter) emit(entries []entry) error {
	counts := make(map[string]int)
	for _, en := range entries {
		counts[en.category]++
	}

	e.printf("/**\n")
	e.printf(" * Emoji bitmap data (auto-generated, do not edit)\n")
	e.printf(" *\n")
	e.printf(" * Twemoji graphics licensed under CC-BY 4.0\n")
	e.printf(" * https://github.com/twitter/twemoji\n")
	e.printf(" *\n")
	e.printf(" * Total: %d emoji as %dx%d RGB565 bitmaps\n", len(entries), Size, Size)
	e.printf(" */\n")
	e.printf("\n")
	e.printf("#ifndef EMOJI_DATA_H\n")
	e.printf("#define EMOJI_DATA_H\n")
	e.printf("\n")
	e.printf("#include <Arduino.h>\n")
	e.printf("#include \"Emoji.h\"\n")
	e.printf("\n")

	category := ""
	for _, en := range entries {
		if en.category != category {
			category = en.category
			e.printf("// ============ %s (%d emoji) ============\n", category, counts[category])
			e.printf("\n")
		}

		e.printf("static const uint16_t %s[%d] PROGMEM = {\n", constName(en.Name), Size*Size)
		for y := 0; y < Size; y++ {
			e.printf("    ")
			for x := 0; x < Size; x++ {
				if x > 0 {
					e.printf(", ")
				}
				e.printf("0x%04X", en.bitmap[y*Size+x])
			}
			if y < Size-1 {
				e.printf(",")
			}
			e.printf("\n")
		}
		e.printf("};\n")
		e.printf("\n")
	}

	e.printf("// ============ EMOJI TABLE ============\n")
	e.printf("\n")
	e.printf("const int EMOJI_COUNT = %d;\n", len(entries))
	e.printf("\n")
	e.printf("const EmojiEntry EMOJI_TABLE[EMOJI_COUNT] PROGMEM = {\n")
	for _, en := range entries {
		e.printf("    { 0x%05X, \"%s\", %s, EmojiCategory::%s },\n", en.Code, en.Name, constName(en.Name), en.category)
	}
	e.printf("};\n")
	e.printf("\n")
	e.printf("#endif // EMOJI_DATA_H\n")

	return e.err
}
