package bitmap

// Question mark glyph shown for any emoji that failed to fetch or
// decode. Gold on black so a substitution is obvious on the display.
var placeholderRows = []string{
	"000111111000",
	"001111111100",
	"011100001110",
	"011100001110",
	"000000011110",
	"000000111100",
	"000001111000",
	"000001110000",
	"000001110000",
	"000000000000",
	"000001110000",
	"000001110000",
}

// Placeholder returns the fallback bitmap at the given size. It is a
// pure function of size; two calls always produce identical output.
func Placeholder(size int) Bitmap {
	var (
		fg = RGB565(255, 215, 0)
		bg = RGB565(0, 0, 0)
	)

	n := len(placeholderRows)
	m := make(Bitmap, 0, size*size)
	for y := 0; y < size; y++ {
		row := placeholderRows[y*n/size]
		for x := 0; x < size; x++ {
			if row[x*n/size] == '1' {
				m = append(m, fg)
			} else {
				m = append(m, bg)
			}
		}
	}

	return m
}
