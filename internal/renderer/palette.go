package renderer

// Fixed palette, hex RGB without the leading '#' (the form DOCX run
// properties expect).
const (
	colorAccent   = "2E74B5" // title, "Parameters:" label
	colorMuted    = "808080" // introduction
	colorText     = "404040" // descriptions and parameter lines
	colorResponse = "7030A0" // response lines, distinct so outcomes scan easily
	colorNeutral  = "7F7F7F" // headings for methods outside the table
)

// methodColors maps uppercase HTTP methods to their heading color.
// New methods are additions here, not new branches.
var methodColors = map[string]string{
	"GET":    "2E8B57", // read
	"POST":   colorAccent,
	"PUT":    "ED7D31", // update
	"DELETE": "C00000", // destructive
}

// methodColor returns the heading color for a method, neutral gray for
// anything not in the table
func methodColor(method string) string {
	if color, ok := methodColors[method]; ok {
		return color
	}
	return colorNeutral
}
