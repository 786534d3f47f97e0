package artifacts

// DefaultTagColor is used for free-form tags without a dedicated family.
const DefaultTagColor = "gray"

var tagColors = map[string]string{
	"Music":    "green",
	"Art":      "green",
	"Graphics": "green",
	"Startup":  "fuchsia",
	"Trading":  "cyan",
	"Finance":  "cyan",
	"Robotics": "blue",
	"Hardware": "blue",
	"IoT":      "blue",
	"Cloud":    "red",
	"Game":     "purple",
}

// TagColor maps a free-form project tag to its color family. Matching is
// case-sensitive.
func TagColor(tag string) string {
	if color, ok := tagColors[tag]; ok {
		return color
	}
	return DefaultTagColor
}
