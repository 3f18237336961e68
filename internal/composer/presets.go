package composer

const (
	DefaultDuration = 10
	// VideoDuration is fixed; video stories hide the duration choice.
	VideoDuration = 60
)

// Durations are the selectable lengths, in seconds, of image and text stories.
var Durations = []int{10, 30, 60}

// Backgrounds is the gradient palette text cards cycle through.
var Backgrounds = []string{
	"from-indigo-500 via-purple-500 to-pink-500",
	"from-red-500 via-orange-500 to-yellow-500",
	"from-green-400 via-emerald-500 to-teal-500",
	"from-gray-900 via-gray-800 to-black",
	"from-blue-600 via-blue-400 to-cyan-300",
}

// TextColors are the preset swatches of the text sticker editor.
var TextColors = []string{
	"#FFFFFF", "#000000", "#EF4444", "#F97316", "#FACC15",
	"#22C55E", "#06B6D4", "#3B82F6", "#8B5CF6", "#EC4899",
}
