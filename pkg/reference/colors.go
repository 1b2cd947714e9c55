package reference

var cssColors = map[string]string{
	"default": "#3b82f6",
	"gray":    "#6b7280",
	"brown":   "#b45309",
	"orange":  "#f97316",
	"yellow":  "#eab308",
	"green":   "#22c55e",
	"blue":    "#3b82f6",
	"purple":  "#a855f7",
	"pink":    "#ec4899",
	"red":     "#ef4444",
}

var colorClasses = map[string]string{
	"default": "bg-blue-500",
	"gray":    "bg-gray-500",
	"brown":   "bg-amber-700",
	"orange":  "bg-orange-500",
	"yellow":  "bg-yellow-500",
	"green":   "bg-green-500",
	"blue":    "bg-blue-500",
	"purple":  "bg-purple-500",
	"pink":    "bg-pink-500",
	"red":     "bg-red-500",
}

// CSS converts a Notion color name to a CSS color value. Unknown colors are blue.
func CSS(color string) string {
	if css, ok := cssColors[color]; ok {
		return css
	}
	return cssColors["default"]
}

// Class converts a Notion color name to a background color class. Unknown colors are gray.
func Class(color string) string {
	if class, ok := colorClasses[color]; ok {
		return class
	}
	return colorClasses["gray"]
}
