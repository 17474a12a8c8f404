package offering

// Icon names mirror the lucide icons the storefront renders for each
// service card. Anything outside the set falls back to Rocket so the
// frontend never receives an icon it cannot draw.
const (
	IconCoins     = "Coins"
	IconRocket    = "Rocket"
	IconBarChart3 = "BarChart3"
	IconUsers     = "Users"

	DefaultIcon = IconRocket
)

var knownIcons = map[string]struct{}{
	IconCoins:     {},
	IconRocket:    {},
	IconBarChart3: {},
	IconUsers:     {},
}

// NormalizeIcon maps any input to a renderable icon name.
func NormalizeIcon(name string) string {
	if _, ok := knownIcons[name]; ok {
		return name
	}
	return DefaultIcon
}
