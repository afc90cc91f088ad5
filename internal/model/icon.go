package model

// Icon is a symbolic icon name stored with a category.
type Icon string

// Known icons. Anything else resolves to IconFallback.
const (
	IconBriefcase    Icon = "Briefcase"
	IconLaptop       Icon = "Laptop"
	IconTrendingUp   Icon = "TrendingUp"
	IconGift         Icon = "Gift"
	IconPlusCircle   Icon = "PlusCircle"
	IconUtensils     Icon = "Utensils"
	IconHome         Icon = "Home"
	IconCar          Icon = "Car"
	IconLightbulb    Icon = "Lightbulb"
	IconHeartPulse   Icon = "HeartPulse"
	IconTicket       Icon = "Ticket"
	IconShoppingCart Icon = "ShoppingCart"
	IconBookOpen     Icon = "BookOpen"
	IconPlane        Icon = "Plane"
	IconTag          Icon = "Tag"

	IconFallback = IconTag
)

var iconGlyphs = map[Icon]string{
	IconBriefcase:    "💼",
	IconLaptop:       "💻",
	IconTrendingUp:   "📈",
	IconGift:         "🎁",
	IconPlusCircle:   "➕",
	IconUtensils:     "🍴",
	IconHome:         "🏠",
	IconCar:          "🚗",
	IconLightbulb:    "💡",
	IconHeartPulse:   "💓",
	IconTicket:       "🎟️",
	IconShoppingCart: "🛒",
	IconBookOpen:     "📖",
	IconPlane:        "✈️",
	IconTag:          "🏷️",
}

// Icons lists every known icon in a stable order.
func Icons() []Icon {
	return []Icon{
		IconBriefcase, IconLaptop, IconTrendingUp, IconGift, IconPlusCircle,
		IconUtensils, IconHome, IconCar, IconLightbulb, IconHeartPulse,
		IconTicket, IconShoppingCart, IconBookOpen, IconPlane, IconTag,
	}
}

// Known reports whether i is part of the icon set.
func (i Icon) Known() bool {
	_, ok := iconGlyphs[i]
	return ok
}

// Resolve maps unknown or legacy names to IconFallback.
func (i Icon) Resolve() Icon {
	if i.Known() {
		return i
	}
	return IconFallback
}

// Glyph returns the terminal glyph for the icon.
func (i Icon) Glyph() string {
	return iconGlyphs[i.Resolve()]
}
