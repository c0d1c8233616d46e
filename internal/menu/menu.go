// Package menu holds the static landing-page content: dish records, the
// subscription plans, FAQ entries, and section navigation. Rendering is the
// UI layer's concern; this package only owns the data.
package menu

// Dish is a catalog item shown in the menu grid and the detail dialog.
// Image is a glyph reference resolved by the renderer.
type Dish struct {
	ID          string
	Name        string
	Description string
	Image       string
}

// Plan is a subscription tier shown in the pricing section.
type Plan struct {
	ID           string
	Name         string
	PricePerHead string
	Blurb        string
	Features     []string
}

// FAQ is one collapsible question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// NavItem is an in-page section jump in the header and drawer.
type NavItem struct {
	ID    string
	Label string
}

// Hero copy.
const (
	Tagline    = "Lunch, handled."
	Subtagline = "Chef-made office catering on subscription. Fresh every day, zero coordination overhead."
	Brand      = "grazebox"
	CTALabel   = "Get a quote"
)

// Nav lists the header navigation in page order.
var Nav = []NavItem{
	{ID: "menu", Label: "Menu"},
	{ID: "how", Label: "How it works"},
	{ID: "pricing", Label: "Pricing"},
	{ID: "faq", Label: "FAQ"},
	{ID: "quote", Label: "Get a quote"},
}

// Dishes is the rotating sample menu.
var Dishes = []Dish{
	{
		ID:          "harvest-bowl",
		Name:        "Harvest Grain Bowl",
		Description: "Roasted squash, farro, pickled red onion, toasted seeds, and a maple-tahini dressing. Our most reordered lunch three quarters running.",
		Image:       "bowl",
	},
	{
		ID:          "citrus-salmon",
		Name:        "Citrus-Glazed Salmon",
		Description: "Slow-roasted salmon with charred broccolini and a blood-orange glaze. Arrives warm, plates itself.",
		Image:       "fish",
	},
	{
		ID:          "garden-flatbread",
		Name:        "Garden Flatbread",
		Description: "Wood-fired flatbread with whipped ricotta, seasonal vegetables, and hot honey. Cut for sharing.",
		Image:       "flatbread",
	},
	{
		ID:          "miso-noodles",
		Name:        "Sesame Miso Noodles",
		Description: "Chilled noodles, crisp vegetables, and a ginger-miso sauce that survives the ride. Vegan without trying.",
		Image:       "noodles",
	},
	{
		ID:          "taco-spread",
		Name:        "Build-Your-Own Taco Spread",
		Description: "Braised short rib, achiote mushrooms, fresh tortillas, and all the fixings. The Friday favorite.",
		Image:       "taco",
	},
	{
		ID:          "mezze-board",
		Name:        "Mezze Board",
		Description: "Hummus, muhammara, warm pita, olives, and marinated feta. Grazing-friendly for long meetings.",
		Image:       "mezze",
	},
}

// DishByID returns the dish with the given id.
func DishByID(id string) (Dish, bool) {
	for _, d := range Dishes {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}

// Plans lists the subscription tiers in display order. IDs line up with the
// lead form's plan values.
var Plans = []Plan{
	{
		ID:           "signature",
		Name:         "Signature",
		PricePerHead: "$14",
		Blurb:        "Our rotating chef's menu, delivered daily.",
		Features: []string{
			"Chef-curated weekly rotation",
			"Dietary tags on every dish",
			"Delivery before noon, every day",
		},
	},
	{
		ID:           "plant-based",
		Name:         "Plant-Based",
		PricePerHead: "$13",
		Blurb:        "The full rotation, entirely from the garden.",
		Features: []string{
			"100% plant-based menu",
			"Protein-forward mains daily",
			"Compostable packaging throughout",
		},
	},
	{
		ID:           "custom",
		Name:         "Custom",
		PricePerHead: "let's talk",
		Blurb:        "Your team, your menu, your schedule.",
		Features: []string{
			"Dedicated menu planner",
			"Allergy and preference mapping",
			"Events and offsite catering",
		},
	},
}

// Steps describe the onboarding flow for the how-it-works section.
var Steps = []struct {
	Title string
	Body  string
}{
	{"Tell us about your office", "Team size, dietary mix, delivery window. Five minutes, once."},
	{"We plan the menu", "A chef-curated rotation tuned to your team, refreshed weekly."},
	{"Lunch shows up", "Delivered, set up, and cleared away. You just eat."},
}

// FAQs back the accordion section.
var FAQs = []FAQ{
	{
		Question: "What's the minimum team size?",
		Answer:   "We cater for offices of 10 or more. Smaller team? Get in touch anyway - we sometimes pool nearby offices onto one route.",
	},
	{
		Question: "Can you handle allergies and dietary restrictions?",
		Answer:   "Yes. Every dish is tagged, and your menu planner maps the rotation against your team's restrictions before anything ships.",
	},
	{
		Question: "How far in advance do we need to order?",
		Answer:   "You don't. Once you're subscribed, lunch arrives on your schedule. Headcount changes need a day's notice.",
	},
	{
		Question: "What if we need to skip a week?",
		Answer:   "Pause any week from your dashboard up to 48 hours out. No charge, no questions.",
	},
	{
		Question: "Which cities do you serve?",
		Answer:   "Currently Portland, Seattle, and the Bay Area, with more routes opening this year.",
	},
}

// Footer copy.
const FooterNote = "grazebox · chef-made office catering · hello@grazebox.example"
