package conversation

import "github.com/swiftsites/swiftsites-api/internal/domain"

// QuickPresets are the one-click project starters offered before a
// conversation begins. Applying one prefills the brief; fields the user
// already set and the preset leaves empty are kept.
var QuickPresets = map[string]domain.Brief{
	"Portfolio Site": {
		Industry: "Creative / Portfolio",
		Style:    "Minimal",
		Budget:   "₦40k–₦100k",
	},
	"E-Commerce": {
		Industry: "Retail / E-commerce",
		Style:    "Modern",
		Budget:   "₦150k–₦400k",
	},
	"Restaurant / Food": {
		Industry: "Food & Beverage",
		Style:    "Warm",
		Budget:   "₦60k–₦150k",
	},
	"Business Website": {
		Industry: "Corporate",
		Style:    "Professional",
		Budget:   "₦50k–₦200k",
	},
}

// ApplyPreset overlays a named preset onto the session brief. Returns false
// for an unknown preset name, leaving the brief untouched.
func ApplyPreset(s *Session, name string) bool {
	preset, ok := QuickPresets[name]
	if !ok {
		return false
	}
	s.brief = s.brief.Merge(preset)
	return true
}
