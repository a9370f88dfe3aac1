package demo

import "github.com/matzehuels/uithings/pkg/errors"

var registry = []Demo{
	{
		ID:          "negative-size",
		Title:       "Negative Subview Size",
		Description: "What happens when subview has negative dimensions",
		Category:    CategoryViews,
		build:       buildNegativeSize,
	},
	{
		ID:          "bounds-origin",
		Title:       "Bounds Origin Effect",
		Description: "How does changing bounds.origin affect subviews?",
		Category:    CategoryViews,
		build:       buildBoundsOrigin,
	},
	{
		ID:          "frame-vs-autolayout",
		Title:       "Frame vs Auto Layout",
		Description: "What will happen if we manually change the frame of a view that already works with Auto Layout?",
		Category:    CategoryLayout,
		build:       buildFrameVsAutoLayout,
	},
	{
		ID:          "hole-button",
		Title:       "Button with a hole",
		Description: "How to make button that contains hole that is not interactable?",
		Category:    CategoryInteractions,
		build:       buildHoleButton,
	},
	{
		ID:          "expanding-textfield",
		Title:       "Expanding Textfield",
		Description: "How to create an expanding text field",
		Category:    CategoryInteractions,
		build:       buildExpandingTextField,
	},
	{
		ID:          "overlapping-shadow",
		Title:       "Overlapping Shadow",
		Description: "How to create an overlapping shadow",
		Category:    CategoryAdvanced,
		Variants:    []string{VariantSeparate},
		build:       buildOverlappingShadow,
	},
}

// All returns every demo in display order.
func All() []Demo {
	out := make([]Demo, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a demo by its slug.
func Lookup(id string) (Demo, error) {
	if err := errors.ValidateDemoID(id); err != nil {
		return Demo{}, err
	}
	for _, d := range registry {
		if d.ID == id {
			return d, nil
		}
	}
	return Demo{}, errors.New(errors.ErrCodeDemoNotFound, "no demo named %q", id)
}

// ByCategory groups demos by category. Categories without demos map to an
// empty slice.
func ByCategory() map[Category][]Demo {
	out := make(map[Category][]Demo, len(Categories))
	for _, c := range Categories {
		out[c] = []Demo{}
	}
	for _, d := range registry {
		out[d.Category] = append(out[d.Category], d)
	}
	return out
}
