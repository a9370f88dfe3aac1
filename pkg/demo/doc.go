// Package demo is the catalog of demo screens.
//
// Each [Demo] pairs a title, description and [Category] with a builder that
// lays out a scene.Scene illustrating one layout or rendering quirk. The
// registry is static; [All] returns the demos in display order and [Lookup]
// finds one by its slug.
//
//	d, err := demo.Lookup("bounds-origin")
//	if err != nil {
//	    return err
//	}
//	s, err := d.Build(demo.Options{})
package demo
