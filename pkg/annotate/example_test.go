package annotate_test

import (
	"fmt"

	"github.com/matzehuels/uithings/pkg/annotate"
	"github.com/matzehuels/uithings/pkg/geom"
)

func ExamplePlace() {
	subject := geom.R(100, 100, 50, 50)
	label := geom.Sz(80, 20)

	roomy := annotate.Place(subject, label, geom.R(0, 0, 400, 400), annotate.Automatic, annotate.DefaultOffset)
	short := annotate.Place(subject, label, geom.R(0, 0, 400, 160), annotate.Automatic, annotate.DefaultOffset)

	fmt.Println(roomy)
	fmt.Println(short)
	// Output:
	// {85 158 80 20}
	// {85 72 80 20}
}

func ExampleResolve() {
	subject := geom.R(0, 0, 100, 100)
	pos := annotate.Resolve(subject, geom.Sz(80, 20), subject, annotate.Automatic, 8)
	fmt.Println(pos)
	// Output: topRight
}
