/*
Package seamcarve shrinks plain (P3) pixel maps with content aware resizing.
The width and height are reduced by repeatedly removing the connected path
of pixels (seam) whose removal least disturbs the image, as measured by
a squared color gradient.

The package ships with a command line interface. To check the supported flags type:

	$ seamcarve --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"github.com/esimov/seamcarve"
	)

	func main() {
		p := &seamcarve.Processor{
			NewWidth:  120,
			NewHeight: 80,
		}

		if err := p.Process(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error carving image: %s", err.Error())
		}
	}
*/
package seamcarve
