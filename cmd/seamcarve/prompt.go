package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/esimov/seamcarve"
	"github.com/pkg/errors"
)

// request holds the answers collected by the interactive dialogue.
type request struct {
	filename     string
	width        int
	height       int
	targetWidth  int
	targetHeight int
}

// prompt asks for the source file, its dimensions and the target dimensions.
// The questions are written to w only when interactive is set, so answers
// can also be piped in.
func prompt(r io.Reader, w io.Writer, interactive bool) (*request, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	ask := func(q string) {
		if interactive {
			fmt.Fprint(w, q)
		}
	}
	word := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", errors.Wrapf(err, "could not read the %s", what)
			}
			return "", errors.Errorf("missing %s", what)
		}
		return sc.Text(), nil
	}
	number := func(what string) (int, error) {
		tok, err := word(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, &seamcarve.InputValidationError{Field: what, Msg: fmt.Sprintf("%q is a non-integer value", tok)}
		}
		if v <= 0 {
			return 0, &seamcarve.InputValidationError{Field: what, Value: v, Msg: "must be greater than 0"}
		}
		return v, nil
	}

	var (
		req request
		err error
	)
	ask("Input filename: ")
	if req.filename, err = word("filename"); err != nil {
		return nil, err
	}

	ask("Input width and height: ")
	if req.width, err = number("width"); err != nil {
		return nil, err
	}
	if req.height, err = number("height"); err != nil {
		return nil, err
	}

	ask("Input target width and target height: ")
	if req.targetWidth, err = number("target width"); err != nil {
		return nil, err
	}
	if req.targetHeight, err = number("target height"); err != nil {
		return nil, err
	}

	if err := seamcarve.ValidateDimensions(req.width, req.height, req.targetWidth, req.targetHeight); err != nil {
		return nil, err
	}
	return &req, nil
}
