package seamcarve

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/esimov/seamcarve/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// PipeName is the file name that indicates stdin/stdout is being used.
const PipeName = "-"

// validExtensions lists the source files picked up when carving a directory.
var validExtensions = []string{".ppm", ".pnm"}

// Ops describes where the images are read from and written to.
type Ops struct {
	Src, Dst string
	// Export is an optional second destination, encoded by its extension.
	Export string
	// Debug is an optional destination for the source image with the removed seams marked.
	Debug   string
	Workers int
	// Log receives the status messages; defaults to stderr.
	Log io.Writer
}

// result holds the relevant information about the carving process of one file.
type result struct {
	path string
	err  error
}

// ValidateDimensions checks the source and target dimensions before any
// image work begins.
func ValidateDimensions(width, height, targetWidth, targetHeight int) error {
	for _, d := range []struct {
		field string
		value int
	}{
		{"width", width},
		{"height", height},
		{"target width", targetWidth},
		{"target height", targetHeight},
	} {
		if d.value <= 0 {
			return &InputValidationError{Field: d.field, Value: d.value, Msg: "must be greater than 0"}
		}
	}
	if targetWidth > width {
		return &InputValidationError{
			Field: "target width",
			Value: targetWidth,
			Msg:   fmt.Sprintf("must not be greater than width %d", width),
		}
	}
	if targetHeight > height {
		return &InputValidationError{
			Field: "target height",
			Value: targetHeight,
			Msg:   fmt.Sprintf("must not be greater than height %d", height),
		}
	}
	return nil
}

// OutputName derives the carved file name from the source path:
// carved<width>X<height>.<source name>, next to the source file.
func OutputName(src string, width, height int) string {
	dir, base := filepath.Split(src)
	return filepath.Join(dir, fmt.Sprintf("carved%dX%d.%s", width, height, base))
}

// Execute carves a single file, a pipe or every pixel map found in a directory.
func (p *Processor) Execute(op *Ops) error {
	if op.Log == nil {
		op.Log = os.Stderr
	}
	now := time.Now()

	var (
		fi  os.FileInfo
		err error
	)
	if op.Src == PipeName {
		fi, err = os.Stdin.Stat()
	} else {
		fi, err = os.Stat(op.Src)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load the source image")
	}

	if fi.IsDir() {
		if err := p.executeDir(op); err != nil {
			return err
		}
	} else {
		if p.Spinner != nil {
			p.Spinner.Start()
		}
		dst, err := op.process(p, op.Src, op.Dst)
		if p.Spinner != nil {
			p.Spinner.Stop()
		}
		op.printOpStatus(dst, err)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(op.Log, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// executeDir processes the pixel maps of the source directory concurrently.
// Each file is still carved by a single goroutine.
func (p *Processor) executeDir(op *Ops) error {
	if op.Dst == "" || op.Dst == PipeName {
		return errors.New("a destination directory is required when the source is a directory")
	}
	if op.Export != "" || op.Debug != "" {
		return errors.New("export and debug outputs are not supported when the source is a directory")
	}
	if err := os.MkdirAll(op.Dst, 0755); err != nil {
		return errors.Wrap(err, "unable to create the destination directory")
	}

	// Limit the concurrently running workers to maxWorkers.
	workers := op.Workers
	if workers <= 0 || workers > maxWorkers {
		workers = utils.Min(runtime.NumCPU(), maxWorkers)
	}

	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	paths, errc := walkDir(done, op.Src, validExtensions)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(p, ch, done, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var failed int
	for res := range ch {
		if res.err != nil {
			failed++
		}
		op.printOpStatus(res.path, res.err)
	}
	if err := <-errc; err != nil {
		return errors.Wrap(err, "could not walk the source directory")
	}
	if failed > 0 {
		return errors.Errorf("%d image(s) could not be carved", failed)
	}
	return nil
}

// consumer reads the path names from the paths channel and carves each source image.
func (op *Ops) consumer(
	p *Processor,
	res chan<- result,
	done <-chan struct{},
	paths <-chan string,
) {
	for src := range paths {
		dst, err := op.process(p, src, op.Dst)
		if err != nil {
			dst = src
		}

		select {
		case <-done:
			return
		case res <- result{path: dst, err: err}:
		}
	}
}

// process carves the in image and writes it out. When out is empty or a
// directory the destination name is derived from the source name. It returns
// the path of the written image.
func (op *Ops) process(p *Processor, in, out string) (string, error) {
	src, err := op.openSource(in)
	if err != nil {
		return "", err
	}
	if f, ok := src.(*os.File); ok && f != os.Stdin {
		defer f.Close()
	}

	g, err := decodeImg(src, in, p.Width, p.Height)
	if err != nil {
		return "", err
	}

	var (
		orig    *image.NRGBA
		seamCol color.NRGBA
	)
	if op.Debug != "" {
		seamCol, err = utils.HexToRGBA(p.seamColor())
		if err != nil {
			return "", errors.Wrapf(err, "invalid seam color %q", p.SeamColor)
		}
		orig = g.Image()
	}

	c, err := p.Carve(g)
	if err != nil {
		return "", err
	}

	dst := op.destination(in, out, g)
	if err := writeFile(dst, func(w io.Writer) error { return encodeImg(w, dst, g) }); err != nil {
		return "", err
	}

	if op.Export != "" {
		if err := writeFile(op.Export, func(w io.Writer) error { return encodeImg(w, op.Export, g) }); err != nil {
			return "", err
		}
	}
	if op.Debug != "" {
		marked := markSeams(orig, c.Removed, seamCol)
		if err := writeFile(op.Debug, func(w io.Writer) error { return encodeRGBA(w, op.Debug, marked) }); err != nil {
			return "", err
		}
	}
	return dst, nil
}

// destination resolves the output path of a carved image.
func (op *Ops) destination(in, out string, g *Grid) string {
	if out == PipeName {
		return PipeName
	}
	name := in
	if in == PipeName {
		name = "stdin.ppm"
	}
	if out == "" {
		return OutputName(name, g.Width(), g.Height())
	}
	if fi, err := os.Stat(out); err == nil && fi.IsDir() {
		return filepath.Join(out, filepath.Base(OutputName(name, g.Width(), g.Height())))
	}
	return out
}

// openSource opens the source path, or stdin for the pipe name.
func (op *Ops) openSource(in string) (io.Reader, error) {
	if in == PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return os.Stdin, nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open the source file")
	}
	return f, nil
}

// writeFile creates the named file (or uses stdout for the pipe name) and
// fills it through enc. A partially written file is removed on failure.
func writeFile(name string, enc func(io.Writer) error) error {
	if name == PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return enc(os.Stdout)
	}

	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	if err := enc(f); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	return f.Close()
}

// printOpStatus displays the relevant information about the carving process.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(op.Log, "%s%s\n",
			utils.DecorateText("\nError carving the image: ", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return
	}
	if fname != PipeName {
		fmt.Fprintf(op.Log, "\nThe image has been saved as: %s\n",
			utils.DecorateText(fname, utils.SuccessMessage),
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan struct{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}
			// Skip the output of previous runs.
			if strings.HasPrefix(f.Name(), "carved") {
				return nil
			}
			if !utils.Contains(srcExts, strings.ToLower(filepath.Ext(f.Name()))) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
