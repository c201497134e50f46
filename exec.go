package spritefont

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/spritefont/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// SourceExtensions lists the image types accepted in batch mode.
var SourceExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// ErrSourceOverwrite is returned when an output file would replace the source image.
var ErrSourceOverwrite = errors.New("refusing to overwrite the source image")

// descriptorExtensions lists the accepted extensions of the generated font descriptor.
var descriptorExtensions = []string{".fnt", ".txt"}

// Ops holds the command line options of a run.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int

	// Page writes the normalized glyph page as <descriptor name>_0.png.
	Page bool
	// Debug writes the glyph overlay as <descriptor name>.debug.png.
	Debug   bool
	Overlay OverlayOptions

	Spinner *utils.Spinner
	// Stderr receives the status messages. It defaults to os.Stderr.
	Stderr io.Writer
}

// result holds the relevant information about the import of a single file.
type result struct {
	path string
	err  error
}

// Execute runs the import described by op. The source can be a single image,
// a directory walked recursively, an URL or the pipe name for stdin.
func (b *BitmapImporter) Execute(op *Ops, desc FontDescription) error {
	if op.Stderr == nil {
		op.Stderr = os.Stderr
	}
	imp := *b
	if op.Debug {
		imp.KeepSource = true
	}

	// Check if source path is a local image or URL.
	src := op.Src
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if f != nil {
			defer os.Remove(f.Name())
			defer f.Close()
		}
		if err != nil {
			return fmt.Errorf("failed to load the source image: %w", err)
		}
		src = f.Name()
	}

	var (
		fs  os.FileInfo
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(src)
	}
	if err != nil {
		return &LoadError{Path: op.Src, Err: err}
	}

	// Capture CTRL-C signal and restore the cursor visibility.
	done := make(chan struct{})
	defer close(done)
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)
	go func() {
		select {
		case <-signalChan:
			if op.Spinner != nil {
				op.Spinner.RestoreCursor()
			}
			os.Exit(1)
		case <-done:
		}
	}()

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		if op.Dst == op.PipeName {
			return errors.New("importing a directory requires a destination directory")
		}
		if err := os.MkdirAll(op.Dst, 0755); err != nil {
			return fmt.Errorf("unable to create the destination directory: %w", err)
		}
		if err := imp.executeBatch(op, src, desc); err != nil {
			return err
		}
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || mode&os.ModeCharDevice != 0:
		ext := filepath.Ext(op.Dst)
		if op.Dst != op.PipeName && !utils.Contains(descriptorExtensions, ext) {
			return fmt.Errorf("%v file type not supported for the font descriptor", ext)
		}
		if op.Spinner != nil {
			op.Spinner.Start()
		}
		err := op.process(&imp, src, op.Dst, desc)
		if op.Spinner != nil {
			op.Spinner.StopMsg = op.statusMsg(err)
			op.Spinner.Stop()
		}
		op.printOpStatus(op.Dst, err)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported source: %s", op.Src)
	}

	fmt.Fprintf(op.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// executeBatch imports every supported image found under dir concurrently.
func (b *BitmapImporter) executeBatch(op *Ops, dir string, desc FontDescription) error {
	var wg sync.WaitGroup

	// Limit the concurrently running workers to maxWorkers.
	if op.Workers <= 0 || op.Workers > maxWorkers {
		op.Workers = runtime.NumCPU()
	}

	ch := make(chan result)
	done := make(chan interface{})
	defer close(done)

	paths, errc := walkDir(done, dir, SourceExtensions)

	wg.Add(op.Workers)
	for i := 0; i < op.Workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(b, op.Dst, desc, ch, done, paths)
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
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d font(s) could not be imported", failed)
	}
	return nil
}

// consumer reads the path names from the paths channel and imports the font found in each of them.
func (op *Ops) consumer(
	b *BitmapImporter,
	dest string,
	desc FontDescription,
	res chan<- result,
	done <-chan interface{},
	paths <-chan string,
) {
	for src := range paths {
		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		err := op.process(b, src, filepath.Join(dest, name+".fnt"), desc)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// process imports a single font and writes the requested outputs.
func (op *Ops) process(b *BitmapImporter, in, out string, desc FontDescription) error {
	src, err := op.openSource(in)
	if err != nil {
		return err
	}
	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	desc.FontName = in
	font, err := b.Decode(src, desc)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(out, filepath.Ext(out))
	pageFile := ""
	if op.Page && out != op.PipeName {
		pageFile = base + "_0.png"
		if err := op.checkNotSource(in, pageFile); err != nil {
			return err
		}
		if err := writeImageFile(pageFile, font.Bitmap()); err != nil {
			return err
		}
	}

	if op.Debug && out != op.PipeName {
		debugFile := base + ".debug.png"
		if err := op.checkNotSource(in, debugFile); err != nil {
			return err
		}
		overlay, err := Overlay(font.Source, font, op.Overlay)
		if err != nil {
			return err
		}
		if err := writeImageFile(debugFile, overlay); err != nil {
			return err
		}
	}

	if err := op.checkNotSource(in, out); err != nil {
		return err
	}
	dst, err := op.openDestination(out)
	if err != nil {
		return err
	}
	opts := BMFontOptions{Face: strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))}
	if pageFile != "" {
		opts.PageFile = filepath.Base(pageFile)
	}
	err = WriteBMFont(dst, font, opts)
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(f.Name())
		}
	}
	return err
}

// checkNotSource fails when out names the same file as the source image in.
func (op *Ops) checkNotSource(in, out string) error {
	if in == op.PipeName || out == op.PipeName {
		return nil
	}
	absIn, errIn := filepath.Abs(in)
	absOut, errOut := filepath.Abs(out)
	if errIn == nil && errOut == nil && absIn == absOut {
		return fmt.Errorf("%w: %s", ErrSourceOverwrite, out)
	}

	// Catch links and case insensitive file systems as well.
	fin, err := os.Stat(in)
	if err != nil {
		return nil
	}
	fout, err := os.Stat(out)
	if err != nil {
		return nil
	}
	if os.SameFile(fin, fout) {
		return fmt.Errorf("%w: %s", ErrSourceOverwrite, out)
	}
	return nil
}

// openSource converts the source path to a readable stream.
func (op *Ops) openSource(in string) (io.Reader, error) {
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		return os.Stdin, nil
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, &LoadError{Path: in, Err: err}
	}
	return f, nil
}

// openDestination converts the destination path to a writable stream.
func (op *Ops) openDestination(out string) (io.Writer, error) {
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, nil
	}
	f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return f, nil
}

// writeImageFile encodes img into a new file, in the format given by the file extension.
func writeImageFile(name string, img *image.NRGBA) error {
	if img == nil {
		return fmt.Errorf("no bitmap to write into %s", name)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", name, err)
	}
	if err := encodeImg(f, img); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	return f.Close()
}

func (op *Ops) statusMsg(err error) string {
	if err != nil {
		return utils.StatusLine("importing the font failed ✘", utils.ErrorMessage)
	}
	return utils.StatusLine("⇢ the font has been imported successfully ✔", utils.SuccessMessage)
}

// printOpStatus displays the relevant information about the import of a single file.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(op.Stderr, "%s%s",
			utils.DecorateText("\nError importing the font: ", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(op.Stderr, "\nThe font has been imported from: %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan interface{},
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
