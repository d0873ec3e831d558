// Command pixread converts images into raw pixel buffers and runs them
// through the OCR pipeline. It is mainly a debugging surface for the
// readfile conversion layer.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/folkevil/textfairy/grayscale"
	"github.com/folkevil/textfairy/internal/ocr"
	"github.com/folkevil/textfairy/pixio"
	"github.com/folkevil/textfairy/readfile"
)

type cmdContext struct {
	reader *readfile.Reader
}

type infoCmd struct {
	Source string `arg:"" help:"Image file or http(s) URL"`
}

func (c *infoCmd) Run(ctx *cmdContext) error {
	pix := ctx.reader.Read(source(c.Source))
	if pix == nil {
		return fmt.Errorf("could not read %q", c.Source)
	}
	fmt.Printf("%s stride=%d bytes=%d\n", pix, pix.Stride(), len(pix.Bytes()))
	return nil
}

type grayCmd struct {
	Source string `arg:"" help:"Image file or http(s) URL"`
	Out    string `arg:"" help:"Destination raw dump (.pix)"`
}

func (c *grayCmd) Run(ctx *cmdContext) error {
	pix := ctx.reader.Read(source(c.Source))
	if pix == nil {
		return fmt.Errorf("could not read %q", c.Source)
	}
	data, w, h, err := grayscale.FromBuffer(pix)
	if err != nil {
		return err
	}
	gray, err := readfile.ReadGray8(data, w, h)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create dump file %q: %w", c.Out, err)
	}
	defer f.Close()

	if err := pixio.Save(f, gray); err != nil {
		return err
	}
	slog.Info("wrote grayscale dump", "out", c.Out, "width", w, "height", h)
	return nil
}

type showCmd struct {
	Dump string `arg:"" help:"Raw dump (.pix) to inspect"`
}

func (c *showCmd) Run(ctx *cmdContext) error {
	f, err := os.Open(c.Dump)
	if err != nil {
		return fmt.Errorf("could not open dump file %q: %w", c.Dump, err)
	}
	defer f.Close()

	pix, err := pixio.Load(f)
	if err != nil {
		return err
	}
	fmt.Printf("%s stride=%d bytes=%d\n", pix, pix.Stride(), len(pix.Bytes()))
	return nil
}

type ocrCmd struct {
	Source   string `arg:"" help:"Image file or http(s) URL"`
	Language string `help:"Tesseract language code" default:"eng"`
}

func (c *ocrCmd) Run(ctx *cmdContext) error {
	pix := ctx.reader.Read(source(c.Source))
	if pix == nil {
		return fmt.Errorf("could not read %q", c.Source)
	}
	data, w, h, err := grayscale.FromBuffer(pix)
	if err != nil {
		return err
	}
	gray, err := readfile.ReadGray8(data, w, h)
	if err != nil {
		return err
	}

	result, err := ocr.ExtractText(gray, c.Language)
	if err != nil {
		return err
	}
	fmt.Println(result.FullText)
	return nil
}

var cli struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Info infoCmd `cmd:"" help:"Read an image and print its buffer geometry"`
	Gray grayCmd `cmd:"" help:"Convert an image to a raw grayscale dump"`
	Show showCmd `cmd:"" help:"Print the geometry of a raw dump"`
	Ocr  ocrCmd  `cmd:"" help:"Recognize text in an image"`
}

// source maps a CLI argument onto the readfile source variant: http(s)
// arguments load over the network, everything else is a file path.
func source(s string) readfile.Source {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return readfile.URLSource(s)
	}
	return readfile.FileSource(s)
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("pixread"),
		kong.Description("Convert images into raw pixel buffers for the OCR pipeline."))

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	err := kctx.Run(&cmdContext{reader: readfile.Default()})
	kctx.FatalIfErrorf(err)
}
