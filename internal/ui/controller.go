// Package ui implements the desktop form. The Controller holds the form
// state and runs conversions; Window binds it to fyne widgets.
package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/grayflip/internal/model"
	"github.com/aliskhannn/grayflip/internal/service/convert"
)

var (
	ErrNoSource = errors.New("select an image file")
	ErrBusy     = errors.New("a conversion is already running")
	ErrPanic    = errors.New("conversion crashed")
)

// Level tells the view how to style the status line.
type Level int

const (
	LevelReady Level = iota
	LevelWorking
	LevelSuccess
	LevelFailure
)

// Converter runs one conversion.
type Converter interface {
	Convert(ctx context.Context, req model.ProcessingRequest, opts ...convert.Option) (model.Result, error)
}

// View is the part of the window the controller drives. Its methods are
// only ever called on the UI thread.
type View interface {
	SetDestination(path string)
	SetBusy(busy bool)
	SetStatus(text string, level Level)
	ShowInfo(title, message string)
	ShowError(err error)
}

// Outcome is what a finished conversion hands back to the UI thread.
type Outcome struct {
	Request model.ProcessingRequest
	Result  model.Result
	Err     error
}

// Controller keeps the form state. All methods must be called on the UI
// thread; post schedules a function onto that thread.
type Controller struct {
	conv Converter
	view View
	post func(func())

	form      model.ProcessingRequest
	suggested string
	running   bool

	// placeholder is a destination created empty by the save dialog.
	placeholder string
}

// NewController creates a Controller with grayscale on and flip off.
func NewController(conv Converter, view View, post func(func())) *Controller {
	c := &Controller{
		conv: conv,
		view: view,
		post: post,
		form: model.ProcessingRequest{Grayscale: true},
	}
	view.SetStatus("Ready", LevelReady)

	return c
}

// Request returns a snapshot of the form.
func (c *Controller) Request() model.ProcessingRequest {
	return c.form
}

// Running reports whether a conversion is in flight.
func (c *Controller) Running() bool {
	return c.running
}

// SetSource records the source path and refreshes the suggested destination.
func (c *Controller) SetSource(path string) {
	c.form.SourcePath = path
	c.suggest()
}

// SetGrayscale toggles grayscale conversion.
func (c *Controller) SetGrayscale(on bool) {
	c.form.Grayscale = on
	c.suggest()
}

// SetFlip toggles the horizontal mirror.
func (c *Controller) SetFlip(on bool) {
	c.form.FlipHorizontal = on
	c.suggest()
}

// SetDestination records a destination typed or picked by the user.
func (c *Controller) SetDestination(path string) {
	c.form.DestinationPath = path
}

// PickDestination records a destination chosen in the save dialog, which
// has already created it as an empty file. The file is removed again if it
// is still empty after a failed run or when the form closes.
func (c *Controller) PickDestination(path string) {
	c.discardPlaceholder()
	c.placeholder = path
	c.SetDestination(path)
	c.view.SetDestination(path)
}

// Close removes a picked destination that never received any output.
func (c *Controller) Close() {
	if c.running {
		return
	}
	c.discardPlaceholder()
}

func (c *Controller) discardPlaceholder() {
	if c.placeholder == "" {
		return
	}

	path := c.placeholder
	c.placeholder = ""
	if err := removeIfEmpty(path); err != nil {
		zlog.Logger.Error().Err(err).Str("path", path).Msg("failed to remove empty destination")
	}
}

// removeIfEmpty deletes path when it is an empty regular file.
func removeIfEmpty(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() > 0 {
		return nil
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// suggest derives the destination from the source and flags. A destination
// the user changed by hand is left alone.
func (c *Controller) suggest() {
	if c.form.SourcePath == "" {
		return
	}
	if c.form.DestinationPath != "" && c.form.DestinationPath != c.suggested {
		return
	}

	c.suggested = model.DestinationFor(c.form.SourcePath, c.form.Grayscale, c.form.FlipHorizontal)
	c.form.DestinationPath = c.suggested
	c.view.SetDestination(c.suggested)
}

// Convert starts a conversion of the current form in a worker goroutine.
// The returned channel yields the outcome once the view has been updated
// with it. It returns nil when the form is rejected up front.
func (c *Controller) Convert(ctx context.Context) <-chan Outcome {
	req := c.form

	switch {
	case c.running:
		c.view.ShowError(ErrBusy)
		return nil
	case req.SourcePath == "":
		c.view.ShowError(ErrNoSource)
		return nil
	case !req.HasOperation():
		c.view.ShowError(convert.ErrNoOperation)
		return nil
	}

	c.running = true
	c.view.SetBusy(true)
	c.view.SetStatus("Converting...", LevelWorking)

	future := make(chan Outcome, 1)
	go func() {
		future <- c.work(ctx, req)
	}()

	applied := make(chan Outcome, 1)
	go func() {
		out := <-future
		c.post(func() {
			c.finish(out)
			applied <- out
		})
	}()

	return applied
}

func (c *Controller) work(ctx context.Context, req model.ProcessingRequest) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Logger.Error().Interface("panic", r).Str("source", req.SourcePath).Msg("conversion panicked")
			out = Outcome{Request: req, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()

	res, err := c.conv.Convert(ctx, req)

	return Outcome{Request: req, Result: res, Err: err}
}

func (c *Controller) finish(out Outcome) {
	c.running = false
	c.view.SetBusy(false)

	if out.Err != nil {
		if c.placeholder != "" && c.placeholder == out.Request.Destination() {
			c.discardPlaceholder()
		}
		c.view.SetStatus("Error", LevelFailure)
		c.view.ShowError(fmt.Errorf("conversion failed: %w", out.Err))
		return
	}

	if c.placeholder == out.Request.Destination() {
		c.placeholder = ""
	}
	c.view.SetStatus("Done! Saved: "+filepath.Base(out.Result.DestinationPath), LevelSuccess)
	c.view.ShowInfo("Success", "Image converted successfully!\nSaved: "+out.Result.DestinationPath)
}
