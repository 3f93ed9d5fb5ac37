package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Extensions offered by the browse dialogs.
var (
	sourceExtensions      = []string{".gif", ".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".tif", ".webp", ".pbm", ".pgm", ".ppm"}
	destinationExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".tif"}
)

// Window is the fyne implementation of View.
type Window struct {
	win fyne.Window
	ctl *Controller

	source      *widget.Entry
	destination *widget.Entry
	grayscale   *widget.Check
	flip        *widget.Check
	convert     *widget.Button
	progress    *widget.ProgressBarInfinite
	status      *widget.Label
}

// NewWindow builds the form inside a new window of a and binds it to conv.
func NewWindow(ctx context.Context, a fyne.App, conv Converter) *Window {
	w := &Window{win: a.NewWindow("Grayscale Image Converter")}

	w.source = widget.NewEntry()
	w.source.SetPlaceHolder("Image file")
	w.destination = widget.NewEntry()
	w.destination.SetPlaceHolder("Derived from the source when empty")
	w.progress = widget.NewProgressBarInfinite()
	w.progress.Stop()
	w.progress.Hide()
	w.status = widget.NewLabel("")
	w.status.Alignment = fyne.TextAlignCenter

	// fyne.Do runs the completion on the UI goroutine.
	w.ctl = NewController(conv, w, fyne.Do)

	w.source.OnChanged = w.ctl.SetSource
	w.destination.OnChanged = w.ctl.SetDestination
	w.grayscale = widget.NewCheck("Convert to grayscale", w.ctl.SetGrayscale)
	w.grayscale.SetChecked(true)
	w.flip = widget.NewCheck("Mirror horizontally", w.ctl.SetFlip)
	w.convert = widget.NewButtonWithIcon("Convert", theme.ConfirmIcon(), func() {
		w.ctl.Convert(ctx)
	})
	w.convert.Importance = widget.HighImportance

	browseSource := widget.NewButtonWithIcon("", theme.FolderOpenIcon(), w.browseSource)
	browseDestination := widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), w.browseDestination)

	form := widget.NewForm(
		widget.NewFormItem("Source", container.NewBorder(nil, nil, nil, browseSource, w.source)),
		widget.NewFormItem("Save as", container.NewBorder(nil, nil, nil, browseDestination, w.destination)),
	)
	info := widget.NewLabel("Supported formats: GIF, JPEG, PNG, BMP, TIFF")
	info.Alignment = fyne.TextAlignCenter
	info.Importance = widget.LowImportance

	w.win.SetContent(container.NewVBox(
		form,
		w.grayscale,
		w.flip,
		w.convert,
		w.progress,
		w.status,
		info,
	))
	w.win.Resize(fyne.NewSize(560, 0))
	w.win.SetOnClosed(w.ctl.Close)

	return w
}

// ShowAndRun shows the window and runs the application loop.
func (w *Window) ShowAndRun() {
	w.win.ShowAndRun()
}

func (w *Window) browseSource() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			w.ShowError(err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()

		w.source.SetText(r.URI().Path())
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter(sourceExtensions))
	d.Show()
}

func (w *Window) browseDestination() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			w.ShowError(err)
			return
		}
		if wc == nil {
			return
		}
		// Only the path is needed; the conversion overwrites the file.
		if err := wc.Close(); err != nil {
			w.ShowError(err)
			return
		}

		w.ctl.PickDestination(wc.URI().Path())
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter(destinationExtensions))
	d.SetFileName("output.png")
	d.Show()
}

// SetDestination shows path in the destination field.
func (w *Window) SetDestination(path string) {
	w.destination.SetText(path)
}

// SetBusy disables the convert button and runs the progress bar while busy.
func (w *Window) SetBusy(busy bool) {
	if busy {
		w.convert.Disable()
		w.progress.Show()
		w.progress.Start()
		return
	}

	w.progress.Stop()
	w.progress.Hide()
	w.convert.Enable()
}

// SetStatus updates the status line, colored by level.
func (w *Window) SetStatus(text string, level Level) {
	switch level {
	case LevelWorking:
		w.status.Importance = widget.WarningImportance
	case LevelFailure:
		w.status.Importance = widget.DangerImportance
	default:
		w.status.Importance = widget.SuccessImportance
	}
	w.status.SetText(text)
}

// ShowInfo opens an information dialog.
func (w *Window) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, w.win)
}

// ShowError opens an error dialog.
func (w *Window) ShowError(err error) {
	dialog.ShowError(err, w.win)
}
