// Main window: owns the session and routes every user action
package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-transform-studio/internal/config"
	"image-transform-studio/internal/core"
	"image-transform-studio/internal/transform"
)

var errNoCamera = errors.New("no camera configured")

// ImageSource decodes image files from disk.
type ImageSource interface {
	LoadImage(path string) (*core.Image, error)
	SupportedExtensions() []string
}

// Camera captures a single still frame. The call blocks until the
// driver answers.
type Camera interface {
	Snapshot() (*core.Image, error)
}

// Application represents the main window and its single image session
type Application struct {
	app    fyne.App
	window fyne.Window
	logger logrus.FieldLogger
	cfg    config.Config

	// Core components
	session *core.Session
	loader  ImageSource
	camera  Camera

	// GUI components
	canvas     *ImageCanvas
	toolbar    *Toolbar
	properties *ParametersPanel
	infoLabel  *widget.Label
	statusCard *widget.Card
}

func NewApplication(app fyne.App, cfg config.Config, logger logrus.FieldLogger, loader ImageSource, camera Camera) *Application {
	window := app.NewWindow(cfg.Title)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()

	a := &Application{
		app:     app,
		window:  window,
		logger:  logger,
		cfg:     cfg,
		session: core.NewSession(),
		loader:  loader,
		camera:  camera,
	}

	a.initializeGUI()
	a.setupLayout()
	a.setupCallbacks()

	return a
}

func (a *Application) initializeGUI() {
	a.canvas = NewImageCanvas()
	a.toolbar = NewToolbar()
	a.properties = NewParametersPanel()
	a.infoLabel = widget.NewLabel("No image loaded")
}

func (a *Application) setupLayout() {
	a.statusCard = widget.NewCard("Status", "", widget.NewLabel("Open an image or take a camera snapshot"))

	rightPanel := container.NewVBox(
		a.properties.GetContainer(),
		widget.NewCard("Image Information", "", a.infoLabel),
		a.statusCard,
	)

	content := container.NewBorder(
		container.NewVBox(a.toolbar.GetContainer(), widget.NewSeparator()), // top
		nil,        // bottom
		nil,        // left
		rightPanel, // right
		container.NewPadded(a.canvas.GetContainer()),
	)

	a.window.SetMainMenu(a.mainMenu())
	a.window.SetContent(content)
}

func (a *Application) mainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", a.openImage),
		fyne.NewMenuItem("Capture from Camera", a.captureImage),
	)

	items := make([]*fyne.MenuItem, 0, len(transform.Kinds))
	for _, kind := range transform.Kinds {
		kind := kind // per-iteration copy (go directive is 1.21)
		items = append(items, fyne.NewMenuItem(kind.String(), func() {
			a.runOperation(kind)
		}))
	}

	return fyne.NewMainMenu(fileMenu, fyne.NewMenu("Transform", items...))
}

func (a *Application) setupCallbacks() {
	a.toolbar.SetCallbacks(
		a.openImage,
		a.captureImage,
		a.runOperation,
	)
}

func (a *Application) openImage() {
	a.logger.Debug("Opening file dialog for image selection")

	fileDialog := dialog.NewFileOpen(a.fileChosen, a.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(a.loader.SupportedExtensions()))
	fileDialog.Show()
}

func (a *Application) fileChosen(reader fyne.URIReadCloser, err error) {
	if err != nil {
		a.showError("File Dialog Error", err)
		return
	}
	if reader == nil {
		return
	}

	path := reader.URI().Path()
	if err := reader.Close(); err != nil {
		a.logger.WithError(err).WithField("filepath", path).Warn("Failed to close file dialog reader")
	}

	if err := a.LoadImageFromPath(path); err != nil {
		a.showError("Failed to Load Image", err)
	}
}

func (a *Application) captureImage() {
	if err := a.CaptureFromCamera(); err != nil {
		a.showError("Camera Error", err)
	}
}

func (a *Application) runOperation(kind transform.Kind) {
	if _, err := a.RunOperation(kind); err != nil {
		a.showError(fmt.Sprintf("%s Failed", kind), err)
	}
}

// LoadImageFromPath replaces the session image with the file at path.
// On failure the current image stays loaded.
func (a *Application) LoadImageFromPath(path string) error {
	img, err := a.loader.LoadImage(path)
	if err != nil {
		return err
	}
	return a.setImage(img, path)
}

// CaptureFromCamera replaces the session image with a camera snapshot.
func (a *Application) CaptureFromCamera() error {
	if a.camera == nil {
		return &core.DeviceError{Device: a.cfg.CameraDevice, Err: errNoCamera}
	}

	img, err := a.camera.Snapshot()
	if err != nil {
		return err
	}
	return a.setImage(img, fmt.Sprintf("camera:%d", a.cfg.CameraDevice))
}

func (a *Application) setImage(img *core.Image, source string) error {
	if err := a.session.Replace(img, source); err != nil {
		return &core.LoadError{Path: source, Err: err}
	}

	a.canvas.SetOriginal(img)
	a.updateImageInfo()
	a.updateWindowTitle(source)
	a.updateStatusMessage(fmt.Sprintf("Loaded: %s", source))

	a.logger.WithField("source", source).Info("Image loaded")
	return nil
}

// RunOperation reads the parameter entries, applies kind to the original
// image and displays the result.
func (a *Application) RunOperation(kind transform.Kind) (*core.Image, error) {
	if !a.session.HasImage() {
		return nil, core.ErrMissingImage
	}

	op, err := transform.ParseOperation(kind, a.properties.Fields())
	if err != nil {
		return nil, err
	}
	return a.ApplyOperation(op)
}

// ApplyOperation transforms the original image, never a previous result,
// so operations do not compound.
func (a *Application) ApplyOperation(op transform.Operation) (*core.Image, error) {
	original, err := a.session.Original()
	if err != nil {
		return nil, err
	}

	result, err := transform.Apply(original, op)
	if err != nil {
		return nil, err
	}

	a.canvas.SetResult(op.Title(), result)
	a.updateStatusMessage(fmt.Sprintf("Applied: %s", op.Title()))

	a.logger.WithFields(logrus.Fields{
		"operation": op.Kind.String(),
		"width":     result.Width(),
		"height":    result.Height(),
	}).Debug("Operation applied")

	return result, nil
}

func (a *Application) updateImageInfo() {
	meta := a.session.Metadata()
	a.infoLabel.SetText(fmt.Sprintf("Size: %dx%d\nChannels: %d\nFormat: %s",
		meta.Width, meta.Height, meta.Channels, meta.Format))
}

func (a *Application) updateWindowTitle(source string) {
	if source != "" {
		a.window.SetTitle(fmt.Sprintf("%s - %s", a.cfg.Title, source))
	} else {
		a.window.SetTitle(a.cfg.Title)
	}
}

func (a *Application) updateStatusMessage(message string) {
	a.statusCard.SetContent(widget.NewLabel(message))
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)
	dialog.ShowError(err, a.window)
	a.updateStatusMessage(fmt.Sprintf("Error: %s", err.Error()))
}

func (a *Application) Session() *core.Session {
	return a.session
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Closing main window")
		a.session.Clear()
		a.app.Quit()
	})

	a.window.ShowAndRun()
}
