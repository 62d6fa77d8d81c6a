package gui

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"image-transform-studio/internal/config"
	"image-transform-studio/internal/core"
	imageio "image-transform-studio/internal/io"
	"image-transform-studio/internal/transform"
)

type fakeCamera struct {
	img   *core.Image
	err   error
	calls int
}

func (c *fakeCamera) Snapshot() (*core.Image, error) {
	c.calls++
	return c.img, c.err
}

type closeFailingReader struct {
	uri fyne.URI
}

func (r *closeFailingReader) Read([]byte) (int, error) { return 0, io.EOF }
func (r *closeFailingReader) Close() error             { return errors.New("close failed") }
func (r *closeFailingReader) URI() fyne.URI            { return r.uri }

func newTestApplication(t *testing.T, camera Camera) (*Application, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	a := NewApplication(test.NewTempApp(t), config.Default(), logger, imageio.NewImageLoader(logger), camera)
	return a, hook
}

func writePNG(t *testing.T, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "input.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func isPlaceholder(img image.Image) bool {
	b := img.Bounds()
	return b.Dx() == 200 && b.Dy() == 150 && img.At(0, 0) == color.RGBA{240, 240, 240, 255}
}

func TestOperationBeforeLoadIsMissingImage(t *testing.T) {
	a, _ := newTestApplication(t, nil)

	for _, kind := range transform.Kinds {
		_, err := a.RunOperation(kind)
		assert.ErrorIs(t, err, core.ErrMissingImage, kind.String())
	}
	assert.True(t, isPlaceholder(a.canvas.ResultImage()))
}

func TestTapBeforeLoadShowsErrorDialog(t *testing.T) {
	a, hook := newTestApplication(t, nil)

	test.Tap(a.toolbar.OperationButton(transform.KindNegative))

	assert.NotNil(t, a.Window().Canvas().Overlays().Top())
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), core.ErrMissingImage)
}

func TestLoadImageFromPath(t *testing.T) {
	a, _ := newTestApplication(t, nil)
	path := writePNG(t, 6, 4, color.NRGBA{R: 255, G: 128, A: 255})

	require.NoError(t, a.LoadImageFromPath(path))

	assert.True(t, a.Session().HasImage())
	assert.Equal(t, path, a.Session().Source())
	assert.Equal(t, image.Rect(0, 0, 6, 4), a.canvas.OriginalImage().Bounds())
	assert.Contains(t, a.Window().Title(), "input.png")
	assert.Contains(t, a.infoLabel.Text, "Size: 6x4")
}

func TestFailedLoadKeepsCurrentImage(t *testing.T) {
	a, _ := newTestApplication(t, nil)
	path := writePNG(t, 3, 3, color.NRGBA{B: 255, A: 255})
	require.NoError(t, a.LoadImageFromPath(path))
	before, _ := a.Session().Original()

	err := a.LoadImageFromPath(filepath.Join(t.TempDir(), "missing.png"))

	assert.ErrorIs(t, err, core.ErrLoad)
	after, err := a.Session().Original()
	require.NoError(t, err)
	assert.Same(t, before, after)
	assert.Equal(t, path, a.Session().Source())
}

func TestFailedLoadOnEmptySessionStaysEmpty(t *testing.T) {
	a, _ := newTestApplication(t, nil)

	err := a.LoadImageFromPath("photo.gif")

	assert.ErrorIs(t, err, core.ErrLoad)
	assert.False(t, a.Session().HasImage())
}

func TestOperationsApplyToOriginal(t *testing.T) {
	a, _ := newTestApplication(t, nil)
	require.NoError(t, a.LoadImageFromPath(writePNG(t, 4, 4, color.NRGBA{R: 255, G: 51, A: 255})))

	first, err := a.RunOperation(transform.KindNegative)
	require.NoError(t, err)
	second, err := a.RunOperation(transform.KindNegative)
	require.NoError(t, err)

	// Applying twice must not compound back to the original.
	assert.Equal(t, first.Pix, second.Pix)
	assert.Equal(t, color.NRGBA{R: 0, G: 204, B: 255, A: 255}, second.RGBAt(0, 0))
	assert.Equal(t, "Negative", a.canvas.ResultTitle())
}

func TestRunOperationReadsParameters(t *testing.T) {
	a, _ := newTestApplication(t, nil)
	require.NoError(t, a.LoadImageFromPath(writePNG(t, 5, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 255})))

	_, err := a.RunOperation(transform.KindChannelIsolation)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	a.properties.channelSelect.SetSelected("G")
	out, err := a.RunOperation(transform.KindChannelIsolation)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 20, A: 255}, out.RGBAt(2, 2))
	assert.Equal(t, "Channel G", a.canvas.ResultTitle())

	test.Type(a.properties.angleEntry, "ninety")
	_, err = a.RunOperation(transform.KindRotation)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	a.properties.angleEntry.SetText("90")
	out, err = a.RunOperation(transform.KindRotation)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Width())

	a.properties.xEntry.SetText("2")
	a.properties.yEntry.SetText("2")
	a.properties.radiusEntry.SetText("x")
	_, err = a.RunOperation(transform.KindCircle)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)

	a.properties.radiusEntry.SetText("1")
	_, err = a.RunOperation(transform.KindCircle)
	require.NoError(t, err)
	assert.Equal(t, "Circle (2, 2) r=1", a.canvas.ResultTitle())
}

func TestTapOperationDisplaysResult(t *testing.T) {
	a, _ := newTestApplication(t, nil)
	require.NoError(t, a.LoadImageFromPath(writePNG(t, 2, 2, color.NRGBA{A: 255})))

	test.Tap(a.toolbar.OperationButton(transform.KindNegative))

	result := a.canvas.ResultImage()
	assert.Equal(t, image.Rect(0, 0, 2, 2), result.Bounds())
	r, g, b, _ := result.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestCaptureFromCamera(t *testing.T) {
	cam := &fakeCamera{img: core.NewImage(8, 6)}
	a, _ := newTestApplication(t, cam)

	require.NoError(t, a.CaptureFromCamera())

	assert.Equal(t, 1, cam.calls)
	assert.Equal(t, "camera:0", a.Session().Source())
	assert.Equal(t, "camera", a.Session().Metadata().Format)
}

func TestCaptureFailureKeepsCurrentImage(t *testing.T) {
	cam := &fakeCamera{err: &core.DeviceError{Device: 0, Err: errors.New("busy")}}
	a, _ := newTestApplication(t, cam)
	require.NoError(t, a.LoadImageFromPath(writePNG(t, 2, 2, color.NRGBA{A: 255})))

	test.Tap(a.toolbar.cameraBtn)

	assert.NotNil(t, a.Window().Canvas().Overlays().Top())
	assert.Equal(t, ".png", filepath.Ext(a.Session().Source()))
}

func TestCaptureWithoutCamera(t *testing.T) {
	a, _ := newTestApplication(t, nil)

	err := a.CaptureFromCamera()

	assert.ErrorIs(t, err, core.ErrDevice)
	assert.False(t, a.Session().HasImage())
}

func TestLoadResetsResultPane(t *testing.T) {
	a, _ := newTestApplication(t, &fakeCamera{img: core.NewImage(3, 3)})
	require.NoError(t, a.LoadImageFromPath(writePNG(t, 2, 2, color.NRGBA{A: 255})))
	_, err := a.RunOperation(transform.KindNegative)
	require.NoError(t, err)

	require.NoError(t, a.CaptureFromCamera())
	assert.Equal(t, resultPlaceholderTitle, a.canvas.ResultTitle())
}

func TestFileChosenLogsCloseFailure(t *testing.T) {
	a, hook := newTestApplication(t, nil)
	path := writePNG(t, 3, 2, color.NRGBA{G: 255, A: 255})

	a.fileChosen(&closeFailingReader{uri: storage.NewFileURI(path)}, nil)

	assert.Equal(t, path, a.Session().Source())

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, path, entry.Data["filepath"])
			assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "close failed")
		}
	}
	assert.True(t, warned)
}

func TestFileChosenCancelled(t *testing.T) {
	a, _ := newTestApplication(t, nil)

	a.fileChosen(nil, nil)

	assert.False(t, a.Session().HasImage())
	assert.Nil(t, a.Window().Canvas().Overlays().Top())
}
