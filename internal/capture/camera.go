// Package capture grabs still frames from a webcam through OpenCV.
package capture

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"image-transform-studio/internal/core"
)

// Camera takes single snapshots from one capture device.
type Camera struct {
	device int
	logger logrus.FieldLogger
}

func NewCamera(device int, logger logrus.FieldLogger) *Camera {
	return &Camera{
		device: device,
		logger: logger,
	}
}

// Snapshot opens the device, reads one frame and releases the device.
// The read blocks until the driver returns; there is no timeout.
func (c *Camera) Snapshot() (*core.Image, error) {
	log := c.logger.WithField("device", c.device)
	log.Debug("Opening camera")

	webcam, err := gocv.VideoCaptureDevice(c.device)
	if err != nil {
		return nil, &core.DeviceError{Device: c.device, Err: err}
	}
	defer webcam.Close()

	if !webcam.IsOpened() {
		return nil, &core.DeviceError{Device: c.device, Err: errors.New("device could not be opened")}
	}

	frame := gocv.NewMat()
	defer frame.Close()

	if ok := webcam.Read(&frame); !ok || frame.Empty() {
		return nil, &core.DeviceError{Device: c.device, Err: errors.New("no frame captured")}
	}

	img, err := matToImage(frame)
	if err != nil {
		return nil, &core.DeviceError{Device: c.device, Err: err}
	}

	log.WithFields(logrus.Fields{
		"width":  img.Width(),
		"height": img.Height(),
	}).Info("Camera frame captured")

	return img, nil
}

// matToImage reorders an OpenCV frame (BGR, BGRA or gray) into RGB planes.
func matToImage(frame gocv.Mat) (*core.Image, error) {
	bgr := gocv.NewMat()
	defer bgr.Close()

	switch frame.Channels() {
	case 1:
		if err := gocv.CvtColor(frame, &bgr, gocv.ColorGrayToBGR); err != nil {
			return nil, fmt.Errorf("gray conversion failed: %w", err)
		}
	case 3:
		if err := frame.CopyTo(&bgr); err != nil {
			return nil, fmt.Errorf("frame copy failed: %w", err)
		}
	case 4:
		if err := gocv.CvtColor(frame, &bgr, gocv.ColorBGRAToBGR); err != nil {
			return nil, fmt.Errorf("alpha removal failed: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported number of channels: %d", frame.Channels())
	}

	if bgr.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unsupported frame type: %v", bgr.Type())
	}

	rgb := gocv.NewMat()
	defer rgb.Close()

	if err := gocv.CvtColor(bgr, &rgb, gocv.ColorBGRToRGB); err != nil {
		return nil, fmt.Errorf("color conversion failed: %w", err)
	}

	return core.FromRGB24(rgb.Cols(), rgb.Rows(), rgb.ToBytes())
}
