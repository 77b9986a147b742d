package output

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// Animation streams rendered frames into an MJPEG AVI file, standing in for
// the original's PPM-to-video pipeline without requiring ffmpeg.
type Animation struct {
	aw     mjpeg.AviWriter
	w, h   int32
	frames int
}

func NewAnimation(fileName string, width, height, fps int) (a *Animation, err error) {
	aw, err := mjpeg.New(fileName, int32(width), int32(height), int32(fps))
	if err != nil {
		return
	}
	a = &Animation{
		aw: aw,
		w:  int32(width),
		h:  int32(height),
	}
	return
}

func (a *Animation) AddFrame(img image.Image) (err error) {
	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return
	}
	if err = a.aw.AddFrame(buf.Bytes()); err != nil {
		return
	}
	a.frames++
	return
}

func (a *Animation) Frames() int { return a.frames }

func (a *Animation) Close() error {
	return a.aw.Close()
}
