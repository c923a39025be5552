package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"spinwheel/src/logx"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Bitmap is filled in once its load is delivered. Until then both
// dimensions read zero, which is how drawing code tells it is not ready.
type Bitmap struct {
	src string
	img image.Image
}

func (b *Bitmap) Src() string {
	return b.src
}

func (b *Bitmap) Image() image.Image {
	if b == nil {
		return nil
	}
	return b.img
}

func (b *Bitmap) Width() int {
	if b == nil || b.img == nil {
		return 0
	}
	return b.img.Bounds().Dx()
}

func (b *Bitmap) Height() int {
	if b == nil || b.img == nil {
		return 0
	}
	return b.img.Bounds().Dy()
}

func (b *Bitmap) Loaded() bool {
	return b.Width() > 0 && b.Height() > 0
}

type loadResult struct {
	bitmap *Bitmap
	img    image.Image
	err    error
	onLoad func(*Bitmap)
}

// ImageLoader fetches and decodes bitmaps in the background. Results are
// only applied, and callbacks only run, inside Poll or Wait, so the frame
// loop that calls them stays the single owner of every Bitmap.
type ImageLoader struct {
	fsys    fs.FS
	logger  logx.Logger
	done    chan loadResult
	closed  chan struct{}
	pending int
}

// NewImageLoader reads from fsys, or the OS filesystem when fsys is nil.
func NewImageLoader(fsys fs.FS, logger logx.Logger) *ImageLoader {
	return &ImageLoader{
		fsys:   fsys,
		logger: logger,
		done:   make(chan loadResult, 16),
		closed: make(chan struct{}),
	}
}

// Load starts fetching src and returns its (still empty) bitmap at once.
// onLoad may be nil; it is not called if the load fails. After Close the
// bitmap stays empty.
func (l *ImageLoader) Load(src string, onLoad func(*Bitmap)) *Bitmap {
	b := &Bitmap{src: src}
	if l.isClosed() {
		l.logger.Warnf("load image %q after close", src)
		return b
	}
	l.pending++
	go func() {
		img, err := l.decode(src)
		select {
		case l.done <- loadResult{bitmap: b, img: img, err: err, onLoad: onLoad}:
		case <-l.closed:
		}
	}()
	return b
}

// Close drops every undelivered load and releases the goroutines still
// fetching. It is safe to call more than once.
func (l *ImageLoader) Close() {
	if l.isClosed() {
		return
	}
	close(l.closed)
	if l.pending > 0 {
		l.logger.Debugf("drop %d pending images", l.pending)
	}
	l.pending = 0
}

func (l *ImageLoader) isClosed() bool {
	select {
	case <-l.closed:
		return true
	default:
		return false
	}
}

func (l *ImageLoader) Pending() int {
	return l.pending
}

// Poll delivers finished loads without blocking and returns how many landed.
func (l *ImageLoader) Poll() int {
	if l.isClosed() {
		return 0
	}
	n := 0
	for {
		select {
		case res := <-l.done:
			l.deliver(res)
			n++
		default:
			return n
		}
	}
}

// Wait blocks until every started load is delivered or ctx ends.
func (l *ImageLoader) Wait(ctx context.Context) error {
	for l.pending > 0 {
		select {
		case res := <-l.done:
			l.deliver(res)
		case <-l.closed:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (l *ImageLoader) deliver(res loadResult) {
	l.pending--
	if res.err != nil {
		l.logger.Errorf("load image %q: %v", res.bitmap.src, res.err)
		return
	}
	res.bitmap.img = res.img
	l.logger.Debugf("image %q loaded (%dx%d)", res.bitmap.src, res.bitmap.Width(), res.bitmap.Height())
	if res.onLoad != nil {
		res.onLoad(res.bitmap)
	}
}

func (l *ImageLoader) decode(src string) (image.Image, error) {
	var data []byte
	var err error
	if l.fsys != nil {
		data, err = fs.ReadFile(l.fsys, src)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	l.logger.Debugf("decoded %q as %s", src, format)
	return img, nil
}
