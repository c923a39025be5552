package sound

import (
	"math"
	"sync"
	"time"

	"spinwheel/src/logx"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// TickPlayer makes the short click heard when a pin or segment boundary
// passes the pointer. The speaker is opened on first use; if that fails the
// player stays silent and every call is a no-op.
type TickPlayer struct {
	mu          sync.Mutex
	logger      logx.Logger
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	failed      bool
}

// NewTickPlayer takes a volume in beep's log2 scale: 0 is unchanged, -1 halves.
func NewTickPlayer(volume float64, logger logx.Logger) *TickPlayer {
	return &TickPlayer{logger: logger, mixer: &beep.Mixer{}, volume: volume}
}

func (tp *TickPlayer) init() bool {
	if tp.initialized {
		return true
	}
	if tp.failed {
		return false
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		tp.logger.Warnf("sound disabled: %v", err)
		tp.failed = true
		return false
	}
	speaker.Play(tp.mixer)
	tp.initialized = true
	return true
}

// Tick plays one click.
func (tp *TickPlayer) Tick() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if !tp.init() {
		return
	}
	speaker.Lock()
	tp.mixer.Add(tp.click())
	speaker.Unlock()
}

func (tp *TickPlayer) click() beep.Streamer {
	return &effects.Volume{
		Streamer: NewClick(sampleRate, 1800, 35*time.Millisecond),
		Base:     2,
		Volume:   tp.volume,
	}
}

func (tp *TickPlayer) Close() {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	if !tp.initialized {
		return
	}
	speaker.Lock()
	tp.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	tp.initialized = false
}

// Click is a sine burst with an exponential decay, ending after its length.
type Click struct {
	rate  beep.SampleRate
	freq  float64
	total int
	pos   int
}

func NewClick(rate beep.SampleRate, freq float64, length time.Duration) *Click {
	return &Click{rate: rate, freq: freq, total: rate.N(length)}
}

func (c *Click) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		t := float64(c.pos) / float64(c.rate)
		env := math.Exp(-float64(c.pos) / float64(c.total) * 6)
		v := 0.4 * env * math.Sin(2*math.Pi*c.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *Click) Err() error { return nil }
