package driver

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/RussellLuo/timingwheel"
)

type progress struct {
	mu       sync.Mutex
	stopped  bool
	out      io.Writer
	total    int
	interval time.Duration
	done     atomic.Int64

	tw    *timingwheel.TimingWheel
	timer *timingwheel.Timer
}

type every time.Duration

func (e every) Next(prev time.Time) time.Time {
	return prev.Add(time.Duration(e))
}

func newProgress(out io.Writer, total int, interval time.Duration) *progress {
	return &progress{out: out, total: total, interval: interval}
}

func (p *progress) start(seed uint64, dir string) {
	if p.out == nil {
		return
	}
	p.printf("** New Run %s ** seed=%d fixtures=%d dir=%s \n",
		time.Now().Format("2006_01_02_15_04_05"), seed, p.total, dir)

	if p.interval <= 0 {
		return
	}
	p.tw = timingwheel.NewTimingWheel(p.interval, 20)
	p.tw.Start()
	p.timer = p.tw.ScheduleFunc(every(p.interval), p.tick)
}

func (p *progress) stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	if p.tw != nil {
		p.tw.Stop()
	}
}

// tick runs on a timing wheel goroutine and may fire after stop.
func (p *progress) tick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	fmt.Fprintf(p.out, "Generated %s/%s fixtures \n", commaize(p.done.Load()), commaize(int64(p.total)))
}

func (p *progress) report(s Stats) {
	if p.out == nil {
		return
	}
	rate := int64(0)
	if secs := s.Elapsed.Seconds(); secs > 0 {
		rate = int64(float64(s.Fixtures) / secs)
	}
	p.printf("Generated %s fixtures in %s (%s fixtures/sec). Avg fixture time %s \n",
		commaize(int64(s.Fixtures)), s.Elapsed, commaize(rate), s.AvgFixture)
}

func (p *progress) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

func commaize(n int64) string {
	s1, s2 := fmt.Sprintf("%d", n), ""
	for i, j := len(s1)-1, 0; i >= 0; i, j = i-1, j+1 {
		if j%3 == 0 && j != 0 {
			s2 = "," + s2
		}
		s2 = string(s1[i]) + s2
	}
	return s2
}
