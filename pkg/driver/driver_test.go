package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dborchard/ostgen/pkg/config"
	"github.com/dborchard/ostgen/pkg/diskio"
)

func seedPtr(s uint64) *uint64 {
	return &s
}

func orderStatConfig(dir string, number int) *config.OrderStatConfig {
	return &config.OrderStatConfig{
		Output:      config.Output{Path: dir, Number: number},
		Elements:    &config.Range{Min: 2, Max: 40},
		Integers:    &config.Range{Min: 0, Max: 1000},
		KthQueries:  &config.Range{Min: 0, Max: 20},
		LessQueries: &config.Range{Min: 0, Max: 20},
	}
}

func readAll(t *testing.T, dir string) map[string]string {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	files := map[string]string{}
	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		files[e.Name()] = string(b)
	}
	return files
}

func TestExactlyThreeKeys(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := orderStatConfig(dir, 1)
	cfg.Elements = &config.Range{Min: 3, Max: 4}
	cfg.Integers = &config.Range{Min: 0, Max: 100}

	_, err := RunOrderStat(cfg, Options{Seed: seedPtr(1)})
	require.NoError(t, err)

	files := readAll(t, dir)
	require.Len(t, files, 2)

	toks := strings.Fields(files["test0.dat"])
	var k, queries int
	for i := 0; i < len(toks); i += 2 {
		switch toks[i] {
		case "k":
			k++
		case "m", "n":
			queries++
		default:
			t.Fatalf("bad opcode %q", toks[i])
		}
	}
	assert.Equal(t, 3, k)
	assert.Len(t, strings.Fields(files["test0.dat.ans"]), queries)
}

func TestPooledMatchesSequential(t *testing.T) {
	seqDir := filepath.Join(t.TempDir(), "seq")
	poolDir := filepath.Join(t.TempDir(), "pool")

	_, err := RunOrderStat(orderStatConfig(seqDir, 25), Options{Seed: seedPtr(42)})
	require.NoError(t, err)
	_, err = RunOrderStat(orderStatConfig(poolDir, 25), Options{Seed: seedPtr(42), Workers: 4})
	require.NoError(t, err)

	seq := readAll(t, seqDir)
	assert.Len(t, seq, 50)
	assert.Equal(t, seq, readAll(t, poolDir))
}

func TestConfigSeedIsUsed(t *testing.T) {
	a := orderStatConfig(filepath.Join(t.TempDir(), "a"), 3)
	a.Seed = seedPtr(9)
	b := orderStatConfig(filepath.Join(t.TempDir(), "b"), 3)
	b.Seed = seedPtr(9)

	sa, err := RunOrderStat(a, Options{})
	require.NoError(t, err)
	_, err = RunOrderStat(b, Options{})
	require.NoError(t, err)

	assert.Equal(t, uint64(9), sa.Seed)
	assert.Equal(t, readAll(t, a.Path), readAll(t, b.Path))

	// the command line seed wins
	sc, err := RunOrderStat(a, Options{Seed: seedPtr(10)})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), sc.Seed)
}

func TestRangeCountFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.RangeCountConfig{
		Output:   config.Output{Path: dir, Number: 4},
		Inserts:  &config.Range{Min: 1, Max: 30},
		Integers: &config.Range{Min: 0, Max: 100},
		Requests: &config.Range{Min: 1, Max: 10},
	}

	_, err := RunRangeCount(cfg, Options{Seed: seedPtr(3)})
	require.NoError(t, err)
	files := readAll(t, dir)
	assert.Len(t, files, 4)
	for i := 0; i < 4; i++ {
		assert.Contains(t, files, diskio.InputName(i))
	}

	cfg.Answers = true
	_, err = RunRangeCount(cfg, Options{Seed: seedPtr(3), Workers: 2})
	require.NoError(t, err)
	assert.Len(t, readAll(t, dir), 8)
}

func TestSamplingErrorAborts(t *testing.T) {
	for _, workers := range []int{1, 3} {
		cfg := orderStatConfig(t.TempDir(), 10)
		// one key leaves no rank index to draw
		cfg.Elements = &config.Range{Min: 1, Max: 2}
		cfg.KthQueries = &config.Range{Min: 1, Max: 2}

		_, err := RunOrderStat(cfg, Options{Seed: seedPtr(1), Workers: workers})
		assert.ErrorIs(t, err, config.ErrConfiguration)
	}
}

func TestInvalidConfig(t *testing.T) {
	cfg := orderStatConfig(t.TempDir(), 1)
	cfg.Integers = &config.Range{Min: 0, Max: 10}

	_, err := RunOrderStat(cfg, Options{})
	assert.ErrorIs(t, err, config.ErrConfiguration)
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer
	_, err := RunOrderStat(orderStatConfig(t.TempDir(), 3), Options{
		Seed:             seedPtr(5),
		Output:           &buf,
		ProgressInterval: time.Hour,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "seed=5 fixtures=3")
	assert.Contains(t, out, "Generated 3 fixtures in")
}

func TestCommaize(t *testing.T) {
	assert.Equal(t, "0", commaize(0))
	assert.Equal(t, "999", commaize(999))
	assert.Equal(t, "1,000", commaize(1000))
	assert.Equal(t, "12,345,678", commaize(12345678))
}

func TestProgressSilentAfterStop(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, 10, 10*time.Millisecond)
	p.start(1, "dir")
	p.done.Add(4)

	p.tick()
	assert.Contains(t, buf.String(), "Generated 4/10 fixtures")

	p.stop()
	before := buf.String()

	// a wheel callback that fires late must not print
	p.tick()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, buf.String())
}
