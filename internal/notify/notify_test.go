package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFixedMessages(t *testing.T) {
	m := MissingInputs()
	assert.Equal(t, "Missing inputs", m.Title)
	assert.Equal(t, VariantDestructive, m.Variant)

	g := Generated()
	assert.Equal(t, "Text generated!", g.Title)
	assert.Equal(t, VariantDefault, g.Variant)

	c := Copied()
	assert.Equal(t, "Copied!", c.Title)
	assert.Equal(t, "Generated text copied to clipboard.", c.Description)

	assert.NotEqual(t, Copied().ID, c.ID)
	assert.False(t, c.At.IsZero())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Notify(Copied())
		}()
	}
	wg.Wait()
	assert.Len(t, r.All(), 20)

	r.Reset()
	r.Notify(Generated())
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, []string{"Text generated!"}, r.Titles())
	assert.Equal(t, "Text generated!", last.Title)
}

func TestMulti(t *testing.T) {
	var a, b Recorder
	Multi(&a, nil, &b, Discard).Notify(MissingInputs())
	assert.Len(t, a.All(), 1)
	assert.Len(t, b.All(), 1)
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := LogSink{Logger: zap.New(core)}

	s.Notify(MissingInputs())
	s.Notify(Copied())

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "Missing inputs", entries[0].ContextMap()["title"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)

	// Nil logger is a no-op.
	LogSink{}.Notify(Copied())
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "default", VariantDefault.String())
	assert.Equal(t, "destructive", VariantDestructive.String())
}
