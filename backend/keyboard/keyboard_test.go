package keyboard_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedalier/pedalier/backend/keyboard"
	"github.com/pedalier/pedalier/internal/log"
	"github.com/pedalier/pedalier/pedal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// reportSink captures every report written, one slice per write.
type reportSink struct {
	reports [][]byte
}

func (s *reportSink) Write(p []byte) (int, error) {
	cp := make([]byte, len(p))
	copy(cp, p)
	s.reports = append(s.reports, cp)
	return len(p), nil
}

func (s *reportSink) last() []byte {
	if len(s.reports) == 0 {
		return nil
	}
	return s.reports[len(s.reports)-1]
}

func TestInputStateSlots(t *testing.T) {
	var st keyboard.InputState

	assert.True(t, st.Press(keyboard.KeyZ))
	assert.True(t, st.Held(keyboard.KeyZ))

	// Pressing a held code again is a no-op.
	assert.True(t, st.Press(keyboard.KeyZ))

	st.Release(keyboard.KeyZ)
	assert.False(t, st.Held(keyboard.KeyZ))

	// Releasing an unheld code does nothing.
	st.Release(keyboard.KeyZ)
	assert.False(t, st.Held(keyboard.KeyZ))
}

func TestInputStateSlotExhaustion(t *testing.T) {
	var st keyboard.InputState
	codes := []uint8{
		keyboard.KeyZ, keyboard.KeyS, keyboard.KeyX,
		keyboard.KeyD, keyboard.KeyC, keyboard.KeyV,
	}
	for _, c := range codes {
		require.True(t, st.Press(c))
	}

	assert.False(t, st.Press(keyboard.KeyG), "a seventh key has no slot")

	st.Release(codes[0])
	assert.True(t, st.Press(keyboard.KeyG), "a freed slot is reusable")
}

func TestInputStateRejectsZeroCode(t *testing.T) {
	var st keyboard.InputState
	assert.False(t, st.Press(0))
	assert.False(t, st.Held(0))
}

func TestBuildReport(t *testing.T) {
	var st keyboard.InputState
	st.Modifiers = keyboard.ModLeftShift
	require.True(t, st.Press(keyboard.KeyZ))
	require.True(t, st.Press(keyboard.KeyComma))

	report := st.BuildReport()
	require.Len(t, report, keyboard.ReportSize)
	assert.Equal(t, byte(keyboard.ModLeftShift), report[0])
	assert.Equal(t, byte(0x00), report[1], "byte 1 is reserved")
	assert.Equal(t, byte(keyboard.KeyZ), report[2])
	assert.Equal(t, byte(keyboard.KeyComma), report[3])
	assert.Equal(t, []byte{0, 0, 0, 0}, report[4:], "remaining slots empty")
}

func TestSenderPressReleaseSequence(t *testing.T) {
	sink := &reportSink{}
	s := keyboard.NewSender(sink, log.NewRaw(nil))

	require.NoError(t, s.Press(keyboard.KeyZ))
	require.Len(t, sink.reports, 1)
	assert.Equal(t, byte(keyboard.KeyZ), sink.last()[2])

	require.NoError(t, s.Release(keyboard.KeyZ))
	require.Len(t, sink.reports, 2)
	assert.Equal(t, make([]byte, keyboard.ReportSize), sink.last(), "release empties the report")
}

func TestSenderOverflowReported(t *testing.T) {
	sink := &reportSink{}
	s := keyboard.NewSender(sink, log.NewRaw(nil))

	codes := []uint8{
		keyboard.KeyZ, keyboard.KeyS, keyboard.KeyX,
		keyboard.KeyD, keyboard.KeyC, keyboard.KeyV,
	}
	for _, c := range codes {
		require.NoError(t, s.Press(c))
	}

	err := s.Press(keyboard.KeyG)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no free slot")
	assert.Len(t, sink.reports, len(codes), "a dropped press writes nothing")
}

func TestSenderReleaseAll(t *testing.T) {
	sink := &reportSink{}
	s := keyboard.NewSender(sink, log.NewRaw(nil))

	require.NoError(t, s.Press(keyboard.KeyZ))
	require.NoError(t, s.Press(keyboard.KeyM))
	require.NoError(t, s.ReleaseAll())

	assert.Equal(t, make([]byte, keyboard.ReportSize), sink.last())
}

func TestHandlerMapsPedalsToUsageCodes(t *testing.T) {
	layout := pedal.StandardLayout()
	sink := &reportSink{}
	s := keyboard.NewSender(sink, log.NewRaw(nil))
	h := keyboard.NewHandler(layout, s, discardLogger())

	// Pedal 0 is bound to z in the standard layout.
	require.NoError(t, h.OnDown(0))
	assert.Equal(t, byte(keyboard.KeyZ), sink.last()[2])

	require.NoError(t, h.OnUp(0))
	assert.Equal(t, make([]byte, keyboard.ReportSize), sink.last())
}

func TestHandlerChord(t *testing.T) {
	layout := pedal.StandardLayout()
	sink := &reportSink{}
	s := keyboard.NewSender(sink, log.NewRaw(nil))
	h := keyboard.NewHandler(layout, s, discardLogger())

	// C2 and G2 together, then released in reverse order.
	require.NoError(t, h.OnDown(0))
	require.NoError(t, h.OnDown(7))

	report := sink.last()
	assert.Equal(t, byte(keyboard.KeyZ), report[2])
	assert.Equal(t, byte(keyboard.KeyB), report[3])

	require.NoError(t, h.OnUp(7))
	require.NoError(t, h.OnUp(0))
	assert.Equal(t, make([]byte, keyboard.ReportSize), sink.last())
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		code uint8
		want string
	}{
		{keyboard.KeyZ, "z"},
		{keyboard.KeyA, "a"},
		{keyboard.Key1, "1"},
		{keyboard.Key0, "0"},
		{keyboard.KeyComma, ","},
		{keyboard.KeySpace, "space"},
		{0xee, "0xee"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, keyboard.KeyName(tt.code))
		})
	}
}
