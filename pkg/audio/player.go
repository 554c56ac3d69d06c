package audio

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate   = 44100
	channelCount = 1
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Note is a single sine tone
type Note struct {
	Frequency float64
	Duration  time.Duration
}

// Chime is the two-note confirmation played when an event is added
var Chime = []Note{
	{Frequency: 880, Duration: 90 * time.Millisecond},
	{Frequency: 1320, Duration: 140 * time.Millisecond},
}

// initAudioContext initializes the global audio context once
func initAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// PlayNotes plays the notes once in the background
func PlayNotes(notes []Note) {
	go func() {
		initAudioContext()
		if !audioCtxReady || globalAudioCtx == nil {
			log.Printf("Audio context not ready")
			return
		}

		player := globalAudioCtx.NewPlayer(bytes.NewReader(Synthesize(notes, sampleRate)))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()
}

// PlayChime plays the confirmation chime
func PlayChime() {
	PlayNotes(Chime)
}

// Synthesize renders notes as mono signed 16-bit little-endian PCM. Each
// note fades out linearly so consecutive notes do not click.
func Synthesize(notes []Note, rate int) []byte {
	var buf bytes.Buffer
	for _, note := range notes {
		samples := int(note.Duration.Seconds() * float64(rate))
		for i := 0; i < samples; i++ {
			envelope := 1 - float64(i)/float64(samples)
			v := math.Sin(2*math.Pi*note.Frequency*float64(i)/float64(rate)) * envelope * 0.3
			binary.Write(&buf, binary.LittleEndian, int16(v*math.MaxInt16))
		}
	}
	return buf.Bytes()
}
