package audio

import (
	"bytes"
	"encoding/binary"
)

// wav header constants for 16-bit mono PCM.
const (
	wavNumChannels   = 1
	wavBitsPerSample = 16
)

// EncodeWAV wraps raw 16-bit little-endian mono PCM in a RIFF/WAVE
// container so system players can read it.
func EncodeWAV(pcm []byte, sampleRate int) []byte {
	byteRate := sampleRate * wavNumChannels * wavBitsPerSample / 8
	blockAlign := wavNumChannels * wavBitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(wavNumChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(wavBitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)

	return buf.Bytes()
}
