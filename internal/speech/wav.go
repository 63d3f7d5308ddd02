package speech

import "encoding/binary"

// wrapPCM wraps raw 16-bit mono little-endian PCM samples in a minimal
// RIFF/WAVE container.
func wrapPCM(pcm []byte, sampleRate int) []byte {
	const (
		channels      = 1
		bitsPerSample = 16
	)
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	out := make([]byte, 0, 44+len(pcm))
	le := binary.LittleEndian

	u32 := func(v uint32) []byte {
		var b [4]byte
		le.PutUint32(b[:], v)
		return b[:]
	}
	u16 := func(v uint16) []byte {
		var b [2]byte
		le.PutUint16(b[:], v)
		return b[:]
	}

	out = append(out, "RIFF"...)
	out = append(out, u32(uint32(36+len(pcm)))...)
	out = append(out, "WAVE"...)

	out = append(out, "fmt "...)
	out = append(out, u32(16)...)
	out = append(out, u16(1)...) // PCM
	out = append(out, u16(channels)...)
	out = append(out, u32(uint32(sampleRate))...)
	out = append(out, u32(uint32(byteRate))...)
	out = append(out, u16(uint16(blockAlign))...)
	out = append(out, u16(bitsPerSample)...)

	out = append(out, "data"...)
	out = append(out, u32(uint32(len(pcm)))...)
	out = append(out, pcm...)

	return out
}
