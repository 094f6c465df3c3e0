package narration

import (
	"strings"
	"unicode"

	"github.com/lixenwraith/laaame/constant"
)

// TypedBuffer keeps the most recent letters for suffix matching against TypedTriggers
type TypedBuffer struct {
	buf []byte
}

// Feed appends a letter and reports whether a trigger now ends the buffer
// Non-letters are ignored; a match clears the buffer
func (b *TypedBuffer) Feed(r rune) bool {
	if r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return false
	}
	b.buf = append(b.buf, byte(unicode.ToLower(r)))
	if over := len(b.buf) - constant.TypedBufferMax; over > 0 {
		b.buf = append(b.buf[:0], b.buf[over:]...)
	}

	s := string(b.buf)
	for _, trigger := range TypedTriggers {
		if strings.HasSuffix(s, trigger) {
			b.Reset()
			return true
		}
	}
	return false
}

func (b *TypedBuffer) Reset() { b.buf = b.buf[:0] }
