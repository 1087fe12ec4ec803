package styled

import "bytes"

func (t *Text) Front() (byte, error) {
	if len(t.content) == 0 {
		return 0, posError("Front", 0, 0)
	}
	return t.content[0], nil
}

func (t *Text) Back() (byte, error) {
	if len(t.content) == 0 {
		return 0, posError("Back", 0, 0)
	}
	return t.content[len(t.content)-1], nil
}

func (t *Text) HasPrefix(s string) bool { return bytes.HasPrefix(t.content, []byte(s)) }

func (t *Text) HasSuffix(s string) bool { return bytes.HasSuffix(t.content, []byte(s)) }

// Index returns the offset of the first occurrence of s, or -1.
func (t *Text) Index(s string) int { return bytes.Index(t.content, []byte(s)) }

func (t *Text) LastIndex(s string) int { return bytes.LastIndex(t.content, []byte(s)) }

func (t *Text) IndexByte(c byte) int { return bytes.IndexByte(t.content, c) }

// IndexAny returns the offset of the first byte that appears in chars, or -1.
func (t *Text) IndexAny(chars string) int {
	for i, c := range t.content {
		if containsByte(chars, c) {
			return i
		}
	}
	return -1
}

func (t *Text) LastIndexAny(chars string) int {
	for i := len(t.content) - 1; i >= 0; i-- {
		if containsByte(chars, t.content[i]) {
			return i
		}
	}
	return -1
}

// IndexNotAny returns the offset of the first byte absent from chars, or -1.
func (t *Text) IndexNotAny(chars string) int {
	for i, c := range t.content {
		if !containsByte(chars, c) {
			return i
		}
	}
	return -1
}

func (t *Text) LastIndexNotAny(chars string) int {
	for i := len(t.content) - 1; i >= 0; i-- {
		if !containsByte(chars, t.content[i]) {
			return i
		}
	}
	return -1
}

func containsByte(chars string, c byte) bool {
	for i := 0; i < len(chars); i++ {
		if chars[i] == c {
			return true
		}
	}
	return false
}
