package lexer

import (
	"strconv"

	"lumen/internal/diag"
	"lumen/internal/token"
)

func isHexDigit(b byte) bool {
	return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isBinDigit(b byte) bool {
	return b == '0' || b == '1'
}

// scanNumber handles the "ASCII digit, or '-' followed by ASCII digit"
// dispatch branch. The cursor is positioned at the first character of
// the number (the '-' if present).
func (l *Lexer) scanNumber() (token.Token, *diag.Error) {
	start := l.cur.Mark()
	negative := false
	if l.cur.Peek() == '-' {
		negative = true
		l.cur.Bump()
	}

	if l.cur.Peek() == '0' && (l.cur.PeekAt(1) == 'x' || l.cur.PeekAt(1) == 'X') {
		return l.scanRadixInt(start, negative, 16, isHexDigit)
	}
	if l.cur.Peek() == '0' && (l.cur.PeekAt(1) == 'b' || l.cur.PeekAt(1) == 'B') {
		return l.scanRadixInt(start, negative, 2, isBinDigit)
	}
	return l.scanDecimal(start, negative)
}

// scanRadixInt scans a 0x/0X or 0b/0B prefixed literal. The cursor is at
// the leading '0'.
func (l *Lexer) scanRadixInt(start Mark, negative bool, radix int, isDigit func(byte) bool) (token.Token, *diag.Error) {
	l.cur.Bump() // '0'
	l.cur.Bump() // 'x'/'X' or 'b'/'B'

	digitsStart := l.cur.Mark()
	for isDigit(l.cur.Peek()) {
		l.cur.Bump()
	}
	span := l.cur.SpanFrom(start)
	digitsSpan := l.cur.SpanFrom(digitsStart)
	if digitsSpan.Len() == 0 {
		return token.Token{}, diag.New(diag.InvalidNumber, "expected at least one digit", span)
	}

	digits := string(l.cur.File.Content[digitsSpan.Start:digitsSpan.End])
	v, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		return token.Token{}, diag.New(diag.InvalidNumber, "integer literal out of range", span)
	}
	if negative {
		if v > 1<<63 {
			return token.Token{}, diag.New(diag.InvalidNumber, "integer literal out of range", span)
		}
		return token.NewInt(-int64(v), span), nil
	}
	return token.NewUInt(v, span), nil
}

// scanDecimal scans an optionally-signed decimal integer or float. The
// cursor is positioned right after any leading '-'.
func (l *Lexer) scanDecimal(start Mark, negative bool) (token.Token, *diag.Error) {
	digitsStart := l.cur.Mark()
	for isASCIIDigit(l.cur.Peek()) {
		l.cur.Bump()
	}
	if l.cur.Mark().Off == digitsStart.Off {
		span := l.cur.SpanFrom(start)
		return token.Token{}, diag.New(diag.InvalidNumber, "expected at least one digit", span)
	}

	isFloat := false
	if l.cur.Peek() == '.' && isASCIIDigit(l.cur.PeekAt(1)) {
		isFloat = true
		l.cur.Bump() // '.'
		for isASCIIDigit(l.cur.Peek()) {
			l.cur.Bump()
		}
	}

	span := l.cur.SpanFrom(start)
	text := string(l.cur.File.Content[span.Start:span.End])

	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, diag.New(diag.InvalidNumber, "invalid float literal", span)
		}
		return token.NewFloat(v, span), nil
	}

	digitsText := text
	if negative {
		digitsText = text[1:]
	}
	if negative {
		v, err := strconv.ParseUint(digitsText, 10, 64)
		if err != nil || v > 1<<63 {
			return token.Token{}, diag.New(diag.InvalidNumber, "integer literal out of range", span)
		}
		return token.NewInt(-int64(v), span), nil
	}
	v, err := strconv.ParseUint(digitsText, 10, 64)
	if err != nil {
		return token.Token{}, diag.New(diag.InvalidNumber, "integer literal out of range", span)
	}
	return token.NewUInt(v, span), nil
}
