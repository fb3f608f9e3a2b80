package lexer

import (
	"lumen/internal/token"
)

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// scanIdentRest consumes [A-Za-z0-9_]* starting at the cursor (which has
// already consumed the first, start-legal byte) and returns the matched
// text. ASCII-only.
func (l *Lexer) scanIdentRest(start Mark) string {
	for isIdentContinue(l.cur.Peek()) {
		l.cur.Bump()
	}
	span := l.cur.SpanFrom(start)
	return string(l.cur.File.Content[span.Start:span.End])
}

func (l *Lexer) keywordKind(word string) (token.Kind, bool) {
	k, ok := l.keywords[word]
	return k, ok
}
