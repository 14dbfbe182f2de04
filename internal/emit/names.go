package emit

import (
	"go/token"
	"strconv"
	"strings"
	"unicode"
)

// words splits a definition name on anything that is not a letter or digit.
func words(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Camel builds an exported identifier: "UIM Verify PIN" -> "UIMVerifyPIN".
func Camel(name string) string {
	out := upperJoin(words(name))
	if out == "" {
		return "X"
	}
	if unicode.IsDigit([]rune(out)[0]) {
		return "X" + out
	}
	return out
}

func upperJoin(ws []string) string {
	var b strings.Builder
	for _, w := range ws {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// Names used by generated method bodies.
var reserved = map[string]bool{
	"b": true, "err": true, "msg": true, "r": true, "out": true, "off": true,
}

// LowerCamel builds a parameter name: "PIN ID" -> "pinID",
// "Verify Retries Left" -> "verifyRetriesLeft".
func LowerCamel(name string) string {
	ws := words(name)
	if len(ws) == 0 {
		return "value"
	}
	first := ws[0]
	if strings.ToUpper(first) == first {
		first = strings.ToLower(first)
	} else {
		r := []rune(first)
		r[0] = unicode.ToLower(r[0])
		first = string(r)
	}
	out := first + upperJoin(ws[1:])
	if unicode.IsDigit([]rune(out)[0]) {
		out = "v" + out
	}
	if token.IsKeyword(out) || reserved[out] || isPredeclared(out) {
		out += "Value"
	}
	return out
}

func isPredeclared(name string) bool {
	switch name {
	case "string", "byte", "rune", "int", "uint", "len", "cap", "copy", "append",
		"make", "new", "nil", "true", "false", "error", "any", "min", "max", "clear":
		return true
	}
	return false
}

// Underscore builds the lowercase underscore form: "PIN ID" -> "pin_id".
func Underscore(name string) string {
	return strings.ToLower(strings.Join(words(name), "_"))
}

// Nick builds the lowercase dashed form: "Enabled Not Verified" -> "enabled-not-verified".
func Nick(name string) string {
	return strings.ToLower(strings.Join(words(name), "-"))
}

// Quote returns a Go string literal.
func Quote(s string) string {
	return strconv.Quote(s)
}

// Unexport lowercases the leading capitals of an identifier:
// "EchoInput" -> "echoInput", "UIMVerifyPIN" -> "uimVerifyPIN".
func Unexport(name string) string {
	r := []rune(name)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) && unicode.IsLower(r[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	return string(r)
}
