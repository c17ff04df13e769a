// Sensitive data masking for safe logging. Tokens and session keys must
// never be written to logs in cleartext; call these before passing values
// to any log statement.
package logging

import "strings"

const (
	maskChar = "*"
	// maskedPrefixLen is how many leading characters of a secret are
	// replaced; the remainder stays visible for correlation.
	maskedPrefixLen = 5
)

// Redact masks the first occurrence of secret inside text. The leading
// min(5, len(secret)) characters of the match are replaced with '*'; the
// rest of the match and the surrounding text stay intact. Returns text
// unchanged when either argument is empty or the secret does not occur.
func Redact(secret, text string) string {
	if secret == "" || text == "" {
		return text
	}
	idx := strings.Index(text, secret)
	if idx < 0 {
		return text
	}
	return text[:idx] + RedactSecret(secret) + text[idx+len(secret):]
}

// RedactSecret masks a secret on its own. See Redact. The prefix length
// counts characters, not bytes, so multi-byte secrets stay valid UTF-8.
func RedactSecret(secret string) string {
	if secret == "" {
		return secret
	}
	runes := []rune(secret)
	n := maskedPrefixLen
	if len(runes) < n {
		n = len(runes)
	}
	return strings.Repeat(maskChar, n) + string(runes[n:])
}
