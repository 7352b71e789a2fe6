package ai

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxReplyLength = 2800

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

func cleanReply(reply string) string {
	reply = thinkBlock.ReplaceAllString(reply, "")
	reply = strings.TrimSpace(reply)

	if len(reply) > maxReplyLength {
		cut := maxReplyLength
		// Back up to a rune boundary so the cut never splits a multi-byte rune.
		for cut > 0 && !utf8.RuneStart(reply[cut]) {
			cut--
		}
		reply = reply[:cut] + "\n\n[truncated]"
	}
	return reply
}

func truncate(b []byte) string {
	if len(b) > 200 {
		return string(b[:200]) + "..."
	}
	return string(b)
}
