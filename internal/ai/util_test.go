package ai

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCleanReplyStripsThinkBlocks(t *testing.T) {
	got := cleanReply("<think>hmm\nlet me see</think>  the answer is 4  ")
	if got != "the answer is 4" {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestCleanReplyTruncatesAtRuneBoundary(t *testing.T) {
	// The multi-byte rune straddles the truncation offset; the cut must back
	// up to its start instead of splitting it.
	reply := strings.Repeat("a", maxReplyLength-1) + "🙂🙂"
	got := cleanReply(reply)

	if !strings.HasSuffix(got, "[truncated]") {
		t.Fatalf("long reply not truncated: %d bytes", len(got))
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8")
	}
	if strings.Contains(got, "🙂") {
		t.Fatalf("straddling rune should have been dropped entirely")
	}
}

func TestCleanReplyKeepsShortRepliesIntact(t *testing.T) {
	if got := cleanReply("héllo 🙂"); got != "héllo 🙂" {
		t.Fatalf("short reply mangled: %q", got)
	}
}
