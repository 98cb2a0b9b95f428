package tuitest

import (
	"bytes"
	"io"
)

// Bubble Tea and termenv probe the terminal on startup and block until they get
// an answer, so the harness answers as a light-on-black terminal.
var terminalReplies = []struct {
	query []byte
	reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const (
	responderMaxBuffer = 256
	responderTail      = 64
)

type terminalResponder struct {
	w       io.Writer
	pending []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, pending: make([]byte, 0, 128)}
}

// Process scans chunk for terminal queries and writes the canned replies.
// Queries split across chunks are still detected.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.pending = append(tr.pending, chunk...)
	for tr.answerNext() {
	}
	if len(tr.pending) > responderMaxBuffer {
		tr.pending = tr.pending[len(tr.pending)-responderTail:]
	}
}

// answerNext replies to the earliest query in the buffer and drops everything up
// to its end.
func (tr *terminalResponder) answerNext() bool {
	first, end := -1, 0
	var reply []byte
	for _, candidate := range terminalReplies {
		idx := bytes.Index(tr.pending, candidate.query)
		if idx < 0 || (first >= 0 && idx >= first) {
			continue
		}
		first, end, reply = idx, idx+len(candidate.query), candidate.reply
	}
	if first < 0 {
		return false
	}
	tr.pending = tr.pending[end:]
	_, _ = tr.w.Write(reply)
	return true
}
