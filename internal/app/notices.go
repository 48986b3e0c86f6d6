package app

import "sync"

// noticeLog keeps the most recent player-facing notifications. Events
// arrive on whichever goroutine triggered them, so access is guarded.
type noticeLog struct {
	mu    sync.Mutex
	lines []string
	max   int
}

func newNoticeLog(max int) *noticeLog {
	return &noticeLog{max: max}
}

func (n *noticeLog) push(line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lines = append(n.lines, line)
	if len(n.lines) > n.max {
		n.lines = n.lines[len(n.lines)-n.max:]
	}
}

// latest returns the most recent notice, or "".
func (n *noticeLog) latest() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.lines) == 0 {
		return ""
	}
	return n.lines[len(n.lines)-1]
}
