package board_test

import (
	"testing"
	"time"

	"github.com/vsariola/toneboard/board"
)

func TestTimeoutReceive(t *testing.T) {
	c := make(chan int, 1)
	c <- 42
	if v, ok := board.TimeoutReceive(c, time.Second); !ok || v != 42 {
		t.Fatalf("expected 42, got %v %v", v, ok)
	}
	if _, ok := board.TimeoutReceive(c, 10*time.Millisecond); ok {
		t.Fatalf("an empty channel should time out")
	}
	close(c)
	if _, ok := board.TimeoutReceive(c, time.Second); ok {
		t.Fatalf("a closed channel should not report a value")
	}
}
