package core

import (
	"context"
	"reflect"
	"testing"
)

func TestOptions_Defaults(t *testing.T) {
	ctx := context.Background()

	if got := Workers(ctx, 4); got != 4 {
		t.Errorf("Workers default = %d", got)
	}
	if got := DeliverRemaining(ctx, true); !got {
		t.Error("DeliverRemaining default not honored")
	}
}

func TestOptions_Override(t *testing.T) {
	ctx := WithWorkers(context.Background(), 8)
	ctx = WithDeliverRemaining(ctx, false)

	if got := Workers(ctx, 4); got != 8 {
		t.Errorf("Workers = %d, want 8", got)
	}
	if DeliverRemaining(ctx, true) {
		t.Error("DeliverRemaining override not honored")
	}
}

func TestToChanFromChan_RoundTrip(t *testing.T) {
	ctx := context.Background()

	got := FromChan(ctx, ToChan(ctx, 1, 2, 3))

	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("round trip = %v", got)
	}
}

func TestToChan_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	ch := ToChan(ctx, 1, 2, 3)
	first := <-ch
	cancel()

	rest := make([]int, 0)
	for v := range ch {
		rest = append(rest, v)
	}

	if first != 1 {
		t.Errorf("first = %d", first)
	}
	// the producer may have been mid-send when cancel hit, but must stop
	// shortly after and close the channel
	if len(rest) > 2 {
		t.Errorf("producer kept going after cancel: %v", rest)
	}
}
