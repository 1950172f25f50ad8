package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/restrop/pkg/rest"
)

func success(n int) rest.Result[int] {
	return rest.Success(rest.Call[int]{StatusCode: 200, Body: n, HasBody: true})
}

func serverError() rest.Result[int] {
	return rest.Error[int](rest.Call[int]{StatusCode: 500})
}

func transportException() rest.Result[int] {
	return rest.Exception[int](errors.New("refused"))
}

func TestHandlers_FireOnMatchingVariantOnly(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		input rest.Result[int]
		fires map[string]bool
	}{
		{"success", success(1), map[string]bool{"success": true}},
		{"error", serverError(), map[string]bool{"error": true, "failure": true}},
		{"exception", transportException(), map[string]bool{"exception": true, "failure": true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fired := map[string]int{}
			track := func(name string) func(context.Context, rest.Result[int]) {
				return func(context.Context, rest.Result[int]) { fired[name]++ }
			}

			OnSuccess(ctx, c.input, track("success"))
			OnError(ctx, c.input, track("error"))
			OnException(ctx, c.input, track("exception"))
			OnFailure(ctx, c.input, track("failure"))

			for _, name := range []string{"success", "error", "exception", "failure"} {
				want := 0
				if c.fires[name] {
					want = 1
				}
				if fired[name] != want {
					t.Errorf("%s fired %d times, want %d", name, fired[name], want)
				}
			}
		})
	}
}

func TestHandlers_ReturnInputUnchanged(t *testing.T) {
	ctx := context.Background()

	for _, input := range []rest.Result[int]{success(1), serverError(), transportException()} {
		got := OnSuccess(ctx, input, func(context.Context, rest.Result[int]) {})
		if got.Id() != input.Id() {
			t.Error("OnSuccess must return the exact input result")
		}
		got = OnFailure(ctx, input, func(context.Context, rest.Result[int]) {})
		if got.Id() != input.Id() {
			t.Error("OnFailure must return the exact input result")
		}
	}
}

func TestHandlers_ChainInSourceOrder(t *testing.T) {
	ctx := context.Background()
	var order []string

	r := OnSuccess(ctx, success(1), func(context.Context, rest.Result[int]) {
		order = append(order, "success")
	})
	OnError(ctx, r, func(context.Context, rest.Result[int]) {
		order = append(order, "error")
	})

	if len(order) != 1 || order[0] != "success" {
		t.Errorf("order = %v, want [success] only", order)
	}

	// an earlier non-firing handler must not stop a later one
	order = nil
	r2 := OnSuccess(ctx, serverError(), func(context.Context, rest.Result[int]) {
		order = append(order, "success")
	})
	OnError(ctx, r2, func(context.Context, rest.Result[int]) {
		order = append(order, "error")
	})

	if len(order) != 1 || order[0] != "error" {
		t.Errorf("order = %v, want [error] only", order)
	}
}

type doubler struct{}

func (doubler) MapSuccess(r rest.Result[int]) int { return r.Data() * 2 }

type errStatus struct{}

func (errStatus) MapError(r rest.Result[int]) string { return r.StatusCode().String() }

func TestMapSuccess(t *testing.T) {
	ctx := context.Background()
	input := success(5)

	if got := MapSuccess[int, int](ctx, input, doubler{}); got != 10 {
		t.Errorf("MapSuccess = %d, want 10", got)
	}
	// mapping is pure: the source result is untouched
	if input.Data() != 5 {
		t.Errorf("source mutated: %d", input.Data())
	}

	// zero value for a non-success input; mapper not invoked
	if got := MapSuccess[int, int](ctx, serverError(), doubler{}); got != 0 {
		t.Errorf("MapSuccess on error = %d, want zero", got)
	}
}

func TestMapSuccessWith(t *testing.T) {
	ctx := context.Background()
	received := -1

	got := MapSuccessWith[int, int](ctx, success(5), doubler{},
		func(_ context.Context, v int) { received = v })

	if got != 10 || received != 10 {
		t.Errorf("got %d, received %d, want 10 for both", got, received)
	}

	received = -1
	MapSuccessWith[int, int](ctx, transportException(), doubler{},
		func(_ context.Context, v int) { received = v })
	if received != -1 {
		t.Error("receiver must not run when the mapper did not")
	}
}

func TestMapError(t *testing.T) {
	ctx := context.Background()

	if got := MapError[int, string](ctx, serverError(), errStatus{}); got != "InternalServerError" {
		t.Errorf("MapError = %q", got)
	}
	if got := MapError[int, string](ctx, success(1), errStatus{}); got != "" {
		t.Errorf("MapError on success = %q, want zero", got)
	}
}

func TestMapErrorWith(t *testing.T) {
	ctx := context.Background()
	received := ""

	MapErrorWith[int, string](ctx, serverError(), errStatus{},
		func(_ context.Context, v string) { received = v })
	if received != "InternalServerError" {
		t.Errorf("received = %q", received)
	}
}

type recordingOperator struct {
	calls []string
}

func (o *recordingOperator) OnSuccess(context.Context, rest.Result[int]) {
	o.calls = append(o.calls, "success")
}
func (o *recordingOperator) OnError(context.Context, rest.Result[int]) {
	o.calls = append(o.calls, "error")
}
func (o *recordingOperator) OnException(context.Context, rest.Result[int]) {
	o.calls = append(o.calls, "exception")
}

func TestOperate_SingleDispatch(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		input rest.Result[int]
		want  string
	}{
		{success(1), "success"},
		{serverError(), "error"},
		{transportException(), "exception"},
	}

	for _, c := range cases {
		op := &recordingOperator{}
		got := Operate(ctx, c.input, op)

		if len(op.calls) != 1 || op.calls[0] != c.want {
			t.Errorf("dispatch calls = %v, want exactly [%s]", op.calls, c.want)
		}
		if got.Id() != c.input.Id() {
			t.Error("Operate must return the exact input result")
		}
	}
}

func TestFinally(t *testing.T) {
	ctx := context.Background()

	collapse := func(r rest.Result[int]) string {
		return Finally(ctx, r,
			func(_ context.Context, r rest.Result[int]) string { return "success" },
			func(_ context.Context, r rest.Result[int]) string { return "error" },
			func(_ context.Context, r rest.Result[int]) string { return "exception" })
	}

	if got := collapse(success(1)); got != "success" {
		t.Errorf("got %q", got)
	}
	if got := collapse(serverError()); got != "error" {
		t.Errorf("got %q", got)
	}
	if got := collapse(transportException()); got != "exception" {
		t.Errorf("got %q", got)
	}
}
