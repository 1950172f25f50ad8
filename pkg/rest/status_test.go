package rest

import "testing"

func TestClassify_NamedCodes(t *testing.T) {
	cases := []struct {
		raw  int
		want StatusCode
		name string
	}{
		{100, Continue, "Continue"},
		{200, OK, "OK"},
		{201, Created, "Created"},
		{204, NoContent, "NoContent"},
		{301, MovedPermanently, "MovedPermanently"},
		{400, BadRequest, "BadRequest"},
		{401, Unauthorized, "Unauthorized"},
		{404, NotFound, "NotFound"},
		{418, Teapot, "Teapot"},
		{429, TooManyRequests, "TooManyRequests"},
		{500, InternalServerError, "InternalServerError"},
		{503, ServiceUnavailable, "ServiceUnavailable"},
		{511, NetworkAuthenticationRequired, "NetworkAuthenticationRequired"},
	}

	for _, c := range cases {
		got := Classify(c.raw)
		if got != c.want {
			t.Errorf("Classify(%d) = %v, want %v", c.raw, got, c.want)
		}
		if got.String() != c.name {
			t.Errorf("Classify(%d).String() = %q, want %q", c.raw, got.String(), c.name)
		}
	}
}

func TestClassify_UnknownCodes(t *testing.T) {
	for _, raw := range []int{-1, 0, 42, 99, 104, 199, 299, 306, 420, 512, 600, 1000} {
		if got := Classify(raw); got != Unknown {
			t.Errorf("Classify(%d) = %v, want Unknown", raw, got)
		}
	}
	if Unknown.String() != "Unknown" {
		t.Errorf("Unknown.String() = %q", Unknown.String())
	}
}

func TestClassify_Total(t *testing.T) {
	// every representable code must classify without panicking, and
	// classification must be deterministic
	for raw := -10; raw <= 700; raw++ {
		first := Classify(raw)
		second := Classify(raw)
		if first != second {
			t.Fatalf("Classify(%d) not deterministic: %v vs %v", raw, first, second)
		}
	}
}
